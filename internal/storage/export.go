package storage

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the score distribution of a set of runs.
type Summary struct {
	Count  int
	Max    int
	Mean   float64
	StdDev float64 // Sample standard deviation, 0 for fewer than two runs
	Median float64
}

// Summarize computes distribution statistics over entries.
func Summarize(entries []ScoreEntry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(entries))
	sum := Summary{Count: len(entries)}
	for i, e := range entries {
		xs[i] = float64(e.Score)
		sum.Max = max(sum.Max, e.Score)
	}
	sort.Float64s(xs)

	sum.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		sum.StdDev = stat.StdDev(xs, nil)
	}
	sum.Median = stat.Quantile(0.5, stat.Empirical, xs, nil)
	return sum
}

// Summary loads every run of a game on a level and summarizes it.
// An empty levelID covers every level.
func (s *Store) Summary(gameID, levelID string) (Summary, error) {
	entries, err := s.AllScores(gameID, levelID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(entries), nil
}

// csvRecord is the exported row layout.
type csvRecord struct {
	Rank     int    `csv:"rank"`
	Game     string `csv:"game"`
	Level    string `csv:"level"`
	Score    int    `csv:"score"`
	PlayedAt string `csv:"played_at"`
}

// WriteCSV writes entries as CSV with a header row, ranked in the order given.
func WriteCSV(w io.Writer, entries []ScoreEntry) error {
	records := make([]*csvRecord, len(entries))
	for i, e := range entries {
		played := ""
		if !e.CreatedAt.IsZero() {
			played = e.CreatedAt.UTC().Format(time.RFC3339)
		}
		records[i] = &csvRecord{
			Rank:     i + 1,
			Game:     e.GameID,
			Level:    e.LevelID,
			Score:    e.Score,
			PlayedAt: played,
		}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: writing csv: %w", err)
	}
	return nil
}
