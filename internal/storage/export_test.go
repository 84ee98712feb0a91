package storage

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	entries := []ScoreEntry{{Score: 10}, {Score: 40}, {Score: 20}, {Score: 50}, {Score: 30}}
	got := Summarize(entries)

	if got.Count != 5 || got.Max != 50 {
		t.Errorf("Count/Max = %d/%d, expected 5/50", got.Count, got.Max)
	}
	if got.Mean != 30 {
		t.Errorf("Mean = %v, expected 30", got.Mean)
	}
	if got.Median != 30 {
		t.Errorf("Median = %v, expected 30", got.Median)
	}
	// Sample std-dev of 10..50 step 10
	if want := math.Sqrt(250); math.Abs(got.StdDev-want) > 1e-9 {
		t.Errorf("StdDev = %v, expected %v", got.StdDev, want)
	}
}

func TestSummarizeSmallSets(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, expected zero", got)
	}
	got := Summarize([]ScoreEntry{{Score: 7}})
	if got.Count != 1 || got.Mean != 7 || got.Median != 7 || got.StdDev != 0 {
		t.Errorf("Summarize(single) = %+v", got)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "classic", 5, 15)
	mustSave(t, store, "box", 1000)

	got, err := store.Summary("pacman", "classic")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if got.Count != 2 || got.Mean != 10 || got.Max != 15 {
		t.Errorf("Summary() = %+v", got)
	}
}

func TestWriteCSV(t *testing.T) {
	played := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	entries := []ScoreEntry{
		{GameID: "pacman", LevelID: "classic", Score: 420, CreatedAt: played},
		{GameID: "pacman", LevelID: "box", Score: 15},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if lines[0] != "rank,game,level,score,played_at" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,pacman,classic,420,2026-03-01T12:30:00Z" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2,pacman,box,15," {
		t.Errorf("row 2 = %q", lines[2])
	}
}
