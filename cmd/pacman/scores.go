package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagLimit int
	flagCSV   bool
	flagStats bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top scores, for one level or across all levels.

Examples:
  pacman scores
  pacman scores classic
  pacman scores maze --limit 25
  pacman scores --csv > scores.csv
  pacman scores --stats
  pacman scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write every score as CSV to stdout")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-level statistics")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := ""
	if len(args) > 0 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Fatal("cannot open scores database", "path", flagDBPath, "error", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			log.Error("cannot clear scores", "error", err)
			return
		}
		fmt.Println("All scores deleted.")
		return
	}

	if flagStats {
		printStats(os.Stdout, store)
		return
	}

	if flagCSV {
		entries, err := store.AllScores(gameID, levelID)
		if err != nil {
			log.Error("cannot read scores", "error", err)
			return
		}
		if err := storage.WriteCSV(os.Stdout, entries); err != nil {
			log.Error("cannot write csv", "error", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, levelID, flagLimit)
	if err != nil {
		log.Error("cannot read scores", "error", err)
		return
	}

	title := "all levels"
	if levelID != "" {
		title = levelID
	}
	fmt.Printf("High Scores - Pacman (%s)\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		if levelID != "" {
			fmt.Printf("Play 'pacman play %s' to set the first high score!\n", levelID)
		} else {
			fmt.Println("Play 'pacman play' to set the first high score!")
		}
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, entry.LevelID, dateStr)
	}

	sum, err := store.Summary(gameID, levelID)
	if err != nil {
		log.Warn("cannot summarize scores", "error", err)
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Mean: %.1f  Median: %.1f  StdDev: %.1f\n",
		sum.Count, sum.Max, sum.Mean, sum.Median, sum.StdDev)
}

// printStats prints totals for the game followed by one line per level.
func printStats(w io.Writer, store *storage.Store) {
	total, err := store.GetGameStats(gameID)
	if err != nil {
		log.Error("cannot read stats", "error", err)
		return
	}
	if total.GamesCount == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return
	}

	perLevel, err := store.GetLevelStats(gameID)
	if err != nil {
		log.Error("cannot read level stats", "error", err)
		return
	}
	ids := make([]string, 0, len(perLevel))
	for id := range perLevel {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-12s  %6s  %8s  %8s  %s\n", "Level", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-12s  %6s  %8s  %8s  %s\n", "-----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		st := perLevel[id]
		name := id
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(w, "  %-12s  %6d  %8d  %8.1f  %s\n",
			name, st.GamesCount, st.HighScore, st.AvgScore, formatPlayed(st.LastPlayed))
	}
	fmt.Fprintf(w, "  %-12s  %6d  %8d  %8.1f  %s\n",
		"total", total.GamesCount, total.HighScore, total.AvgScore, formatPlayed(total.LastPlayed))
}

func formatPlayed(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
