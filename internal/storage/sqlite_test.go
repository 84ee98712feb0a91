package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, levelID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := store.SaveScore("pacman", levelID, sc); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "classic", 100, 50, 200)
	mustSave(t, store, "box", 500)

	scores, err := store.TopScores("pacman", "classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].LevelID != "classic" {
			t.Errorf("scores[%d].LevelID = %q, expected classic", i, scores[i].LevelID)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	all, err := store.TopScores("pacman", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 || all[0].LevelID != "box" {
		t.Errorf("TopScores across levels = %+v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "classic", 100, 200, 300, 400, 500)

	scores, err := store.TopScores("pacman", "classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("pacman", "classic", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pacman", "classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty level, got %d", high)
	}

	mustSave(t, store, "classic", 100, 300, 200)
	mustSave(t, store, "maze", 900)

	tests := []struct {
		level string
		want  int
	}{
		{"classic", 300},
		{"maze", 900},
		{"", 900},
		{"box", 0},
	}
	for _, tt := range tests {
		got, err := store.HighScore("pacman", tt.level)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("HighScore(%q) = %d, expected %d", tt.level, got, tt.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "classic", 100, 200)
	if _, err := store.SaveScore("other", "classic", 300); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("pacman", "", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("other", "", 10)
	if len(other) != 1 {
		t.Error("Other game scores should not be affected")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		mustSave(t, store, "classic", i*10)
	}

	scores, err := store.AllScores("pacman", "classic")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreLevelsAndStats(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "maze", 10)
	mustSave(t, store, "classic", 20, 40)

	ids, err := store.Levels("pacman")
	if err != nil {
		t.Fatalf("Levels() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "classic" || ids[1] != "maze" {
		t.Errorf("Levels() = %v, expected [classic maze]", ids)
	}

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 40 || stats.TotalScore != 70 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}

	perLevel, err := store.GetLevelStats("pacman")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if c := perLevel["classic"]; c == nil || c.GamesCount != 2 || c.AvgScore != 30 {
		t.Errorf("classic stats = %+v", c)
	}
}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('pacman', 77);
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy db failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("pacman", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 77 || scores[0].LevelID != "" {
		t.Errorf("legacy scores = %+v", scores)
	}
	if _, err := store.SaveScore("pacman", "classic", 10); err != nil {
		t.Errorf("SaveScore() after migration failed: %v", err)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/subdir/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "subdir", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under home")
	}
}
