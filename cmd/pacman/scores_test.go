package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/storage"
)

func TestPrintStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	printStats(&buf, store)
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty stats = %q, expected no-scores notice", buf.String())
	}

	for _, s := range []struct {
		level string
		score int
	}{
		{"classic", 100},
		{"classic", 300},
		{"maze", 50},
	} {
		if _, err := store.SaveScore(gameID, s.level, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	buf.Reset()
	printStats(&buf, store)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("stats has %d lines, expected 5:\n%s", len(lines), out)
	}
	tests := []struct {
		line   int
		fields []string
	}{
		{2, []string{"classic", "2", "300", "200.0"}},
		{3, []string{"maze", "1", "50", "50.0"}},
		{4, []string{"total", "3", "300", "150.0"}},
	}
	for _, tt := range tests {
		got := strings.Fields(lines[tt.line])
		if len(got) < len(tt.fields) {
			t.Fatalf("line %d = %q, expected fields %v", tt.line, lines[tt.line], tt.fields)
		}
		for i, want := range tt.fields {
			if got[i] != want {
				t.Errorf("line %d field %d = %q, expected %q", tt.line, i, got[i], want)
			}
		}
	}

	if err := store.ClearScores(gameID); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	buf.Reset()
	printStats(&buf, store)
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("stats after clear = %q, expected no-scores notice", buf.String())
	}
}
