package levels

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

const smallLevel = `5 4 1 1 0.25
1 1 1 1 1
1 0 0 0 1
1 0 1 0 1
1 1 1 1 1
`

func TestParseText(t *testing.T) {
	lvl, err := Parse(strings.NewReader(smallLevel), "small")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if lvl.ID != "small" {
		t.Errorf("ID = %q, expected small", lvl.ID)
	}
	if lvl.Cols != 5 || lvl.Rows != 4 {
		t.Errorf("size = %dx%d, expected 5x4", lvl.Cols, lvl.Rows)
	}
	if lvl.Start != core.Pt(1, 1) {
		t.Errorf("Start = %v, expected (1,1)", lvl.Start)
	}
	if lvl.BonusProbability != 0.25 {
		t.Errorf("BonusProbability = %g, expected 0.25", lvl.BonusProbability)
	}
	if !lvl.IsWall(2, 2) || lvl.IsWall(3, 2) {
		t.Error("cell (2,2) should be wall and (3,2) open")
	}
	if !lvl.IsWall(-1, 0) || !lvl.IsWall(5, 1) {
		t.Error("out-of-bounds cells should count as walls")
	}
	if lvl.OpenCells() != 5 {
		t.Errorf("OpenCells() = %d, expected 5", lvl.OpenCells())
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmpty},
		{"short header", "5 4 1 1\n", nil},
		{"bad number", "5 x 1 1 0.1\n", nil},
		{"missing rows", "3 3 1 1 0\n1 1 1\n1 0 1\n", ErrBadSize},
		{"short row", "3 3 1 1 0\n1 1 1\n1 0\n1 1 1\n", ErrBadSize},
		{"unknown cell", "3 3 1 1 0\n1 1 1\n1 2 1\n1 1 1\n", ErrBadCell},
		{"start on wall", "3 3 0 0 0\n1 1 1\n1 0 1\n1 1 1\n", ErrStartOnWall},
		{"start out of bounds", "3 3 7 1 0\n1 1 1\n1 0 1\n1 1 1\n", ErrStartBounds},
		{"probability", "3 3 1 1 1.5\n1 1 1\n1 0 1\n1 1 1\n", ErrProbability},
		{"no border", "3 3 1 1 0\n0 0 0\n0 0 0\n0 0 0\n", ErrNoBorder},
		{"zero size", "0 3 0 0 0\n", ErrBadSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input), "bad")
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	input := "\n3 3 1 1 0\n\n1 1 1\n1 0 1\n\n1 1 1\n\n"
	if _, err := Parse(strings.NewReader(input), "blank"); err != nil {
		t.Fatalf("Parse() with blank lines failed: %v", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	lvl, err := Parse(strings.NewReader(smallLevel), "small")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Format(&buf, lvl); err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if buf.String() != smallLevel {
		t.Errorf("Format() =\n%s\nexpected\n%s", buf.String(), smallLevel)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: tiny
name: Tiny
start: {x: 1, y: 1}
bonus_probability: 0.5
layout:
  - "####"
  - "#..#"
  - "####"
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if lvl.ID != "tiny" || lvl.Name != "Tiny" {
		t.Errorf("ID/Name = %q/%q", lvl.ID, lvl.Name)
	}
	if lvl.Cols != 4 || lvl.Rows != 3 {
		t.Errorf("size = %dx%d, expected 4x3", lvl.Cols, lvl.Rows)
	}
	if lvl.OpenCells() != 2 {
		t.Errorf("OpenCells() = %d, expected 2", lvl.OpenCells())
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"no layout", "id: x\n", ErrEmpty},
		{"ragged", "start: {x: 1, y: 1}\nlayout: ['###', '#.##', '###']\n", ErrBadSize},
		{"bad rune", "start: {x: 1, y: 1}\nlayout: ['###', '#x#', '###']\n", ErrBadCell},
		{"open border", "start: {x: 1, y: 1}\nlayout: ['#.#', '#.#', '###']\n", ErrNoBorder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	all, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("expected at least 3 built-in levels, got %d", len(all))
	}

	for _, lvl := range all {
		if err := Validate(lvl); err != nil {
			t.Errorf("built-in level %s invalid: %v", lvl.ID, err)
		}
		if lvl.DisplayName() == "" {
			t.Errorf("built-in level %s has no display name", lvl.ID)
		}
	}

	if _, err := BuiltinByID(DefaultID); err != nil {
		t.Errorf("default level missing: %v", err)
	}
	if _, err := BuiltinByID("nope"); err == nil {
		t.Error("unknown built-in ID should fail")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), smallLevel)
	writeFile(t, filepath.Join(dir, "nested", "a.lvl"), smallLevel)
	writeFile(t, filepath.Join(dir, "broken.txt"), "not a level")
	writeFile(t, filepath.Join(dir, "notes.md"), "ignored")

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ListIDs() = %v, expected [a b]", ids)
	}

	lvl, err := loader.LoadByID("b")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}
	if lvl.FilePath != filepath.Join(dir, "b.txt") {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("broken"); err == nil {
		t.Error("invalid file should not be loadable by ID")
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	levels, err := NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll()
	if err != nil {
		t.Fatalf("missing root should not fail: %v", err)
	}
	if len(levels) != 0 {
		t.Errorf("expected no levels, got %d", len(levels))
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "classic.txt"), smallLevel)
	writeFile(t, filepath.Join(dir, "extra.txt"), smallLevel)

	// User level overrides the built-in with the same ID
	lvl, err := Resolve("classic", dir)
	if err != nil {
		t.Fatalf("Resolve(classic) failed: %v", err)
	}
	if lvl.Cols != 5 {
		t.Errorf("expected user classic level (5 cols), got %d", lvl.Cols)
	}

	// Empty ref selects the default built-in when no user dir is given
	lvl, err = Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve(\"\") failed: %v", err)
	}
	if lvl.ID != DefaultID {
		t.Errorf("default level = %q, expected %q", lvl.ID, DefaultID)
	}

	// Direct file path
	lvl, err = Resolve(filepath.Join(dir, "extra.txt"), "")
	if err != nil {
		t.Fatalf("Resolve(path) failed: %v", err)
	}
	if lvl.ID != "extra" {
		t.Errorf("ID from path = %q, expected extra", lvl.ID)
	}

	if _, err := Resolve("missing", dir); err == nil {
		t.Error("unknown level should fail")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
