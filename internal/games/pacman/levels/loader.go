package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// DefaultUserDir returns ~/.arcade/levels, or empty if home is unavailable.
func DefaultUserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "levels")
}

// LoadAll recursively scans and loads all level files.
// Invalid files are logged and skipped. A missing root yields no levels.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	if l.Root == "" {
		return nil, nil
	}

	var levels []Level
	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			log.Warn("skipping invalid level", "path", path, "error", err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file. The file name without extension is the
// level ID unless the file declares its own.
func (l *Loader) LoadFile(path string) (Level, error) {
	return LoadFile(path)
}

// LoadFile loads a single level file from disk.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	lvl, err := parseByExtension(data, ext, strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Available returns built-in levels followed by user levels from userDir.
// A user level with the same ID as a built-in one replaces it.
func Available(userDir string) ([]Level, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	user, err := NewLoader(userDir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(builtin))
	out := append([]Level(nil), builtin...)
	for i, lvl := range out {
		byID[lvl.ID] = i
	}
	for _, lvl := range user {
		if i, ok := byID[lvl.ID]; ok {
			out[i] = lvl
			continue
		}
		byID[lvl.ID] = len(out)
		out = append(out, lvl)
	}
	return out, nil
}

// Resolve finds a level by file path or ID. An existing file path wins, then
// levels in userDir, then built-in levels. An empty ref selects DefaultID.
func Resolve(ref, userDir string) (Level, error) {
	if ref == "" {
		ref = DefaultID
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return LoadFile(ref)
	}

	all, err := Available(userDir)
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == ref {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", ref)
}
