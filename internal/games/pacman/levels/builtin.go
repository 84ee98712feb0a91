package levels

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed builtin/*
var builtinFS embed.FS

// DefaultID is the level used when none is requested.
const DefaultID = "classic"

var builtinNames = map[string]string{
	"classic": "Classic",
	"box":     "Box",
}

var (
	builtinOnce   sync.Once
	builtinLevels []Level
	builtinErr    error
)

// Builtin returns the levels embedded in the binary, sorted by ID.
func Builtin() ([]Level, error) {
	builtinOnce.Do(func() {
		builtinLevels, builtinErr = loadBuiltin()
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	out := make([]Level, len(builtinLevels))
	copy(out, builtinLevels)
	return out, nil
}

// BuiltinByID returns a single embedded level.
func BuiltinByID(id string) (Level, error) {
	all, err := Builtin()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: built-in level not found: %s", id)
}

func loadBuiltin() ([]Level, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading embedded levels: %w", err)
	}

	var out []Level
	for _, e := range entries {
		name := e.Name()
		ext := strings.ToLower(path.Ext(name))
		if !isSupportedExtension(ext) {
			continue
		}
		data, err := builtinFS.ReadFile(path.Join("builtin", name))
		if err != nil {
			return nil, fmt.Errorf("levels: reading embedded %s: %w", name, err)
		}
		lvl, err := parseByExtension(data, ext, strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return nil, fmt.Errorf("levels: embedded %s: %w", name, err)
		}
		if lvl.Name == "" {
			lvl.Name = builtinNames[lvl.ID]
		}
		out = append(out, lvl)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, id string) (Level, error) {
	switch ext {
	case ".txt", ".lvl":
		return Parse(bytes.NewReader(data), id)
	case ".yaml", ".yml":
		lvl, err := ParseYAML(data)
		if err != nil {
			return Level{}, err
		}
		if lvl.ID == "" {
			lvl.ID = id
		}
		return lvl, nil
	default:
		return Level{}, fmt.Errorf("levels: unsupported extension: %s", ext)
	}
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
