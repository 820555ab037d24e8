// Package levels loads Klotski level definitions from YAML files.
// Built-in levels are embedded; more can be read from a directory.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels/formats"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Level is a complete level definition.
type Level struct {
	ID         string
	Name       string
	Order      int
	Difficulty string
	Layout     [][]core.Kind
	Goal       *core.Goal
	Metadata   map[string]string
	FilePath   string
}

// NewBoard builds a fresh board holding the level's starting layout.
func (l Level) NewBoard() (*core.Board, error) {
	return core.NewBoard(l.Layout)
}

// Width returns the number of columns in the layout.
func (l Level) Width() int {
	if len(l.Layout) == 0 {
		return 0
	}
	return len(l.Layout[0])
}

// Height returns the number of rows in the layout.
func (l Level) Height() int {
	return len(l.Layout)
}

// Loader reads levels from a file system.
type Loader struct {
	FS fs.FS
	// Skipped collects files that failed to parse during the last LoadAll.
	Skipped map[string]error
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root)}
}

// Builtin returns a loader over the embedded level set.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return &Loader{FS: sub}
}

// LoadAll walks the file system and loads every level file.
// Invalid files are skipped and recorded in Skipped.
// Levels are sorted by Order, then ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	l.Skipped = make(map[string]error)

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.Skipped[p] = err
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking files: %w", err)
	}

	Sort(levels)
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	return Level{
		ID:         parsed.ID,
		Name:       parsed.Name,
		Order:      parsed.Order,
		Difficulty: parsed.Difficulty,
		Layout:     parsed.Layout,
		Goal:       parsed.Goal,
		Metadata:   parsed.Metadata,
		FilePath:   p,
	}, nil
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

// ListIDs returns all level IDs in load order.
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

// Sort orders levels by Order, then ID.
func Sort(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].Order != levels[j].Order {
			return levels[i].Order < levels[j].Order
		}
		return levels[i].ID < levels[j].ID
	})
}

// Merge appends extra levels to base. An extra level replaces a base level
// with the same ID.
func Merge(base, extra []Level) []Level {
	byID := make(map[string]int, len(base))
	out := make([]Level, len(base))
	copy(out, base)
	for i, lvl := range out {
		byID[lvl.ID] = i
	}
	for _, lvl := range extra {
		if i, ok := byID[lvl.ID]; ok {
			out[i] = lvl
			continue
		}
		byID[lvl.ID] = len(out)
		out = append(out, lvl)
	}
	Sort(out)
	return out
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
