package levels_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
)

const sampleLevel = `
id: sample
name: Sample
order: 7
difficulty: easy
goal: {kind: 4, row: 1, col: 0}
layout:
  - "44"
  - "44"
  - "00"
`

func TestBuiltinLevels(t *testing.T) {
	all, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(all) < 4 {
		t.Fatalf("expected at least 4 built-in levels, got %d", len(all))
	}

	seen := map[string]bool{}
	for i, lvl := range all {
		if seen[lvl.ID] {
			t.Errorf("duplicate level id %q", lvl.ID)
		}
		seen[lvl.ID] = true

		if lvl.Goal == nil {
			t.Errorf("level %s has no goal", lvl.ID)
		}
		if _, err := lvl.NewBoard(); err != nil {
			t.Errorf("level %s: NewBoard() failed: %v", lvl.ID, err)
		}
		if i > 0 && all[i-1].Order > lvl.Order {
			t.Errorf("levels not sorted by order at %s", lvl.ID)
		}
	}

	if !seen["huarong-dao"] {
		t.Error("classic huarong-dao level missing")
	}
}

func TestLoadByID(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("huarong-dao")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}
	if lvl.Width() != 4 || lvl.Height() != 5 {
		t.Errorf("huarong-dao is %dx%d, want 4x5", lvl.Width(), lvl.Height())
	}
	if lvl.Goal.Kind != core.Big || lvl.Goal.Anchor != core.P(3, 1) {
		t.Errorf("huarong-dao goal = %+v", *lvl.Goal)
	}

	if _, err := levels.Builtin().LoadByID("nope"); err == nil {
		t.Error("LoadByID() should fail for unknown ids")
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml":      {Data: []byte(sampleLevel)},
		"nested/ok.yml":  {Data: []byte(strings.Replace(sampleLevel, "id: sample", "id: nested", 1))},
		"broken.yaml":    {Data: []byte("id: broken\nlayout:\n  - \"40\"\n")},
		"ragged.yaml":    {Data: []byte("id: ragged\nlayout:\n  - \"100\"\n  - \"10\"\n")},
		"readme.txt":     {Data: []byte("not a level")},
		"noid.yaml":      {Data: []byte("layout:\n  - \"1\"\n")},
		"badgoal.yaml":   {Data: []byte("id: badgoal\ngoal: {kind: 4, row: 1, col: 0}\nlayout:\n  - \"44\"\n  - \"44\"\n")},
		"badsyntax.yaml": {Data: []byte("id: [")},
	}

	loader := &levels.Loader{FS: fsys}
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("expected 2 valid levels, got %d", len(all))
	}
	if len(loader.Skipped) != 5 {
		t.Errorf("expected 5 skipped files, got %d: %v", len(loader.Skipped), loader.Skipped)
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatal(err)
	}
	if ids[0] != "nested" || ids[1] != "sample" {
		t.Errorf("ListIDs() = %v, want [nested sample]", ids)
	}
}

func TestNewLoaderFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sample.yaml"), []byte(sampleLevel), 0o600); err != nil {
		t.Fatal(err)
	}

	lvl, err := levels.NewLoader(dir).LoadByID("sample")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}
	if lvl.Name != "Sample" || lvl.Order != 7 || lvl.Difficulty != "easy" {
		t.Errorf("unexpected level fields: %+v", lvl)
	}
	if lvl.FilePath != "sample.yaml" {
		t.Errorf("FilePath = %q, want sample.yaml", lvl.FilePath)
	}
}

func TestMerge(t *testing.T) {
	base := []levels.Level{
		{ID: "a", Order: 1, Name: "A"},
		{ID: "b", Order: 2, Name: "B"},
	}
	extra := []levels.Level{
		{ID: "b", Order: 2, Name: "B2"},
		{ID: "c", Order: 0, Name: "C"},
	}

	merged := levels.Merge(base, extra)
	if len(merged) != 3 {
		t.Fatalf("Merge() returned %d levels, want 3", len(merged))
	}
	if merged[0].ID != "c" {
		t.Errorf("merged levels should be sorted by order, first = %s", merged[0].ID)
	}
	if merged[2].Name != "B2" {
		t.Errorf("extra level should replace base level, got %s", merged[2].Name)
	}
	if base[1].Name != "B" {
		t.Error("Merge() must not modify its input")
	}
}
