package formats

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

func TestParseYAMLDefaults(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: bare\nlayout:\n  - \"1.\"\n  - \"..\"\n"))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if lvl.Name != "bare" {
		t.Errorf("Name should default to the id, got %q", lvl.Name)
	}
	if lvl.Difficulty != "normal" {
		t.Errorf("Difficulty should default to normal, got %q", lvl.Difficulty)
	}
	if lvl.Goal != nil {
		t.Error("Goal should be nil when omitted")
	}
	if lvl.Layout[0][0] != core.Single || lvl.Layout[0][1] != core.Empty {
		t.Errorf("unexpected layout %v", lvl.Layout)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown digit", "id: x\nlayout:\n  - \"19\"\n", core.ErrUnknownKind},
		{"broken piece", "id: x\nlayout:\n  - \"30\"\n", core.ErrBrokenPiece},
		{"empty layout", "id: x\nlayout: []\n", core.ErrEmptyLayout},
		{"goal off board", "id: x\ngoal: {kind: 4, row: 2, col: 0}\nlayout:\n  - \"44\"\n  - \"44\"\n", core.ErrOutOfBounds},
		{"empty goal kind", "id: x\ngoal: {kind: 0, row: 0, col: 0}\nlayout:\n  - \"1\"\n", core.ErrUnknownKind},
		{"goal kind past uint8", "id: x\ngoal: {kind: 260, row: 0, col: 0}\nlayout:\n  - \"44\"\n  - \"44\"\n", core.ErrUnknownKind},
		{"negative goal kind", "id: x\ngoal: {kind: -252, row: 0, col: 0}\nlayout:\n  - \"44\"\n  - \"44\"\n", core.ErrUnknownKind},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseYAML() error = %v, want %v", err, tc.want)
			}
		})
	}
}
