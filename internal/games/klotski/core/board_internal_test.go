package core

import (
	"context"
	"testing"
)

func TestLoadKeyRestoresBoard(t *testing.T) {
	b := MustParse("3443", "3443", "3223", "3113", "1001")
	want := b.Clone()
	key := b.Key()

	ctrl := NewController(b, nil)
	if moved, err := ctrl.Move(4, 0, Right); !moved || err != nil {
		t.Fatalf("Move() = %v, %v; want moved", moved, err)
	}
	if b.Key() == key {
		t.Fatal("move did not change the key")
	}

	b.loadKey(key)
	if !b.Equal(want) {
		t.Errorf("loadKey() =\n%s\nwant\n%s", b, want)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("reloaded board invalid: %v", err)
	}
}

func TestSolveLeavesInputUntouched(t *testing.T) {
	b := MustParse("440", "440", "000")
	before := b.Key()

	path, err := Solve(context.Background(), b, Goal{Kind: Big, Anchor: P(1, 1)}, SolveOptions{})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if len(path) != 2 {
		t.Errorf("len(path) = %d, want 2", len(path))
	}
	if b.Key() != before {
		t.Errorf("Solve() mutated its input:\n%s", b)
	}
}
