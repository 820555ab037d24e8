package core

import (
	"context"
	"errors"
)

var (
	ErrNoSolution  = errors.New("klotski: no solution")
	ErrSearchLimit = errors.New("klotski: search limit reached")
)

// DefaultMaxStates bounds the number of distinct boards a search visits.
const DefaultMaxStates = 500_000

// Goal is reached when a piece of Kind is anchored at Anchor.
type Goal struct {
	Kind   Kind
	Anchor Pos
}

// Reached reports whether the goal holds on b.
func (g Goal) Reached(b *Board) bool {
	if b.At(g.Anchor) != g.Kind {
		return false
	}
	pc, ok := b.PieceAt(g.Anchor)
	return ok && pc.Anchor == g.Anchor && pc.Kind == g.Kind
}

// SolveOptions tunes the search.
type SolveOptions struct {
	MaxStates int // 0 means DefaultMaxStates
}

type searchNode struct {
	parent string
	move   Move
}

// Solve runs a breadth-first search from b and returns the shortest list of
// single-cell moves that reaches goal. b itself is not modified.
// Pieces of the same kind are interchangeable, so states are keyed by the
// occupancy grid alone. Only keys are stored; a single scratch board is
// reloaded from each key as it is expanded.
func Solve(ctx context.Context, b *Board, goal Goal, opts SolveOptions) ([]Move, error) {
	limit := opts.MaxStates
	if limit <= 0 {
		limit = DefaultMaxStates
	}

	work := b.Clone()
	if goal.Reached(work) {
		return nil, nil
	}

	startKey := work.Key()
	visited := map[string]searchNode{startKey: {}}
	queue := []string{startKey}

	for expanded := 0; len(queue) > 0; expanded++ {
		if expanded%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		key := queue[0]
		queue = queue[1:]
		work.loadKey(key)

		for _, m := range legalMoves(work) {
			w, h := m.Kind.Size()
			_ = work.ClearRegion(m.From, w, h)
			_ = work.SetRegion(m.To, w, h, m.Kind)
			nextKey := work.Key()
			reached := goal.Reached(work)
			_ = work.ClearRegion(m.To, w, h)
			_ = work.SetRegion(m.From, w, h, m.Kind)

			if _, seen := visited[nextKey]; seen {
				continue
			}
			visited[nextKey] = searchNode{parent: key, move: m}

			if reached {
				return unwind(visited, nextKey, startKey), nil
			}
			if len(visited) >= limit {
				return nil, ErrSearchLimit
			}
			queue = append(queue, nextKey)
		}
	}

	return nil, ErrNoSolution
}

func unwind(visited map[string]searchNode, key, startKey string) []Move {
	var path []Move
	for key != startKey {
		node := visited[key]
		path = append(path, node.move)
		key = node.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
