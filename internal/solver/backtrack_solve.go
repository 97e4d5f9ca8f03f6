package solver

import (
	"context"
	"time"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/ports"
)

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, []domain.Step, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	steps := make([]domain.Step, 0, 64)

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		// The accumulator deliberately keeps values rejected by isValid:
		// the trace narrates every raw attempt of the naive search.
		var tested []uint8
		for v := uint8(1); v <= 9; v++ {
			nodes++
			tested = append(tested, v)
			if !isValid(&grid, r, c, v) {
				continue
			}
			grid[r][c] = v
			steps = append(steps, domain.Step{Row: r, Col: c, Tested: cloneTested(tested), Value: v})
			if dfs() {
				return true
			}
			steps = steps[:len(steps)-1]
			grid[r][c] = 0
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Algorithm: domain.AlgorithmBacktrack, Nodes: nodes, Duration: time.Since(start)}
		return nil, nil, st, unsolvableOr(ctx)
	}
	st := ports.Stats{Algorithm: domain.AlgorithmBacktrack, Steps: len(steps), Nodes: nodes, Duration: time.Since(start)}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, steps, st, nil
}
