package solver

import (
	"context"
	"math/bits"
	"time"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/ports"
)

// BitmaskSolver backtracks like the naive solver but keeps row/col/box
// occupancy in 9-bit masks, so the candidate set of a cell is one mask
// expression instead of a 27-cell scan.
type BitmaskSolver struct{}

func NewBitmaskSolver() *BitmaskSolver { return &BitmaskSolver{} }

// allNums has bits 1..9 set; bit v means value v is present.
const allNums uint16 = 0x3FE

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

// bitState mirrors a grid as three mask arrays. Every grid write goes
// through place/remove so the masks and the grid never diverge.
type bitState struct {
	rows  [9]uint16
	cols  [9]uint16
	boxes [9]uint16
}

func (st *bitState) init(g *[9][9]uint8) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				bit := uint16(1) << v
				st.rows[r] |= bit
				st.cols[c] |= bit
				st.boxes[boxOf(r, c)] |= bit
			}
		}
	}
}

func (st *bitState) candidates(r, c int) uint16 {
	return allNums &^ (st.rows[r] | st.cols[c] | st.boxes[boxOf(r, c)])
}

func (st *bitState) place(r, c int, v uint8) {
	bit := uint16(1) << v
	st.rows[r] |= bit
	st.cols[c] |= bit
	st.boxes[boxOf(r, c)] |= bit
}

func (st *bitState) remove(r, c int, v uint8) {
	bit := uint16(1) << v
	st.rows[r] &^= bit
	st.cols[c] &^= bit
	st.boxes[boxOf(r, c)] &^= bit
}

func (s *BitmaskSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, []domain.Step, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	var masks bitState
	masks.init(&grid)
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
		cand := masks.candidates(r, c)
		if cand == 0 {
			return false
		}
		var tested []uint8
		// lowest set bit first, so values come out in ascending order
		for m := cand; m != 0; {
			bit := m & -m
			m &^= bit
			v := uint8(bits.TrailingZeros16(bit))
			nodes++
			tested = append(tested, v)
			grid[r][c] = v
			masks.place(r, c, v)
			steps = append(steps, domain.Step{Row: r, Col: c, Tested: cloneTested(tested), Value: v})
			if dfs() {
				return true
			}
			steps = steps[:len(steps)-1]
			masks.remove(r, c, v)
			grid[r][c] = 0
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Algorithm: domain.AlgorithmBitmask, Nodes: nodes, Duration: time.Since(start)}
		return nil, nil, st, unsolvableOr(ctx)
	}
	st := ports.Stats{Algorithm: domain.AlgorithmBitmask, Steps: len(steps), Nodes: nodes, Duration: time.Since(start)}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, steps, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BitmaskSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	var masks bitState
	masks.init(&grid)
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for m := masks.candidates(r, c); m != 0; {
			bit := m & -m
			m &^= bit
			v := uint8(bits.TrailingZeros16(bit))
			nodes++
			grid[r][c] = v
			masks.place(r, c, v)
			if dfs() {
				return true
			}
			masks.remove(r, c, v)
			grid[r][c] = 0
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Algorithm: domain.AlgorithmBitmask, Nodes: nodes, Duration: time.Since(start)}
	return count == 1, st, nil
}
