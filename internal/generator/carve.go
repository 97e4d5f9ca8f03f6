package generator

import (
	"context"
	"math/rand"

	"github.com/mdarud/pseudoku/internal/domain"
)

// maxDigPasses bounds the retry recursion when a pass over all 81 positions
// could not remove the requested number of cells.
const maxDigPasses = 3

// fillGrid builds a complete valid grid: the three diagonal boxes get
// independent random permutations (they share no row, column, or box, so
// they cannot conflict), then the remaining 54 cells are completed by
// deterministic ascending backtracking. The diagonal shuffles are the only
// source of randomness; they vary the completion enough.
func fillGrid(ctx context.Context, rng *rand.Rand, g *[9][9]uint8) bool {
	for b := 0; b < 3; b++ {
		perm := rng.Perm(9)
		for i, n := range perm {
			g[b*3+i/3][b*3+i%3] = uint8(n + 1)
		}
	}
	return fillRemaining(ctx, g, 0, 0)
}

func fillRemaining(ctx context.Context, g *[9][9]uint8, r, c int) bool {
	if ctx.Err() != nil {
		return false
	}
	if r == 9 {
		return true
	}
	nr, nc := r, c+1
	if nc == 9 {
		nr, nc = r+1, 0
	}
	if g[r][c] != 0 {
		return fillRemaining(ctx, g, nr, nc)
	}
	for v := uint8(1); v <= 9; v++ {
		if allowed(g, r, c, v) {
			g[r][c] = v
			if fillRemaining(ctx, g, nr, nc) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}

// dig removes up to holes cells from grid in a shuffled position order,
// keeping only removals the policy accepts: the reduced grid must still
// solve, and unless AllowNonUnique is set it must still solve uniquely.
// When a full pass falls short it recurses on the remainder over the
// partially dug grid, up to maxDigPasses. Returns the number removed.
func (g *Generator) dig(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8, holes, pass int, nodes *int) int {
	if holes <= 0 || pass >= maxDigPasses {
		return 0
	}
	removed := 0
	for _, pos := range rng.Perm(81) {
		if removed == holes || ctx.Err() != nil {
			break
		}
		r, c := pos/9, pos%9
		if grid[r][c] == 0 {
			continue
		}
		old := grid[r][c]
		grid[r][c] = 0
		_, _, st, err := g.Solver.Solve(ctx, &domain.Board{Values: *grid})
		*nodes += st.Nodes
		if err != nil {
			grid[r][c] = old // this cell cannot be removed
			continue
		}
		if !g.AllowNonUnique {
			unique, st, err := g.Solver.Unique(ctx, &domain.Board{Values: *grid})
			*nodes += st.Nodes
			if err != nil || !unique {
				grid[r][c] = old
				continue
			}
		}
		removed++
	}
	if removed > 0 && removed < holes && ctx.Err() == nil {
		removed += g.dig(ctx, rng, grid, holes-removed, pass+1, nodes)
	}
	return removed
}

// allowed mirrors row/col/box checks locally for the generator.
func allowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
