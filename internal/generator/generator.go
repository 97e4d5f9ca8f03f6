package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/ports"
)

// Generator digs puzzles out of a full random grid using a provided Solver
// to keep every removal solvable and, by default, uniquely solvable.
//
// AllowNonUnique switches off the uniqueness gate: removals then only need
// some solution to survive, which digs much deeper (near-minimal clue
// counts) but can yield puzzles with several solutions. The gated policy is
// the well-posed default.
type Generator struct {
	Solver         ports.Solver
	AllowNonUnique bool
}

// New wires a generator that uses the given solver for removal checks.
func New(s ports.Solver) *Generator {
	return &Generator{Solver: s}
}

// Levels lists the supported difficulty labels, easiest first.
func (g *Generator) Levels() []domain.Difficulty {
	return domain.Difficulties()
}

// Generate creates a puzzle and its solution from seed at a target
// difficulty. All randomness flows from the seed, so equal seeds reproduce
// equal puzzles under the same policy.
func (g *Generator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	var full [9][9]uint8
	if !fillGrid(ctx, rng, &full) {
		// an unconstrained grid always completes; only cancellation stops it
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}

	// 2) carve out holes while preserving the removal policy
	hr := diff.Holes(g.AllowNonUnique)
	holes := hr.Min + rng.Intn(hr.Max-hr.Min+1)
	puz := full
	nodes := 0
	g.dig(ctx, rng, &puz, holes, 0, &nodes)

	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = puz[r][c] != 0
		}
	}
	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		Solution:   &domain.Board{Values: full},
		CreatedAt:  time.Now().UnixNano(),
	}
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	return p, st, nil
}
