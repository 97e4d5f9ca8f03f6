package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/solver"
	"github.com/mdarud/pseudoku/internal/validator"
)

func newTestRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func countHoles(b *[9][9]uint8) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewDLXSolver()
	g := New(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"extreme", domain.Extreme},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			seed := int64(12345)
			p, st, err := g.Generate(ctx, seed, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			if p.ID == "" {
				t.Fatal("puzzle has no ID")
			}
			if p.Solution == nil {
				t.Fatal("puzzle has no solution")
			}

			// the solution is a complete valid grid
			if holes := countHoles(&p.Solution.Values); holes != 0 {
				t.Fatalf("solution has %d empty cells", holes)
			}
			if ok, conf, _ := validator.New().Validate(ctx, p.Solution); !ok {
				t.Fatalf("solution is invalid, conflicts=%v", conf)
			}

			// every given in the puzzle matches the solution
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					v := p.Board.Values[r][c]
					if v != 0 && v != p.Solution.Values[r][c] {
						t.Fatalf("given (%d,%d)=%d contradicts solution %d", r, c, v, p.Solution.Values[r][c])
					}
					if (v != 0) != p.Board.Fixed[r][c] {
						t.Fatalf("fixed mask wrong at (%d,%d)", r, c)
					}
				}
			}

			// hole count lands in the difficulty range; extreme may fall
			// short of its target when the attempt budget runs out
			hr := tc.diff.Holes(false)
			holes := countHoles(&p.Board.Values)
			if holes > hr.Max {
				t.Fatalf("%s dug %d holes, above max %d", tc.name, holes, hr.Max)
			}
			if tc.diff != domain.Extreme && holes < hr.Min {
				t.Fatalf("%s dug %d holes, below min %d", tc.name, holes, hr.Min)
			}

			// the default policy keeps the puzzle uniquely solvable
			ok, _, err := s.Unique(ctx, &p.Board)
			if err != nil || !ok {
				t.Fatalf("puzzle for %s is not unique: %v", tc.name, err)
			}
			if st.Duration <= 0 {
				t.Fatal("stats carry no duration")
			}
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	g := New(solver.NewDLXSolver())

	p1, _, err := g.Generate(ctx, 42, domain.Easy)
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	p2, _, err := g.Generate(ctx, 42, domain.Easy)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if p1.Board.Values != p2.Board.Values || p1.Solution.Values != p2.Solution.Values {
		t.Fatal("same seed produced different puzzles")
	}
	p3, _, err := g.Generate(ctx, 43, domain.Easy)
	if err != nil {
		t.Fatalf("third Generate failed: %v", err)
	}
	if p1.Solution.Values == p3.Solution.Values {
		t.Fatal("different seeds produced the same full grid")
	}
}

func TestFillGridDiagonalSeeding(t *testing.T) {
	ctx := context.Background()
	g := solverlessGrid(t, ctx, 7)

	if ok, conf, _ := validator.New().Validate(ctx, &domain.Board{Values: *g}); !ok {
		t.Fatalf("filled grid invalid, conflicts=%v", conf)
	}
	if holes := countHoles(g); holes != 0 {
		t.Fatalf("filled grid has %d empty cells", holes)
	}
}

func solverlessGrid(t *testing.T, ctx context.Context, seed int64) *[9][9]uint8 {
	t.Helper()
	var grid [9][9]uint8
	rng := newTestRand(seed)
	if !fillGrid(ctx, rng, &grid) {
		t.Fatal("fillGrid failed on an empty board")
	}
	return &grid
}

func TestDigRespectsUniquenessGate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s := solver.NewDLXSolver()
	g := New(s)

	grid := *solverlessGrid(t, ctx, 99)
	nodes := 0
	removed := g.dig(ctx, newTestRand(99), &grid, 40, 0, &nodes)
	if removed == 0 {
		t.Fatal("dig removed nothing")
	}
	if got := countHoles(&grid); got != removed {
		t.Fatalf("dig reported %d removals but the grid has %d holes", removed, got)
	}
	ok, _, err := s.Unique(ctx, &domain.Board{Values: grid})
	if err != nil || !ok {
		t.Fatalf("dug grid lost uniqueness: %v", err)
	}
	if nodes == 0 {
		t.Fatal("dig did not account solver nodes")
	}
}
