package usecase

import (
	"context"
	"testing"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/generator"
	"github.com/mdarud/pseudoku/internal/hint"
	"github.com/mdarud/pseudoku/internal/solver"
	"github.com/mdarud/pseudoku/internal/validator"
)

func TestServiceNilGuards(t *testing.T) {
	ctx := context.Background()
	u := &Service{}
	if _, _, _, err := u.Solve(ctx, &domain.Board{}, domain.AlgorithmDLX); err == nil {
		t.Fatal("Solve without a solver should fail")
	}
	if _, _, err := u.Generate(ctx, 1, domain.Easy); err == nil {
		t.Fatal("Generate without a generator should fail")
	}
	if _, _, err := u.Validate(ctx, &domain.Board{}); err == nil {
		t.Fatal("Validate without a validator should fail")
	}
	if _, _, err := u.Hint(ctx, &domain.Board{}, domain.StrategySingles); err == nil {
		t.Fatal("Hint without a hinter should fail")
	}
}

func TestServiceGenerateThenSolve(t *testing.T) {
	ctx := context.Background()
	eng := solver.NewEngine()
	u := NewService(eng, generator.New(solver.NewDLXSolver()), validator.New(), hint.NewSingles())

	p, _, err := u.Generate(ctx, 7, domain.Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out, steps, st, err := u.Solve(ctx, &p.Board, domain.AlgorithmBitmask)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.Values != p.Solution.Values {
		t.Fatal("solve of a generated puzzle disagrees with its stored solution")
	}
	if len(steps) == 0 || st.Steps != len(steps) {
		t.Fatalf("trace accounting wrong: %d vs %d", len(steps), st.Steps)
	}
}
