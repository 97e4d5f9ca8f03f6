package usecase

import (
	"context"
	"errors"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/ports"
)

// Service is the nil-guarded façade the adapters talk to.
type Service struct {
	Solver    ports.Orchestrator
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Orchestrator, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve runs one algorithm over b and returns the solved board, the step
// trace, and stats.
func (u *Service) Solve(ctx context.Context, b *domain.Board, algo domain.Algorithm) (*domain.Board, []domain.Step, ports.Stats, error) {
	if u.Solver == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	if err := u.Solver.SetBoard(b); err != nil {
		return nil, nil, ports.Stats{}, err
	}
	st, err := u.Solver.Solve(ctx, algo)
	if err != nil {
		return nil, nil, st, err
	}
	return u.Solver.Solution(), u.Solver.SolutionSteps(), st, nil
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}
