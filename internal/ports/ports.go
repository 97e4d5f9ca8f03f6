package ports

import (
	"context"
	"time"

	"github.com/mdarud/pseudoku/internal/domain"
)

// Stats captures performance characteristics of one solve or generate run.
type Stats struct {
	Algorithm domain.Algorithm
	Steps     int // committed assignments surviving in the trace
	Nodes     int // candidates attempted, including backtracked ones
	Duration  time.Duration
}

// Solver runs one algorithm over a board, returning the solved board and the
// step trace, and can test solution uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, []domain.Step, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Orchestrator owns a board, dispatches to a chosen algorithm, and retains
// the solution and trace of the last solve.
type Orchestrator interface {
	SetBoard(b *domain.Board) error
	Solve(ctx context.Context, algo domain.Algorithm) (Stats, error)
	Solution() *domain.Board
	SolutionSteps() []domain.Step
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}
