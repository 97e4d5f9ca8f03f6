package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/ports"
	"github.com/mdarud/pseudoku/internal/validator"
)

var (
	// ErrUnsolvable reports a board with no legal completion.
	ErrUnsolvable = errors.New("no solution")
	// ErrMalformed reports values outside 0..9 or conflicting givens.
	ErrMalformed = errors.New("malformed board")
	// ErrUnknownAlgorithm reports a dispatch on an unregistered algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// ForAlgorithm returns a standalone solver implementing one algorithm.
func ForAlgorithm(a domain.Algorithm) (ports.Solver, error) {
	switch a {
	case domain.AlgorithmDLX:
		return NewDLXSolver(), nil
	case domain.AlgorithmBitmask:
		return NewBitmaskSolver(), nil
	case domain.AlgorithmBacktrack:
		return NewBacktrackingSolver(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
}

// unsolvableOr distinguishes cancellation from genuine exhaustion.
func unsolvableOr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrUnsolvable
}

// Engine owns a private board copy, dispatches a solve to one of the three
// algorithms, and retains the trace and solution of the last run. Accessors
// return copies, so callers cannot mutate engine state between solves.
type Engine struct {
	board     domain.Board
	solution  *domain.Board
	steps     []domain.Step
	solvers   map[domain.Algorithm]ports.Solver
	validator ports.Validator
}

func NewEngine() *Engine {
	return &Engine{
		solvers: map[domain.Algorithm]ports.Solver{
			domain.AlgorithmDLX:       NewDLXSolver(),
			domain.AlgorithmBitmask:   NewBitmaskSolver(),
			domain.AlgorithmBacktrack: NewBacktrackingSolver(),
		},
		validator: validator.New(),
	}
}

// SetBoard stores a private copy and clears any previous trace/solution.
// Out-of-range values and conflicting givens fail fast here rather than
// corrupting a search.
func (e *Engine) SetBoard(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrMalformed, r, c, b.Values[r][c])
			}
		}
	}
	if ok, conflicts, _ := e.validator.Validate(context.Background(), b); !ok {
		return fmt.Errorf("%w: %d conflicting givens", ErrMalformed, len(conflicts))
	}
	e.board = *b
	e.solution = nil
	e.steps = nil
	return nil
}

// Solve runs the chosen algorithm over the stored board. On failure the
// stored solution stays nil and the error reports why; Stats are returned
// either way.
func (e *Engine) Solve(ctx context.Context, algo domain.Algorithm) (ports.Stats, error) {
	s, ok := e.solvers[algo]
	if !ok {
		return ports.Stats{Algorithm: algo}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
	e.solution = nil
	e.steps = nil
	out, steps, st, err := s.Solve(ctx, e.board.Clone())
	if err != nil {
		return st, err
	}
	e.solution = out
	e.steps = steps
	return st, nil
}

// Solution returns a copy of the solved board from the last successful
// solve, or nil if there is none.
func (e *Engine) Solution() *domain.Board {
	if e.solution == nil {
		return nil
	}
	return e.solution.Clone()
}

// SolutionSteps returns a copy of the last solve's trace.
func (e *Engine) SolutionSteps() []domain.Step {
	out := make([]domain.Step, len(e.steps))
	for i, s := range e.steps {
		s.Tested = cloneTested(s.Tested)
		out[i] = s
	}
	return out
}
