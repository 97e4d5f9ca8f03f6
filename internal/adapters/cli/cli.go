package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdarud/pseudoku/internal/domain"
	"github.com/mdarud/pseudoku/internal/generator"
	"github.com/mdarud/pseudoku/internal/hint"
	"github.com/mdarud/pseudoku/internal/solver"
	"github.com/mdarud/pseudoku/internal/usecase"
	"github.com/mdarud/pseudoku/internal/validator"
)

// NewRootCommand builds the pseudoku command tree. The CLI is a thin
// presentation layer: it parses board text, calls the core through the
// usecase façade, and prints grids and step traces.
func NewRootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "pseudoku",
		Short:         "Solve and generate 9x9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(logLevel))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newSolveCommand(), newGenerateCommand(), newHintCommand(), newLevelsCommand())
	return root
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func parseAlgorithm(s string) (domain.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dlx", "":
		return domain.AlgorithmDLX, nil
	case "bitmask", "bit":
		return domain.AlgorithmBitmask, nil
	case "backtrack", "backtracking", "simple":
		return domain.AlgorithmBacktrack, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (want dlx|bitmask|backtrack)", s)
}

func parseDifficulty(s string) (domain.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy, nil
	case "medium", "":
		return domain.Medium, nil
	case "hard":
		return domain.Hard, nil
	case "extreme":
		return domain.Extreme, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q (want easy|medium|hard|extreme)", s)
}

// readBoard loads a board from the first argument, or stdin when the
// argument is missing or "-".
func readBoard(cmd *cobra.Command, args []string) (*domain.Board, error) {
	if len(args) > 0 && args[0] != "-" {
		return ParseBoard(args[0])
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read board from stdin: %w", err)
	}
	return ParseBoard(string(raw))
}

func newService() *usecase.Service {
	eng := solver.NewEngine()
	gen := generator.New(solver.NewDLXSolver())
	return usecase.NewService(eng, gen, validator.New(), hint.NewSingles())
}

func newSolveCommand() *cobra.Command {
	var (
		algoName string
		trace    bool
		timeout  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "solve [board]",
		Short: "Solve a puzzle given as 81 characters (digits, '.' or '0' for empty)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := parseAlgorithm(algoName)
			if err != nil {
				return err
			}
			board, err := readBoard(cmd, args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			out, steps, st, err := newService().Solve(ctx, board, algo)
			if err != nil {
				return err
			}
			slog.Info("solved",
				"algorithm", st.Algorithm.String(),
				"steps", st.Steps,
				"nodes", st.Nodes,
				"dur", st.Duration.Round(time.Microsecond),
			)
			fmt.Fprint(cmd.OutOrStdout(), FormatBoard(out))
			if trace {
				printTrace(cmd.OutOrStdout(), steps)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algoName, "algorithm", "a", "dlx", "dlx|bitmask|backtrack")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print the step trace after the solution")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "abort the solve after this long")
	return cmd
}

func printTrace(w io.Writer, steps []domain.Step) {
	for i, s := range steps {
		fmt.Fprintf(w, "%3d: (%d,%d) tried %v -> %d\n", i+1, s.Row, s.Col, s.Tested, s.Value)
	}
}

func newGenerateCommand() *cobra.Command {
	var (
		diffName       string
		seed           int64
		allowNonUnique bool
		showSolution   bool
		timeout        time.Duration
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle and its solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := parseDifficulty(diffName)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			gen := generator.New(solver.NewDLXSolver())
			gen.AllowNonUnique = allowNonUnique
			svc := usecase.NewService(solver.NewEngine(), gen, validator.New(), hint.NewSingles())
			p, st, err := svc.Generate(ctx, seed, diff)
			if err != nil {
				return err
			}
			slog.Info("generated",
				"id", p.ID,
				"difficulty", p.Difficulty.String(),
				"seed", p.Seed,
				"nodes", st.Nodes,
				"dur", st.Duration.Round(time.Millisecond),
			)
			fmt.Fprint(cmd.OutOrStdout(), FormatBoard(&p.Board))
			fmt.Fprintf(cmd.OutOrStdout(), "line: %s\n", FormatLine(&p.Board))
			if showSolution && p.Solution != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "solution:")
				fmt.Fprint(cmd.OutOrStdout(), FormatBoard(p.Solution))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&diffName, "difficulty", "d", "medium", "easy|medium|hard|extreme")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&allowNonUnique, "allow-non-unique", false, "skip the uniqueness check when digging holes")
	cmd.Flags().BoolVarP(&showSolution, "solution", "s", false, "print the solution after the puzzle")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "abort generation after this long")
	return cmd
}

func newHintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint [board]",
		Short: "Suggest the next naked single for a board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := readBoard(cmd, args)
			if err != nil {
				return err
			}
			h, ok, err := newService().Hint(cmd.Context(), board, domain.StrategySingles)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no hint found")
				return nil
			}
			cell := h.Cells[0]
			fmt.Fprintf(cmd.OutOrStdout(), "(%d,%d): %s\n", cell.Row, cell.Col, h.Message)
			return nil
		},
	}
	return cmd
}

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List difficulty levels and their hole ranges",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range domain.Difficulties() {
				hr := d.Holes(false)
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d-%d holes (%d-%d givens)\n",
					d.String(), hr.Min, hr.Max, 81-hr.Max, 81-hr.Min)
			}
		},
	}
}
