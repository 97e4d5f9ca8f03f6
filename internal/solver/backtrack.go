package solver

// BacktrackingSolver is the naive baseline: first empty cell in row-major
// order, raw values 1..9 in ascending order, legality via a 27-cell scan.
// Its traces record every raw value attempted at a cell, so they run longer
// than the bitmask and DLX traces for the same puzzle.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers shared by the backtracking solvers ---

func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
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

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// cloneTested copies a per-cell tested-value accumulator into a step.
func cloneTested(tested []uint8) []uint8 {
	return append([]uint8(nil), tested...)
}
