package domain

// Board holds current values and which cells are fixed givens.
// Values uses 0 for an empty cell and 1..9 for a placed digit.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step records one committed assignment during a solve: the cell, every
// value tried at that cell before (and including) the one that stuck, and
// the value itself. The surviving steps of a solve, in order, replay the
// successful search path; Tested always ends with Value.
type Step struct {
	Row    int     `json:"row"`
	Col    int     `json:"col"`
	Tested []uint8 `json:"tested"`
	Value  uint8   `json:"value"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Value    uint8        `json:"value,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a generated Sudoku together with its solution and metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	Solution   *Board     `json:"solution,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}
