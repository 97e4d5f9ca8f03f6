package domain

// Algorithm selects one of the three solving strategies.
type Algorithm int

const (
	AlgorithmDLX      Algorithm = iota // exact cover / dancing links
	AlgorithmBitmask                   // backtracking over bitmask candidates
	AlgorithmBacktrack                 // naive backtracking, raw 1..9 per cell
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDLX:
		return "dlx"
	case AlgorithmBitmask:
		return "bitmask"
	case AlgorithmBacktrack:
		return "backtrack"
	}
	return "unknown"
}

// Algorithms lists every solving strategy in dispatch order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDLX, AlgorithmBitmask, AlgorithmBacktrack}
}

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Extreme
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	}
	return "unknown"
}

// Difficulties lists every level, easiest first.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Extreme}
}

// HoleRange is the inclusive span of cells removed from a full grid.
type HoleRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var holeRanges = map[Difficulty]HoleRange{
	Easy:    {Min: 30, Max: 35},
	Medium:  {Min: 35, Max: 40},
	Hard:    {Min: 40, Max: 45},
	Extreme: {Min: 46, Max: 64},
}

// Extreme without the uniqueness gate digs down to near-minimal clue counts.
var extremeNonUnique = HoleRange{Min: 71, Max: 77}

// Holes returns the removal range for a difficulty. The extreme range widens
// when non-unique puzzles are allowed, since the uniqueness gate is what
// keeps deep digs bounded.
func (d Difficulty) Holes(allowNonUnique bool) HoleRange {
	if d == Extreme && allowNonUnique {
		return extremeNonUnique
	}
	if r, ok := holeRanges[d]; ok {
		return r
	}
	return holeRanges[Medium]
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
)
