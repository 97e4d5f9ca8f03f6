package hint

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/mdarud/pseudoku/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

const allNums uint16 = 0x3FE // bits 1..9

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if cand := candidates(b, r, c); bits.OnesCount16(cand) == 1 {
				v := uint8(bits.TrailingZeros16(cand))
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Value:    v,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

// candidates masks out every value visible from (r,c).
func candidates(b *domain.Board, r, c int) uint16 {
	var seen uint16
	for i := 0; i < 9; i++ {
		seen |= 1 << b.Values[r][i]
		seen |= 1 << b.Values[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			seen |= 1 << b.Values[br+dr][bc+dc]
		}
	}
	return allNums &^ seen
}
