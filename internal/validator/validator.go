package validator

import (
	"context"

	"github.com/mdarud/pseudoku/internal/domain"
)

// FastValidator scans the 27 units (rows, columns, boxes) with one bitmask
// each, reporting every cell that repeats a value already seen in its unit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit yields the 9 cells of unit u: 0..8 rows, 9..17 columns, 18..26 boxes.
func unit(u, i int) (r, c int) {
	switch {
	case u < 9:
		return u, i
	case u < 18:
		return i, u - 9
	default:
		b := u - 18
		return (b/3)*3 + i/3, (b%3)*3 + i%3
	}
}

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for u := 0; u < 27; u++ {
		seen := 0
		for i := 0; i < 9; i++ {
			r, c := unit(u, i)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
