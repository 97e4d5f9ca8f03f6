package cli

import (
	"fmt"
	"strings"

	"github.com/mdarud/pseudoku/internal/domain"
)

// ParseBoard reads a board from text: 81 cells in row-major order, digits
// 1..9 for givens, '0' or '.' for empty. Whitespace, newlines, and the
// separator characters of pretty-printed grids are ignored.
func ParseBoard(s string) (*domain.Board, error) {
	b := &domain.Board{}
	i := 0
	for _, ch := range s {
		switch {
		case ch >= '1' && ch <= '9':
			if i >= 81 {
				return nil, fmt.Errorf("board text has more than 81 cells")
			}
			b.Values[i/9][i%9] = uint8(ch - '0')
			b.Fixed[i/9][i%9] = true
			i++
		case ch == '0' || ch == '.':
			if i >= 81 {
				return nil, fmt.Errorf("board text has more than 81 cells")
			}
			i++
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '|' || ch == '-' || ch == '+':
			// separators from pretty output
		default:
			return nil, fmt.Errorf("unexpected character %q in board text", ch)
		}
	}
	if i != 81 {
		return nil, fmt.Errorf("board text has %d cells, want 81", i)
	}
	return b, nil
}

// FormatBoard renders a board as 9 rows with 3x3 box separators, '.' for
// empty cells. ParseBoard accepts the output unchanged.
func FormatBoard(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatLine renders a board as a single 81-character string, '.' for empty.
func FormatLine(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}
