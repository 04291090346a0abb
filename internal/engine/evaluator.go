package engine

import "github.com/fourstack/connect4/internal/domain"

// allWindows enumerates every four-cell line on the board as a start
// cell plus direction, built once at package init. 69 windows: 24
// horizontal, 21 vertical, 12 per diagonal.
type window struct {
	col, row           int
	deltaCol, deltaRow int
}

var allWindows = buildWindows()

func buildWindows() []window {
	windows := make([]window, 0, 69)
	for col := 0; col < domain.Columns; col++ {
		for row := 0; row < domain.Rows; row++ {
			if col+domain.ToWin <= domain.Columns {
				windows = append(windows, window{col, row, 1, 0})
			}
			if row+domain.ToWin <= domain.Rows {
				windows = append(windows, window{col, row, 0, 1})
			}
			if col+domain.ToWin <= domain.Columns && row+domain.ToWin <= domain.Rows {
				windows = append(windows, window{col, row, 1, 1})
			}
			if col+domain.ToWin <= domain.Columns && row-domain.ToWin >= -1 {
				windows = append(windows, window{col, row, 1, -1})
			}
		}
	}
	return windows
}

// Evaluate scores the board for perspective. It is a pure function of
// the board and the weights, and exactly zero-sum: scoring the same
// board for the opponent negates the result.
//
// Each window held by one color alone contributes that color's count
// weight; mixed windows contribute nothing. A completed four
// saturates the score at the win magnitude.
func Evaluate(b *domain.Board, perspective domain.Cell, w Weights) int {
	opponent := perspective.Opponent()
	score := 0
	ownFour, oppFour := false, false

	for _, win := range allWindows {
		own, theirs := 0, 0
		for i := 0; i < domain.ToWin; i++ {
			switch b.Cell(win.col+i*win.deltaCol, win.row+i*win.deltaRow) {
			case perspective:
				own++
			case opponent:
				theirs++
			}
		}
		switch {
		case own > 0 && theirs > 0:
			// mixed window, dead for both sides
		case own == 4:
			ownFour = true
		case theirs == 4:
			oppFour = true
		case own == 3:
			score += w.OpenThree
		case own == 2:
			score += w.OpenTwo
		case theirs == 3:
			score -= w.OpenThree
		case theirs == 2:
			score -= w.OpenTwo
		}
	}

	// Both-sides-won never occurs in reachable positions; treating it
	// as neutral keeps the zero-sum law on arbitrary boards.
	switch {
	case ownFour && oppFour:
		return 0
	case ownFour:
		return w.Win
	case oppFour:
		return -w.Win
	}

	// Center pieces join more winning lines. Counting both colors
	// keeps the score zero-sum.
	for row := 0; row < b.Height(domain.CenterColumn); row++ {
		switch b.Cell(domain.CenterColumn, row) {
		case perspective:
			score += w.Center
		case opponent:
			score -= w.Center
		}
	}

	return score
}
