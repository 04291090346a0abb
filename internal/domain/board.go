package domain

import "strings"

// Board is the 7x6 grid. Row 0 is the bottom row, so a column's
// occupied cells are always cells[col][0:heights[col]].
type Board struct {
	cells   [Columns][Rows]Cell
	heights [Columns]int
}

func NewBoard() *Board {
	return &Board{}
}

// Drop places player's piece on the lowest empty cell of column and
// returns the row it landed in. Callers keep the row to undo the move
// or to feed Winner.
func (b *Board) Drop(column int, player Cell) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidMove
	}
	row := b.heights[column]
	if row >= Rows {
		return -1, ErrColumnFull
	}
	b.cells[column][row] = player
	b.heights[column]++
	return row, nil
}

// Undo removes the topmost piece of column. The search uses this to
// backtrack, so it must be called with the column of the most recent
// Drop.
func (b *Board) Undo(column int) error {
	if column < 0 || column >= Columns {
		return ErrInvalidMove
	}
	if b.heights[column] == 0 {
		return ErrEmptyColumn
	}
	b.heights[column]--
	b.cells[column][b.heights[column]] = Empty
	return nil
}

func (b *Board) Cell(column, row int) Cell {
	return b.cells[column][row]
}

func (b *Board) Height(column int) int {
	return b.heights[column]
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.heights[c] < Rows {
			return false
		}
	}
	return true
}

// LegalMoves lists the playable columns in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if b.heights[c] < Rows {
			moves = append(moves, c)
		}
	}
	return moves
}

// Clone deep-copies the board. The serial search never copies; clones
// exist so parallel root workers each own an independent board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		sb.WriteString("|")
		for col := 0; col < Columns; col++ {
			sb.WriteString(" " + b.cells[col][row].String())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  1 2 3 4 5 6 7")
	return sb.String()
}
