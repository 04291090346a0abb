package domain

// The four line directions, as (deltaColumn, deltaRow). Each is
// scanned both ways from the last-placed piece.
var winDirections = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // diagonal /
	{1, -1}, // diagonal \
}

// Winner reports who, if anyone, completed four-in-a-row with the
// piece at (lastColumn, lastRow). Only lines through that cell are
// checked: any new win must pass through the most recent piece.
func Winner(b *Board, lastColumn, lastRow int) Cell {
	player := b.Cell(lastColumn, lastRow)
	if player == Empty {
		return Empty
	}
	for _, dir := range winDirections {
		run := 1 +
			countInDirection(b, lastColumn, lastRow, dir[0], dir[1], player) +
			countInDirection(b, lastColumn, lastRow, -dir[0], -dir[1], player)
		if run >= ToWin {
			return player
		}
	}
	return Empty
}

// countInDirection counts player's consecutive pieces starting one
// step away from (column, row) in the given direction.
func countInDirection(b *Board, column, row, deltaCol, deltaRow int, player Cell) int {
	count := 0
	c, r := column+deltaCol, row+deltaRow
	for c >= 0 && c < Columns && r >= 0 && r < Rows && b.Cell(c, r) == player {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}
