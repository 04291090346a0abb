package domain

// Game holds one live game: the board, whose turn it is, and how it
// ended. The board is exclusively owned here; the search only ever
// borrows it under drop/undo discipline.
type Game struct {
	Board         *Board
	CurrentPlayer Cell
	Status        GameStatus
	Winner        Cell
	Moves         []int
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Red,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

// MakeMove drops the current player's piece in column, updates the
// game status and flips the turn. It returns the row the piece
// landed in.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	row, err := g.Board.Drop(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}
	g.Moves = append(g.Moves, column)

	if Winner(g.Board, column, row) == g.CurrentPlayer {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
