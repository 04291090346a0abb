package domain

// Cell is the occupancy of one board position. The two non-empty
// values double as player identities; Red always moves first.
type Cell int

const (
	Empty Cell = iota
	Red
	Black
)

func (c Cell) Opponent() Cell {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	}
	return "."
}

const (
	Rows         = 6
	Columns      = 7
	ToWin        = 4
	CenterColumn = Columns / 2
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrEmptyColumn  Error = "column is empty"
	ErrNoLegalMoves Error = "no legal moves"
	ErrGameOver     Error = "game is already over"
)
