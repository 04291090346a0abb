package selfplay

import (
	"context"
	"fmt"
	"time"

	"github.com/fourstack/connect4/internal/domain"
	"github.com/fourstack/connect4/internal/engine"
	"github.com/fourstack/connect4/pkg/uid"
)

// Mover is the decision side of the engine, satisfied by
// *engine.Engine. The runner never reads engine internals, so tests
// can substitute scripted movers.
type Mover interface {
	ChooseMove(ctx context.Context, b *domain.Board, player domain.Cell) (engine.Result, error)
}

// MoveRecord describes one applied move for observers.
type MoveRecord struct {
	Ply     int
	Player  domain.Cell
	Column  int
	Row     int
	Score   int
	Depth   int
	Elapsed time.Duration
}

// Report is the terminal summary of one game.
type Report struct {
	GameID   string
	Status   domain.GameStatus
	Winner   domain.Cell
	Moves    []int
	Plies    int
	Duration time.Duration
}

// Runner drives two movers against each other on a single game until
// a win or draw.
type Runner struct {
	Red    Mover
	Black  Mover
	OnMove func(MoveRecord)
}

func NewRunner(red, black Mover) *Runner {
	return &Runner{Red: red, Black: black}
}

// Play runs one game to completion. The runner owns the live board;
// each mover only borrows it for the duration of its ChooseMove.
func (r *Runner) Play(ctx context.Context) (*Report, error) {
	gameID, err := uid.GenerateGameID()
	if err != nil {
		return nil, err
	}

	game := domain.NewGame()
	start := time.Now()

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mover := r.Red
		if game.CurrentPlayer == domain.Black {
			mover = r.Black
		}

		player := game.CurrentPlayer
		moveStart := time.Now()
		res, err := mover.ChooseMove(ctx, game.Board, player)
		if err != nil {
			return nil, fmt.Errorf("game %s: choosing move for %v: %w", gameID, player, err)
		}

		row, err := game.MakeMove(res.Column)
		if err != nil {
			return nil, fmt.Errorf("game %s: applying column %d for %v: %w", gameID, res.Column, player, err)
		}

		if r.OnMove != nil {
			r.OnMove(MoveRecord{
				Ply:     len(game.Moves),
				Player:  player,
				Column:  res.Column,
				Row:     row,
				Score:   res.Score,
				Depth:   res.Depth,
				Elapsed: time.Since(moveStart),
			})
		}
	}

	return &Report{
		GameID:   gameID,
		Status:   game.Status,
		Winner:   game.Winner,
		Moves:    game.Moves,
		Plies:    len(game.Moves),
		Duration: time.Since(start),
	}, nil
}
