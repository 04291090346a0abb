package selfplay

import (
	"context"
	"testing"

	"github.com/fourstack/connect4/internal/domain"
	"github.com/fourstack/connect4/internal/engine"
)

func TestPlayRunsToTermination(t *testing.T) {
	r := NewRunner(
		engine.New(engine.Config{Depth: 2}),
		engine.New(engine.Config{Depth: 2}),
	)

	var records []MoveRecord
	r.OnMove = func(m MoveRecord) { records = append(records, m) }

	report, err := r.Play(context.Background())
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if report.Status != domain.StatusWon && report.Status != domain.StatusDraw {
		t.Fatalf("game ended in non-terminal status %v", report.Status)
	}
	if report.Status == domain.StatusWon && report.Winner == domain.Empty {
		t.Fatal("won game reports no winner")
	}
	if report.Status == domain.StatusDraw && report.Winner != domain.Empty {
		t.Fatalf("drawn game reports winner %v", report.Winner)
	}
	if report.GameID == "" {
		t.Fatal("report missing game ID")
	}
	if report.Plies != len(report.Moves) || report.Plies == 0 {
		t.Fatalf("plies %d does not match move list %v", report.Plies, report.Moves)
	}
	if report.Plies > domain.Rows*domain.Columns {
		t.Fatalf("more plies than cells: %d", report.Plies)
	}
	if len(records) != report.Plies {
		t.Fatalf("observer saw %d moves, report has %d", len(records), report.Plies)
	}

	// Replaying the move list must reproduce the reported outcome.
	replay := domain.NewGame()
	for _, col := range report.Moves {
		if _, err := replay.MakeMove(col); err != nil {
			t.Fatalf("replaying column %d: %v", col, err)
		}
	}
	if replay.Status != report.Status || replay.Winner != report.Winner {
		t.Fatalf("replay disagrees with report: %v/%v vs %v/%v",
			replay.Status, replay.Winner, report.Status, report.Winner)
	}
}

func TestPlayIsDeterministic(t *testing.T) {
	play := func() *Report {
		r := NewRunner(
			engine.New(engine.Config{Depth: 3}),
			engine.New(engine.Config{Depth: 3}),
		)
		report, err := r.Play(context.Background())
		if err != nil {
			t.Fatalf("Play failed: %v", err)
		}
		return report
	}

	first, second := play(), play()
	if len(first.Moves) != len(second.Moves) {
		t.Fatalf("same engines played different games: %v vs %v", first.Moves, second.Moves)
	}
	for i := range first.Moves {
		if first.Moves[i] != second.Moves[i] {
			t.Fatalf("move %d differs: %v vs %v", i, first.Moves, second.Moves)
		}
	}
}

func TestPlayHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(
		engine.New(engine.Config{Depth: 2}),
		engine.New(engine.Config{Depth: 2}),
	)
	if _, err := r.Play(ctx); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
