package domain

import "testing"

func TestGameAlternatesTurns(t *testing.T) {
	g := NewGame()
	if g.CurrentPlayer != Red {
		t.Fatalf("Red should move first, got %v", g.CurrentPlayer)
	}

	if _, err := g.MakeMove(3); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.CurrentPlayer != Black {
		t.Fatalf("turn did not flip to Black, got %v", g.CurrentPlayer)
	}
	if len(g.Moves) != 1 || g.Moves[0] != 3 {
		t.Fatalf("move history wrong: %v", g.Moves)
	}
}

func TestGameDetectsWin(t *testing.T) {
	g := NewGame()
	// Red: 0,1,2,3 on the bottom row; Black stacks on column 6.
	moves := []int{0, 6, 1, 6, 2, 6, 3}
	for _, col := range moves {
		if _, err := g.MakeMove(col); err != nil {
			t.Fatalf("move %d failed: %v", col, err)
		}
	}

	if g.Status != StatusWon || g.Winner != Red {
		t.Fatalf("expected Red win, got status=%v winner=%v", g.Status, g.Winner)
	}
	if !g.IsFinished() {
		t.Fatal("won game should be finished")
	}
	if _, err := g.MakeMove(4); err != ErrGameOver {
		t.Fatalf("expected ErrGameOver after a win, got %v", err)
	}
}

func TestGameRejectsFullColumn(t *testing.T) {
	g := NewGame()
	for i := 0; i < Rows; i++ {
		if _, err := g.MakeMove(0); err != nil {
			t.Fatalf("move %d failed: %v", i, err)
		}
	}
	if _, err := g.MakeMove(0); err != ErrColumnFull {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	// The rejected move must not consume the turn or enter history.
	if len(g.Moves) != Rows {
		t.Fatalf("rejected move recorded in history: %v", g.Moves)
	}
}
