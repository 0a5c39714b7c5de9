package chesscore

import "testing"

func TestGameMakeUnmakeRestoresFEN(t *testing.T) {
	g := NewGame()
	before := g.FEN()

	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		m, err := g.ParseMove(uci)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", uci, err)
		}
		g.MakeMove(m)
	}
	for i := 0; i < 4; i++ {
		g.UnmakeMove()
	}

	if got := g.FEN(); got != before {
		t.Fatalf("after 4 make + 4 unmake: FEN = %q, want %q", got, before)
	}
}

func TestGameHalfmoveClockNeverResets(t *testing.T) {
	g := NewGame()
	m, err := g.ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	g.MakeMove(m)
	if g.HalfmoveClock != 1 {
		t.Fatalf("HalfmoveClock = %d, want 1 (a pawn push does not reset it here)", g.HalfmoveClock)
	}
}

func TestGameFullmoveAdvancesAfterBlack(t *testing.T) {
	g := NewGame()
	white, _ := g.ParseMove("e2e4")
	g.MakeMove(white)
	if g.FullmoveNumber != 1 {
		t.Fatalf("FullmoveNumber after White's move = %d, want 1", g.FullmoveNumber)
	}
	black, _ := g.ParseMove("e7e5")
	g.MakeMove(black)
	if g.FullmoveNumber != 2 {
		t.Fatalf("FullmoveNumber after Black's move = %d, want 2", g.FullmoveNumber)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	g := NewGame()
	if _, err := g.ParseMove("e2e5"); err == nil {
		t.Fatalf("ParseMove(e2e5): expected InvalidMoveError, got nil")
	}
}

func TestUnmakeMoveWithEmptyHistoryPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("UnmakeMove on fresh game: expected panic, got none")
		}
	}()
	NewGame().UnmakeMove()
}
