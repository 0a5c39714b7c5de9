package chesscore

import "testing"

func TestStartingPositionLegalMoveCount(t *testing.T) {
	b, _, _, err := ParseFEN(InitialFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := GenLegalMoves(&b)
	if len(moves) != 20 {
		t.Fatalf("len(legal moves) = %d, want 20", len(moves))
	}

	knightMoves := 0
	pawnMoves := 0
	for _, m := range moves {
		switch m.Mover.Kind {
		case Knight:
			knightMoves++
		case Pawn:
			pawnMoves++
		}
	}
	if knightMoves != 4 {
		t.Fatalf("knight moves = %d, want 4", knightMoves)
	}
	if pawnMoves != 16 {
		t.Fatalf("pawn moves = %d, want 16", pawnMoves)
	}
}

func TestEnPassantAfterDoublePush(t *testing.T) {
	g := NewGame()
	e2e4, err := g.ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove(e2e4): %v", err)
	}
	g.MakeMove(e2e4)
	d7d5, err := g.ParseMove("d7d5")
	if err != nil {
		t.Fatalf("ParseMove(d7d5): %v", err)
	}
	g.MakeMove(d7d5)

	if g.Board.EnPassant == nil {
		t.Fatalf("EnPassant = nil, want d6")
	}
	if got := (Bitboard(1) << *g.Board.EnPassant).ToAlgebraic(); got != "d6" {
		t.Fatalf("EnPassant = %s, want d6", got)
	}

	found := false
	for _, m := range g.LegalMoves() {
		if m.UCI() == "e4d5" {
			found = true
			if !m.IsCapture() {
				t.Fatalf("e4d5 should be a capture")
			}
		}
	}
	if !found {
		t.Fatalf("e4d5 not found among legal moves")
	}
}

func TestCastlingBothSidesAvailable(t *testing.T) {
	b, _, _, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := GenLegalMoves(&b)
	want := map[string]bool{"e1g1": false, "e1c1": false}
	for _, m := range moves {
		if _, ok := want[m.UCI()]; ok {
			want[m.UCI()] = true
		}
	}
	for uci, found := range want {
		if !found {
			t.Fatalf("expected castling move %s among legal moves", uci)
		}
	}
}

func TestPromotionEnumeration(t *testing.T) {
	b, _, _, err := ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := GenLegalMoves(&b)

	pawnMoves := map[string]bool{}
	for _, m := range moves {
		if m.Mover.Kind == Pawn {
			pawnMoves[m.UCI()] = true
		}
	}
	want := []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"}
	for _, uci := range want {
		if !pawnMoves[uci] {
			t.Fatalf("expected promotion move %s, got %v", uci, pawnMoves)
		}
	}
	if len(pawnMoves) != 4 {
		t.Fatalf("pawn has %d legal moves, want exactly the 4 promotions: %v", len(pawnMoves), pawnMoves)
	}
}

func TestCheckEvasion(t *testing.T) {
	b, _, _, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !IsCheck(&b, White) {
		t.Fatalf("expected White king in check from the e2 rook")
	}
	moves := GenLegalMoves(&b)
	got := map[string]bool{}
	for _, m := range moves {
		got[m.UCI()] = true
	}
	// The e2 rook covers the second rank and the e-file, so Kd2 and Kf2
	// stay in check; Kd1, Kf1 and Kxe2 (the rook is unprotected) are the
	// only evasions.
	for _, uci := range []string{"e1d2", "e1f2"} {
		if got[uci] {
			t.Fatalf("%s should be an illegal evasion, got it among legal moves", uci)
		}
	}
	want := []string{"e1d1", "e1f1", "e1e2"}
	for _, uci := range want {
		if !got[uci] {
			t.Fatalf("expected evasion %s among legal moves, got %v", uci, got)
		}
	}
	if len(moves) != len(want) {
		t.Fatalf("king has %d legal evasions, want exactly %v: %v", len(moves), want, got)
	}
}

func perftCount(b Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := GenLegalMoves(&b)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		undo := b.MakeMove(m)
		b.FlipTurn()
		nodes += perftCount(b, depth-1)
		b.FlipTurn()
		b.UnmakeMove(m, undo)
	}
	return nodes
}

func TestPerftStandardPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	b, _, _, err := ParseFEN(InitialFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	want := map[int]int{1: 20, 2: 400, 3: 8902, 4: 197281}
	for depth := 1; depth <= 4; depth++ {
		bc := b
		got := perftCount(bc, depth)
		if got != want[depth] {
			t.Fatalf("perft(%d) = %d, want %d", depth, got, want[depth])
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, _, _, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	const want = 97862
	if got := perftCount(b, 3); got != want {
		t.Fatalf("perft(kiwipete, 3) = %d, want %d", got, want)
	}
}

func BenchmarkGenLegalMovesStartingPosition(b *testing.B) {
	board, _, _, _ := ParseFEN(InitialFEN)
	for i := 0; i < b.N; i++ {
		GenLegalMoves(&board)
	}
}

func BenchmarkMakeUnmakeMove(b *testing.B) {
	board, _, _, _ := ParseFEN(InitialFEN)
	moves := GenLegalMoves(&board)
	m := moves[0]
	for i := 0; i < b.N; i++ {
		undo := board.MakeMove(m)
		board.UnmakeMove(m, undo)
	}
}
