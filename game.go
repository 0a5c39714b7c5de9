package chesscore

// historyEntry is one pushed-on-make, popped-on-unmake record. The
// move is self-describing for every piece of state except the
// en-passant target in effect immediately before it, which undo
// carries (see makeunmake.go's undoState doc comment).
type historyEntry struct {
	move Move
	undo undoState
}

// Game wraps a Board with the move-count bookkeeping and undo history
// that live above the board-level primitives: halfmove clock,
// fullmove number, and a stack of committed moves, pushed by MakeMove
// and popped by UnmakeMove.
type Game struct {
	Board          Board
	HalfmoveClock  int
	FullmoveNumber int

	history []historyEntry
}

// NewGame returns a Game at the standard starting position.
func NewGame() *Game {
	g, err := FromFEN(InitialFEN)
	if err != nil {
		panic("chesscore: initial fen failed to parse: " + err.Error())
	}
	return g
}

// FromFEN builds a Game from a FEN string.
func FromFEN(fen string) (*Game, error) {
	b, halfmove, fullmove, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{Board: b, HalfmoveClock: halfmove, FullmoveNumber: fullmove}, nil
}

// FEN serializes the current state back to a FEN string.
func (g *Game) FEN() string {
	return SerializeFEN(&g.Board, g.HalfmoveClock, g.FullmoveNumber)
}

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []Move {
	return GenLegalMoves(&g.Board)
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return IsCheck(&g.Board, g.Board.Turn)
}

// ParseMove matches a UCI long-algebraic move string (e.g. "e2e4",
// "e7e8q") against the current legal-move set.
func (g *Game) ParseMove(s string) (Move, error) {
	for _, m := range g.LegalMoves() {
		if m.UCI() == s {
			return m, nil
		}
	}
	return Move{}, &InvalidMoveError{Input: s}
}

// MakeMove commits m to the board, flips the side to move, and
// advances the move counters. The halfmove clock increments
// unconditionally on every move and the fullmove number advances
// after Black moves — this mirrors the source behavior spec.md
// preserves rather than the usual reset-on-pawn-move-or-capture rule;
// no threefold-repetition or fifty-move tracking is layered on top.
func (g *Game) MakeMove(m Move) {
	mover := g.Board.Turn
	undo := g.Board.MakeMove(m)
	g.history = append(g.history, historyEntry{move: m, undo: undo})
	g.Board.FlipTurn()
	g.HalfmoveClock++
	if mover == Black {
		g.FullmoveNumber++
	}
}

// UnmakeMove reverts the most recently made move. It panics if no
// move has been made — callers only unmake what they made.
func (g *Game) UnmakeMove() {
	n := len(g.history)
	if n == 0 {
		panic("chesscore: UnmakeMove called with empty history")
	}
	entry := g.history[n-1]
	g.history = g.history[:n-1]

	g.Board.FlipTurn()
	mover := g.Board.Turn
	g.Board.UnmakeMove(entry.move, entry.undo)
	g.HalfmoveClock--
	if mover == Black {
		g.FullmoveNumber--
	}
}
