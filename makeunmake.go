package chesscore

// undoState is everything MakeMove overwrites that is not recoverable
// from the Move record alone, snapshotted so UnmakeMove can restore
// it exactly. Board.Castling IS recoverable (XOR is its own inverse),
// but EnPassant is not: the move only records the e.p. target it
// *creates*, never the one in effect immediately before it, so the
// prior target must be carried alongside the move.
type undoState struct {
	prevEnPassant *Square
}

// MakeMove applies m to the board in place, following spec step
// order: update the en-passant target, perform any castling rook
// slide, remove any captured piece, relocate the mover, then fold in
// a promotion. CastlingRightsChange is XORed in unconditionally — the
// generator only ever sets bits that are currently held, so the XOR
// both clears them here and restores them in UnmakeMove.
func (b *Board) MakeMove(m Move) undoState {
	undo := undoState{prevEnPassant: b.EnPassant}

	b.EnPassant = m.EnPassant

	if m.CastleMove != nil {
		b.MovePiece(m.Mover.Color, Rook, m.CastleMove.RookFrom, m.CastleMove.RookTo)
	}
	b.Castling ^= m.CastlingRightsChange

	if m.Capture != nil {
		b.ClearPiece(m.Capture.Color, m.Capture.Kind, m.Capture.Position.Idx())
	}

	b.MovePiece(m.Mover.Color, m.Mover.Kind, m.From, m.To)

	if m.Promotion != nil {
		b.ClearPiece(m.Mover.Color, m.Mover.Kind, m.To)
		b.SpawnPiece(m.Mover.Color, *m.Promotion, m.To)
	}

	return undo
}

// UnmakeMove inverts MakeMove given the undoState it returned. Steps
// run in reverse order: un-promote, move the mover back, re-spawn any
// captured piece, undo the castling rook slide and rights delta,
// restore the prior en-passant target.
func (b *Board) UnmakeMove(m Move, undo undoState) {
	if m.Promotion != nil {
		b.ClearPiece(m.Mover.Color, *m.Promotion, m.To)
		b.SpawnPiece(m.Mover.Color, m.Mover.Kind, m.To)
	}

	b.MovePiece(m.Mover.Color, m.Mover.Kind, m.To, m.From)

	if m.Capture != nil {
		b.SpawnPiece(m.Capture.Color, m.Capture.Kind, m.Capture.Position.Idx())
	}

	if m.CastleMove != nil {
		b.MovePiece(m.Mover.Color, Rook, m.CastleMove.RookTo, m.CastleMove.RookFrom)
	}
	b.Castling ^= m.CastlingRightsChange

	b.EnPassant = undo.prevEnPassant
}
