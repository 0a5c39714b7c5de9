package chesscore

// promotionKinds is the fixed fan-out order for promotion moves: the
// spec enumerates queen/rook/bishop/knight only, no underpromotion
// heuristic beyond that set.
var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// cornerRight returns the single castling-rights bit owned by the
// rook that starts on sq, or 0 if sq is not a rook's starting square.
func cornerRight(sq Square) CastlingRights {
	switch sq {
	case SA1:
		return CastlingWQ
	case SH1:
		return CastlingWK
	case SA8:
		return CastlingBQ
	case SH8:
		return CastlingBK
	}
	return 0
}

// rightsDelta computes the castling-rights-change mask a move
// carries: the bits of Castling actually held right now that this
// move's mover or captured piece would extinguish. Intersecting with
// the board's current rights (rather than an unconditional mask)
// keeps the XOR in MakeMove/UnmakeMove reversible even when a king or
// rook that already forfeited its rights moves again.
func rightsDelta(b *Board, mover Piece, from Square, capture *Piece) CastlingRights {
	var delta CastlingRights
	if mover.Kind == King {
		delta |= bothSides(mover.Color) & b.Castling
	} else if mover.Kind == Rook {
		delta |= cornerRight(from) & b.Castling
	}
	if capture != nil {
		delta |= cornerRight(capture.Position.Idx()) & b.Castling
	}
	return delta
}

// GenPseudoLegalMoves returns every pseudo-legal move for the side to
// move: moves that obey piece movement rules but may leave the
// mover's own king in check.
func GenPseudoLegalMoves(b *Board) []Move {
	moves := make([]Move, 0, 64)
	color := b.Turn
	own := *b.colorBB(color)
	occ := b.Occupancy()

	for sq := Square(0); sq < 64; sq++ {
		bit := Bitboard(1) << sq
		if !bit.Intersects(own) {
			continue
		}
		piece, _ := b.PieceAt(sq)
		switch piece.Kind {
		case Pawn:
			genPawnMoves(b, piece, sq, &moves)
		case Knight:
			genStepMoves(b, piece, sq, knightAttacks[sq], &moves)
		case Bishop:
			genSlideMoves(b, piece, sq, bishopAttacks(sq, occ), &moves)
		case Rook:
			genSlideMoves(b, piece, sq, rookAttacks(sq, occ), &moves)
		case Queen:
			genSlideMoves(b, piece, sq, queenAttacks(sq, occ), &moves)
		case King:
			genStepMoves(b, piece, sq, kingAttacks[sq], &moves)
			genCastling(b, color, &moves)
		}
	}
	return moves
}

// genStepMoves emits quiet and capture moves for a non-sliding piece
// (knight or king) whose reachable squares are given by dests, a
// pre-masked attack set that still includes the mover's own pieces.
func genStepMoves(b *Board, mover Piece, from Square, dests Bitboard, moves *[]Move) {
	own := *b.colorBB(mover.Color)
	opp := *b.colorBB(mover.Color.Opposite())
	dests &^= own
	for d := dests; !d.IsEmpty(); d &= d - 1 {
		to := d.Idx()
		var capture *Piece
		if (Bitboard(1) << to).Intersects(opp) {
			p, _ := b.PieceAt(to)
			capture = &p
		}
		*moves = append(*moves, Move{
			Mover:                mover,
			From:                 from,
			To:                   to,
			Capture:              capture,
			CastlingRightsChange: rightsDelta(b, mover, from, capture),
		})
	}
}

// genSlideMoves emits quiet and capture moves for a sliding piece
// (bishop/rook/queen) given its pre-computed ray attack set.
func genSlideMoves(b *Board, mover Piece, from Square, dests Bitboard, moves *[]Move) {
	genStepMoves(b, mover, from, dests, moves)
}

func genPawnMoves(b *Board, mover Piece, from Square, moves *[]Move) {
	occ := b.Occupancy()
	opp := *b.colorBB(mover.Color.Opposite())
	origin := Bitboard(1) << from

	var forward func(Bitboard) Bitboard
	var captureDirs [2]func(Bitboard) Bitboard
	if mover.Color == White {
		forward = Bitboard.North
		captureDirs = [2]func(Bitboard) Bitboard{Bitboard.NorthEast, Bitboard.NorthWest}
	} else {
		forward = Bitboard.South
		captureDirs = [2]func(Bitboard) Bitboard{Bitboard.SouthEast, Bitboard.SouthWest}
	}
	doubleForward := func(x Bitboard) Bitboard { return forward(forward(x)) }

	push := forward(origin)
	if !push.IsEmpty() && !push.Intersects(occ) {
		emitPawnAdvance(b, mover, from, push, nil, moves)

		if origin.Intersects(PawnInitialMask) {
			double := doubleForward(origin)
			if !double.IsEmpty() && !double.Intersects(occ) {
				epTarget := push.Idx()
				*moves = append(*moves, Move{
					Mover:     mover,
					From:      from,
					To:        double.Idx(),
					EnPassant: &epTarget,
				})
			}
		}
	}

	for _, dir := range captureDirs {
		dest := dir(origin)
		if dest.IsEmpty() {
			continue
		}
		if dest.Intersects(opp) {
			captured, _ := b.PieceAt(dest.Idx())
			emitPawnAdvance(b, mover, from, dest, &captured, moves)
			continue
		}
		if b.EnPassant != nil && dest.Idx() == *b.EnPassant {
			epBit := Bitboard(1) << *b.EnPassant
			var victimBB Bitboard
			if mover.Color == White {
				victimBB = epBit.South()
			} else {
				victimBB = epBit.North()
			}
			victim := Piece{Color: mover.Color.Opposite(), Kind: Pawn, Position: victimBB}
			*moves = append(*moves, Move{
				Mover:                mover,
				From:                 from,
				To:                   dest.Idx(),
				Capture:              &victim,
				CastlingRightsChange: rightsDelta(b, mover, from, &victim),
			})
		}
	}
}

// emitPawnAdvance appends a quiet push or capture to moves, fanning
// out into the four promotion variants when dest lies on the
// promotion mask.
func emitPawnAdvance(b *Board, mover Piece, from Square, dest Bitboard, capture *Piece, moves *[]Move) {
	to := dest.Idx()
	delta := rightsDelta(b, mover, from, capture)
	if dest.Intersects(PawnPromotionMask) {
		for i := range promotionKinds {
			*moves = append(*moves, Move{
				Mover:                mover,
				From:                 from,
				To:                   to,
				Capture:              capture,
				Promotion:            &promotionKinds[i],
				CastlingRightsChange: delta,
			})
		}
		return
	}
	*moves = append(*moves, Move{
		Mover:                mover,
		From:                 from,
		To:                   to,
		Capture:              capture,
		CastlingRightsChange: delta,
	})
}

// genCastling appends any available castling moves for color. Only
// considered when the king sits on its initial square and the
// corresponding right is held; the transit squares' emptiness and
// attack status are checked eagerly here so castling out of or through
// check is rejected at generation time. The king's destination square
// is not attack-checked here: castling into check is rejected by the
// make/check/unmake legality filter.
func genCastling(b *Board, color Color, moves *[]Move) {
	occ := b.Occupancy()

	var kingFrom, rookShortFrom, rookShortTo, kingShortTo Square
	var rookLongFrom, rookLongTo, kingLongTo Square
	var shortRight, longRight CastlingRights
	var fSquare, bSquare, cSquare, dSquare Square

	if color == White {
		kingFrom, kingShortTo, kingLongTo = SE1, SG1, SC1
		rookShortFrom, rookShortTo = SH1, SF1
		rookLongFrom, rookLongTo = SA1, SD1
		shortRight, longRight = CastlingWK, CastlingWQ
		fSquare, bSquare, cSquare, dSquare = SF1, SB1, SC1, SD1
	} else {
		kingFrom, kingShortTo, kingLongTo = SE8, SG8, SC8
		rookShortFrom, rookShortTo = SH8, SF8
		rookLongFrom, rookLongTo = SA8, SD8
		shortRight, longRight = CastlingBK, CastlingBQ
		fSquare, bSquare, cSquare, dSquare = SF8, SB8, SC8, SD8
	}

	if b.KingSquare[color] != kingFrom {
		return
	}

	if b.Castling&shortRight != 0 {
		empty := Bitboard(1)<<fSquare | Bitboard(1)<<kingShortTo
		if !empty.Intersects(occ) &&
			!IsAttacked(b, kingFrom, color) && !IsAttacked(b, fSquare, color) {
			mover, _ := b.PieceAt(kingFrom)
			*moves = append(*moves, Move{
				Mover:                mover,
				From:                 kingFrom,
				To:                   kingShortTo,
				CastleMove:           &CastleSlide{RookFrom: rookShortFrom, RookTo: rookShortTo},
				CastlingRightsChange: rightsDelta(b, mover, kingFrom, nil),
			})
		}
	}

	if b.Castling&longRight != 0 {
		// Square b is intentionally not attack-checked: only the
		// rook, not the king, transits it.
		empty := Bitboard(1)<<bSquare | Bitboard(1)<<cSquare | Bitboard(1)<<dSquare
		if !empty.Intersects(occ) &&
			!IsAttacked(b, kingFrom, color) && !IsAttacked(b, cSquare, color) && !IsAttacked(b, dSquare, color) {
			mover, _ := b.PieceAt(kingFrom)
			*moves = append(*moves, Move{
				Mover:                mover,
				From:                 kingFrom,
				To:                   kingLongTo,
				CastleMove:           &CastleSlide{RookFrom: rookLongFrom, RookTo: rookLongTo},
				CastlingRightsChange: rightsDelta(b, mover, kingFrom, nil),
			})
		}
	}
}

// IsAttacked reports whether any piece of color opposite to color
// attacks square. Pawn attacks are found by looking up square in the
// defending color's own pawn-attack table, the standard reverse trick:
// pawnAttacks[color][square] is exactly the set of squares from which
// an opposite-color pawn would attack square.
func IsAttacked(b *Board, square Square, color Color) bool {
	opp := color.Opposite()
	oppOcc := *b.colorBB(opp)

	if pawnAttacks[color][square].Intersects(b.Pawns & oppOcc) {
		return true
	}
	if knightAttacks[square].Intersects(b.Knights & oppOcc) {
		return true
	}
	if kingAttacks[square].Intersects(b.Kings & oppOcc) {
		return true
	}
	occ := b.Occupancy()
	if rookAttacks(square, occ).Intersects((b.Rooks | b.Queens) & oppOcc) {
		return true
	}
	if bishopAttacks(square, occ).Intersects((b.Bishops | b.Queens) & oppOcc) {
		return true
	}
	return false
}

// IsCheck reports whether color's king is currently attacked.
func IsCheck(b *Board, color Color) bool {
	return IsAttacked(b, b.KingSquare[color], color)
}

// GenLegalMoves filters GenPseudoLegalMoves down to moves that do not
// leave the mover's own king attacked: for each candidate, make it,
// test IsCheck for the side that just moved, then unmake.
func GenLegalMoves(b *Board) []Move {
	pseudo := GenPseudoLegalMoves(b)
	legal := make([]Move, 0, len(pseudo))
	mover := b.Turn
	for _, m := range pseudo {
		undo := b.MakeMove(m)
		if !IsCheck(b, mover) {
			legal = append(legal, m)
		}
		b.UnmakeMove(m, undo)
	}
	return legal
}
