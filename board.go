package chesscore

import "fmt"

// Board holds the full piece placement and state of a chess position:
// one bitboard per piece kind (mixed color), two color-occupancy
// bitboards, the side to move, castling rights, an optional
// en-passant target square, and a cached king square per color
// updated eagerly by SpawnPiece and MovePiece. ClearPiece does not
// touch the cache: clearing a king leaves KingSquare at the square it
// was cleared from.
//
// Piece placement changes only through SpawnPiece, ClearPiece and
// MovePiece, and the side to move during play only through FlipTurn;
// MakeMove and UnmakeMove set EnPassant and Castling directly. Pieces
// themselves are ephemeral values produced by PieceAt.
type Board struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings Bitboard
	White, Black                                  Bitboard
	Turn                                           Color
	KingSquare                                     [2]Square
	EnPassant                                      *Square
	Castling                                       CastlingRights
}

// NewEmptyBoard returns a board with no pieces placed, White to move,
// no castling rights, and no en-passant target.
func NewEmptyBoard() Board {
	return Board{Turn: White}
}

func (b *Board) kindBB(k Kind) *Bitboard {
	switch k {
	case Pawn:
		return &b.Pawns
	case Knight:
		return &b.Knights
	case Bishop:
		return &b.Bishops
	case Rook:
		return &b.Rooks
	case Queen:
		return &b.Queens
	case King:
		return &b.Kings
	}
	panic(fmt.Sprintf("chesscore: unknown piece kind %d", k))
}

func (b *Board) colorBB(c Color) *Bitboard {
	if c == White {
		return &b.White
	}
	return &b.Black
}

// Occupancy is the union of every piece on the board.
func (b *Board) Occupancy() Bitboard { return b.White | b.Black }

// SpawnPiece places a piece of the given color and kind on sq. It is
// the caller's responsibility that sq is currently empty.
func (b *Board) SpawnPiece(c Color, k Kind, sq Square) {
	*b.kindBB(k) |= Bitboard(1) << sq
	*b.colorBB(c) |= Bitboard(1) << sq
	if k == King {
		b.KingSquare[c] = sq
	}
}

// ClearPiece removes a piece of the given color and kind from sq. It
// is the caller's responsibility that such a piece is present.
func (b *Board) ClearPiece(c Color, k Kind, sq Square) {
	*b.kindBB(k) = b.kindBB(k).ClearBit(sq)
	*b.colorBB(c) = b.colorBB(c).ClearBit(sq)
}

// MovePiece relocates a piece of the given color and kind from from
// to to, updating the cached king square if the piece is a king.
func (b *Board) MovePiece(c Color, k Kind, from, to Square) {
	*b.kindBB(k) = b.kindBB(k).MoveBit(from, to)
	*b.colorBB(c) = b.colorBB(c).MoveBit(from, to)
	if k == King {
		b.KingSquare[c] = to
	}
}

// FlipTurn switches the side to move.
func (b *Board) FlipTurn() { b.Turn = b.Turn.Opposite() }

// PieceAt returns the piece occupying sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	mask := Bitboard(1) << sq
	if !mask.Intersects(b.Occupancy()) {
		return Piece{}, false
	}
	color := White
	if mask.Intersects(b.Black) {
		color = Black
	}
	for _, k := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		if mask.Intersects(*b.kindBB(k)) {
			return Piece{Color: color, Kind: k, Position: mask}, true
		}
	}
	panic(fmt.Sprintf("chesscore: occupancy bit set at %d but no kind bitboard matches", sq))
}

// MustPieceAt is PieceAt but returns NoPieceAtSquareError instead of
// a false ok, for call sites where the caller has already asserted
// the square is occupied and a miss is a core bug, not bad input.
func (b *Board) MustPieceAt(sq Square) (Piece, error) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return Piece{}, &NoPieceAtSquareError{Square: sq}
	}
	return p, nil
}

// CheckInvariants validates the structural invariants that must hold
// after every committed make/unmake (spec §3, §8). It is not called
// on the hot path; tests call it directly after each move.
func (b *Board) CheckInvariants() error {
	if b.White.Intersects(b.Black) {
		return fmt.Errorf("chesscore: white and black occupancy overlap")
	}
	all := b.Pawns | b.Knights | b.Bishops | b.Rooks | b.Queens | b.Kings
	if all != b.Occupancy() {
		return fmt.Errorf("chesscore: kind bitboards do not cover occupancy")
	}
	kinds := []Bitboard{b.Pawns, b.Knights, b.Bishops, b.Rooks, b.Queens, b.Kings}
	for i := range kinds {
		for j := i + 1; j < len(kinds); j++ {
			if kinds[i].Intersects(kinds[j]) {
				return fmt.Errorf("chesscore: kind bitboards %d and %d overlap", i, j)
			}
		}
	}
	if (b.Kings & b.White).Count() != 1 {
		return fmt.Errorf("chesscore: white does not have exactly one king")
	}
	if (b.Kings & b.Black).Count() != 1 {
		return fmt.Errorf("chesscore: black does not have exactly one king")
	}
	if !(Bitboard(1)<<b.KingSquare[White]).Intersects(b.Kings & b.White) {
		return fmt.Errorf("chesscore: cached white king square is stale")
	}
	if !(Bitboard(1)<<b.KingSquare[Black]).Intersects(b.Kings & b.Black) {
		return fmt.Errorf("chesscore: cached black king square is stale")
	}
	if b.EnPassant != nil {
		rank := int(*b.EnPassant) / 8
		if rank != 2 && rank != 5 {
			return fmt.Errorf("chesscore: en passant target not on rank 3 or rank 6")
		}
	}
	return nil
}
