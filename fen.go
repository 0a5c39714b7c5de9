package chesscore

import (
	"strconv"
	"strings"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Board plus the halfmove clock
// and fullmove number carried alongside it. The first four fields are
// required; when the last two are absent the halfmove clock defaults
// to 0 and the fullmove number to 1. Unlike the panic-on-
// bad-input style elsewhere in the pack, this parser returns
// InvalidFenError / InvalidEnPassantError so a caller-supplied FEN
// never crashes the process.
func ParseFEN(fen string) (Board, int, int, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, 0, 0, &InvalidFenError{Fen: fen}
	}

	b := NewEmptyBoard()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, 0, 0, &InvalidFenError{Fen: fen}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, color, ok := kindFromLetter(ch)
			if !ok {
				return Board{}, 0, 0, &InvalidFenError{Fen: fen, Char: ch}
			}
			if file > 7 {
				return Board{}, 0, 0, &InvalidFenError{Fen: fen, Char: ch}
			}
			sq := Square(rank*8 + file)
			b.SpawnPiece(color, kind, sq)
			file++
		}
		if file != 8 {
			return Board{}, 0, 0, &InvalidFenError{Fen: fen}
		}
	}

	switch fields[1] {
	case "w":
		b.Turn = White
	case "b":
		b.Turn = Black
	default:
		return Board{}, 0, 0, &InvalidFenError{Fen: fen, Char: fields[1][0]}
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.Castling |= CastlingWK
			case 'Q':
				b.Castling |= CastlingWQ
			case 'k':
				b.Castling |= CastlingBK
			case 'q':
				b.Castling |= CastlingBQ
			default:
				return Board{}, 0, 0, &InvalidFenError{Fen: fen, Char: fields[2][i]}
			}
		}
	}

	if fields[3] != "-" {
		ep, err := FromAlgebraic(fields[3])
		if err != nil {
			return Board{}, 0, 0, &InvalidEnPassantError{Field: fields[3]}
		}
		sq := ep.Idx()
		b.EnPassant = &sq
	}

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return Board{}, 0, 0, &InvalidFenError{Fen: fen}
		}
		halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Board{}, 0, 0, &InvalidFenError{Fen: fen}
		}
		fullmove = n
	}

	return b, halfmove, fullmove, nil
}

// SerializeFEN is the inverse of ParseFEN.
func SerializeFEN(b *Board, halfmove, fullmove int) string {
	var out strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			piece, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte(byte('0' + empty))
				empty = 0
			}
			out.WriteByte(piece.Kind.Letter(piece.Color))
		}
		if empty > 0 {
			out.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			out.WriteByte('/')
		}
	}

	out.WriteByte(' ')
	out.WriteString(b.Turn.String())

	out.WriteByte(' ')
	rights := ""
	if b.Castling&CastlingWK != 0 {
		rights += "K"
	}
	if b.Castling&CastlingWQ != 0 {
		rights += "Q"
	}
	if b.Castling&CastlingBK != 0 {
		rights += "k"
	}
	if b.Castling&CastlingBQ != 0 {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	out.WriteString(rights)

	out.WriteByte(' ')
	if b.EnPassant == nil {
		out.WriteByte('-')
	} else {
		out.WriteString((Bitboard(1) << *b.EnPassant).ToAlgebraic())
	}

	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(halfmove))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(fullmove))

	return out.String()
}
