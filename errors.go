package chesscore

import "fmt"

// InvalidSingleSquareError reports an algebraic square string that is
// not exactly two characters in range a1..h8.
type InvalidSingleSquareError struct {
	Input string
}

func (e *InvalidSingleSquareError) Error() string {
	return fmt.Sprintf("chesscore: invalid square %q", e.Input)
}

// InvalidFenError reports a malformed FEN string. Char is the
// offending character when one is to blame (an unknown piece letter,
// side-to-move or castling character); it is 0 for structural errors
// such as a wrong field or rank count, a rank that does not cover
// eight squares, or a non-numeric move counter.
type InvalidFenError struct {
	Fen  string
	Char byte
}

func (e *InvalidFenError) Error() string {
	return fmt.Sprintf("chesscore: invalid character %q in fen %q", e.Char, e.Fen)
}

// InvalidEnPassantError reports an en-passant field that is neither
// "-" nor a valid square.
type InvalidEnPassantError struct {
	Field string
}

func (e *InvalidEnPassantError) Error() string {
	return fmt.Sprintf("chesscore: invalid en passant field %q", e.Field)
}

// InvalidMoveError reports a UCI move string that matched no legal
// move in the current position.
type InvalidMoveError struct {
	Input string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("chesscore: invalid move %q", e.Input)
}

// NoPieceAtSquareError reports that the board was asked for a piece at
// a square the caller claimed was occupied. In well-formed state this
// never happens; its presence at runtime is a bug, not recoverable
// user input, so callers outside the core should treat it as fatal.
type NoPieceAtSquareError struct {
	Square Square
}

func (e *NoPieceAtSquareError) Error() string {
	return fmt.Sprintf("chesscore: no piece at square %d", e.Square)
}
