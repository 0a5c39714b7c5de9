package chesscore

import "testing"

func TestColorOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Fatalf("White.Opposite() != Black")
	}
	if Black.Opposite() != White {
		t.Fatalf("Black.Opposite() != White")
	}
}

func TestKindLetterRoundTrip(t *testing.T) {
	kinds := []Kind{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, k := range kinds {
		for _, c := range []Color{White, Black} {
			letter := k.Letter(c)
			gotKind, gotColor, ok := kindFromLetter(letter)
			if !ok {
				t.Fatalf("kindFromLetter(%q): not ok", letter)
			}
			if gotKind != k || gotColor != c {
				t.Fatalf("kindFromLetter(%q) = %v,%v want %v,%v", letter, gotKind, gotColor, k, c)
			}
		}
	}
}

func TestKindFromLetterInvalid(t *testing.T) {
	if _, _, ok := kindFromLetter('z'); ok {
		t.Fatalf("kindFromLetter('z'): expected ok=false")
	}
}
