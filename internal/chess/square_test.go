package chess

import "testing"

func TestAlgebraicRoundTrip(t *testing.T) {
	for sq := 0; sq < NumSquares; sq++ {
		name := SquareToAlgebraic(sq)
		got, ok := AlgebraicToSquare(name)
		if !ok || got != sq {
			t.Errorf("AlgebraicToSquare(SquareToAlgebraic(%d)) = %d, %v; want %d", sq, got, ok, sq)
		}
	}
}

func TestSquareToAlgebraic(t *testing.T) {
	tests := []struct {
		sq   int
		want string
	}{
		{0, "a8"},
		{7, "h8"},
		{36, "e4"},
		{52, "e2"},
		{56, "a1"},
		{63, "h1"},
		{-1, "-"},
		{64, "-"},
	}

	for _, tt := range tests {
		if got := SquareToAlgebraic(tt.sq); got != tt.want {
			t.Errorf("SquareToAlgebraic(%d) = %q; want %q", tt.sq, got, tt.want)
		}
	}
}

func TestAlgebraicToSquareInvalid(t *testing.T) {
	for _, name := range []string{"", "i1", "a9", "a0", "E4", "e44"} {
		if _, ok := AlgebraicToSquare(name); ok {
			t.Errorf("AlgebraicToSquare(%q) succeeded; want failure", name)
		}
	}
}

func TestFileRankSquareAt(t *testing.T) {
	for sq := 0; sq < NumSquares; sq++ {
		if got := SquareAt(File(sq), Rank(sq)); got != sq {
			t.Errorf("SquareAt(File(%d), Rank(%d)) = %d", sq, sq, got)
		}
	}
	if File(36) != 4 || Rank(36) != 3 {
		t.Errorf("File/Rank(e4) = %d/%d; want 4/3", File(36), Rank(36))
	}
}

func TestColumnAndRankTables(t *testing.T) {
	tests := []struct {
		name  string
		table [NumSquares]bool
		want  []int
	}{
		{"first column", FirstColumn, []int{0, 8, 16, 24, 32, 40, 48, 56}},
		{"second column", SecondColumn, []int{1, 9, 17, 25, 33, 41, 49, 57}},
		{"seventh column", SeventhColumn, []int{6, 14, 22, 30, 38, 46, 54, 62}},
		{"eighth column", EighthColumn, []int{7, 15, 23, 31, 39, 47, 55, 63}},
		{"eighth rank", EighthRank, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"second rank", SecondRank, []int{48, 49, 50, 51, 52, 53, 54, 55}},
		{"first rank", FirstRank, []int{56, 57, 58, 59, 60, 61, 62, 63}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make(map[int]bool, len(tt.want))
			for _, sq := range tt.want {
				want[sq] = true
			}
			for sq := 0; sq < NumSquares; sq++ {
				if tt.table[sq] != want[sq] {
					t.Errorf("table[%d] = %v; want %v", sq, tt.table[sq], want[sq])
				}
			}
		})
	}
}

func TestAllianceHelpers(t *testing.T) {
	if White.Direction() != -1 || Black.Direction() != 1 {
		t.Errorf("Direction() = %d/%d; want -1/1", White.Direction(), Black.Direction())
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() did not swap alliances")
	}
	if !White.IsPawnPromotionSquare(4) || White.IsPawnPromotionSquare(60) {
		t.Error("White promotes on the eighth rank only")
	}
	if !Black.IsPawnPromotionSquare(60) || Black.IsPawnPromotionSquare(4) {
		t.Error("Black promotes on the first rank only")
	}
	if got := Choose(Black, "w", "b"); got != "b" {
		t.Errorf("Choose(Black) = %q; want b", got)
	}
}

func TestLightSquares(t *testing.T) {
	// a1 is dark, h1 is light.
	if IsLightSquare(56) {
		t.Error("a1 reported light")
	}
	if !IsLightSquare(63) {
		t.Error("h1 reported dark")
	}
}
