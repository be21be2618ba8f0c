package chess

// Board geometry. Squares are indexed 0-63 in rank-major order starting at
// a8 (index 0) and ending at h1 (index 63).
const (
	NumSquares    = 64
	SquaresPerRow = 8

	// NoSquare marks an absent square, e.g. the destination of the null move.
	NoSquare = -1
)

// Column and rank membership tables, indexed by square.
var (
	FirstColumn   = initColumn(0)
	SecondColumn  = initColumn(1)
	SeventhColumn = initColumn(6)
	EighthColumn  = initColumn(7)

	EighthRank  = initRow(0)
	SeventhRank = initRow(8)
	SixthRank   = initRow(16)
	FifthRank   = initRow(24)
	FourthRank  = initRow(32)
	ThirdRank   = initRow(40)
	SecondRank  = initRow(48)
	FirstRank   = initRow(56)
)

var algebraicNotation = initAlgebraicNotation()

var squareByName = initSquareByName()

func initColumn(column int) [NumSquares]bool {
	var table [NumSquares]bool
	for sq := column; sq < NumSquares; sq += SquaresPerRow {
		table[sq] = true
	}
	return table
}

func initRow(start int) [NumSquares]bool {
	var table [NumSquares]bool
	for sq := start; sq < start+SquaresPerRow; sq++ {
		table[sq] = true
	}
	return table
}

func initAlgebraicNotation() [NumSquares]string {
	var names [NumSquares]string
	for sq := 0; sq < NumSquares; sq++ {
		names[sq] = string([]byte{'a' + byte(File(sq)), '1' + byte(Rank(sq))})
	}
	return names
}

func initSquareByName() map[string]int {
	m := make(map[string]int, NumSquares)
	for sq, name := range algebraicNotation {
		m[name] = sq
	}
	return m
}

// IsValidSquare reports whether sq is on the board.
func IsValidSquare(sq int) bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the file of a square, 0 for the a-file through 7 for the h-file.
func File(sq int) int {
	return sq % SquaresPerRow
}

// Rank returns the rank of a square, 0 for rank 1 through 7 for rank 8.
func Rank(sq int) int {
	return SquaresPerRow - 1 - sq/SquaresPerRow
}

// SquareAt returns the square index for a file and rank (both 0-7).
func SquareAt(file, rank int) int {
	return (SquaresPerRow-1-rank)*SquaresPerRow + file
}

// SquareToAlgebraic converts a square index to algebraic notation ("a8" for 0).
// It returns "-" for squares off the board.
func SquareToAlgebraic(sq int) string {
	if !IsValidSquare(sq) {
		return "-"
	}
	return algebraicNotation[sq]
}

// AlgebraicToSquare converts algebraic notation to a square index.
func AlgebraicToSquare(name string) (int, bool) {
	sq, ok := squareByName[name]
	return sq, ok
}

// IsLightSquare reports whether the square is a light square.
func IsLightSquare(sq int) bool {
	return (File(sq)+Rank(sq))%2 == 1
}
