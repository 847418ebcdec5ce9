package engine

// Move is a board cell claim. Coordinates are 1-indexed: X selects the
// column (rendered A, B, C, ...), Y the row. The zero Move is "no move yet".
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewMove(x, y int) Move {
	return Move{X: x, Y: y}
}

func (m Move) IsValid(width, height int) bool {
	return m.X >= 1 && m.Y >= 1 && m.X <= width && m.Y <= height
}

func (m Move) IsZero() bool {
	return m.X == 0 && m.Y == 0
}

func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}
