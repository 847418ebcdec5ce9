package engine

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellCross
	CellNought
)

// Player identifies one of the two sides. Cross always moves first and is
// the maximizer; Nought moves second and is the minimizer.
type Player int

const (
	PlayerCross Player = iota
	PlayerNought
)

type Winner int

const (
	WinnerNone Winner = iota
	WinnerCross
	WinnerNought
	WinnerDraw
)

// Board is an m-wide, n-tall grid addressed with 1-indexed coordinates.
type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) Board {
	return Board{width: width, height: height, cells: make([]Cell, width*height)}
}

func (b Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) Set(x, y int, value Cell) {
	b.cells[b.index(x, y)] = value
}

func (b Board) InBounds(x, y int) bool {
	return x >= 1 && y >= 1 && x <= b.width && y <= b.height
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Width() int {
	return b.width
}

func (b Board) Height() int {
	return b.height
}

func (b Board) Clone() Board {
	clone := Board{width: b.width, height: b.height}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) index(x, y int) int {
	return (y-1)*b.width + (x - 1)
}

func (p Player) Other() Player {
	if p == PlayerCross {
		return PlayerNought
	}
	return PlayerCross
}

func (p Player) String() string {
	if p == PlayerCross {
		return "Cross"
	}
	return "Nought"
}

func (w Winner) String() string {
	switch w {
	case WinnerCross:
		return "Cross"
	case WinnerNought:
		return "Nought"
	case WinnerDraw:
		return "Draw"
	default:
		return "None"
	}
}

func CellFromPlayer(player Player) Cell {
	if player == PlayerCross {
		return CellCross
	}
	return CellNought
}

func PlayerFromCell(cell Cell) (Player, error) {
	switch cell {
	case CellCross:
		return PlayerCross, nil
	case CellNought:
		return PlayerNought, nil
	default:
		return PlayerCross, fmt.Errorf("empty cell has no player")
	}
}

func WinnerFromPlayer(player Player) Winner {
	if player == PlayerCross {
		return WinnerCross
	}
	return WinnerNought
}
