package engine

import "fmt"

// Rules holds the fixed (m,n,k) parameters of one game instance and answers
// legality, move generation and terminal questions about states.
type Rules struct {
	width     int
	height    int
	winLength int
}

func NewRules(width, height, winLength int) Rules {
	return Rules{width: width, height: height, winLength: winLength}
}

func (r Rules) BoardWidth() int  { return r.width }
func (r Rules) BoardHeight() int { return r.height }
func (r Rules) WinLength() int   { return r.winLength }

func (r Rules) NewState() State {
	return NewState(r.width, r.height)
}

func (r Rules) IsLegal(state State, move Move) (bool, string) {
	if !move.IsValid(r.width, r.height) {
		return false, "out of bounds"
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return false, "occupied"
	}
	return true, ""
}

// LegalMoves enumerates the unoccupied cells in column-major order
// (A1, A2, ..., B1, ...). The fixed order keeps the search deterministic
// and tie-breaking reproducible.
func (r Rules) LegalMoves(state State) []Move {
	moves := make([]Move, 0, r.width*r.height-state.Stones)
	for x := 1; x <= r.width; x++ {
		for y := 1; y <= r.height; y++ {
			if state.Board.At(x, y) == CellEmpty {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

// The four axes a run can lie on. Walking both ways along each covers all
// eight directions.
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}

// IsTerminal decides whether state is won or drawn, looking only at the
// neighborhood of the last move: only the most recent move can newly
// complete a run. A zero lastMove (root of the game) is never terminal.
func (r Rules) IsTerminal(state State, lastMove Move, lastPlayer Player) (bool, Winner) {
	if lastMove.IsZero() {
		return false, WinnerNone
	}
	target := CellFromPlayer(lastPlayer)
	if state.Board.At(lastMove.X, lastMove.Y) != target {
		// Caller contract violation: the last move must belong to lastPlayer.
		return false, WinnerNone
	}
	for i := 0; i < 4; i++ {
		dx := axes[i][0]
		dy := axes[i][1]
		count := 1
		count += r.countDirection(state.Board, lastMove, dx, dy)
		count += r.countDirection(state.Board, lastMove, -dx, -dy)
		if count >= r.winLength {
			return true, WinnerFromPlayer(lastPlayer)
		}
	}
	if state.Stones == r.width*r.height {
		return true, WinnerDraw
	}
	return false, WinnerNone
}

// WinningLine collects the completed run through lastMove, for highlighting.
func (r Rules) WinningLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(r.width, r.height) || board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return nil, false
	}
	for i := 0; i < 4; i++ {
		line := r.collectLine(board, lastMove, axes[i][0], axes[i][1])
		if len(line) >= r.winLength {
			return line, true
		}
	}
	return nil, false
}

func (r Rules) countDirection(board Board, start Move, dx, dy int) int {
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func (r Rules) collectLine(board Board, start Move, dx, dy int) []Move {
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	line := []Move{}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{board=%dx%d, win=%d}", r.width, r.height, r.winLength)
}
