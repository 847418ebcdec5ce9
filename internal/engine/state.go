package engine

// State is the occupancy record for one ply. States are value types built
// copy-on-write: Apply clones the board, so a child shares no mutable
// structure with its parent and parents are never mutated mid-search.
type State struct {
	Board  Board
	Stones int
	Hash   uint64
}

func NewState(width, height int) State {
	return State{Board: NewBoard(width, height)}
}

func (s State) Clone() State {
	clone := s
	clone.Board = s.Board.Clone()
	return clone
}

// Apply returns the state after player claims move. The move must be legal;
// Rules.IsLegal guards the public path and the generator only yields legal
// moves inside the search.
func (s State) Apply(move Move, player Player) State {
	next := s
	next.Board = s.Board.Clone()
	next.Board.Set(move.X, move.Y, CellFromPlayer(player))
	next.Stones = s.Stones + 1
	next.Hash = s.Hash ^ GetZobrist(s.Board.Width(), s.Board.Height()).stone(move.X, move.Y, player)
	return next
}

// ToMove derives the side to move from the stone counts: Cross plays on
// even plies. Only meaningful for positions reached by alternating play.
func (s State) ToMove() Player {
	if s.Stones%2 == 0 {
		return PlayerCross
	}
	return PlayerNought
}
