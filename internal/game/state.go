package game

import "mnkgame/internal/engine"

type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusCrossWon
	StatusNoughtWon
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCrossWon:
		return "cross_won"
	case StatusNoughtWon:
		return "nought_won"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}

func (s Status) Finished() bool {
	return s == StatusCrossWon || s == StatusNoughtWon || s == StatusDraw
}

// State is the game-level view of a position: the engine state plus whose
// turn it is and how (or whether) the game ended.
type State struct {
	Position    engine.State
	ToMove      engine.Player
	Status      Status
	LastMove    engine.Move
	WinningLine []engine.Move
	LastMessage string
}

func (s State) Clone() State {
	clone := s
	clone.Position = s.Position.Clone()
	clone.WinningLine = append([]engine.Move(nil), s.WinningLine...)
	return clone
}
