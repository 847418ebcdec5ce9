package game

import "fmt"

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerEngine
)

type Settings struct {
	BoardWidth  int        `json:"board_width"`
	BoardHeight int        `json:"board_height"`
	WinLength   int        `json:"win_length"`
	CrossType   PlayerType `json:"-"`
	NoughtType  PlayerType `json:"-"`
	// AssistEnabled surfaces the solver's recommendation to a human before
	// they choose, without playing for them.
	AssistEnabled bool `json:"assist_enabled"`
}

func DefaultSettings() Settings {
	return Settings{
		BoardWidth:  3,
		BoardHeight: 3,
		WinLength:   3,
		CrossType:   PlayerHuman,
		NoughtType:  PlayerEngine,
	}
}

func (s Settings) Validate() error {
	if s.BoardWidth < 1 || s.BoardHeight < 1 {
		return fmt.Errorf("board %dx%d is empty", s.BoardWidth, s.BoardHeight)
	}
	if s.BoardWidth > 26 {
		return fmt.Errorf("board width %d exceeds the A-Z column range", s.BoardWidth)
	}
	if s.WinLength < 1 {
		return fmt.Errorf("win length %d is not positive", s.WinLength)
	}
	if s.WinLength > s.BoardWidth && s.WinLength > s.BoardHeight {
		return fmt.Errorf("win length %d cannot fit on a %dx%d board", s.WinLength, s.BoardWidth, s.BoardHeight)
	}
	return nil
}
