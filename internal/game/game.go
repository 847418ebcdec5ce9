package game

import (
	"time"

	"mnkgame/internal/engine"
)

// Game drives one (m,n,k) match between two players, each human or engine.
type Game struct {
	settings     Settings
	rules        engine.Rules
	state        State
	history      MoveHistory
	crossPlayer  IPlayer
	noughtPlayer IPlayer
	assist       *EnginePlayer
	turnStart    time.Time
}

func NewGame(settings Settings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings Settings) {
	g.settings = settings
	g.rules = engine.NewRules(settings.BoardWidth, settings.BoardHeight, settings.WinLength)
	g.state = State{
		Position: g.rules.NewState(),
		ToMove:   engine.PlayerCross,
		Status:   StatusNotStarted,
	}
	g.history.Clear()
	g.createPlayers()
	g.assist = nil
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() State {
	return g.state.Clone()
}

func (g *Game) Settings() Settings {
	return g.settings
}

func (g *Game) Rules() engine.Rules {
	return g.rules
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove validates and commits a move for the side to move. Illegal
// moves leave the state untouched so the caller can just re-prompt.
func (g *Game) TryApplyMove(move engine.Move) (bool, string) {
	return g.applyMove(move, nil)
}

func (g *Game) applyMove(move engine.Move, decision *engine.Decision) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if ok, reason := g.rules.IsLegal(g.state.Position, move); !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	mover := g.state.ToMove
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())

	g.state.Position = g.state.Position.Apply(move, mover)
	g.state.LastMove = move
	g.state.WinningLine = nil

	entry := HistoryEntry{Move: move, Player: mover, ElapsedMs: elapsedMs, IsEngine: decision != nil}
	if decision != nil {
		entry.Value = decision.Value
		entry.StatesExplored = decision.StatesExplored
	}
	g.history.Push(entry)

	if terminal, winner := g.rules.IsTerminal(g.state.Position, move, mover); terminal {
		switch winner {
		case engine.WinnerCross:
			g.state.Status = StatusCrossWon
		case engine.WinnerNought:
			g.state.Status = StatusNoughtWon
		default:
			g.state.Status = StatusDraw
		}
		if winner != engine.WinnerDraw {
			if line, ok := g.rules.WinningLine(g.state.Position.Board, move); ok {
				g.state.WinningLine = line
			}
		}
		return true, ""
	}

	g.state.ToMove = mover.Other()
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game by at most one move: a pending human move, or a
// finished engine decision. It also keeps the assist search warm when a
// human with assist enabled is to move. Returns true when a move landed.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		g.tickAssist()
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	ep, ok := player.(*EnginePlayer)
	if !ok {
		return false
	}
	if ep.HasMoveReadyFor(g.state.Position.Hash) {
		move, decision := ep.TakeMove()
		if move.IsZero() {
			return false
		}
		applied, _ := g.applyMove(move, &decision)
		return applied
	}
	if !ep.IsThinking() {
		ep.StartThinking(g.state.Position, g.state.ToMove)
	}
	return false
}

func (g *Game) SubmitHumanMove(move engine.Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) EngineThinking() bool {
	if ep, ok := g.currentPlayer().(*EnginePlayer); ok {
		return ep.IsThinking()
	}
	if g.assist != nil && g.assist.IsThinking() {
		return true
	}
	return false
}

// Suggestion reports the assist decision for the current position, if the
// background solve has finished.
func (g *Game) Suggestion() (engine.Decision, bool) {
	if g.assist == nil || !g.CurrentPlayerIsHuman() {
		return engine.Decision{}, false
	}
	if !g.assist.HasMoveReadyFor(g.state.Position.Hash) {
		return engine.Decision{}, false
	}
	return g.assist.PeekDecision()
}

func (g *Game) tickAssist() {
	if !g.settings.AssistEnabled {
		return
	}
	if g.assist == nil {
		g.assist = NewEnginePlayer(g.rules)
	}
	if g.assist.IsThinking() || g.assist.HasMoveReadyFor(g.state.Position.Hash) {
		return
	}
	g.assist.StartThinking(g.state.Position, g.state.ToMove)
}

func (g *Game) currentPlayer() IPlayer {
	if g.state.ToMove == engine.PlayerCross {
		return g.crossPlayer
	}
	return g.noughtPlayer
}

func (g *Game) createPlayers() {
	if g.settings.CrossType == PlayerHuman {
		g.crossPlayer = NewHumanPlayer()
	} else {
		g.crossPlayer = NewEnginePlayer(g.rules)
	}
	if g.settings.NoughtType == PlayerHuman {
		g.noughtPlayer = NewHumanPlayer()
	} else {
		g.noughtPlayer = NewEnginePlayer(g.rules)
	}
}
