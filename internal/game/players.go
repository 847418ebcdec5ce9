package game

import (
	"sync"
	"sync/atomic"

	"mnkgame/internal/engine"
)

type IPlayer interface {
	IsHuman() bool
}

type HumanPlayer struct {
	pending     bool
	pendingMove engine.Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) SetPendingMove(move engine.Move) {
	h.pendingMove = move
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() engine.Move {
	h.pending = false
	return h.pendingMove
}

// EnginePlayer runs the solver on a background worker so the game loop can
// keep ticking, and hands the finished decision back through ready flags.
// The search itself is synchronous and runs to completion; only one search
// is in flight per player, so the solver keeps its single-writer invariant.
type EnginePlayer struct {
	moveMutex  sync.Mutex
	thinking   atomic.Bool
	moveReady  atomic.Bool
	workerDone chan struct{}
	readyMove  engine.Move
	readyFor   uint64
	decision   engine.Decision
	solver     *engine.Solver
}

func NewEnginePlayer(rules engine.Rules) *EnginePlayer {
	return &EnginePlayer{solver: engine.NewSolver(rules)}
}

func (p *EnginePlayer) IsHuman() bool {
	return false
}

func (p *EnginePlayer) IsThinking() bool {
	return p.thinking.Load()
}

func (p *EnginePlayer) HasMoveReady() bool {
	return p.moveReady.Load()
}

// HasMoveReadyFor reports a finished decision for the given position key;
// a ready move computed for a stale position is not served.
func (p *EnginePlayer) HasMoveReadyFor(key uint64) bool {
	if !p.moveReady.Load() {
		return false
	}
	p.moveMutex.Lock()
	defer p.moveMutex.Unlock()
	return p.readyFor == key
}

func (p *EnginePlayer) StartThinking(position engine.State, player engine.Player) {
	if p.thinking.Load() {
		return
	}
	if p.workerDone != nil {
		<-p.workerDone
	}
	p.thinking.Store(true)
	p.moveReady.Store(false)

	stateCopy := position.Clone()
	done := make(chan struct{})
	p.workerDone = done
	go func() {
		defer close(done)
		decision := p.solver.Solve(stateCopy, player)
		move := engine.Move{}
		if len(decision.Optimal) > 0 {
			move = decision.Optimal[0]
		} else if len(decision.Candidates) > 0 {
			move = decision.Candidates[0]
		}
		p.moveMutex.Lock()
		p.readyMove = move
		p.readyFor = stateCopy.Hash
		p.decision = decision
		p.moveMutex.Unlock()
		p.moveReady.Store(true)
		p.thinking.Store(false)
	}()
}

func (p *EnginePlayer) TakeMove() (engine.Move, engine.Decision) {
	p.moveMutex.Lock()
	defer p.moveMutex.Unlock()
	p.moveReady.Store(false)
	return p.readyMove, p.decision
}

// PeekDecision returns the finished decision without consuming it; used by
// the assist path, where the human plays the move themselves.
func (p *EnginePlayer) PeekDecision() (engine.Decision, bool) {
	if !p.moveReady.Load() {
		return engine.Decision{}, false
	}
	p.moveMutex.Lock()
	defer p.moveMutex.Unlock()
	return p.decision, true
}
