package game

import (
	"sync"

	"github.com/google/uuid"

	"mnkgame/internal/engine"
)

// Controller is the mutex-guarded facade around one game, identified by a
// UUID so the backend can host several games at once.
type Controller struct {
	mu      sync.Mutex
	id      string
	game    Game
	suggest *engine.Solver
}

func NewController(settings Settings) *Controller {
	return &Controller{
		id:   uuid.NewString(),
		game: NewGame(settings),
	}
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.State()
}

func (c *Controller) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Settings()
}

func (c *Controller) History() MoveHistory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.History()
}

func (c *Controller) TurnStartedAtMs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.TurnStartedAtMs()
}

func (c *Controller) LatestHistoryEntry() (HistoryEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	history := c.game.History()
	if history.Size() == 0 {
		return HistoryEntry{}, false
	}
	entries := history.All()
	return entries[len(entries)-1], true
}

func (c *Controller) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Tick()
}

func (c *Controller) ApplyHumanMove(move engine.Move) (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	return c.game.TryApplyMove(move)
}

func (c *Controller) StartGame(settings Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.game.Reset(settings)
	c.game.Start()
}

func (c *Controller) Reset(settings Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.game.Reset(settings)
}

func (c *Controller) EngineThinking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.EngineThinking()
}

func (c *Controller) Suggestion() (engine.Decision, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Suggestion()
}

// Analyze solves the current position synchronously for the side to move.
// It holds the game lock for the duration of the search; with the exact
// solver that is only viable for small boards, which is the core's stated
// operating envelope.
func (c *Controller) Analyze() (engine.Decision, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.game.State()
	if state.Status.Finished() {
		return engine.Decision{}, false
	}
	rules := c.game.Rules()
	if len(rules.LegalMoves(state.Position)) == 0 {
		return engine.Decision{}, false
	}
	if c.suggest == nil || c.suggest.Rules() != rules {
		c.suggest = engine.NewSolver(rules)
	}
	return c.suggest.Solve(state.Position, state.ToMove), true
}

// Manager owns the live set of games.
type Manager struct {
	mu    sync.Mutex
	games map[string]*Controller
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Controller)}
}

func (m *Manager) Create(settings Settings) *Controller {
	controller := NewController(settings)
	m.mu.Lock()
	m.games[controller.ID()] = controller
	m.mu.Unlock()
	return controller
}

func (m *Manager) Get(id string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	controller, ok := m.games[id]
	return controller, ok
}

func (m *Manager) All() []*Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*Controller, 0, len(m.games))
	for _, controller := range m.games {
		all = append(all, controller)
	}
	return all
}

func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return false
	}
	delete(m.games, id)
	return true
}
