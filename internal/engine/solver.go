// Package engine implements exact adversarial search for the generalized
// (m,n,k) game: alpha-beta-pruned minimax run all the way to terminal
// states, memoized per decision in a transposition cache. There is no
// heuristic evaluation and no depth cutoff; the returned values are
// game-theoretic.
package engine

import (
	"sort"
	"time"
)

// Decision is the outcome of one top-level search. Optimal holds every root
// move proven to achieve Value; a pruned root move whose bound ties the
// root value is settled by a full-window re-search before it may appear
// here. Candidates holds root moves discarded by a cutoff with a bound
// strictly worse than Value: not provably optimal, but worth a human's
// second look.
type Decision struct {
	Value          int
	Optimal        []Move
	Candidates     []Move
	StatesExplored int
	Nodes          int
	Elapsed        time.Duration
}

// Solver runs one decision at a time. It owns the transposition cache and
// the per-decision action-value map; both are reset at the start of every
// Solve, never shared across decisions, and written only by the single
// search in flight (the search is synchronous and not reentrant).
type Solver struct {
	rules        Rules
	tt           *TranspositionTable
	actionValues map[Move]actionValue
	stats        SearchStats
}

func NewSolver(rules Rules) *Solver {
	return &Solver{
		rules:        rules,
		tt:           NewTranspositionTable(),
		actionValues: make(map[Move]actionValue),
	}
}

func (s *Solver) Rules() Rules {
	return s.rules
}

// Solve evaluates the position for the given side and collects the optimal
// move set. The state must be non-terminal; for any non-terminal state with
// at least one legal move the returned Optimal set is non-empty, because
// the root loop records every child it visits and the extremum is taken
// over those same records.
func (s *Solver) Solve(state State, player Player) Decision {
	s.tt.Clear()
	s.actionValues = make(map[Move]actionValue)
	s.stats = SearchStats{Start: time.Now()}

	var rootValue int
	if player == PlayerCross {
		rootValue = s.evalMax(state, -utilityInf, utilityInf, Move{}, 0)
	} else {
		rootValue = s.evalMin(state, -utilityInf, utilityInf, Move{}, 0)
	}

	optimal := make([]Move, 0, len(s.actionValues))
	candidates := make([]Move, 0)
	var unresolved []Move
	for move, av := range s.actionValues {
		switch {
		case av.pruned && av.value == rootValue:
			unresolved = append(unresolved, move)
		case av.pruned:
			candidates = append(candidates, move)
		case av.value == rootValue:
			optimal = append(optimal, move)
		}
	}

	// A depth-1 cutoff leaves only a bound. When that bound ties the root
	// value the move might still achieve it, so settle it with a
	// full-window re-search of the child before reporting it either way.
	// Bounds strictly worse than the root value stay unsettled candidates.
	for _, move := range unresolved {
		exact := s.resolveRootChild(state, player, move)
		s.actionValues[move] = actionValue{value: exact}
		if exact == rootValue {
			optimal = append(optimal, move)
		}
	}
	sortMoves(optimal)
	sortMoves(candidates)

	return Decision{
		Value:          rootValue,
		Optimal:        optimal,
		Candidates:     candidates,
		StatesExplored: s.tt.Count(),
		Nodes:          s.stats.Nodes,
		Elapsed:        time.Since(s.stats.Start),
	}
}

func (s *Solver) Stats() SearchStats {
	return s.stats
}

// resolveRootChild re-searches one root child with the full window, which
// neither a depth-1 cutoff (the window cannot fail) nor a cached bound
// (no bound prunes against an infinite window) can cut short, so the
// returned value is exact. Exact cache entries from the main search still
// short-circuit.
func (s *Solver) resolveRootChild(state State, player Player, move Move) int {
	child := state.Apply(move, player)
	if player == PlayerCross {
		return s.evalMin(child, -utilityInf, utilityInf, move, 1)
	}
	return s.evalMax(child, -utilityInf, utilityInf, move, 1)
}

// sortMoves orders column-major, matching the generator order.
func sortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].X != moves[j].X {
			return moves[i].X < moves[j].X
		}
		return moves[i].Y < moves[j].Y
	})
}
