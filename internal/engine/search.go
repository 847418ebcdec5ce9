package engine

import "time"

// Utilities of terminal states. Alpha/beta windows travel as plain ints
// with +-utilityInf sentinels, which strictly dominate every utility.
const (
	UtilityCrossWin  = 1
	UtilityNoughtWin = -1
	UtilityDraw      = 0

	utilityInf = 2
)

func utilityOf(winner Winner) int {
	switch winner {
	case WinnerCross:
		return UtilityCrossWin
	case WinnerNought:
		return UtilityNoughtWin
	default:
		return UtilityDraw
	}
}

type SearchStats struct {
	Nodes    int
	TTProbes int
	TTHits   int
	TTStores int
	Cutoffs  int
	Start    time.Time
}

type actionValue struct {
	pruned bool
	value  int
}

// evalMax computes the minimax value of state with Cross to move. lastMove
// is the Nought move that produced this state (zero at the decision root).
func (s *Solver) evalMax(state State, alpha, beta int, lastMove Move, depth int) int {
	s.stats.Nodes++
	if terminal, winner := s.rules.IsTerminal(state, lastMove, PlayerNought); terminal {
		return utilityOf(winner)
	}
	s.stats.TTProbes++
	if entry, ok := s.tt.Probe(state.Hash); ok {
		s.stats.TTHits++
		if entry.Flag == TTExact {
			return entry.Value
		}
		if entry.Flag == TTLower && entry.Value >= beta {
			return entry.Value
		}
		// The stored bound does not prune under this window; re-search.
	}
	v := -utilityInf
	for _, move := range s.rules.LegalMoves(state) {
		value := s.evalMin(state.Apply(move, PlayerCross), alpha, beta, move, depth+1)
		if value > v {
			v = value
		}
		if depth == 0 {
			// Update the value slot only: the child may have flagged this
			// move pruned at its cutoff, and that flag must survive.
			av := s.actionValues[move]
			av.value = value
			s.actionValues[move] = av
		}
		if v >= beta {
			s.stats.Cutoffs++
			if s.tt.Store(state.Hash, v, TTLower) {
				s.stats.TTStores++
			}
			if depth == 1 {
				// The root move leading here was cut off: its true value
				// is undetermined, so it cannot be reported as optimal.
				s.actionValues[lastMove] = actionValue{pruned: true}
			}
			return v
		}
		if v > alpha {
			alpha = v
		}
	}
	if s.tt.Store(state.Hash, v, TTExact) {
		s.stats.TTStores++
	}
	return v
}

// evalMin mirrors evalMax for Nought to move.
func (s *Solver) evalMin(state State, alpha, beta int, lastMove Move, depth int) int {
	s.stats.Nodes++
	if terminal, winner := s.rules.IsTerminal(state, lastMove, PlayerCross); terminal {
		return utilityOf(winner)
	}
	s.stats.TTProbes++
	if entry, ok := s.tt.Probe(state.Hash); ok {
		s.stats.TTHits++
		if entry.Flag == TTExact {
			return entry.Value
		}
		if entry.Flag == TTUpper && entry.Value <= alpha {
			return entry.Value
		}
	}
	v := utilityInf
	for _, move := range s.rules.LegalMoves(state) {
		value := s.evalMax(state.Apply(move, PlayerNought), alpha, beta, move, depth+1)
		if value < v {
			v = value
		}
		if depth == 0 {
			av := s.actionValues[move]
			av.value = value
			s.actionValues[move] = av
		}
		if v <= alpha {
			s.stats.Cutoffs++
			if s.tt.Store(state.Hash, v, TTUpper) {
				s.stats.TTStores++
			}
			if depth == 1 {
				s.actionValues[lastMove] = actionValue{pruned: true}
			}
			return v
		}
		if v < beta {
			beta = v
		}
	}
	if s.tt.Store(state.Hash, v, TTExact) {
		s.stats.TTStores++
	}
	return v
}
