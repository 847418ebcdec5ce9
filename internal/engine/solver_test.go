package engine

import (
	"math/rand"
	"testing"
)

func containsMove(moves []Move, want Move) bool {
	for _, move := range moves {
		if move.Equals(want) {
			return true
		}
	}
	return false
}

// Perfect play from both sides draws 3x3 tic-tac-toe, and the center is
// among the optimal openings.
func TestSolveOpeningIsDrawnAndCenterOptimal(t *testing.T) {
	rules := NewRules(3, 3, 3)
	solver := NewSolver(rules)
	decision := solver.Solve(rules.NewState(), PlayerCross)
	if decision.Value != UtilityDraw {
		t.Fatalf("3x3 k=3 opening value: expected draw, got %d", decision.Value)
	}
	if len(decision.Optimal) == 0 {
		t.Fatalf("opening decision returned no optimal moves")
	}
	if !containsMove(decision.Optimal, Move{X: 2, Y: 2}) {
		t.Fatalf("center must be an optimal opening, got %s", FormatMoveList(decision.Optimal))
	}
	// Every opening draws, so ties cut off behind the first one must be
	// settled and reported optimal rather than left as candidates.
	if len(decision.Optimal) != 9 {
		t.Fatalf("all nine openings draw 3x3, got %s", FormatMoveList(decision.Optimal))
	}
	if len(decision.Candidates) != 0 {
		t.Fatalf("opening decision left unsettled candidates: %s", FormatMoveList(decision.Candidates))
	}
}

// Cross owns (1,1) and (1,2) with nought only on (2,1): completing the
// column at (1,3) is an immediate win worth +1.
func TestSolveFindsImmediateColumnWin(t *testing.T) {
	rules := NewRules(3, 3, 3)
	solver := NewSolver(rules)
	state := applyAll(t, rules, []Move{{1, 1}, {2, 1}, {1, 2}})
	decision := solver.Solve(state, PlayerCross)
	if decision.Value != UtilityCrossWin {
		t.Fatalf("expected +1 with a win in one, got %d", decision.Value)
	}
	if !containsMove(decision.Optimal, Move{X: 1, Y: 3}) {
		t.Fatalf("(1,3) must be optimal, got %s", FormatMoveList(decision.Optimal))
	}
}

// Nought threatens to win at both (3,1) and (1,3): whatever cross plays,
// the root value reflects nought's forced win.
func TestSolveForcedLoss(t *testing.T) {
	rules := NewRules(3, 3, 3)
	solver := NewSolver(rules)
	state := applyAll(t, rules, []Move{
		{2, 2}, {1, 1}, {3, 2}, {2, 1}, {2, 3}, {1, 2},
	})
	decision := solver.Solve(state, PlayerCross)
	if decision.Value != UtilityNoughtWin {
		t.Fatalf("double threat position: expected -1, got %d", decision.Value)
	}
	if len(decision.Optimal) == 0 {
		t.Fatalf("even a lost position must yield a move")
	}
	for _, move := range decision.Optimal {
		if av, ok := solver.actionValues[move]; !ok || av.pruned || av.value != decision.Value {
			t.Fatalf("optimal move %s not backed by an unpruned root record", move.Algebraic())
		}
	}
}

func TestSolveOptimalNeverEmpty(t *testing.T) {
	rules := NewRules(3, 3, 3)
	solver := NewSolver(rules)
	rng := rand.New(rand.NewSource(7))
	checked := 0
	for trial := 0; trial < 200; trial++ {
		state, _, ok := randomOngoingState(rng, rules, rng.Intn(8))
		if !ok || len(rules.LegalMoves(state)) == 0 {
			continue
		}
		decision := solver.Solve(state, state.ToMove())
		if len(decision.Optimal) == 0 {
			t.Fatalf("trial %d: non-terminal state with moves yielded empty optimal set", trial)
		}
		checked++
	}
	if checked < 100 {
		t.Fatalf("too few states checked: %d", checked)
	}
}

// Every move reported optimal must achieve the root value when verified
// against an unpruned reference, and a candidate (cut off with a strictly
// worse bound) never does.
func TestSolveOptimalMatchesPlainMinimax(t *testing.T) {
	rules := NewRules(3, 3, 3)
	solver := NewSolver(rules)
	rng := rand.New(rand.NewSource(3))
	checked, candidateTotal := 0, 0
	for trial := 0; trial < 400; trial++ {
		state, _, ok := randomOngoingState(rng, rules, rng.Intn(8))
		if !ok || len(rules.LegalMoves(state)) == 0 {
			continue
		}
		player := state.ToMove()
		decision := solver.Solve(state, player)
		for _, move := range decision.Optimal {
			child := state.Apply(move, player)
			if got := plainMinimax(rules, child, player.Other(), move); got != decision.Value {
				t.Fatalf("trial %d: move %s reported optimal with root value %d but true value %d",
					trial, move.Algebraic(), decision.Value, got)
			}
		}
		for _, move := range decision.Candidates {
			child := state.Apply(move, player)
			if got := plainMinimax(rules, child, player.Other(), move); got == decision.Value {
				t.Fatalf("trial %d: candidate %s actually achieves the root value %d",
					trial, move.Algebraic(), decision.Value)
			}
		}
		candidateTotal += len(decision.Candidates)
		checked++
	}
	if checked < 200 {
		t.Fatalf("too few states checked: %d", checked)
	}
	if candidateTotal == 0 {
		t.Fatalf("no decision over %d states produced candidates; root cutoffs never marked", checked)
	}
}

func TestSolveCandidatesDisjointFromOptimal(t *testing.T) {
	rules := NewRules(3, 4, 3)
	solver := NewSolver(rules)
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		state, _, ok := randomOngoingState(rng, rules, rng.Intn(6))
		if !ok {
			continue
		}
		decision := solver.Solve(state, state.ToMove())
		for _, candidate := range decision.Candidates {
			if containsMove(decision.Optimal, candidate) {
				t.Fatalf("pruned candidate %s also reported optimal", candidate.Algebraic())
			}
		}
	}
}

func TestSolveReportsSearchEffort(t *testing.T) {
	rules := NewRules(3, 3, 3)
	solver := NewSolver(rules)
	decision := solver.Solve(rules.NewState(), PlayerCross)
	if decision.StatesExplored == 0 || decision.Nodes == 0 {
		t.Fatalf("decision must report explored states and nodes, got %+v", decision)
	}
}

// The cache must not leak values between decisions: solving a different
// position right after another returns the fresh position's value.
func TestSolveResetsBetweenDecisions(t *testing.T) {
	rules := NewRules(3, 3, 3)
	solver := NewSolver(rules)
	winState := applyAll(t, rules, []Move{{1, 1}, {2, 1}, {1, 2}})
	if decision := solver.Solve(winState, PlayerCross); decision.Value != UtilityCrossWin {
		t.Fatalf("expected +1, got %d", decision.Value)
	}
	if decision := solver.Solve(rules.NewState(), PlayerCross); decision.Value != UtilityDraw {
		t.Fatalf("stale cache: fresh opening should be a draw, got %d", decision.Value)
	}
}
