package engine

import "testing"

func applyAll(t *testing.T, rules Rules, moves []Move) State {
	t.Helper()
	state := rules.NewState()
	player := PlayerCross
	for _, move := range moves {
		if ok, reason := rules.IsLegal(state, move); !ok {
			t.Fatalf("setup move %s illegal: %s", move.Algebraic(), reason)
		}
		state = state.Apply(move, player)
		player = player.Other()
	}
	return state
}

func TestIsTerminalWinOnEveryAxis(t *testing.T) {
	rules := NewRules(4, 4, 3)
	cases := []struct {
		name  string
		cross []Move
	}{
		{"horizontal", []Move{{1, 2}, {2, 2}, {3, 2}}},
		{"vertical", []Move{{2, 1}, {2, 2}, {2, 3}}},
		{"diagonal-up-right", []Move{{1, 1}, {2, 2}, {3, 3}}},
		{"diagonal-up-left", []Move{{3, 1}, {2, 2}, {1, 3}}},
	}
	for _, tc := range cases {
		state := rules.NewState()
		for _, move := range tc.cross {
			state = state.Apply(move, PlayerCross)
		}
		// The middle stone completes the run last: the scan must look both ways.
		last := tc.cross[1]
		terminal, winner := rules.IsTerminal(state, last, PlayerCross)
		if !terminal || winner != WinnerCross {
			t.Fatalf("%s: expected cross win, got terminal=%v winner=%v", tc.name, terminal, winner)
		}
	}
}

func TestIsTerminalRunLongerThanK(t *testing.T) {
	rules := NewRules(5, 5, 3)
	state := rules.NewState()
	for _, move := range []Move{{1, 1}, {2, 1}, {4, 1}, {5, 1}, {3, 1}} {
		state = state.Apply(move, PlayerNought)
	}
	terminal, winner := rules.IsTerminal(state, Move{X: 3, Y: 1}, PlayerNought)
	if !terminal || winner != WinnerNought {
		t.Fatalf("expected nought win on 5-run with k=3, got terminal=%v winner=%v", terminal, winner)
	}
}

func TestIsTerminalDrawOnFullBoard(t *testing.T) {
	rules := NewRules(3, 3, 3)
	// Full board, no 3-run for either side; (3,3) played last by cross.
	state := applyAll(t, rules, []Move{
		{1, 1}, {2, 1}, {3, 1}, {2, 2},
		{1, 2}, {3, 2}, {2, 3}, {1, 3},
		{3, 3},
	})
	terminal, winner := rules.IsTerminal(state, Move{X: 3, Y: 3}, PlayerCross)
	if !terminal || winner != WinnerDraw {
		t.Fatalf("expected draw, got terminal=%v winner=%v", terminal, winner)
	}
}

func TestIsTerminalNoLastMove(t *testing.T) {
	rules := NewRules(3, 3, 3)
	terminal, winner := rules.IsTerminal(rules.NewState(), Move{}, PlayerCross)
	if terminal || winner != WinnerNone {
		t.Fatalf("empty board with no last move must be non-terminal")
	}
}

func TestIsTerminalOngoing(t *testing.T) {
	rules := NewRules(3, 3, 3)
	// cross {(1,1),(1,2)}, nought {(2,1)}, last move (1,2).
	state := applyAll(t, rules, []Move{{1, 1}, {2, 1}, {1, 2}})
	terminal, winner := rules.IsTerminal(state, Move{X: 1, Y: 2}, PlayerCross)
	if terminal || winner != WinnerNone {
		t.Fatalf("two in a column with k=3 must not be terminal")
	}
}

func TestIsTerminalIdempotent(t *testing.T) {
	rules := NewRules(3, 3, 3)
	state := applyAll(t, rules, []Move{{1, 1}, {2, 1}, {1, 2}})
	last := Move{X: 1, Y: 2}
	t1, w1 := rules.IsTerminal(state, last, PlayerCross)
	t2, w2 := rules.IsTerminal(state, last, PlayerCross)
	if t1 != t2 || w1 != w2 {
		t.Fatalf("IsTerminal not idempotent: (%v,%v) then (%v,%v)", t1, w1, t2, w2)
	}
}

func TestLegalMovesColumnMajorOrder(t *testing.T) {
	rules := NewRules(2, 3, 2)
	moves := rules.LegalMoves(rules.NewState())
	want := []Move{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}}
	if len(moves) != len(want) {
		t.Fatalf("expected %d legal moves, got %d", len(want), len(moves))
	}
	for i := range want {
		if !moves[i].Equals(want[i]) {
			t.Fatalf("move %d: expected %v, got %v", i, want[i], moves[i])
		}
	}
}

func TestLegalMovesExcludesOccupied(t *testing.T) {
	rules := NewRules(3, 3, 3)
	state := applyAll(t, rules, []Move{{2, 2}, {1, 1}})
	moves := rules.LegalMoves(state)
	if len(moves) != 7 {
		t.Fatalf("expected 7 legal moves, got %d", len(moves))
	}
	for _, move := range moves {
		if move.Equals(Move{X: 2, Y: 2}) || move.Equals(Move{X: 1, Y: 1}) {
			t.Fatalf("occupied cell %s generated as legal", move.Algebraic())
		}
	}
}

func TestIsLegalRejections(t *testing.T) {
	rules := NewRules(3, 3, 3)
	state := applyAll(t, rules, []Move{{2, 2}})
	if ok, reason := rules.IsLegal(state, Move{X: 0, Y: 1}); ok || reason != "out of bounds" {
		t.Fatalf("expected out of bounds, got ok=%v reason=%q", ok, reason)
	}
	if ok, reason := rules.IsLegal(state, Move{X: 4, Y: 1}); ok || reason != "out of bounds" {
		t.Fatalf("expected out of bounds, got ok=%v reason=%q", ok, reason)
	}
	if ok, reason := rules.IsLegal(state, Move{X: 2, Y: 2}); ok || reason != "occupied" {
		t.Fatalf("expected occupied, got ok=%v reason=%q", ok, reason)
	}
	if ok, _ := rules.IsLegal(state, Move{X: 1, Y: 3}); !ok {
		t.Fatalf("expected empty in-bounds move to be legal")
	}
}

func TestWinningLine(t *testing.T) {
	rules := NewRules(5, 5, 4)
	state := rules.NewState()
	for _, move := range []Move{{2, 2}, {3, 3}, {4, 4}, {5, 5}} {
		state = state.Apply(move, PlayerCross)
	}
	line, ok := rules.WinningLine(state.Board, Move{X: 5, Y: 5})
	if !ok || len(line) != 4 {
		t.Fatalf("expected 4-cell winning line, got ok=%v line=%v", ok, line)
	}
	if !line[0].Equals(Move{X: 2, Y: 2}) || !line[3].Equals(Move{X: 5, Y: 5}) {
		t.Fatalf("winning line out of order: %v", line)
	}
}
