package engine

import "testing"

func TestApplyDoesNotMutateParent(t *testing.T) {
	parent := NewState(3, 3)
	child := parent.Apply(Move{X: 2, Y: 2}, PlayerCross)
	if parent.Board.At(2, 2) != CellEmpty {
		t.Fatalf("parent state mutated by Apply")
	}
	if parent.Stones != 0 || parent.Hash != 0 {
		t.Fatalf("parent bookkeeping mutated by Apply")
	}
	if child.Board.At(2, 2) != CellCross || child.Stones != 1 {
		t.Fatalf("child state missing applied move")
	}
}

func TestHashIsOrderIndependent(t *testing.T) {
	a := NewState(3, 3).
		Apply(Move{X: 1, Y: 1}, PlayerCross).
		Apply(Move{X: 3, Y: 3}, PlayerNought).
		Apply(Move{X: 2, Y: 2}, PlayerCross)
	b := NewState(3, 3).
		Apply(Move{X: 2, Y: 2}, PlayerCross).
		Apply(Move{X: 3, Y: 3}, PlayerNought).
		Apply(Move{X: 1, Y: 1}, PlayerCross)
	if a.Hash != b.Hash {
		t.Fatalf("transpositions must share a canonical key: %x != %x", a.Hash, b.Hash)
	}
	c := NewState(3, 3).
		Apply(Move{X: 2, Y: 2}, PlayerNought).
		Apply(Move{X: 3, Y: 3}, PlayerCross).
		Apply(Move{X: 1, Y: 1}, PlayerNought)
	if a.Hash == c.Hash {
		t.Fatalf("swapping stone owners must change the key")
	}
}

func TestIncrementalHashMatchesComputeHash(t *testing.T) {
	state := NewState(4, 3)
	player := PlayerCross
	for _, move := range []Move{{1, 1}, {2, 2}, {3, 3}, {4, 1}, {1, 2}} {
		state = state.Apply(move, player)
		player = player.Other()
		if got := ComputeHash(state); got != state.Hash {
			t.Fatalf("incremental hash diverged after %s: %x != %x", move.Algebraic(), state.Hash, got)
		}
	}
}

func TestToMoveParity(t *testing.T) {
	state := NewState(3, 3)
	if state.ToMove() != PlayerCross {
		t.Fatalf("cross moves first")
	}
	state = state.Apply(Move{X: 1, Y: 1}, PlayerCross)
	if state.ToMove() != PlayerNought {
		t.Fatalf("nought moves second")
	}
}
