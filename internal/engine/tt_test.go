package engine

import "testing"

func TestTTFirstWriterWins(t *testing.T) {
	tt := NewTranspositionTable()
	if !tt.Store(42, UtilityDraw, TTExact) {
		t.Fatalf("first store must insert")
	}
	if tt.Store(42, UtilityCrossWin, TTLower) {
		t.Fatalf("second store for the same key must be dropped")
	}
	entry, ok := tt.Probe(42)
	if !ok || entry.Value != UtilityDraw || entry.Flag != TTExact {
		t.Fatalf("probe returned %+v, want the first write", entry)
	}
}

func TestTTProbeMiss(t *testing.T) {
	tt := NewTranspositionTable()
	if _, ok := tt.Probe(7); ok {
		t.Fatalf("probe of an empty table must miss")
	}
}

func TestTTClear(t *testing.T) {
	tt := NewTranspositionTable()
	tt.Store(1, UtilityCrossWin, TTLower)
	tt.Store(2, UtilityNoughtWin, TTUpper)
	if tt.Count() != 2 {
		t.Fatalf("expected 2 entries, got %d", tt.Count())
	}
	tt.Clear()
	if tt.Count() != 0 {
		t.Fatalf("clear must empty the table")
	}
	if _, ok := tt.Probe(1); ok {
		t.Fatalf("cleared entry still probeable")
	}
}
