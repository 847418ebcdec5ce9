package engine

type TTFlag uint8

const (
	// TTExact marks a true minimax value, safe to return at any call site.
	TTExact TTFlag = iota
	// TTLower marks a lower bound produced by a beta cutoff in the
	// maximizing node: the real value is >= the stored one. Reusable only
	// when it still prunes (stored value >= the caller's beta).
	TTLower
	// TTUpper marks an upper bound produced by an alpha cutoff in the
	// minimizing node: the real value is <= the stored one. Reusable only
	// when stored value <= the caller's alpha.
	TTUpper
)

type TTEntry struct {
	Value int
	Flag  TTFlag
}

// TranspositionTable memoizes state values within one top-level decision,
// keyed by the canonical (order-independent) state hash. It lives for
// exactly one decision: the selector clears it before every search, since
// a bound computed under one alpha/beta window is not an exact value under
// another, and the board changes once a real move is committed.
type TranspositionTable struct {
	entries map[uint64]TTEntry
}

func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[uint64]TTEntry)}
}

func (tt *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	entry, ok := tt.entries[key]
	return entry, ok
}

// Store inserts an entry unless the key is already present: the first
// exploration of a state recorded a valid value or bound for it, and later
// writers at shallower re-visits are dropped.
func (tt *TranspositionTable) Store(key uint64, value int, flag TTFlag) bool {
	if _, ok := tt.entries[key]; ok {
		return false
	}
	tt.entries[key] = TTEntry{Value: value, Flag: flag}
	return true
}

func (tt *TranspositionTable) Count() int {
	return len(tt.entries)
}

func (tt *TranspositionTable) Clear() {
	tt.entries = make(map[uint64]TTEntry)
}
