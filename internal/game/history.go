package game

import "mnkgame/internal/engine"

type HistoryEntry struct {
	Move           engine.Move
	Player         engine.Player
	ElapsedMs      float64
	IsEngine       bool
	Value          int
	StatesExplored int
}

type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}
