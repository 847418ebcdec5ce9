package engine

import "sync"

// ZobristTable assigns a random 64-bit number to every (cell, player) pair.
// XOR over a position's stones is independent of the order the stones were
// placed in, so the resulting hash is a canonical key: transpositions of the
// same occupancy collide on purpose. The side to move is not hashed — in a
// game without captures it is implied by the stone counts.
type ZobristTable struct {
	width  int
	height int
	cells  []uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[[2]int]*ZobristTable
}

var zobristTables = &zobristStore{tables: make(map[[2]int]*ZobristTable)}

func GetZobrist(width, height int) *ZobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	dims := [2]int{width, height}
	if table, ok := zobristTables.tables[dims]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(width)<<32 ^ uint64(height)}
	table := &ZobristTable{width: width, height: height, cells: make([]uint64, width*height*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	zobristTables.tables[dims] = table
	return table
}

func (z *ZobristTable) stone(x, y int, player Player) uint64 {
	idx := ((y-1)*z.width + (x - 1)) * 2
	if player == PlayerNought {
		idx++
	}
	return z.cells[idx]
}

// ComputeHash rebuilds a state's canonical key from scratch. Apply maintains
// it incrementally; this is the reference for tests and resets.
func ComputeHash(state State) uint64 {
	z := GetZobrist(state.Board.Width(), state.Board.Height())
	var hash uint64
	for y := 1; y <= state.Board.Height(); y++ {
		for x := 1; x <= state.Board.Width(); x++ {
			cell := state.Board.At(x, y)
			if cell == CellEmpty {
				continue
			}
			player := PlayerCross
			if cell == CellNought {
				player = PlayerNought
			}
			hash ^= z.stone(x, y, player)
		}
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
