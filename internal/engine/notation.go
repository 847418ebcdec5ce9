package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Algebraic renders a move as column letter plus 1-based row: (2,3) -> "B3".
func (m Move) Algebraic() string {
	return fmt.Sprintf("%c%d", rune('A'+m.X-1), m.Y)
}

// ParseAlgebraic reads coordinates like "B3" or "b12". Bounds are not
// checked here; Rules.IsLegal owns that.
func ParseAlgebraic(input string) (Move, error) {
	trimmed := strings.TrimSpace(strings.ToUpper(input))
	if len(trimmed) < 2 {
		return Move{}, fmt.Errorf("coordinate %q too short", input)
	}
	col := trimmed[0]
	if col < 'A' || col > 'Z' {
		return Move{}, fmt.Errorf("coordinate %q must start with a column letter", input)
	}
	row, err := strconv.Atoi(trimmed[1:])
	if err != nil {
		return Move{}, fmt.Errorf("coordinate %q has an invalid row: %w", input, err)
	}
	return Move{X: int(col-'A') + 1, Y: row}, nil
}

// FormatMoveList renders moves as an alphabetically sorted sentence,
// e.g. "A1, B2, C3." Returns "" for an empty list.
func FormatMoveList(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	coords := make([]string, 0, len(moves))
	for _, move := range moves {
		coords = append(coords, move.Algebraic())
	}
	sort.Strings(coords)
	return strings.Join(coords, ", ") + "."
}
