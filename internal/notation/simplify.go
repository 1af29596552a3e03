package notation

import "github.com/SeamusWaldron/cubesim/pkg/types"

// merge combines two same-face moves. ok is false when they cancel out
// (e.g. R + R').
func merge(m1, m2 types.Move) (types.Move, bool) {
	total := (m1.QuarterTurns() + m2.QuarterTurns()) % 4
	switch total {
	case 0:
		return types.Move{}, false
	case 1:
		return types.Move{Face: m1.Face, Turn: types.TurnCW}, true
	case 2:
		return types.Move{Face: m1.Face, Turn: types.Turn180}, true
	default:
		return types.Move{Face: m1.Face, Turn: types.TurnCCW}, true
	}
}

// Simplify merges adjacent turns of the same face and drops the ones that
// cancel, repeating until nothing changes: "R R" becomes "R2" and
// "U R R' U'" disappears. The result reaches the same cube state.
func Simplify(moves []types.Move) []types.Move {
	result := make([]types.Move, 0, len(moves))

	for _, move := range moves {
		if len(result) == 0 {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		if last.Face != move.Face {
			result = append(result, move)
			continue
		}

		if merged, ok := merge(*last, move); ok {
			*last = merged
		} else {
			// Full cancellation
			result = result[:len(result)-1]
		}
	}

	return result
}

// Redundancy counts the moves Simplify would remove.
func Redundancy(moves []types.Move) int {
	return len(moves) - len(Simplify(moves))
}
