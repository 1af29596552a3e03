package notation

import "github.com/SeamusWaldron/cubesim/pkg/types"

var faceNames = map[types.Face]string{
	types.FaceR: "right",
	types.FaceL: "left",
	types.FaceU: "top",
	types.FaceD: "bottom",
	types.FaceF: "front",
	types.FaceB: "back",
}

// Describe spells out a move for people who don't read notation.
// Directions are as seen looking straight at the turning face.
//
//	R  -> "turn the right face clockwise"
//	U' -> "turn the top face counter-clockwise"
//	F2 -> "turn the front face twice"
func Describe(m types.Move) string {
	name, ok := faceNames[m.Face]
	if !ok {
		return m.Notation()
	}

	switch m.Turn {
	case types.TurnCCW:
		return "turn the " + name + " face counter-clockwise"
	case types.Turn180:
		return "turn the " + name + " face twice"
	default:
		return "turn the " + name + " face clockwise"
	}
}
