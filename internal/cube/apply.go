package cube

import "github.com/SeamusWaldron/cubesim/pkg/types"

// ApplyMove applies a types.Move to the cube.
func (c *Cube) ApplyMove(m types.Move) {
	face, ok := FaceFromTypes(m.Face)
	if !ok {
		return
	}
	c.Turn(face, m.QuarterTurns())
}

// Apply applies a sequence of moves to the cube.
func (c *Cube) Apply(moves ...types.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// FaceFromTypes converts types.Face to cube.Face.
func FaceFromTypes(f types.Face) (Face, bool) {
	switch f {
	case types.FaceU:
		return U, true
	case types.FaceD:
		return D, true
	case types.FaceF:
		return F, true
	case types.FaceB:
		return B, true
	case types.FaceR:
		return R, true
	case types.FaceL:
		return L, true
	default:
		return 0, false
	}
}
