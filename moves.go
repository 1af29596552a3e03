package cubesim

import "github.com/SeamusWaldron/cubesim/pkg/types"

// Predefined moves for convenience.
//
// Example:
//
//	c := cube.New()
//	c.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	// Right face moves
	R      = types.Move{Face: types.FaceR, Turn: types.TurnCW}  // Right clockwise
	RPrime = types.Move{Face: types.FaceR, Turn: types.TurnCCW} // Right counter-clockwise
	R2     = types.Move{Face: types.FaceR, Turn: types.Turn180} // Right 180

	// Left face moves
	L      = types.Move{Face: types.FaceL, Turn: types.TurnCW}
	LPrime = types.Move{Face: types.FaceL, Turn: types.TurnCCW}
	L2     = types.Move{Face: types.FaceL, Turn: types.Turn180}

	// Up face moves
	U      = types.Move{Face: types.FaceU, Turn: types.TurnCW}
	UPrime = types.Move{Face: types.FaceU, Turn: types.TurnCCW}
	U2     = types.Move{Face: types.FaceU, Turn: types.Turn180}

	// Down face moves
	D      = types.Move{Face: types.FaceD, Turn: types.TurnCW}
	DPrime = types.Move{Face: types.FaceD, Turn: types.TurnCCW}
	D2     = types.Move{Face: types.FaceD, Turn: types.Turn180}

	// Front face moves
	F      = types.Move{Face: types.FaceF, Turn: types.TurnCW}
	FPrime = types.Move{Face: types.FaceF, Turn: types.TurnCCW}
	F2     = types.Move{Face: types.FaceF, Turn: types.Turn180}

	// Back face moves
	B      = types.Move{Face: types.FaceB, Turn: types.TurnCW}
	BPrime = types.Move{Face: types.FaceB, Turn: types.TurnCCW}
	B2     = types.Move{Face: types.FaceB, Turn: types.Turn180}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []types.Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []types.Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
