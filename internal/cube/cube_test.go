package cube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

const solvedState = "wwwwwwwww" + "rrrrrrrrr" + "ggggggggg" + "yyyyyyyyy" + "ooooooooo" + "bbbbbbbbb"

var allFaces = []Face{U, D, F, B, R, L}

func mv(face types.Face, turn types.Turn) types.Move {
	return types.Move{Face: face, Turn: turn}
}

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if got := c.Serialize(); got != solvedState {
		t.Errorf("solved serialization = %s, want %s", got, solvedState)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New()
	c.Turn(R, 1) // R
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRotateFaceClockwiseLayout(t *testing.T) {
	c := New()
	f := c.Face(F)
	for i := range f {
		f[i] = Color(i)
	}

	c.rotateFaceClockwise(F)

	want := [9]Color{6, 3, 0, 7, 4, 1, 8, 5, 2}
	if *f != want {
		t.Errorf("clockwise rotation = %v, want %v", *f, want)
	}
}

func TestRotateFaceClockwise_FourTimesIsIdentity(t *testing.T) {
	for _, face := range allFaces {
		c := New()
		f := c.Face(face)
		for i := range f {
			f[i] = Color(i % NumColors)
		}
		before := *f

		for i := 0; i < 4; i++ {
			c.rotateFaceClockwise(face)
		}

		if *f != before {
			t.Errorf("%v: four face rotations changed the grid: %v -> %v", face, before, *f)
		}
	}
}

func TestQuarterTurn_FourTimesIsIdentity_AllFaces(t *testing.T) {
	// Start from a scrambled cube so that every sticker is distinguishable
	// from its neighbors.
	base := New()
	base.Apply(mv(types.FaceR, types.TurnCW), mv(types.FaceU, types.TurnCW), mv(types.FaceF, types.TurnCCW),
		mv(types.FaceL, types.Turn180), mv(types.FaceD, types.TurnCW), mv(types.FaceB, types.TurnCCW))

	for _, face := range allFaces {
		c := base.Clone()
		for i := 0; i < 4; i++ {
			c.quarterTurn(face)
		}
		if !c.Equal(base) {
			t.Errorf("%v x 4 should restore the previous state", face)
			t.Log(c.String())
		}
	}
}

func TestRR_ReturnsToSolved(t *testing.T) {
	c := New()
	c.Apply(mv(types.FaceR, types.TurnCW), mv(types.FaceR, types.TurnCW),
		mv(types.FaceR, types.TurnCW), mv(types.FaceR, types.TurnCW))
	if !c.IsSolved() {
		t.Error("R R R R should return to solved")
		t.Log(c.String())
	}
	if c.Serialize() != solvedState {
		t.Errorf("R R R R serialization = %s", c.Serialize())
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := New()
	c.Turn(R, 2)
	c.Turn(R, 2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestTurnAndInverse_AllFaces(t *testing.T) {
	for _, face := range allFaces {
		c := New()
		c.Turn(face, 1)
		c.Turn(face, -1)
		if !c.IsSolved() {
			t.Errorf("%v %v' should return to solved", face, face)
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c.Turn(R, 1)  // R
		c.Turn(U, 1)  // U
		c.Turn(R, -1) // R'
		c.Turn(U, -1) // U'
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestCommutators_6Times_ReturnToSolved(t *testing.T) {
	// Any commutator of two adjacent faces has order 6.
	pairs := [][2]Face{{F, L}, {B, D}, {L, B}, {D, R}, {U, F}, {R, B}}
	for _, p := range pairs {
		c := New()
		for i := 0; i < 6; i++ {
			c.Turn(p[0], 1)
			c.Turn(p[1], 1)
			c.Turn(p[0], -1)
			c.Turn(p[1], -1)
		}
		if !c.IsSolved() {
			t.Errorf("(%v %v %v' %v') x 6 should return to solved", p[0], p[1], p[0], p[1])
			t.Log(c.String())
		}
	}
}

func TestRU_Order105(t *testing.T) {
	c := New()
	for i := 0; i < 105; i++ {
		c.Turn(R, 1)
		c.Turn(U, 1)
		if i < 104 && c.IsSolved() {
			t.Fatalf("(R U) returned to solved early after %d repetitions", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("(R U) x 105 should return to solved")
		t.Log(c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	tperm := []types.Move{
		mv(types.FaceR, types.TurnCW), mv(types.FaceU, types.TurnCW), mv(types.FaceR, types.TurnCCW), mv(types.FaceU, types.TurnCCW),
		mv(types.FaceR, types.TurnCCW), mv(types.FaceF, types.TurnCW), mv(types.FaceR, types.Turn180), mv(types.FaceU, types.TurnCCW),
		mv(types.FaceR, types.TurnCCW), mv(types.FaceU, types.TurnCCW), mv(types.FaceR, types.TurnCW), mv(types.FaceU, types.TurnCW),
		mv(types.FaceR, types.TurnCCW), mv(types.FaceF, types.TurnCCW),
	}

	c := New()
	c.Apply(tperm...)
	if c.IsSolved() {
		t.Error("a single T-perm should not be solved")
	}
	c.Apply(tperm...)
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestReferenceStates(t *testing.T) {
	tests := []struct {
		name  string
		moves []types.Move
		want  string
	}{
		{"U", []types.Move{mv(types.FaceU, types.TurnCW)},
			"wwwwwwwwwbbbrrrrrrrrrggggggyyyyyyyyygggooooooooobbbbbb"},
		{"D", []types.Move{mv(types.FaceD, types.TurnCW)},
			"wwwwwwwwwrrrrrrgggggggggoooyyyyyyyyyoooooobbbbbbbbbrrr"},
		{"F", []types.Move{mv(types.FaceF, types.TurnCW)},
			"wwwwwwooowrrwrrwrrgggggggggrrryyyyyyooyooyooybbbbbbbbb"},
		{"B", []types.Move{mv(types.FaceB, types.TurnCW)},
			"rrrwwwwwwrryrryrrygggggggggyyyyyyooowoowoowoobbbbbbbbb"},
		{"L", []types.Move{mv(types.FaceL, types.TurnCW)},
			"bwwbwwbwwrrrrrrrrrwggwggwgggyygyygyyooooooooobbybbybby"},
		{"R", []types.Move{mv(types.FaceR, types.TurnCW)},
			"wwgwwgwwgrrrrrrrrrggyggyggyyybyybyybooooooooowbbwbbwbb"},
		{"U'", []types.Move{mv(types.FaceU, types.TurnCCW)},
			"wwwwwwwwwgggrrrrrroooggggggyyyyyyyyybbboooooorrrbbbbbb"},
		{"F2", []types.Move{mv(types.FaceF, types.Turn180)},
			"wwwwwwyyyorrorrorrgggggggggwwwyyyyyyoorooroorbbbbbbbbb"},
		{"R U2 F' L D B2 R' U F2 D' L' B", []types.Move{
			mv(types.FaceR, types.TurnCW), mv(types.FaceU, types.Turn180), mv(types.FaceF, types.TurnCCW),
			mv(types.FaceL, types.TurnCW), mv(types.FaceD, types.TurnCW), mv(types.FaceB, types.Turn180),
			mv(types.FaceR, types.TurnCCW), mv(types.FaceU, types.TurnCW), mv(types.FaceF, types.Turn180),
			mv(types.FaceD, types.TurnCCW), mv(types.FaceL, types.TurnCCW), mv(types.FaceB, types.TurnCW),
		}, "yggwwbbbwrrwrrybgrrwgyggyyobgwwywbygoowboorrooogbboyry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.Apply(tt.moves...)
			if got := c.Serialize(); got != tt.want {
				t.Errorf("state after %s\n got %s\nwant %s", tt.name, got, tt.want)
				t.Log(c.String())
			}
		})
	}
}

func TestU_FrontTopRowTakesRightTopRow(t *testing.T) {
	c := New()
	c.Apply(mv(types.FaceR, types.TurnCW), mv(types.FaceF, types.TurnCW))
	rightTop := [3]Color{c.Facelets[R][0], c.Facelets[R][1], c.Facelets[R][2]}

	c.ApplyMove(mv(types.FaceU, types.TurnCW))

	frontTop := [3]Color{c.Facelets[F][0], c.Facelets[F][1], c.Facelets[F][2]}
	if frontTop != rightTop {
		t.Errorf("front top row = %v, want former right top row %v", frontTop, rightTop)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after U")
	}
}

func TestColorCounts_AlwaysNine(t *testing.T) {
	c := New()
	for i := 0; i < 200; i++ {
		c.ApplyMove(types.MoveFromToken(uint8((i * 7) % types.TokenCount)))
		if err := c.Validate(); err != nil {
			t.Fatalf("after %d moves: %v", i+1, err)
		}
	}
	for color, n := range c.ColorCounts() {
		if n != 9 {
			t.Errorf("%v count = %d, want 9", Color(color), n)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	c := New()
	c.Apply(mv(types.FaceL, types.TurnCW), mv(types.FaceB, types.Turn180), mv(types.FaceD, types.TurnCCW))

	parsed, err := Parse(c.Serialize())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(c) {
		t.Error("parsed cube differs from the original")
		t.Log(parsed.String())
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"short":         solvedState[:53],
		"unknown color": "x" + solvedState[1:],
		"ten whites":    "w" + solvedState[1:9] + "w" + solvedState[10:],
	}
	for name, state := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(state); !errors.Is(err, ErrInvalidState) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidState", state, err)
			}
		})
	}
}

func TestAdjacencyTable(t *testing.T) {
	for _, face := range allFaces {
		seen := map[Face]bool{}
		for _, s := range adjacency[face] {
			if s.face == face {
				t.Errorf("%v cycle includes the turning face", face)
			}
			if seen[s.face] {
				t.Errorf("%v cycle visits %v twice", face, s.face)
			}
			seen[s.face] = true

			idx := map[int]bool{}
			for _, i := range s.idx {
				if i < 0 || i > 8 || i == 4 {
					t.Errorf("%v cycle: bad index %d on %v", face, i, s.face)
				}
				idx[i] = true
			}
			if len(idx) != 3 {
				t.Errorf("%v cycle: strip on %v repeats an index: %v", face, s.face, s.idx)
			}
		}
	}
}

func TestTurn_IgnoresInvalidFace(t *testing.T) {
	c := New()
	c.Turn(Face(9), 1)
	c.ApplyMove(types.Move{Face: "X", Turn: types.TurnCW})
	if !c.IsSolved() {
		t.Error("invalid faces must not change the cube")
	}
}
