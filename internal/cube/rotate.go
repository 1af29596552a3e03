package cube

// strip is a row or column of three stickers on one face, listed in the
// order they are copied around a 4-cycle.
type strip struct {
	face Face
	idx  [3]int
}

// adjacency lists, for each turning face, the four strips bordering it.
// A clockwise quarter turn moves strip k+1 into strip k and strip 0 into
// strip 3. Index order matters: reversed entries (e.g. 8,5,2) are where the
// neighboring face meets the turning face upside down.
var adjacency = [NumFaces][4]strip{
	U: {
		{F, [3]int{0, 1, 2}},
		{R, [3]int{0, 1, 2}},
		{B, [3]int{0, 1, 2}},
		{L, [3]int{0, 1, 2}},
	},
	D: {
		{F, [3]int{6, 7, 8}},
		{L, [3]int{6, 7, 8}},
		{B, [3]int{6, 7, 8}},
		{R, [3]int{6, 7, 8}},
	},
	F: {
		{U, [3]int{6, 7, 8}},
		{L, [3]int{8, 5, 2}},
		{D, [3]int{2, 1, 0}},
		{R, [3]int{0, 3, 6}},
	},
	B: {
		{U, [3]int{0, 1, 2}},
		{R, [3]int{2, 5, 8}},
		{D, [3]int{8, 7, 6}},
		{L, [3]int{6, 3, 0}},
	},
	R: {
		{U, [3]int{2, 5, 8}},
		{F, [3]int{2, 5, 8}},
		{D, [3]int{2, 5, 8}},
		{B, [3]int{6, 3, 0}},
	},
	L: {
		{U, [3]int{0, 3, 6}},
		{B, [3]int{8, 5, 2}},
		{D, [3]int{0, 3, 6}},
		{F, [3]int{0, 3, 6}},
	},
}

// rotateFaceClockwise rotates a face's own stickers 90 degrees clockwise:
// transpose, then reverse each row.
func (c *Cube) rotateFaceClockwise(face Face) {
	f := &c.Facelets[face]
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			f[i*3+j], f[j*3+i] = f[j*3+i], f[i*3+j]
		}
	}
	for i := 0; i < 3; i++ {
		f[i*3], f[i*3+2] = f[i*3+2], f[i*3]
	}
}

// rotateAdjacent cycles the twelve stickers bordering face one step.
func (c *Cube) rotateAdjacent(face Face) {
	s := &adjacency[face]

	var saved [3]Color
	for i, idx := range s[0].idx {
		saved[i] = c.Facelets[s[0].face][idx]
	}

	for k := 0; k < 3; k++ {
		dst, src := s[k], s[k+1]
		for i := 0; i < 3; i++ {
			c.Facelets[dst.face][dst.idx[i]] = c.Facelets[src.face][src.idx[i]]
		}
	}

	last := s[3]
	for i, idx := range last.idx {
		c.Facelets[last.face][idx] = saved[i]
	}
}

// quarterTurn applies one clockwise quarter turn of face.
func (c *Cube) quarterTurn(face Face) {
	c.rotateFaceClockwise(face)
	c.rotateAdjacent(face)
}

// Turn applies n clockwise quarter turns of face. n is taken modulo 4, so
// -1 is a counter-clockwise turn. Invalid faces are ignored.
func (c *Cube) Turn(face Face, n int) {
	if !face.Valid() {
		return
	}
	n = ((n % 4) + 4) % 4
	for i := 0; i < n; i++ {
		c.quarterTurn(face)
	}
}
