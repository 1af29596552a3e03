// Package cube provides a 3x3 Rubik's cube model: sticker state, face turns
// and the canonical state serialization.
package cube

import (
	"fmt"
	"strings"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

// NumColors is the number of distinct sticker colors.
const NumColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Symbol returns the lower-case character used for the color in
// serialized state strings.
func (c Color) Symbol() byte {
	switch c {
	case White:
		return 'w'
	case Yellow:
		return 'y'
	case Green:
		return 'g'
	case Blue:
		return 'b'
	case Red:
		return 'r'
	case Orange:
		return 'o'
	default:
		return '?'
	}
}

// ColorFromSymbol is the inverse of Color.Symbol.
func ColorFromSymbol(s byte) (Color, bool) {
	switch s {
	case 'w':
		return White, true
	case 'y':
		return Yellow, true
	case 'g':
		return Green, true
	case 'b':
		return Blue, true
	case 'r':
		return Red, true
	case 'o':
		return Orange, true
	default:
		return 0, false
	}
}

// Face identifies one of the six orientation slots.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

// NumFaces is the number of orientation slots.
const NumFaces = 6

// CanonicalOrder is the face order used by Serialize.
var CanonicalOrder = [NumFaces]Face{U, R, F, D, L, B}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether f names one of the six slots.
func (f Face) Valid() bool {
	return f >= U && f <= L
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [NumFaces][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns every face to its solved color.
func (c *Cube) Reset() {
	for face := Face(0); face < NumFaces; face++ {
		color := face.SolvedColor()
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
}

// Face returns a mutable view of a face's stickers.
func (c *Cube) Face(f Face) *[9]Color {
	return &c.Facelets[f]
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold identical stickers.
func (c *Cube) Equal(other *Cube) bool {
	return other != nil && c.Facelets == other.Facelets
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	for face := Face(0); face < NumFaces; face++ {
		f := &c.Facelets[face]
		for i := 1; i < 9; i++ {
			if f[i] != f[0] {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[U][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[D][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v", c.IsSolved())
}
