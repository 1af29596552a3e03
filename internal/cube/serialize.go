package cube

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a state string or sticker layout cannot
// describe a cube.
var ErrInvalidState = errors.New("cube: invalid state")

// StateLen is the length of a serialized cube state.
const StateLen = NumFaces * 9

// Serialize flattens all 54 stickers into a string in the canonical face
// order U, R, F, D, L, B, each face row-major, one symbol per sticker.
func (c *Cube) Serialize() string {
	buf := make([]byte, 0, StateLen)
	for _, face := range CanonicalOrder {
		for _, color := range c.Facelets[face] {
			buf = append(buf, color.Symbol())
		}
	}
	return string(buf)
}

// Parse rebuilds a cube from a Serialize string. The result must pass
// Validate.
func Parse(state string) (*Cube, error) {
	if len(state) != StateLen {
		return nil, fmt.Errorf("%w: want %d stickers, got %d", ErrInvalidState, StateLen, len(state))
	}

	c := &Cube{}
	for n, face := range CanonicalOrder {
		for i := 0; i < 9; i++ {
			pos := n*9 + i
			color, ok := ColorFromSymbol(state[pos])
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at %d", ErrInvalidState, state[pos], pos)
			}
			c.Facelets[face][i] = color
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ColorCounts tallies how many stickers of each color are on the cube.
func (c *Cube) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for face := Face(0); face < NumFaces; face++ {
		for _, color := range c.Facelets[face] {
			if int(color) < NumColors {
				counts[color]++
			}
		}
	}
	return counts
}

// Validate checks that every color appears exactly nine times. Turns only
// permute stickers, so any cube reached from solved passes; the check does
// not prove the state is reachable.
func (c *Cube) Validate() error {
	counts := c.ColorCounts()
	for color, n := range counts {
		if n != 9 {
			return fmt.Errorf("%w: %d %s stickers", ErrInvalidState, n, Color(color))
		}
	}
	return nil
}
