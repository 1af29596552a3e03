package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerStyles = map[cube.Color]lipgloss.Style{
	cube.White:  sticker("231", "16"),
	cube.Yellow: sticker("226", "16"),
	cube.Green:  sticker("34", "231"),
	cube.Blue:   sticker("27", "231"),
	cube.Red:    sticker("196", "231"),
	cube.Orange: sticker("208", "16"),
}

func sticker(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
}

func renderSticker(c cube.Color) string {
	return stickerStyles[c].Render(" " + c.String() + " ")
}

// renderNet draws the cube as an unfolded net:
//
//	  U
//	L F R B
//	  D
func renderNet(c *cube.Cube) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 9)

	writeRow := func(face cube.Face, row int) {
		f := c.Face(face)
		for col := 0; col < 3; col++ {
			b.WriteString(renderSticker(f[row*3+col]))
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(cube.U, row)
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			writeRow(face, row)
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(cube.D, row)
		b.WriteString("\n")
	}
	return b.String()
}
