package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/notation"
)

var moveCmd = &cobra.Command{
	Use:   "move <moves...>",
	Short: "Turn faces of the saved cube",
	Long: `Apply moves to the saved cube. Each argument may hold several moves
separated by spaces, so both of these work:

  cubesim move R U2 F
  cubesim move "R U R' U'"

A move is a face letter (U D F B R L, any case) optionally followed by
' or ` + "`" + ` for counter-clockwise, or 2 for a half turn.

Invalid moves are reported and skipped; use --strict to stop at the first
one instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMove,
}

var (
	moveStrict  bool
	moveExplain bool
)

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().BoolVar(&moveStrict, "strict", false, "Stop at the first invalid move")
	moveCmd.Flags().BoolVar(&moveExplain, "explain", false, "Describe each move in words")
}

func splitMoves(args []string) []string {
	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, strings.Fields(arg)...)
	}
	return tokens
}

func runMove(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	out := cmd.OutOrStdout()
	results, applyErr := ws.rec.Move(splitMoves(args), moveStrict)

	applied := 0
	for _, res := range results {
		if !res.OK() {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("skipped %q: %v", res.Token, res.Err)))
			continue
		}
		applied++
		if moveExplain {
			fmt.Fprintf(out, "%-3s %s\n", res.Move.Notation(), notation.Describe(res.Move))
		}
	}

	session := ws.rec.Session()
	fmt.Fprintf(out, "Applied %d move(s).\n", applied)
	fmt.Fprintf(out, "State: %s\n", session.Serialize())
	if session.IsSolved() {
		fmt.Fprintln(out, solvedStyle.Render("SOLVED!"))
	}

	if applyErr != nil {
		return fmt.Errorf("some moves were not applied: %w", applyErr)
	}
	return nil
}
