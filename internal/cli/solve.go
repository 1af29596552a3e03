package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Undo the active scramble",
	Long: `Print the inverse of the active scramble: the scramble reversed with
every turn flipped. With --apply the inverse is applied, which returns the
cube to solved and marks the scramble solved in the history.

This only works while no other moves have been made since the scramble.
With --id the inverse of any recorded scramble is printed.`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

var (
	solveID    string
	solveApply bool
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveID, "id", "", "Scramble ID from 'cubesim history'")
	solveCmd.Flags().BoolVar(&solveApply, "apply", false, "Apply the solution to the saved cube")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveID != "" && solveApply {
		return fmt.Errorf("--apply only works on the active scramble")
	}

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	out := cmd.OutOrStdout()

	var solution []string
	switch {
	case solveID != "":
		solution, err = ws.rec.SolutionFor(solveID)
	case solveApply:
		solution, err = ws.rec.Solve()
	default:
		solution, err = ws.rec.Solution()
	}

	switch {
	case errors.Is(err, cubesim.ErrNoScramble):
		return fmt.Errorf("%w; run 'cubesim scramble' first", err)
	case errors.Is(err, cubesim.ErrHistoryDiverged):
		return fmt.Errorf("%w; run 'cubesim reset' or scramble again", err)
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Solution: %s\n", moveStyle.Render(strings.Join(solution, " ")))
	if solveApply {
		fmt.Fprintf(out, "State:    %s\n", ws.rec.Session().Serialize())
		if ws.rec.Session().IsSolved() {
			fmt.Fprintln(out, solvedStyle.Render("SOLVED!"))
		}
	}
	return nil
}
