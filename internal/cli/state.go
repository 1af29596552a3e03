package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the saved cube",
	Long: `Print the saved cube as an unfolded net followed by its 54-character
state string (faces U, R, F, D, L, B; stickers row by row).`,
	Args: cobra.NoArgs,
	RunE: runState,
}

var stateRaw bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the cube to solved",
	Long:  `Return the saved cube to the solved state and forget the active scramble. The scramble stays in the history.`,
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&stateRaw, "raw", false, "Print only the state string")

	rootCmd.AddCommand(resetCmd)
}

func runState(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	out := cmd.OutOrStdout()
	session := ws.rec.Session()

	if stateRaw {
		fmt.Fprintln(out, session.Serialize())
		return nil
	}

	fmt.Fprint(out, renderNet(session.Cube()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "State:  %s\n", session.Serialize())
	if session.IsSolved() {
		fmt.Fprintf(out, "Status: %s\n", solvedStyle.Render("SOLVED"))
	} else {
		fmt.Fprintln(out, "Status: scrambled")
	}

	if id := ws.rec.ActiveScrambleID(); id != "" {
		fmt.Fprintf(out, "Active scramble: %s\n", id)
	}
	if history := session.History(); len(history) > 0 {
		fmt.Fprintf(out, "Moves: %s\n", moveStyle.Render(strings.Join(history, " ")))
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.rec.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Cube reset to solved.")
	return nil
}
