package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scrambles",
	Long:  `Display recorded scrambles, newest first, with their seed and whether they were solved.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var (
	historyLimit int
	historyMoves string
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scrambles to display (0 for all)")
	historyCmd.Flags().StringVar(&historyMoves, "moves", "", "Show the move log of one scramble ID")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	out := cmd.OutOrStdout()

	if historyMoves != "" {
		moves, err := ws.rec.Moves(historyMoves)
		if err != nil {
			return err
		}
		if len(moves) == 0 {
			return fmt.Errorf("no moves recorded for %s", historyMoves)
		}
		rows := make([][]string, 0, len(moves))
		for _, m := range moves {
			rows = append(rows, []string{fmt.Sprint(m.MoveIndex), m.Notation, string(m.Source)})
		}
		writeTable(out, []string{"#", "Move", "Source"}, rows)
		return nil
	}

	scrambles, err := ws.rec.History(historyLimit)
	if err != nil {
		return err
	}
	if len(scrambles) == 0 {
		fmt.Fprintln(out, "No scrambles recorded yet. Create one with: cubesim scramble")
		return nil
	}

	active := ws.rec.ActiveScrambleID()
	rows := make([][]string, 0, len(scrambles))
	for _, s := range scrambles {
		rows = append(rows, historyRow(s, s.ScrambleID == active))
	}
	writeTable(out, []string{"ID", "Created", "Moves", "Seed", "Status", "Scramble"}, rows)
	return nil
}

const maxScrambleWidth = 48

func historyRow(s storage.Scramble, active bool) []string {
	seed := "-"
	if s.Seed != nil {
		seed = fmt.Sprint(*s.Seed)
	}

	status := "open"
	switch {
	case s.Solved():
		status = "solved"
	case active:
		status = "active"
	}

	return []string{
		s.ScrambleID,
		s.CreatedAt.Local().Format("2006-01-02 15:04"),
		fmt.Sprint(s.MoveCount()),
		seed,
		status,
		runewidth.Truncate(s.Text(), maxScrambleWidth, "…"),
	}
}

// writeTable prints rows with columns padded to their display width.
func writeTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	line := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				padded[i] = cell
				continue
			}
			padded[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
	}

	line(header)
	rule := make([]string, len(header))
	for i, wd := range widths {
		rule[i] = strings.Repeat("-", wd)
	}
	line(rule)
	for _, row := range rows {
		line(row)
	}
}
