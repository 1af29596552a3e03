package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube",
	Long: `Turn the saved cube from the keyboard.

Keyboard shortcuts:
  u d f b r l   - Turn a face clockwise
  U D F B R L   - Turn a face counter-clockwise
  s             - Scramble
  enter         - Animate the solution of the active scramble
  x             - Reset to solved
  q/Esc         - Quit

Moves are saved as you go, so 'cubesim state' shows where you left off.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	playScramble int
	playDelay    time.Duration
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playScramble, "scramble", 0, "Scramble with this many moves before starting")
	playCmd.Flags().DurationVar(&playDelay, "delay", 0, "Delay between animated moves (default: play.delay from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	delay := ws.cfg.Play.Delay
	if cmd.Flags().Changed("delay") {
		delay = playDelay
	}

	if playScramble > 0 {
		if _, err := ws.rec.Scramble(playScramble, nil); err != nil {
			return err
		}
	}

	p := tea.NewProgram(newPlayModel(ws.rec, delay), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

// Messages
type animateMsg struct{}

type playModel struct {
	rec   *recorder.Recorder
	delay time.Duration

	// While animating, display runs ahead of the session through queue;
	// the session itself is solved in one step when the queue drains.
	display   *cube.Cube
	queue     []string
	animating bool

	last     []string
	status   string
	err      error
	quitting bool
}

func newPlayModel(rec *recorder.Recorder, delay time.Duration) *playModel {
	return &playModel{
		rec:     rec,
		delay:   delay,
		display: rec.Session().Cube(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return animateMsg{}
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case animateMsg:
		return m, m.step()
	}
	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.animating {
		return m, nil
	}
	m.err = nil

	switch key {
	case "s":
		res, err := m.rec.Scramble(0, nil)
		if err != nil {
			m.err = err
			break
		}
		m.last = nil
		m.status = "Scrambled: " + strings.Join(res.Tokens, " ")

	case "x":
		if err := m.rec.Reset(); err != nil {
			m.err = err
			break
		}
		m.last = nil
		m.status = "Reset."

	case "enter":
		solution, err := m.rec.Solution()
		if err != nil {
			m.err = err
			break
		}
		m.queue = solution
		m.animating = true
		m.status = "Solving: " + strings.Join(solution, " ")
		m.display = m.rec.Session().Cube()
		return m, m.tick()

	default:
		tok, ok := keyMove(key)
		if !ok {
			return m, nil
		}
		if _, err := m.rec.Move([]string{tok}, true); err != nil {
			m.err = err
			break
		}
		m.last = append(m.last, tok)
		m.status = ""
	}

	m.display = m.rec.Session().Cube()
	return m, nil
}

// keyMove maps a face key to a move: lower case turns clockwise, upper
// case counter-clockwise.
func keyMove(key string) (string, bool) {
	if len(key) != 1 {
		return "", false
	}
	switch key {
	case "u", "d", "f", "b", "r", "l":
		return strings.ToUpper(key), true
	case "U", "D", "F", "B", "R", "L":
		return key + "'", true
	}
	return "", false
}

func (m *playModel) step() tea.Cmd {
	if !m.animating {
		return nil
	}

	if len(m.queue) > 0 {
		mv, err := notation.ParseToken(m.queue[0])
		if err != nil {
			m.err = err
			m.animating = false
			m.queue = nil
			return nil
		}
		m.display.ApplyMove(mv)
		m.last = append(m.last, m.queue[0])
		m.queue = m.queue[1:]
		if len(m.queue) > 0 {
			return m.tick()
		}
	}

	m.animating = false
	if _, err := m.rec.Solve(); err != nil {
		m.err = err
	} else {
		m.status = "Solved from the scramble record."
	}
	m.display = m.rec.Session().Cube()
	return nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.display))
	b.WriteString("\n")

	if m.display.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", solvedStyle.Render("SOLVED!")))
	} else {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", statusStyle.Render("scrambled")))
	}

	if len(m.last) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(m.last) > 20 {
			start = len(m.last) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(strings.Join(m.last[start:], " ")))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", friendlyError(m.err))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "udfbrl=turn  UDFBRL=turn back  s=scramble  enter=solve  x=reset  q=quit"
	if m.animating {
		help = "solving...  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, cubesim.ErrNoScramble):
		return "nothing to solve, press s to scramble"
	case errors.Is(err, cubesim.ErrHistoryDiverged):
		return "moves were made after the scramble, press x to reset"
	default:
		return err.Error()
	}
}
