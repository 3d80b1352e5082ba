package cli

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocubie"
	"github.com/SeamusWaldron/gocubie/internal/keymap"
	"github.com/SeamusWaldron/gocubie/internal/render"
)

const (
	playScrambleLength = 25
	playHistoryShown   = 20
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a virtual cube from the keyboard",
	Long: `Start an interactive TUI showing the cube net.

Keyboard shortcuts:
  u d f b r l  - Turn a face clockwise (see 'gocubie keymap')
  U D F B R L  - Turn a face counter-clockwise (shift)
  :            - Type a move sequence, Enter to apply
  ctrl+z       - Undo the last move
  ctrl+s       - Scramble
  ctrl+r       - Reset to solved
  q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type moveAppliedMsg struct{ move gocubie.Move }
type batteryMsg int
type orientationMsg struct{ up, front gocubie.Face }

// Model
type playModel struct {
	tracker  *gocubie.Tracker
	keys     *keymap.Keymap
	renderer *render.Renderer
	moveChan chan gocubie.Move

	// Smart cube, nil when playing from the keyboard
	device     *gocubie.Device
	battery    int
	holdingUp  gocubie.Face
	holdingFwd gocubie.Face
	holding    bool

	// UI
	input     textinput.Model
	prompting bool
	solves    atomic.Int32
	err       error
	quitting  bool
}

func newPlayModel(tracker *gocubie.Tracker, keys *keymap.Keymap, r *render.Renderer, device *gocubie.Device) *playModel {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "R U R' U'"
	ti.CharLimit = 256
	ti.Width = 40

	m := &playModel{
		tracker:  tracker,
		keys:     keys,
		renderer: r,
		moveChan: make(chan gocubie.Move, 100),
		device:   device,
		battery:  -1,
		input:    ti,
	}

	tracker.OnMove(func(mv gocubie.Move) {
		select {
		case m.moveChan <- mv:
		default:
			// Channel full, drop the notification
		}
	})
	tracker.OnSolved(func() {
		m.solves.Add(1)
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.listenForMoves()
}

func (m *playModel) listenForMoves() tea.Cmd {
	return func() tea.Msg {
		return moveAppliedMsg{move: <-m.moveChan}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)

	case moveAppliedMsg:
		if m.device != nil && m.tracker.IsSolved() {
			if err := m.device.FlashBacklight(); err != nil {
				logger.Debug().Err(err).Msg("flash backlight")
			}
		}
		return m, m.listenForMoves()

	case batteryMsg:
		m.battery = int(msg)

	case orientationMsg:
		m.holdingUp, m.holdingFwd, m.holding = msg.up, msg.front, true
	}

	return m, nil
}

func (m *playModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+r":
		if m.device != nil {
			// The physical cube must be solved before telling it so.
			m.err = m.device.MarkSolved()
			return m, nil
		}
		m.tracker.Reset()
		return m, nil
	}

	if m.device != nil {
		// Moves come from the physical cube.
		return m, nil
	}

	switch msg.String() {
	case ":":
		m.prompting = true
		m.input.SetValue("")
		return m, m.input.Focus()

	case "ctrl+z":
		if _, ok := m.tracker.Undo(); !ok {
			m.err = fmt.Errorf("nothing to undo")
		}
		return m, nil

	case "ctrl+s":
		m.tracker.Apply(gocubie.Scramble(nil, playScrambleLength)...)
		return m, nil
	}

	if mv, ok := m.keys.Lookup(msg.String()); ok {
		m.tracker.Apply(mv)
	}
	return m, nil
}

func (m *playModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.prompting = false
		m.input.Blur()
		if err := m.tracker.ApplyNotation(m.input.Value()); err != nil {
			m.err = err
		}
		return m, nil

	case tea.KeyEsc, tea.KeyCtrlC:
		m.prompting = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Goodbye! %d move(s), %d solve(s)\n", len(m.tracker.Moves()), m.solves.Load())
	}

	var b strings.Builder

	// Title
	title := "gocubie"
	if m.device != nil {
		title = fmt.Sprintf("gocubie - %s", m.device.Info().Name)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if m.device != nil {
		status := "Connected"
		if m.battery >= 0 {
			status += fmt.Sprintf(" (Battery: %d%%)", m.battery)
		}
		if m.holding {
			status += fmt.Sprintf("  Holding: %s up, %s front", m.holdingUp, m.holdingFwd)
		}
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cube := m.tracker.Cube()
	b.WriteString(m.renderer.Net(cube.Facelets()))
	b.WriteString("\n")

	// Phase
	moves := m.tracker.Moves()
	if cube.IsSolved() {
		if len(moves) > 0 {
			b.WriteString(phaseStyle.Render("SOLVED!"))
		} else {
			b.WriteString(phaseStyle.Render("Solved"))
		}
		b.WriteString("\n")
	} else {
		progress := cube.Facelets().Progress()
		b.WriteString(fmt.Sprintf("Phase: %s  Working on: %s\n",
			phaseStyle.Render(cube.Phase().DisplayName()), progress.Next()))
		if highest := m.tracker.HighestPhase(); highest > gocubie.PhaseScrambled {
			b.WriteString(fmt.Sprintf("Best: %s\n", statusStyle.Render(highest.DisplayName())))
		}
	}

	// Recent moves
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(moves)))
	if len(moves) > 0 {
		start := 0
		prefix := ""
		if len(moves) > playHistoryShown {
			start = len(moves) - playHistoryShown
			prefix = "... "
		}
		b.WriteString(prefix + moveStyle.Render(gocubie.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	// Error
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Help
	help := "Keys: faces=turn  shift=reverse  :=notation  ctrl+z=undo  ctrl+s=scramble  ctrl+r=reset  q=quit"
	if m.device != nil {
		help = "Turn the cube to play | ctrl+r=mark solved  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

// tuiLogger keeps routine log lines from drawing over the TUI.
func tuiLogger() zerolog.Logger {
	if verbose {
		return logger
	}
	return logger.Level(zerolog.WarnLevel)
}

func runPlay(cmd *cobra.Command, args []string) error {
	r, keys, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	tracker := gocubie.NewTracker(gocubie.WithLogger(tuiLogger()))
	model := newPlayModel(tracker, keys, r, nil)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
