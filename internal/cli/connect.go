package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocubie"
)

var (
	connectTimeout time.Duration
	connectName    string
	connectPlain   bool
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Mirror a GoCube smart cube",
	Long: `Scan for a GoCube, connect to it, and mirror every physical turn onto the
cubie model. The cube is assumed to start solved; press ctrl+r in the TUI to
re-sync once the physical cube is solved.

With --plain (or when stdout is not a terminal) moves and phase changes are
printed one per line instead.

Make sure your GoCube is:
  - Disconnected from your phone (Bluetooth settings > Forget Device)
  - Awake (rotate it to wake)
  - Within Bluetooth range`,
	Args: cobra.NoArgs,
	RunE: runConnect,
}

func init() {
	connectCmd.Flags().DurationVar(&connectTimeout, "timeout", 10*time.Second, "How long to scan")
	connectCmd.Flags().StringVar(&connectName, "name", "", "Connect to the device whose name starts with this")
	connectCmd.Flags().BoolVar(&connectPlain, "plain", false, "Print moves line by line instead of the TUI")
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	devices, err := scanForGoCube(ctx, out, connectTimeout)
	if err != nil {
		return err
	}
	target, err := pickDevice(devices, connectName)
	if err != nil {
		return err
	}

	plain := connectPlain || !isTerminal(out)
	log := logger
	if !plain {
		log = tuiLogger()
	}

	fmt.Fprintf(out, "Connecting to %s...\n", target.Name)
	dev, err := gocubie.Connect(ctx, target, gocubie.WithLogger(log))
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer dev.Close()

	if plain {
		return mirrorPlain(ctx, out, dev)
	}
	return mirrorTUI(cmd, dev)
}

// pickDevice returns the first device whose name starts with prefix
// (case-insensitive), or the first device if prefix is empty.
func pickDevice(devices []gocubie.DeviceInfo, prefix string) (gocubie.DeviceInfo, error) {
	for _, d := range devices {
		if strings.HasPrefix(strings.ToLower(d.Name), strings.ToLower(prefix)) {
			return d, nil
		}
	}
	return gocubie.DeviceInfo{}, fmt.Errorf("%w: no device named %q*", gocubie.ErrDeviceNotFound, prefix)
}

func mirrorTUI(cmd *cobra.Command, dev *gocubie.Device) error {
	r, keys, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	model := newPlayModel(dev.Tracker(), keys, r, dev)
	p := tea.NewProgram(model, tea.WithAltScreen())

	dev.OnBattery(func(level int) {
		p.Send(batteryMsg(level))
	})
	dev.OnOrientation(func(up, front gocubie.Face) {
		p.Send(orientationMsg{up: up, front: front})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func mirrorPlain(ctx context.Context, out io.Writer, dev *gocubie.Device) error {
	tracker := dev.Tracker()

	tracker.OnMove(func(m gocubie.Move) {
		fmt.Fprintf(out, "[%s] %-3s %-26s %s\n", m.Time.Format("15:04:05.000"), m.Notation(), m.Describe(), tracker.Phase())
	})
	tracker.OnPhaseChange(func(p gocubie.Phase) {
		fmt.Fprintf(out, "\n>>> PHASE: %s <<<\n\n", p.DisplayName())
	})
	tracker.OnSolved(func() {
		fmt.Fprintln(out, "\nCube solved!")
		fmt.Fprintln(out)
	})
	dev.OnBattery(func(level int) {
		fmt.Fprintf(out, "Battery: %d%%\n", level)
	})

	fmt.Fprintf(out, "Connected to: %s\n", dev.Info().Name)
	fmt.Fprintln(out, "Cube starts SOLVED. Make moves to see phase detection in action.")
	fmt.Fprintln(out, "Press Ctrl+C to exit.")
	fmt.Fprintln(out, strings.Repeat("-", 70))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nDisconnecting...")
			moves := tracker.Moves()
			fmt.Fprintf(out, "Total moves made: %d (%d after merging)\n", len(moves), len(gocubie.SimplifyMoves(moves)))
			fmt.Fprintf(out, "Final state: %s\n", tracker.Phase().DisplayName())
			if len(moves) >= 2 {
				fmt.Fprintf(out, "Session duration: %s\n", moves[len(moves)-1].Time.Sub(moves[0].Time).Round(time.Millisecond))
			}
			return nil
		case <-ticker.C:
			if !dev.IsConnected() {
				return gocubie.ErrNotConnected
			}
		}
	}
}
