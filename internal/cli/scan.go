package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocubie"
)

var scanTimeout time.Duration

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby GoCube devices",
	Long:  `Scan over Bluetooth for GoCube smart cubes and list their names, addresses and signal strength.`,
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Second, "How long to scan")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	devices, err := scanForGoCube(commandContext(cmd), cmd.OutOrStdout(), scanTimeout)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d device(s):\n\n", len(devices))
	fmt.Fprintf(out, "%-40s %-25s %s\n", "ADDRESS/UUID", "NAME", "RSSI")
	fmt.Fprintln(out, strings.Repeat("-", 72))
	for _, d := range devices {
		fmt.Fprintf(out, "%-40s %-25s %d\n", d.UUID, d.Name, d.RSSI)
	}
	return nil
}

// scanForGoCube scans once for GoCube devices. It prints troubleshooting tips
// and returns ErrDeviceNotFound when nothing answers.
func scanForGoCube(ctx context.Context, out io.Writer, timeout time.Duration) ([]gocubie.DeviceInfo, error) {
	fmt.Fprintln(out, "Scanning for GoCube devices...")
	logger.Debug().Dur("timeout", timeout).Msg("scan started")

	devices, err := gocubie.Scan(ctx, timeout, gocubie.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if len(devices) == 0 {
		fmt.Fprintln(out, "No GoCube devices found")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To fix this:")
		fmt.Fprintln(out, "  1. Rotate your cube to wake it up")
		fmt.Fprintln(out, "  2. Make sure it's not connected to your phone")
		fmt.Fprintln(out, "  3. Check that Bluetooth is enabled")
		return nil, gocubie.ErrDeviceNotFound
	}

	logger.Debug().Int("devices", len(devices)).Msg("scan finished")
	return devices, nil
}

// commandContext returns the command's context, or Background if it has none.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
