// Package cli implements the command-line interface for gocubie.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocubie/internal/keymap"
	"github.com/SeamusWaldron/gocubie/internal/render"
)

const version = "0.1.0"

var (
	// Global flags
	logLevel   string
	verbose    bool
	keymapPath string
	noColor    bool

	logger = zerolog.Nop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocubie",
	Short: "Cubie-level Rubik's Cube simulator",
	Long: `gocubie models a 3x3x3 Rubik's Cube as 27 cubies, each with a position and
an orientation, and turns whole layers with a single rotation rule.

Apply move sequences, generate scrambles, check the turn algebra, play with
the keyboard, or mirror a GoCube smart cube over Bluetooth.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd.ErrOrStderr())
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&keymapPath, "keymap", "", "YAML file overriding the default keymap and palette")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// setupLogging configures the package logger to write to w.
func setupLogging(w io.Writer) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor || !isTerminal(w),
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Logger()
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newRenderer builds a net renderer for w from the configured keymap.
func newRenderer(w io.Writer) (*render.Renderer, *keymap.Keymap, error) {
	keys, err := keymap.Load(keymapPath)
	if err != nil {
		return nil, nil, err
	}
	return render.New(keys, !noColor && isTerminal(w)), keys, nil
}
