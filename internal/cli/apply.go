package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocubie"
)

var (
	showInverse  bool
	showSimplify bool
	showDescribe bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a sequence in standard notation (R U R' U2 ...) to a solved cube and
print the resulting net, whether it is solved, and its layer-by-layer phase.

Arguments are joined, so both of these work:
  gocubie apply "R U R' U'"
  gocubie apply R U "R'" "U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&showInverse, "inverse", false, "Also print the sequence that undoes the moves")
	applyCmd.Flags().BoolVar(&showSimplify, "simplify", false, "Also print the sequence with cancelling turns merged")
	applyCmd.Flags().BoolVar(&showDescribe, "describe", false, "Also describe each move in plain words")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := gocubie.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	r, _, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cube := gocubie.NewCube()
	cube.Apply(moves...)
	logger.Debug().Int("moves", len(moves)).Msg("sequence applied")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moves: %s (%d)\n", gocubie.FormatMoves(moves), len(moves))
	if showInverse {
		fmt.Fprintf(out, "Inverse: %s\n", gocubie.FormatMoves(gocubie.InverseMoves(moves)))
	}
	if showSimplify {
		simple := gocubie.SimplifyMoves(moves)
		fmt.Fprintf(out, "Simplified: %s (%d)\n", gocubie.FormatMoves(simple), len(simple))
	}
	if showDescribe {
		fmt.Fprintf(out, "Described: %s\n", gocubie.DescribeMoves(moves))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, r.Net(cube.Facelets()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Solved: %v\n", cube.IsSolved())
	fmt.Fprintf(out, "Phase: %s\n", cube.Phase().DisplayName())
	return nil
}
