package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocubie"
)

var (
	scrambleLength int
	scrambleSeed   uint64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a scramble of quarter turns drawn uniformly from the twelve
(face, direction) pairs, and show the scrambled net.

Pass --seed to get the same scramble every time.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 25, "Number of quarter turns")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 picks one at random)")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 0 {
		return fmt.Errorf("length must not be negative, got %d", scrambleLength)
	}

	r, _, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if scrambleSeed != 0 {
		rng = rand.New(rand.NewPCG(scrambleSeed, scrambleSeed))
	}
	moves := gocubie.Scramble(rng, scrambleLength)

	cube := gocubie.NewCube()
	cube.Apply(moves...)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, gocubie.FormatMoves(moves))
	fmt.Fprintln(out)
	fmt.Fprint(out, r.Net(cube.Facelets()))
	return nil
}
