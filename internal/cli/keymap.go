package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keymapCmd = &cobra.Command{
	Use:   "keymap",
	Short: "Print the effective keymap and palette",
	Long: `Print the keymap and palette used by 'play', as YAML. Save the output,
edit it, and pass it back with --keymap to override any entry.`,
	Args: cobra.NoArgs,
	RunE: runKeymap,
}

func init() {
	rootCmd.AddCommand(keymapCmd)
}

func runKeymap(cmd *cobra.Command, args []string) error {
	r, keys, err := newRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	data, err := keys.Marshal()
	if err != nil {
		return fmt.Errorf("encoding keymap: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "# "+r.Legend())
	return nil
}
