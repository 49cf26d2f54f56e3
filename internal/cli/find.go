package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featherweight-dev/bowerfile/pkg/bowerfile"
)

var findCandidates []string

func init() {
	findCmd.Flags().StringSliceVar(&findCandidates, "candidates", nil, "Override the candidate filenames tried, in priority order")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find [dir]",
	Short: "Locate the manifest file in a directory",
	Long: `Try the candidate manifest filenames (bower.json, component.json,
.bower.json by default) in priority order and print the resolved path of
the first acceptable match. A component.json holding a legacy component(1)
manifest is skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path, err := bowerfile.Find(dir, findCandidates)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
