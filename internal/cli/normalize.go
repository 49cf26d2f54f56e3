package cli

import (
	"github.com/spf13/cobra"

	"github.com/featherweight-dev/bowerfile/pkg/bowerfile"
)

var normalizeFormat string

func init() {
	normalizeCmd.Flags().StringVar(&normalizeFormat, "format", "json", "Output format (json or yaml)")
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [path]",
	Short: "Print a manifest with known fields in canonical shape",
	Long: `Read the manifest at the given file or directory path (default ".")
without validating it, coerce known fields into their canonical shapes
(a scalar main becomes a single-element list), and print the result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		opts := &bowerfile.ParseOptions{Validate: false, Normalize: true}
		m, _, err := bowerfile.Read(path, opts)
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), m, normalizeFormat)
	},
}
