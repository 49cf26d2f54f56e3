package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featherweight-dev/bowerfile/pkg/bowerfile"
)

var lintFormat string

func init() {
	lintCmd.Flags().StringVar(&lintFormat, "format", "", "Structured output format (json or yaml)")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint [path]",
	Short: "Check a manifest against the full bower.json schema",
	Long: `Lint the manifest at the given file or directory path (default ".")
against the full bower.json field schema. Lint covers fields the core
rule set does not (version, license, keywords, authors, repository, and
so on) and reports each violation with its instance path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		file, err := resolveManifestPath(path)
		if err != nil {
			return err
		}

		result, err := bowerfile.LintFile(file)
		if err != nil {
			return err
		}

		if lintFormat != "" {
			if err := render(cmd.OutOrStdout(), result, lintFormat); err != nil {
				return err
			}
		} else {
			for _, issue := range result.Issues {
				loc := issue.Path
				if loc == "" {
					loc = "/"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", loc, issue.Message, issue.Keyword)
			}
			if result.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s passes the schema\n", file)
			}
		}

		if !result.Valid {
			return fmt.Errorf("%s: %d schema issue(s)", file, len(result.Issues))
		}
		return nil
	},
}
