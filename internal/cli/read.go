package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/featherweight-dev/bowerfile/pkg/bowerfile"
)

var (
	readNormalize  bool
	readNoValidate bool
	readStrict     bool
	readEnforce    bool
	readFormat     string
)

func init() {
	readCmd.Flags().BoolVar(&readNormalize, "normalize", false, "Coerce known fields into canonical shapes")
	readCmd.Flags().BoolVar(&readNoValidate, "no-validate", false, "Skip manifest validation")
	readCmd.Flags().StringVar(&readFormat, "format", "json", "Output format (json or yaml)")
	registerValidationFlags(readCmd, &readStrict, &readEnforce)
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:   "read [path]",
	Short: "Read and parse a manifest",
	Long: `Read the manifest at the given file or directory path (default ".").
Directories are searched for bower.json, component.json, and .bower.json
in that order. The parsed manifest is printed to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		opts := &bowerfile.ParseOptions{
			ValidationOptions: *validationOptions(cmd, readStrict, readEnforce),
			Normalize:         readNormalize,
			Validate:          !readNoValidate,
		}

		m, file, err := bowerfile.Read(path, opts)
		if err != nil {
			return err
		}
		log.Debug("manifest resolved", "file", file)

		return render(cmd.OutOrStdout(), m, readFormat)
	},
}
