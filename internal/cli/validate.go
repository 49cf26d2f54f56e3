package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/featherweight-dev/bowerfile/pkg/bowerfile"
)

var (
	validateStrict  bool
	validateEnforce bool
	validateFormat  string
	validateQuiet   bool
)

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "", "Structured output format (json or yaml)")
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Suppress per-error output, set exit code only")
	registerValidationFlags(validateCmd, &validateStrict, &validateEnforce)
	rootCmd.AddCommand(validateCmd)
}

// validateReport is the structured form of a validation run.
type validateReport struct {
	File   string          `json:"file" yaml:"file"`
	Valid  bool            `json:"valid" yaml:"valid"`
	Errors []reportedError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type reportedError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a manifest against the bower rules",
	Long: `Validate the manifest at the given file or directory path (default ".").
Unlike read, validate collects every rule violation instead of stopping
at the first, and additionally warns about dependency targets that look
like version ranges but do not parse as semver.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		// Load without validating; the collect-mode pass below reports
		// every violation at once.
		loadOpts := &bowerfile.ParseOptions{Validate: false}
		m, file, err := bowerfile.Read(path, loadOpts)
		if err != nil {
			return err
		}

		opts := validationOptions(cmd, validateStrict, validateEnforce)
		errs := bowerfile.FindErrors(m, opts)
		warnTargets(m)

		report := validateReport{File: file, Valid: len(errs) == 0}
		for _, e := range errs {
			report.Errors = append(report.Errors, reportedError{Code: string(e.Code), Message: e.Message})
		}

		if validateFormat != "" {
			if err := render(cmd.OutOrStdout(), report, validateFormat); err != nil {
				return err
			}
		} else if !validateQuiet {
			for _, e := range errs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Code, e.Message)
			}
		}

		if len(errs) > 0 {
			return fmt.Errorf("%s: %d validation error(s)", file, len(errs))
		}
		if validateFormat == "" && !validateQuiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", file)
		}
		return nil
	},
}

// warnTargets logs a warning for each dependency target that fits none of
// the recognized shapes (range, URL, path, shorthand). These are not rule
// violations; the fixed rule set only rejects directory traversal.
func warnTargets(m bowerfile.Manifest) {
	for _, field := range []string{"dependencies", "devDependencies"} {
		deps, ok := m[field].(map[string]any)
		if !ok {
			continue
		}
		for name, raw := range deps {
			target, ok := raw.(string)
			if !ok {
				continue
			}
			if t := bowerfile.ParseTarget(target); t.Kind == bowerfile.TargetUnknown {
				log.Warn("unrecognized dependency target", "dependency", name, "target", target)
			}
		}
	}
}
