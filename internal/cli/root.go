// Package cli wires the bowerfile commands. Each command is a thin layer
// over pkg/bowerfile; all manifest logic lives in the library.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/featherweight-dev/bowerfile/internal/branding"
	"github.com/featherweight-dev/bowerfile/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` locates, parses, validates, and normalizes bower.json package
manifests. It understands the legacy component.json filename and the
hidden .bower.json fallback, and reports stable error codes (ENOENT,
EMALFORMED, EINVALID) for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootVerbose {
			log.SetLevel(log.DebugLevel)
		}
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		return err
	}
	return nil
}
