package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/featherweight-dev/bowerfile/internal/config"
	"github.com/featherweight-dev/bowerfile/pkg/bowerfile"
)

// resolveManifestPath maps a file-or-directory argument to the manifest
// file it names: directories go through the locator, files are used as-is.
func resolveManifestPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return bowerfile.Find(path, nil)
	}
	return filepath.Abs(path)
}

// registerValidationFlags adds the shared validation flags to a command.
// Flag defaults come from the user config; an explicitly set flag wins.
func registerValidationFlags(cmd *cobra.Command, strict, enforce *bool) {
	cmd.Flags().BoolVar(strict, "strict-names", true, "Enforce lowercase package names")
	cmd.Flags().BoolVar(enforce, "enforce-name", true, "Require a non-empty name property")
}

// validationOptions resolves the effective options for a command from the
// user config and any explicitly set flags.
func validationOptions(cmd *cobra.Command, strict, enforce bool) *bowerfile.ValidationOptions {
	opts := bowerfile.DefaultValidationOptions()
	opts.StrictNames = config.GetBool(config.KeyStrictNames)
	opts.EnforceNameExists = config.GetBool(config.KeyEnforceNameExists)

	if cmd.Flags().Changed("strict-names") {
		opts.StrictNames = strict
	}
	if cmd.Flags().Changed("enforce-name") {
		opts.EnforceNameExists = enforce
	}
	return opts
}
