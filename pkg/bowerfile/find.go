package bowerfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// PrimaryFilename is the canonical manifest filename.
	PrimaryFilename = "bower.json"
	// LegacyFilename is shared with the component(1) format and is only
	// accepted after content sniffing.
	LegacyFilename = "component.json"
	// HiddenFilename is the low-priority hidden fallback.
	HiddenFilename = ".bower.json"
)

// DefaultCandidates returns a fresh copy of the prioritized manifest
// filenames Find tries when the caller passes none.
func DefaultCandidates() []string {
	return []string{PrimaryFilename, LegacyFilename, HiddenFilename}
}

// Find locates the manifest file inside dir, trying candidates in priority
// order (DefaultCandidates when candidates is empty). A component.json
// that sniffs as a legacy component(1) manifest is skipped and the search
// continues. Returns the absolute path of the first acceptable match, or
// an ENOENT Error naming every filename tried.
func Find(dir string, candidates []string) (string, error) {
	return FindWith(dir, candidates, DefaultComponentClassifier)
}

// FindWith is Find with an explicit legacy-format classifier.
func FindWith(dir string, candidates []string, legacy ComponentClassifier) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}
	if legacy == nil {
		legacy = DefaultComponentClassifier
	}

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		if name == LegacyFilename {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("reading %s: %w", path, err)
			}
			if legacy.IsLegacyComponent(data) {
				continue
			}
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", path, err)
		}
		return abs, nil
	}

	return "", &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("None of %s were found in %s", strings.Join(candidates, ", "), dir),
	}
}
