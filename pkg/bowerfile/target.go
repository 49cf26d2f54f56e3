package bowerfile

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// TargetKind classifies a dependency's resource locator.
type TargetKind int

const (
	// TargetRange is a semver version or constraint range.
	TargetRange TargetKind = iota
	// TargetURL is a fetchable URL (git, http, ssh).
	TargetURL
	// TargetPath is a local filesystem path.
	TargetPath
	// TargetShorthand is a registry shorthand like owner/repo, optionally
	// suffixed with #range.
	TargetShorthand
	// TargetUnknown is a target that fits none of the recognized shapes.
	TargetUnknown
)

func (k TargetKind) String() string {
	switch k {
	case TargetRange:
		return "range"
	case TargetURL:
		return "url"
	case TargetPath:
		return "path"
	case TargetShorthand:
		return "shorthand"
	default:
		return "unknown"
	}
}

// Target is the analyzed form of a dependency value.
type Target struct {
	Raw  string
	Kind TargetKind
	// Range holds the parsed constraint for TargetRange targets. An empty
	// target means "any version" and parses as the wildcard range.
	Range *semver.Constraints
}

var urlPrefixes = []string{
	"git://", "git+ssh://", "git+https://", "http://", "https://",
	"ssh://", "file://", "git@",
}

// ParseTarget classifies a dependency target and, for version ranges,
// parses the semver constraint. Targets that look like a range but do not
// parse come back as TargetUnknown so callers can surface a warning.
func ParseTarget(raw string) Target {
	t := Target{Raw: raw, Kind: TargetUnknown}

	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(raw, prefix) {
			t.Kind = TargetURL
			return t
		}
	}

	if strings.HasPrefix(raw, "./") || strings.HasPrefix(raw, "../") ||
		strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "~/") ||
		strings.Contains(raw, "\\") {
		t.Kind = TargetPath
		return t
	}

	if strings.Contains(raw, "/") {
		t.Kind = TargetShorthand
		return t
	}

	spec := raw
	if spec == "" || spec == "latest" {
		spec = "*"
	}
	if c, err := semver.NewConstraint(spec); err == nil {
		t.Kind = TargetRange
		t.Range = c
	}
	return t
}
