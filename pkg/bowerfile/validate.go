package bowerfile

import (
	"path/filepath"
	"sort"
	"strings"
)

// maxDescriptionLength is the upper bound on the description field.
const maxDescriptionLength = 140

// Validate checks a manifest against the bower rules, returning the
// manifest unchanged on success and the first violation otherwise. Nil
// options mean DefaultValidationOptions.
func Validate(m Manifest, opts *ValidationOptions) (Manifest, error) {
	if errs := violations(m, opts); len(errs) > 0 {
		return nil, errs[0]
	}
	return m, nil
}

// FindErrors evaluates the same rule set as Validate but returns every
// violation instead of stopping at the first.
func FindErrors(m Manifest, opts *ValidationOptions) []*Error {
	return violations(m, opts)
}

// ValidateDependencies checks every dependency: the key must be a valid
// package name and the target must not traverse directories. Returns the
// first violation.
func ValidateDependencies(deps map[string]string, strict bool) error {
	converted := make(map[string]any, len(deps))
	for name, target := range deps {
		converted[name] = target
	}
	if errs := dependencyViolations(converted, strict); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// violations is the single rule-evaluation core both Validate and
// FindErrors derive from. Rules run in a fixed order so throw-mode always
// raises the same first error.
func violations(m Manifest, opts *ValidationOptions) []*Error {
	if opts == nil {
		opts = DefaultValidationOptions()
	}

	var errs []*Error

	raw, present := m["name"]
	switch {
	case !present || raw == nil:
		if opts.EnforceNameExists {
			errs = append(errs, newInvalid("No name property set"))
		}
	default:
		name, ok := raw.(string)
		if !ok {
			errs = append(errs, newInvalid("Package name is not a string"))
			break
		}
		if name == "" {
			if opts.EnforceNameExists {
				errs = append(errs, newInvalid("No name property set"))
			}
			break
		}
		errs = append(errs, nameViolations(name, opts.StrictNames)...)
	}

	if desc, ok := m["description"].(string); ok && len(desc) > maxDescriptionLength {
		errs = append(errs, newInvalid("The description is too long, %d characters should be more than enough", maxDescriptionLength))
	}

	if raw, ok := m["main"]; ok && raw != nil {
		assets := opts.Assets
		if assets == nil {
			assets = DefaultAssetClassifier
		}
		errs = append(errs, mainViolations(raw, assets)...)
	}

	errs = append(errs, dependencyViolations(m["dependencies"], opts.StrictNames)...)
	errs = append(errs, dependencyViolations(m["devDependencies"], opts.StrictNames)...)

	return errs
}

// mainViolations checks the main field: it must be a string or a list of
// strings, entries may not contain globs, minified files, or media assets,
// and each file extension may appear at most once.
func mainViolations(raw any, assets AssetClassifier) []*Error {
	entries, entryErr := mainEntries(raw)
	if entryErr != nil {
		return []*Error{entryErr}
	}

	var errs []*Error
	byExt := make(map[string][]string)
	var extOrder []string

	for _, entry := range entries {
		if strings.Contains(entry, "*") {
			errs = append(errs, newInvalid("The main field cannot contain globs (e.g. %q)", entry))
			continue
		}
		if isMinified(entry) {
			errs = append(errs, newInvalid("The main field cannot contain minified files (e.g. %q)", entry))
			continue
		}
		if assets.IsAsset(entry) {
			errs = append(errs, newInvalid("The main field cannot contain font, image, audio, or video files (e.g. %q)", entry))
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry))
		if len(byExt[ext]) == 0 {
			extOrder = append(extOrder, ext)
		}
		byExt[ext] = append(byExt[ext], entry)
	}

	for _, ext := range extOrder {
		if files := byExt[ext]; len(files) > 1 {
			errs = append(errs, newInvalid("The main field has to contain only one file per filetype; found multiple %s files: %s", ext, strings.Join(files, ", ")))
		}
	}

	return errs
}

// mainEntries coerces the main field into a list of entries. A scalar
// string counts as a single-element list; anything else that is not a list
// of strings is rejected.
func mainEntries(raw any) ([]string, *Error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		entries := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, newInvalid("The main field has to contain only strings")
			}
			entries = append(entries, s)
		}
		return entries, nil
	default:
		return nil, newInvalid("The main field has to be either an array of strings or a string")
	}
}

// isMinified reports whether a filename ends in .min.<ext>.
func isMinified(name string) bool {
	ext := filepath.Ext(name)
	return ext != "" && ext != ".min" && strings.HasSuffix(strings.TrimSuffix(name, ext), ".min")
}

// dependencyViolations checks a dependency map: every key runs through the
// name rules and every target is rejected if it traverses directories.
// Non-map values are ignored. Keys are visited in sorted order so the
// first reported violation is deterministic.
func dependencyViolations(raw any, strict bool) []*Error {
	deps, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []*Error
	for _, name := range names {
		errs = append(errs, nameViolations(name, strict)...)
		if target, ok := deps[name].(string); ok && strings.Contains(target, "..") {
			errs = append(errs, newInvalid("Directory traversing in dependency paths is not allowed (%s: %s)", name, target))
		}
	}
	return errs
}
