package bowerfile

import "regexp"

// maxNameLength is the exclusive upper bound on package name length.
const maxNameLength = 50

var (
	// nameCharset is the allowed character set for package names.
	nameCharset = regexp.MustCompile(`^[A-Za-z0-9.\-]*$`)
	// nameGrammar is the structural grammar: an optional single leading
	// letter, then a body of letters and digits optionally interspersed
	// with single hyphens or dots, ending in a letter or digit.
	nameGrammar = regexp.MustCompile(`^[A-Za-z]?([A-Za-z](([A-Za-z0-9]-?)*([A-Za-z0-9]\.?)*)*[A-Za-z0-9])?$`)

	upperLetter = regexp.MustCompile(`[A-Z]`)
	lowerStart  = regexp.MustCompile(`^[a-z]`)
	lowerEnd    = regexp.MustCompile(`[a-z]$`)
	lowerAny    = regexp.MustCompile(`[a-z]`)
)

// nameViolations applies the package-name rules in order and returns every
// violated rule as an EINVALID error.
func nameViolations(name string, strict bool) []*Error {
	if name == "" {
		return []*Error{newInvalid("No name property set")}
	}

	var errs []*Error
	if len(name) >= maxNameLength {
		errs = append(errs, newInvalid("The name %q is too long, names must be under %d characters", name, maxNameLength))
	}
	if !nameCharset.MatchString(name) {
		errs = append(errs, newInvalid("The name %q contains an invalid character", name))
	}
	if !nameGrammar.MatchString(name) {
		errs = append(errs, newInvalid("The name %q is malformed", name))
	}

	if strict {
		if upperLetter.MatchString(name) {
			errs = append(errs, newInvalid("The name %q contains uppercase letters, names must be lowercase", name))
		}
		if !lowerStart.MatchString(name) {
			errs = append(errs, newInvalid("The name %q must start with a lowercase letter from a to z", name))
		}
		if !lowerEnd.MatchString(name) {
			errs = append(errs, newInvalid("The name %q must end with a lowercase letter from a to z", name))
		}
		if !lowerAny.MatchString(name) {
			errs = append(errs, newInvalid("The name %q must contain at least one lowercase letter from a to z", name))
		}
	}

	return errs
}

// ValidateName checks a package name against the syntax and casing rules,
// returning the first violation. With strict set, the name must additionally
// be all lowercase, starting and ending with a letter from a to z.
func ValidateName(name string, strict bool) error {
	if errs := nameViolations(name, strict); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
