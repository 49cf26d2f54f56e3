package bowerfile

// Manifest is the decoded contents of a manifest file. It is an untyped
// mapping so unknown fields pass through untouched; validation only
// inspects the fields it knows about (name, description, main,
// dependencies, devDependencies).
type Manifest map[string]any

// Name returns the name field, or the empty string when absent or not a
// string.
func (m Manifest) Name() string {
	s, _ := m["name"].(string)
	return s
}

// Clone returns a deep copy of the manifest.
func (m Manifest) Clone() Manifest {
	if m == nil {
		return nil
	}
	return Manifest(cloneValue(map[string]any(m)).(map[string]any))
}

// cloneValue deep-copies the JSON-shaped values a decoded manifest holds.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return val
	}
}

// ValidationOptions control the manifest rule set.
type ValidationOptions struct {
	// EnforceNameExists requires a non-empty name property.
	EnforceNameExists bool
	// StrictNames enforces the lowercase naming rules on top of the
	// structural grammar.
	StrictNames bool
	// Assets overrides the classifier used to reject media assets listed
	// in the main field. Nil means DefaultAssetClassifier.
	Assets AssetClassifier
}

// DefaultValidationOptions returns the options Validate uses when the
// caller passes nil: name required, strict lowercase names.
func DefaultValidationOptions() *ValidationOptions {
	return &ValidationOptions{EnforceNameExists: true, StrictNames: true}
}

// ParseOptions control the Decode/Parse pipeline.
type ParseOptions struct {
	ValidationOptions
	// Normalize coerces known fields into canonical shapes.
	Normalize bool
	// Validate runs the manifest rule set.
	Validate bool
	// Clone operates on a deep copy, leaving the input untouched.
	Clone bool
}

// DefaultParseOptions returns the options Parse uses when the caller
// passes nil: validate with default validation options, no normalization,
// no cloning.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{
		ValidationOptions: *DefaultValidationOptions(),
		Validate:          true,
	}
}
