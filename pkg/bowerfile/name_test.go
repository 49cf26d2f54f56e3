package bowerfile

import (
	"strings"
	"testing"
)

func TestValidateName_ValidStrict(t *testing.T) {
	names := []string{
		"jquery",
		"bootstrap-sass",
		"normalize.css",
		"a",
		"x2",
		"angular-route",
		"font-awesome",
		strings.Repeat("a", 49),
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if err := ValidateName(name, true); err != nil {
				t.Errorf("ValidateName(%q, true) = %v, want nil", name, err)
			}
		})
	}
}

func TestValidateName_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		wantMsg string
	}{
		{"", true, "No name property set"},
		{strings.Repeat("a", 50), true, "too long"},
		{"foo_bar", false, "invalid character"},
		{"foo bar", false, "invalid character"},
		{"-foo", false, "malformed"},
		{"foo-", false, "malformed"},
		{"a--b", false, "malformed"},
		{"3abc", false, "malformed"},
		{"MyPkg", true, "uppercase"},
		{"1two", true, "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name, tt.strict)
			if err == nil {
				t.Fatalf("ValidateName(%q, %v) = nil, want error", tt.name, tt.strict)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
			if !IsInvalid(err) {
				t.Errorf("expected EINVALID, got %q", ErrorCode(err))
			}
		})
	}
}

func TestValidateName_UppercaseOnlyFailsStrict(t *testing.T) {
	// Uppercase letters violate strict mode only; the structural grammar
	// itself is case-insensitive.
	name := "My-Pkg"

	if err := ValidateName(name, true); err == nil {
		t.Errorf("ValidateName(%q, true) = nil, want error", name)
	}
	if err := ValidateName(name, false); err != nil {
		t.Errorf("ValidateName(%q, false) = %v, want nil", name, err)
	}
}

func TestNameViolations_CollectsAll(t *testing.T) {
	// An all-uppercase single letter violates three distinct strict rules.
	errs := nameViolations("A", true)
	if len(errs) != 4 {
		for _, e := range errs {
			t.Logf("violation: %s", e.Message)
		}
		t.Fatalf("got %d violations, want 4", len(errs))
	}
}
