package bowerfile

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/bower.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// LintResult contains the outcome of a schema lint. Lint covers the full
// bower.json field surface, beyond the fixed rule set Validate enforces.
type LintResult struct {
	Valid  bool
	Issues []LintIssue
}

// LintIssue is a single schema violation.
type LintIssue struct {
	Path    string // instance location (e.g., "/keywords/0")
	Message string // human-readable error message
	Keyword string // schema keyword that failed
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("bower.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("bower.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Lint validates raw manifest bytes against the full bower.json schema.
// The error return covers schema compilation failures and malformed input;
// schema violations are reported in the LintResult.
func Lint(data []byte) (*LintResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Code: CodeMalformed, Message: "Malformed JSON", cause: err}
	}

	err = schema.Validate(inst)
	if err == nil {
		return &LintResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &LintResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// LintFile reads a file and lints it against the bower.json schema.
func LintFile(path string) (*LintResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	result, err := Lint(data)
	if err != nil {
		return nil, tagFile(err, path)
	}
	return result, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level
// issues. oneOf schemas (main, license, moduleType) produce branches; all
// of them are walked so the report names specific properties rather than
// just "oneOf failed".
func extractIssues(ve *jsonschema.ValidationError) []LintIssue {
	var issues []LintIssue
	collectLintIssues(ve, &issues)

	if len(issues) == 0 {
		return []LintIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

// collectLintIssues recursively walks the error tree to find leaf errors
// with specific property information.
func collectLintIssues(ve *jsonschema.ValidationError, issues *[]LintIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip container errors that carry no property-level detail.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, LintIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectLintIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicates (same path + keyword + message),
// which oneOf branches produce in bulk.
func deduplicateIssues(issues []LintIssue) []LintIssue {
	seen := make(map[string]bool)
	var result []LintIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
