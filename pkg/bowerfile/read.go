package bowerfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Read loads the manifest at path. A directory is searched with Find
// first; a file is used directly. Returns the parsed manifest and the
// resolved absolute path it was read from. Failures carry the resolved
// path in their File attribute when it is determinable.
func Read(path string, opts *ParseOptions) (Manifest, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", &Error{
			Code:    CodeNotFound,
			Message: fmt.Sprintf("File %s does not exist", path),
			File:    path,
			cause:   err,
		}
	}

	if info.IsDir() {
		file, err := Find(path, nil)
		if err != nil {
			return nil, "", err
		}
		return Read(file, opts)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolving %s: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, "", fmt.Errorf("reading manifest %s: %w", abs, err)
	}

	m, err := Decode(data, opts)
	if err != nil {
		return nil, "", tagFile(err, abs)
	}
	return m, abs, nil
}

// Decode parses raw manifest bytes and runs the Parse pipeline. Content
// that is not a JSON object is reported as EMALFORMED.
func Decode(data []byte, opts *ParseOptions) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &Error{Code: CodeMalformed, Message: "Malformed JSON", cause: err}
	}
	return Parse(m, opts)
}

// Parse runs the clone, validate, normalize pipeline over a decoded
// manifest according to opts (nil means DefaultParseOptions).
func Parse(m Manifest, opts *ParseOptions) (Manifest, error) {
	if opts == nil {
		opts = DefaultParseOptions()
	}

	if opts.Clone {
		m = m.Clone()
	}
	if opts.Validate {
		if _, err := Validate(m, &opts.ValidationOptions); err != nil {
			return nil, err
		}
	}
	if opts.Normalize {
		m = Normalize(m)
	}
	return m, nil
}
