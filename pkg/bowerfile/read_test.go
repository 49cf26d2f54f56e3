package bowerfile

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bower.json", `{"name": "pkg", "main": "pkg.js"}`)

	m, file, err := Read(dir, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if m.Name() != "pkg" {
		t.Errorf("name = %q, want %q", m.Name(), "pkg")
	}
	if filepath.Base(file) != "bower.json" {
		t.Errorf("resolved file = %s, want bower.json", file)
	}
}

func TestRead_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.json", `{"name": "pkg"}`)

	m, file, err := Read(path, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if m.Name() != "pkg" {
		t.Errorf("name = %q, want %q", m.Name(), "pkg")
	}
	if filepath.Base(file) != "custom.json" {
		t.Errorf("resolved file = %s, want custom.json", file)
	}
}

func TestRead_StrictNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bower.json", `{"name": "My-Pkg"}`)

	// Default options enforce lowercase names.
	_, _, err := Read(dir, nil)
	if !IsInvalid(err) {
		t.Fatalf("expected EINVALID for uppercase name, got %v", err)
	}

	// The same manifest passes once strict names are off.
	opts := DefaultParseOptions()
	opts.StrictNames = false
	if _, _, err := Read(dir, opts); err != nil {
		t.Errorf("Read without strict names = %v, want nil", err)
	}
}

func TestRead_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bower.json", `{"name": "pkg",`)

	_, _, err := Read(dir, nil)
	if !IsMalformed(err) {
		t.Fatalf("expected EMALFORMED, got %v", err)
	}

	var e *Error
	if !asManifestError(err, &e) {
		t.Fatal("expected a manifest Error")
	}
	abs, _ := filepath.Abs(path)
	if e.File != abs {
		t.Errorf("File = %q, want %q", e.File, abs)
	}
}

func TestRead_ValidationErrorTaggedWithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bower.json", `{"name": "My-Pkg"}`)

	_, _, err := Read(dir, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var e *Error
	if !asManifestError(err, &e) {
		t.Fatal("expected a manifest Error")
	}
	abs, _ := filepath.Abs(path)
	if e.File != abs {
		t.Errorf("File = %q, want %q", e.File, abs)
	}
}

func TestRead_NoSuchPath(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "missing"), nil)
	if !IsNotFound(err) {
		t.Errorf("expected ENOENT, got %v", err)
	}
}

func TestRead_Normalizes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bower.json", `{"name": "pkg", "main": "pkg.js"}`)

	opts := DefaultParseOptions()
	opts.Normalize = true

	m, _, err := Read(dir, opts)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want := []any{"pkg.js"}; !reflect.DeepEqual(m["main"], want) {
		t.Errorf("main = %#v, want %#v", m["main"], want)
	}
}

func TestDecode_NotAnObject(t *testing.T) {
	_, err := Decode([]byte(`["not", "an", "object"]`), nil)
	if !IsMalformed(err) {
		t.Errorf("expected EMALFORMED for non-object JSON, got %v", err)
	}
}

func TestParse_CloneLeavesInputUntouched(t *testing.T) {
	m := Manifest{"name": "pkg", "main": "pkg.js"}

	opts := DefaultParseOptions()
	opts.Clone = true
	opts.Normalize = true

	out, err := Parse(m, opts)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := out["main"].([]any); !ok {
		t.Errorf("output main = %#v, want normalized list", out["main"])
	}
	if _, ok := m["main"].(string); !ok {
		t.Errorf("input main = %#v, want untouched scalar", m["main"])
	}
}

func TestParse_ValidationOff(t *testing.T) {
	m := Manifest{"name": "My-Pkg"}
	if _, err := Parse(m, &ParseOptions{Validate: false}); err != nil {
		t.Errorf("Parse without validation = %v, want nil", err)
	}
}

func TestParse_ErrorHasNoFile(t *testing.T) {
	// File context is attached only at the reader boundary.
	_, err := Parse(Manifest{"name": "My-Pkg"}, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var e *Error
	if !asManifestError(err, &e) {
		t.Fatal("expected a manifest Error")
	}
	if e.File != "" {
		t.Errorf("File = %q, want empty for a pure validation call", e.File)
	}
}

func TestErrorMessage_IncludesFile(t *testing.T) {
	e := &Error{Code: CodeInvalid, Message: "No name property set", File: "/tmp/bower.json"}
	if !strings.Contains(e.Error(), "/tmp/bower.json") {
		t.Errorf("Error() = %q, want it to include the file", e.Error())
	}
}
