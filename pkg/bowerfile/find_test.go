package bowerfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile creates a file inside dir with the given contents.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

const legacyComponent = `{"name": "dialog", "repo": "component/dialog", "scripts": ["index.js"]}`

func TestFind_PrefersPrimary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bower.json", `{"name": "pkg"}`)
	writeFile(t, dir, "component.json", `{"name": "pkg"}`)
	writeFile(t, dir, ".bower.json", `{"name": "pkg"}`)

	path, err := Find(dir, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if filepath.Base(path) != "bower.json" {
		t.Errorf("Find chose %s, want bower.json", filepath.Base(path))
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Find returned relative path %s", path)
	}
}

func TestFind_AcceptsReusedComponentJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "component.json", `{"name": "pkg", "main": "pkg.js"}`)

	path, err := Find(dir, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if filepath.Base(path) != "component.json" {
		t.Errorf("Find chose %s, want component.json", filepath.Base(path))
	}
}

func TestFind_SkipsLegacyComponentJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "component.json", legacyComponent)

	_, err := Find(dir, nil)
	if err == nil {
		t.Fatal("Find = nil error, want ENOENT for legacy component.json")
	}
	if !IsNotFound(err) {
		t.Errorf("expected ENOENT, got %q", ErrorCode(err))
	}
}

func TestFind_LegacySkipFallsThrough(t *testing.T) {
	// A legacy component.json must not shadow the hidden fallback.
	dir := t.TempDir()
	writeFile(t, dir, "component.json", legacyComponent)
	writeFile(t, dir, ".bower.json", `{"name": "pkg"}`)

	path, err := Find(dir, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if filepath.Base(path) != ".bower.json" {
		t.Errorf("Find chose %s, want .bower.json", filepath.Base(path))
	}
}

func TestFind_EmptyDir(t *testing.T) {
	dir := t.TempDir()

	_, err := Find(dir, nil)
	if err == nil {
		t.Fatal("Find = nil error, want ENOENT")
	}
	for _, name := range DefaultCandidates() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error = %q, want it to name %s", err.Error(), name)
		}
	}
}

func TestFind_CustomCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bower.json", `{"name": "pkg"}`)
	writeFile(t, dir, "package.json", `{"name": "pkg"}`)

	path, err := Find(dir, []string{"package.json"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if filepath.Base(path) != "package.json" {
		t.Errorf("Find chose %s, want package.json", filepath.Base(path))
	}
}

func TestFindWith_CustomClassifier(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "component.json", `{"name": "pkg"}`)

	// A classifier that treats everything as legacy rejects the file.
	_, err := FindWith(dir, nil, legacyAlways{})
	if !IsNotFound(err) {
		t.Errorf("expected ENOENT with always-legacy classifier, got %v", err)
	}
}

func TestDefaultCandidates_ReturnsCopy(t *testing.T) {
	first := DefaultCandidates()
	first[0] = "mutated.json"

	if got := DefaultCandidates()[0]; got != PrimaryFilename {
		t.Errorf("DefaultCandidates()[0] = %q after mutation, want %q", got, PrimaryFilename)
	}
}

type legacyAlways struct{}

func (legacyAlways) IsLegacyComponent([]byte) bool { return true }
