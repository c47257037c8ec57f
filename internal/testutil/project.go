// Package testutil provides fixture builders for tests that need a
// Unity-style project layout on disk.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TestProject is a temporary Unity project root for tests.
type TestProject struct {
	t    *testing.T
	Path string
}

// NewTestProject creates a temporary project with an Assets directory.
func NewTestProject(t *testing.T) *TestProject {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Assets"), 0755); err != nil {
		t.Fatal(err)
	}
	return &TestProject{t: t, Path: root}
}

// WriteFile writes a file at a project-relative path, creating parents.
func (p *TestProject) WriteFile(relPath, content string) string {
	p.t.Helper()
	full := filepath.Join(p.Path, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		p.t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		p.t.Fatal(err)
	}
	return full
}

// WriteScene writes a .unity scene file under Assets.
func (p *TestProject) WriteScene(relPath, content string) string {
	p.t.Helper()
	return p.WriteFile(relPath, content)
}

// WriteAsset writes an asset file plus its .meta sidecar carrying the guid.
func (p *TestProject) WriteAsset(relPath, guid string) string {
	p.t.Helper()
	full := p.WriteFile(relPath, "asset content")
	p.WriteFile(relPath+".meta", fmt.Sprintf("fileFormatVersion: 2\nguid: %s\n", guid))
	return full
}

// WriteScript writes a C# source file plus its .meta sidecar.
func (p *TestProject) WriteScript(relPath, guid, source string) string {
	p.t.Helper()
	full := p.WriteFile(relPath, source)
	p.WriteFile(relPath+".meta", fmt.Sprintf("fileFormatVersion: 2\nguid: %s\n", guid))
	return full
}

// ReadFile reads a project-relative file.
func (p *TestProject) ReadFile(relPath string) string {
	p.t.Helper()
	data, err := os.ReadFile(filepath.Join(p.Path, filepath.FromSlash(relPath)))
	if err != nil {
		p.t.Fatal(err)
	}
	return string(data)
}

// AssertFileExists fails the test if the file does not exist.
func (p *TestProject) AssertFileExists(relPath string) {
	p.t.Helper()
	if _, err := os.Stat(filepath.Join(p.Path, filepath.FromSlash(relPath))); os.IsNotExist(err) {
		p.t.Errorf("expected file to exist: %s", relPath)
	}
}
