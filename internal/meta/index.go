// Package meta builds the project-wide asset identifier index from .meta
// sidecar files. Every asset in a project carries a sidecar declaring its
// GUID; the index maps each GUID to the asset path (sidecar suffix
// stripped). It is built once per project and treated as read-only by all
// reference scans.
package meta

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suffix is the sidecar file suffix convention: asset filename + ".meta".
const Suffix = ".meta"

// Index maps asset GUIDs to project-relative asset paths.
// Last write wins on duplicate GUIDs; collisions are not detected.
type Index struct {
	paths map[string]string
}

// NewIndex returns an empty index. Mainly useful in tests.
func NewIndex() *Index {
	return &Index{paths: make(map[string]string)}
}

// Resolve returns the asset path for a GUID.
func (i *Index) Resolve(guid string) (string, bool) {
	path, ok := i.paths[guid]
	return path, ok
}

// Has reports whether the GUID is present in the index.
func (i *Index) Has(guid string) bool {
	_, ok := i.paths[guid]
	return ok
}

// Len returns the number of indexed GUIDs.
func (i *Index) Len() int {
	return len(i.paths)
}

// Put inserts or overwrites one GUID mapping.
func (i *Index) Put(guid, assetPath string) {
	i.paths[guid] = assetPath
}

// All returns the underlying mapping. Callers must treat it as read-only.
func (i *Index) All() map[string]string {
	return i.paths
}

// Build scans every sidecar under projectPath and returns the resulting
// index. Corrupted or unreadable sidecars are skipped without aborting the
// scan; only a failure to walk the root itself is an error.
func Build(projectPath string) (*Index, error) {
	idx := NewIndex()

	err := filepath.WalkDir(projectPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != projectPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, Suffix) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		guid, ok := ParseSidecar(content)
		if !ok {
			return nil
		}

		assetPath := strings.TrimSuffix(path, Suffix)
		if rel, relErr := filepath.Rel(projectPath, assetPath); relErr == nil {
			assetPath = filepath.ToSlash(rel)
		}
		idx.Put(guid, assetPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return idx, nil
}

// sidecarDoc is the subset of a sidecar document we care about.
type sidecarDoc struct {
	GUID string `yaml:"guid"`
}

// ParseSidecar extracts the declared GUID from sidecar content. Sidecars are
// plain YAML, so they are decoded properly first; corrupt files fall back to
// a line scan for a "guid:" declaration.
func ParseSidecar(content []byte) (string, bool) {
	var doc sidecarDoc
	if err := yaml.Unmarshal(content, &doc); err == nil && doc.GUID != "" {
		return doc.GUID, true
	}

	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "guid:"); ok {
			guid := strings.TrimSpace(rest)
			if guid != "" {
				return guid, true
			}
		}
	}
	return "", false
}
