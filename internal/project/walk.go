// Package project discovers scene files under a project root and runs the
// per-scene analysis pipeline over them.
package project

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tbruun/scenedoctor/internal/paths"
)

// CacheDirName is the dot-directory holding the analysis cache; discovery
// skips it entirely.
const CacheDirName = ".scenedoctor"

// Scene identifies one discovered scene file.
type Scene struct {
	// Path is the absolute file path.
	Path string `json:"path"`

	// RelPath is the project-relative path with forward slashes.
	RelPath string `json:"rel_path"`

	// Name is the display name (base name, suffix stripped).
	Name string `json:"name"`
}

// DiscoverScenes walks the project tree for scene files, skipping hidden
// directories and the analysis cache. Unreadable subtrees are skipped, not
// fatal; only a failure to walk the root itself is an error.
func DiscoverScenes(projectPath string) ([]Scene, error) {
	var scenes []Scene

	err := filepath.WalkDir(projectPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != projectPath && (name == CacheDirName || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !paths.IsScene(path) {
			return nil
		}
		if err := paths.ValidateWithinProject(projectPath, path); err != nil {
			if errors.Is(err, paths.ErrPathOutsideProject) {
				return nil
			}
			return nil
		}

		scenes = append(scenes, Scene{
			Path:    path,
			RelPath: paths.Rel(projectPath, path),
			Name:    paths.SceneName(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return scenes, nil
}
