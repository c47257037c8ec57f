// Package paths provides canonical helpers for project-relative paths.
//
// All analysis operates on files discovered under a single project root;
// these helpers keep that containment check and the relative/display
// conversions consistent across discovery, the CLI, and the index cache.
package paths

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrPathOutsideProject indicates a file path that escapes the project root.
var ErrPathOutsideProject = errors.New("path is outside the project")

// SceneSuffix is the scene file extension convention.
const SceneSuffix = ".unity"

// PrefabSuffix marks prefab files, which share the scene record format.
const PrefabSuffix = ".prefab"

// ValidateWithinProject returns ErrPathOutsideProject when path does not
// resolve inside projectPath.
func ValidateWithinProject(projectPath, path string) error {
	absProject, err := filepath.Abs(projectPath)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(absProject, absPath)
	if err != nil {
		return ErrPathOutsideProject
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrPathOutsideProject
	}
	return nil
}

// Rel returns the project-relative form of path with forward slashes,
// falling back to the input when it cannot be made relative.
func Rel(projectPath, path string) string {
	if rel, err := filepath.Rel(projectPath, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

// SceneName derives a scene's display name from its path: the base file
// name with the scene suffix stripped.
func SceneName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, SceneSuffix)
	return strings.TrimSuffix(base, PrefabSuffix)
}

// IsScene reports whether path carries the scene file suffix.
func IsScene(path string) bool {
	return strings.HasSuffix(path, SceneSuffix)
}
