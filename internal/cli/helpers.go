package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tbruun/scenedoctor/internal/index"
	"github.com/tbruun/scenedoctor/internal/meta"
	"github.com/tbruun/scenedoctor/internal/paths"
	"github.com/tbruun/scenedoctor/internal/project"
	"github.com/tbruun/scenedoctor/internal/scripts"
)

// newAnalyzer builds the asset identifier index and script models for the
// resolved project, then returns an analyzer over them. The index build
// completes before any scanning starts.
func newAnalyzer(ctx context.Context) (*project.Analyzer, error) {
	projectPath := getProjectPath()

	idx, err := meta.Build(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to index .meta sidecars: %w", err)
	}

	provider, err := scripts.Load(ctx, projectPath, idx)
	if err != nil {
		return nil, fmt.Errorf("failed to load script models: %w", err)
	}

	return &project.Analyzer{
		ProjectPath: projectPath,
		Index:       idx,
		Scripts:     provider,
	}, nil
}

// resolveSceneArg resolves a scene argument against the project. The
// argument may be a scene display name, a project-relative path, or an
// explicit path to a .unity or .prefab file inside the project.
func resolveSceneArg(arg string) (project.Scene, error) {
	projectPath := getProjectPath()

	// Explicit scene or prefab path, absolute or relative to the cwd.
	if paths.IsScene(arg) || strings.HasSuffix(arg, paths.PrefabSuffix) {
		if _, err := os.Stat(arg); err == nil {
			if err := paths.ValidateWithinProject(projectPath, arg); err != nil {
				return project.Scene{}, err
			}
			abs, err := filepath.Abs(arg)
			if err != nil {
				return project.Scene{}, err
			}
			return project.Scene{
				Path:    abs,
				RelPath: paths.Rel(projectPath, abs),
				Name:    paths.SceneName(abs),
			}, nil
		}
		// Project-relative path.
		full := filepath.Join(projectPath, filepath.FromSlash(arg))
		if _, err := os.Stat(full); err == nil {
			return project.Scene{
				Path:    full,
				RelPath: filepath.ToSlash(arg),
				Name:    paths.SceneName(full),
			}, nil
		}
		return project.Scene{}, fmt.Errorf("scene not found: %s", arg)
	}

	// Scene display name: match against discovery.
	scenes, err := project.DiscoverScenes(projectPath)
	if err != nil {
		return project.Scene{}, err
	}
	for _, s := range scenes {
		if s.Name == arg || s.RelPath == arg {
			return s, nil
		}
	}
	return project.Scene{}, fmt.Errorf("scene not found: %s", arg)
}

// writeAnalysisCache persists a run's results to the SQLite cache.
// Best-effort: callers surface failures as warnings, not errors.
func writeAnalysisCache(projectPath string, idx *meta.Index, results []project.SceneResult) error {
	db, err := index.Open(projectPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ReplaceGUIDs(idx.All()); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		var mtime int64
		if info, err := os.Stat(r.Scene.Path); err == nil {
			mtime = info.ModTime().Unix()
		}
		summary := index.SceneSummary{
			RelPath:    r.Scene.RelPath,
			Name:       r.Scene.Name,
			BrokenRefs: len(r.Issues),
		}
		if r.Graph != nil {
			summary.ObjectCount = r.Graph.Len()
			summary.RootCount = len(r.Graph.Roots)
		}
		if err := db.UpsertScene(summary, mtime); err != nil {
			return err
		}
		if err := db.ReplaceSceneIssues(r.Scene.RelPath, r.Issues); err != nil {
			return err
		}
	}
	return nil
}
