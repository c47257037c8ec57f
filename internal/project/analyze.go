package project

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tbruun/scenedoctor/internal/check"
	"github.com/tbruun/scenedoctor/internal/hierarchy"
	"github.com/tbruun/scenedoctor/internal/meta"
	"github.com/tbruun/scenedoctor/internal/scripts"
	"github.com/tbruun/scenedoctor/internal/unity"
)

// SceneResult is the per-scene analysis output. A scene that could not be
// read contributes an empty result with Err set; the run never aborts.
type SceneResult struct {
	Scene Scene

	// Graph is the reconstructed hierarchy. Nil when the scene was
	// unreadable.
	Graph *hierarchy.Graph

	// Issues are the scene's broken asset references, in record order.
	Issues []check.Issue

	// ScriptClasses are the resolved script class names the scene
	// references.
	ScriptClasses []string

	// Err records a read failure. Parse problems never surface here:
	// malformed records degrade to partial results.
	Err error
}

// Analyzer runs the full per-scene pipeline: split, hierarchy
// reconstruction, reference scan.
type Analyzer struct {
	// ProjectPath is the project root.
	ProjectPath string

	// Index is the project-wide asset identifier index. It must be fully
	// built before Run starts; every worker reads it concurrently.
	Index *meta.Index

	// Scripts supplies script models for scanner context. May be nil.
	Scripts scripts.Provider

	// Workers bounds the fan-out. Zero means one worker per CPU.
	Workers int
}

// AnalyzeScene runs the pipeline over one scene's text. Pure function of
// its inputs; safe to call concurrently.
func (a *Analyzer) AnalyzeScene(scene Scene, text string) SceneResult {
	records := unity.SplitRecords(text)
	scanner := check.NewScanner(a.Index, a.Scripts)

	return SceneResult{
		Scene:         scene,
		Graph:         hierarchy.Build(records),
		Issues:        scanner.ScanScene(scene.Name, records),
		ScriptClasses: scanner.SceneScriptClasses(records),
	}
}

// Run analyzes every scene with bounded parallelism. Results land in
// index-addressed slots, one per scene, so workers share no mutable state;
// the returned slice preserves discovery order.
func (a *Analyzer) Run(ctx context.Context, scenes []Scene) []SceneResult {
	results := make([]SceneResult, len(scenes))

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, scene := range scenes {
		i, scene := i, scene
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = SceneResult{Scene: scene, Err: err}
				return nil
			}
			content, err := os.ReadFile(scene.Path)
			if err != nil {
				results[i] = SceneResult{Scene: scene, Err: err}
				return nil
			}
			results[i] = a.AnalyzeScene(scene, string(content))
			return nil
		})
	}

	// Workers never return errors; degradation is per scene.
	_ = g.Wait()

	return results
}
