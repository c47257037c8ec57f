package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tbruun/scenedoctor/internal/meta"
)

const minimalScene = `%YAML 1.1
--- !u!1 &1
GameObject:
  m_Name: Main
--- !u!4 &10
Transform:
  m_GameObject: {fileID: 1}
  m_Father: {fileID: 0}
--- !u!114 &20
MonoBehaviour:
  m_Script: {fileID: 11500000, guid: g-gone, type: 3}
--- !u!1660057539 &99
SceneRoots:
  m_Roots:
  - {fileID: 10}
`

func TestDiscoverScenes(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "Assets/Scenes/Main.unity", minimalScene)
	write(t, dir, "Assets/Scenes/Second.unity", minimalScene)
	write(t, dir, "Assets/Scenes/Main.unity.meta", "guid: s1\n")
	write(t, dir, CacheDirName+"/stale.unity", minimalScene)
	write(t, dir, ".git/objects/fake.unity", minimalScene)

	scenes, err := DiscoverScenes(dir)
	if err != nil {
		t.Fatalf("DiscoverScenes: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("found %d scenes, want 2: %+v", len(scenes), scenes)
	}
	if scenes[0].Name != "Main" || scenes[0].RelPath != "Assets/Scenes/Main.unity" {
		t.Errorf("scene[0] = %+v", scenes[0])
	}
}

func TestAnalyzerRun(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "Assets/Main.unity", minimalScene)

	scenes, err := DiscoverScenes(dir)
	if err != nil {
		t.Fatal(err)
	}

	a := &Analyzer{ProjectPath: dir, Index: meta.NewIndex(), Workers: 2}
	results := a.Run(context.Background(), scenes)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Err != nil {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if got := r.Graph.Render(); got != "Main" {
		t.Errorf("Render = %q, want Main", got)
	}
	if len(r.Issues) != 1 || r.Issues[0].GUID != "g-gone" {
		t.Errorf("Issues = %+v, want one broken script ref", r.Issues)
	}
}

func TestAnalyzerRunUnreadableSceneDegrades(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "Assets/Main.unity", minimalScene)

	scenes, err := DiscoverScenes(dir)
	if err != nil {
		t.Fatal(err)
	}
	// Remove the file after discovery to force a read failure.
	if err := os.Remove(scenes[0].Path); err != nil {
		t.Fatal(err)
	}

	a := &Analyzer{ProjectPath: dir, Index: meta.NewIndex()}
	results := a.Run(context.Background(), scenes)

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err == nil {
		t.Error("unreadable scene should record its error")
	}
	if results[0].Graph != nil || len(results[0].Issues) != 0 {
		t.Error("unreadable scene should contribute an empty result")
	}
}

func TestAnalyzerResultsPreserveDiscoveryOrder(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "Assets/A.unity", minimalScene)
	write(t, dir, "Assets/B.unity", minimalScene)
	write(t, dir, "Assets/C.unity", minimalScene)

	scenes, err := DiscoverScenes(dir)
	if err != nil {
		t.Fatal(err)
	}

	a := &Analyzer{ProjectPath: dir, Index: meta.NewIndex(), Workers: 3}
	results := a.Run(context.Background(), scenes)

	for i := range scenes {
		if results[i].Scene.Path != scenes[i].Path {
			t.Errorf("result[%d] is %s, want %s", i, results[i].Scene.Path, scenes[i].Path)
		}
	}
}

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
