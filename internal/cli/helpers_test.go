package cli

import (
	"context"
	"testing"

	"github.com/tbruun/scenedoctor/internal/index"
	"github.com/tbruun/scenedoctor/internal/project"
	"github.com/tbruun/scenedoctor/internal/testutil"
)

const helperScene = `--- !u!1 &10
GameObject:
  m_Name: Player
--- !u!4 &11
Transform:
  m_GameObject: {fileID: 10}
  m_Father: {fileID: 0}
  m_Children: []
--- !u!114 &12
MonoBehaviour:
  m_GameObject: {fileID: 10}
  m_Script: {fileID: 11500000, guid: g-missing, type: 3}
`

func setupProject(t *testing.T) *testutil.TestProject {
	t.Helper()
	p := testutil.NewTestProject(t)
	prev := resolvedProjectPath
	resolvedProjectPath = p.Path
	t.Cleanup(func() { resolvedProjectPath = prev })
	return p
}

func TestResolveSceneArg(t *testing.T) {
	p := setupProject(t)
	p.WriteScene("Assets/Scenes/Main.unity", helperScene)
	p.WriteFile("Assets/Prefabs/Player.prefab", helperScene)

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"by display name", "Main", "Assets/Scenes/Main.unity", false},
		{"by relative path", "Assets/Scenes/Main.unity", "Assets/Scenes/Main.unity", false},
		{"prefab by path", "Assets/Prefabs/Player.prefab", "Assets/Prefabs/Player.prefab", false},
		{"unknown name", "Nope", "", true},
		{"unknown path", "Assets/Missing.unity", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := resolveSceneArg(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveSceneArg(%q) err = %v", tt.arg, err)
			}
			if err == nil && scene.RelPath != tt.want {
				t.Errorf("resolveSceneArg(%q).RelPath = %q, want %q", tt.arg, scene.RelPath, tt.want)
			}
		})
	}
}

func TestNewAnalyzerAndCacheRoundTrip(t *testing.T) {
	p := setupProject(t)
	p.WriteScene("Assets/Scenes/Main.unity", helperScene)
	p.WriteAsset("Assets/Materials/grass.mat", "g-present")

	analyzer, err := newAnalyzer(context.Background())
	if err != nil {
		t.Fatalf("newAnalyzer: %v", err)
	}
	if !analyzer.Index.Has("g-present") {
		t.Error("index should contain the sidecar guid")
	}

	scenes, err := project.DiscoverScenes(p.Path)
	if err != nil || len(scenes) != 1 {
		t.Fatalf("DiscoverScenes = %v, %v", scenes, err)
	}

	results := analyzer.Run(context.Background(), scenes)
	if len(results) != 1 || len(results[0].Issues) != 1 {
		t.Fatalf("results = %+v", results)
	}

	if err := writeAnalysisCache(p.Path, analyzer.Index, results); err != nil {
		t.Fatalf("writeAnalysisCache: %v", err)
	}

	db, err := index.Open(p.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if n, _ := db.GUIDCount(); n != 1 {
		t.Errorf("cached guid count = %d, want 1", n)
	}
	cached, err := db.Scenes()
	if err != nil || len(cached) != 1 {
		t.Fatalf("cached scenes = %v, %v", cached, err)
	}
	if cached[0].Name != "Main" || cached[0].BrokenRefs != 1 || cached[0].ObjectCount != 1 {
		t.Errorf("cached scene = %+v", cached[0])
	}
	issues, err := db.Issues("Assets/Scenes/Main.unity")
	if err != nil || len(issues) != 1 || issues[0].GUID != "g-missing" {
		t.Errorf("cached issues = %v, %v", issues, err)
	}
}
