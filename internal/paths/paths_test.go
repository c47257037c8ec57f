package paths

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidateWithinProject(t *testing.T) {
	root := t.TempDir()

	if err := ValidateWithinProject(root, filepath.Join(root, "Assets", "Main.unity")); err != nil {
		t.Errorf("path inside project rejected: %v", err)
	}

	outside := filepath.Join(root, "..", "elsewhere", "Main.unity")
	if err := ValidateWithinProject(root, outside); !errors.Is(err, ErrPathOutsideProject) {
		t.Errorf("path outside project accepted: %v", err)
	}
}

func TestSceneName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Assets/Scenes/Main.unity", "Main"},
		{"Assets/Prefabs/Enemy.prefab", "Enemy"},
		{"Main.unity", "Main"},
	}
	for _, tt := range tests {
		if got := SceneName(filepath.FromSlash(tt.path)); got != tt.want {
			t.Errorf("SceneName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsScene(t *testing.T) {
	if !IsScene("Assets/Main.unity") {
		t.Error("IsScene should accept .unity files")
	}
	if IsScene("Assets/Main.unity.meta") {
		t.Error("IsScene should reject sidecars")
	}
}
