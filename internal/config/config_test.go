package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
default_project = "game"

[projects]
game = "/srv/game"
demo = "/srv/demo"

[ui]
accent = "#A78BFA"
code_theme = "monokai"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.DefaultProject != "game" {
		t.Errorf("DefaultProject = %q", cfg.DefaultProject)
	}
	if cfg.Projects["demo"] != "/srv/demo" {
		t.Errorf("Projects = %v", cfg.Projects)
	}
	if cfg.UI.Accent != "#A78BFA" || cfg.UI.CodeTheme != "monokai" {
		t.Errorf("UI = %+v", cfg.UI)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := writeConfig(t, `default_project = [broken`)
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetProjectPath(t *testing.T) {
	cfg := &Config{
		DefaultProject: "game",
		Projects: map[string]string{
			"game": "/srv/game",
			"demo": "/srv/demo",
		},
	}

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{"named", "demo", "/srv/demo", false},
		{"default", "", "/srv/game", false},
		{"unknown", "missing", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.GetProjectPath(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProjectPath(%q) err = %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("GetProjectPath(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestGetProjectPathNoDefault(t *testing.T) {
	cfg := &Config{Projects: map[string]string{"game": "/srv/game"}}
	if _, err := cfg.GetProjectPath(""); err == nil {
		t.Error("expected error when no default project configured")
	}
}

func TestListProjects(t *testing.T) {
	cfg := &Config{Projects: map[string]string{"a": "/a", "b": "/b"}}
	got := cfg.ListProjects()
	if len(got) != 2 || got["a"] != "/a" || got["b"] != "/b" {
		t.Errorf("ListProjects = %v", got)
	}
}
