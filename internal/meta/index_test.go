package meta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSidecar(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{
			name:    "plain yaml sidecar",
			content: "fileFormatVersion: 2\nguid: 0123456789abcdef0123456789abcdef\nMonoImporter:\n  externalObjects: {}\n",
			want:    "0123456789abcdef0123456789abcdef",
			wantOK:  true,
		},
		{
			name:    "corrupt yaml falls back to line scan",
			content: "fileFormatVersion: 2\n\t{broken\nguid: feedface\n",
			want:    "feedface",
			wantOK:  true,
		},
		{
			name:    "no guid line",
			content: "fileFormatVersion: 2\n",
			wantOK:  false,
		},
		{
			name:    "empty file",
			content: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSidecar([]byte(tt.content))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseSidecar = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Assets/Player.prefab.meta", "guid: g1\n")
	writeFile(t, dir, "Assets/Textures/grass.png.meta", "guid: g2\n")
	writeFile(t, dir, "Assets/Textures/grass.png", "not a sidecar")
	writeFile(t, dir, "Assets/broken.mat.meta", ": : :\n")
	writeFile(t, dir, ".cache/skipped.meta", "guid: hidden\n")

	idx, err := Build(dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if idx.Len() != 2 {
		t.Fatalf("indexed %d guids, want 2", idx.Len())
	}

	path, ok := idx.Resolve("g1")
	if !ok || path != "Assets/Player.prefab" {
		t.Errorf("Resolve(g1) = %q, %v; want Assets/Player.prefab", path, ok)
	}
	if path, _ := idx.Resolve("g2"); path != "Assets/Textures/grass.png" {
		t.Errorf("Resolve(g2) = %q, want suffix-stripped asset path", path)
	}
	if idx.Has("hidden") {
		t.Error("sidecars under dot-directories should be skipped")
	}
}

func TestBuildLastWriteWinsOnDuplicateGUID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Assets/a.mat.meta", "guid: dup\n")
	writeFile(t, dir, "Assets/b.mat.meta", "guid: dup\n")

	idx, err := Build(dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("indexed %d guids, want 1", idx.Len())
	}
	if !idx.Has("dup") {
		t.Error("duplicate guid should still resolve")
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
