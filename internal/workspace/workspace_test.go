package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func testLayout(t *testing.T) *Layout {
	t.Helper()
	root := t.TempDir()
	return &Layout{
		DataDir:   filepath.Join(root, "data"),
		OutputDir: filepath.Join(root, "outputs"),
	}
}

func TestEnsureOutputsIsIdempotent(t *testing.T) {
	layout := testLayout(t)

	for i := 0; i < 2; i++ {
		if err := layout.EnsureOutputs(); err != nil {
			t.Fatalf("EnsureOutputs run %d failed: %v", i+1, err)
		}
	}

	for _, dir := range []string{layout.ImagesOut(), layout.SignalsOut()} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("missing output directory %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
}

func TestCleanEmptiesOutputsButKeepsDirectory(t *testing.T) {
	layout := testLayout(t)
	if err := layout.EnsureOutputs(); err != nil {
		t.Fatal(err)
	}

	stale := filepath.Join(layout.ImagesOut(), "old_gray.png")
	if err := os.WriteFile(stale, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(layout.CatalogPath(), []byte("db"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(layout.CacheDir(), 0755); err != nil {
		t.Fatal(err)
	}

	if err := layout.Clean(); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if _, err := os.Stat(layout.CacheDir()); !os.IsNotExist(err) {
		t.Error("cache directory still present after Clean")
	}

	entries, err := os.ReadDir(layout.OutputDir)
	if err != nil {
		t.Fatalf("outputs directory removed by Clean: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("outputs not empty after Clean: %d entries left", len(entries))
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	layout := testLayout(t)

	// Nothing exists yet; Clean must still succeed.
	if err := layout.Clean(); err != nil {
		t.Fatalf("Clean on empty workspace failed: %v", err)
	}

	if err := layout.EnsureOutputs(); err != nil {
		t.Fatal(err)
	}
	if err := layout.Clean(); err != nil {
		t.Fatalf("first Clean failed: %v", err)
	}
	if err := layout.Clean(); err != nil {
		t.Fatalf("second Clean failed: %v", err)
	}
}

func TestLayoutPaths(t *testing.T) {
	layout := &Layout{DataDir: "data", OutputDir: "outputs"}

	tests := []struct {
		got  string
		want string
	}{
		{layout.SampleImages(), filepath.Join("data", "sample_images")},
		{layout.SampleSignals(), filepath.Join("data", "sample_signals")},
		{layout.ImagesOut(), filepath.Join("outputs", "images")},
		{layout.SignalsOut(), filepath.Join("outputs", "signals")},
		{layout.CatalogPath(), filepath.Join("outputs", "catalog.db")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
