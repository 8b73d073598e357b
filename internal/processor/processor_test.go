package processor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sampleproc/internal/catalog"
	"sampleproc/internal/testutil"
	"sampleproc/internal/workspace"
)

func testOptions(t *testing.T) *Options {
	t.Helper()
	root := t.TempDir()
	return &Options{
		DataDir:   filepath.Join(root, "data"),
		OutputDir: filepath.Join(root, "outputs"),
		Workers:   2,
		MaxDim:    1024,
		DSRate:    1000,
	}
}

func TestRunProcessesSampleData(t *testing.T) {
	opts := testOptions(t)
	layout := &workspace.Layout{DataDir: opts.DataDir, OutputDir: opts.OutputDir}

	testutil.WriteTestPNG(t, filepath.Join(layout.SampleImages(), "lena.png"), 8, 8)
	samples := make([]int, 256)
	for i := range samples {
		samples[i] = i * 10
	}
	testutil.WriteTestWAV(t, filepath.Join(layout.SampleSignals(), "example.wav"), 8000, 1, samples)

	if err := NewProcessor(opts).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantFiles := []string{
		filepath.Join(layout.ImagesOut(), "lena_gray.png"),
		filepath.Join(layout.ImagesOut(), "lena_hist.csv"),
		filepath.Join(layout.SignalsOut(), "example_fft.csv"),
		filepath.Join(layout.SignalsOut(), "example_waveform.csv"),
	}
	for _, path := range wantFiles {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output %s: %v", path, err)
		}
	}

	cat, err := catalog.Open(layout.CatalogPath())
	if err != nil {
		t.Fatalf("catalog missing: %v", err)
	}
	defer cat.Close()

	for _, name := range []string{"images", "signals"} {
		n, err := cat.RunCount(name)
		if err != nil {
			t.Fatalf("RunCount(%s) failed: %v", name, err)
		}
		if n != 1 {
			t.Errorf("catalog has %d %s runs, want 1", n, name)
		}
	}
}

// The run step must complete even when the sample data is missing entirely,
// mirroring the tolerance of the original run script.
func TestRunToleratesMissingInputDirs(t *testing.T) {
	opts := testOptions(t)

	if err := NewProcessor(opts).Run(context.Background()); err != nil {
		t.Fatalf("Run failed on missing input dirs: %v", err)
	}

	layout := &workspace.Layout{DataDir: opts.DataDir, OutputDir: opts.OutputDir}
	for _, dir := range []string{layout.ImagesOut(), layout.SignalsOut()} {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("output directory %s not created: %v", dir, err)
		}
	}
}

func TestRunToleratesBadFiles(t *testing.T) {
	opts := testOptions(t)
	layout := &workspace.Layout{DataDir: opts.DataDir, OutputDir: opts.OutputDir}

	testutil.CreateTestFile(t, filepath.Join(layout.SampleImages(), "broken.png"), []byte("junk"))
	testutil.CreateTestFile(t, filepath.Join(layout.SampleSignals(), "broken.wav"), []byte("junk"))

	if err := NewProcessor(opts).Run(context.Background()); err != nil {
		t.Fatalf("Run failed on bad input files: %v", err)
	}
}
