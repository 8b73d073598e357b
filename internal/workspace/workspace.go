package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default directory names relative to the workspace root.
const (
	DefaultDataDir   = "data"
	DefaultOutputDir = "outputs"
	CacheDirName     = ".sampleproc_cache"
	CatalogFileName  = "catalog.db"
)

// Layout describes the on-disk workspace of a sampleproc run: where sample
// data lives and where pipeline outputs go.
type Layout struct {
	DataDir   string // root of the sample data tree
	OutputDir string // root of the outputs tree
}

// DefaultLayout returns the layout rooted at the current working directory.
func DefaultLayout() *Layout {
	return &Layout{
		DataDir:   DefaultDataDir,
		OutputDir: DefaultOutputDir,
	}
}

// SampleImages returns the sample image input directory.
func (l *Layout) SampleImages() string {
	return filepath.Join(l.DataDir, "sample_images")
}

// SampleSignals returns the sample signal input directory.
func (l *Layout) SampleSignals() string {
	return filepath.Join(l.DataDir, "sample_signals")
}

// ImagesOut returns the image pipeline output directory.
func (l *Layout) ImagesOut() string {
	return filepath.Join(l.OutputDir, "images")
}

// SignalsOut returns the signal pipeline output directory.
func (l *Layout) SignalsOut() string {
	return filepath.Join(l.OutputDir, "signals")
}

// CatalogPath returns the path of the sqlite results catalog.
func (l *Layout) CatalogPath() string {
	return filepath.Join(l.OutputDir, CatalogFileName)
}

// CacheDir returns the cache directory, a sibling of the outputs tree.
func (l *Layout) CacheDir() string {
	return filepath.Join(filepath.Dir(l.OutputDir), CacheDirName)
}

// EnsureOutputs creates the output directories. Existing directories are
// reused, so repeated calls are safe.
func (l *Layout) EnsureOutputs() error {
	for _, dir := range []string{l.ImagesOut(), l.SignalsOut()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// Clean removes the contents of the outputs directory and the cache
// directory. The outputs directory itself is preserved. Paths that do not
// exist are not errors, so Clean is idempotent.
func (l *Layout) Clean() error {
	entries, err := os.ReadDir(l.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return l.removeCache()
		}
		return fmt.Errorf("failed to read outputs directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(l.OutputDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return l.removeCache()
}

func (l *Layout) removeCache() error {
	if err := os.RemoveAll(l.CacheDir()); err != nil {
		return fmt.Errorf("failed to remove cache directory: %w", err)
	}
	return nil
}
