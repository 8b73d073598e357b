package imagepipe

import (
	"context"
	"fmt"
	"os"

	"sampleproc/internal/pipeline"
)

// Extensions recognized as image inputs.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}

// Options configures an image pipeline run.
type Options struct {
	InputDir  string
	OutputDir string
	Workers   int
	MaxDim    int // longest image side after resize, 1024 by default
}

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() *Options {
	return &Options{
		Workers: 4,
		MaxDim:  1024,
	}
}

// Run processes every image under InputDir and returns the results. An
// empty input set is a warning, not an error; per-file failures are
// reported in the results and never abort the batch.
func Run(ctx context.Context, opts *Options) ([]pipeline.Result, error) {
	files, err := pipeline.ScanInputDir(opts.InputDir, imageExtensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no image files found in %s\n", opts.InputDir)
		return nil, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	log, err := pipeline.NewRunLog(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	defer log.Close()

	maxDim := opts.MaxDim
	if maxDim == 0 {
		maxDim = DefaultOptions().MaxDim
	}

	results := pipeline.Run(ctx, files, opts.Workers, func(path string) pipeline.Result {
		res := processOne(path, opts.OutputDir, maxDim)
		if err := log.Append(res); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		fmt.Printf("%s -> %s\n", res.Source, res.Status)
		return res
	})

	return results, nil
}
