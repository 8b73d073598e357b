package signalpipe

import (
	"context"
	"fmt"
	"os"

	"sampleproc/internal/pipeline"
)

// Extensions recognized as signal inputs.
var signalExtensions = []string{".wav", ".csv"}

// Options configures a signal pipeline run.
type Options struct {
	InputDir  string
	OutputDir string
	Workers   int
	DSRate    int // target rate for the downsampled waveform, 1000 by default
}

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() *Options {
	return &Options{
		Workers: 4,
		DSRate:  1000,
	}
}

// Run processes every WAV/CSV under InputDir and returns the results. An
// empty input set is a warning, not an error; per-file failures are
// reported in the results and never abort the batch.
func Run(ctx context.Context, opts *Options) ([]pipeline.Result, error) {
	files, err := pipeline.ScanInputDir(opts.InputDir, signalExtensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no wav/csv files found in %s\n", opts.InputDir)
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

	dsRate := opts.DSRate
	if dsRate == 0 {
		dsRate = DefaultOptions().DSRate
	}

	results := pipeline.Run(ctx, files, opts.Workers, func(path string) pipeline.Result {
		res := processOne(path, opts.OutputDir, dsRate)
		if err := log.Append(res); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		fmt.Printf("%s -> %s\n", res.Source, res.Status)
		return res
	})

	fmt.Printf("Finished. Log: %s\n", log.Path())
	return results, nil
}
