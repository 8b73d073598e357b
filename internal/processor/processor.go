package processor

import (
	"context"
	"fmt"
	"os"

	"sampleproc/internal/catalog"
	"sampleproc/internal/imagepipe"
	"sampleproc/internal/pipeline"
	"sampleproc/internal/signalpipe"
	"sampleproc/internal/workspace"
)

// Options configures a full processing run.
type Options struct {
	DataDir   string
	OutputDir string
	Workers   int
	MaxDim    int
	DSRate    int
}

// Processor runs both pipelines over the sample data.
type Processor struct {
	opts   *Options
	layout *workspace.Layout
}

// NewProcessor creates a processor for the given options.
func NewProcessor(opts *Options) *Processor {
	return &Processor{
		opts: opts,
		layout: &workspace.Layout{
			DataDir:   opts.DataDir,
			OutputDir: opts.OutputDir,
		},
	}
}

// Run executes the image and signal pipelines. Preparing the outputs tree
// must succeed; the pipelines themselves may fail without aborting the run,
// and a completion message is always printed.
func (p *Processor) Run(ctx context.Context) error {
	if err := p.layout.EnsureOutputs(); err != nil {
		return err
	}

	fmt.Println("Running image pipeline...")
	imageResults, err := imagepipe.Run(ctx, &imagepipe.Options{
		InputDir:  p.layout.SampleImages(),
		OutputDir: p.layout.ImagesOut(),
		Workers:   p.opts.Workers,
		MaxDim:    p.opts.MaxDim,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: image pipeline failed: %v\n", err)
	}
	p.record("images", imageResults)

	fmt.Println("Running signal pipeline...")
	signalResults, err := signalpipe.Run(ctx, &signalpipe.Options{
		InputDir:  p.layout.SampleSignals(),
		OutputDir: p.layout.SignalsOut(),
		Workers:   p.opts.Workers,
		DSRate:    p.opts.DSRate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: signal pipeline failed: %v\n", err)
	}
	p.record("signals", signalResults)

	p.printSummary("images", imageResults)
	p.printSummary("signals", signalResults)
	fmt.Printf("\nDone! Outputs saved to: %s\n", p.opts.OutputDir)
	return nil
}

// record stores results in the catalog. Catalog trouble is a warning: the
// run-step tolerance guarantee must not depend on bookkeeping.
func (p *Processor) record(pipelineName string, results []pipeline.Result) {
	if len(results) == 0 {
		return
	}

	cat, err := catalog.Open(p.layout.CatalogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	defer cat.Close()

	if _, err := cat.RecordRun(pipelineName, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

func (p *Processor) printSummary(name string, results []pipeline.Result) {
	s := pipeline.Summarize(results)
	fmt.Printf("%s: %d files, %d ok, %d failed\n", name, s.Total, s.OK, s.Failed)
}
