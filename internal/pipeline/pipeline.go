package pipeline

import (
	"context"
	"sync"
	"time"
)

// Result statuses as they appear in the run log and the catalog.
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Result is the outcome of processing a single input file.
type Result struct {
	Source   string        // input file path
	Status   string        // StatusOK or StatusError
	Info     string        // output paths on success, error message on failure
	Duration time.Duration // wall time spent on this file
}

// Failed reports whether the result is an error result.
func (r Result) Failed() bool {
	return r.Status == StatusError
}

// ProcessFunc processes one input file and returns its result.
type ProcessFunc func(path string) Result

// Run processes all files with the given number of workers and returns the
// results in completion order. Workers below 1 are treated as 1. Run stops
// handing out new files once ctx is cancelled; files already in flight
// finish normally.
func Run(ctx context.Context, files []string, workers int, fn ProcessFunc) []Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}
	if len(files) == 0 {
		return nil
	}

	jobs := make(chan string)
	out := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				start := time.Now()
				res := fn(path)
				if res.Duration == 0 {
					res.Duration = time.Since(start)
				}
				out <- res
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			default:
			}
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]Result, 0, len(files))
	for res := range out {
		results = append(results, res)
	}
	return results
}

// Summary aggregates the outcome of a pipeline run.
type Summary struct {
	Total  int
	OK     int
	Failed int
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Failed() {
			s.Failed++
		} else {
			s.OK++
		}
	}
	return s
}
