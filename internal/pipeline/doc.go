// Package pipeline provides the shared machinery for batch file processing:
// a bounded worker pool, per-file results, the per-run log file, and run
// summaries. The image and signal pipelines build on it.
package pipeline
