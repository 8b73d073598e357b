// Package processor contains the run-step logic: it prepares the outputs
// tree, executes the image and signal pipelines over the sample data,
// records results in the catalog, and tolerates pipeline failures so the
// run always completes. This package serves as the coordinator between the
// workspace, the pipelines, and the catalog.
package processor
