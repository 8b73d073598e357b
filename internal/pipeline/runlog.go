package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog writes one tab-separated line per processed file to a timestamped
// log file under <outputDir>/logs/.
type RunLog struct {
	file *os.File
	path string
}

// NewRunLog creates the log directory and opens a fresh log file named
// processing_log_<UTC timestamp>.txt.
func NewRunLog(outputDir string) (*RunLog, error) {
	logDir := filepath.Join(outputDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("processing_log_%s.txt", time.Now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(logDir, name)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	return &RunLog{file: file, path: path}, nil
}

// Path returns the location of the log file.
func (l *RunLog) Path() string {
	return l.path
}

// Append writes one result line and flushes it, so the log stays useful if
// the run is interrupted.
func (l *RunLog) Append(r Result) error {
	t := time.Now().UTC().Format(time.RFC3339)
	if _, err := fmt.Fprintf(l.file, "%s\t%s\t%s\t%s\n", t, r.Source, r.Status, r.Info); err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	return l.file.Sync()
}

// Close closes the underlying log file.
func (l *RunLog) Close() error {
	return l.file.Close()
}
