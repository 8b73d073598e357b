package signalpipe

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSV inputs carry no rate information, so frequency scaling assumes CD
// audio, matching the WAV assets the pipeline ships with.
const assumedCSVSampleRate = 44100

// readCSV reads a single-column numeric waveform. Files with several
// columns contribute only their first column.
func readCSV(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var samples []float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value %q in %s: %w", record[0], path, err)
		}
		samples = append(samples, v)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples in %s", path)
	}
	return samples, nil
}
