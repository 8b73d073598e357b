package signalpipe

import (
	"fmt"
	"path/filepath"
	"strings"

	"sampleproc/internal/pipeline"
)

// processOne analyzes one WAV or CSV input and writes <stem>_fft.csv and
// <stem>_waveform.csv into outDir.
func processOne(path, outDir string, dsRate int) pipeline.Result {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var (
		sampleRate int
		samples    []float64
		err        error
	)
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		sampleRate, samples, err = readWAV(path)
	} else {
		sampleRate = assumedCSVSampleRate
		samples, err = readCSV(path)
	}
	if err != nil {
		return errorResult(path, err)
	}
	if len(samples) == 0 {
		return errorResult(path, fmt.Errorf("no samples in %s", path))
	}

	freqs, magnitudes := spectrum(samples, sampleRate)
	fftPath := filepath.Join(outDir, stem+"_fft.csv")
	if err := writeSpectrumCSV(fftPath, freqs, magnitudes); err != nil {
		return errorResult(path, err)
	}

	wavePath := filepath.Join(outDir, stem+"_waveform.csv")
	if err := writeWaveformCSV(wavePath, downsample(samples, sampleRate, dsRate)); err != nil {
		return errorResult(path, err)
	}

	return pipeline.Result{
		Source: path,
		Status: pipeline.StatusOK,
		Info:   fmt.Sprintf("%s, %s", fftPath, wavePath),
	}
}

func errorResult(path string, err error) pipeline.Result {
	return pipeline.Result{
		Source: path,
		Status: pipeline.StatusError,
		Info:   err.Error(),
	}
}
