package signalpipe

import (
	"encoding/csv"
	"fmt"
	"math/cmplx"
	"os"
	"strconv"

	"gonum.org/v1/gonum/dsp/fourier"
)

// spectrum computes the real FFT magnitude spectrum and the center
// frequency of each bin. Both slices have n/2+1 entries.
func spectrum(samples []float64, sampleRate int) (freqs, magnitudes []float64) {
	n := len(samples)
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	freqs = make([]float64, len(coeffs))
	magnitudes = make([]float64, len(coeffs))
	for i, c := range coeffs {
		freqs[i] = float64(i) * float64(sampleRate) / float64(n)
		magnitudes[i] = cmplx.Abs(c)
	}
	return freqs, magnitudes
}

// downsample keeps every step-th sample where step is sampleRate/dsRate,
// never below 1. The result is meant for quick plotting and storage.
func downsample(samples []float64, sampleRate, dsRate int) []float64 {
	step := 1
	if dsRate > 0 && sampleRate/dsRate > 1 {
		step = sampleRate / dsRate
	}

	out := make([]float64, 0, len(samples)/step+1)
	for i := 0; i < len(samples); i += step {
		out = append(out, samples[i])
	}
	return out
}

func writeSpectrumCSV(path string, freqs, magnitudes []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create spectrum file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"frequency", "magnitude"}); err != nil {
		return fmt.Errorf("failed to write spectrum header: %w", err)
	}
	for i := range freqs {
		record := []string{
			strconv.FormatFloat(freqs[i], 'g', -1, 64),
			strconv.FormatFloat(magnitudes[i], 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write spectrum row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeWaveformCSV(path string, samples []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create waveform file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"sample_index", "value"}); err != nil {
		return fmt.Errorf("failed to write waveform header: %w", err)
	}
	for i, v := range samples {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write waveform row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
