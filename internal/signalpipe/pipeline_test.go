package signalpipe

import (
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"sampleproc/internal/pipeline"
	"sampleproc/internal/testutil"
)

func runPipeline(t *testing.T, inputDir, outputDir string, dsRate int) []pipeline.Result {
	t.Helper()
	results, err := Run(context.Background(), &Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Workers:   2,
		DSRate:    dsRate,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return results
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}
	return records
}

// sineSamples produces one second of a sine tone as 16-bit PCM values.
func sineSamples(freq float64, sampleRate, n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = int(10000 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}
	return samples
}

func TestRunProducesSpectrumAndWaveform(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	const sampleRate, n = 8000, 1024
	testutil.WriteTestWAV(t, filepath.Join(inputDir, "example.wav"), sampleRate, 1, sineSamples(440, sampleRate, n))

	results := runPipeline(t, inputDir, outputDir, 1000)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Failed() {
		t.Fatalf("processing failed: %s", results[0].Info)
	}

	fft := readCSVFile(t, filepath.Join(outputDir, "example_fft.csv"))
	if len(fft) != n/2+2 {
		t.Fatalf("got %d FFT rows, want header + %d", len(fft), n/2+1)
	}
	if fft[0][0] != "frequency" || fft[0][1] != "magnitude" {
		t.Errorf("unexpected FFT header %v", fft[0])
	}

	// The dominant bin must sit near the tone frequency.
	peakFreq, peakMag := 0.0, 0.0
	for _, rec := range fft[1:] {
		f, _ := strconv.ParseFloat(rec[0], 64)
		m, _ := strconv.ParseFloat(rec[1], 64)
		if m > peakMag {
			peakFreq, peakMag = f, m
		}
	}
	binWidth := float64(sampleRate) / float64(n)
	if math.Abs(peakFreq-440) > binWidth {
		t.Errorf("spectrum peak at %.1f Hz, want within one bin of 440 Hz", peakFreq)
	}

	wave := readCSVFile(t, filepath.Join(outputDir, "example_waveform.csv"))
	// step = 8000/1000 = 8, so 1024 samples downsample to 128.
	if len(wave) != n/8+1 {
		t.Errorf("got %d waveform rows, want header + %d", len(wave), n/8)
	}
	if wave[0][0] != "sample_index" || wave[0][1] != "value" {
		t.Errorf("unexpected waveform header %v", wave[0])
	}
}

func TestRunMixesStereoToMono(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	// Left channel 1000, right channel -1000: the mono mix is silence.
	samples := make([]int, 0, 128)
	for i := 0; i < 64; i++ {
		samples = append(samples, 1000, -1000)
	}
	testutil.WriteTestWAV(t, filepath.Join(inputDir, "stereo.wav"), 8000, 2, samples)

	results := runPipeline(t, inputDir, outputDir, 8000)
	if results[0].Failed() {
		t.Fatalf("processing failed: %s", results[0].Info)
	}

	wave := readCSVFile(t, filepath.Join(outputDir, "stereo_waveform.csv"))
	if len(wave) != 65 {
		t.Fatalf("got %d waveform rows, want header + 64", len(wave))
	}
	for _, rec := range wave[1:] {
		v, _ := strconv.ParseFloat(rec[1], 64)
		if v != 0 {
			t.Fatalf("mono mix of opposing channels is %g, want 0", v)
		}
	}
}

func TestRunProcessesCSVInput(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	values := make([]float64, 512)
	for i := range values {
		values[i] = math.Sin(float64(i) / 10)
	}
	testutil.WriteTestCSV(t, filepath.Join(inputDir, "wave.csv"), values)

	results := runPipeline(t, inputDir, outputDir, 1000)
	if results[0].Failed() {
		t.Fatalf("processing failed: %s", results[0].Info)
	}

	fft := readCSVFile(t, filepath.Join(outputDir, "wave_fft.csv"))
	if len(fft) != 512/2+2 {
		t.Errorf("got %d FFT rows, want header + %d", len(fft), 512/2+1)
	}

	// CSV inputs assume 44100 Hz: step = 44100/1000 = 44.
	wave := readCSVFile(t, filepath.Join(outputDir, "wave_waveform.csv"))
	wantRows := (512+43)/44 + 1
	if len(wave) != wantRows {
		t.Errorf("got %d waveform rows, want %d", len(wave), wantRows)
	}
}

func TestRunToleratesBadInput(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	testutil.CreateTestFile(t, filepath.Join(inputDir, "broken.wav"), []byte("not a wav"))
	testutil.WriteTestWAV(t, filepath.Join(inputDir, "good.wav"), 8000, 1, sineSamples(440, 8000, 64))

	results := runPipeline(t, inputDir, outputDir, 1000)
	s := pipeline.Summarize(results)
	if s.Total != 2 || s.OK != 1 || s.Failed != 1 {
		t.Errorf("got %+v, want Total=2 OK=1 Failed=1", s)
	}
}

func TestRunEmptyInputDir(t *testing.T) {
	results := runPipeline(t, t.TempDir(), t.TempDir(), 1000)
	if results != nil {
		t.Errorf("got %d results for an empty input dir, want none", len(results))
	}
}

func TestDownsample(t *testing.T) {
	samples := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name       string
		sampleRate int
		dsRate     int
		want       []float64
	}{
		{name: "step of 4", sampleRate: 4000, dsRate: 1000, want: []float64{0, 4, 8}},
		{name: "rate above samples keeps all", sampleRate: 1000, dsRate: 4000, want: samples},
		{name: "zero ds rate keeps all", sampleRate: 1000, dsRate: 0, want: samples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := downsample(samples, tt.sampleRate, tt.dsRate)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSpectrumConstantSignal(t *testing.T) {
	samples := make([]float64, 16)
	for i := range samples {
		samples[i] = 1
	}

	freqs, mags := spectrum(samples, 16)
	if len(freqs) != 9 || len(mags) != 9 {
		t.Fatalf("got %d bins, want 9", len(freqs))
	}
	if freqs[0] != 0 {
		t.Errorf("first bin frequency %g, want 0", freqs[0])
	}
	// All energy of a DC signal sits in bin zero.
	if math.Abs(mags[0]-16) > 1e-9 {
		t.Errorf("DC magnitude %g, want 16", mags[0])
	}
	for i := 1; i < len(mags); i++ {
		if mags[i] > 1e-9 {
			t.Errorf("bin %d magnitude %g, want 0", i, mags[i])
		}
	}
	if freqs[8] != 8 {
		t.Errorf("Nyquist bin frequency %g, want 8", freqs[8])
	}
}

func TestReadCSVFirstColumnOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "multi.csv")
	testutil.CreateTestFile(t, path, []byte("1.5,9\n2.5,9\n3.5,9\n"))

	samples, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV failed: %v", err)
	}
	want := []float64{1.5, 2.5, 3.5}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("got %v, want %v", samples, want)
		}
	}
}
