package signalpipe

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// readWAV decodes a WAV file into a mono float64 waveform and its sample
// rate. Multi-channel audio is mixed down by averaging the channels.
func readWAV(path string) (sampleRate int, samples []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to decode WAV file: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return 0, nil, fmt.Errorf("invalid WAV format in %s", path)
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	samples = make([]float64, frames)

	if channels == 1 {
		for i := 0; i < frames; i++ {
			samples[i] = float64(buf.Data[i])
		}
	} else {
		for i := 0; i < frames; i++ {
			sum := 0.0
			for c := 0; c < channels; c++ {
				sum += float64(buf.Data[i*channels+c])
			}
			samples[i] = sum / float64(channels)
		}
	}

	return buf.Format.SampleRate, samples, nil
}
