package fetch

import "path/filepath"

// Asset is one sample file with a fixed source URL and a fixed destination
// below the data directory.
type Asset struct {
	Name   string // short name used in progress output
	URL    string // fixed source URL
	Subdir string // destination directory below the data dir
	File   string // destination file name
}

// DestPath returns the asset's destination path below dataDir.
func (a Asset) DestPath(dataDir string) string {
	return filepath.Join(dataDir, a.Subdir, a.File)
}

// SampleImage is the sample image asset fetched into data/sample_images.
var SampleImage = Asset{
	Name:   "sample image",
	URL:    "https://upload.wikimedia.org/wikipedia/en/7/7d/Lenna_%28test_image%29.png",
	Subdir: "sample_images",
	File:   "lena.png",
}

// SampleSignal is the sample WAV asset fetched into data/sample_signals.
var SampleSignal = Asset{
	Name:   "sample signal",
	URL:    "https://www2.cs.uic.edu/~i101/SoundFiles/CantinaBand3.wav",
	Subdir: "sample_signals",
	File:   "example.wav",
}

// AllAssets lists every sample asset in fetch order.
func AllAssets() []Asset {
	return []Asset{SampleSignal, SampleImage}
}
