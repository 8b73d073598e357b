// Package signalpipe implements the batch signal pipeline: each WAV or CSV
// waveform is reduced to mono, transformed to a real FFT magnitude spectrum
// CSV, and downsampled to a compact waveform CSV.
package signalpipe
