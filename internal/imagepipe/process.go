package imagepipe

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nfnt/resize"

	"sampleproc/internal/pipeline"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// processOne converts a single image: resize to maxDim, grayscale, write
// <stem>_gray.png and <stem>_hist.csv into outDir.
func processOne(path, outDir string, maxDim int) pipeline.Result {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	img, err := decodeImage(path)
	if err != nil {
		return errorResult(path, err)
	}

	img = capDimensions(img, maxDim)
	gray := toGray(img)

	grayPath := filepath.Join(outDir, stem+"_gray.png")
	if err := writePNG(grayPath, gray); err != nil {
		return errorResult(path, err)
	}

	histPath := filepath.Join(outDir, stem+"_hist.csv")
	if err := writeHistogramCSV(histPath, histogram(gray)); err != nil {
		return errorResult(path, err)
	}

	return pipeline.Result{
		Source: path,
		Status: pipeline.StatusOK,
		Info:   grayPath,
	}
}

func errorResult(path string, err error) pipeline.Result {
	return pipeline.Result{
		Source: path,
		Status: pipeline.StatusError,
		Info:   err.Error(),
	}
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// capDimensions scales the image down so its longest side is at most
// maxDim. Images already within the limit are returned unchanged; the
// pipeline never upscales.
func capDimensions(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	longest := w
	if h > longest {
		longest = h
	}
	if maxDim <= 0 || longest <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(longest)
	newW := uint(float64(w) * scale)
	newH := uint(float64(h) * scale)
	return resize.Resize(newW, newH, img, resize.Lanczos3)
}

func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}

// histogram counts pixels per intensity bin (0-255).
func histogram(gray *image.Gray) [256]int {
	var hist [256]int
	bounds := gray.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := gray.Pix[(y-bounds.Min.Y)*gray.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			hist[row[x]]++
		}
	}
	return hist
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output image: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func writeHistogramCSV(path string, hist [256]int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create histogram file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"bin", "count"}); err != nil {
		return fmt.Errorf("failed to write histogram header: %w", err)
	}
	for i, count := range hist {
		record := []string{strconv.Itoa(i), strconv.Itoa(count)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write histogram row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
