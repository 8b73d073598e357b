// Package imagepipe implements the batch image pipeline: each input image
// is resized to a maximum dimension, converted to grayscale, and written
// out together with a 256-bin intensity histogram CSV.
package imagepipe
