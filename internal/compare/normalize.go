package compare

import (
	"image"

	"github.com/disintegration/imaging"
)

// All comparators resample with Lanczos. The similarity thresholds below
// are tuned against this filter; switching to a cheaper one changes the
// numeric outputs and is a behavioral change, not an optimization.

// resizeRGB scales an image to the given square size and returns it as an
// NRGBA buffer with 8-bit samples.
func resizeRGB(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// luminanceSamples converts an image to grayscale, scales it down to
// size×size and returns the size² luminance samples in row-major order.
// Grayscale conversion uses the BT.601 weights (0.299 R + 0.587 G +
// 0.114 B), so scores are reproducible across implementations.
func luminanceSamples(img image.Image, size int) []uint8 {
	gray := imaging.Resize(imaging.Grayscale(img), size, size, imaging.Lanczos)
	samples := make([]uint8, size*size)
	for i := range samples {
		// After Grayscale the R, G and B channels are identical.
		samples[i] = gray.Pix[i*4]
	}
	return samples
}

// rgbSamples scales an image to size×size and flattens its RGB channels
// into a single float sequence, dropping alpha.
func rgbSamples(img image.Image, size int) []float64 {
	rgb := resizeRGB(img, size)
	samples := make([]float64, 0, size*size*3)
	for i := 0; i < len(rgb.Pix); i += 4 {
		samples = append(samples,
			float64(rgb.Pix[i]),
			float64(rgb.Pix[i+1]),
			float64(rgb.Pix[i+2]))
	}
	return samples
}
