package compare

import "math"

const (
	// contentSize is the edge length images are resized to before their
	// pixel sequences are correlated.
	contentSize = 256

	// DefaultCorrelationThreshold is the minimum Pearson correlation at
	// which two images still count as the same.
	DefaultCorrelationThreshold = 0.95
)

// CompareContent compares two images by Pearson correlation over their
// resized RGB pixel sequences. The coefficient is in [-1,1]; a degenerate
// input with zero variance (a flat single-color image) yields 0, never
// NaN. Captures broad structural and color similarity but performs no
// registration, so it is sensitive to misalignment and cropping.
func CompareContent(a, b []byte, threshold float64) (bool, float64, error) {
	imgA, err := Decode(a)
	if err != nil {
		return false, 0, err
	}
	imgB, err := Decode(b)
	if err != nil {
		return false, 0, err
	}
	correlation := pearson(rgbSamples(imgA, contentSize), rgbSamples(imgB, contentSize))
	return correlation >= threshold, correlation, nil
}

// pearson computes the normalized cross-correlation of two equal-length
// sequences. Zero variance on either side makes the coefficient undefined;
// that case is coerced to 0.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumYY += y[i] * y[i]
		sumXY += x[i] * y[i]
	}
	denom := math.Sqrt(n*sumXX-sumX*sumX) * math.Sqrt(n*sumYY-sumY*sumY)
	if denom == 0 {
		return 0
	}
	r := (n*sumXY - sumX*sumY) / denom
	if math.IsNaN(r) {
		return 0
	}
	return r
}
