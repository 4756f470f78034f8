package compare

import "math/bits"

const (
	// phashSize is the edge length of the luminance grid the perceptual
	// hash is computed over, giving hashBits samples total.
	phashSize = 8
	hashBits  = phashSize * phashSize

	// DefaultHammingThreshold is the largest Hamming distance at which
	// two perceptual hashes still count as the same image.
	DefaultHammingThreshold = 5
)

// PerceptualHash computes an average-hash fingerprint of an image: the
// image is reduced to an 8×8 luminance grid and bit i is set iff sample i
// exceeds the image's own mean brightness. The threshold is adaptive per
// image, so two images are compared by pattern, not absolute brightness.
func PerceptualHash(data []byte) (uint64, error) {
	img, err := Decode(data)
	if err != nil {
		return 0, err
	}
	samples := luminanceSamples(img, phashSize)

	var sum int
	for _, s := range samples {
		sum += int(s)
	}
	mean := float64(sum) / float64(len(samples))

	var hash uint64
	for i, s := range samples {
		if float64(s) > mean {
			hash |= 1 << uint(i)
		}
	}
	return hash, nil
}

// HammingDistance counts the bit positions at which two hashes differ.
func HammingDistance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// PerceptualResult carries the outcome of a perceptual-hash comparison.
type PerceptualResult struct {
	Same bool
	// Score is 1 − distance/64, always in [0,1].
	Score float64
	// Distance is the Hamming distance between the two hashes, in [0,64].
	Distance int
}

// ComparePerceptual compares two images by perceptual hash. They count as
// the same when the Hamming distance between their fingerprints is at most
// threshold. Robust to format and moderate compression changes, but
// intentionally blind to fine texture.
func ComparePerceptual(a, b []byte, threshold int) (PerceptualResult, error) {
	ha, err := PerceptualHash(a)
	if err != nil {
		return PerceptualResult{}, err
	}
	hb, err := PerceptualHash(b)
	if err != nil {
		return PerceptualResult{}, err
	}
	distance := HammingDistance(ha, hb)
	return PerceptualResult{
		Same:     distance <= threshold,
		Score:    1 - float64(distance)/hashBits,
		Distance: distance,
	}, nil
}
