package compare

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// normalizedSize is the canonical edge length images are resized to
	// before the normalized digest is taken.
	normalizedSize = 512

	// normalizedQuality is the canonical JPEG quality. High but not
	// maximal, so minor source-encoder differences flatten out.
	normalizedQuality = 95
)

// NormalizeForDigest re-encodes an image to its canonical form: RGB,
// 512×512, JPEG at quality 95. Two images that differ only in container
// format, compression level or metadata normalize to identical bytes.
func NormalizeForDigest(data []byte) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	canonical := resizeRGB(img, normalizedSize)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canonical, imaging.JPEG, imaging.JPEGQuality(normalizedQuality)); err != nil {
		return nil, fmt.Errorf("encode canonical jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// CompareNormalizedDigest compares two images by digesting their canonical
// re-encodings. A decode failure on either side surfaces as *DecodeError;
// falling back to the raw bytes would mark two differently-corrupt buffers
// identical.
func CompareNormalizedDigest(a, b []byte) (bool, error) {
	na, err := NormalizeForDigest(a)
	if err != nil {
		return false, err
	}
	nb, err := NormalizeForDigest(b)
	if err != nil {
		return false, err
	}
	return CompareDigest(na, nb), nil
}
