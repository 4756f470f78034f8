package compare

import (
	"errors"
	"testing"
)

func TestPerceptualHash(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		data := encodePNG(t, gradientImage(64, 64))
		h1, err := PerceptualHash(data)
		if err != nil {
			t.Fatalf("PerceptualHash() error = %v", err)
		}
		h2, _ := PerceptualHash(data)
		if h1 != h2 {
			t.Errorf("PerceptualHash not deterministic: %016x != %016x", h1, h2)
		}
	})

	t.Run("propagates decode errors", func(t *testing.T) {
		_, err := PerceptualHash([]byte("this is not an image"))
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("PerceptualHash() error = %v, want *DecodeError", err)
		}
	})
}

func TestHammingDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b uint64
		want int
	}{
		{"equal hashes", 0xdeadbeefdeadbeef, 0xdeadbeefdeadbeef, 0},
		{"one bit", 0, 1, 1},
		{"all bits", 0, ^uint64(0), 64},
		{"mixed", 0b1010, 0b0101, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HammingDistance(tc.a, tc.b); got != tc.want {
				t.Errorf("HammingDistance(%x, %x) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestComparePerceptual(t *testing.T) {
	t.Run("image matches itself at distance zero", func(t *testing.T) {
		data := encodePNG(t, gradientImage(64, 64))
		result, err := ComparePerceptual(data, data, DefaultHammingThreshold)
		if err != nil {
			t.Fatalf("ComparePerceptual() error = %v", err)
		}
		if !result.Same {
			t.Error("Same = false for identical input, want true")
		}
		if result.Distance != 0 {
			t.Errorf("Distance = %d, want 0", result.Distance)
		}
		if result.Score != 1 {
			t.Errorf("Score = %v, want 1", result.Score)
		}
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a := encodePNG(t, gradientImage(64, 64))
		b := encodePNG(t, solidImage(64, 64, red))
		r1, err := ComparePerceptual(a, b, DefaultHammingThreshold)
		if err != nil {
			t.Fatalf("ComparePerceptual() error = %v", err)
		}
		r2, _ := ComparePerceptual(b, a, DefaultHammingThreshold)
		if r1.Distance != r2.Distance {
			t.Errorf("Distance not symmetric: %d != %d", r1.Distance, r2.Distance)
		}
	})

	t.Run("survives re-encoding to another format", func(t *testing.T) {
		img := solidImage(10, 10, red)
		asPNG := encodePNG(t, img)
		asJPEG := encodeJPEG(t, img, 90)

		result, err := ComparePerceptual(asPNG, asJPEG, DefaultHammingThreshold)
		if err != nil {
			t.Fatalf("ComparePerceptual() error = %v", err)
		}
		if !result.Same {
			t.Errorf("Same = false across formats, distance = %d", result.Distance)
		}
		if result.Distance != 0 {
			t.Errorf("Distance = %d across formats, want 0", result.Distance)
		}
	})

	t.Run("distinguishes unrelated images", func(t *testing.T) {
		a := encodePNG(t, gradientImage(64, 64))
		b := encodePNG(t, solidImage(64, 64, red))
		result, err := ComparePerceptual(a, b, DefaultHammingThreshold)
		if err != nil {
			t.Fatalf("ComparePerceptual() error = %v", err)
		}
		if result.Same {
			t.Errorf("Same = true for unrelated images, distance = %d", result.Distance)
		}
		if result.Score < 0 || result.Score > 1 {
			t.Errorf("Score = %v, want within [0,1]", result.Score)
		}
	})
}
