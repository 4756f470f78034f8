package compare

import (
	"errors"
	"math"
	"testing"

	"github.com/disintegration/imaging"
)

func TestCompareContent(t *testing.T) {
	t.Run("image correlates with itself", func(t *testing.T) {
		data := encodePNG(t, gradientImage(64, 64))
		same, correlation, err := CompareContent(data, data, DefaultCorrelationThreshold)
		if err != nil {
			t.Fatalf("CompareContent() error = %v", err)
		}
		if correlation < 0.999 {
			t.Errorf("correlation = %v, want >= 0.999", correlation)
		}
		if !same {
			t.Error("same = false for identical input, want true")
		}
	})

	t.Run("flat image never yields NaN", func(t *testing.T) {
		data := encodePNG(t, solidImage(32, 32, red))
		_, correlation, err := CompareContent(data, data, DefaultCorrelationThreshold)
		if err != nil {
			t.Fatalf("CompareContent() error = %v", err)
		}
		if math.IsNaN(correlation) {
			t.Error("correlation is NaN for a flat image, want coercion to 0")
		}
		if correlation != 0 && correlation != 1 {
			t.Errorf("correlation = %v for degenerate input, want 0 or 1", correlation)
		}
	})

	t.Run("negative image anti-correlates", func(t *testing.T) {
		img := gradientImage(64, 64)
		a := encodePNG(t, img)
		b := encodePNG(t, invertedImage(img))
		same, correlation, err := CompareContent(a, b, DefaultCorrelationThreshold)
		if err != nil {
			t.Fatalf("CompareContent() error = %v", err)
		}
		if correlation >= 0 {
			t.Errorf("correlation = %v for a negative image, want < 0", correlation)
		}
		if same {
			t.Error("same = true for a negative image, want false")
		}
	})

	t.Run("survives downscale and jpeg recompression", func(t *testing.T) {
		photo := gradientImage(128, 128)
		reference := encodePNG(t, photo)
		candidate := encodeJPEG(t, imaging.Resize(photo, 64, 64, imaging.Lanczos), 80)

		same, correlation, err := CompareContent(reference, candidate, DefaultCorrelationThreshold)
		if err != nil {
			t.Fatalf("CompareContent() error = %v", err)
		}
		if correlation < DefaultCorrelationThreshold {
			t.Errorf("correlation = %v, want >= %v", correlation, DefaultCorrelationThreshold)
		}
		if !same {
			t.Error("same = false after downscale+recompress, want true")
		}
	})

	t.Run("propagates decode errors", func(t *testing.T) {
		valid := encodePNG(t, gradientImage(8, 8))
		_, _, err := CompareContent(valid, []byte("garbage"), DefaultCorrelationThreshold)
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("CompareContent() error = %v, want *DecodeError", err)
		}
	})
}

func TestPearson(t *testing.T) {
	cases := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 1},
		{"perfect negative", []float64{1, 2, 3, 4}, []float64{8, 6, 4, 2}, -1},
		{"zero variance coerced", []float64{5, 5, 5, 5}, []float64{1, 2, 3, 4}, 0},
		{"both flat coerced", []float64{5, 5, 5, 5}, []float64{7, 7, 7, 7}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pearson(tc.x, tc.y)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("pearson() = %v, want %v", got, tc.want)
			}
		})
	}
}
