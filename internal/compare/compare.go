// Package compare decides whether two images are "the same" under several
// notions of sameness, trading strictness for robustness to re-encoding,
// resizing and minor visual noise.
//
// Every function is a pure, stateless transformation of its input byte
// buffers. No intermediate buffers are shared, so parallel comparisons
// with different inputs are safe without locking.
package compare

import "fmt"

// Method selects one of the comparison strategies. The set is closed;
// unknown tokens are a request error, never a defaulted fallback.
type Method string

const (
	// MethodDigest compares raw bytes by cryptographic digest.
	MethodDigest Method = "hash"
	// MethodNormalizedDigest re-encodes both images to a canonical form
	// before digesting.
	MethodNormalizedDigest Method = "normalized_hash"
	// MethodPerceptual compares 8×8 luminance fingerprints by Hamming
	// distance.
	MethodPerceptual Method = "perceptual"
	// MethodContent correlates resized RGB pixel sequences.
	MethodContent Method = "content"
)

// DefaultMethod is used when a caller does not name a method. Perceptual
// is the documented default: it answers "is this the same picture" rather
// than "are these the same bytes".
const DefaultMethod = MethodPerceptual

// ParseMethod validates a method token. The empty string selects
// DefaultMethod; anything else outside the closed set fails with
// ErrInvalidMethod.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "":
		return DefaultMethod, nil
	case MethodDigest, MethodNormalizedDigest, MethodPerceptual, MethodContent:
		return Method(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
}

// Result is the uniform envelope every comparator's output is wrapped in.
// The optional fields are set only by the method that produces them.
type Result struct {
	Method Method
	Same   bool
	// Note describes the strictness/robustness trade-off of the method,
	// for caller-facing documentation.
	Note string

	// SimilarityScore is set by the perceptual method, in [0,1].
	SimilarityScore *float64
	// HammingDistance is set by the perceptual method, in [0,64].
	HammingDistance *int
	// Correlation is set by the content method, in [-1,1].
	Correlation *float64
}

var methodNotes = map[Method]string{
	MethodDigest:           "Exact byte comparison - sensitive to format/compression differences",
	MethodNormalizedDigest: "Normalized comparison - handles JPG/JPEG format differences",
	MethodPerceptual:       "Perceptual hash - best for same image with different formats/compression",
	MethodContent:          "Content similarity - handles minor visual differences",
}

// Note returns the caller-facing description of a method's trade-off.
func (m Method) Note() string {
	return methodNotes[m]
}

// Compare routes the two byte buffers to the comparator selected by method
// and wraps its output. Comparator failures propagate as errors, most
// notably *DecodeError; they are never reported as a "not same" result.
func Compare(method Method, reference, candidate []byte) (Result, error) {
	result := Result{Method: method, Note: method.Note()}

	switch method {
	case MethodDigest:
		result.Same = CompareDigest(reference, candidate)

	case MethodNormalizedDigest:
		same, err := CompareNormalizedDigest(reference, candidate)
		if err != nil {
			return Result{}, err
		}
		result.Same = same

	case MethodPerceptual:
		pr, err := ComparePerceptual(reference, candidate, DefaultHammingThreshold)
		if err != nil {
			return Result{}, err
		}
		result.Same = pr.Same
		result.SimilarityScore = &pr.Score
		result.HammingDistance = &pr.Distance

	case MethodContent:
		same, correlation, err := CompareContent(reference, candidate, DefaultCorrelationThreshold)
		if err != nil {
			return Result{}, err
		}
		result.Same = same
		result.Correlation = &correlation

	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	return result, nil
}
