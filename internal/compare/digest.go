package compare

import "crypto/sha256"

// Digest returns the SHA-256 digest of a raw byte sequence. An empty
// buffer digests to the well-defined SHA-256 of the empty string and is
// not an error.
func Digest(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}

// CompareDigest reports whether two byte sequences are byte-for-byte
// identical, by comparing their SHA-256 digests. No decode step: any
// re-encoding or metadata change yields "not same". This is the strictest
// comparison and it never fails.
func CompareDigest(a, b []byte) bool {
	return Digest(a) == Digest(b)
}
