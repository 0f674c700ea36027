package signer

import "crypto/subtle"

// Algorithm identifiers as registered in RFC 7518.
const (
	HS256 = "HS256"
	HS384 = "HS384"
	HS512 = "HS512"
	RS256 = "RS256"
	RS384 = "RS384"
	RS512 = "RS512"
	EdDSA = "EdDSA"
)

// Signer produces a signature over a message.
type Signer interface {
	// Name returns the algorithm identifier written to the token header.
	Name() string
	Sign(message []byte) ([]byte, error)
}

// Verifier checks a signature over a message. A nil return is the only
// success signal.
type Verifier interface {
	Name() string
	Verify(message, signature []byte) error
}

// SignerVerifier is implemented by every algorithm in this package.
type SignerVerifier interface {
	Signer
	Verifier
}

var (
	_ SignerVerifier = (*HMAC)(nil)
	_ SignerVerifier = (*RSA)(nil)
	_ SignerVerifier = (*Ed25519)(nil)
)

// equal compares a and b in time that depends only on their lengths.
// Unlike subtle.ConstantTimeCompare it does not return early when the
// lengths differ.
func equal(a, b []byte) bool {
	n := max(len(a), len(b))

	var v byte
	for i := range n {
		var x, y byte
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		v |= x ^ y
	}

	lenDiff := uint64(len(a)) ^ uint64(len(b))
	for shift := 0; shift < 64; shift += 8 {
		v |= byte(lenDiff >> shift)
	}

	return subtle.ConstantTimeByteEq(v, 0) == 1
}
