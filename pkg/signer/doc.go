// Package signer provides the signing and verification capabilities used by
// the token generator and parser.
//
// Every algorithm implements Signer and Verifier. The algorithm identifier is
// fixed when an instance is constructed and the hash function is derived from
// that identifier only, never from token content, so a token header cannot
// switch a verifier to a different algorithm.
//
// Supported families:
//
//   - HMAC  – HS256, HS384, HS512. Keys must be 32..6144 bytes.
//   - RSA   – RS256, RS384, RS512 (PKCS #1 v1.5). Moduli below 2048 bits are rejected.
//   - EdDSA – Ed25519.
//
// # Usage
//
//	import "github.com/dmitrymomot/jwtkit/pkg/signer"
//
//	hs, err := signer.NewHS256(key)
//	if err != nil {
//	    // key length outside the allowed bounds
//	}
//
//	sig, err := hs.Sign([]byte("header.claims"))
//	if err := hs.Verify([]byte("header.claims"), sig); err != nil {
//	    // errors.Is(err, signer.ErrInvalidSignature)
//	}
//
// Keys for different purposes can be derived from one master secret with
// DeriveKey (HKDF-SHA256).
//
// # Concurrency
//
// Instances are safe for concurrent use once constructed. (*HMAC).SetKey must
// not be called while Sign or Verify are running on the same instance.
//
// # Error Handling
//
// Verification never returns a boolean. A mismatch of any kind, including a
// signature of the wrong length, is reported as ErrInvalidSignature.
package signer
