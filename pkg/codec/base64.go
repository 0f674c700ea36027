package codec

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Base64 converts between raw bytes and their textual segment form.
type Base64 interface {
	Encode(data []byte) string
	Decode(s string) ([]byte, error)
}

var rawURLStrict = base64.RawURLEncoding.Strict()

// SafeBase64 implements unpadded base64url (RFC 4648 §5).
type SafeBase64 struct{}

// Encode returns the unpadded URL-safe encoding of data.
func (SafeBase64) Encode(data []byte) string {
	return rawURLStrict.EncodeToString(data)
}

// Decode rejects padding, characters outside the URL-safe alphabet, and
// non-zero trailing bits. CR and LF are rejected too: the standard decoder
// skips them, which would let two different strings decode to the same bytes.
func (SafeBase64) Decode(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, ErrInvalidBase64
	}

	data, err := rawURLStrict.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidBase64, err)
	}

	return data, nil
}
