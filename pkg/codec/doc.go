// Package codec provides the JSON and Base64URL capabilities used to build
// and take apart compact token segments.
//
// Both capabilities are small interfaces so callers can plug in their own
// implementation. The package ships with:
//
//   - StrictJSON  – deterministic encoding, decoding that rejects duplicate
//     keys, trailing data and non-object documents. Numbers are kept as
//     json.Number so large integers survive a round trip.
//   - LenientJSON – plain encoding/json behaviour, offered for interop only.
//   - SafeBase64  – unpadded URL-safe alphabet with strict decoding.
//
// # Usage
//
//	import "github.com/dmitrymomot/jwtkit/pkg/codec"
//
//	data, err := codec.StrictJSON{}.Encode(map[string]any{"sub": "42"})
//	segment := codec.SafeBase64{}.Encode(data)
//
//	raw, err := codec.SafeBase64{}.Decode(segment)
//	claims, err := codec.StrictJSON{}.Decode(raw)
//
// # Error Handling
//
// Decoding failures are reported as ErrInvalidJSON, ErrDuplicateKey,
// ErrTrailingData, ErrNotObject or ErrInvalidBase64 and can be matched with
// errors.Is.
package codec
