package codec

import "errors"

var (
	ErrInvalidJSON   = errors.New("codec: invalid json")
	ErrDuplicateKey  = errors.New("codec: duplicate object key")
	ErrTrailingData  = errors.New("codec: trailing data after json value")
	ErrNotObject     = errors.New("codec: top-level json value is not an object")
	ErrInvalidBase64 = errors.New("codec: invalid base64url data")
)
