package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// JSON converts between a JSON object and its byte representation.
type JSON interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte) (map[string]any, error)
}

// StrictJSON is the JSON capability used for every trust decision.
// Encoding is deterministic: map keys are emitted in sorted order.
type StrictJSON struct{}

// Encode marshals v into compact JSON.
func (StrictJSON) Encode(v any) ([]byte, error) {
	return marshal(v)
}

// Decode parses a single JSON object. Duplicate keys at any depth, trailing
// data, invalid UTF-8 and non-object documents are rejected.
func (StrictJSON) Decode(data []byte) (map[string]any, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid utf-8", ErrInvalidJSON)
	}

	if err := checkDuplicateKeys(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	return obj, nil
}

// LenientJSON mirrors encoding/json defaults: the last duplicate key wins and
// numbers are decoded as float64. It exists for interop and is never used by
// the token parser unless explicitly configured.
type LenientJSON struct{}

// Encode marshals v into compact JSON.
func (LenientJSON) Encode(v any) ([]byte, error) {
	return marshal(v)
}

// Decode parses a JSON object using encoding/json defaults.
func (LenientJSON) Decode(data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	if obj == nil {
		return nil, ErrNotObject
	}
	return obj, nil
}

func marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json: %w", err)
	}
	return data, nil
}

// checkDuplicateKeys walks the token stream once and fails on the first
// object that repeats a key. encoding/json silently keeps the last value.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return walkValue(dec)
}

func walkValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		seen := make(map[string]struct{})
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return errors.Join(ErrInvalidJSON, err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return ErrInvalidJSON
			}
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
			}
			seen[key] = struct{}{}

			if err := walkValue(dec); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err := walkValue(dec); err != nil {
				return err
			}
		}
	}

	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}

	return nil
}
