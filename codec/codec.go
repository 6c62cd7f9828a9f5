// Package codec wraps cramberry as the payload codec for CAPI:
// entry-point message payloads and query requests are deterministic
// binary encodings of plain tagged structs. The rest of the module
// treats encoding as opaque and goes through this package.
package codec

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
)

// Marshal encodes a tagged struct into its binary payload form.
func Marshal(v any) ([]byte, error) {
	data, err := cramberry.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a binary payload into v, which must be a pointer
// to a tagged struct. A malformed or schema-mismatched payload yields
// a descriptive error.
func Unmarshal(data []byte, v any) error {
	if err := cramberry.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// MustMarshal is Marshal for payloads built from static values, where
// an encoding failure is a programming error.
func MustMarshal(v any) []byte {
	data, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
