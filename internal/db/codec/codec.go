// Package codec converts reminders and categories to and from the JSON
// documents kept in key-value storage.
//
// Documents are wrapped in a versioned envelope. A bare JSON array of
// reminders, written before the envelope existed, is read as version 0.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const VERSION = 1

var (
	ErrDecode             = errors.New("could not decode stored data")
	ErrUnsupportedVersion = errors.New("unsupported stored data version")
)

func decodeError(err error) error {
	return fmt.Errorf("%w: %v", ErrDecode, err)
}

// isLegacyArray reports whether data is a bare JSON array.
func isLegacyArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func checkVersion(version int) error {
	if version != VERSION {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return nil
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("could not encode data due to error: %w", err)
	}
	return string(data), nil
}
