// Package json implements the persist.Codec interface for the JSON wire
// format using the standard library encoder.
package json

import (
	"encoding/json"
	"fmt"
)

// Codec encodes and decodes values as compact JSON.
type Codec struct{}

// New creates a new JSON codec instance.
func New() *Codec {
	return &Codec{}
}

// Marshal serializes v into a compact JSON document.
func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Unmarshal deserializes JSON data into v, which must be a pointer.
func (c *Codec) Unmarshal(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Extension returns the file extension used for JSON documents.
func (c *Codec) Extension() string {
	return "json"
}
