// Package toml implements the persist.Codec interface for the TOML wire
// format using pelletier/go-toml.
package toml

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Codec encodes and decodes values as TOML documents.
type Codec struct{}

// New creates a new TOML codec instance.
func New() *Codec {
	return &Codec{}
}

// Marshal serializes v into a TOML document.
func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Unmarshal deserializes TOML data into v, which must be a pointer.
func (c *Codec) Unmarshal(data []byte, v any) error {
	err := toml.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Extension returns the file extension used for TOML documents.
func (c *Codec) Extension() string {
	return "toml"
}
