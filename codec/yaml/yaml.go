// Package yaml implements the persist.Codec interface for the YAML wire
// format using goccy/go-yaml.
package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Codec encodes and decodes values as YAML documents.
type Codec struct{}

// New creates a new YAML codec instance.
func New() *Codec {
	return &Codec{}
}

// Marshal serializes v into a YAML document.
func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Unmarshal deserializes YAML data into v, which must be a pointer.
func (c *Codec) Unmarshal(data []byte, v any) error {
	err := yaml.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Extension returns the file extension used for YAML documents.
func (c *Codec) Extension() string {
	return "yaml"
}
