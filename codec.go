package persist

import (
	jsoncodec "github.com/0xalexb/persist/codec/json"
	tomlcodec "github.com/0xalexb/persist/codec/toml"
	yamlcodec "github.com/0xalexb/persist/codec/yaml"
)

// Codec defines an interface for encoding and decoding values in one on-disk
// wire format. Wire-format correctness is delegated entirely to the codec;
// the save/load contract only moves bytes.
//
// Implementations live in the codec/json, codec/toml, and codec/yaml
// subpackages. They satisfy this interface structurally and do not import
// this package.
type Codec interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
	// Extension returns the file extension for this format, without the dot.
	Extension() string
}

// CodecFor returns the codec for the given format.
func CodecFor(format Format) Codec {
	switch format {
	case FormatJSON:
		return jsoncodec.New()
	case FormatYAML:
		return yamlcodec.New()
	default:
		return tomlcodec.New()
	}
}
