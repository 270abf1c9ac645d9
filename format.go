package persist

// Format selects the on-disk wire format for a registered type.
type Format int

const (
	// FormatTOML is the default wire format (".toml" files).
	FormatTOML Format = iota
	// FormatJSON writes compact JSON (".json" files).
	FormatJSON
	// FormatYAML writes YAML documents (".yaml" files).
	FormatYAML
)

// DefaultFormat is the format used when none is specified.
const DefaultFormat = FormatTOML

// Ext returns the file extension associated with this format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// String returns the lowercase name of the format.
func (f Format) String() string {
	return f.Ext()
}

// ParseFormat converts a string to a Format by exact match on "json", "toml",
// or "yaml". Any other value falls back to DefaultFormat; unrecognized format
// names in declarative tags are a soft failure, unlike malformed tag syntax.
func ParseFormat(value string) Format {
	switch value {
	case "json":
		return FormatJSON
	case "toml":
		return FormatTOML
	case "yaml":
		return FormatYAML
	default:
		return DefaultFormat
	}
}
