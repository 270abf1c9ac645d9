package persist

import "path/filepath"

// DefaultDir is the directory used when a registration does not set one.
const DefaultDir = ".config"

// ErrorPolicy controls whether save and load failures surface to the caller.
type ErrorPolicy int

const (
	// PolicyStrict surfaces encode, decode, and I/O failures as errors.
	PolicyStrict ErrorPolicy = iota
	// PolicyLenient logs failures and masks them: a failed save reports
	// success, a failed load falls back to the type's zero value.
	PolicyLenient
)

// String returns the lowercase name of the policy.
func (p ErrorPolicy) String() string {
	if p == PolicyLenient {
		return "lenient"
	}

	return "strict"
}

// Parameters holds the resolved persistence settings for one type.
// It is a plain value: the store copies it in and out, and changes happen
// only by registering a whole replacement.
type Parameters struct {
	// Dir is the directory the file is written under.
	Dir string
	// FileName is the file stem, without extension.
	FileName string
	// Format selects the wire format and file extension.
	Format Format
	// OnError selects strict or lenient failure handling.
	OnError ErrorPolicy
}

// DefaultParameters returns the settings used when nothing is specified:
// DefaultDir, an empty file name (filled with the type name at registration),
// TOML format, and strict error handling.
func DefaultParameters() Parameters {
	return Parameters{
		Dir:    DefaultDir,
		Format: DefaultFormat,
	}
}

// TargetPath returns dir/file_stem.extension for these parameters.
func (p Parameters) TargetPath() string {
	return filepath.Join(p.Dir, p.FileName+"."+p.Format.Ext())
}

// Merge combines two parameter sets, field by field:
//
//   - Dir and FileName: a non-empty override replaces base, an empty one
//     leaves base unchanged.
//   - Format: the override replaces base only when it differs from
//     DefaultFormat, so an unspecified format never clobbers base.
//   - OnError: the override always replaces base, whether or not it was
//     explicitly set. This asymmetry is part of the contract: a nested tag
//     group that never mentions panic_on_error still resets the policy to
//     strict.
func Merge(base, override Parameters) Parameters {
	merged := base

	if override.Dir != "" {
		merged.Dir = override.Dir
	}

	if override.FileName != "" {
		merged.FileName = override.FileName
	}

	if override.Format != DefaultFormat {
		merged.Format = override.Format
	}

	merged.OnError = override.OnError

	return merged
}
