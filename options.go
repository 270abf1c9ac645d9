package persist

import "github.com/0xalexb/persist/registry"

// registration collects the settings an imperative Register call builds up.
type registration struct {
	key    registry.Key
	params Parameters
}

// Option defines a function type for configuring a registration.
type Option func(*registration)

// WithDir sets the directory the file is written under.
func WithDir(dir string) Option {
	return func(reg *registration) {
		reg.params.Dir = dir
	}
}

// WithFileName sets the file stem, without extension. When not set, the
// type's own name is used.
func WithFileName(name string) Option {
	return func(reg *registration) {
		reg.params.FileName = name
	}
}

// WithFormat sets the wire format.
func WithFormat(format Format) Option {
	return func(reg *registration) {
		reg.params.Format = format
	}
}

// WithErrorPolicy sets the failure handling policy.
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(reg *registration) {
		reg.params.OnError = policy
	}
}

// WithKey overrides the store key derived from the type. Useful when two
// builds of the same logical type must share one entry, or to disambiguate
// same-named types.
func WithKey(key registry.Key) Option {
	return func(reg *registration) {
		reg.key = key
	}
}
