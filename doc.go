// Package persist saves and loads structured values to disk, keyed by the
// value's concrete type.
//
// Each type is registered once with a set of Parameters (directory, file
// name, wire format, error policy); Save and Load then resolve the calling
// value's type in a process-wide store and delegate the encoding to a
// format codec (JSON, TOML, or YAML). Registration can be imperative
// (Register, RegisterDefault) or declarative via a struct tag on an embedded
// Settings marker, applied by RegisterType:
//
//	type Widget struct {
//	    persist.Settings `persist:"config_dir=conf/, file_name=alpha, save_format=toml"`
//	    Label            string `json:"label" toml:"label" yaml:"label"`
//	}
//
//	func init() { persist.MustRegisterType[Widget]() }
//
// # Initialization ordering
//
// The store must be populated before the first Save or Load for a type;
// otherwise both fail with ErrNotRegistered. Registering from init functions
// or from the fx registrations run by Module both satisfy this contract:
// init runs before main, and Module's invocations run during application
// start, before any lifecycle hook. Re-registering a type is allowed at any
// time and the newest registration wins.
//
// # Error policy
//
// With PolicyStrict (the default) encode, decode, and I/O failures surface
// as errors. With PolicyLenient they are logged and then masked: a failed
// Save still reports success to the caller, and a failed Load resets the
// target to its zero value and reports success. The caller cannot tell a
// masked failure from a real one; the structured warning emitted before
// masking is the only trace. Callers that cannot afford silent data loss
// should register with PolicyStrict.
package persist
