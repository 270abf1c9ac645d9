package persist

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/0xalexb/persist/registry"
)

//nolint:gochecknoglobals // process-wide store and logger, see doc.go.
var (
	defaultStore = sync.OnceValue(func() *registry.Store[Parameters] {
		return registry.New[Parameters]()
	})
	diagnostics atomic.Pointer[slog.Logger]
)

// Configs returns the process-wide parameter store, created lazily on first
// access and shared by every Register, Save, and Load call. Code that prefers
// explicit wiring can build its own registry.New and route registrations
// through it, but the package-level contract operates on this instance.
func Configs() *registry.Store[Parameters] {
	return defaultStore()
}

// SetLogger routes the package's diagnostics through the given logger.
// Passing nil restores slog.Default. Diagnostics matter most with
// PolicyLenient, where the warning emitted before masking is the only trace
// of a dropped save or load.
func SetLogger(l *slog.Logger) {
	diagnostics.Store(l)
}

func logger() *slog.Logger {
	if l := diagnostics.Load(); l != nil {
		return l
	}

	return slog.Default()
}

// KeyOf returns the store key for type T.
func KeyOf[T any]() registry.Key {
	return keyOfType(reflect.TypeFor[T]())
}

// KeyFor returns the store key for v's concrete type. Pointers are
// dereferenced, so a *T and a T resolve to the same key.
func KeyFor(v any) registry.Key {
	return keyOfType(reflect.TypeOf(v))
}

func keyOfType(t reflect.Type) registry.Key {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return registry.Key{}
	}

	return registry.Key{Package: t.PkgPath(), Name: t.Name()}
}

// Register stores persistence settings for type T, built from the defaults
// and the given options. Registering an already-registered type overwrites
// the previous entry without error.
func Register[T any](opts ...Option) error {
	return register(keyOfType(reflect.TypeFor[T]()), opts)
}

// RegisterValue is Register keyed by v's concrete type, for call sites that
// hold a value rather than a type parameter.
func RegisterValue(v any, opts ...Option) error {
	return register(KeyFor(v), opts)
}

// RegisterDefault stores default settings for T (DefaultDir, the type name
// as file stem, TOML) with only the error policy chosen by the caller.
func RegisterDefault[T any](policy ErrorPolicy) error {
	return Register[T](WithErrorPolicy(policy))
}

func register(key registry.Key, opts []Option) error {
	reg := registration{
		key:    key,
		params: DefaultParameters(),
	}

	for _, apply := range opts {
		apply(&reg)
	}

	if reg.key.IsZero() {
		return fmt.Errorf("%w: %s", ErrUnnamedType, reg.key)
	}

	if reg.params.FileName == "" {
		reg.params.FileName = reg.key.Name
	}

	Configs().Put(reg.key, reg.params)
	logger().Debug("registered persistence settings",
		slog.String("type", reg.key.String()),
		slog.String("path", reg.params.TargetPath()),
		slog.String("policy", reg.params.OnError.String()))

	return nil
}

// Path returns the resolved target path for v's type, or ErrNotRegistered.
func Path(v any) (string, error) {
	key := KeyFor(v)

	params, ok := Configs().Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}

	return params.TargetPath(), nil
}

// Save encodes v with the codec registered for its type and writes the
// result to dir/file_stem.extension, creating the directory if needed. The
// write goes through a temp file and a rename, so a crash mid-save never
// leaves a half-written destination.
//
// An unregistered type fails with ErrNotRegistered regardless of policy.
// Encode and I/O failures surface under PolicyStrict; under PolicyLenient
// they are logged and Save reports success anyway.
func Save(v any) error {
	key := KeyFor(v)

	params, ok := Configs().Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}

	err := writeValue(params, v)
	if err != nil {
		if params.OnError == PolicyLenient {
			logger().Warn("save failed, write dropped",
				slog.String("type", key.String()),
				slog.String("path", params.TargetPath()),
				slog.Any("error", err))

			return nil
		}

		return err
	}

	logger().Debug("saved",
		slog.String("type", key.String()),
		slog.String("path", params.TargetPath()))

	return nil
}

// Load reads the file registered for v's type, decodes it, and replaces *v
// wholesale. v must be a non-nil pointer. The replacement is all-or-nothing
// with respect to the in-memory value: on any failure *v keeps its previous
// content (strict) or is reset to the type's zero value (lenient).
//
// An unregistered type fails with ErrNotRegistered regardless of policy.
// A missing file or malformed content surfaces under PolicyStrict; under
// PolicyLenient it is logged, *v becomes the zero value, and Load reports
// success.
func Load(v any) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("%w: got %T", ErrNotPointer, v)
	}

	key := KeyFor(v)

	params, ok := Configs().Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}

	err := readValue(params, target)
	if err != nil {
		if params.OnError == PolicyLenient {
			logger().Warn("load failed, falling back to defaults",
				slog.String("type", key.String()),
				slog.String("path", params.TargetPath()),
				slog.Any("error", err))
			target.Elem().Set(reflect.Zero(target.Elem().Type()))

			return nil
		}

		return err
	}

	logger().Debug("loaded",
		slog.String("type", key.String()),
		slog.String("path", params.TargetPath()))

	return nil
}

func writeValue(params Parameters, v any) error {
	data, err := CodecFor(params.Format).Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, params.Format, err)
	}

	path := params.TargetPath()
	dir := filepath.Dir(path)

	err = os.MkdirAll(dir, 0o750)
	if err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	// Temp file in the target directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file in %q: %w", dir, err)
	}

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Close()
	} else {
		_ = tmp.Close()
	}

	if err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("writing %q: %w", tmp.Name(), err)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("renaming into %q: %w", path, err)
	}

	return nil
}

func readValue(params Parameters, target reflect.Value) error {
	path := params.TargetPath()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the type's registration
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	// Decode into a fresh value first; the caller's value changes only on
	// full success.
	fresh := reflect.New(target.Elem().Type())

	err = CodecFor(params.Format).Unmarshal(data, fresh.Interface())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, params.Format, err)
	}

	target.Elem().Set(fresh.Elem())

	return nil
}
