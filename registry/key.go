package registry

// Key identifies the concrete type that owns a stored entry. It is an
// explicit, printable pair rather than an opaque runtime identity, so keys
// stay stable across builds and can appear in logs and diagnostics.
// Examples:
//
//	{Package: "github.com/acme/app/settings", Name: "Prefs"}
//	{Package: "main", Name: "RecipeBook"}
type Key struct {
	Package string
	Name    string
}

// IsZero reports whether the key is unusable as a store index.
// A key without a name never identifies a concrete type.
func (k Key) IsZero() bool { return k.Name == "" }

// String returns a human-readable representation "package.Name".
func (k Key) String() string {
	if k.Package == "" {
		return k.Name
	}

	return k.Package + "." + k.Name
}
