// Package registry provides a small, concurrency-safe store mapping type keys
// to configuration values.
//
// A Store holds one value per Key. Put always wins: inserting for an existing
// key overwrites the previous entry without error, and there is no removal.
// Get returns a copy of the stored value, never a live reference, so callers
// cannot mutate an entry in place; changes happen only by a full Put.
//
// Locking is asymmetric on purpose: Get takes a shared (read) lock so
// concurrent lookups never serialize against each other, while Put takes the
// exclusive lock. An entry written by Put is visible to every Get that starts
// after Put returns, from any goroutine.
package registry
