// Package immutable provides wrappers whose contents are fixed at
// construction.
//
// The wrappers follow a defensive-copy discipline: construction copies
// every mutable argument, and every accessor that exposes backing data
// returns a fresh copy. Mutating a slice or map after passing it to a
// constructor, or mutating anything an accessor returned, never affects
// the wrapper. Operations that "change" a wrapper return a new one.
//
// This makes the wrappers safe to share across goroutines for reading
// without locking.
package immutable
