// Package optional provides a container that holds zero or one value,
// used in place of a nilable reference.
//
// A Value is either present or absent. An absent Value never exposes an
// element without an explicit fallback: callers either test for
// presence with Get, provide a default with OrElse/OrElseGet, or state
// that absence is a bug with MustGet.
//
// Combinators that change the element type (Map, FlatMap, ZipWith) are
// package-level functions, since Go methods cannot introduce new type
// parameters.
package optional
