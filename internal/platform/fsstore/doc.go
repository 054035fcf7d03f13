// Package fsstore provides the filesystem-backed implementations of the
// store interfaces: an asset store that resolves logical names inside
// fixed bucket directories under a single content root, and the catalog
// loader that scans the Decks directory and the category index into an
// immutable in-memory catalog at startup.
package fsstore
