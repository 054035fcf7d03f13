// Package service implements the resolution facade over the catalog
// and the asset store. Every public operation is a two-stage resolve:
// a name lookup against the in-memory catalog, then (for asset-bearing
// operations) a file open in the matching bucket. A miss at the first
// stage short-circuits the operation; the asset store is never touched
// for a record that does not exist.
package service
