// Package store defines the data access interfaces consumed by the
// service layer: the asset store (binary files grouped into fixed
// buckets) and the catalog read API built once at startup. Concrete
// filesystem-backed implementations live in internal/platform/fsstore.
//
// The package also defines the shared error taxonomy. Every "absent"
// condition, whether an unknown record name, a missing file, or a
// rejected path-traversal attempt, surfaces as ErrNotFound so callers
// never learn filesystem structure from the distinction. Read faults on
// files that do exist surface as ErrUnreadable, which callers map to a
// server-side failure instead of a client-visible absence.
package store
