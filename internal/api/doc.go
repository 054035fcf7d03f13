// Package api provides the HTTP handlers for the catalog API. Handlers
// are thin: they parse the name out of the URL, call the resolution
// service, and encode the outcome. All error-to-status mapping goes
// through MapErrorToStatusCode so a missing record, a missing file, and
// a rejected traversal attempt are equally a 404, while a read fault on
// an existing asset is a 500.
package api
