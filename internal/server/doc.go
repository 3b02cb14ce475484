// Package server provides the HTTP metadata backend the interactive client
// talks to.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern. The [BasicRouter] implementation uses
// [http.ServeMux] internally; handlers declare method/path [Route] pairs and
// the router rejects any other method with 405, so endpoints never re-check
// methods themselves.
//
// # Catalog Endpoints
//
// [CatalogHandler] exposes three routes:
//
//   - GET /audio_metadata : the catalog document ({timestamp, system,
//     file_count, metadata}); 404 when no catalog exists yet
//   - POST /catalog/upload : multipart upload (field "file") of a replacement
//     catalog; validated, persisted to SQLite, and served from then on
//   - GET /health : liveness plus whether a catalog is available
//
// Requests pass through logging and rate-limit middleware installed by the
// serve command.
package server
