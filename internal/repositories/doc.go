// Package repositories implements durable catalog storage behind the
// metadata backend.
//
// [CatalogRepository] keeps the accepted catalog in SQLite so a catalog
// recovered through an upload survives restarts and future loads succeed.
// The songs table mirrors the wire model one to one; a sequence column
// preserves catalog order, and the missing-tempo sentinel is stored as NULL.
package repositories
