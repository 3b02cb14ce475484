// Package models defines the catalog data model for the freddie DJ assistant.
//
// The package owns the wire contract with the metadata backend:
//
//   - [Song] : one audio file's extracted metadata; file_path is the identity key
//   - [Document] : the catalog document envelope ({timestamp, system, file_count, metadata})
//   - [Catalog] : the ordered song sequence a session is built from
//
// The extractor writes bpm as either a JSON number or a numeric string.
// Decoding normalizes it once into a float64, using +Inf as the sentinel for a
// missing or unparseable tempo so malformed songs order last in any
// recommendation instead of corrupting comparisons. Nothing downstream
// re-parses bpm.
package models
