// Package protein implements the protein use cases: submission, lookup,
// listing, metadata updates, deletion, sequence reconstruction, structure
// prediction for stored proteins and snapshot export.
//
// Identifiers arrive as strings from the edges and are validated here, so
// callers never reach the store with a malformed ID.
package protein
