// Package store persists proteins, fragments, motifs and users.
//
// The relational stores run on gorm and work against either SQLite (the
// default, pure Go) or PostgreSQL. A protein and everything derived from it
// is written in one transaction, so readers never see a protein without its
// fragments. Errors are translated to the domain error kinds.
//
// SnapshotFileStore writes self-contained JSON exports of a protein record
// under <dir>/proteins/<id>.json using temp-file-then-rename writes.
//
// The package includes:
//   - Proteins, fragments and motifs (ProteinDBStore)
//   - API users (UserDBStore)
//   - Protein snapshots (SnapshotFileStore)
package store
