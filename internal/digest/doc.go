// Package digest computes short content checksums for validated sequences.
//
// Checksums identify identical sequences across proteins and back the ETag
// of the reconstructed-sequence endpoint. They are not a security boundary.
package digest
