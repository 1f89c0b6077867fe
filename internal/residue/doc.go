// Package residue holds the per-amino-acid constants and the two folds that
// only need them: sequence validation and molecular weight.
//
// Contents
//
//   - Alphabet, Weights and Propensities tables for the 20 canonical residues
//   - Validate, which checks alphabet, emptiness and a caller-supplied ceiling
//   - Weight and RawWeight, the rounded and unrounded residue mass sums
//
// Everything here is pure and safe for concurrent use.
package residue
