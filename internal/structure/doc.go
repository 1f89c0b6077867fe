// Package structure predicts per-residue secondary structure from residue
// propensities.
//
// For every position the predictor multiplies, per class, the propensities
// of the residues in a window of HalfWindow residues either side (clipped at
// the sequence ends, no padding). The class with the largest product wins,
// ties going to Helix, then Strand, then Coil. The confidence at a position
// is the gap between the best and second-best product, rounded to two
// decimals, so it is never negative.
//
// Predict depends only on its input and is safe for concurrent use.
package structure
