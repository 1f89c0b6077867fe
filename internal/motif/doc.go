// Package motif finds fixed biological patterns in short sequences.
//
// Three patterns are scanned independently, each left to right for
// non-overlapping matches (after a match the scan resumes right after it):
//
//   - N-glycosylation site: N, not P, S or T, not P
//   - Casein kinase II phosphorylation site: S or T, two residues, D or E
//   - Tyrosine kinase phosphorylation site: R or K, up to two residues, D or E
//
// Compiled patterns are immutable and hold no scan position, so a single
// Scanner may be shared by concurrent requests. Every match carries a
// placeholder confidence drawn uniformly from [0,1) and rounded to two
// decimals; it is not a biological score.
package motif
