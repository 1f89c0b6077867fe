// Package fragment decomposes a sequence into overlapping fixed-width windows
// and analyses each window on its own.
//
// Windows are Width residues long and start every Step residues, so
// neighbours overlap by Width-Step residues. Only full windows are produced:
// residues after the last full window are not covered, and sequences shorter
// than Width yield no fragments at all. Structure prediction and motif
// scanning see only the window's own residues.
package fragment
