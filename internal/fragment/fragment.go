package fragment

import (
	"protmotif/internal/domain"
	"protmotif/internal/motif"
	"protmotif/internal/structure"
)

const (
	// Width is the number of residues in a fragment.
	Width = 15
	// Step is the distance between consecutive fragment starts.
	Step = 5
)

// Count returns the number of fragments Split produces for a sequence of
// length n.
func Count(n int) int {
	if n < Width {
		return 0
	}
	return (n-Width)/Step + 1
}

// Split returns the fragments of seq with 1-indexed inclusive positions,
// each carrying its structure prediction and motifs. Identifiers are left
// empty for the store to assign.
func Split(seq string, scanner *motif.Scanner) []domain.Fragment {
	out := make([]domain.Fragment, 0, Count(len(seq)))
	for offset := 0; offset+Width <= len(seq); offset += Step {
		sub := seq[offset : offset+Width]
		pred := structure.Predict(sub)
		out = append(out, domain.Fragment{
			Sequence:         sub,
			Start:            offset + 1,
			End:              offset + Width,
			StructureClasses: pred.Classes,
			Confidences:      pred.Confidences,
			Motifs:           scanner.Scan(sub),
		})
	}
	return out
}
