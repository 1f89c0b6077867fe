package structure

import (
	"protmotif/internal/domain"
	"protmotif/internal/residue"
)

// HalfWindow is the number of neighbours considered on each side.
const HalfWindow = 8

// Predict assigns a structure class and confidence to every residue of seq.
// Residues missing from the propensity table leave the products untouched.
func Predict(seq string) domain.StructurePrediction {
	n := len(seq)
	classes := make([]byte, n)
	confidences := make([]float64, n)
	for i := 0; i < n; i++ {
		scores := windowScores(seq, max(0, i-HalfWindow), min(n-1, i+HalfWindow))
		best, second := rank(scores)
		classes[i] = byte(domain.StructureClasses[best])
		confidences[i] = residue.Round2(scores[best] - scores[second])
	}
	return domain.StructurePrediction{Classes: string(classes), Confidences: confidences}
}

// windowScores returns the propensity products for seq[lo..hi] in
// Helix, Strand, Coil order.
func windowScores(seq string, lo, hi int) [3]float64 {
	scores := [3]float64{1, 1, 1}
	for j := lo; j <= hi; j++ {
		p, ok := residue.Propensities[seq[j]]
		if !ok {
			continue
		}
		scores[0] *= p.Helix
		scores[1] *= p.Strand
		scores[2] *= p.Coil
	}
	return scores
}

// rank returns the indices of the highest and second-highest scores. Equal
// scores keep their class order, so the earlier class wins a tie.
func rank(scores [3]float64) (best, second int) {
	best, second = 0, 1
	if scores[1] > scores[0] {
		best, second = 1, 0
	}
	switch {
	case scores[2] > scores[best]:
		best, second = 2, best
	case scores[2] > scores[second]:
		second = 2
	}
	return best, second
}
