package residue

import "math"

// RawWeight sums residue weights without rounding. Symbols outside the
// alphabet weigh nothing.
func RawWeight(seq string) float64 {
	var total float64
	for i := 0; i < len(seq); i++ {
		total += Weights[seq[i]]
	}
	return total
}

// Weight returns RawWeight rounded to two decimals.
func Weight(seq string) float64 { return Round2(RawWeight(seq)) }

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 { return math.Round(x*100) / 100 }
