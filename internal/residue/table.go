package residue

// Alphabet is the set of canonical one-letter amino-acid codes.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// Weights maps each residue to its molecular weight in daltons.
var Weights = map[byte]float64{
	'A': 89.09, 'R': 174.2, 'N': 132.12, 'D': 133.1, 'C': 121.16,
	'E': 147.13, 'Q': 146.15, 'G': 75.07, 'H': 155.16, 'I': 131.18,
	'L': 131.18, 'K': 146.19, 'M': 149.21, 'F': 165.19, 'P': 115.13,
	'S': 105.09, 'T': 119.12, 'W': 204.23, 'Y': 181.19, 'V': 117.15,
}

// Propensity is a residue's GOR-style preference for each structure class.
type Propensity struct {
	Helix, Strand, Coil float64
}

// Propensities maps each residue to its structural propensities.
var Propensities = map[byte]Propensity{
	'A': {1.42, 0.83, 0.56},
	'R': {0.98, 0.93, 0.89},
	'N': {0.67, 0.89, 0.94},
	'D': {1.01, 0.54, 1.46},
	'C': {0.70, 1.19, 0.94},
	'E': {1.51, 0.37, 1.02},
	'Q': {1.11, 1.10, 0.98},
	'G': {0.57, 0.75, 1.31},
	'H': {1.00, 0.87, 0.95},
	'I': {1.08, 1.60, 0.47},
	'L': {1.21, 1.30, 0.59},
	'K': {1.16, 0.74, 0.96},
	'M': {1.45, 1.05, 0.60},
	'F': {1.13, 1.38, 0.61},
	'P': {0.57, 0.55, 1.52},
	'S': {0.77, 0.75, 1.32},
	'T': {0.83, 1.20, 0.96},
	'W': {1.08, 1.37, 0.65},
	'Y': {0.69, 1.47, 0.71},
	'V': {1.06, 1.70, 0.48},
}

// IsCanonical reports whether c is one of the 20 residue codes.
func IsCanonical(c byte) bool {
	_, ok := Weights[c]
	return ok
}
