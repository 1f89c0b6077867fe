package motif

import (
	"math/rand/v2"
	"regexp"

	"protmotif/internal/domain"
	"protmotif/internal/residue"
)

type pattern struct {
	kind domain.MotifType
	re   *regexp.Regexp
}

var patterns = []pattern{
	{domain.NGlycosylation, regexp.MustCompile(`N[^P][ST][^P]`)},
	{domain.CaseinKinaseII, regexp.MustCompile(`[ST].{2}[DE]`)},
	{domain.TyrosineKinase, regexp.MustCompile(`[RK].{0,2}[DE]`)},
}

// Scanner finds motif occurrences. The zero value draws confidences from
// math/rand/v2.
type Scanner struct {
	confidence func() float64
}

// NewScanner returns a Scanner that takes confidences from confidence. A
// nil func uses rand.Float64.
func NewScanner(confidence func() float64) *Scanner {
	return &Scanner{confidence: confidence}
}

// Scan returns all motif occurrences in seq, grouped by pattern in the order
// N-glycosylation, Casein kinase II, Tyrosine kinase, and left to right
// within a pattern. Positions are 1-indexed and inclusive.
func (s *Scanner) Scan(seq string) []domain.Motif {
	var out []domain.Motif
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(seq, -1) {
			out = append(out, domain.Motif{
				Type:       p.kind,
				Pattern:    seq[loc[0]:loc[1]],
				Start:      loc[0] + 1,
				End:        loc[1],
				Confidence: residue.Round2(s.draw()),
			})
		}
	}
	return out
}

func (s *Scanner) draw() float64 {
	if s == nil || s.confidence == nil {
		return rand.Float64()
	}
	return s.confidence()
}

// Scan runs the default Scanner over seq.
func Scan(seq string) []domain.Motif {
	var s Scanner
	return s.Scan(seq)
}
