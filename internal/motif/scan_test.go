package motif_test

import (
	"math/rand"
	"testing"

	"protmotif/internal/domain"
	"protmotif/internal/motif"
	"protmotif/internal/residue"
)

func fixed(v float64) func() float64 { return func() float64 { return v } }

func TestScan_NGlycosylationNAST(t *testing.T) {
	got := motif.Scan("NAST")
	if len(got) != 1 {
		t.Fatalf("want 1 motif, got %+v", got)
	}
	m := got[0]
	if m.Type != domain.NGlycosylation || m.Pattern != "NAST" || m.Start != 1 || m.End != 4 {
		t.Fatalf("unexpected motif %+v", m)
	}
	if m.Confidence < 0 || m.Confidence > 1 {
		t.Fatalf("confidence %v out of range", m.Confidence)
	}
}

func TestScan_Patterns(t *testing.T) {
	type hit struct {
		kind       domain.MotifType
		pattern    string
		start, end int
	}
	tests := []struct {
		name string
		seq  string
		want []hit
	}{
		{"proline blocks glycosylation", "NPST", nil},
		{"trailing proline blocks glycosylation", "NASP", nil},
		{"glycosylation non-overlapping", "NNSTS", []hit{{domain.NGlycosylation, "NNST", 1, 4}}},
		{"glycosylation repeats", "NASTNGTA", []hit{
			{domain.NGlycosylation, "NAST", 1, 4},
			{domain.NGlycosylation, "NGTA", 5, 8},
		}},
		{"casein kinase", "GSAADG", []hit{{domain.CaseinKinaseII, "SAAD", 2, 5}}},
		{"tyrosine kinase greedy", "RAADE", []hit{{domain.TyrosineKinase, "RAAD", 1, 4}}},
		{"tyrosine kinase backtracks", "RDE", []hit{{domain.TyrosineKinase, "RDE", 1, 3}}},
		{"tyrosine kinase adjacent", "KD", []hit{{domain.TyrosineKinase, "KD", 1, 2}}},
		{"patterns scanned independently", "TKAE", []hit{
			{domain.CaseinKinaseII, "TKAE", 1, 4},
			{domain.TyrosineKinase, "KAE", 2, 4},
		}},
		{"nothing", "GGGGGGGG", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := motif.NewScanner(fixed(0.5)).Scan(tt.seq)
			if len(got) != len(tt.want) {
				t.Fatalf("Scan(%s) = %+v, want %d motifs", tt.seq, got, len(tt.want))
			}
			for i, w := range tt.want {
				g := got[i]
				if g.Type != w.kind || g.Pattern != w.pattern || g.Start != w.start || g.End != w.end {
					t.Fatalf("motif %d = %+v, want %+v", i, g, w)
				}
				if g.Confidence != 0.5 {
					t.Fatalf("confidence %v, want injected 0.5", g.Confidence)
				}
			}
		})
	}
}

func TestScan_PositionsWithinSequence(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 200; round++ {
		b := make([]byte, 15)
		for i := range b {
			b[i] = residue.Alphabet[r.Intn(len(residue.Alphabet))]
		}
		seq := string(b)
		for _, m := range motif.Scan(seq) {
			if m.Start < 1 || m.End > len(seq) || m.Start > m.End {
				t.Fatalf("%s: bad positions %+v", seq, m)
			}
			if seq[m.Start-1:m.End] != m.Pattern {
				t.Fatalf("%s: pattern %q does not match positions %d-%d", seq, m.Pattern, m.Start, m.End)
			}
			if m.Confidence < 0 || m.Confidence > 1 {
				t.Fatalf("%s: confidence %v out of range", seq, m.Confidence)
			}
		}
	}
}

func TestScan_ConfidenceRounded(t *testing.T) {
	got := motif.NewScanner(fixed(0.123456)).Scan("NAST")
	if got[0].Confidence != 0.12 {
		t.Fatalf("confidence %v, want 0.12", got[0].Confidence)
	}
}
