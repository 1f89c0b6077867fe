package fragment_test

import (
	"strings"
	"testing"

	"protmotif/internal/fragment"
	"protmotif/internal/motif"
	"protmotif/internal/residue"
	"protmotif/internal/structure"
)

func seqOfLen(n int) string {
	return strings.Repeat(residue.Alphabet, n/len(residue.Alphabet)+1)[:n]
}

func TestCount(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0}, {1, 0}, {10, 0}, {14, 0},
		{15, 1}, {19, 1}, {20, 2}, {24, 2}, {25, 3}, {100, 18}, {1000, 198},
	}
	for _, tt := range tests {
		if got := fragment.Count(tt.n); got != tt.want {
			t.Fatalf("Count(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got := len(fragment.Split(seqOfLen(tt.n), nil)); got != tt.want {
			t.Fatalf("len(Split(n=%d)) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSplit_LengthTwenty(t *testing.T) {
	seq := seqOfLen(20)
	frags := fragment.Split(seq, nil)
	if len(frags) != 2 {
		t.Fatalf("want 2 fragments, got %d", len(frags))
	}
	if frags[0].Start != 1 || frags[0].End != 15 || frags[1].Start != 6 || frags[1].End != 20 {
		t.Fatalf("unexpected positions %d-%d, %d-%d", frags[0].Start, frags[0].End, frags[1].Start, frags[1].End)
	}
	if frags[1].Sequence != seq[5:20] {
		t.Fatalf("second fragment %q, want %q", frags[1].Sequence, seq[5:20])
	}
}

func TestSplit_ShortSequenceStillWeighs(t *testing.T) {
	seq := seqOfLen(10)
	if frags := fragment.Split(seq, nil); len(frags) != 0 {
		t.Fatalf("want no fragments, got %d", len(frags))
	}
	if w := residue.Weight(seq); w <= 0 {
		t.Fatalf("weight %v should be positive", w)
	}
}

func TestSplit_Invariants(t *testing.T) {
	seq := seqOfLen(137)
	frags := fragment.Split(seq, motif.NewScanner(func() float64 { return 0.25 }))
	for i, f := range frags {
		if f.End-f.Start+1 != len(f.Sequence) || len(f.Sequence) != fragment.Width {
			t.Fatalf("fragment %d: positions %d-%d vs length %d", i, f.Start, f.End, len(f.Sequence))
		}
		if seq[f.Start-1:f.End] != f.Sequence {
			t.Fatalf("fragment %d does not match parent residues", i)
		}
		if len(f.StructureClasses) != len(f.Sequence) || len(f.Confidences) != len(f.Sequence) {
			t.Fatalf("fragment %d: structure output has wrong length", i)
		}
		if i > 0 && f.Start-frags[i-1].Start != fragment.Step {
			t.Fatalf("fragment %d: step %d", i, f.Start-frags[i-1].Start)
		}
		for _, m := range f.Motifs {
			if m.Start < 1 || m.End > len(f.Sequence) || m.Start > m.End {
				t.Fatalf("fragment %d: motif outside fragment %+v", i, m)
			}
		}
	}
}

func TestSplit_PredictsOnFragmentOnly(t *testing.T) {
	// A strand-rich prefix must not leak into the window of the second fragment.
	seq := strings.Repeat("V", 5) + strings.Repeat("P", 15)
	frags := fragment.Split(seq, nil)
	want := structure.Predict(strings.Repeat("P", 15)).Classes
	if frags[1].StructureClasses != want {
		t.Fatalf("second fragment classes %s, want %s", frags[1].StructureClasses, want)
	}
}

func TestSplit_MotifsRelativeToFragment(t *testing.T) {
	// NAST sits at parent positions 8-11, i.e. 3-6 of the second fragment.
	seq := "GGGGGGG" + "NAST" + "GGGGGGGGGGGGGGGGGG"
	frags := fragment.Split(seq, nil)
	found := false
	for _, m := range frags[1].Motifs {
		if m.Pattern == "NAST" {
			found = true
			if m.Start != 3 || m.End != 6 {
				t.Fatalf("relative positions %d-%d, want 3-6", m.Start, m.End)
			}
		}
	}
	if !found {
		t.Fatalf("NAST not found in second fragment: %+v", frags[1].Motifs)
	}
}
