package types

// StructureClass is a predicted local conformation.
type StructureClass byte

const (
	Helix  StructureClass = 'H'
	Strand StructureClass = 'E'
	Coil   StructureClass = 'C'
)

// StructureClasses lists the classes in tie-break priority order.
var StructureClasses = [3]StructureClass{Helix, Strand, Coil}

// String returns the one-letter code.
func (c StructureClass) String() string { return string(rune(c)) }

// MotifType names one of the fixed motif categories.
type MotifType string

const (
	NGlycosylation MotifType = "N-glycosylation site"
	CaseinKinaseII MotifType = "Casein kinase II phosphorylation site"
	TyrosineKinase MotifType = "Tyrosine kinase phosphorylation site"
)

// String returns the display label.
func (t MotifType) String() string { return string(t) }

// StructurePrediction is the per-residue output of the structure predictor.
// Classes and Confidences always have the length of the input sequence.
type StructurePrediction struct {
	Classes     string    `json:"secondaryStructure"`
	Confidences []float64 `json:"confidenceScores"`
}

// Analysis is the full pipeline output for one sequence, before any
// identifiers are assigned by storage.
type Analysis struct {
	Sequence        string     `json:"sequence"`
	MolecularWeight float64    `json:"molecularWeight"`
	SequenceLength  int        `json:"sequenceLength"`
	Checksum        string     `json:"checksum"`
	Fragments       []Fragment `json:"fragments"`
}

// Motifs flattens the motifs of every fragment in fragment order.
func (a Analysis) Motifs() []Motif {
	var out []Motif
	for _, f := range a.Fragments {
		out = append(out, f.Motifs...)
	}
	return out
}
