package types

import "time"

// Protein is the stored record for a submitted sequence. Weight, length and
// checksum are derived at submission and never supplied by callers.
type Protein struct {
	ID              ProteinID `json:"proteinId"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	MolecularWeight float64   `json:"molecularWeight"`
	SequenceLength  int       `json:"sequenceLength"`
	Checksum        string    `json:"checksum,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Fragment is a fixed-width window of a protein with its local analysis.
// Start and End are 1-indexed and inclusive.
type Fragment struct {
	ID               FragmentID `json:"fragmentId"`
	ProteinID        ProteinID  `json:"proteinId"`
	Sequence         string     `json:"sequence"`
	Start            int        `json:"startPosition"`
	End              int        `json:"endPosition"`
	StructureClasses string     `json:"secondaryStructure"`
	Confidences      []float64  `json:"confidenceScores"`
	Motifs           []Motif    `json:"motifs"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Len returns the number of residues covered by the fragment.
func (f Fragment) Len() int { return f.End - f.Start + 1 }

// Motif is one pattern occurrence inside a fragment. Positions are
// 1-indexed, inclusive and relative to the fragment.
type Motif struct {
	ID         MotifID    `json:"motifId,omitempty"`
	FragmentID FragmentID `json:"fragmentId,omitempty"`
	Type       MotifType  `json:"type"`
	Pattern    string     `json:"pattern"`
	Start      int        `json:"startPosition"`
	End        int        `json:"endPosition"`
	Confidence float64    `json:"confidence"`
}

// ProteinRecord bundles a protein with the fragments generated for it. It is
// the unit the store writes in one transaction.
type ProteinRecord struct {
	Protein   Protein    `json:"protein"`
	Fragments []Fragment `json:"fragments"`
}

// SnapshotVersion is the format version written into every snapshot.
const SnapshotVersion = "1.0"

// SnapshotMeta describes when a snapshot was produced.
type SnapshotMeta struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot is a self-contained export of one protein record.
type Snapshot struct {
	Metadata SnapshotMeta  `json:"metadata"`
	Data     ProteinRecord `json:"data"`
}

// ProteinUpdate carries the mutable protein fields. Nil means unchanged.
type ProteinUpdate struct {
	Name        *string
	Description *string
}

// User is an API caller recognised by the X-User-ID header.
type User struct {
	ID        UserID    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
