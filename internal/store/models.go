package store

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"protmotif/internal/domain"
)

type proteinRow struct {
	ID              string    `gorm:"size:36;primaryKey"`
	Name            string    `gorm:"size:100;not null;index"`
	Description     string    `gorm:"size:1000;not null;default:''"`
	MolecularWeight float64   `gorm:"not null;index"`
	SequenceLength  int       `gorm:"not null;index"`
	Checksum        string    `gorm:"size:64;index"`
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`

	Fragments []fragmentRow `gorm:"foreignKey:ProteinID;references:ID;constraint:OnDelete:CASCADE"`
}

func (proteinRow) TableName() string { return "proteins" }

type fragmentRow struct {
	ID                 string         `gorm:"size:36;primaryKey"`
	ProteinID          string         `gorm:"size:36;not null;index:idx_fragments_protein_start,priority:1"`
	Sequence           string         `gorm:"not null"`
	StartPosition      int            `gorm:"not null;index:idx_fragments_protein_start,priority:2"`
	EndPosition        int            `gorm:"not null"`
	SecondaryStructure string         `gorm:"not null"`
	ConfidenceScores   datatypes.JSON `gorm:"not null"`
	CreatedAt          time.Time      `gorm:"not null"`

	Motifs []motifRow `gorm:"foreignKey:FragmentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (fragmentRow) TableName() string { return "fragments" }

type motifRow struct {
	ID              string  `gorm:"size:36;primaryKey"`
	FragmentID      string  `gorm:"size:36;not null;index"`
	Ordinal         int     `gorm:"not null"`
	MotifPattern    string  `gorm:"not null;index"`
	MotifType       string  `gorm:"not null"`
	StartPosition   int     `gorm:"not null"`
	EndPosition     int     `gorm:"not null"`
	ConfidenceScore float64 `gorm:"not null"`
}

func (motifRow) TableName() string { return "motifs" }

type userRow struct {
	ID        string    `gorm:"size:36;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

func toProteinRow(p domain.Protein) proteinRow {
	return proteinRow{
		ID:              p.ID.String(),
		Name:            p.Name,
		Description:     p.Description,
		MolecularWeight: p.MolecularWeight,
		SequenceLength:  p.SequenceLength,
		Checksum:        p.Checksum,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r proteinRow) toDomain() domain.Protein {
	return domain.Protein{
		ID:              domain.ProteinID(r.ID),
		Name:            r.Name,
		Description:     r.Description,
		MolecularWeight: r.MolecularWeight,
		SequenceLength:  r.SequenceLength,
		Checksum:        r.Checksum,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toFragmentRow(proteinID domain.ProteinID, f domain.Fragment) (fragmentRow, []motifRow, error) {
	scores, err := json.Marshal(f.Confidences)
	if err != nil {
		return fragmentRow{}, nil, err
	}
	row := fragmentRow{
		ID:                 f.ID.String(),
		ProteinID:          proteinID.String(),
		Sequence:           f.Sequence,
		StartPosition:      f.Start,
		EndPosition:        f.End,
		SecondaryStructure: f.StructureClasses,
		ConfidenceScores:   datatypes.JSON(scores),
		CreatedAt:          f.CreatedAt,
	}
	motifs := make([]motifRow, 0, len(f.Motifs))
	for i, m := range f.Motifs {
		motifs = append(motifs, motifRow{
			ID:              m.ID.String(),
			FragmentID:      row.ID,
			Ordinal:         i,
			MotifPattern:    m.Pattern,
			MotifType:       m.Type.String(),
			StartPosition:   m.Start,
			EndPosition:     m.End,
			ConfidenceScore: m.Confidence,
		})
	}
	return row, motifs, nil
}

func (r fragmentRow) toDomain() (domain.Fragment, error) {
	var scores []float64
	if len(r.ConfidenceScores) > 0 {
		if err := json.Unmarshal(r.ConfidenceScores, &scores); err != nil {
			return domain.Fragment{}, err
		}
	}
	motifs := make([]domain.Motif, 0, len(r.Motifs))
	for _, m := range r.Motifs {
		motifs = append(motifs, domain.Motif{
			ID:         domain.MotifID(m.ID),
			FragmentID: domain.FragmentID(m.FragmentID),
			Type:       domain.MotifType(m.MotifType),
			Pattern:    m.MotifPattern,
			Start:      m.StartPosition,
			End:        m.EndPosition,
			Confidence: m.ConfidenceScore,
		})
	}
	return domain.Fragment{
		ID:               domain.FragmentID(r.ID),
		ProteinID:        domain.ProteinID(r.ProteinID),
		Sequence:         r.Sequence,
		Start:            r.StartPosition,
		End:              r.EndPosition,
		StructureClasses: r.SecondaryStructure,
		Confidences:      scores,
		Motifs:           motifs,
		CreatedAt:        r.CreatedAt,
	}, nil
}
