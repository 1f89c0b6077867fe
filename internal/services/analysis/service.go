package analysis

import (
	"protmotif/internal/digest"
	"protmotif/internal/domain"
	"protmotif/internal/fragment"
	"protmotif/internal/motif"
	"protmotif/internal/residue"
	"protmotif/internal/structure"
)

// Service validates sequences against MaxLength and analyses them.
type Service struct {
	maxLength int
	scanner   *motif.Scanner
}

// New returns a Service that accepts sequences of at most maxLength
// residues. A nil scanner uses random motif confidences.
func New(maxLength int, scanner *motif.Scanner) *Service {
	if scanner == nil {
		scanner = motif.NewScanner(nil)
	}
	return &Service{maxLength: maxLength, scanner: scanner}
}

// MaxLength returns the configured ceiling.
func (s *Service) MaxLength() int { return s.maxLength }

// Validate checks seq against the alphabet and the ceiling.
func (s *Service) Validate(seq string) error {
	return residue.Validate(seq, s.maxLength)
}

// Analyze validates seq and returns its weight, checksum and fragments.
func (s *Service) Analyze(seq string) (domain.Analysis, error) {
	if err := s.Validate(seq); err != nil {
		return domain.Analysis{}, err
	}
	return domain.Analysis{
		Sequence:        seq,
		MolecularWeight: residue.Weight(seq),
		SequenceLength:  len(seq),
		Checksum:        digest.Sequence(seq),
		Fragments:       fragment.Split(seq, s.scanner),
	}, nil
}

// PredictStructure validates seq and predicts its secondary structure.
func (s *Service) PredictStructure(seq string) (domain.StructurePrediction, error) {
	if err := s.Validate(seq); err != nil {
		return domain.StructurePrediction{}, err
	}
	return structure.Predict(seq), nil
}

// ScanMotifs validates seq and returns its motif occurrences.
func (s *Service) ScanMotifs(seq string) ([]domain.Motif, error) {
	if err := s.Validate(seq); err != nil {
		return nil, err
	}
	return s.scanner.Scan(seq), nil
}

var _ domain.AnalysisService = (*Service)(nil)
