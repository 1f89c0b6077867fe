package protein

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"protmotif/internal/domain"
	"protmotif/internal/structure"
)

const (
	// MaxNameLength bounds protein names, in characters.
	MaxNameLength = 100
	// MaxDescriptionLength bounds protein descriptions, in characters.
	MaxDescriptionLength = 1000

	generatedNamePrefix = 8
	exportPageSize      = 100
)

// Service implements domain.ProteinService over a ProteinStore.
type Service struct {
	proteins  domain.ProteinStore
	snapshots domain.SnapshotStore
	analyzer  domain.AnalysisService
}

// New constructs a protein Service. analyzer enforces the submission
// length ceiling. snapshots may be nil when export is not needed.
func New(
	proteins domain.ProteinStore,
	snapshots domain.SnapshotStore,
	analyzer domain.AnalysisService,
) *Service {
	return &Service{proteins: proteins, snapshots: snapshots, analyzer: analyzer}
}

// SubmitProtein analyses sequence and stores the protein with all its
// fragments and motifs. An empty or over-long name is replaced with a
// generated one.
func (s *Service) SubmitProtein(
	ctx context.Context,
	sequence, name, description string,
) (domain.Protein, []domain.Fragment, error) {
	a, err := s.analyzer.Analyze(sequence)
	if err != nil {
		return domain.Protein{}, nil, err
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return domain.Protein{}, nil, domain.Validationf("description exceeds %d characters", MaxDescriptionLength)
	}

	now := time.Now().UTC()
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		name = GeneratedName(sequence, now)
	}

	p := domain.Protein{
		ID:              domain.ProteinID(domain.NewID()),
		Name:            name,
		Description:     description,
		MolecularWeight: a.MolecularWeight,
		SequenceLength:  a.SequenceLength,
		Checksum:        a.Checksum,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	fragments := make([]domain.Fragment, len(a.Fragments))
	for i, f := range a.Fragments {
		f.ID = domain.FragmentID(domain.NewID())
		f.ProteinID = p.ID
		f.CreatedAt = now
		motifs := make([]domain.Motif, len(f.Motifs))
		for j, m := range f.Motifs {
			m.ID = domain.MotifID(domain.NewID())
			m.FragmentID = f.ID
			motifs[j] = m
		}
		f.Motifs = motifs
		fragments[i] = f
	}

	if err := s.proteins.CreateProtein(ctx, domain.ProteinRecord{Protein: p, Fragments: fragments}); err != nil {
		return domain.Protein{}, nil, err
	}
	return p, fragments, nil
}

// GeneratedName returns the name given to proteins submitted without one.
func GeneratedName(sequence string, at time.Time) string {
	prefix := sequence
	if len(prefix) > generatedNamePrefix {
		prefix = prefix[:generatedNamePrefix]
	}
	return fmt.Sprintf("Protein_%s_%d", prefix, at.Unix())
}

// GetProtein returns the protein with id.
func (s *Service) GetProtein(ctx context.Context, id string) (domain.Protein, error) {
	pid, err := domain.ParseProteinID(id)
	if err != nil {
		return domain.Protein{}, err
	}
	return s.proteins.GetProtein(ctx, pid)
}

// ListProteins returns one page of proteins matching q.
func (s *Service) ListProteins(ctx context.Context, q domain.ProteinQuery) (domain.ProteinPage, error) {
	if q.Limit < 1 {
		return domain.ProteinPage{}, domain.Validationf("limit must be at least 1")
	}
	if q.Offset < 0 {
		return domain.ProteinPage{}, domain.Validationf("offset must not be negative")
	}
	return s.proteins.ListProteins(ctx, q)
}

// UpdateProtein changes name and/or description. At least one is required.
func (s *Service) UpdateProtein(
	ctx context.Context,
	id string,
	update domain.ProteinUpdate,
) (domain.Protein, error) {
	pid, err := domain.ParseProteinID(id)
	if err != nil {
		return domain.Protein{}, err
	}
	if update.Name != nil && *update.Name == "" {
		update.Name = nil
	}
	if update.Description != nil && *update.Description == "" {
		update.Description = nil
	}
	if update.Name == nil && update.Description == nil {
		return domain.Protein{}, domain.Validationf("provide at least one updatable field")
	}
	if update.Name != nil && utf8.RuneCountInString(*update.Name) > MaxNameLength {
		return domain.Protein{}, domain.Validationf("protein name exceeds %d characters", MaxNameLength)
	}
	if update.Description != nil && utf8.RuneCountInString(*update.Description) > MaxDescriptionLength {
		return domain.Protein{}, domain.Validationf("description exceeds %d characters", MaxDescriptionLength)
	}
	return s.proteins.UpdateProtein(ctx, pid, update)
}

// DeleteProtein removes the protein and everything derived from it.
func (s *Service) DeleteProtein(ctx context.Context, id string) error {
	pid, err := domain.ParseProteinID(id)
	if err != nil {
		return err
	}
	return s.proteins.DeleteProtein(ctx, pid)
}

// ListFragments returns the protein's fragments ordered by start position.
func (s *Service) ListFragments(ctx context.Context, id string) ([]domain.Fragment, error) {
	pid, err := domain.ParseProteinID(id)
	if err != nil {
		return nil, err
	}
	return s.proteins.ListFragments(ctx, pid)
}

// GetFragment returns one fragment with its motifs.
func (s *Service) GetFragment(ctx context.Context, id string) (domain.Fragment, error) {
	fid, err := domain.ParseFragmentID(id)
	if err != nil {
		return domain.Fragment{}, err
	}
	return s.proteins.GetFragment(ctx, fid)
}

// ReconstructSequence rebuilds the protein's sequence from its stored
// fragments. Residues after the last full fragment were never stored, so
// the result can be shorter than SequenceLength, and is empty for proteins
// shorter than one fragment.
func (s *Service) ReconstructSequence(ctx context.Context, id string) (domain.Protein, string, error) {
	p, err := s.GetProtein(ctx, id)
	if err != nil {
		return domain.Protein{}, "", err
	}
	frags, err := s.proteins.ListFragments(ctx, p.ID)
	if err != nil {
		return domain.Protein{}, "", err
	}
	return p, Merge(frags), nil
}

// Merge joins fragments ordered by start position, keeping each residue
// once where windows overlap.
func Merge(frags []domain.Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		covered := b.Len()
		skip := covered - (f.Start - 1)
		switch {
		case skip <= 0:
			b.WriteString(f.Sequence)
		case skip < len(f.Sequence):
			b.WriteString(f.Sequence[skip:])
		}
	}
	return b.String()
}

// PredictStructure predicts the secondary structure of the reconstructed
// sequence. It reports NotFound when the protein has no fragment data.
func (s *Service) PredictStructure(
	ctx context.Context,
	id string,
) (string, domain.StructurePrediction, error) {
	_, seq, err := s.ReconstructSequence(ctx, id)
	if err != nil {
		return "", domain.StructurePrediction{}, err
	}
	if seq == "" {
		return "", domain.StructurePrediction{}, domain.NotFoundf("no sequence data found for this protein")
	}
	return seq, structure.Predict(seq), nil
}

// ExportProtein writes a snapshot of one protein and returns its path.
func (s *Service) ExportProtein(ctx context.Context, id string) (string, error) {
	if s.snapshots == nil {
		return "", domain.StorageErr("export protein", fmt.Errorf("no snapshot store configured"))
	}
	p, err := s.GetProtein(ctx, id)
	if err != nil {
		return "", err
	}
	frags, err := s.proteins.ListFragments(ctx, p.ID)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	return s.snapshots.SaveSnapshot(domain.Snapshot{
		Metadata: domain.SnapshotMeta{Version: domain.SnapshotVersion, CreatedAt: now, UpdatedAt: now},
		Data:     domain.ProteinRecord{Protein: p, Fragments: frags},
	})
}

// Export writes a snapshot of every stored protein and returns the paths.
func (s *Service) Export(ctx context.Context) ([]string, error) {
	var paths []string
	q := domain.ProteinQuery{
		Sort:  domain.Sort{Field: domain.SortByCreatedAt},
		Limit: exportPageSize,
	}
	for {
		page, err := s.proteins.ListProteins(ctx, q)
		if err != nil {
			return paths, err
		}
		for _, p := range page.Proteins {
			path, err := s.ExportProtein(ctx, p.ID.String())
			if err != nil {
				return paths, fmt.Errorf("export %s: %w", p.ID, err)
			}
			paths = append(paths, path)
		}
		q.Offset += len(page.Proteins)
		if len(page.Proteins) == 0 || int64(q.Offset) >= page.Total {
			return paths, nil
		}
	}
}

var _ domain.ProteinService = (*Service)(nil)
