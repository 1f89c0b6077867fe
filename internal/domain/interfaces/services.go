package interfaces

import (
	"context"

	domaintypes "protmotif/internal/domain/types"
)

// AnalysisService runs the pure analysis pipeline.
type AnalysisService interface {
	Analyze(sequence string) (domaintypes.Analysis, error)
	PredictStructure(sequence string) (domaintypes.StructurePrediction, error)
	ScanMotifs(sequence string) ([]domaintypes.Motif, error)
}

// ProteinService implements the protein use cases on top of a store.
type ProteinService interface {
	SubmitProtein(
		ctx context.Context,
		sequence, name, description string,
	) (domaintypes.Protein, []domaintypes.Fragment, error)
	GetProtein(ctx context.Context, id string) (domaintypes.Protein, error)
	ListProteins(ctx context.Context, q domaintypes.ProteinQuery) (domaintypes.ProteinPage, error)
	UpdateProtein(
		ctx context.Context,
		id string,
		update domaintypes.ProteinUpdate,
	) (domaintypes.Protein, error)
	DeleteProtein(ctx context.Context, id string) error
	ListFragments(ctx context.Context, id string) ([]domaintypes.Fragment, error)
	GetFragment(ctx context.Context, id string) (domaintypes.Fragment, error)
	ReconstructSequence(ctx context.Context, id string) (domaintypes.Protein, string, error)
	PredictStructure(
		ctx context.Context,
		id string,
	) (string, domaintypes.StructurePrediction, error)
}
