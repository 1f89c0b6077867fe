package interfaces

import (
	"context"

	domaintypes "protmotif/internal/domain/types"
)

// ProteinStore persists proteins together with their fragments and motifs.
type ProteinStore interface {
	// CreateProtein writes the protein, every fragment and every motif as
	// one unit. On error nothing is visible.
	CreateProtein(ctx context.Context, rec domaintypes.ProteinRecord) error
	GetProtein(ctx context.Context, id domaintypes.ProteinID) (domaintypes.Protein, error)
	UpdateProtein(
		ctx context.Context,
		id domaintypes.ProteinID,
		update domaintypes.ProteinUpdate,
	) (domaintypes.Protein, error)
	DeleteProtein(ctx context.Context, id domaintypes.ProteinID) error
	ListProteins(ctx context.Context, q domaintypes.ProteinQuery) (domaintypes.ProteinPage, error)

	// ListFragments returns the protein's fragments ordered by start position.
	ListFragments(ctx context.Context, id domaintypes.ProteinID) ([]domaintypes.Fragment, error)
	GetFragment(ctx context.Context, id domaintypes.FragmentID) (domaintypes.Fragment, error)
}

// UserStore resolves API callers.
type UserStore interface {
	CreateUser(ctx context.Context, user domaintypes.User) error
	GetUser(ctx context.Context, id domaintypes.UserID) (domaintypes.User, error)
}

// SnapshotStore keeps exported protein snapshots outside the database.
type SnapshotStore interface {
	SaveSnapshot(snap domaintypes.Snapshot) (string, error)
	LoadSnapshot(id domaintypes.ProteinID) (domaintypes.Snapshot, error)
	ListSnapshots() ([]domaintypes.ProteinID, error)
}
