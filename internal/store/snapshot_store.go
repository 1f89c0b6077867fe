package store

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"protmotif/internal/domain"
)

const (
	snapshotDir  = "proteins"
	snapshotExt  = ".json"
	snapshotMode = 0o644
)

// SnapshotFileStore writes protein snapshots as JSON files under dir.
type SnapshotFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSnapshotFileStore returns a SnapshotFileStore rooted at dir.
func NewSnapshotFileStore(dir string) *SnapshotFileStore {
	return &SnapshotFileStore{dir: dir}
}

// Dir returns the directory snapshots are written to.
func (s *SnapshotFileStore) Dir() string { return filepath.Join(s.dir, snapshotDir) }

// SaveSnapshot writes snap to proteins/<id>.json and returns the path. An
// existing snapshot keeps its first CreatedAt.
func (s *SnapshotFileStore) SaveSnapshot(snap domain.Snapshot) (string, error) {
	id := snap.Data.Protein.ID
	if _, err := domain.ParseProteinID(id.String()); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(id)
	var prev domain.Snapshot
	found, err := readJSON(path, &prev)
	if err != nil {
		return "", domain.StorageErr("read snapshot", err)
	}
	if found && !prev.Metadata.CreatedAt.IsZero() {
		snap.Metadata.CreatedAt = prev.Metadata.CreatedAt
	}
	if snap.Metadata.Version == "" {
		snap.Metadata.Version = domain.SnapshotVersion
	}
	if err := writeJSON(path, snap, snapshotMode); err != nil {
		return "", domain.StorageErr("write snapshot", err)
	}
	return path, nil
}

// LoadSnapshot reads the snapshot for id.
func (s *SnapshotFileStore) LoadSnapshot(id domain.ProteinID) (domain.Snapshot, error) {
	if _, err := domain.ParseProteinID(id.String()); err != nil {
		return domain.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var snap domain.Snapshot
	found, err := readJSON(s.path(id), &snap)
	if err != nil {
		return domain.Snapshot{}, domain.StorageErr("read snapshot", err)
	}
	if !found {
		return domain.Snapshot{}, domain.NotFoundf("snapshot not found")
	}
	return snap, nil
}

// ListSnapshots returns the protein IDs that have a snapshot, sorted.
func (s *SnapshotFileStore) ListSnapshots() ([]domain.ProteinID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.Dir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StorageErr("list snapshots", err)
	}
	var ids []domain.ProteinID
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		ids = append(ids, domain.ProteinID(strings.TrimSuffix(name, snapshotExt)))
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *SnapshotFileStore) path(id domain.ProteinID) string {
	return filepath.Join(s.Dir(), id.String()+snapshotExt)
}

// Compile-time assertion that SnapshotFileStore implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*SnapshotFileStore)(nil)
