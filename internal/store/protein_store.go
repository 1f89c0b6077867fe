package store

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"protmotif/internal/domain"
)

const insertBatch = 100

// ProteinDBStore persists proteins, fragments and motifs with gorm.
type ProteinDBStore struct {
	db *gorm.DB
}

// NewProteinDBStore returns a ProteinDBStore over db.
func NewProteinDBStore(db *gorm.DB) *ProteinDBStore {
	return &ProteinDBStore{db: db}
}

// CreateProtein inserts the protein, then every fragment and its motifs, in
// one transaction. Identifiers must already be assigned.
func (s *ProteinDBStore) CreateProtein(ctx context.Context, rec domain.ProteinRecord) error {
	protein := toProteinRow(rec.Protein)
	fragments := make([]fragmentRow, 0, len(rec.Fragments))
	var motifs []motifRow
	for _, f := range rec.Fragments {
		row, ms, err := toFragmentRow(rec.Protein.ID, f)
		if err != nil {
			return domain.StorageErr("encode fragment", err)
		}
		fragments = append(fragments, row)
		motifs = append(motifs, ms...)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&protein).Error; err != nil {
			return err
		}
		if len(fragments) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(&fragments, insertBatch).Error; err != nil {
				return err
			}
		}
		if len(motifs) > 0 {
			if err := tx.CreateInBatches(&motifs, insertBatch).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate("create protein", "protein", err)
}

// GetProtein returns the protein with id.
func (s *ProteinDBStore) GetProtein(ctx context.Context, id domain.ProteinID) (domain.Protein, error) {
	var row proteinRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id.String()).Error; err != nil {
		return domain.Protein{}, translate("get protein", "protein", err)
	}
	return row.toDomain(), nil
}

// UpdateProtein applies the non-nil fields of update and bumps UpdatedAt.
func (s *ProteinDBStore) UpdateProtein(
	ctx context.Context,
	id domain.ProteinID,
	update domain.ProteinUpdate,
) (domain.Protein, error) {
	var row proteinRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", id.String()).Error; err != nil {
			return err
		}
		changes := map[string]any{"updated_at": time.Now().UTC()}
		if update.Name != nil {
			changes["name"] = *update.Name
		}
		if update.Description != nil {
			changes["description"] = *update.Description
		}
		if err := tx.Model(&row).Updates(changes).Error; err != nil {
			return err
		}
		return tx.First(&row, "id = ?", id.String()).Error
	})
	if err != nil {
		return domain.Protein{}, translate("update protein", "protein", err)
	}
	return row.toDomain(), nil
}

// DeleteProtein removes the protein with its fragments and motifs. The
// cascade is done explicitly so it does not depend on the driver enforcing
// foreign keys.
func (s *ProteinDBStore) DeleteProtein(ctx context.Context, id domain.ProteinID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row proteinRow
		if err := tx.Select("id").First(&row, "id = ?", id.String()).Error; err != nil {
			return err
		}
		fragmentIDs := tx.Model(&fragmentRow{}).Select("id").Where("protein_id = ?", id.String())
		if err := tx.Where("fragment_id IN (?)", fragmentIDs).Delete(&motifRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("protein_id = ?", id.String()).Delete(&fragmentRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&proteinRow{}, "id = ?", id.String()).Error
	})
	return translate("delete protein", "protein", err)
}

// ListFragments returns the protein's fragments by start position, each with
// its motifs in scan order.
func (s *ProteinDBStore) ListFragments(ctx context.Context, id domain.ProteinID) ([]domain.Fragment, error) {
	db := s.db.WithContext(ctx)
	var exists int64
	if err := db.Model(&proteinRow{}).Where("id = ?", id.String()).Count(&exists).Error; err != nil {
		return nil, translate("list fragments", "protein", err)
	}
	if exists == 0 {
		return nil, domain.NotFoundf("protein not found")
	}

	var rows []fragmentRow
	err := db.Preload("Motifs", orderMotifs).
		Where("protein_id = ?", id.String()).
		Order("start_position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translate("list fragments", "fragment", err)
	}
	out := make([]domain.Fragment, 0, len(rows))
	for _, r := range rows {
		f, err := r.toDomain()
		if err != nil {
			return nil, domain.StorageErr("decode fragment", err)
		}
		out = append(out, f)
	}
	return out, nil
}

// GetFragment returns one fragment with its motifs.
func (s *ProteinDBStore) GetFragment(ctx context.Context, id domain.FragmentID) (domain.Fragment, error) {
	var row fragmentRow
	err := s.db.WithContext(ctx).Preload("Motifs", orderMotifs).First(&row, "id = ?", id.String()).Error
	if err != nil {
		return domain.Fragment{}, translate("get fragment", "fragment", err)
	}
	f, err := row.toDomain()
	if err != nil {
		return domain.Fragment{}, domain.StorageErr("decode fragment", err)
	}
	return f, nil
}

// Ping checks the database connection.
func (s *ProteinDBStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func orderMotifs(db *gorm.DB) *gorm.DB { return db.Order("ordinal ASC") }

// Compile-time assertion that ProteinDBStore implements domain.ProteinStore.
var _ domain.ProteinStore = (*ProteinDBStore)(nil)
