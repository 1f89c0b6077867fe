package store

import (
	"context"

	"gorm.io/gorm"

	"protmotif/internal/domain"
)

// UserDBStore persists API users.
type UserDBStore struct {
	db *gorm.DB
}

// NewUserDBStore returns a UserDBStore over db.
func NewUserDBStore(db *gorm.DB) *UserDBStore { return &UserDBStore{db: db} }

// CreateUser inserts user.
func (s *UserDBStore) CreateUser(ctx context.Context, user domain.User) error {
	row := userRow{ID: user.ID.String(), Name: user.Name, CreatedAt: user.CreatedAt}
	return translate("create user", "user", s.db.WithContext(ctx).Create(&row).Error)
}

// GetUser returns the user with id.
func (s *UserDBStore) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id.String()).Error; err != nil {
		return domain.User{}, translate("get user", "user", err)
	}
	return domain.User{ID: domain.UserID(row.ID), Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

// Compile-time assertion that UserDBStore implements domain.UserStore.
var _ domain.UserStore = (*UserDBStore)(nil)
