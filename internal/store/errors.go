package store

import (
	"errors"

	"gorm.io/gorm"

	"protmotif/internal/domain"
)

// translate maps a gorm error to the domain error kinds. what names the
// record for not-found and conflict messages.
func translate(op, what string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFoundf("%s not found", what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.Conflictf("%s already exists", what)
	default:
		var de *domain.Error
		if errors.As(err, &de) {
			return err
		}
		return domain.StorageErr(op, err)
	}
}
