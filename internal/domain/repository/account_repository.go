package repository

import (
	"context"

	"lightmap/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountRepository reads the accounts markers are attributed to.
type AccountRepository interface {
	// FindAccountByID returns domainerrors.ErrAccountNotFound when absent.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.UserAccount, error)
}
