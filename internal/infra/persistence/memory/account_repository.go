package memory

import (
	"context"

	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	store *Store
}

// NewAccountRepository creates an account repository over the store.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

// FindAccountByID returns a copy of the stored account.
func (repo *accountRepository) FindAccountByID(_ context.Context, id uuid.UUID) (*entity.UserAccount, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	account, ok := repo.store.accounts[id]
	if !ok {
		return nil, domainerrors.ErrAccountNotFound
	}

	found := *account

	return &found, nil
}
