package postgres

import (
	"context"

	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/repository"
	"lightmap/internal/errors"
	"lightmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindAccountByID retrieves an account by its unique ID.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.UserAccount, error) {
	var accountM model.UserAccountModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return &entity.UserAccount{
		ID:         accountM.ID,
		FacebookID: accountM.FacebookID,
		Email:      accountM.Email,
		Name:       accountM.Name,
		Avatar:     accountM.Avatar,
		CreatedAt:  accountM.CreatedAt,
		UpdatedAt:  accountM.UpdatedAt,
	}, nil
}
