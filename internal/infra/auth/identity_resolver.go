package auth

import (
	"context"
	"log/slog"

	"lightmap/internal/domain/repository"
	"lightmap/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type accountIDKey struct{}

// WithAccountID stores the authenticated account id in ctx.
func WithAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID)
}

// AccountIDFromContext returns the account id stored by WithAccountID.
func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := ctx.Value(accountIDKey{}).(uuid.UUID)

	return accountID, ok && accountID != uuid.Nil
}

// IdentityResolverParams defines the required parameters
type IdentityResolverParams struct {
	fx.In

	Accounts repository.AccountRepository
	Logger   *slog.Logger
}

type identityResolver struct {
	accounts repository.AccountRepository
	logger   *slog.Logger
}

// NewIdentityResolver resolves the request's account from the authenticated context.
func NewIdentityResolver(params IdentityResolverParams) service.IdentityResolver {
	return &identityResolver{
		accounts: params.Accounts,
		logger:   params.Logger,
	}
}

// CurrentAccountID returns the authenticated account when it still exists.
// Any failure is logged and reported as anonymous.
func (r *identityResolver) CurrentAccountID(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := AccountIDFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}

	if _, err := r.accounts.FindAccountByID(ctx, accountID); err != nil {
		r.logger.WarnContext(ctx, "Identity resolution failed, continuing anonymously",
			slog.String("accountID", accountID.String()),
			slog.Any("error", err),
		)

		return uuid.Nil, false
	}

	return accountID, true
}
