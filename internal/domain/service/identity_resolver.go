// Package service declares the domain services lightmap depends on.
package service

import (
	"context"

	"github.com/google/uuid"
)

// IdentityResolver resolves the account behind the current request.
// It never fails: any missing session, bad token or lookup error yields ok=false
// and the caller carries on anonymously.
type IdentityResolver interface {
	CurrentAccountID(ctx context.Context) (accountID uuid.UUID, ok bool)
}
