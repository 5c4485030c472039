package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserAccount is the reporting account a marker can be attributed to.
// Accounts are created by the login flow, lightmap only reads them.
type UserAccount struct {
	ID         uuid.UUID
	FacebookID string
	Email      string
	Name       string
	Avatar     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
