package model

import (
	"time"

	"github.com/google/uuid"
)

// UserAccountModel mirrors the 'user_accounts' table.
type UserAccountModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	FacebookID string    `gorm:"type:varchar(64);uniqueIndex"`
	Email      string    `gorm:"type:varchar(255)"`
	Name       string    `gorm:"type:varchar(100)"`
	Avatar     string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAccountModel) TableName() string {
	return "user_accounts"
}

// All returns every model managed by lightmap, in migration order.
func All() []any {
	return []any{
		&UserAccountModel{},
		&LightMarkerModel{},
	}
}
