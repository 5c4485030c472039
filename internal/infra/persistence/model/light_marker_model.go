package model

import (
	"time"

	"github.com/google/uuid"
)

// LightMarkerModel mirrors the 'light_markers' table. Sub-markers point at their
// parent through ParentMarkerID and keep their attach order in MergeOrder.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type LightMarkerModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	Latitude       float64    `gorm:"not null;index:idx_light_markers_on_latitude"`
	Longitude      float64    `gorm:"not null"`
	Illuminated    bool       `gorm:"not null;default:false"`
	ConfirmedAt    *time.Time
	ParentMarkerID *uuid.UUID `gorm:"type:uuid;index:idx_light_markers_on_parent"`
	MergeOrder     int        `gorm:"not null;default:0"`
	OwnerAccountID *uuid.UUID `gorm:"type:uuid;index"`
	Version        int64      `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LightMarkerModel) TableName() string {
	return "light_markers"
}
