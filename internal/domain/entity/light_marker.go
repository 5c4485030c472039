package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// LightMarker is a single observation of a street light at a coordinate.
// Top-level markers (no parent) are the canonical record for a location;
// observations merged into them are kept as sub-markers.
type LightMarker struct {
	ID             uuid.UUID   // Assigned by persistence when nil.
	Coordinate     Coordinate  // Where the light was observed.
	Illuminated    bool        // Whether the light was on.
	ConfirmedAt    *time.Time  // Set by Confirm, cleared by any merge or toggle.
	ParentMarkerID *uuid.UUID  // Non-nil for sub-markers.
	SubMarkerIDs   []uuid.UUID // Ordered ids of merged observations.
	OwnerAccountID *uuid.UUID  // Reporting account, nil for anonymous reports.
	Version        int64       // Optimistic concurrency counter maintained by persistence.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLightMarker creates a transient top-level observation.
func NewLightMarker(coordinate Coordinate, illuminated bool) *LightMarker {
	return &LightMarker{
		Coordinate:  coordinate,
		Illuminated: illuminated,
	}
}

// IsTopLevel reports whether the marker takes part in proximity matching.
func (m *LightMarker) IsTopLevel() bool {
	return m.ParentMarkerID == nil
}

// AddSubMarker merges sub into m. The parent takes the incoming illumination
// state and loses any previous confirmation.
func (m *LightMarker) AddSubMarker(sub *LightMarker) {
	parentID := m.ID
	sub.ParentMarkerID = &parentID
	sub.SubMarkerIDs = nil

	if sub.ID != uuid.Nil && !slices.Contains(m.SubMarkerIDs, sub.ID) {
		m.SubMarkerIDs = append(m.SubMarkerIDs, sub.ID)
	}

	m.Illuminated = sub.Illuminated
	m.ConfirmedAt = nil
}

// RemoveSubMarker detaches the sub-marker id from m, keeping the order of the rest.
func (m *LightMarker) RemoveSubMarker(id uuid.UUID) bool {
	idx := slices.Index(m.SubMarkerIDs, id)
	if idx < 0 {
		return false
	}
	m.SubMarkerIDs = slices.Delete(m.SubMarkerIDs, idx, idx+1)

	return true
}

// Toggle flips the illumination state and invalidates the confirmation.
func (m *LightMarker) Toggle() {
	m.Illuminated = !m.Illuminated
	m.ConfirmedAt = nil
}

// Confirm marks the current state as verified at now.
func (m *LightMarker) Confirm(now time.Time) {
	confirmedAt := now
	m.ConfirmedAt = &confirmedAt
}

// IsOwnedBy reports whether accountID reported the marker.
func (m *LightMarker) IsOwnedBy(accountID uuid.UUID) bool {
	return m.OwnerAccountID != nil && *m.OwnerAccountID == accountID
}

// Clone returns a deep copy so stores never share slices or pointers with callers.
func (m *LightMarker) Clone() *LightMarker {
	if m == nil {
		return nil
	}

	cloned := *m
	cloned.SubMarkerIDs = slices.Clone(m.SubMarkerIDs)
	if m.ConfirmedAt != nil {
		confirmedAt := *m.ConfirmedAt
		cloned.ConfirmedAt = &confirmedAt
	}
	if m.ParentMarkerID != nil {
		parentID := *m.ParentMarkerID
		cloned.ParentMarkerID = &parentID
	}
	if m.OwnerAccountID != nil {
		ownerID := *m.OwnerAccountID
		cloned.OwnerAccountID = &ownerID
	}

	return &cloned
}
