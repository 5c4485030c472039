package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightMarker_AddSubMarker(t *testing.T) {
	confirmedAt := time.Now()
	parent := NewLightMarker(Coordinate{Latitude: 1, Longitude: 1}, true)
	parent.ID = uuid.New()
	parent.ConfirmedAt = &confirmedAt

	sub := NewLightMarker(Coordinate{Latitude: 1, Longitude: 1}, false)
	sub.ID = uuid.New()
	sub.SubMarkerIDs = []uuid.UUID{uuid.New()}

	parent.AddSubMarker(sub)

	assert.False(t, parent.Illuminated)
	assert.Nil(t, parent.ConfirmedAt)
	assert.Equal(t, []uuid.UUID{sub.ID}, parent.SubMarkerIDs)
	require.NotNil(t, sub.ParentMarkerID)
	assert.Equal(t, parent.ID, *sub.ParentMarkerID)
	assert.Empty(t, sub.SubMarkerIDs)
	assert.False(t, sub.IsTopLevel())
	assert.True(t, parent.IsTopLevel())

	parent.AddSubMarker(sub)
	assert.Len(t, parent.SubMarkerIDs, 1, "merging the same observation twice keeps one id")
}

func TestLightMarker_RemoveSubMarker(t *testing.T) {
	parent := NewLightMarker(Coordinate{}, true)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	parent.SubMarkerIDs = append([]uuid.UUID(nil), ids...)

	assert.True(t, parent.RemoveSubMarker(ids[1]))
	assert.Equal(t, []uuid.UUID{ids[0], ids[2]}, parent.SubMarkerIDs)
	assert.False(t, parent.RemoveSubMarker(ids[1]))
}

func TestLightMarker_ToggleAndConfirm(t *testing.T) {
	m := NewLightMarker(Coordinate{}, true)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	m.Confirm(now)
	require.NotNil(t, m.ConfirmedAt)
	assert.Equal(t, now, *m.ConfirmedAt)

	m.Toggle()
	assert.False(t, m.Illuminated)
	assert.Nil(t, m.ConfirmedAt)
}

func TestLightMarker_Clone(t *testing.T) {
	owner := uuid.New()
	now := time.Now()
	m := NewLightMarker(Coordinate{Latitude: 3}, true)
	m.OwnerAccountID = &owner
	m.ConfirmedAt = &now
	m.SubMarkerIDs = []uuid.UUID{uuid.New()}

	c := m.Clone()
	c.SubMarkerIDs[0] = uuid.Nil
	*c.OwnerAccountID = uuid.Nil
	*c.ConfirmedAt = time.Time{}

	assert.NotEqual(t, uuid.Nil, m.SubMarkerIDs[0])
	assert.Equal(t, owner, *m.OwnerAccountID)
	assert.Equal(t, now, *m.ConfirmedAt)
	assert.True(t, m.IsOwnedBy(owner))
	assert.False(t, m.IsOwnedBy(uuid.New()))

	var nilMarker *LightMarker
	assert.Nil(t, nilMarker.Clone())
}
