package service

import (
	"context"
	"time"
)

// Marker event types.
const (
	MarkerEventCreated = "marker.created"
	MarkerEventMerged  = "marker.merged"
)

// MarkerEvent announces a stored observation to downstream consumers
// (map tile refresh, KML regeneration).
type MarkerEvent struct {
	RequestID      string     `json:"request_id,omitempty"` // For distributed tracing
	Type           string     `json:"type"`
	MarkerID       string     `json:"marker_id"`
	ObservationID  string     `json:"observation_id"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Illuminated    bool       `json:"illuminated"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`
	SubMarkerCount int        `json:"sub_marker_count"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarkerEvent publishes a marker event for async consumers
	PublishMarkerEvent(ctx context.Context, event *MarkerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
