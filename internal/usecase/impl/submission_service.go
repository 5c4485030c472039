package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lightmap/internal/delivery/context"
	"lightmap/internal/domain/entity"
	"lightmap/internal/domain/service"
	"lightmap/internal/infra/metrics"
	"lightmap/internal/usecase"
)

type submissionService struct {
	engine    usecase.MergeEngine
	identity  service.IdentityResolver
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewSubmissionService creates the submission service. A nil publisher disables marker events.
func NewSubmissionService(
	engine usecase.MergeEngine,
	identity service.IdentityResolver,
	publisher service.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.SubmissionUsecase {
	return &submissionService{
		engine:    engine,
		identity:  identity,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// AddObservation stores the observation for the current caller, or
// anonymously when the caller cannot be resolved.
func (s *submissionService) AddObservation(ctx context.Context, input *usecase.SubmitObservationInput) (*entity.LightMarker, error) {
	coordinate, err := entity.NewCoordinate(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	observation := entity.NewLightMarker(coordinate, input.Illuminated)
	if accountID, ok := s.identity.CurrentAccountID(ctx); ok {
		observation.OwnerAccountID = &accountID
	}

	marker, err := s.engine.Submit(ctx, observation)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, marker, observation)

	return marker, nil
}

// publish announces the stored observation. Failures are logged only.
func (s *submissionService) publish(ctx context.Context, marker, observation *entity.LightMarker) {
	if s.publisher == nil {
		return
	}

	eventType := service.MarkerEventCreated
	if observation.ParentMarkerID != nil {
		eventType = service.MarkerEventMerged
	}

	event := &service.MarkerEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Type:           eventType,
		MarkerID:       marker.ID.String(),
		ObservationID:  observation.ID.String(),
		Latitude:       marker.Coordinate.Latitude,
		Longitude:      marker.Coordinate.Longitude,
		Illuminated:    marker.Illuminated,
		ConfirmedAt:    marker.ConfirmedAt,
		SubMarkerCount: len(marker.SubMarkerIDs),
		OccurredAt:     time.Now().UTC(),
	}

	if err := s.publisher.PublishMarkerEvent(ctx, event); err != nil {
		s.metrics.IncEventPublishErrors()
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to publish marker event",
			slog.String("type", event.Type),
			slog.String("markerID", event.MarkerID),
			slog.Any("error", err),
		)
	}
}
