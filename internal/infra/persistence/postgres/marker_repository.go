package postgres

import (
	"context"
	"fmt"
	"math"
	"time"

	"lightmap/internal/domain/entity"
	domainerrors "lightmap/internal/domain/errors"
	"lightmap/internal/domain/repository"
	"lightmap/internal/errors"
	"lightmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// distanceSQL is the law-of-cosines distance between the bound point and a row.
// The clamp functions are LEAST/GREATEST on PostgreSQL and MIN/MAX on SQLite.
const distanceSQL = "? * acos(%s(1, %s(-1, " +
	"sin(radians(?)) * sin(radians(latitude)) + " +
	"cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)))))"

// markerRepository implements the domain.MarkerRepository interface.
type markerRepository struct {
	db *gorm.DB
}

// nearestRow is a light_markers row with its computed distance.
type nearestRow struct {
	model.LightMarkerModel `gorm:"embedded"`

	Distance float64
}

type childRow struct {
	ID             uuid.UUID
	ParentMarkerID uuid.UUID
}

// NewMarkerRepository is the constructor for markerRepository.
func NewMarkerRepository(db *gorm.DB) repository.MarkerRepository {
	return &markerRepository{db: db}
}

// FindNearestTopLevelMarker evaluates the distance server-side and returns the closest match.
func (repo *markerRepository) FindNearestTopLevelMarker(ctx context.Context, target entity.Coordinate, maxDistanceMeters float64) (*repository.NearestMarker, error) {
	least, greatest := "LEAST", "GREATEST"
	if isSQLite(repo.db) {
		least, greatest = "MIN", "MAX"
	}
	distance := fmt.Sprintf(distanceSQL, least, greatest)

	// Cheap index-backed filter: a point within maxDistance is within this many degrees of latitude.
	band := maxDistanceMeters / entity.EarthRadiusMeters * 180 / math.Pi

	candidates := repo.db.WithContext(ctx).
		Model(&model.LightMarkerModel{}).
		Select("*, "+distance+" AS distance",
			entity.EarthRadiusMeters, target.Latitude, target.Latitude, target.Longitude).
		Where("parent_marker_id IS NULL").
		Where("latitude BETWEEN ? AND ?", target.Latitude-band, target.Latitude+band)

	var row nearestRow
	result := repo.db.WithContext(ctx).
		Table("(?) AS candidates", candidates).
		Where("distance < ?", maxDistanceMeters).
		Order("distance ASC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find nearest marker")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	marker := toMarkerDomain(&row.LightMarkerModel)
	if err := repo.attachSubMarkerIDs(ctx, marker); err != nil {
		return nil, err
	}

	return &repository.NearestMarker{Marker: marker, DistanceMeters: row.Distance}, nil
}

// CreateMarker inserts a marker. Sub-markers are appended after their parent's existing children.
func (repo *markerRepository) CreateMarker(ctx context.Context, marker *entity.LightMarker) error {
	if marker.ID == uuid.Nil {
		marker.ID = uuid.New()
	}

	markerM := fromMarkerDomain(marker)
	markerM.Version = 1

	if marker.ParentMarkerID != nil {
		var last int
		err := repo.db.WithContext(ctx).
			Model(&model.LightMarkerModel{}).
			Select("COALESCE(MAX(merge_order), 0)").
			Where("parent_marker_id = ?", *marker.ParentMarkerID).
			Scan(&last).Error
		if err != nil {
			return toWriteError(err, "failed to read sub-marker order")
		}
		markerM.MergeOrder = last + 1
	}

	if err := repo.db.WithContext(ctx).Create(markerM).Error; err != nil {
		return toWriteError(err, "failed to create marker")
	}

	marker.Version = markerM.Version
	marker.CreatedAt = markerM.CreatedAt
	marker.UpdatedAt = markerM.UpdatedAt

	return nil
}

// UpdateMarker writes the marker state guarded by its version.
func (repo *markerRepository) UpdateMarker(ctx context.Context, marker *entity.LightMarker) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.LightMarkerModel{}).
		Where("id = ? AND version = ?", marker.ID, marker.Version).
		Updates(map[string]any{
			"latitude":         marker.Coordinate.Latitude,
			"longitude":        marker.Coordinate.Longitude,
			"illuminated":      marker.Illuminated,
			"confirmed_at":     marker.ConfirmedAt,
			"parent_marker_id": marker.ParentMarkerID,
			"owner_account_id": marker.OwnerAccountID,
			"version":          gorm.Expr("version + 1"),
			"updated_at":       now,
		})
	if result.Error != nil {
		return toWriteError(result.Error, "failed to update marker")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.findModel(ctx, marker.ID); err != nil {
			if errors.Is(err, domainerrors.ErrMarkerNotFound) {
				return domainerrors.ErrMergeRaceDetected.WrapMessage(
					fmt.Sprintf("marker %s deleted since version %d", marker.ID, marker.Version))
			}

			return err
		}

		return domainerrors.ErrMergeRaceDetected.WrapMessage(
			fmt.Sprintf("marker %s changed since version %d", marker.ID, marker.Version))
	}

	marker.Version++
	marker.UpdatedAt = now

	return nil
}

// FindMarkerByID retrieves a marker by its unique ID.
func (repo *markerRepository) FindMarkerByID(ctx context.Context, id uuid.UUID) (*entity.LightMarker, error) {
	markerM, err := repo.findModel(ctx, id)
	if err != nil {
		return nil, err
	}

	marker := toMarkerDomain(markerM)
	if err := repo.attachSubMarkerIDs(ctx, marker); err != nil {
		return nil, err
	}

	return marker, nil
}

// FindMarkersInBoundary lists top-level markers inside the box, oldest first.
func (repo *markerRepository) FindMarkersInBoundary(ctx context.Context, boundary entity.Boundary) ([]*entity.LightMarker, error) {
	query := repo.db.WithContext(ctx).
		Where("parent_marker_id IS NULL").
		Where("latitude BETWEEN ? AND ?", boundary.SouthWest.Latitude, boundary.NorthEast.Latitude)

	if boundary.CrossesAntimeridian() {
		query = query.Where("(longitude >= ? OR longitude <= ?)", boundary.SouthWest.Longitude, boundary.NorthEast.Longitude)
	} else {
		query = query.Where("longitude BETWEEN ? AND ?", boundary.SouthWest.Longitude, boundary.NorthEast.Longitude)
	}

	var markerModels []*model.LightMarkerModel
	if err := query.Order("created_at ASC").Find(&markerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find markers in boundary")
	}

	markers := make([]*entity.LightMarker, 0, len(markerModels))
	for _, markerM := range markerModels {
		markers = append(markers, toMarkerDomain(markerM))
	}

	if err := repo.attachSubMarkerIDs(ctx, markers...); err != nil {
		return nil, err
	}

	return markers, nil
}

// DeleteMarker removes the marker and its sub-markers. Deleting a sub-marker
// bumps its parent's version because the parent's sub-marker list changed.
func (repo *markerRepository) DeleteMarker(ctx context.Context, id uuid.UUID) error {
	markerM, err := repo.findModel(ctx, id)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Where("id = ? OR parent_marker_id = ?", id, id).
		Delete(&model.LightMarkerModel{}).Error
	if err != nil {
		return toWriteError(err, "failed to delete marker")
	}

	if markerM.ParentMarkerID == nil {
		return nil
	}

	err = repo.db.WithContext(ctx).
		Model(&model.LightMarkerModel{}).
		Where("id = ?", *markerM.ParentMarkerID).
		Updates(map[string]any{
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return toWriteError(err, "failed to detach sub-marker")
	}

	return nil
}

// LockCells takes transaction-scoped advisory locks on PostgreSQL.
// Keys must be sorted so that concurrent transactions lock in the same order.
func (repo *markerRepository) LockCells(ctx context.Context, keys []int64) error {
	if isSQLite(repo.db) {
		// SQLite serializes writers on its own.
		return nil
	}

	for _, key := range keys {
		if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", key).Error; err != nil {
			return toWriteError(err, "failed to lock marker region")
		}
	}

	return nil
}

func (repo *markerRepository) findModel(ctx context.Context, id uuid.UUID) (*model.LightMarkerModel, error) {
	var markerM model.LightMarkerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&markerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMarkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find marker by ID")
	}

	return &markerM, nil
}

// attachSubMarkerIDs fills SubMarkerIDs of the given markers in attach order.
func (repo *markerRepository) attachSubMarkerIDs(ctx context.Context, markers ...*entity.LightMarker) error {
	if len(markers) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*entity.LightMarker, len(markers))
	parentIDs := make([]uuid.UUID, 0, len(markers))
	for _, marker := range markers {
		byID[marker.ID] = marker
		parentIDs = append(parentIDs, marker.ID)
	}

	var children []childRow
	err := repo.db.WithContext(ctx).
		Model(&model.LightMarkerModel{}).
		Select("id, parent_marker_id").
		Where("parent_marker_id IN ?", parentIDs).
		Order("merge_order ASC, created_at ASC").
		Scan(&children).Error
	if err != nil {
		return errors.Wrap(err, "failed to load sub-markers")
	}

	for _, child := range children {
		if parent, ok := byID[child.ParentMarkerID]; ok {
			parent.SubMarkerIDs = append(parent.SubMarkerIDs, child.ID)
		}
	}

	return nil
}

func toMarkerDomain(data *model.LightMarkerModel) *entity.LightMarker {
	return &entity.LightMarker{
		ID: data.ID,
		Coordinate: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Illuminated:    data.Illuminated,
		ConfirmedAt:    data.ConfirmedAt,
		ParentMarkerID: data.ParentMarkerID,
		OwnerAccountID: data.OwnerAccountID,
		Version:        data.Version,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromMarkerDomain(data *entity.LightMarker) *model.LightMarkerModel {
	return &model.LightMarkerModel{
		ID:             data.ID,
		Latitude:       data.Coordinate.Latitude,
		Longitude:      data.Coordinate.Longitude,
		Illuminated:    data.Illuminated,
		ConfirmedAt:    data.ConfirmedAt,
		ParentMarkerID: data.ParentMarkerID,
		OwnerAccountID: data.OwnerAccountID,
		Version:        data.Version,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
