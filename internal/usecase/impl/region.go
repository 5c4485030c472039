package impl

import (
	"lightmap/config"
	"lightmap/internal/domain/entity"
	"lightmap/internal/geo"

	"github.com/paulmach/orb/maptile"
)

// lockRegion derives the lock keys guarding writes near a coordinate. The
// merge engine and marker deletion share it so they serialize on the same cells.
type lockRegion struct {
	radius float64
	zoom   maptile.Zoom
}

func newLockRegion(cfg *config.Config) lockRegion {
	region := lockRegion{
		radius: entity.DefaultMergeRadiusMeters,
		zoom:   geo.DefaultCellZoom,
	}

	if markerCfg := cfg.Marker; markerCfg != nil {
		if markerCfg.MergeRadiusMeters > 0 {
			region.radius = markerCfg.MergeRadiusMeters
		}
		if markerCfg.LockZoom > 0 {
			region.zoom = maptile.Zoom(markerCfg.LockZoom)
		}
	}

	return region
}

func (r lockRegion) cells(c entity.Coordinate) []geo.Cell {
	return geo.CoveringCells(c, r.radius, r.zoom)
}
