// Package geo maps coordinates onto web-mercator tiles used as lock regions.
package geo

import (
	"slices"

	"lightmap/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/maptile"
)

const (
	// DefaultCellZoom gives tiles of roughly 150m at the equator, wide enough
	// that a 20m radius touches at most four of them.
	DefaultCellZoom = 18

	// coverMargin widens the covered bound so rounding in the bound
	// computation never drops an edge tile.
	coverMargin = 1.1

	maxMercatorLatitude = 85.05112878
)

// Cell identifies one lock region.
type Cell struct {
	X, Y uint32
	Z    maptile.Zoom
}

// Key packs the cell into an int64, suitable for pg_advisory_xact_lock.
// X and Y get 28 bits each, so keys stay distinct up to zoom 28.
func (c Cell) Key() int64 {
	return int64(c.Z)<<56 | int64(c.X)<<28 | int64(c.Y)
}

// Point converts a coordinate to an orb point (lng, lat order).
func Point(c entity.Coordinate) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CellAt returns the cell containing the coordinate.
func CellAt(c entity.Coordinate, zoom maptile.Zoom) Cell {
	tile := tileAt(c.Longitude, c.Latitude, zoom)

	return Cell{X: tile.X, Y: tile.Y, Z: tile.Z}
}

// CoveringCells returns every cell that intersects the bound of radiusMeters
// around c, sorted by key. Two coordinates closer than radiusMeters always
// share at least one covering cell, because each covers the other's cell.
func CoveringCells(c entity.Coordinate, radiusMeters float64, zoom maptile.Zoom) []Cell {
	bound := orbgeo.NewBoundAroundPoint(Point(c), radiusMeters*coverMargin)

	minTile := tileAt(bound.Min.Lon(), bound.Max.Lat(), zoom)
	maxTile := tileAt(bound.Max.Lon(), bound.Min.Lat(), zoom)

	cells := make([]Cell, 0, 4)
	for _, x := range columns(minTile.X, maxTile.X, zoom) {
		for y := minTile.Y; y <= maxTile.Y; y++ {
			cells = append(cells, Cell{X: x, Y: y, Z: zoom})
		}
	}

	return SortCells(cells)
}

// tileAt wraps lng into [-180, 180), clamps lat to the mercator range and
// clamps the result to the tile grid.
func tileAt(lng, lat float64, zoom maptile.Zoom) maptile.Tile {
	for lng >= 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}

	lat = max(-maxMercatorLatitude, min(maxMercatorLatitude, lat))

	tile := maptile.At(orb.Point{lng, lat}, zoom)
	if last := uint32(1)<<zoom - 1; tile.X > last {
		tile.X = last
	}
	if last := uint32(1)<<zoom - 1; tile.Y > last {
		tile.Y = last
	}

	return tile
}

// columns lists tile columns from minX to maxX, wrapping past the
// antimeridian when minX is east of maxX.
func columns(minX, maxX uint32, zoom maptile.Zoom) []uint32 {
	if minX <= maxX {
		xs := make([]uint32, 0, maxX-minX+1)
		for x := minX; x <= maxX; x++ {
			xs = append(xs, x)
		}

		return xs
	}

	last := uint32(1)<<zoom - 1
	xs := make([]uint32, 0, last-minX+maxX+2)
	for x := minX; x <= last; x++ {
		xs = append(xs, x)
	}
	for x := uint32(0); x <= maxX; x++ {
		xs = append(xs, x)
	}

	return xs
}

// SortCells orders cells by key and removes duplicates. Locks are always
// taken in this order.
func SortCells(cells []Cell) []Cell {
	slices.SortFunc(cells, func(a, b Cell) int {
		switch ka, kb := a.Key(), b.Key(); {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})

	return slices.Compact(cells)
}

// Keys returns the lock keys of cells in order.
func Keys(cells []Cell) []int64 {
	keys := make([]int64, len(cells))
	for i, cell := range cells {
		keys[i] = cell.Key()
	}

	return keys
}
