// Package tileseed computes tile-seeding plans for map pre-fetch jobs.
//
// Given a catalog of named chart boxes (each tagged with a tile zoom level)
// and a set of areas of interest, it produces per-zoom-level rectangular
// regions covering the requested portions of the catalog together with an
// estimate of the number of slippy-map tiles a seed job over those regions
// would fetch. Overlapping catalog entries at the same zoom level are
// deduplicated so tiles are not counted once per overlapping chart sheet.
package tileseed

import (
	"fmt"
	"math"
)

// LatLng is a geographic coordinate in degrees (WGS 84).
type LatLng struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

func (ll LatLng) String() string {
	return fmt.Sprintf("lat=%f,lon=%f", ll.Lat, ll.Lng)
}

// CloseTo reports whether both coordinates of other are within maxDiff.
func (ll LatLng) CloseTo(other LatLng, maxDiff float64) bool {
	if math.Abs(ll.Lat-other.Lat) > maxDiff {
		return false
	}
	if math.Abs(ll.Lng-other.Lng) > maxDiff {
		return false
	}
	return true
}

// Tile is one cell of the XYZ tiling scheme (Tiled web map).
type Tile struct {
	X int
	Y int
	Z int
}

// TileXY converts a coordinate to tile indices at the given zoom level using
// the standard Web-Mercator tile numbering:
//
//	x = floor((lng+180)/360 * 2^zoom)
//	y = floor((1 - asinh(tan(lat))/pi)/2 * 2^zoom)
//
// Coordinates outside the Web-Mercator latitude range or at the antimeridian
// are not clamped; callers are expected to stay within normal chart bounds.
func TileXY(lat, lng float64, zoom int) (x, y int) {
	n := math.Exp2(float64(zoom))
	latRad := lat * math.Pi / 180.0
	x = int(math.Floor((lng + 180.0) / 360.0 * n))
	y = int(math.Floor((1.0 - math.Asinh(math.Tan(latRad))/math.Pi) / 2.0 * n))
	return x, y
}
