package tileseed

import (
	"fmt"
	"math"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"gopkg.in/yaml.v3"
)

// NoZoom marks a box without tile semantics. Such a box has a tile count of
// zero and an empty tile list.
const NoZoom = -1

// regionNamePrecision is the geohash length used for fallback region names.
// 8 characters resolve to ~40m, more than enough to tell chart regions apart.
const regionNamePrecision = 8

// Box is a geographic bounding box with an optional tile zoom level and name.
//
// All operations expect Northeast.Lat >= Southwest.Lat and
// Northeast.Lng >= Southwest.Lng; this is not validated. Boxes crossing the
// antimeridian or the poles are not supported.
type Box struct {
	Northeast LatLng
	Southwest LatLng
	Zoom      int
	Name      string
}

// NewBox creates a box from its corners. Use NoZoom for boxes without tile
// semantics.
func NewBox(ne, sw LatLng, zoom int, name string) *Box {
	return &Box{Northeast: ne, Southwest: sw, Zoom: zoom, Name: name}
}

// rect maps the box onto the lng/lat plane (x = longitude, y = latitude).
func (b *Box) rect() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: b.Southwest.Lng, Hi: b.Northeast.Lng},
		Y: r1.Interval{Lo: b.Southwest.Lat, Hi: b.Northeast.Lat},
	}
}

// setRect writes the corners back from a plane rectangle.
func (b *Box) setRect(r r2.Rect) {
	b.Southwest = LatLng{Lat: r.Y.Lo, Lng: r.X.Lo}
	b.Northeast = LatLng{Lat: r.Y.Hi, Lng: r.X.Hi}
}

func (b *Box) String() string {
	return fmt.Sprintf("Box: ne=[%s],sw=[%s],z=%d", b.Northeast, b.Southwest, b.Zoom)
}

// Equal compares corners and zoom. Names are ignored.
func (b *Box) Equal(other *Box) bool {
	if other == nil {
		return false
	}
	return b.Southwest == other.Southwest &&
		b.Northeast == other.Northeast &&
		b.Zoom == other.Zoom
}

// Clone returns an independent copy of the box.
func (b *Box) Clone() *Box {
	c := *b
	return &c
}

// Intersection returns the overlap of both boxes, or nil if they do not
// overlap. Zero-area overlaps (shared edges or corners) count as no
// intersection. Zoom and name of the result are inherited from the receiver.
func (b *Box) Intersection(other *Box) *Box {
	in := b.rect().Intersection(other.rect())
	if !(in.X.Length() > 0 && in.Y.Length() > 0) {
		return nil
	}
	result := &Box{Zoom: b.Zoom, Name: b.Name}
	result.setRect(in)
	return result
}

// Extend grows the box in place to the bounding rectangle covering both
// boxes and reports whether anything changed. Extending by nil is a no-op.
func (b *Box) Extend(other *Box) bool {
	if other == nil {
		return false
	}
	old := b.rect()
	union := old.Union(other.rect())
	if union == old {
		return false
	}
	b.setRect(union)
	return true
}

// Contains reports whether other lies fully inside or on the edges of b.
func (b *Box) Contains(other *Box) bool {
	return b.rect().Contains(other.rect())
}

// Size returns dLat^2+dLng^2 as a cheap size proxy, or its square root when
// exact is true. Only meaningful for comparing boxes, not as a distance.
func (b *Box) Size(exact bool) float64 {
	s := b.rect().Size()
	d := s.X*s.X + s.Y*s.Y
	if !exact {
		return d
	}
	return math.Sqrt(d)
}

// Center returns the midpoint of the box.
func (b *Box) Center() LatLng {
	c := b.rect().Center()
	return LatLng{Lat: c.Y, Lng: c.X}
}

// NumTiles estimates the number of tiles covering the box at its zoom level.
// With roundDown the count omits the inclusive +1 padding per axis, which is
// what the merger uses when discounting overlaps. Returns 0 if the box has
// no zoom.
func (b *Box) NumTiles(roundDown bool) int {
	if b.Zoom < 0 {
		return 0
	}
	add := 1
	if roundDown {
		add = 0
	}
	nex, ney := TileXY(b.Northeast.Lat, b.Northeast.Lng, b.Zoom)
	swx, swy := TileXY(b.Southwest.Lat, b.Southwest.Lng, b.Zoom)
	xdiff := absInt(nex-swx) + add
	ydiff := absInt(ney-swy) + add
	return xdiff * ydiff
}

// TileList enumerates every tile covering the box at Zoom+zoomOffset.
// The list is materialized eagerly; do not call this for world-sized boxes
// at high zoom levels. Returns nil if the box has no zoom.
func (b *Box) TileList(zoomOffset int) []Tile {
	if b.Zoom < 0 {
		return nil
	}
	zoom := b.Zoom + zoomOffset
	nex, ney := TileXY(b.Northeast.Lat, b.Northeast.Lng, zoom)
	swx, swy := TileXY(b.Southwest.Lat, b.Southwest.Lng, zoom)
	var tiles []Tile
	for x := swx; x <= nex; x++ {
		// tile rows grow southward, so the northeast corner has the lower y
		for y := ney; y <= swy; y++ {
			tiles = append(tiles, Tile{X: x, Y: y, Z: zoom})
		}
	}
	return tiles
}

// MapproxyBounds returns the box as a mapproxy seed coverage bbox:
// [sw.lng, sw.lat, ne.lng, ne.lat].
func (b *Box) MapproxyBounds() []float64 {
	return []float64{b.Southwest.Lng, b.Southwest.Lat, b.Northeast.Lng, b.Northeast.Lat}
}

// RegionName returns the box name, falling back to a geohash of the box
// center for unnamed boxes so downstream coverage names stay stable.
func (b *Box) RegionName() string {
	if b.Name != "" {
		return b.Name
	}
	c := b.Center()
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, regionNamePrecision)
}

// boxDoc is the YAML wire form of a box. Corner and zoom keys come in
// several spellings depending on the upstream tool that produced the area
// definition (leaflet exports use _northEast/_southWest).
type boxDoc struct {
	NE        *LatLng `yaml:"ne"`
	Northeast *LatLng `yaml:"northeast"`
	LeafletNE *LatLng `yaml:"_northEast"`
	SW        *LatLng `yaml:"sw"`
	Southwest *LatLng `yaml:"southwest"`
	LeafletSW *LatLng `yaml:"_southWest"`
	Z         *int    `yaml:"z"`
	Zoom      *int    `yaml:"zoom"`
	Name      string  `yaml:"name"`
}

func firstCorner(candidates ...*LatLng) *LatLng {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// UnmarshalYAML decodes a box from any of the accepted key spellings; the
// first present key wins. Zoom is optional and defaults to NoZoom.
func (b *Box) UnmarshalYAML(value *yaml.Node) error {
	var doc boxDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	ne := firstCorner(doc.NE, doc.Northeast, doc.LeafletNE)
	if ne == nil {
		return fmt.Errorf("box: missing northeast corner (ne/northeast/_northEast)")
	}
	sw := firstCorner(doc.SW, doc.Southwest, doc.LeafletSW)
	if sw == nil {
		return fmt.Errorf("box: missing southwest corner (sw/southwest/_southWest)")
	}
	b.Northeast = *ne
	b.Southwest = *sw
	b.Zoom = NoZoom
	if doc.Z != nil {
		b.Zoom = *doc.Z
	} else if doc.Zoom != nil {
		b.Zoom = *doc.Zoom
	}
	b.Name = doc.Name
	return nil
}

// MarshalYAML encodes the box in its canonical wire form.
func (b *Box) MarshalYAML() (interface{}, error) {
	out := map[string]interface{}{
		"ne": b.Northeast,
		"sw": b.Southwest,
	}
	if b.Zoom >= 0 {
		out["zoom"] = b.Zoom
	} else {
		out["zoom"] = nil
	}
	return out, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
