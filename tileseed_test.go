package tileseed

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type BoxSuite struct{}

var _ = Suite(&BoxSuite{})

func box(swLat, swLng, neLat, neLng float64, zoom int, name string) *Box {
	return NewBox(LatLng{Lat: neLat, Lng: neLng}, LatLng{Lat: swLat, Lng: swLng}, zoom, name)
}

func (s *BoxSuite) TestIntersectionIdentity(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	r := a.Intersection(a)
	c.Assert(r, Not(IsNil))
	c.Assert(r.Equal(a), Equals, true)
	c.Assert(r.Name, Equals, "a")
}

func (s *BoxSuite) TestIntersectionCommutesModuloInheritance(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	b := box(15, 15, 30, 30, 8, "b")

	ab := a.Intersection(b)
	ba := b.Intersection(a)
	c.Assert(ab, Not(IsNil))
	c.Assert(ba, Not(IsNil))
	// same rectangle either way
	c.Assert(ab.Northeast, Equals, ba.Northeast)
	c.Assert(ab.Southwest, Equals, ba.Southwest)
	// zoom and name always come from the receiver
	c.Assert(ab.Zoom, Equals, 5)
	c.Assert(ab.Name, Equals, "a")
	c.Assert(ba.Zoom, Equals, 8)
	c.Assert(ba.Name, Equals, "b")
}

func (s *BoxSuite) TestIntersectionDisjoint(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	b := box(30, 30, 40, 40, 5, "b")
	c.Assert(a.Intersection(b), IsNil)
}

func (s *BoxSuite) TestIntersectionTouchingEdgeIsAbsent(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	b := box(10, 20, 20, 30, 5, "b") // shares the lng=20 edge
	c.Assert(a.Intersection(b), IsNil)
}

func (s *BoxSuite) TestIntersectionDegenerateBox(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	empty := box(15, 15, 15, 15, 5, "empty")
	c.Assert(a.Intersection(empty), IsNil)
	c.Assert(empty.Intersection(a), IsNil)
}

func (s *BoxSuite) TestExtendThenContains(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	b := box(5, 15, 25, 40, 5, "b")
	changed := a.Extend(b)
	c.Assert(changed, Equals, true)
	c.Assert(a.Contains(b), Equals, true)
	c.Assert(a.Southwest, Equals, LatLng{Lat: 5, Lng: 10})
	c.Assert(a.Northeast, Equals, LatLng{Lat: 25, Lng: 40})
}

func (s *BoxSuite) TestExtendNoChange(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	inner := box(12, 12, 18, 18, 5, "inner")
	c.Assert(a.Extend(inner), Equals, false)
	c.Assert(a.Equal(box(10, 10, 20, 20, 5, "")), Equals, true)
}

func (s *BoxSuite) TestExtendNilIsNoop(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	c.Assert(a.Extend(nil), Equals, false)
}

func (s *BoxSuite) TestContains(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	c.Assert(a.Contains(box(12, 12, 18, 18, 5, "")), Equals, true)
	c.Assert(a.Contains(a.Clone()), Equals, true) // equal boxes contain each other
	c.Assert(a.Contains(box(12, 12, 21, 18, 5, "")), Equals, false)
	c.Assert(box(12, 12, 18, 18, 5, "").Contains(a), Equals, false)
}

func (s *BoxSuite) TestCloneIsIndependent(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	b := a.Clone()
	b.Extend(box(0, 0, 30, 30, 5, ""))
	c.Assert(a.Equal(box(10, 10, 20, 20, 5, "")), Equals, true)
	c.Assert(b.Equal(a), Equals, false)
}

func (s *BoxSuite) TestSize(c *C) {
	a := box(10, 10, 13, 14, 5, "a") // dLat=3, dLng=4
	c.Assert(a.Size(false), Equals, 25.0)
	c.Assert(a.Size(true), Equals, 5.0)
}

func (s *BoxSuite) TestEqualIgnoresName(c *C) {
	a := box(10, 10, 20, 20, 5, "a")
	b := box(10, 10, 20, 20, 5, "b")
	c.Assert(a.Equal(b), Equals, true)
	c.Assert(a.Equal(box(10, 10, 20, 20, 6, "a")), Equals, false)
	c.Assert(a.Equal(nil), Equals, false)
}

func (s *BoxSuite) TestCenter(c *C) {
	a := box(10, 10, 20, 30, 5, "a")
	c.Assert(a.Center(), Equals, LatLng{Lat: 15, Lng: 20})
}

func (s *BoxSuite) TestCloseTo(c *C) {
	p := LatLng{Lat: 10, Lng: 20}
	c.Assert(p.CloseTo(LatLng{Lat: 10.05, Lng: 19.95}, 0.1), Equals, true)
	c.Assert(p.CloseTo(LatLng{Lat: 10.2, Lng: 20}, 0.1), Equals, false)
	c.Assert(p.CloseTo(LatLng{Lat: 10, Lng: 20.2}, 0.1), Equals, false)
}
