package tileseed

// Grouped buckets merged regions by zoom level while preserving the order
// in which levels and regions were first seen.
type Grouped struct {
	order  []int
	byZoom map[int][]*Box
}

// GroupByZoom groups regions by their zoom level in first-seen order.
func GroupByZoom(regions []*Box) *Grouped {
	g := &Grouped{byZoom: make(map[int][]*Box)}
	for _, box := range regions {
		g.add(box.Zoom, box)
	}
	return g
}

func (g *Grouped) add(zoom int, box *Box) {
	if _, ok := g.byZoom[zoom]; !ok {
		g.order = append(g.order, zoom)
	}
	g.byZoom[zoom] = append(g.byZoom[zoom], box)
}

// Add appends a box to its zoom bucket. Boxes without a zoom level are
// rejected and false is returned.
func (g *Grouped) Add(box *Box) bool {
	if box.Zoom < 0 {
		return false
	}
	g.add(box.Zoom, box)
	return true
}

// ZoomLevels returns the zoom levels in first-seen order.
func (g *Grouped) ZoomLevels() []int {
	levels := make([]int, len(g.order))
	copy(levels, g.order)
	return levels
}

// At returns the regions at the given zoom level in first-seen order.
// The returned slice aliases the grouping's internal storage; callers must
// not modify it.
func (g *Grouped) At(zoom int) []*Box {
	return g.byZoom[zoom]
}
