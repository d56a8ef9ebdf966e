package tileseed

// Default zoom range for merges.
const (
	DefaultMinZoom = 0
	DefaultMaxZoom = 20
)

// Merger intersects catalog chart boxes with areas of interest and
// deduplicates the result per zoom level. A Merger holds no state across
// merge calls; it is safe to reuse and calls are independent of each other.
type Merger struct {
	catalogFile       string
	supplementaryFile string
	minZoom           int
	maxZoom           int
	logger            Logger
}

// Option is a functional option for configuring a Merger.
type Option func(*Merger)

// WithCatalogFile overrides the primary catalog file.
func WithCatalogFile(path string) Option {
	return func(m *Merger) {
		m.catalogFile = path
	}
}

// WithSupplementaryFile sets a supplementary catalog file that is logically
// appended to the primary one.
func WithSupplementaryFile(path string) Option {
	return func(m *Merger) {
		m.supplementaryFile = path
	}
}

// WithSupplementary enables the default supplementary catalog file.
func WithSupplementary() Option {
	return WithSupplementaryFile(DefaultSupplementaryFile)
}

// WithZoomRange restricts merges to catalog records with zoom in
// [minZoom, maxZoom].
func WithZoomRange(minZoom, maxZoom int) Option {
	return func(m *Merger) {
		m.minZoom = minZoom
		m.maxZoom = maxZoom
	}
}

// WithLogger sets the logging collaborator.
func WithLogger(l Logger) Option {
	return func(m *Merger) {
		m.logger = l
	}
}

// NewMerger creates a Merger reading the default catalog file with the
// default zoom range, adjusted by the given options.
func NewMerger(opts ...Option) *Merger {
	m := &Merger{
		catalogFile: DefaultCatalogFile,
		minZoom:     DefaultMinZoom,
		maxZoom:     DefaultMaxZoom,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Catalog returns the catalog view the merger reads from.
func (m *Merger) Catalog() *Catalog {
	return NewCatalog(m.catalogFile, m.supplementaryFile, m.logger)
}

// MergeResult is the outcome of one merge: the accepted regions in catalog
// order and the tile-count estimate across all of them, discounted for
// overlaps between regions at the same zoom level.
type MergeResult struct {
	Regions    []*Box
	TotalTiles int
}

// Grouped buckets the result regions by zoom level.
func (r *MergeResult) Grouped() *Grouped {
	return GroupByZoom(r.Regions)
}

// MergeBoxes computes, per zoom level, the portions of the catalog covered
// by the given areas of interest. A nil areas list accepts the whole
// catalog unfiltered.
//
// Each catalog record is intersected with every area of interest and the
// per-area overlaps are accumulated into one bounding rectangle, which is
// then re-intersected with the chart box so the result never exceeds it.
// For non-contiguous areas of interest the accumulated rectangle can
// over-approximate the true union of the overlaps; this matches the
// documented greedy behavior and is intentionally kept.
//
// A record whose result is fully contained in an earlier accepted region at
// the same zoom level is dropped. A partial overlap with earlier regions at
// the same zoom level reduces the record's tile contribution (overlap
// counted without the inclusive padding, clamped at zero).
//
// Malformed catalog lines are logged and skipped. The only error condition
// is a failure to read the catalog files.
func (m *Merger) MergeBoxes(areas []*Box) (*MergeResult, error) {
	result := &MergeResult{}
	zoomLevelBoxes := make(map[int][]*Box)

	err := m.Catalog().eachLine(func(line string) {
		chartBox, err := ParseCatalogLine(line)
		if err != nil {
			errorf(m.logger, "unable to parse %q: %v", line, err)
			return
		}
		if chartBox.Zoom < m.minZoom || chartBox.Zoom > m.maxZoom {
			return
		}
		if areas == nil {
			debugf(m.logger, "adding %s", chartBox)
			result.TotalTiles += chartBox.NumTiles(false)
			result.Regions = append(result.Regions, chartBox)
			return
		}

		// Accumulate the union of the chart box's overlaps with each
		// individual area of interest.
		var overlap *Box
		for _, area := range areas {
			current := chartBox.Intersection(area)
			if overlap == nil {
				overlap = current
			} else {
				overlap.Extend(current)
			}
		}
		if overlap == nil {
			return
		}
		// Bound the accumulated overlap by the chart box itself.
		merged := chartBox.Intersection(overlap)
		if merged == nil {
			return
		}

		// Regions at different zoom levels never dedup against each other.
		tiles := merged.NumTiles(false)
		for _, other := range zoomLevelBoxes[merged.Zoom] {
			if other.Contains(merged) {
				return
			}
			if in := other.Intersection(merged); in != nil {
				tiles -= in.NumTiles(true)
			}
		}
		if tiles < 0 {
			tiles = 0
		}
		debugf(m.logger, "adding from %s: %s", chartBox, merged)
		zoomLevelBoxes[merged.Zoom] = append(zoomLevelBoxes[merged.Zoom], merged)
		result.Regions = append(result.Regions, merged)
		result.TotalTiles += tiles
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CountTiles merges the areas of interest and returns only the tile-count
// estimate.
func (m *Merger) CountTiles(areas []*Box) (int, error) {
	result, err := m.MergeBoxes(areas)
	if err != nil {
		return 0, err
	}
	return result.TotalTiles, nil
}
