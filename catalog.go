package tileseed

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default catalog locations, relative to the working directory. The primary
// file ships with the chart data; the supplementary file is generated and
// may be missing.
const (
	DefaultCatalogFile       = "boxes/allcountries.bbox"
	DefaultSupplementaryFile = "boxes/computed.bbox"
)

// catalogFields is the exact field count of a catalog record:
// name zoom swlat swlng nelat nelng
const catalogFields = 6

// ParseCatalogLine parses one catalog record. Fields are separated by runs
// of whitespace. The returned error states why a line cannot be used;
// callers are expected to log it and skip the line, dirty catalogs are
// normal.
func ParseCatalogLine(line string) (*Box, error) {
	parts := strings.Fields(line)
	if len(parts) != catalogFields {
		return nil, fmt.Errorf("expected %d fields, got %d", catalogFields, len(parts))
	}
	zoom, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid zoom %q: %w", parts[1], err)
	}
	coords := make([]float64, 4)
	for i, p := range parts[2:] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", p, err)
		}
		coords[i] = v
	}
	return NewBox(
		LatLng{Lat: coords[2], Lng: coords[3]},
		LatLng{Lat: coords[0], Lng: coords[1]},
		zoom,
		parts[0],
	), nil
}

// BoxToLine formats a box as a catalog record. Round-trips with
// ParseCatalogLine.
func BoxToLine(b *Box) string {
	return fmt.Sprintf("%s %d %f %f %f %f", b.Name, b.Zoom,
		b.Southwest.Lat, b.Southwest.Lng, b.Northeast.Lat, b.Northeast.Lng)
}

// Catalog reads chart boxes from a primary file and an optional
// supplementary file, logically concatenated in that order.
type Catalog struct {
	primary       string
	supplementary string
	logger        Logger
}

// NewCatalog creates a catalog over the given primary file. supplementary
// may be empty to read the primary file only.
func NewCatalog(primary, supplementary string, logger Logger) *Catalog {
	return &Catalog{primary: primary, supplementary: supplementary, logger: logger}
}

// eachLine calls fn for every raw line of the catalog, primary file first.
// A missing primary file is an error; a missing supplementary file is
// skipped, it is optional by contract.
func (c *Catalog) eachLine(fn func(line string)) error {
	files := []string{c.primary}
	if c.supplementary != "" {
		files = append(files, c.supplementary)
	}
	for i, file := range files {
		fh, err := os.Open(file)
		if err != nil {
			if i > 0 && os.IsNotExist(err) {
				debugf(c.logger, "supplementary catalog %s not present, skipping", file)
				continue
			}
			return fmt.Errorf("opening catalog %s: %w", file, err)
		}
		scanner := bufio.NewScanner(fh)
		for scanner.Scan() {
			fn(scanner.Text())
		}
		err = scanner.Err()
		fh.Close()
		if err != nil {
			return fmt.Errorf("reading catalog %s: %w", file, err)
		}
	}
	return nil
}

// SelectLines returns the raw catalog lines whose boxes overlap bounds and
// whose zoom lies in [minZoom, maxZoom]. Touching edges count as overlap
// here, unlike Box.Intersection. Only the primary file is consulted and no
// Box values are built; this is the fast path for read-only catalog queries.
// Malformed lines are logged and skipped.
func (c *Catalog) SelectLines(bounds *Box, minZoom, maxZoom int) ([]string, error) {
	fh, err := os.Open(c.primary)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", c.primary, err)
	}
	defer fh.Close()

	var lines []string
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) != catalogFields {
			errorf(c.logger, "skipping invalid catalog line %q: expected %d fields, got %d",
				line, catalogFields, len(parts))
			continue
		}
		zoom, err := strconv.Atoi(parts[1])
		if err != nil {
			errorf(c.logger, "skipping invalid catalog line %q: %v", line, err)
			continue
		}
		if zoom < minZoom || zoom > maxZoom {
			continue
		}
		swLat, err1 := strconv.ParseFloat(parts[2], 64)
		swLng, err2 := strconv.ParseFloat(parts[3], 64)
		neLat, err3 := strconv.ParseFloat(parts[4], 64)
		neLng, err4 := strconv.ParseFloat(parts[5], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			errorf(c.logger, "skipping invalid catalog line %q: non-numeric coordinate", line)
			continue
		}
		if neLat < bounds.Southwest.Lat || neLng < bounds.Southwest.Lng ||
			swLat > bounds.Northeast.Lat || swLng > bounds.Northeast.Lng {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", c.primary, err)
	}
	return lines, nil
}
