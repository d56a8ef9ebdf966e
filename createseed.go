package tileseed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAreas reads a YAML file containing a list of area-of-interest records
// (see Box.UnmarshalYAML for the accepted key spellings).
func LoadAreas(path string) ([]*Box, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading areas file %s: %w", path, err)
	}
	var areas []*Box
	if err := yaml.Unmarshal(data, &areas); err != nil {
		return nil, fmt.Errorf("parsing areas file %s: %w", path, err)
	}
	return areas, nil
}

// SeedRequest describes one seed-config generation run.
type SeedRequest struct {
	AreasFile  string   // YAML list of areas of interest
	OutFile    string   // seed config destination, empty to skip writing
	Name       string   // prefix for seed and coverage names
	Caches     []string // caches every seed job fills
	ReloadDays int      // when > 0, adds refresh_before to every seed job
	Header     string   // optional comment line for the output file
	Logger     Logger
}

// CreateSeed merges the requested areas of interest against the catalog
// (including the supplementary file), builds the seed configuration and
// optionally writes it. It returns the estimated tile total and the built
// configuration.
func CreateSeed(req SeedRequest, opts ...Option) (int, *SeedConfig, error) {
	areas, err := LoadAreas(req.AreasFile)
	if err != nil {
		return 0, nil, err
	}

	merger := NewMerger(append([]Option{WithSupplementary(), WithLogger(req.Logger)}, opts...)...)
	result, err := merger.MergeBoxes(areas)
	if err != nil {
		return 0, nil, err
	}

	params := SeedParams{Caches: req.Caches}
	if req.ReloadDays > 0 {
		params.RefreshBefore = &RefreshBefore{Days: req.ReloadDays}
	}

	writer := NewSeedWriter(req.Logger)
	cfg := writer.Build(result.Grouped(), req.Name, params)
	if req.OutFile != "" {
		if err := writer.Write(req.OutFile, cfg, req.Header); err != nil {
			return 0, nil, err
		}
	}
	return result.TotalTiles, cfg, nil
}

// CountTiles estimates the tile total for the given areas of interest
// without building a seed configuration.
func CountTiles(areas []*Box, opts ...Option) (int, error) {
	merger := NewMerger(append([]Option{WithSupplementary()}, opts...)...)
	return merger.CountTiles(areas)
}
