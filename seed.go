package tileseed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// coverageSRS is the spatial reference of all produced coverages.
const coverageSRS = "EPSG:4326"

// Coverage names a geographic rectangle for the downstream seeding tool.
type Coverage struct {
	SRS  string    `yaml:"srs"`
	BBox []float64 `yaml:"bbox"`
}

// RefreshBefore asks the seeding tool to refresh tiles older than the given
// number of days.
type RefreshBefore struct {
	Days int `yaml:"days"`
}

// SeedJob is one per-zoom-level seed entry: which caches to fill, which
// coverages to fetch and at which level.
type SeedJob struct {
	Caches        []string       `yaml:"caches"`
	RefreshBefore *RefreshBefore `yaml:"refresh_before,omitempty"`
	Levels        []int          `yaml:"levels"`
	Coverages     []string       `yaml:"coverages"`
}

// SeedConfig is the configuration consumed by the tile-seeding tool.
type SeedConfig struct {
	Seeds     map[string]*SeedJob  `yaml:"seeds"`
	Coverages map[string]*Coverage `yaml:"coverages"`
}

// SeedParams are the caller-supplied parameters applied to every seed job.
type SeedParams struct {
	Caches        []string
	RefreshBefore *RefreshBefore
}

// SeedWriter builds and writes seed configurations from grouped regions.
type SeedWriter struct {
	logger Logger
}

// NewSeedWriter creates a SeedWriter. logger may be nil.
func NewSeedWriter(logger Logger) *SeedWriter {
	return &SeedWriter{logger: logger}
}

// Build turns grouped regions into a seed configuration. Coverage names are
// <name>_<zoom:03d>_<regionName>, seed names <name>_<zoom:03d>.
func (w *SeedWriter) Build(grouped *Grouped, name string, params SeedParams) *SeedConfig {
	out := &SeedConfig{
		Seeds:     make(map[string]*SeedJob),
		Coverages: make(map[string]*Coverage),
	}
	for _, z := range grouped.ZoomLevels() {
		job := &SeedJob{
			Caches:        params.Caches,
			RefreshBefore: params.RefreshBefore,
			Levels:        []int{z},
		}
		for _, bound := range grouped.At(z) {
			cvName := fmt.Sprintf("%s_%03d_%s", name, z, bound.RegionName())
			out.Coverages[cvName] = &Coverage{
				SRS:  coverageSRS,
				BBox: bound.MapproxyBounds(),
			}
			job.Coverages = append(job.Coverages, cvName)
		}
		out.Seeds[fmt.Sprintf("%s_%03d", name, z)] = job
	}
	return out
}

// Write serializes the seed configuration to path as YAML. A non-empty
// header is written as a comment first line.
func (w *SeedWriter) Write(path string, cfg *SeedConfig, header string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	infof(w.logger, "writing %s", path)

	success := false
	defer func() {
		if !success {
			fh.Close()
		}
	}()

	if header != "" {
		if _, err := fmt.Fprintf(fh, "#%s\n", header); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	enc := yaml.NewEncoder(fh)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	success = true
	if err := fh.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
