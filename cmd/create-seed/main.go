// Command create-seed generates a tile-seeding configuration from a set of
// areas of interest.
//
// Usage:
//
//	create-seed <areasFile> <outFile> <name> <caches>
//
// areasFile is a YAML list of bounding boxes, outFile the seed config to
// write, name the prefix for seed and coverage names and caches a
// comma-separated list of cache names. The estimated tile total is printed
// on success.
//
// Catalog locations, the zoom range and the log level can be overridden via
// a config.yaml in the working directory or TILESEED_* environment
// variables (e.g. TILESEED_CATALOG, TILESEED_LOG_LEVEL).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/oceanmaps/tileseed"
)

// config holds the tool configuration loaded from defaults, an optional
// config file and the environment.
type config struct {
	Catalog    string `mapstructure:"catalog"`
	Computed   string `mapstructure:"computed"`
	MinZoom    int    `mapstructure:"min_zoom"`
	MaxZoom    int    `mapstructure:"max_zoom"`
	LogLevel   string `mapstructure:"log_level"`
	ReloadDays int    `mapstructure:"reload_days"`
}

func loadConfig() (*config, error) {
	v := viper.New()

	v.SetDefault("catalog", tileseed.DefaultCatalogFile)
	v.SetDefault("computed", tileseed.DefaultSupplementaryFile)
	v.SetDefault("min_zoom", tileseed.DefaultMinZoom)
	v.SetDefault("max_zoom", tileseed.DefaultMaxZoom)
	v.SetDefault("log_level", "info")
	v.SetDefault("reload_days", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // OK if missing

	v.SetEnvPrefix("TILESEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setupLogging initialises the global slog default logger.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <areasFile> <outFile> <name> <caches>\n", os.Args[0])
}

func main() {
	if len(os.Args) != 5 {
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	req := tileseed.SeedRequest{
		AreasFile:  os.Args[1],
		OutFile:    os.Args[2],
		Name:       os.Args[3],
		Caches:     strings.Split(os.Args[4], ","),
		ReloadDays: cfg.ReloadDays,
		Logger:     tileseed.NewSlogLogger(nil),
	}

	total, _, err := tileseed.CreateSeed(req,
		tileseed.WithCatalogFile(cfg.Catalog),
		tileseed.WithSupplementaryFile(cfg.Computed),
		tileseed.WithZoomRange(cfg.MinZoom, cfg.MaxZoom),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("estimated tiles: %d\n", total)
}
