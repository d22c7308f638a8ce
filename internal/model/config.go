package model

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Data        DataConfig        `yaml:"data"`
	Scaling     ScalingConfig     `yaml:"scaling"`
	Render      RenderConfig      `yaml:"render"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Store       StoreConfig       `yaml:"store"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// DataConfig locates the authored static tables.
type DataConfig struct {
	StoriesDir   string `yaml:"stories_dir"`
	CountriesDir string `yaml:"countries_dir"`
}

// ScalingConfig holds population-scaling parameters.
type ScalingConfig struct {
	// SourcePopulation is the population the authored magnitudes are
	// calibrated against. One canonical constant, applied uniformly.
	SourcePopulation int64 `yaml:"source_population"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Language  string `yaml:"language"`
	OutputDir string `yaml:"output_dir"`
}

// CacheConfig controls the process-level cache of loaded tables and parsed
// templates. The per-request resolution cache is always on and not tunable.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls bulk rendering.
type ConcurrencyConfig struct {
	Workers          int     `yaml:"workers"`
	RendersPerSecond float64 `yaml:"renders_per_second"` // 0 disables pacing
	Burst            int     `yaml:"burst"`
}

// StoreConfig locates the render archive database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultSourcePopulation is the canonical source-country population used
// for every scaling path.
const DefaultSourcePopulation int64 = 85_000_000

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			StoriesDir:   "data/stories",
			CountriesDir: "data/countries",
		},
		Scaling: ScalingConfig{
			SourcePopulation: DefaultSourcePopulation,
		},
		Render: RenderConfig{
			Language:  "en",
			OutputDir: "./renders",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers:          4,
			RendersPerSecond: 0,
			Burst:            8,
		},
		Store: StoreConfig{
			Path: "./renders/storyport.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
