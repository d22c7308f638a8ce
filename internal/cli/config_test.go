package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg := loadConfig()
	if cfg.Scaling.SourcePopulation != 85_000_000 {
		t.Errorf("source population = %d, want the default", cfg.Scaling.SourcePopulation)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should be enabled by default")
	}
	if cfg.Concurrency.Burst != 8 {
		t.Errorf("burst = %d, want the default 8", cfg.Concurrency.Burst)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("scaling.source_population", 1_000_000)
	viper.Set("concurrency.workers", 2)
	viper.Set("concurrency.renders_per_second", 5.0)
	viper.Set("concurrency.burst", 3)
	viper.Set("cache.enabled", false)
	viper.Set("store.path", "/tmp/archive.db")

	cfg := loadConfig()
	if cfg.Scaling.SourcePopulation != 1_000_000 {
		t.Errorf("source population = %d", cfg.Scaling.SourcePopulation)
	}
	if cfg.Concurrency.Workers != 2 {
		t.Errorf("workers = %d", cfg.Concurrency.Workers)
	}
	if cfg.Concurrency.RendersPerSecond != 5.0 {
		t.Errorf("renders per second = %v", cfg.Concurrency.RendersPerSecond)
	}
	if cfg.Concurrency.Burst != 3 {
		t.Errorf("burst = %d, want the configured 3", cfg.Concurrency.Burst)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled override ignored")
	}
	if cfg.Store.Path != "/tmp/archive.db" {
		t.Errorf("store path = %q", cfg.Store.Path)
	}
}
