package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vedic-chart/internal/astro"
	"vedic-chart/internal/chart"
	"vedic-chart/internal/dasha"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: named birth-place presets (JSON). Relative paths resolve
	// against the config file's directory first.
	PlacesFile string       `yaml:"places_file"`
	Engine     EngineConfig `yaml:"engine"`
	Server     ServerConfig `yaml:"server"`
	Cache      CacheConfig  `yaml:"cache"`
}

type EngineConfig struct {
	DashaHorizonYears  float64        `yaml:"dasha_horizon_years" json:"dasha_horizon_years,omitempty"`
	RetrogradeStepDays float64        `yaml:"retrograde_step_days" json:"retrograde_step_days,omitempty"`
	Ayanamsa           astro.Ayanamsa `yaml:"ayanamsa" json:"ayanamsa,omitempty"`
	PrecisionMinYear   int            `yaml:"precision_min_year" json:"precision_min_year,omitempty"`
	PrecisionMaxYear   int            `yaml:"precision_max_year" json:"precision_max_year,omitempty"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	Env            string   `yaml:"env"`
	LogLevel       string   `yaml:"log_level"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	opts := chart.DefaultOptions()
	return &Config{
		Engine: EngineConfig{
			DashaHorizonYears:  opts.HorizonYears,
			RetrogradeStepDays: opts.RetrogradeStepDays,
			Ayanamsa:           opts.Ayanamsa,
			PrecisionMinYear:   opts.PrecisionMinYear,
			PrecisionMaxYear:   opts.PrecisionMaxYear,
		},
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			LogLevel:       "info",
			AllowedOrigins: []string{"*"},
		},
		Cache: CacheConfig{Enabled: true, TTL: time.Hour},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads the file and fills unset fields from Default, but does not validate.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	def := Default()
	c.Engine = MergeEngine(def.Engine, c.Engine)
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Env == "" {
		c.Server.Env = def.Server.Env
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = def.Server.LogLevel
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = def.Server.AllowedOrigins
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = def.Cache.TTL
	}

	if c.PlacesFile != "" && !filepath.IsAbs(c.PlacesFile) {
		// Prefer the config file's directory, but fall back to the path as
		// given (relative to cwd) if that doesn't exist.
		cand := filepath.Join(filepath.Dir(path), c.PlacesFile)
		if _, err := os.Stat(cand); err == nil {
			c.PlacesFile = cand
		}
	}
	return &c, nil
}

// ApplyEnv overlays API_PORT, API_ENV and PLACES_FILE.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("PLACES_FILE"); v != "" {
		c.PlacesFile = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine config invalid: %w", err)
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must be >= 0")
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("server.log_level %q must be one of debug, info, warn, error", c.Server.LogLevel)
	}
	return nil
}

func (e EngineConfig) Validate() error {
	if e.DashaHorizonYears <= 0 || e.DashaHorizonYears > dasha.MaxHorizonYears {
		return fmt.Errorf("dasha_horizon_years must be in (0, %.0f]", dasha.MaxHorizonYears)
	}
	if e.RetrogradeStepDays <= 0 {
		return errors.New("retrograde_step_days must be > 0")
	}
	if e.Ayanamsa.RateArcsecPerYear <= 0 {
		return errors.New("ayanamsa.rate_arcsec_per_year must be > 0")
	}
	if e.PrecisionMinYear > e.PrecisionMaxYear {
		return errors.New("precision_min_year must be <= precision_max_year")
	}
	return nil
}

func (e EngineConfig) ToOptions() chart.Options {
	return chart.Options{
		HorizonYears:       e.DashaHorizonYears,
		RetrogradeStepDays: e.RetrogradeStepDays,
		Ayanamsa:           e.Ayanamsa,
		PrecisionMinYear:   e.PrecisionMinYear,
		PrecisionMaxYear:   e.PrecisionMaxYear,
	}
}

// MergeEngine overlays non-zero fields from override onto base.
// This is used when loading a file and then applying overrides from a request.
func MergeEngine(base, override EngineConfig) EngineConfig {
	out := base
	if override.DashaHorizonYears != 0 {
		out.DashaHorizonYears = override.DashaHorizonYears
	}
	if override.RetrogradeStepDays != 0 {
		out.RetrogradeStepDays = override.RetrogradeStepDays
	}
	if override.Ayanamsa.ReferenceDeg != 0 {
		out.Ayanamsa.ReferenceDeg = override.Ayanamsa.ReferenceDeg
	}
	if override.Ayanamsa.RateArcsecPerYear != 0 {
		out.Ayanamsa.RateArcsecPerYear = override.Ayanamsa.RateArcsecPerYear
	}
	if override.PrecisionMinYear != 0 {
		out.PrecisionMinYear = override.PrecisionMinYear
	}
	if override.PrecisionMaxYear != 0 {
		out.PrecisionMaxYear = override.PrecisionMaxYear
	}
	return out
}
