package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr             string         `yaml:"addr"`
	FixturesDir      string         `yaml:"fixtures_dir"`
	SimulatedLatency bool           `yaml:"simulated_latency"`
	Timezone         string         `yaml:"timezone"`
	ShutdownTimeout  time.Duration  `yaml:"shutdown_timeout"`
	Delays           Delays         `yaml:"delays"`
	Log              Log            `yaml:"log"`
	Redis            RedisConfig    `yaml:"redis"`
	Postgres         PostgresConfig `yaml:"postgres"`
}

// Delays are the artificial latencies applied by the case endpoints.
type Delays struct {
	Cases          time.Duration `yaml:"cases"`
	Case           time.Duration `yaml:"case"`
	Explainability time.Duration `yaml:"explainability"`
	Documents      time.Duration `yaml:"documents"`
	Audit          time.Duration `yaml:"audit"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RedisConfig configures the optional Redis fixture source.
type RedisConfig struct {
	URL          string        `yaml:"url"`
	Prefix       string        `yaml:"prefix"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// PostgresConfig configures the optional Postgres fixture source.
type PostgresConfig struct {
	URL             string        `yaml:"url"`
	Table           string        `yaml:"table"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DefaultDelays are the latencies the dashboard was designed against.
var DefaultDelays = Delays{
	Cases:          200 * time.Millisecond,
	Case:           300 * time.Millisecond,
	Explainability: 500 * time.Millisecond,
	Documents:      200 * time.Millisecond,
	Audit:          200 * time.Millisecond,
}

// Default returns the configuration used when nothing is overridden.
func Default() Server {
	return Server{
		Addr:             ":8080",
		SimulatedLatency: true,
		Timezone:         "America/Argentina/Buenos_Aires",
		ShutdownTimeout:  10 * time.Second,
		Delays:           DefaultDelays,
		Log:              Log{Level: "info", Format: "json"},
		Redis: RedisConfig{
			Prefix:       "casedesk",
			PoolSize:     10,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Postgres: PostgresConfig{
			Table:           "casedesk_fixtures",
			MaxOpenConns:    4,
			ConnMaxLifetime: 30 * time.Minute,
		},
	}
}

// EffectiveDelays returns zero delays when simulated latency is off.
func (s Server) EffectiveDelays() Delays {
	if !s.SimulatedLatency {
		return Delays{}
	}
	return s.Delays
}

// Location resolves the display timezone, falling back to UTC.
func (s Server) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil || s.Timezone == "" {
		return time.UTC
	}
	return loc
}

// FromEnv builds a Server config from environment variables so main stays lean.
// CASEDESK_CONFIG names an optional YAML file applied before the variables.
func FromEnv() (Server, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Server, error) {
	cfg := Default()

	if path := getenv("CASEDESK_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("read config file: %w", err)
		}
		if err := Parse(raw, &cfg); err != nil {
			return Server{}, err
		}
	}

	if v := getenv("CASEDESK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("CASEDESK_FIXTURES_DIR"); v != "" {
		cfg.FixturesDir = v
	}
	if v := getenv("CASEDESK_REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := getenv("CASEDESK_REDIS_PREFIX"); v != "" {
		cfg.Redis.Prefix = v
	}
	if v := getenv("CASEDESK_POSTGRES_URL"); v != "" {
		cfg.Postgres.URL = v
	}
	if v := getenv("CASEDESK_POSTGRES_TABLE"); v != "" {
		cfg.Postgres.Table = v
	}
	if v := getenv("CASEDESK_SIMULATED_LATENCY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Server{}, fmt.Errorf("parse CASEDESK_SIMULATED_LATENCY: %w", err)
		}
		cfg.SimulatedLatency = enabled
	}
	if v := getenv("CASEDESK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv("CASEDESK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := getenv("CASEDESK_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	return cfg, nil
}

// Parse overlays a YAML document onto cfg. Keys missing from the document keep
// their current value.
func Parse(raw []byte, cfg *Server) error {
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
