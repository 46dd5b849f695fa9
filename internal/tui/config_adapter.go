package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/quantmind-br/hybridgit/internal/config"
)

// ConfigValues holds form values that map to Config struct.
// Numeric and duration fields are stored as strings for form editing.
type ConfigValues struct {
	ServerAddress         string
	InstanceID            string
	ServerShutdownTimeout string

	APIURL         string
	BackendToken   string
	HealthPath     string
	BackendTimeout string
	ProbeInterval  string

	GitBinary    string
	GitToken     string
	TokenHost    string
	CloneTimeout string
	ScratchDir   string

	LocalEnabled bool
	LocalDepth   string

	FeaturesEnabled bool
	GitEnabled      bool
	CommandsEnabled bool

	CacheEnabled   bool
	CacheTTL       string
	CacheDirectory string

	LogLevel  string
	LogFormat string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		ServerAddress:         cfg.Server.Address,
		InstanceID:            cfg.Server.InstanceID,
		ServerShutdownTimeout: formatDuration(cfg.Server.ShutdownTimeout),

		APIURL:         cfg.Backend.APIURL,
		BackendToken:   cfg.Backend.Token,
		HealthPath:     cfg.Backend.HealthPath,
		BackendTimeout: formatDuration(cfg.Backend.Timeout),
		ProbeInterval:  formatDuration(cfg.Backend.ProbeInterval),

		GitBinary:    cfg.Git.Binary,
		GitToken:     cfg.Git.Token,
		TokenHost:    cfg.Git.TokenHost,
		CloneTimeout: formatDuration(cfg.Git.CloneTimeout),
		ScratchDir:   cfg.Git.ScratchDir,

		LocalEnabled: cfg.Local.Enabled,
		LocalDepth:   strconv.Itoa(cfg.Local.Depth),

		FeaturesEnabled: cfg.Features.Enabled,
		GitEnabled:      cfg.Features.GitEnabled,
		CommandsEnabled: cfg.Features.CommandsEnabled,

		CacheEnabled:   cfg.Cache.Enabled,
		CacheTTL:       formatDuration(cfg.Cache.TTL),
		CacheDirectory: cfg.Cache.Directory,

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
	}
}

// ToConfig converts ConfigValues back to a Config struct
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	shutdownTimeout, err := parseDurationOrDefault(v.ServerShutdownTimeout, config.DefaultShutdownTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid shutdown_timeout: %w", err)
	}

	backendTimeout, err := parseDurationOrDefault(v.BackendTimeout, config.DefaultBackendTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid backend timeout: %w", err)
	}

	probeInterval, err := parseDurationOrDefault(v.ProbeInterval, config.DefaultProbeInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid probe_interval: %w", err)
	}

	cloneTimeout, err := parseDurationOrDefault(v.CloneTimeout, config.DefaultCloneTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid clone_timeout: %w", err)
	}

	localDepth, err := parseIntOrDefault(v.LocalDepth, config.DefaultLocalDepth)
	if err != nil {
		return nil, fmt.Errorf("invalid local depth: %w", err)
	}

	cacheTTL, err := parseDurationOrDefault(v.CacheTTL, config.DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache ttl: %w", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Address:         v.ServerAddress,
			InstanceID:      v.InstanceID,
			ShutdownTimeout: shutdownTimeout,
		},
		Backend: config.BackendConfig{
			APIURL:        v.APIURL,
			Token:         v.BackendToken,
			HealthPath:    v.HealthPath,
			Timeout:       backendTimeout,
			ProbeInterval: probeInterval,
		},
		Git: config.GitConfig{
			Binary:       v.GitBinary,
			Token:        v.GitToken,
			TokenHost:    v.TokenHost,
			CloneTimeout: cloneTimeout,
			ScratchDir:   v.ScratchDir,
		},
		Local: config.LocalConfig{
			Enabled: v.LocalEnabled,
			Depth:   localDepth,
		},
		Features: config.FeaturesConfig{
			Enabled:         v.FeaturesEnabled,
			GitEnabled:      v.GitEnabled,
			CommandsEnabled: v.CommandsEnabled,
		},
		Cache: config.CacheConfig{
			Enabled:   v.CacheEnabled,
			TTL:       cacheTTL,
			Directory: v.CacheDirectory,
		},
		Logging: config.LoggingConfig{
			Level:  v.LogLevel,
			Format: v.LogFormat,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func parseDurationOrDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}

func parseIntOrDefault(s string, defaultVal int) (int, error) {
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
