package config

import (
	"net/url"
	"time"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Backend  BackendConfig  `mapstructure:"backend" yaml:"backend"`
	Git      GitConfig      `mapstructure:"git" yaml:"git"`
	Local    LocalConfig    `mapstructure:"local" yaml:"local"`
	Features FeaturesConfig `mapstructure:"features" yaml:"features"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address"`
	InstanceID      string        `mapstructure:"instance_id" yaml:"instance_id"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// BackendConfig contains settings for the remote OpenHands backend
type BackendConfig struct {
	APIURL        string        `mapstructure:"api_url" yaml:"api_url"`
	Token         string        `mapstructure:"token" yaml:"token,omitempty"`
	HealthPath    string        `mapstructure:"health_path" yaml:"health_path"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
	ProbeInterval time.Duration `mapstructure:"probe_interval" yaml:"probe_interval"`
}

// GitConfig contains settings for the repository snapshotter
type GitConfig struct {
	Binary       string        `mapstructure:"binary" yaml:"binary"`
	Token        string        `mapstructure:"token" yaml:"token,omitempty"`
	TokenHost    string        `mapstructure:"token_host" yaml:"token_host"`
	CloneTimeout time.Duration `mapstructure:"clone_timeout" yaml:"clone_timeout"`
	ScratchDir   string        `mapstructure:"scratch_dir" yaml:"scratch_dir"`
}

// LocalConfig contains settings for the in-process backend
type LocalConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	Depth   int  `mapstructure:"depth" yaml:"depth"`
}

// FeaturesConfig toggles parts of the OpenHands integration
type FeaturesConfig struct {
	Enabled         bool `mapstructure:"enabled" yaml:"enabled"`
	GitEnabled      bool `mapstructure:"git_enabled" yaml:"git_enabled"`
	CommandsEnabled bool `mapstructure:"commands_enabled" yaml:"commands_enabled"`
}

// CacheConfig contains snapshot cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and repairs out-of-range values
func (c *Config) Validate() error {
	if c.Backend.APIURL == "" {
		c.Backend.APIURL = DefaultAPIURL
	}
	u, err := url.Parse(c.Backend.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError("backend.api_url", "must be an absolute http(s) URL")
	}
	if c.Backend.HealthPath == "" {
		c.Backend.HealthPath = DefaultHealthPath
	}
	if c.Backend.Timeout < time.Second {
		c.Backend.Timeout = DefaultBackendTimeout
	}
	if c.Backend.ProbeInterval < time.Second {
		c.Backend.ProbeInterval = DefaultProbeInterval
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultServerAddress
	}
	if c.Server.ShutdownTimeout < time.Second {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Git.Binary == "" {
		c.Git.Binary = DefaultGitBinary
	}
	if c.Git.TokenHost == "" {
		c.Git.TokenHost = DefaultTokenHost
	}
	if c.Git.CloneTimeout < time.Second {
		c.Git.CloneTimeout = DefaultCloneTimeout
	}
	if c.Local.Depth < 0 {
		c.Local.Depth = 0
	}
	if c.Cache.TTL < time.Second {
		c.Cache.TTL = DefaultCacheTTL
	}
	return nil
}
