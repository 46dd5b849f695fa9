package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Server defaults
	DefaultServerAddress   = ":5173"
	DefaultShutdownTimeout = 10 * time.Second

	// Backend defaults
	DefaultAPIURL         = "http://localhost:8000"
	DefaultHealthPath     = "/health"
	DefaultBackendTimeout = 30 * time.Second
	DefaultProbeInterval  = 30 * time.Second

	// Git defaults
	DefaultGitBinary    = "git"
	DefaultTokenHost    = "github.com"
	DefaultCloneTimeout = 2 * time.Minute

	// Local backend defaults
	DefaultLocalEnabled = true
	DefaultLocalDepth   = 1

	// Cache defaults
	DefaultCacheEnabled = false
	DefaultCacheTTL     = 10 * time.Minute

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hybridgit"
	}
	return filepath.Join(home, ".hybridgit")
}

// CacheDir returns the cache directory path
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         DefaultServerAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Backend: BackendConfig{
			APIURL:        DefaultAPIURL,
			HealthPath:    DefaultHealthPath,
			Timeout:       DefaultBackendTimeout,
			ProbeInterval: DefaultProbeInterval,
		},
		Git: GitConfig{
			Binary:       DefaultGitBinary,
			TokenHost:    DefaultTokenHost,
			CloneTimeout: DefaultCloneTimeout,
			ScratchDir:   os.TempDir(),
		},
		Local: LocalConfig{
			Enabled: DefaultLocalEnabled,
			Depth:   DefaultLocalDepth,
		},
		Features: FeaturesConfig{
			Enabled:         true,
			GitEnabled:      true,
			CommandsEnabled: true,
		},
		Cache: CacheConfig{
			Enabled:   DefaultCacheEnabled,
			TTL:       DefaultCacheTTL,
			Directory: CacheDir(),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
