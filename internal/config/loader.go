package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Legacy environment variable names still honored for compatibility
const (
	EnvAPIURL   = "OPENHANDS_API_URL"
	EnvGitToken = "GITHUB_ACCESS_TOKEN"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	cfg, err := load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithViper loads configuration into a fresh viper instance and returns it
func LoadWithViper() (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := load(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings (an explicit --config wins)
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (HYBRIDGIT_*)
	v.SetEnvPrefix("HYBRIDGIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("backend.api_url", "HYBRIDGIT_BACKEND_API_URL", EnvAPIURL)
	_ = v.BindEnv("git.token", "HYBRIDGIT_GIT_TOKEN", EnvGitToken)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate and apply defaults for invalid values
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	d := Default()

	// Server defaults
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.instance_id", "")
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	// Backend defaults
	v.SetDefault("backend.api_url", d.Backend.APIURL)
	v.SetDefault("backend.token", "")
	v.SetDefault("backend.health_path", d.Backend.HealthPath)
	v.SetDefault("backend.timeout", d.Backend.Timeout)
	v.SetDefault("backend.probe_interval", d.Backend.ProbeInterval)

	// Git defaults
	v.SetDefault("git.binary", d.Git.Binary)
	v.SetDefault("git.token", "")
	v.SetDefault("git.token_host", d.Git.TokenHost)
	v.SetDefault("git.clone_timeout", d.Git.CloneTimeout)
	v.SetDefault("git.scratch_dir", d.Git.ScratchDir)

	// Local backend defaults
	v.SetDefault("local.enabled", d.Local.Enabled)
	v.SetDefault("local.depth", d.Local.Depth)

	// Feature flags
	v.SetDefault("features.enabled", d.Features.Enabled)
	v.SetDefault("features.git_enabled", d.Features.GitEnabled)
	v.SetDefault("features.commands_enabled", d.Features.CommandsEnabled)

	// Cache defaults
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.directory", d.Cache.Directory)

	// Logging defaults
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// KnownKeys returns every configuration key that has a default
func KnownKeys() []string {
	v := viper.New()
	setDefaults(v)
	return v.AllKeys()
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	dir := ConfigDir()
	return os.MkdirAll(dir, 0755)
}

// EnsureCacheDir creates the cache directory if it doesn't exist
func EnsureCacheDir() error {
	dir := CacheDir()
	return os.MkdirAll(dir, 0755)
}
