package tui

import (
	"github.com/charmbracelet/huh"
)

func CreateServerForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("address").
				Title("Listen Address").
				Description("Address for hybridgit serve").
				Value(&values.ServerAddress).
				Placeholder(":5173"),

			huh.NewInput().
				Key("instance_id").
				Title("Instance ID").
				Description("Reported by /health (leave empty to generate one per start)").
				Value(&values.InstanceID),

			huh.NewInput().
				Key("shutdown_timeout").
				Title("Shutdown Timeout").
				Description("Grace period for in-flight requests (e.g., 10s)").
				Value(&values.ServerShutdownTimeout).
				Placeholder("10s").
				Validate(ValidateDuration),
		),
	).WithTheme(GetTheme())
}

func CreateBackendForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("api_url").
				Title("API URL").
				Description("Base URL of the OpenHands backend").
				Value(&values.APIURL).
				Placeholder("http://localhost:8000").
				Validate(ValidateAPIURL),

			huh.NewInput().
				Key("token").
				Title("API Token").
				Description("Bearer token sent to the backend").
				Value(&values.BackendToken).
				EchoMode(huh.EchoModePassword),

			huh.NewInput().
				Key("health_path").
				Title("Health Path").
				Description("Path probed for liveness").
				Value(&values.HealthPath).
				Placeholder("/health").
				Validate(ValidateHealthPath),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("timeout").
				Title("Request Timeout").
				Description("Timeout for backend requests (e.g., 30s)").
				Value(&values.BackendTimeout).
				Placeholder("30s").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("probe_interval").
				Title("Probe Interval").
				Description("How often the backend is probed (e.g., 30s)").
				Value(&values.ProbeInterval).
				Placeholder("30s").
				Validate(ValidateDuration),
		),
	).WithTheme(GetTheme())
}

func CreateGitForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("binary").
				Title("Git Binary").
				Description("git executable used for snapshots").
				Value(&values.GitBinary).
				Placeholder("git"),

			huh.NewInput().
				Key("token").
				Title("Access Token").
				Description("Embedded in clone URLs for the token host only").
				Value(&values.GitToken).
				EchoMode(huh.EchoModePassword),

			huh.NewInput().
				Key("token_host").
				Title("Token Host").
				Description("Host that receives the access token").
				Value(&values.TokenHost).
				Placeholder("github.com"),

			huh.NewInput().
				Key("clone_timeout").
				Title("Clone Timeout").
				Description("Maximum time for a single clone (e.g., 2m)").
				Value(&values.CloneTimeout).
				Placeholder("2m").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("scratch_dir").
				Title("Scratch Directory").
				Description("Where temporary clones live (leave empty for the system temp dir)").
				Value(&values.ScratchDir),
		),
	).WithTheme(GetTheme())
}

func CreateLocalForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("Enable Local Backend").
				Description("Clone in-process when the remote backend is unavailable").
				Value(&values.LocalEnabled),

			huh.NewInput().
				Key("depth").
				Title("Clone Depth").
				Description("History depth for local clones (0 for full history)").
				Value(&values.LocalDepth).
				Placeholder("1").
				Validate(ValidateIntRange(0, 1000)),
		),
	).WithTheme(GetTheme())
}

func CreateFeaturesForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("OpenHands Integration").
				Description("Master switch for the remote backend").
				Value(&values.FeaturesEnabled),

			huh.NewConfirm().
				Key("git_enabled").
				Title("Remote Git").
				Description("Allow clones through the remote backend").
				Value(&values.GitEnabled),

			huh.NewConfirm().
				Key("commands_enabled").
				Title("Remote Commands").
				Description("Allow command execution on the remote backend").
				Value(&values.CommandsEnabled),
		),
	).WithTheme(GetTheme())
}

func CreateCacheForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("Enable Cache").
				Description("Reuse snapshots of recently cloned repositories").
				Value(&values.CacheEnabled),

			huh.NewInput().
				Key("ttl").
				Title("Cache TTL").
				Description("How long to keep snapshots (e.g., 10m, 1h)").
				Value(&values.CacheTTL).
				Placeholder("10m").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("directory").
				Title("Cache Directory").
				Description("Directory for cache storage").
				Value(&values.CacheDirectory).
				Placeholder("~/.hybridgit/cache"),
		),
	).WithTheme(GetTheme())
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Description("Minimum log level to display").
				Options(
					huh.NewOption("Trace", "trace"),
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&values.LogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Description("Output format for logs").
				Options(
					huh.NewOption("Pretty (human-readable)", "pretty"),
					huh.NewOption("JSON (structured)", "json"),
					huh.NewOption("Text (plain)", "text"),
				).
				Value(&values.LogFormat),
		),
	).WithTheme(GetTheme())
}

func GetFormForCategory(category string, values *ConfigValues) *huh.Form {
	switch category {
	case "server":
		return CreateServerForm(values)
	case "backend":
		return CreateBackendForm(values)
	case "git":
		return CreateGitForm(values)
	case "local":
		return CreateLocalForm(values)
	case "features":
		return CreateFeaturesForm(values)
	case "cache":
		return CreateCacheForm(values)
	case "logging":
		return CreateLoggingForm(values)
	default:
		return nil
	}
}
