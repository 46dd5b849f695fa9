package backend

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/openhands"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// RemoteBackend delegates Git operations to the OpenHands backend
type RemoteBackend struct {
	service         *openhands.GitService
	prober          domain.Prober
	gitEnabled      bool
	commandsEnabled bool
	logger          *utils.Logger
	connected       atomic.Bool
}

// RemoteOptions contains options for creating a RemoteBackend
type RemoteOptions struct {
	Service         *openhands.GitService
	Prober          domain.Prober
	GitEnabled      bool
	CommandsEnabled bool
	Logger          *utils.Logger
}

// NewRemoteBackend creates a RemoteBackend. It starts disconnected until the
// first probe or SetConnected call.
func NewRemoteBackend(opts RemoteOptions) *RemoteBackend {
	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}
	return &RemoteBackend{
		service:         opts.Service,
		prober:          opts.Prober,
		gitEnabled:      opts.GitEnabled,
		commandsEnabled: opts.CommandsEnabled,
		logger:          logger.WithBackend(string(domain.BackendRemote)),
	}
}

// Kind returns domain.BackendRemote
func (r *RemoteBackend) Kind() domain.BackendKind {
	return domain.BackendRemote
}

// Ready reports whether Git is enabled and the last probe succeeded
func (r *RemoteBackend) Ready() bool {
	return r.gitEnabled && r.Connected()
}

// Connected returns the result of the last probe
func (r *RemoteBackend) Connected() bool {
	return r.connected.Load()
}

// SetConnected records a probe result obtained elsewhere, e.g. by a monitor
func (r *RemoteBackend) SetConnected(connected bool) {
	r.connected.Store(connected)
}

// Refresh probes the backend and records the result
func (r *RemoteBackend) Refresh(ctx context.Context) bool {
	if r.prober == nil {
		return r.Connected()
	}
	ok := r.prober.Probe(ctx)
	r.SetConnected(ok)
	return ok
}

// Clone asks the backend to clone url
func (r *RemoteBackend) Clone(ctx context.Context, url string) (*domain.CloneResult, error) {
	if !r.gitEnabled {
		return nil, domain.NewBackendError(domain.BackendRemote, "clone", domain.ErrFeatureDisabled)
	}
	if !r.Connected() {
		return nil, domain.ErrNotReady
	}

	r.logger.Debug().Str("repo_url", url).Msg("Delegating clone")
	resp, err := r.service.CloneRepository(ctx, url, "")
	if err != nil {
		return nil, domain.NewBackendError(domain.BackendRemote, "clone", err)
	}

	files := make(map[string]domain.FileData, len(resp.Files))
	for path, content := range resp.Files {
		files[path] = domain.FileData{Data: fileText(content), Encoding: "utf8"}
	}
	return &domain.CloneResult{Workdir: resp.Workdir, Files: files}, nil
}

// ExecuteCommand runs command in cwd on the backend
func (r *RemoteBackend) ExecuteCommand(ctx context.Context, command, cwd string) (*domain.CommandResult, error) {
	if !r.gitEnabled || !r.commandsEnabled {
		return nil, domain.NewBackendError(domain.BackendRemote, "executeCommand", domain.ErrFeatureDisabled)
	}
	if !r.Connected() {
		return nil, domain.ErrNotReady
	}

	r.logger.Debug().Str("command", command).Str("cwd", cwd).Msg("Delegating command")
	res, err := r.service.ExecuteGitCommand(ctx, command, cwd)
	if err != nil {
		return nil, domain.NewBackendError(domain.BackendRemote, "executeCommand", err)
	}
	return res, nil
}

// fileText returns string contents as-is and re-encodes anything else as JSON
func fileText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
