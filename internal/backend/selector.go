package backend

import (
	"context"
	"sync"

	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// Connectivity is implemented by backends whose usability depends on a
// liveness probe
type Connectivity interface {
	Connected() bool
	// Refresh probes the backend and returns the new connected state
	Refresh(ctx context.Context) bool
}

// Status is a point-in-time view of the selector inputs and output
type Status struct {
	Selection Selection            `json:"selection"`
	Local     domain.BackendStatus `json:"local"`
	Remote    domain.BackendStatus `json:"remote"`
}

// Selector delegates Git operations to whichever backend Select chooses.
// It keeps only the three flags it was last given.
type Selector struct {
	local  domain.GitBackend
	remote domain.GitBackend
	logger *utils.Logger

	mu              sync.RWMutex
	localReady      bool
	remoteReady     bool
	remoteConnected bool
	selection       Selection
}

// SelectorOptions contains options for creating a Selector
type SelectorOptions struct {
	Local  domain.GitBackend
	Remote domain.GitBackend
	Logger *utils.Logger
}

// NewSelector creates a Selector in the Undetermined state
func NewSelector(opts SelectorOptions) *Selector {
	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}
	return &Selector{
		local:  opts.Local,
		remote: opts.Remote,
		logger: logger.WithComponent("selector"),
	}
}

// Update re-evaluates the selection from the given flags immediately.
// A backend the selector was built without is never ready.
func (s *Selector) Update(localReady, remoteReady, remoteConnected bool) Selection {
	localReady = localReady && s.local != nil
	remoteReady = remoteReady && s.remote != nil
	remoteConnected = remoteConnected && s.remote != nil
	next := Select(localReady, remoteReady, remoteConnected)

	s.mu.Lock()
	prev := s.selection
	s.localReady = localReady
	s.remoteReady = remoteReady
	s.remoteConnected = remoteConnected
	s.selection = next
	s.mu.Unlock()

	if prev != next {
		s.logger.Info().
			Str("from", prev.String()).
			Str("to", next.String()).
			Msg("Git backend switched")
	}
	return next
}

// Refresh derives the flags from the backends and re-evaluates. A remote
// backend implementing Connectivity is probed first.
func (s *Selector) Refresh(ctx context.Context) Selection {
	var localReady, remoteReady, remoteConnected bool
	if s.local != nil {
		localReady = s.local.Ready()
	}
	if s.remote != nil {
		c, probed := s.remote.(Connectivity)
		if probed {
			remoteConnected = c.Refresh(ctx)
		}
		remoteReady = s.remote.Ready()
		if !probed {
			remoteConnected = remoteReady
		}
	}
	return s.Update(localReady, remoteReady, remoteConnected)
}

// Selection returns the current selection
func (s *Selector) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// Status returns the current flags and selection
func (s *Selector) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		Selection: s.selection,
		Local:     domain.BackendStatus{Kind: domain.BackendLocal, Ready: s.localReady},
		Remote: domain.BackendStatus{
			Kind:      domain.BackendRemote,
			Ready:     s.remoteReady,
			Connected: s.remoteConnected,
		},
	}
}

// Clone clones url with the active backend
func (s *Selector) Clone(ctx context.Context, url string) (*domain.CloneResult, error) {
	switch s.Selection() {
	case Remote:
		return s.remote.Clone(ctx, url)
	case Local:
		return s.local.Clone(ctx, url)
	default:
		return nil, domain.ErrNotReady
	}
}

// ExecuteCommand runs command on the remote backend. The local backend has
// no command execution, so a Local selection is rejected.
func (s *Selector) ExecuteCommand(ctx context.Context, command, cwd string) (*domain.CommandResult, error) {
	switch s.Selection() {
	case Remote:
		return s.remote.ExecuteCommand(ctx, command, cwd)
	case Local:
		return nil, domain.NewBackendError(domain.BackendLocal, "executeCommand", domain.ErrUnsupportedByBackend)
	default:
		return nil, domain.ErrNotReady
	}
}
