// Package prober checks whether the remote OpenHands backend is reachable.
package prober

import (
	"context"
	"time"

	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/openhands"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

var _ domain.Prober = (*HTTPProber)(nil)

// HTTPProber probes the backend's health path. Every call issues a fresh
// request; results are never cached.
type HTTPProber struct {
	client  *openhands.Client
	timeout time.Duration
	logger  *utils.Logger
}

// Options contains options for creating an HTTPProber
type Options struct {
	Client  *openhands.Client
	Timeout time.Duration // per-probe deadline, 0 leaves it to the client
	Logger  *utils.Logger
}

// New creates a new HTTPProber
func New(opts Options) *HTTPProber {
	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}
	return &HTTPProber{
		client:  opts.Client,
		timeout: opts.Timeout,
		logger:  logger.WithComponent("prober"),
	}
}

// Probe returns true when the backend answered with a success status
func (p *HTTPProber) Probe(ctx context.Context) bool {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ok := p.client.CheckHealth(ctx)
	p.logger.Debug().Bool("connected", ok).Str("api_url", p.client.BaseURL()).Msg("Probed OpenHands backend")
	return ok
}
