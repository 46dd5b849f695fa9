package prober

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// Status is the connection state shown to users
type Status string

const (
	StatusChecking     Status = "checking"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// Label returns the human-readable form of the status
func (s Status) Label() string {
	switch s {
	case StatusConnected:
		return "OpenHands Connected"
	case StatusDisconnected:
		return "OpenHands Disconnected"
	default:
		return "Checking OpenHands..."
	}
}

// DefaultInterval is how often the Monitor re-probes
const DefaultInterval = 30 * time.Second

// Monitor probes the backend on a fixed interval and publishes status changes
type Monitor struct {
	prober   domain.Prober
	interval time.Duration
	logger   *utils.Logger

	mu          sync.RWMutex
	status      Status
	subscribers []func(Status)
}

// MonitorOptions contains options for creating a Monitor
type MonitorOptions struct {
	Prober   domain.Prober
	Interval time.Duration
	Logger   *utils.Logger
}

// NewMonitor creates a Monitor in the checking state
func NewMonitor(opts MonitorOptions) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}
	return &Monitor{
		prober:   opts.Prober,
		interval: opts.Interval,
		logger:   logger.WithComponent("monitor"),
		status:   StatusChecking,
	}
}

// Current returns the last published status
func (m *Monitor) Current() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Subscribe registers fn to be called with every status change.
// fn runs on the probing goroutine and must not block.
func (m *Monitor) Subscribe(fn func(Status)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Check probes once and publishes the result if it differs from the last one
func (m *Monitor) Check(ctx context.Context) Status {
	next := StatusDisconnected
	if m.prober.Probe(ctx) {
		next = StatusConnected
	}

	m.mu.Lock()
	changed := next != m.status
	m.status = next
	subs := append([]func(Status){}, m.subscribers...)
	m.mu.Unlock()

	if changed {
		m.logger.Info().Str("status", string(next)).Msg(next.Label())
		for _, fn := range subs {
			fn(next)
		}
	}
	return next
}

// Run probes immediately and then every interval until ctx is done
func (m *Monitor) Run(ctx context.Context) error {
	b := backoff.WithContext(backoff.NewConstantBackOff(m.interval), ctx)
	ticker := backoff.NewTicker(b)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticker.C:
			if !ok {
				return nil
			}
			m.Check(ctx)
		}
	}
}
