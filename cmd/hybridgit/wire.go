package main

import (
	"fmt"

	"github.com/quantmind-br/hybridgit/internal/backend"
	"github.com/quantmind-br/hybridgit/internal/cache"
	"github.com/quantmind-br/hybridgit/internal/config"
	"github.com/quantmind-br/hybridgit/internal/openhands"
	"github.com/quantmind-br/hybridgit/internal/prober"
	"github.com/quantmind-br/hybridgit/internal/snapshot"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// components are the long-lived objects built from configuration
type components struct {
	client    *openhands.Client
	service   *openhands.GitService
	prober    *prober.HTTPProber
	local     *backend.LocalBackend
	remote    *backend.RemoteBackend
	selector  *backend.Selector
	snapshots snapshot.Service
	cache     *cache.BadgerCache
}

// build wires every component from cfg. onFile may be nil.
func build(cfg *config.Config, log *utils.Logger, onFile snapshot.FileFunc) (*components, error) {
	client := openhands.NewClient(openhands.ClientOptions{
		BaseURL:    cfg.Backend.APIURL,
		HealthPath: cfg.Backend.HealthPath,
		Token:      cfg.Backend.Token,
		Timeout:    cfg.Backend.Timeout,
		Logger:     log,
	})
	service := openhands.NewGitService(client)
	p := prober.New(prober.Options{Client: client, Logger: log})

	local := backend.NewLocalBackend(backend.LocalOptions{
		Enabled:   cfg.Local.Enabled,
		Depth:     cfg.Local.Depth,
		Token:     cfg.Git.Token,
		TokenHost: cfg.Git.TokenHost,
		Logger:    log,
	})
	remote := backend.NewRemoteBackend(backend.RemoteOptions{
		Service:         service,
		Prober:          p,
		GitEnabled:      cfg.Features.Enabled && cfg.Features.GitEnabled,
		CommandsEnabled: cfg.Features.Enabled && cfg.Features.CommandsEnabled,
		Logger:          log,
	})
	sel := backend.NewSelector(backend.SelectorOptions{Local: local, Remote: remote, Logger: log})

	c := &components{
		client:   client,
		service:  service,
		prober:   p,
		local:    local,
		remote:   remote,
		selector: sel,
	}

	var snaps snapshot.Service = snapshot.New(snapshot.Options{
		ScratchDir: utils.ExpandPath(cfg.Git.ScratchDir),
		Token:      cfg.Git.Token,
		TokenHost:  cfg.Git.TokenHost,
		Cloner:     snapshot.NewGitCLI(cfg.Git.Binary, cfg.Git.CloneTimeout),
		OnFile:     onFile,
		Logger:     log,
	})
	if cfg.Cache.Enabled {
		bc, err := openCache(cfg)
		if err != nil {
			return nil, err
		}
		c.cache = bc
		snaps = snapshot.NewCached(snaps, bc, cfg.Cache.TTL, log)
	}
	c.snapshots = snaps

	return c, nil
}

func openCache(cfg *config.Config) (*cache.BadgerCache, error) {
	opts := cache.DefaultOptions()
	opts.Directory = utils.ExpandPath(cfg.Cache.Directory)
	if opts.Directory == "" {
		opts.Directory = config.CacheDir()
	}
	bc, err := cache.NewBadgerCache(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return bc, nil
}

// Close releases resources held by the components
func (c *components) Close() error {
	if c.cache != nil {
		return c.cache.Close()
	}
	return nil
}
