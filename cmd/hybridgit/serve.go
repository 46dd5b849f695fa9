package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/quantmind-br/hybridgit/internal/config"
	"github.com/quantmind-br/hybridgit/internal/prober"
	"github.com/quantmind-br/hybridgit/internal/server"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Runs the HTTP server and a background monitor that probes the OpenHands
backend every probe interval and switches Git backends as it comes and goes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("address", config.DefaultServerAddress, "Listen address")
	serveCmd.Flags().Duration("probe-interval", config.DefaultProbeInterval, "Backend probe interval")
	serveCmd.Flags().Bool("cache", false, "Cache snapshots")
	_ = viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
	_ = viper.BindPFlag("backend.probe_interval", serveCmd.Flags().Lookup("probe-interval"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("cache") {
		cfg.Cache.Enabled, _ = cmd.Flags().GetBool("cache")
	}

	c, err := build(cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := notifyContext(cmd.Context())
	defer stop()

	monitor := prober.NewMonitor(prober.MonitorOptions{
		Prober:   c.prober,
		Interval: cfg.Backend.ProbeInterval,
		Logger:   log,
	})
	watchBackend(c, monitor, log)

	srv := &http.Server{
		Addr: cfg.Server.Address,
		Handler: server.New(server.Options{
			Client:     c.client,
			Selector:   c.selector,
			Snapshots:  c.snapshots,
			InstanceID: cfg.Server.InstanceID,
			Logger:     log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return monitor.Run(gctx)
	})
	g.Go(func() error {
		log.Info().Str("address", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(srv, cfg.Server.ShutdownTimeout, log)
	})

	return g.Wait()
}

// watchBackend feeds monitor transitions into the selector. The local
// backend is selected until the first health check completes.
func watchBackend(c *components, monitor *prober.Monitor, log *utils.Logger) {
	monitor.Subscribe(func(st prober.Status) {
		c.remote.SetConnected(st == prober.StatusConnected)
		c.selector.Update(c.local.Ready(), c.remote.Ready(), c.remote.Connected())
		log.Info().Str("status", st.Label()).Msg("Backend status changed")
	})
	c.selector.Update(c.local.Ready(), false, false)
}

func shutdown(srv *http.Server, timeout time.Duration, log *utils.Logger) error {
	log.Info().Msg("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// notifyContext is canceled on SIGINT or SIGTERM
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
