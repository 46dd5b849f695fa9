package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/hybridgit/internal/prober"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which Git backend is active",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var cloneCmd = &cobra.Command{
	Use:   "clone <repo-url>",
	Short: "Clone a repository with the active Git backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runClone,
}

var execCmd = &cobra.Command{
	Use:   "exec <command>",
	Short: "Run a command on the remote Git backend",
	Long:  "Runs a command on the OpenHands backend. The local backend cannot execute commands.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExec,
}

func init() {
	statusCmd.Flags().Bool("watch", false, "Keep probing and print status changes")
	statusCmd.Flags().Bool("json", false, "Print status as JSON")
	cloneCmd.Flags().Bool("list", false, "Only list cloned file paths")
	execCmd.Flags().String("cwd", "", "Working directory on the backend")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := build(cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	out := cmd.OutOrStdout()
	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		monitor := prober.NewMonitor(prober.MonitorOptions{
			Prober:   c.prober,
			Interval: cfg.Backend.ProbeInterval,
			Logger:   log,
		})
		monitor.Subscribe(func(st prober.Status) {
			fmt.Fprintf(out, "%s %s\n", time.Now().Format(time.TimeOnly), st.Label())
		})
		ctx, stop := notifyContext(cmd.Context())
		defer stop()
		return monitor.Run(ctx)
	}

	c.selector.Refresh(cmd.Context())
	status := c.selector.Status()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	label := prober.StatusDisconnected
	if status.Remote.Connected {
		label = prober.StatusConnected
	}
	fmt.Fprintf(out, "Backend:  %s (%s)\n", label.Label(), cfg.Backend.APIURL)
	fmt.Fprintf(out, "Local:    ready=%t\n", status.Local.Ready)
	fmt.Fprintf(out, "Remote:   ready=%t connected=%t\n", status.Remote.Ready, status.Remote.Connected)
	fmt.Fprintf(out, "Selected: %s\n", status.Selection)
	return nil
}

func runClone(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := build(cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	sel := c.selector.Refresh(cmd.Context())
	log.Info().Str("backend", sel.String()).Msg("Cloning repository")

	result, err := c.selector.Clone(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	list, _ := cmd.Flags().GetBool("list")
	if list {
		paths := make([]string, 0, len(result.Files))
		for p := range result.Files {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		fmt.Fprintf(out, "Workdir: %s\n", result.Workdir)
		for _, p := range paths {
			fmt.Fprintln(out, p)
		}
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := build(cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	cwd, _ := cmd.Flags().GetString("cwd")
	c.selector.Refresh(cmd.Context())

	result, err := c.selector.ExecuteCommand(cmd.Context(), args[0], cwd)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Output)
	if result.ExitCode != 0 {
		return fmt.Errorf("command exited with code %d", result.ExitCode)
	}
	return nil
}
