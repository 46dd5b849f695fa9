package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/hybridgit/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the snapshot cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print snapshot cache statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		bc, err := openCache(cfg)
		if err != nil {
			return err
		}
		defer bc.Close()

		stats := bc.Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Entries:   %d\n", stats["entries"])
		fmt.Fprintf(out, "LSM size:  %d\n", stats["lsm_size"])
		fmt.Fprintf(out, "Vlog size: %d\n", stats["vlog_size"])
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		bc, err := openCache(cfg)
		if err != nil {
			return err
		}
		defer bc.Close()

		n := bc.Size()
		if err := bc.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached snapshots\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
