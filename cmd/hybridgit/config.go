package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/hybridgit/internal/config"
	"github.com/quantmind-br/hybridgit/internal/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// never echo secrets
		if cfg.Backend.Token != "" {
			cfg.Backend.Token = "***"
		}
		if cfg.Git.Token != "" {
			cfg.Git.Token = "***"
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if path == config.ConfigFilePath() {
			if err := config.EnsureConfigDir(); err != nil {
				return err
			}
		}
		if err := config.Set(path, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], path)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		keys := config.KnownKeys()
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if path == config.ConfigFilePath() {
			if err := config.EnsureConfigDir(); err != nil {
				return err
			}
		}
		if err := config.Save(config.Default(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		accessible, _ := cmd.Flags().GetBool("accessible")
		path := configPath()
		saved, err := runEditor(tui.Options{
			Config:     cfg,
			Path:       path,
			Accessible: accessible,
			SaveFunc: func(c *config.Config) error {
				if path == config.ConfigFilePath() {
					if err := config.EnsureConfigDir(); err != nil {
						return err
					}
				}
				return config.Save(c, path)
			},
		})
		if err != nil {
			return err
		}
		if saved != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		}
		return nil
	},
}

// runEditor is swapped in tests
var runEditor = tui.Run

func init() {
	configEditCmd.Flags().Bool("accessible", false, "Use accessible prompts instead of the full-screen editor")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configInitCmd)
}

// configPath is the explicit --config file or the default location
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return config.ConfigFilePath()
}
