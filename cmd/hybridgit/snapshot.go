package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/hybridgit/internal/utils"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <repo-url>",
	Short: "Take a size-bounded snapshot of a repository",
	Long: `Shallow-clones the repository into a scratch directory and prints its text
files as JSON. Ignored paths are dropped; files over 100KB and files past the
500KB total are listed as skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().Bool("cache", false, "Cache snapshots")
	snapshotCmd.Flags().Bool("summary", false, "Print a summary instead of file contents")
	snapshotCmd.Flags().Bool("no-progress", false, "Disable the progress spinner")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("cache") {
		cfg.Cache.Enabled, _ = cmd.Flags().GetBool("cache")
	}
	summary, _ := cmd.Flags().GetBool("summary")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	var onFile func(string, bool)
	if !noProgress {
		bar := utils.NewProgressBar(os.Stderr, -1, utils.DescScanning)
		defer func() { _ = bar.Finish() }()
		onFile = func(string, bool) { _ = bar.Add(1) }
	}

	c, err := build(cfg, log, onFile)
	if err != nil {
		return err
	}
	defer c.Close()

	result, err := c.snapshots.Snapshot(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if summary {
		fmt.Fprintf(out, "Repository: %s\n", result.RepoURL)
		fmt.Fprintf(out, "Files:      %d\n", len(result.Files))
		fmt.Fprintf(out, "Total size: %dKB\n", (result.TotalSize+512)/1024)
		for _, s := range result.SkippedStrings() {
			fmt.Fprintf(out, "  skipped %s\n", s)
		}
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"files":        result.Files,
		"skippedFiles": result.SkippedStrings(),
		"totalSize":    result.TotalSize,
		"repoUrl":      result.RepoURL,
	})
}
