package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/hybridgit/internal/config"
	"github.com/quantmind-br/hybridgit/internal/openhands"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  "Verifies that the git binary, the backend, and the scratch directory are usable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Checking system dependencies...")
		allPassed := true

		// Check 1: Config file
		fmt.Fprint(out, "  Config file: ")
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(out, "WARN (%v)\n", err)
			cfg = config.Default()
		} else {
			fmt.Fprintln(out, "OK")
		}

		// Check 2: git binary
		fmt.Fprint(out, "  git binary: ")
		if path := checkGit(cfg.Git.Binary); path != "" {
			fmt.Fprintf(out, "OK (%s)\n", path)
		} else {
			fmt.Fprintf(out, "NOT FOUND (%s; snapshots will fail)\n", cfg.Git.Binary)
			allPassed = false
		}

		// Check 3: OpenHands backend
		fmt.Fprint(out, "  OpenHands backend: ")
		if checkBackend(cmd.Context(), cfg) {
			fmt.Fprintf(out, "OK (%s)\n", cfg.Backend.APIURL)
		} else {
			fmt.Fprintf(out, "UNREACHABLE (%s; local backend will be used)\n", cfg.Backend.APIURL)
		}

		// Check 4: Scratch directory
		fmt.Fprint(out, "  Scratch directory: ")
		scratch := utils.ExpandPath(cfg.Git.ScratchDir)
		if scratch == "" {
			scratch = os.TempDir()
		}
		if checkWritable(scratch) {
			fmt.Fprintf(out, "OK (%s)\n", scratch)
		} else {
			fmt.Fprintf(out, "FAILED (%s is not writable)\n", scratch)
			allPassed = false
		}

		fmt.Fprintln(out)
		printDoctorSummary(out, allPassed)
		return nil
	},
}

func printDoctorSummary(out io.Writer, allPassed bool) {
	if allPassed {
		fmt.Fprintln(out, "All critical checks passed!")
	} else {
		fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
	}
}

// checkGit returns the resolved path of the git binary or ""
func checkGit(binary string) string {
	path, err := execLookPath(binary)
	if err != nil {
		return ""
	}
	return path
}

// checkBackend probes the configured backend once
func checkBackend(ctx context.Context, cfg *config.Config) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client := openhands.NewClient(openhands.ClientOptions{
		BaseURL:    cfg.Backend.APIURL,
		HealthPath: cfg.Backend.HealthPath,
		Timeout:    5 * time.Second,
	})
	return client.CheckHealth(ctx)
}

// checkWritable checks that a file can be created in dir
func checkWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".hybridgit_write_*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
