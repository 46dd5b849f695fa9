package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/hybridgit/internal/openhands"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List repositories visible to the OpenHands backend",
	Long: `Lists the repositories of the Git provider account the OpenHands backend is
authenticated as, or searches the provider with --search.`,
	Args: cobra.NoArgs,
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().String("search", "", "Search the provider instead of listing your repositories")
	reposCmd.Flags().String("sort", "", "Sort order (pushed for listing, stars for search)")
	reposCmd.Flags().Int("limit", 0, "Maximum number of repositories to print")
	reposCmd.Flags().Bool("json", false, "Print repositories as JSON")
}

func runRepos(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := build(cfg, log, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := cmd.Context()
	query, _ := cmd.Flags().GetString("search")
	sortBy, _ := cmd.Flags().GetString("sort")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	var repos []openhands.Repository
	if query != "" {
		repos, err = c.service.SearchRepositories(ctx, query, limit, sortBy, "")
	} else {
		repos, err = c.service.GetRepositories(ctx, sortBy)
	}
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}
	if limit > 0 && len(repos) > limit {
		repos = repos[:limit]
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(repos)
	}

	if query == "" {
		// the account line is informational; listing already succeeded
		if user, err := c.service.GetUser(ctx); err == nil {
			fmt.Fprintf(out, "Account: %s\n", user.Login)
		}
	}
	for _, r := range repos {
		visibility := "public"
		if r.Private {
			visibility = "private"
		}
		fmt.Fprintf(out, "%-40s %-8s %s\n", r.FullName, visibility, r.CloneURL)
	}
	return nil
}
