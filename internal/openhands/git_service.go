package openhands

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

// GitService exposes the backend's Git endpoints
type GitService struct {
	client *Client
}

// NewGitService creates a GitService on top of client
func NewGitService(client *Client) *GitService {
	return &GitService{client: client}
}

// GetUser returns the Git provider user the backend is authenticated as
func (s *GitService) GetUser(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.Request(ctx, http.MethodGet, "/api/user/info", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetRepositories lists the authenticated user's repositories
func (s *GitService) GetRepositories(ctx context.Context, sort string) ([]Repository, error) {
	if sort == "" {
		sort = "pushed"
	}
	var repos []Repository
	endpoint := "/api/user/repositories?sort=" + url.QueryEscape(sort)
	if err := s.client.Request(ctx, http.MethodGet, endpoint, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// SearchRepositories searches repositories on the Git provider
func (s *GitService) SearchRepositories(ctx context.Context, query string, perPage int, sort, order string) ([]Repository, error) {
	if perPage <= 0 {
		perPage = 5
	}
	if sort == "" {
		sort = "stars"
	}
	if order == "" {
		order = "desc"
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", fmt.Sprint(perPage))
	q.Set("sort", sort)
	q.Set("order", order)

	var repos []Repository
	if err := s.client.Request(ctx, http.MethodGet, "/api/user/search/repositories?"+q.Encode(), nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// CloneRepository asks the backend to clone repoURL into targetDir
// (the backend picks a directory when targetDir is empty)
func (s *GitService) CloneRepository(ctx context.Context, repoURL, targetDir string) (*CloneResponse, error) {
	var resp CloneResponse
	req := cloneRequest{URL: repoURL, TargetDir: targetDir}
	if err := s.client.Request(ctx, http.MethodPost, "/api/git/clone", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExecuteGitCommand runs command in cwd on the backend
func (s *GitService) ExecuteGitCommand(ctx context.Context, command, cwd string) (*domain.CommandResult, error) {
	var result domain.CommandResult
	req := executeRequest{Command: command, Cwd: cwd}
	if err := s.client.Request(ctx, http.MethodPost, "/api/git/execute", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
