package openhands

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

func TestGitService_CloneRepository(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/git/clone", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://github.com/acme/widgets", req["url"])
		_, hasTarget := req["target_dir"]
		assert.False(t, hasTarget)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"workdir": "/workspace/widgets",
			"files":   map[string]any{"README.md": "# Widgets"},
		})
	})

	svc := NewGitService(client)
	resp, err := svc.CloneRepository(context.Background(), "https://github.com/acme/widgets", "")
	require.NoError(t, err)
	assert.Equal(t, "/workspace/widgets", resp.Workdir)
	assert.Equal(t, "# Widgets", resp.Files["README.md"])
}

func TestGitService_ExecuteGitCommand(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/git/execute", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "git status", req["command"])
		assert.Equal(t, "/workspace/widgets", req["cwd"])

		_, _ = w.Write([]byte(`{"output":"On branch main","exitCode":0}`))
	})

	res, err := NewGitService(client).ExecuteGitCommand(context.Background(), "git status", "/workspace/widgets")
	require.NoError(t, err)
	assert.Equal(t, &domain.CommandResult{Output: "On branch main", ExitCode: 0}, res)
}

func TestGitService_ExecuteGitCommand_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := NewGitService(client).ExecuteGitCommand(context.Background(), "git log", "/")
	var apiErr *domain.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestGitService_GetUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/info", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"login":"octocat","name":"The Octocat"}`))
	})

	user, err := NewGitService(client).GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, 7, user.ID)
}

func TestGitService_GetRepositories(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/repositories", r.URL.Path)
		assert.Equal(t, "pushed", r.URL.Query().Get("sort"))
		_, _ = w.Write([]byte(`[{"id":1,"full_name":"acme/widgets","default_branch":"main","owner":{"login":"acme"}}]`))
	})

	repos, err := NewGitService(client).GetRepositories(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "acme/widgets", repos[0].FullName)
	assert.Equal(t, "acme", repos[0].Owner.Login)
}

func TestGitService_SearchRepositories(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/user/search/repositories", r.URL.Path)
		assert.Equal(t, "go git", q.Get("query"))
		assert.Equal(t, "5", q.Get("per_page"))
		assert.Equal(t, "stars", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("order"))
		_, _ = w.Write([]byte(`[]`))
	})

	repos, err := NewGitService(client).SearchRepositories(context.Background(), "go git", 0, "", "")
	require.NoError(t, err)
	assert.Empty(t, repos)
}
