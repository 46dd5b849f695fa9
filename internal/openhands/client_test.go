package openhands

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientOptions{BaseURL: server.URL + "/", Timeout: 5 * time.Second}), server
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientOptions{})

	assert.Equal(t, "http://localhost:8000", client.BaseURL())
	assert.Equal(t, "/health", client.healthPath)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient(ClientOptions{BaseURL: "http://backend:8000///", HealthPath: "status"})

	assert.Equal(t, "http://backend:8000", client.BaseURL())
	assert.Equal(t, "/status", client.healthPath)
}

func TestClient_Request(t *testing.T) {
	t.Run("sends JSON and decodes response", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/echo", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get("Authorization"))

			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
		})

		var out map[string]string
		err := client.Request(context.Background(), http.MethodPost, "/api/echo", map[string]string{"msg": "hi"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "hi", out["echo"])
	})

	t.Run("attaches bearer token", func(t *testing.T) {
		var auth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}))
		t.Cleanup(server.Close)

		client := NewClient(ClientOptions{BaseURL: server.URL, Token: "abc"})
		require.NoError(t, client.Request(context.Background(), http.MethodGet, "/x", nil, nil))
		assert.Equal(t, "Bearer abc", auth)

		client = NewClient(ClientOptions{BaseURL: server.URL})
		require.NoError(t, client.Request(context.Background(), http.MethodGet, "/x", nil, nil))
		assert.Empty(t, auth)
	})

	t.Run("no content leaves output untouched", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		out := map[string]string{"keep": "me"}
		require.NoError(t, client.Request(context.Background(), http.MethodDelete, "/x", nil, &out))
		assert.Equal(t, "me", out["keep"])
	})

	t.Run("non-2xx returns APIError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, "no such repo")
		})

		err := client.Request(context.Background(), http.MethodGet, "/api/missing", nil, nil)
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "/api/missing", apiErr.Endpoint)
		assert.Equal(t, "API Error (404): no such repo", apiErr.Error())
	})

	t.Run("transport failure wraps ErrConnectivity", func(t *testing.T) {
		client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		err := client.Request(context.Background(), http.MethodGet, "/x", nil, nil)
		assert.ErrorIs(t, err, domain.ErrConnectivity)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "not json")
		})

		var out map[string]any
		err := client.Request(context.Background(), http.MethodGet, "/x", nil, &out)
		assert.ErrorContains(t, err, "failed to decode response")
	})
}

func TestClient_CheckHealth(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"ok", http.StatusOK, true},
		{"no content", http.StatusNoContent, true},
		{"server error", http.StatusInternalServerError, false},
		{"not found", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
			})
			assert.Equal(t, tt.want, client.CheckHealth(context.Background()))
		})
	}

	t.Run("connection refused", func(t *testing.T) {
		client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()
		assert.False(t, client.CheckHealth(context.Background()))
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(server.Close)
		client := NewClient(ClientOptions{
			BaseURL:    server.URL,
			HTTPClient: &http.Client{Timeout: 20 * time.Millisecond},
		})
		assert.False(t, client.CheckHealth(context.Background()))
	})
}

func TestClient_Forward(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/files/a.txt", r.URL.Path)
		assert.Equal(t, "x=1", r.URL.RawQuery)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Cookie"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a":1}`, string(body))
		w.WriteHeader(http.StatusAccepted)
	})

	header := http.Header{}
	header.Set("Authorization", "Bearer t")
	header.Set("Cookie", "session=1")

	resp, err := client.Forward(context.Background(), http.MethodPut, "api/files/a.txt", "x=1", header, []byte(`{"a":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}
