package server

import (
	"net/http"
	"time"

	"github.com/quantmind-br/hybridgit/pkg/version"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	InstanceID string `json:"instanceId"`
	// Uptime is in milliseconds
	Uptime    int64  `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	WriteJSONResponse(w, HealthResponse{
		Status:     "ok",
		Version:    version.Short(),
		InstanceID: s.instanceID,
		Uptime:     now.Sub(s.startedAt).Milliseconds(),
		Timestamp:  now.UTC().Format(time.RFC3339Nano),
	}, http.StatusOK)
}
