package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleProxy forwards /api/openhands/<path> to <backend>/<path>
func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	wildcard := chi.URLParam(r, "*")
	if wildcard == "" {
		WriteErrorResponse(w, "Invalid endpoint", http.StatusBadRequest)
		return
	}

	var body []byte
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		body = requestJSON(r)
	}

	resp, err := s.client.Forward(r.Context(), r.Method, wildcard, r.URL.RawQuery, r.Header, body)
	if err != nil {
		s.logger.Error().Err(err).Str("endpoint", wildcard).Msg("Error proxying to OpenHands API")
		WriteErrorResponse(w, "Failed to connect to OpenHands API", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(raw) {
		raw = []byte("{}")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(raw)
}

// requestJSON returns the request body when it is valid JSON and {} otherwise
func requestJSON(r *http.Request) []byte {
	if r.Body == nil {
		return []byte("{}")
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(raw) {
		return []byte("{}")
	}
	return raw
}
