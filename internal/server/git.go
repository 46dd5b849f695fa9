package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

type cloneRequest struct {
	URL string `json:"url"`
}

type executeRequest struct {
	Command string `json:"command"`
	Cwd     string `json:"cwd"`
}

func (s *Server) handleGitStatus(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, s.selector.Status(), http.StatusOK)
}

func (s *Server) handleGitClone(w http.ResponseWriter, r *http.Request) {
	var req cloneRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.URL) == "" {
		WriteErrorResponse(w, "Repository URL is required", http.StatusBadRequest)
		return
	}

	result, err := s.selector.Clone(r.Context(), req.URL)
	if err != nil {
		s.writeGitError(w, "clone", err)
		return
	}
	WriteJSONResponse(w, result, http.StatusOK)
}

func (s *Server) handleGitExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Command) == "" {
		WriteErrorResponse(w, "Command is required", http.StatusBadRequest)
		return
	}

	result, err := s.selector.ExecuteCommand(r.Context(), req.Command, req.Cwd)
	if err != nil {
		s.writeGitError(w, "executeCommand", err)
		return
	}
	WriteJSONResponse(w, result, http.StatusOK)
}

func (s *Server) writeGitError(w http.ResponseWriter, op string, err error) {
	status := gitErrorStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("op", op).Msg("Git operation failed")
	}
	WriteErrorResponse(w, err.Error(), status)
}

// gitErrorStatus maps delegated Git errors to HTTP status codes
func gitErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUnsupportedByBackend), errors.Is(err, domain.ErrFeatureDisabled):
		return http.StatusNotImplemented
	default:
		return http.StatusBadGateway
	}
}
