package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

type serverGitRequest struct {
	RepoURL string `json:"repoUrl"`
}

// serverGitResponse is the success body of POST /api/server-git
type serverGitResponse struct {
	Success      bool                `json:"success"`
	Files        []domain.FileRecord `json:"files"`
	SkippedFiles []string            `json:"skippedFiles"`
	TotalSize    int64               `json:"totalSize"`
	RepoURL      string              `json:"repoUrl"`
}

func (s *Server) handleServerGit(w http.ResponseWriter, r *http.Request) {
	var req serverGitRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.RepoURL) == "" {
		WriteErrorResponse(w, "Repository URL is required", http.StatusBadRequest)
		return
	}

	result, err := s.snapshots.Snapshot(r.Context(), req.RepoURL)
	if err != nil {
		s.logger.Error().Err(err).Str("repo_url", req.RepoURL).Msg("Server-side clone failed")
		WriteJSONResponse(w, map[string]string{
			"error":   "Failed to clone repository",
			"message": cloneMessage(err),
		}, http.StatusInternalServerError)
		return
	}

	WriteJSONResponse(w, serverGitResponse{
		Success:      true,
		Files:        result.Files,
		SkippedFiles: result.SkippedStrings(),
		TotalSize:    result.TotalSize,
		RepoURL:      result.RepoURL,
	}, http.StatusOK)
}

func cloneMessage(err error) string {
	var cloneErr *domain.CloneError
	if errors.As(err, &cloneErr) && cloneErr.Message != "" {
		return cloneErr.Message
	}
	return err.Error()
}
