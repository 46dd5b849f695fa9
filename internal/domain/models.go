package domain

import "fmt"

// BackendKind identifies one of the two interchangeable Git execution providers
type BackendKind string

const (
	BackendLocal  BackendKind = "local"
	BackendRemote BackendKind = "remote"
)

// BackendStatus describes whether a backend can currently be used.
// Connected is only meaningful for the remote backend.
type BackendStatus struct {
	Kind      BackendKind `json:"kind"`
	Ready     bool        `json:"ready"`
	Connected bool        `json:"connected,omitempty"`
}

// FileData is the content of a single file returned by a clone
type FileData struct {
	Data     string `json:"data"`
	Encoding string `json:"encoding,omitempty"` // "utf8" or "base64"
}

// CloneResult is the outcome of a delegated clone operation
type CloneResult struct {
	Workdir string              `json:"workdir"`
	Files   map[string]FileData `json:"files"`
}

// CommandResult is the outcome of a delegated command execution
type CommandResult struct {
	Output   string `json:"output"`
	ExitCode int    `json:"exitCode"`
}

// FileRecord is a file accepted into a repository snapshot
type FileRecord struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Size    int64  `json:"size"`
}

// SkipReason explains why a file was left out of a snapshot
type SkipReason string

const (
	SkipTooLarge         SkipReason = "too_large"
	SkipWouldExceedTotal SkipReason = "would_exceed_total"
	SkipReadError        SkipReason = "read_error"
)

// SkipRecord is a file that was seen during a snapshot but not accepted
type SkipRecord struct {
	Path    string     `json:"path"`
	Reason  SkipReason `json:"reason"`
	Size    int64      `json:"size,omitempty"`
	Message string     `json:"message,omitempty"` // only set for SkipReadError
}

// String renders the record the way the snapshot endpoint reports it
func (s SkipRecord) String() string {
	switch s.Reason {
	case SkipTooLarge:
		return fmt.Sprintf("%s (too large: %dKB)", s.Path, roundKB(s.Size))
	case SkipWouldExceedTotal:
		return fmt.Sprintf("%s (would exceed total size limit)", s.Path)
	default:
		return fmt.Sprintf("%s (error: %s)", s.Path, s.Message)
	}
}

func roundKB(size int64) int64 {
	return (size + 512) / 1024
}

// SnapshotResult is a size-bounded, filtered copy of a repository's files
type SnapshotResult struct {
	Files     []FileRecord `json:"files"`
	Skipped   []SkipRecord `json:"skipped"`
	TotalSize int64        `json:"totalSize"`
	RepoURL   string       `json:"repoUrl"`
}

// SkippedStrings returns the human-readable form of every skip record
func (r *SnapshotResult) SkippedStrings() []string {
	out := make([]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		out = append(out, s.String())
	}
	return out
}
