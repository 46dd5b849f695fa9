package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Cloner fetches the tip of a repository into an existing empty directory
type Cloner interface {
	Clone(ctx context.Context, repoURL, dir string) error
}

// DefaultCloneTimeout bounds a single clone
const DefaultCloneTimeout = 2 * time.Minute

// GitCLI clones with the system git binary
type GitCLI struct {
	Binary  string
	Timeout time.Duration
}

// NewGitCLI creates a GitCLI, falling back to "git" and DefaultCloneTimeout
func NewGitCLI(binary string, timeout time.Duration) *GitCLI {
	if binary == "" {
		binary = "git"
	}
	if timeout <= 0 {
		timeout = DefaultCloneTimeout
	}
	return &GitCLI{Binary: binary, Timeout: timeout}
}

// Clone runs a depth-1 clone of repoURL into dir
func (g *GitCLI) Clone(ctx context.Context, repoURL, dir string) error {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, g.Binary, "clone", "--depth", "1", "--", repoURL, dir)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("git clone: %w", ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return errors.New(msg)
			}
			return fmt.Errorf("git clone exited with code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("git clone: %w", err)
	}
	return nil
}

// EmbedCredentials places token in the user info of rawURL when its host
// equals host. Other URLs are returned unchanged.
func EmbedCredentials(rawURL, token, host string) string {
	if token == "" || host == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || !strings.EqualFold(u.Hostname(), host) {
		return rawURL
	}
	u.User = url.User(token)
	return u.String()
}

func redact(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, "***")
}
