package backend

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

// LocalWorkdir is the workdir reported for in-memory clones
const LocalWorkdir = "/"

// LocalBackend clones repositories in-process into memory. It has no
// command execution.
type LocalBackend struct {
	enabled   bool
	depth     int
	token     string
	tokenHost string
	logger    *utils.Logger
}

// LocalOptions contains options for creating a LocalBackend
type LocalOptions struct {
	Enabled bool
	// Depth limits clone history; 0 clones everything
	Depth     int
	Token     string
	TokenHost string
	Logger    *utils.Logger
}

// NewLocalBackend creates a LocalBackend
func NewLocalBackend(opts LocalOptions) *LocalBackend {
	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}
	return &LocalBackend{
		enabled:   opts.Enabled,
		depth:     opts.Depth,
		token:     opts.Token,
		tokenHost: opts.TokenHost,
		logger:    logger.WithBackend(string(domain.BackendLocal)),
	}
}

// Kind returns domain.BackendLocal
func (l *LocalBackend) Kind() domain.BackendKind {
	return domain.BackendLocal
}

// Ready reports whether the local backend is enabled
func (l *LocalBackend) Ready() bool {
	return l.enabled
}

// Clone clones repoURL into memory and returns every worktree file
func (l *LocalBackend) Clone(ctx context.Context, repoURL string) (*domain.CloneResult, error) {
	if !l.enabled {
		return nil, domain.ErrNotReady
	}

	opts := &git.CloneOptions{
		URL:   repoURL,
		Depth: l.depth,
	}
	if l.token != "" && matchesHost(repoURL, l.tokenHost) {
		opts.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: l.token,
		}
	}

	l.logger.Info().Str("repo_url", repoURL).Int("depth", l.depth).Msg("Cloning repository into memory")

	fs := memfs.New()
	if _, err := git.CloneContext(ctx, memory.NewStorage(), fs, opts); err != nil {
		return nil, domain.NewCloneError(repoURL, err.Error(), err)
	}

	files, err := readTree(fs)
	if err != nil {
		return nil, domain.NewBackendError(domain.BackendLocal, "clone", err)
	}

	l.logger.Debug().Int("files", len(files)).Msg("Clone completed")
	return &domain.CloneResult{Workdir: LocalWorkdir, Files: files}, nil
}

// ExecuteCommand is not available on the local backend
func (l *LocalBackend) ExecuteCommand(ctx context.Context, command, cwd string) (*domain.CommandResult, error) {
	return nil, domain.NewBackendError(domain.BackendLocal, "executeCommand", domain.ErrUnsupportedByBackend)
}

// readTree collects every regular file in fs keyed by its slash path
func readTree(fs billy.Filesystem) (map[string]domain.FileData, error) {
	files := make(map[string]domain.FileData)
	stack := []string{"/"}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := fs.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", dir, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

		for _, entry := range entries {
			full := fs.Join(dir, entry.Name())
			switch {
			case entry.IsDir():
				stack = append(stack, full)
			case entry.Mode().IsRegular():
				data, err := readFile(fs, full)
				if err != nil {
					return nil, err
				}
				files[strings.TrimPrefix(full, "/")] = encodeFile(data)
			}
		}
	}
	return files, nil
}

func readFile(fs billy.Filesystem, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func encodeFile(data []byte) domain.FileData {
	if utf8.Valid(data) {
		return domain.FileData{Data: string(data), Encoding: "utf8"}
	}
	return domain.FileData{Data: base64.StdEncoding.EncodeToString(data), Encoding: "base64"}
}

func matchesHost(rawURL, host string) bool {
	if host == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), host)
}
