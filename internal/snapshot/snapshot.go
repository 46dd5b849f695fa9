package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/quantmind-br/hybridgit/internal/domain"
	"github.com/quantmind-br/hybridgit/internal/utils"
)

const (
	// MaxFileSize is the largest file accepted into a snapshot
	MaxFileSize int64 = 100 * 1024
	// MaxTotalSize caps the sum of accepted file sizes
	MaxTotalSize int64 = 500 * 1024
)

// Service produces repository snapshots
type Service interface {
	Snapshot(ctx context.Context, repoURL string) (*domain.SnapshotResult, error)
}

// FileFunc is called once per visited file, after it was accepted or skipped
type FileFunc func(relPath string, accepted bool)

// Snapshotter clones repositories into scratch directories and collects
// their text files
type Snapshotter struct {
	scratchDir string
	token      string
	tokenHost  string
	cloner     Cloner
	matcher    *Matcher
	onFile     FileFunc
	logger     *utils.Logger
}

// Options contains options for creating a Snapshotter
type Options struct {
	// ScratchDir is the parent of per-call scratch directories (os.TempDir() if empty)
	ScratchDir string
	Token      string
	// TokenHost is the only host the token is sent to
	TokenHost string
	Cloner    Cloner
	OnFile    FileFunc
	Logger    *utils.Logger
}

// New creates a Snapshotter. A nil Cloner uses the system git binary.
func New(opts Options) *Snapshotter {
	logger := opts.Logger
	if logger == nil {
		logger = utils.Nop()
	}
	cloner := opts.Cloner
	if cloner == nil {
		cloner = NewGitCLI("", 0)
	}
	scratch := opts.ScratchDir
	if scratch == "" {
		scratch = os.TempDir()
	}
	return &Snapshotter{
		scratchDir: scratch,
		token:      opts.Token,
		tokenHost:  opts.TokenHost,
		cloner:     cloner,
		matcher:    DefaultMatcher(),
		onFile:     opts.OnFile,
		logger:     logger.WithComponent("snapshot"),
	}
}

// Snapshot clones repoURL and returns its accepted and skipped files
func (s *Snapshotter) Snapshot(ctx context.Context, repoURL string) (*domain.SnapshotResult, error) {
	if strings.TrimSpace(repoURL) == "" {
		return nil, fmt.Errorf("%w: repository URL is required", domain.ErrInvalidURL)
	}
	logger := s.logger.WithRepo(repoURL)

	dir := filepath.Join(s.scratchDir, "snapshot-"+uuid.NewString())
	if err := os.Mkdir(dir, 0700); err != nil {
		return nil, fmt.Errorf("create scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("Failed to remove scratch directory")
		}
	}()

	logger.Info().Str("dir", dir).Msg("Cloning repository")
	cloneURL := EmbedCredentials(repoURL, s.token, s.tokenHost)
	if err := s.cloner.Clone(ctx, cloneURL, dir); err != nil {
		msg := redact(err.Error(), s.token)
		logger.Error().Str("error", msg).Msg("Clone failed")
		return nil, domain.NewCloneError(repoURL, msg, ctx.Err())
	}

	result, err := s.collect(ctx, dir)
	if err != nil {
		return nil, err
	}
	result.RepoURL = repoURL

	logger.Info().
		Int("files", len(result.Files)).
		Int("skipped", len(result.Skipped)).
		Int64("total_size", result.TotalSize).
		Msg("Snapshot completed")
	return result, nil
}

type walkItem struct {
	rel   string
	entry fs.DirEntry
}

// collect walks root depth-first in name order
func (s *Snapshotter) collect(ctx context.Context, root string) (*domain.SnapshotResult, error) {
	result := &domain.SnapshotResult{
		Files:   []domain.FileRecord{},
		Skipped: []domain.SkipRecord{},
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read snapshot root: %w", err)
	}
	stack := pushEntries(nil, "", entries)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case item.entry.IsDir():
			if s.matcher.Match(item.rel, true) {
				continue
			}
			children, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(item.rel)))
			if err != nil {
				result.Skipped = append(result.Skipped, readError(item.rel, err))
				continue
			}
			stack = pushEntries(stack, item.rel, children)
		case item.entry.Type().IsRegular():
			if s.matcher.Match(item.rel, false) {
				continue
			}
			s.visitFile(root, item.rel, item.entry, result)
		}
	}
	return result, nil
}

// pushEntries pushes sorted entries in reverse so they pop in name order
func pushEntries(stack []walkItem, dir string, entries []fs.DirEntry) []walkItem {
	for i := len(entries) - 1; i >= 0; i-- {
		stack = append(stack, walkItem{rel: path.Join(dir, entries[i].Name()), entry: entries[i]})
	}
	return stack
}

func (s *Snapshotter) visitFile(root, rel string, entry fs.DirEntry, result *domain.SnapshotResult) {
	accepted := false
	defer func() {
		if s.onFile != nil {
			s.onFile(rel, accepted)
		}
	}()

	info, err := entry.Info()
	if err != nil {
		result.Skipped = append(result.Skipped, readError(rel, err))
		return
	}
	if skip, ok := checkCaps(rel, info.Size(), result.TotalSize); !ok {
		result.Skipped = append(result.Skipped, skip)
		return
	}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		result.Skipped = append(result.Skipped, readError(rel, err))
		return
	}
	size := int64(len(data))
	// the file may have changed between stat and read
	if skip, ok := checkCaps(rel, size, result.TotalSize); !ok {
		result.Skipped = append(result.Skipped, skip)
		return
	}
	if !utf8.Valid(data) {
		result.Skipped = append(result.Skipped, readError(rel, errors.New("invalid UTF-8 content")))
		return
	}

	result.Files = append(result.Files, domain.FileRecord{Path: rel, Content: string(data), Size: size})
	result.TotalSize += size
	accepted = true
}

func checkCaps(rel string, size, total int64) (domain.SkipRecord, bool) {
	switch {
	case size > MaxFileSize:
		return domain.SkipRecord{Path: rel, Reason: domain.SkipTooLarge, Size: size}, false
	case total+size > MaxTotalSize:
		return domain.SkipRecord{Path: rel, Reason: domain.SkipWouldExceedTotal, Size: size}, false
	default:
		return domain.SkipRecord{}, true
	}
}

func readError(rel string, err error) domain.SkipRecord {
	return domain.SkipRecord{Path: rel, Reason: domain.SkipReadError, Message: err.Error()}
}
