package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/hybridgit/internal/domain"
)

const kib = 1024

// fakeCloner writes a fixed file set into the clone directory
type fakeCloner struct {
	files    map[string][]byte
	symlinks map[string]string
	err      error

	gotURL string
	gotDir string
}

func (f *fakeCloner) Clone(ctx context.Context, repoURL, dir string) error {
	f.gotURL = repoURL
	f.gotDir = dir
	if f.err != nil {
		return f.err
	}
	for name, data := range f.files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(p, data, 0644); err != nil {
			return err
		}
	}
	for name, target := range f.symlinks {
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func sized(n int) []byte {
	return []byte(strings.Repeat("a", n))
}

func newTestSnapshotter(t *testing.T, cloner Cloner) (*Snapshotter, string) {
	t.Helper()
	scratch := t.TempDir()
	return New(Options{ScratchDir: scratch, Cloner: cloner}), scratch
}

func assertScratchEmpty(t *testing.T, scratch string) {
	t.Helper()
	entries, err := os.ReadDir(scratch)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory should be removed")
}

func paths(files []domain.FileRecord) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestSnapshot_AcceptsEverythingUnderCaps(t *testing.T) {
	cloner := &fakeCloner{files: map[string][]byte{
		"README.md":      []byte("# widgets"),
		"src/main.go":    []byte("package main"),
		"src/util/x.go":  sized(90 * kib),
		"docs/guide.md":  sized(100 * kib),
		"docs/empty.txt": {},
	}}
	s, scratch := newTestSnapshotter(t, cloner)

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)

	assert.Len(t, res.Files, 5)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, int64(9+12+90*kib+100*kib), res.TotalSize)
	assert.Equal(t, "https://github.com/acme/widgets", res.RepoURL)

	var sum int64
	for _, f := range res.Files {
		assert.Equal(t, int64(len(f.Content)), f.Size)
		sum += f.Size
	}
	assert.Equal(t, sum, res.TotalSize)
	assertScratchEmpty(t, scratch)
}

func TestSnapshot_DepthFirstNameOrder(t *testing.T) {
	cloner := &fakeCloner{files: map[string][]byte{
		"c.txt":     []byte("c"),
		"b.txt":     []byte("b"),
		"a/z.txt":   []byte("z"),
		"a/b/y.txt": []byte("y"),
		"a/a.txt":   []byte("a"),
	}}
	s, _ := newTestSnapshotter(t, cloner)

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/a.txt", "a/b/y.txt", "a/z.txt", "b.txt", "c.txt"}, paths(res.Files))
}

func TestSnapshot_TooLarge(t *testing.T) {
	cloner := &fakeCloner{files: map[string][]byte{
		"big.bin": sized(150 * kib),
	}}
	s, _ := newTestSnapshotter(t, cloner)

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)

	assert.Empty(t, res.Files)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, domain.SkipTooLarge, res.Skipped[0].Reason)
	assert.Equal(t, int64(0), res.TotalSize)
	assert.Equal(t, []string{"big.bin (too large: 150KB)"}, res.SkippedStrings())
}

func TestSnapshot_OrderDependentTruncation(t *testing.T) {
	files := map[string][]byte{}
	for i := 1; i <= 5; i++ {
		files[fmt.Sprintf("f%d.txt", i)] = sized(90 * kib)
	}
	files["f6.txt"] = sized(60 * kib)
	files["f7.txt"] = sized(40 * kib)
	s, _ := newTestSnapshotter(t, &fakeCloner{files: files})

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)

	assert.Equal(t, []string{"f1.txt", "f2.txt", "f3.txt", "f4.txt", "f5.txt", "f7.txt"}, paths(res.Files))
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, domain.SkipWouldExceedTotal, res.Skipped[0].Reason)
	assert.Equal(t, "f6.txt (would exceed total size limit)", res.Skipped[0].String())
	assert.Equal(t, int64(490*kib), res.TotalSize)
	assert.LessOrEqual(t, res.TotalSize, MaxTotalSize)
}

func TestSnapshot_SecondFileExceedsTotal(t *testing.T) {
	s, _ := newTestSnapshotter(t, &fakeCloner{files: map[string][]byte{
		"a.txt": sized(100 * kib),
		"b.txt": sized(100 * kib),
		"c.txt": sized(100 * kib),
		"d.txt": sized(100 * kib),
		"e.txt": sized(100 * kib),
		"f.txt": sized(1),
	}})

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)

	assert.Equal(t, MaxTotalSize, res.TotalSize)
	assert.Equal(t, []string{"f.txt (would exceed total size limit)"}, res.SkippedStrings())
}

func TestSnapshot_IgnoredPathsAreAbsent(t *testing.T) {
	cloner := &fakeCloner{files: map[string][]byte{
		"src/index.ts":                 []byte("export {}"),
		"node_modules/left-pad/a.js":   sized(200 * kib),
		".git/config":                  []byte("[core]"),
		".github/workflows/ci.yml":     []byte("on: push"),
		"dist/bundle.js":               []byte("x"),
		"coverage/lcov.info":           []byte("x"),
		"server.log":                   []byte("x"),
		"logs/deep/app.log":            []byte("x"),
		".DS_Store":                    []byte("x"),
		"package-lock.json":            []byte("{}"),
		"pnpm-lock.yaml":               []byte("x"),
		"packages/web/yarn-error.log":  []byte("x"),
		"packages/web/npm-debug.log.1": []byte("x"),
	}}
	s, _ := newTestSnapshotter(t, cloner)

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)

	assert.Equal(t, []string{"src/index.ts"}, paths(res.Files))
	assert.Empty(t, res.Skipped)
}

func TestSnapshot_InvalidUTF8IsReadError(t *testing.T) {
	s, _ := newTestSnapshotter(t, &fakeCloner{files: map[string][]byte{
		"image.png": {0x89, 0x50, 0x4e, 0x47, 0xff, 0xfe},
		"ok.txt":    []byte("ok"),
	}})

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)

	assert.Equal(t, []string{"ok.txt"}, paths(res.Files))
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, domain.SkipReadError, res.Skipped[0].Reason)
	assert.Equal(t, "image.png (error: invalid UTF-8 content)", res.Skipped[0].String())
	assert.Equal(t, int64(2), res.TotalSize)
}

func TestSnapshot_SymlinksAreNotFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	s, _ := newTestSnapshotter(t, &fakeCloner{
		files:    map[string][]byte{"real.txt": []byte("real")},
		symlinks: map[string]string{"link.txt": "real.txt", "escape": "/etc"},
	})

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)

	assert.Equal(t, []string{"real.txt"}, paths(res.Files))
	assert.Empty(t, res.Skipped)
	assert.Equal(t, int64(len("real")), res.TotalSize)
}

func TestSnapshot_CloneFailure(t *testing.T) {
	cloner := &fakeCloner{err: errors.New("fatal: repository 'https://github.com/acme/none/' not found")}
	s, scratch := newTestSnapshotter(t, cloner)

	res, err := s.Snapshot(context.Background(), "https://github.com/acme/none")
	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCloneFailed)

	var cloneErr *domain.CloneError
	require.ErrorAs(t, err, &cloneErr)
	assert.Equal(t, "https://github.com/acme/none", cloneErr.URL)
	assert.Contains(t, cloneErr.Message, "not found")

	assert.True(t, strings.HasPrefix(cloner.gotDir, filepath.Join(scratch, "snapshot-")))
	assertScratchEmpty(t, scratch)
}

func TestSnapshot_TokenEmbeddedAndRedacted(t *testing.T) {
	cloner := &fakeCloner{}
	cloner.err = errors.New("fatal: could not read from https://s3cret@github.com/acme/private")
	scratch := t.TempDir()
	s := New(Options{ScratchDir: scratch, Cloner: cloner, Token: "s3cret", TokenHost: "github.com"})

	_, err := s.Snapshot(context.Background(), "https://github.com/acme/private")
	require.Error(t, err)

	assert.Equal(t, "https://s3cret@github.com/acme/private", cloner.gotURL)
	assert.NotContains(t, err.Error(), "s3cret")
	assert.Contains(t, err.Error(), "***")
}

func TestSnapshot_TokenNotSentToOtherHosts(t *testing.T) {
	cloner := &fakeCloner{files: map[string][]byte{"a.txt": []byte("a")}}
	s := New(Options{ScratchDir: t.TempDir(), Cloner: cloner, Token: "s3cret", TokenHost: "github.com"})

	_, err := s.Snapshot(context.Background(), "https://gitlab.com/acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.com/acme/widgets", cloner.gotURL)
}

func TestSnapshot_EmptyURL(t *testing.T) {
	s, _ := newTestSnapshotter(t, &fakeCloner{})

	_, err := s.Snapshot(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestSnapshot_MissingScratchDir(t *testing.T) {
	s := New(Options{ScratchDir: filepath.Join(t.TempDir(), "missing"), Cloner: &fakeCloner{}})

	_, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scratch directory")
}

func TestSnapshot_CanceledContext(t *testing.T) {
	s, scratch := newTestSnapshotter(t, &fakeCloner{files: map[string][]byte{"a.txt": []byte("a")}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Snapshot(ctx, "https://github.com/acme/widgets")
	assert.ErrorIs(t, err, context.Canceled)
	assertScratchEmpty(t, scratch)
}

func TestSnapshot_OnFile(t *testing.T) {
	var accepted, skipped []string
	s := New(Options{
		ScratchDir: t.TempDir(),
		Cloner: &fakeCloner{files: map[string][]byte{
			"a.txt":        []byte("a"),
			"big.txt":      sized(101 * kib),
			"node_modules": nil,
		}},
		OnFile: func(rel string, ok bool) {
			if ok {
				accepted = append(accepted, rel)
			} else {
				skipped = append(skipped, rel)
			}
		},
	})

	_, err := s.Snapshot(context.Background(), "https://github.com/acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, accepted)
	assert.Equal(t, []string{"big.txt"}, skipped)
}

func TestSnapshot_WithGitCLI(t *testing.T) {
	src := newFixtureRepo(t, map[string]string{
		"README.md":         "# fixture",
		"src/app.js":        "console.log(1)",
		"package-lock.json": "{}",
	})
	scratch := t.TempDir()
	s := New(Options{ScratchDir: scratch})

	res, err := s.Snapshot(context.Background(), "file://"+filepath.ToSlash(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"README.md", "src/app.js"}, paths(res.Files))
	assert.Empty(t, res.Skipped)
	assertScratchEmpty(t, scratch)
}

func TestSnapshot_WithGitCLICloneFailed(t *testing.T) {
	requireGit(t)
	scratch := t.TempDir()
	s := New(Options{ScratchDir: scratch})

	_, err := s.Snapshot(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, domain.ErrCloneFailed)
	assertScratchEmpty(t, scratch)
}
