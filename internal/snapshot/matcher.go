package snapshot

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnorePatterns are excluded from every snapshot
var IgnorePatterns = []string{
	"node_modules/**",
	".git/**",
	".github/**",
	".vscode/**",
	"dist/**",
	"build/**",
	".next/**",
	"coverage/**",
	".cache/**",
	".idea/**",
	"**/*.log",
	"**/.DS_Store",
	"**/npm-debug.log*",
	"**/yarn-debug.log*",
	"**/yarn-error.log*",
	"**/*lock.json",
	"**/*lock.yaml",
}

// Matcher reports whether a repository-relative path is ignored
type Matcher struct {
	m gitignore.Matcher
}

// NewMatcher builds a Matcher from gitignore-style patterns
func NewMatcher(patterns []string) *Matcher {
	ps := make([]gitignore.Pattern, 0, len(patterns))
	for _, p := range patterns {
		ps = append(ps, gitignore.ParsePattern(p, nil))
	}
	return &Matcher{m: gitignore.NewMatcher(ps)}
}

// DefaultMatcher returns a Matcher for IgnorePatterns
func DefaultMatcher() *Matcher {
	return NewMatcher(IgnorePatterns)
}

// Match reports whether the slash-separated relative path is ignored
func (m *Matcher) Match(relPath string, isDir bool) bool {
	if relPath == "" || relPath == "." {
		return false
	}
	return m.m.Match(strings.Split(relPath, "/"), isDir)
}
