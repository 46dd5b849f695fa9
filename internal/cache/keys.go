package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path"
	"strings"
)

// GenerateKey generates a cache key from a repository URL
// The key is a SHA256 hash of the normalized URL
func GenerateKey(rawURL string) string {
	normalized := NormalizeRepoURL(rawURL)
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// GenerateKeyWithPrefix generates a cache key with a prefix
func GenerateKeyWithPrefix(prefix, rawURL string) string {
	return prefix + ":" + GenerateKey(rawURL)
}

// NormalizeRepoURL maps equivalent spellings of a repository URL to one form.
// Credentials are dropped so tokens never reach the key space.
func NormalizeRepoURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return rawURL
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.User = nil
	u.Host = strings.ToLower(u.Host)

	// Remove default ports
	if (u.Scheme == "http" && u.Port() == "80") ||
		(u.Scheme == "https" && u.Port() == "443") {
		u.Host = u.Hostname()
	}

	if u.Path == "" {
		u.Path = "/"
	} else {
		u.Path = path.Clean(u.Path)
	}
	u.Path = strings.TrimSuffix(u.Path, ".git")
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	u.RawQuery = ""
	u.Fragment = ""

	return u.String()
}

// KeyPrefix constants for different cache types
const (
	PrefixSnapshot = "snapshot"
)

// SnapshotKey generates a cache key for a repository snapshot
func SnapshotKey(repoURL string) string {
	return GenerateKeyWithPrefix(PrefixSnapshot, repoURL)
}
