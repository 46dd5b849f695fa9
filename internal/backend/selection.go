package backend

import "github.com/quantmind-br/hybridgit/internal/domain"

// Selection is the backend currently chosen to serve Git operations
type Selection int

const (
	Undetermined Selection = iota
	Local
	Remote
)

func (s Selection) String() string {
	switch s {
	case Local:
		return "local"
	case Remote:
		return "remote"
	default:
		return "undetermined"
	}
}

// MarshalText renders the selection as its name in JSON payloads
func (s Selection) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Kind returns the backend kind for Local and Remote, and "" otherwise
func (s Selection) Kind() domain.BackendKind {
	switch s {
	case Local:
		return domain.BackendLocal
	case Remote:
		return domain.BackendRemote
	default:
		return ""
	}
}

// Select picks the active backend. A healthy remote always wins over the
// local backend because only the remote can execute arbitrary commands.
func Select(localReady, remoteReady, remoteConnected bool) Selection {
	switch {
	case remoteReady && remoteConnected:
		return Remote
	case localReady:
		return Local
	default:
		return Undetermined
	}
}
