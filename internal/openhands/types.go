package openhands

// Repository is a repository as reported by the backend's Git provider
type Repository struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
	HTMLURL       string `json:"html_url"`
	Description   string `json:"description"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	PushedAt      string `json:"pushed_at"`
	GitURL        string `json:"git_url"`
	SSHURL        string `json:"ssh_url"`
	CloneURL      string `json:"clone_url"`
	DefaultBranch string `json:"default_branch"`
}

// User is the authenticated Git provider user
type User struct {
	ID        int    `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

type cloneRequest struct {
	URL       string `json:"url"`
	TargetDir string `json:"target_dir,omitempty"`
}

// CloneResponse is the raw body of POST /api/git/clone
type CloneResponse struct {
	Workdir string         `json:"workdir"`
	Files   map[string]any `json:"files"`
}

type executeRequest struct {
	Command string `json:"command"`
	Cwd     string `json:"cwd"`
}
