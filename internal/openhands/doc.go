// Package openhands is a client for the OpenHands backend API.
//
// The Client issues JSON requests against a configured base URL, attaching a
// bearer token when one is set. GitService layers the Git endpoints
// (clone, execute, user and repository listing) on top of it.
//
// Usage:
//
//	client := openhands.NewClient(openhands.ClientOptions{BaseURL: cfg.Backend.APIURL})
//	svc := openhands.NewGitService(client)
//	res, err := svc.CloneRepository(ctx, "https://github.com/acme/widgets", "")
package openhands
