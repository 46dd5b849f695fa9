// Package backend selects between the two Git execution backends.
//
// Architecture:
//   - Select: pure prefer-remote decision over three readiness flags
//   - Selector: holds the last flags and delegates clone/command calls
//   - RemoteBackend: the OpenHands HTTP backend (clone + command execution)
//   - LocalBackend: in-process go-git clone into memory (clone only)
//
// Usage:
//
//	sel := backend.NewSelector(backend.SelectorOptions{Local: local, Remote: remote})
//	sel.Refresh(ctx)
//	res, err := sel.Clone(ctx, "https://github.com/acme/widgets")
package backend
