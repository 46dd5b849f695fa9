// Package snapshot produces size-bounded, filtered text snapshots of Git
// repositories.
//
// A snapshot shallow-clones the repository into a private scratch directory,
// walks it depth-first in name order, drops ignored paths, and accepts text
// files until the per-file and total caps are reached. Files that do not fit
// are reported as skip records. The scratch directory is always removed.
package snapshot
