package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescCloning  = "Cloning"
	DescScanning = "Scanning"
)

// NewProgressBar creates a consistently styled progress bar writing to w.
//
// For unknown totals (total < 0) it renders spinner type 14 with a blank
// initial state; for known totals it also shows iterations/second.
//
// Example:
//
//	bar := utils.NewProgressBar(os.Stderr, -1, utils.DescScanning)
//	defer bar.Finish()
func NewProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
