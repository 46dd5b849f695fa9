package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipRecord_String(t *testing.T) {
	tests := []struct {
		name     string
		record   SkipRecord
		expected string
	}{
		{
			name:     "too large rounds to nearest KB",
			record:   SkipRecord{Path: "assets/logo.png", Reason: SkipTooLarge, Size: 150*1024 + 600},
			expected: "assets/logo.png (too large: 151KB)",
		},
		{
			name:     "too large rounds down below half",
			record:   SkipRecord{Path: "big.txt", Reason: SkipTooLarge, Size: 200*1024 + 100},
			expected: "big.txt (too large: 200KB)",
		},
		{
			name:     "would exceed total",
			record:   SkipRecord{Path: "src/main.go", Reason: SkipWouldExceedTotal, Size: 300 * 1024},
			expected: "src/main.go (would exceed total size limit)",
		},
		{
			name:     "read error",
			record:   SkipRecord{Path: "secret.txt", Reason: SkipReadError, Message: "permission denied"},
			expected: "secret.txt (error: permission denied)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.String())
		})
	}
}

func TestSnapshotResult_SkippedStrings(t *testing.T) {
	result := &SnapshotResult{
		Skipped: []SkipRecord{
			{Path: "a", Reason: SkipWouldExceedTotal},
			{Path: "b", Reason: SkipReadError, Message: "boom"},
		},
	}

	assert.Equal(t, []string{
		"a (would exceed total size limit)",
		"b (error: boom)",
	}, result.SkippedStrings())
}

func TestSnapshotResult_SkippedStringsEmpty(t *testing.T) {
	result := &SnapshotResult{}

	out := result.SkippedStrings()
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
