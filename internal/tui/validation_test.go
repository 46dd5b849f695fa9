package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	require.NoError(t, ValidateRequired("hello"))
	assert.ErrorIs(t, ValidateRequired(""), ErrRequired)
	assert.ErrorIs(t, ValidateRequired("   "), ErrRequired)
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid_seconds", input: "30s", wantErr: false},
		{name: "valid_complex", input: "1h30m45s", wantErr: false},
		{name: "empty_string", input: "", wantErr: false},
		{name: "whitespace_only", input: "   ", wantErr: false},
		{name: "missing_unit", input: "30", wantErr: true},
		{name: "invalid_unit", input: "30x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateIntRange(t *testing.T) {
	validate := ValidateIntRange(0, 10)

	require.NoError(t, validate(""))
	require.NoError(t, validate("0"))
	require.NoError(t, validate("10"))
	assert.ErrorIs(t, validate("11"), ErrInvalidRange)
	assert.ErrorIs(t, validate("-1"), ErrInvalidRange)
	assert.ErrorIs(t, validate("ten"), ErrInvalidNumber)
}

func TestValidateAPIURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "", wantErr: false},
		{input: "http://localhost:8000", wantErr: false},
		{input: "https://openhands.example.com/api", wantErr: false},
		{input: "localhost:8000", wantErr: true},
		{input: "ftp://example.com", wantErr: true},
		{input: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateAPIURL(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHealthPath(t *testing.T) {
	assert.NoError(t, ValidateHealthPath(""))
	assert.NoError(t, ValidateHealthPath("/health"))
	assert.Error(t, ValidateHealthPath("health"))
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "INFO"} {
		assert.NoError(t, ValidateLogLevel(level), level)
	}
	assert.Error(t, ValidateLogLevel("verbose"))
	assert.Error(t, ValidateLogLevel(""))
}

func TestValidateLogFormat(t *testing.T) {
	for _, format := range []string{"json", "pretty", "text", "JSON"} {
		assert.NoError(t, ValidateLogFormat(format), format)
	}
	assert.Error(t, ValidateLogFormat("xml"))
}
