package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePopulatesConfig(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-graph", "g.hcl", "-node", "sum"}, &out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, cfg)
	assert.Equal(t, "g.hcl", cfg.GraphPath)
	assert.Equal(t, "sum", cfg.NodeName)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseShorthandFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-g", "g.hcl", "-n", "sum"}, &out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "g.hcl", cfg.GraphPath)
	assert.Equal(t, "sum", cfg.NodeName)
}

func TestParsePositionalGraphPath(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-node", "sum", "graphs/"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "graphs/", cfg.GraphPath)
}

func TestParseLogOptions(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-g", "g.hcl", "-n", "sum", "-log-format", "JSON", "-log-level", "DEBUG"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseNoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseHelpFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "missing node",
			args:    []string{"-g", "g.hcl"},
			wantMsg: "a node to evaluate is required",
		},
		{
			name:    "invalid log format",
			args:    []string{"-g", "g.hcl", "-n", "sum", "-log-format", "xml"},
			wantMsg: "invalid log-format",
		},
		{
			name:    "invalid log level",
			args:    []string{"-g", "g.hcl", "-n", "sum", "-log-level", "loud"},
			wantMsg: "invalid log-level",
		},
		{
			name:    "unknown flag",
			args:    []string{"-bogus"},
			wantMsg: "flag provided but not defined",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)

			assert.Nil(t, cfg)
			assert.False(t, shouldExit)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
