package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveManifestText(t *testing.T) {
	var out bytes.Buffer
	err := resolveManifest("testdata/suite.toml", []string{"command3", "x", "option=5", "b=2"}, &out, false)
	require.NoError(t, err)

	assert.Equal(t, "command:     command3\npositionals: [x]\noptions:     b=2 option=5\n", out.String())
}

func TestResolveManifestFallbackJSON(t *testing.T) {
	var out bytes.Buffer
	err := resolveManifest("testdata/suite.toml", []string{"nope", "1"}, &out, true)
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "command1", got.Command)
	assert.Equal(t, []string{"nope", "1"}, got.Positionals)
	assert.Empty(t, got.Options)
}

func TestResolveManifestMissingFile(t *testing.T) {
	err := resolveManifest("testdata/missing.toml", nil, &bytes.Buffer{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestCheckManifestBinds(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := checkManifest("testdata/suite.toml", []string{"command3", "x"}, &stdout, &stderr, false)
	require.NoError(t, err)

	assert.Equal(t, "command: command3\n  argument = x\n  option = 1\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestCheckManifestHaltPrintsDoc(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := checkManifest("testdata/suite.toml", []string{"command3"}, &stdout, &stderr, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errHalted))

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "fakesuite command3 argument [option=1]")
}

func TestCheckManifestHaltWithoutDocIsSilent(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := checkManifest("testdata/suite.toml", []string{"command2"}, &stdout, &stderr, false)
	assert.True(t, errors.Is(err, errHalted))
	assert.Empty(t, stderr.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "cmdmap dev (unknown)\n", out.String())
}

func TestConfigureLoggingInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	configureLogging("chatty", &buf)
	t.Cleanup(func() { configureLogging("warn", &bytes.Buffer{}) })

	assert.Contains(t, buf.String(), "invalid log level chatty")
}
