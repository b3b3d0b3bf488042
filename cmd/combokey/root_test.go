package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keepmind9/combokey/internal/notation"
	"github.com/keepmind9/combokey/pkg/combo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag variable; cobra keeps them between Execute calls
func resetFlags() {
	configFile = ""
	logLevel = ""
	normalizeFormat = string(notation.FormatCanonical)
	expandSeparator = combo.DefaultDelimiter
	expandJSON = false
	tableJSON = false
	tableBinding = ""
	tableLookup = ""
	validateShow = false
	validateJSON = false
	versionJSON = false
}

// isolate keeps FindConfig from picking up config files on the test machine
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "combokey.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand_Properties(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "combokey", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.Contains(t, rootCmd.Short, "chord")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expectedCommands := []string{
		"normalize",
		"expand",
		"table",
		"validate",
		"version",
	}

	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		assert.True(t, names[expected], "missing subcommand: %s", expected)
	}
}

func TestAllCommands_HaveUsage(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		assert.NotEmpty(t, cmd.Use, "command %s should have usage", cmd.Name())
		assert.NotEmpty(t, cmd.Short, "command %s should have short description", cmd.Name())
	}
}

func TestRootCommand_Help(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "normalize")
}

func TestRootCommand_SilencesCobraErrors(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, `
aliases:
  alt: ["cmd"]
`)

	resetFlags()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"validate", "--config", path})

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out.String(), "❌ Configuration validation failed")
	assert.Empty(t, errOut.String())
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errValidationFailed)
	assert.Empty(t, buf.String())

	reportError(&buf, fmt.Errorf("wrapped: %w", errValidationFailed))
	assert.Empty(t, buf.String())

	reportError(&buf, errors.New("failed to read config file"))
	assert.Equal(t, "Error: failed to read config file\n", buf.String())
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

func TestLoadConfig_UsesConfigFlag(t *testing.T) {
	isolate(t)
	resetFlags()
	configFile = writeTestConfig(t, `delimiter: "+"`)

	config, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "+", config.Delimiter)
}

func TestLoadConfig_FindsWorkingDirectoryConfig(t *testing.T) {
	isolate(t)
	resetFlags()
	require.NoError(t, os.WriteFile("combokey.yaml", []byte(`delimiter: "_"`), 0644))

	config, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "_", config.Delimiter)
}
