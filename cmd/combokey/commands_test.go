package main

import (
	"encoding/json"
	"testing"

	"github.com/keepmind9/combokey/internal/notation"
	"github.com/keepmind9/combokey/pkg/combo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCommand_Arguments(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "", "normalize", "⌘-Control-Shift-A", "A-Control", "Option-x")
	require.NoError(t, err)
	assert.Equal(t, "ctrl-shift-os-a\nctrl-a\nalt-x\n", out)
}

func TestNormalizeCommand_Stdin(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "Control-A\n\n  cmd-q  \n", "normalize")
	require.NoError(t, err)
	assert.Equal(t, "ctrl-a\nos-q\n", out)
}

func TestNormalizeCommand_Formats(t *testing.T) {
	isolate(t)
	tests := []struct {
		format string
		chord  string
		want   string
	}{
		{format: "canonical", chord: "Alt-Control-A", want: "ctrl-alt-a\n"},
		{format: "display", chord: "⌘-Shift-P", want: "Shift+Cmd+P\n"},
		{format: "tmux", chord: "Alt-Control-A", want: "C-M-a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := executeCommand(t, "", "normalize", "--format", tt.format, tt.chord)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNormalizeCommand_TmuxUnsupported(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "", "normalize", "--format", "tmux", "cmd-a")
	assert.ErrorIs(t, err, notation.ErrUnsupported)
}

func TestNormalizeCommand_UnknownFormat(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "", "normalize", "--format", "emacs", "ctrl-a")
	assert.Error(t, err)
}

func TestNormalizeCommand_ConfigAliases(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, `
aliases:
  os: ["super"]
`)
	out, err := executeCommand(t, "", "normalize", "--config", path, "Super-Control-k")
	require.NoError(t, err)
	assert.Equal(t, "ctrl-os-k\n", out)
}

func TestExpandCommand(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "", "expand", "a,b", "1,2")
	require.NoError(t, err)
	assert.Equal(t, "a-1\nb-1\na-2\nb-2\n", out)
}

func TestExpandCommand_SeparatorAndJSON(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "", "expand", "--sep", "+", "--json", "ctrl, control", "s")
	require.NoError(t, err)

	var spellings []string
	require.NoError(t, json.Unmarshal([]byte(out), &spellings))
	assert.Equal(t, []string{"ctrl+s", "control+s"}, spellings)
}

func TestExpandCommand_EmptyGroup(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "", "expand", "a,b", ",")
	assert.ErrorIs(t, err, combo.ErrInvalidInput)
}

func TestExpandCommand_RequiresGroup(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "", "expand")
	assert.Error(t, err)
}

func TestParseGroups(t *testing.T) {
	groups := parseGroups([]string{"ctrl, control", "s", " , "})
	assert.Equal(t, [][]string{{"ctrl", "control"}, {"s"}, {}}, groups)
}

const tableConfig = `
bindings:
  - name: save
    chord: ctrl-s
  - name: quit
    chord: cmd-q
`

func TestTableCommand_Text(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	out, err := executeCommand(t, "", "table", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "SPELLING")
	assert.Contains(t, out, "control-s")
	assert.Contains(t, out, "command-q")
	assert.Contains(t, out, "os-q")
}

func TestTableCommand_JSONSingleBinding(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	out, err := executeCommand(t, "", "table", "--config", path, "--json", "--binding", "save")
	require.NoError(t, err)

	var result TableOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Spellings, 2)
	assert.Equal(t, "ctrl-s", result.Spellings[0].Literal)
	assert.Equal(t, "control-s", result.Spellings[1].Literal)
	assert.Empty(t, result.Conflicts)
}

func TestTableCommand_UnknownBinding(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	_, err := executeCommand(t, "", "table", "--config", path, "--binding", "missing")
	assert.Error(t, err)
}

func TestTableCommand_Lookup(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	tests := []struct {
		chord     string
		canonical string
		binding   string
		exact     bool
	}{
		{chord: "control-s", canonical: "ctrl-s", binding: "save", exact: true},
		{chord: "S-Control", canonical: "ctrl-s", binding: "save", exact: false},
		{chord: "Q-Command", canonical: "os-q", binding: "quit", exact: false},
	}

	for _, tt := range tests {
		t.Run(tt.chord, func(t *testing.T) {
			out, err := executeCommand(t, "", "table", "--config", path, "--lookup", tt.chord, "--json")
			require.NoError(t, err)

			var result LookupOutput
			require.NoError(t, json.Unmarshal([]byte(out), &result))
			assert.Equal(t, tt.chord, result.Literal)
			assert.Equal(t, tt.canonical, result.Canonical)
			assert.Equal(t, tt.binding, result.Binding)
			assert.Equal(t, tt.exact, result.Exact)
		})
	}
}

func TestTableCommand_LookupText(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	out, err := executeCommand(t, "", "table", "--config", path, "-l", "S-Ctrl")
	require.NoError(t, err)
	assert.Contains(t, out, "SPELLING")
	assert.Contains(t, out, "S-Ctrl")
	assert.Contains(t, out, "save")
	assert.NotContains(t, out, "quit")
}

func TestTableCommand_LookupUnbound(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	_, err := executeCommand(t, "", "table", "--config", path, "--lookup", "Alt-S")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `canonical "alt-s"`)
}

func TestNormalizeCommand_TmuxRejectsLiteralText(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "", "normalize", "--format", "tmux", "ctrl-hello")
	assert.ErrorIs(t, err, notation.ErrUnsupported)
}

func TestValidateCommand_ValidConfig(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	out, err := executeCommand(t, "", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Configuration is valid")
	assert.Contains(t, out, "Bindings: 2")
	assert.Contains(t, out, "Spellings: 8")
}

func TestValidateCommand_Warnings(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, `
bindings:
  - name: save
    chord: contrl-s
`)

	out, err := executeCommand(t, "", "validate", "--config", path, "--json")
	require.NoError(t, err)

	var result ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "did you mean control?")
}

func TestValidateCommand_InvalidConfig(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, `
aliases:
  alt: ["cmd"]
`)

	out, err := executeCommand(t, "", "validate", "--config", path)
	assert.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, out, "❌ Configuration validation failed")
	assert.Contains(t, out, "belongs to both")
}

func TestValidateCommand_InconsistentBinding(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, `
bindings:
  - name: broken
    groups: [["ctrl", "alt"], ["s"]]
`)

	out, err := executeCommand(t, "", "validate", "--config", path, "--json")
	assert.ErrorIs(t, err, errValidationFailed)

	var result ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, 1, result.Bindings)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "inconsistent binding")
}

func TestValidateCommand_Show(t *testing.T) {
	isolate(t)
	path := writeTestConfig(t, tableConfig)

	out, err := executeCommand(t, "", "validate", "--config", path, "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration loaded")
	assert.Contains(t, out, "  - save: ctrl-s")
	assert.Contains(t, out, "  - os: [⌘ cmd command windows win]")
}

func TestValidateCommand_Defaults(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "(built-in defaults)")
	assert.Contains(t, out, "No bindings configured")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "combokey version information")

	out, err = executeCommand(t, "", "version", "--json")
	require.NoError(t, err)

	var v VersionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "dev", v.Version)
	assert.NotEmpty(t, v.GoVersion)
}
