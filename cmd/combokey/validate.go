package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/keepmind9/combokey/internal/core"
	"github.com/keepmind9/combokey/internal/logger"
	"github.com/spf13/cobra"
)

var (
	validateShow bool
	validateJSON bool
)

// ValidationResult represents the validation result
type ValidationResult struct {
	Valid     bool     `json:"valid"`
	Config    string   `json:"config"`
	Aliases   int      `json:"aliases"`
	Bindings  int      `json:"bindings"`
	Spellings int      `json:"spellings"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// errValidationFailed makes the command exit 1 after the report has been printed
var errValidationFailed = errors.New("configuration validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate combokey configuration file",
	Long: `Validate the combokey configuration file.

This command checks:
  - YAML syntax
  - Required fields
  - Alias spellings are not shared between keys
  - Every binding expands to spellings of a single chord

It also warns about keys that look like misspelled modifier names and about
bindings that normalize to the same chord.

Exit codes:
  0 - Configuration is valid
  1 - Configuration has errors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := resolveConfigPath()
		display := path
		if display == "" {
			display = "(built-in defaults)"
		}

		config, err := loadConfig()
		if err != nil {
			outputValidationResult(out, ValidationResult{
				Valid:  false,
				Config: display,
				Errors: []string{err.Error()},
			}, validateJSON)
			return errValidationFailed
		}

		table, err := core.BuildTable(cmd.Context(), config)
		if err != nil {
			outputValidationResult(out, ValidationResult{
				Valid:    false,
				Config:   display,
				Aliases:  len(config.Aliases),
				Bindings: len(config.Bindings),
				Errors:   []string{err.Error()},
			}, validateJSON)
			return errValidationFailed
		}

		result := ValidationResult{
			Valid:     true,
			Config:    display,
			Aliases:   len(config.Aliases),
			Bindings:  len(config.Bindings),
			Spellings: table.Len(),
			Warnings:  core.Lint(config, table),
		}

		for _, warning := range result.Warnings {
			logger.Warnf("config-warning: %s", warning)
		}

		if validateShow && !validateJSON {
			showConfig(out, display, config)
		}

		outputValidationResult(out, result, validateJSON)
		return nil
	},
}

func showConfig(out io.Writer, path string, config *core.Config) {
	fmt.Fprintf(out, "✓ Configuration loaded: %s\n\n", path)
	fmt.Fprintf(out, "Delimiter: %q\n", config.Delimiter)
	fmt.Fprintf(out, "Priority: %v\n\n", config.Priority)
	fmt.Fprintf(out, "Aliases (%d):\n", len(config.Aliases))
	for _, name := range sortedKeys(config.Aliases) {
		fmt.Fprintf(out, "  - %s: %v\n", name, config.Aliases[name])
	}
	fmt.Fprintf(out, "\nBindings (%d):\n", len(config.Bindings))
	for _, b := range config.Bindings {
		if b.Chord != "" {
			fmt.Fprintf(out, "  - %s: %s\n", b.Name, b.Chord)
		} else {
			fmt.Fprintf(out, "  - %s: %v\n", b.Name, b.Groups)
		}
	}
	fmt.Fprintln(out)
}

func outputValidationResult(out io.Writer, result ValidationResult, jsonFormat bool) {
	if jsonFormat {
		data, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintf(out, "{\"error\": \"failed to marshal json: %v\"}\n", err)
			return
		}
		fmt.Fprintln(out, string(data))
		return
	}

	if result.Valid {
		fmt.Fprintln(out, "✓ Configuration is valid")
		fmt.Fprintf(out, "  - Config: %s\n", result.Config)
		fmt.Fprintf(out, "  - Aliased keys: %d\n", result.Aliases)
		fmt.Fprintf(out, "  - Bindings: %d\n", result.Bindings)
		fmt.Fprintf(out, "  - Spellings: %d\n", result.Spellings)
		if len(result.Warnings) > 0 {
			fmt.Fprintln(out, "\n⚠️  Warnings:")
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "  - %s\n", warning)
			}
		}
		return
	}

	fmt.Fprintln(out, "❌ Configuration validation failed:")
	if len(result.Errors) > 0 {
		fmt.Fprintln(out, "\nErrors:")
		for _, errMsg := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", errMsg)
		}
	}
}

func init() {
	validateCmd.Flags().BoolVar(&validateShow, "show", false, "Show full configuration details")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output in JSON format")
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
