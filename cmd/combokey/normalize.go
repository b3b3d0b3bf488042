package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/keepmind9/combokey/internal/logger"
	"github.com/keepmind9/combokey/internal/notation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var normalizeFormat string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [chord...]",
	Short: "Print the canonical form of each chord",
	Long: `Print the canonical form of each chord argument, one per line.

Key names are lower-cased, alternate names are replaced by their logical name
(control → ctrl, ⌘/cmd/win → os, option/⌥ → alt) and components are sorted:
ctrl, shift, alt, os, then other keys by length and alphabetically.

With no arguments, chords are read from stdin, one per line.

Formats:
  canonical - ctrl-shift-os-a (default)
  display   - Ctrl+Shift+Cmd+A
  tmux      - C-S-a (tmux send-keys key name)`,
	Example: `  combokey normalize "⌘-Control-Shift-A"
  combokey normalize --format tmux Control-Alt-A
  echo "A-Control" | combokey normalize`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := notation.ParseFormat(normalizeFormat)
		if err != nil {
			return err
		}

		config, err := loadConfig()
		if err != nil {
			return err
		}
		n, err := config.Normalizer()
		if err != nil {
			return err
		}

		chords := args
		if len(chords) == 0 {
			chords, err = readLines(cmd)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for i, canonical := range n.NormalizeAll(chords) {
			rendered, err := notation.Render(canonical, n.Delimiter(), format)
			if err != nil {
				return fmt.Errorf("%s: %w", chords[i], err)
			}
			logger.WithFields(logrus.Fields{
				"raw":       chords[i],
				"canonical": canonical,
				"format":    format,
			}).Debug("chord-normalized")
			fmt.Fprintln(out, rendered)
		}
		return nil
	},
}

// readLines reads non-empty, trimmed lines from the command's input
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chords from stdin: %w", err)
	}
	return lines, nil
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeFormat, "format", "f", string(notation.FormatCanonical), "Output format: canonical, display or tmux")
}
