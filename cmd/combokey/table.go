package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/keepmind9/combokey/internal/core"
	"github.com/keepmind9/combokey/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	tableJSON    bool
	tableBinding string
	tableLookup  string
)

// TableOutput is the JSON form of the spelling table
type TableOutput struct {
	Spellings []core.Spelling     `json:"spellings"`
	Conflicts map[string][]string `json:"conflicts,omitempty"`
}

// LookupOutput is the JSON form of a --lookup result
type LookupOutput struct {
	core.Spelling
	Exact bool `json:"exact"`
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print every spelling of the configured bindings",
	Long: `Expand each binding in the configuration into every literal spelling and
print the canonical chord it normalizes to.

A binding given as a chord accepts every alias of each logical key it names;
a binding given as groups is expanded exactly as written.

With --lookup, only the binding selected by the given chord is printed. A chord
that is one of the table's spellings matches exactly; any other chord is
normalized and matched by its canonical form.`,
	Example: `  combokey table --config combokey.yaml
  combokey table --binding save --json
  combokey table --lookup "S-Control"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}

		if tableBinding != "" {
			b, err := config.GetBinding(tableBinding)
			if err != nil {
				return err
			}
			config.Bindings = []core.BindingConfig{b}
		}

		table, err := core.BuildTable(cmd.Context(), config)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if tableLookup != "" {
			return lookupChord(out, config, table, tableLookup, tableJSON)
		}

		if tableJSON {
			data, err := json.MarshalIndent(TableOutput{
				Spellings: table.Spellings(),
				Conflicts: table.Conflicts(),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal json: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		return writeSpellings(out, table.Spellings())
	},
}

// lookupChord prints the table row selected by raw
func lookupChord(out io.Writer, config *core.Config, table *core.Table, raw string, jsonFormat bool) error {
	result := LookupOutput{Exact: true}
	row, ok := table.Literal(raw)
	if ok {
		result.Spelling = row
	} else {
		n, err := config.Normalizer()
		if err != nil {
			return err
		}
		canonical := n.Normalize(raw)
		name, ok := table.Lookup(raw)
		if !ok {
			return fmt.Errorf("no binding for chord %q (canonical %q)", raw, canonical)
		}
		result.Spelling = core.Spelling{Literal: raw, Canonical: canonical, Binding: name}
		result.Exact = false
	}

	logger.WithField("chord", raw).WithFields(logrus.Fields{
		"binding": result.Binding,
		"exact":   result.Exact,
	}).Debug("chord-lookup")

	if jsonFormat {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	return writeSpellings(out, []core.Spelling{result.Spelling})
}

func writeSpellings(out io.Writer, rows []core.Spelling) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPELLING\tCANONICAL\tBINDING")
	for _, s := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Literal, s.Canonical, s.Binding)
	}
	return w.Flush()
}

func init() {
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "Output in JSON format")
	tableCmd.Flags().StringVarP(&tableBinding, "binding", "b", "", "Only expand the named binding")
	tableCmd.Flags().StringVarP(&tableLookup, "lookup", "l", "", "Print the binding selected by this chord")
}
