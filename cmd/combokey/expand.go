package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/keepmind9/combokey/internal/logger"
	"github.com/keepmind9/combokey/pkg/combo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	expandSeparator string
	expandJSON      bool
)

var expandCmd = &cobra.Command{
	Use:   "expand group [group...]",
	Short: "List every chord built from groups of alternate key names",
	Long: `List every chord that picks one name from each group, in group order.

Each argument is one group: a comma-separated list of alternate names for one
position of the chord. The first group varies fastest in the output.

An empty group is an error.`,
	Example: `  combokey expand ctrl,control s
  combokey expand --sep + a,b 1,2      # a+1 b+1 a+2 b+2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}

		groups := parseGroups(args)
		spellings, err := combo.Expand(groups, expandSeparator)
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"groups":    len(groups),
			"spellings": len(spellings),
		}).Debug("groups-expanded")

		out := cmd.OutOrStdout()
		if expandJSON {
			data, err := json.Marshal(spellings)
			if err != nil {
				return fmt.Errorf("failed to marshal json: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		for _, s := range spellings {
			fmt.Fprintln(out, s)
		}
		return nil
	},
}

// parseGroups splits each argument on commas. Blank entries are dropped, so
// an argument like "," becomes an empty group.
func parseGroups(args []string) [][]string {
	groups := make([][]string, len(args))
	for i, arg := range args {
		group := []string{}
		for _, lit := range strings.Split(arg, ",") {
			if lit = strings.TrimSpace(lit); lit != "" {
				group = append(group, lit)
			}
		}
		groups[i] = group
	}
	return groups
}

func init() {
	expandCmd.Flags().StringVarP(&expandSeparator, "sep", "s", combo.DefaultDelimiter, "Separator placed between group members")
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "Output a JSON array")
}
