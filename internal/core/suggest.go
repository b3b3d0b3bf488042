package core

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/keepmind9/combokey/pkg/combo"
	"github.com/keepmind9/combokey/pkg/constants"
	"github.com/sahilm/fuzzy"
)

// Suggest returns known key names that token may be a misspelling of, best first.
//
// Only unknown tokens of at least MinSuggestTokenLength characters are checked;
// logical names, their spellings and ranked names return nil.
func Suggest(token string, n *combo.Normalizer, aliases combo.AliasTable, priority combo.PriorityOrder) []string {
	resolved := n.Resolve(token)
	names := knownNames(aliases, priority)
	if slices.Contains(names, resolved) || len([]rune(resolved)) < constants.MinSuggestTokenLength {
		return nil
	}

	matches := fuzzy.Find(resolved, names)
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == constants.MaxSuggestions {
			break
		}
	}
	return out
}

// knownNames lists logical names and spellings in a stable order
func knownNames(aliases combo.AliasTable, priority combo.PriorityOrder) []string {
	set := make(map[string]bool)
	for _, name := range priority {
		set[name] = true
	}
	for name, spellings := range aliases {
		set[name] = true
		for _, s := range spellings {
			set[s] = true
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lint reports problems in a loaded configuration that do not prevent it from
// working: misspelled modifier names and bindings that collapse to the same chord
func Lint(config *Config, table *Table) []string {
	var warnings []string

	n, err := config.Normalizer()
	if err != nil {
		return []string{err.Error()}
	}
	aliases := combo.AliasTable(config.Aliases)
	priority := combo.PriorityOrder(config.Priority)

	for _, b := range config.Bindings {
		for _, tok := range bindingTokens(b, n.Delimiter()) {
			if hints := Suggest(tok, n, aliases, priority); len(hints) > 0 {
				warnings = append(warnings, fmt.Sprintf("binding '%s': unknown key '%s', did you mean %s?",
					b.Name, tok, strings.Join(hints, " or ")))
			}
		}
	}

	if table != nil {
		conflicts := table.Conflicts()
		chords := make([]string, 0, len(conflicts))
		for chord := range conflicts {
			chords = append(chords, chord)
		}
		sort.Strings(chords)
		for _, chord := range chords {
			warnings = append(warnings, fmt.Sprintf("chord '%s' is bound by more than one binding: %s",
				chord, strings.Join(conflicts[chord], ", ")))
		}
	}

	if len(config.Bindings) == 0 {
		warnings = append(warnings, "No bindings configured - the spelling table will be empty")
	}

	return warnings
}

func bindingTokens(b BindingConfig, delimiter string) []string {
	if len(b.Groups) == 0 {
		return strings.Split(b.Chord, delimiter)
	}
	var tokens []string
	for _, g := range b.Groups {
		tokens = append(tokens, g...)
	}
	return tokens
}
