package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/keepmind9/combokey/internal/logger"
	"github.com/keepmind9/combokey/pkg/combo"
	"github.com/keepmind9/combokey/pkg/constants"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrInconsistentBinding is returned when the spellings of one binding do not all
// normalize to the same chord.
var ErrInconsistentBinding = errors.New("inconsistent binding")

// Table maps every literal spelling of the configured bindings to its canonical chord.
// A Table is read-only after BuildTable returns.
type Table struct {
	normalizer  *combo.Normalizer
	spellings   []Spelling
	byLiteral   map[string]int
	byCanonical map[string]string
	conflicts   map[string][]string
}

// BuildTable expands every binding of config. Bindings are expanded concurrently;
// the first failure cancels the remaining work and is returned.
func BuildTable(ctx context.Context, config *Config) (*Table, error) {
	n, err := config.Normalizer()
	if err != nil {
		return nil, err
	}
	aliases := combo.AliasTable(config.Aliases)
	log := logger.Component("table")

	results := make([][]Spelling, len(config.Bindings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxTableBuildWorkers)

	for i, b := range config.Bindings {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := ExpandBinding(b, n, aliases)
			if err != nil {
				return err
			}
			results[i] = rows
			log.WithFields(logrus.Fields{
				"binding":   b.Name,
				"canonical": rows[0].Canonical,
				"spellings": len(rows),
			}).Debug("binding-expanded")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build spelling table: %w", err)
	}

	t := &Table{
		normalizer:  n,
		byLiteral:   make(map[string]int),
		byCanonical: make(map[string]string),
		conflicts:   make(map[string][]string),
	}
	for _, rows := range results {
		for _, row := range rows {
			if _, dup := t.byLiteral[row.Literal]; dup {
				continue
			}
			t.byLiteral[row.Literal] = len(t.spellings)
			t.spellings = append(t.spellings, row)
		}
		if len(rows) == 0 {
			continue
		}
		canonical, name := rows[0].Canonical, rows[0].Binding
		if first, ok := t.byCanonical[canonical]; ok {
			if len(t.conflicts[canonical]) == 0 {
				t.conflicts[canonical] = []string{first}
			}
			t.conflicts[canonical] = append(t.conflicts[canonical], name)
			continue
		}
		t.byCanonical[canonical] = name
	}

	log.WithFields(logrus.Fields{
		"bindings":  len(config.Bindings),
		"spellings": len(t.spellings),
		"conflicts": len(t.conflicts),
	}).Info("spelling-table-built")

	return t, nil
}

// ExpandBinding returns every literal spelling of b with its canonical chord.
//
// A chord binding is expanded using every spelling of each logical key it names;
// a groups binding is expanded as written. All spellings must normalize to the same
// chord.
func ExpandBinding(b BindingConfig, n *combo.Normalizer, aliases combo.AliasTable) ([]Spelling, error) {
	groups := b.Groups
	if len(groups) == 0 {
		groups = ChordGroups(b.Chord, n, aliases)
	}

	if count := combo.Count(groups); count > constants.MaxSpellingsPerBinding {
		return nil, fmt.Errorf("binding '%s' expands to %d spellings (max %d)",
			b.Name, count, constants.MaxSpellingsPerBinding)
	}

	literals, err := combo.Expand(groups, n.Delimiter())
	if err != nil {
		return nil, fmt.Errorf("binding '%s': %w", b.Name, err)
	}

	canonical := n.Normalize(literals[0])
	rows := make([]Spelling, 0, len(literals))
	for _, lit := range literals {
		if got := n.Normalize(lit); got != canonical {
			return nil, fmt.Errorf("%w: binding '%s' spelling %q normalizes to %q, want %q",
				ErrInconsistentBinding, b.Name, lit, got, canonical)
		}
		rows = append(rows, Spelling{Literal: lit, Canonical: canonical, Binding: b.Name})
	}
	return rows, nil
}

// ChordGroups splits chord into one group per component, in canonical order.
// Logical keys contribute all of their spellings; other keys contribute themselves.
func ChordGroups(chord string, n *combo.Normalizer, aliases combo.AliasTable) [][]string {
	tokens := strings.Split(n.Normalize(chord), n.Delimiter())
	groups := make([][]string, len(tokens))
	for i, tok := range tokens {
		if _, ok := aliases[tok]; ok {
			groups[i] = aliases.Spellings(tok)
			continue
		}
		groups[i] = []string{tok}
	}
	return groups
}

// Lookup normalizes raw and returns the binding registered for that chord
func (t *Table) Lookup(raw string) (string, bool) {
	name, ok := t.byCanonical[t.normalizer.Normalize(raw)]
	return name, ok
}

// Literal returns the row for an exact spelling, without normalizing it
func (t *Table) Literal(spelling string) (Spelling, bool) {
	i, ok := t.byLiteral[spelling]
	if !ok {
		return Spelling{}, false
	}
	return t.spellings[i], true
}

// Spellings returns all rows in binding order
func (t *Table) Spellings() []Spelling {
	out := make([]Spelling, len(t.spellings))
	copy(out, t.spellings)
	return out
}

// Conflicts returns canonical chords claimed by more than one binding, with the
// binding names in configuration order
func (t *Table) Conflicts() map[string][]string {
	out := make(map[string][]string, len(t.conflicts))
	for k, v := range t.conflicts {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Len returns the number of distinct spellings
func (t *Table) Len() int {
	return len(t.spellings)
}
