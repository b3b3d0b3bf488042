package combo

import (
	"fmt"
	"slices"
	"sort"
)

// Logical key names produced by the default tables.
const (
	KeyCtrl  = "ctrl"
	KeyShift = "shift"
	KeyAlt   = "alt"
	KeyOS    = "os"
)

// DefaultDelimiter separates the components of a chord.
const DefaultDelimiter = "-"

// AliasTable maps a logical key name to its alternate spellings.
//
// Spellings must be disjoint across logical keys. Matching is done on lower-cased
// input, so spellings are stored and compared in lower case.
type AliasTable map[string][]string

// DefaultAliases returns a fresh copy of the built-in alias table.
func DefaultAliases() AliasTable {
	return AliasTable{
		KeyCtrl: {"control"},
		KeyAlt:  {"option", "⌥"},
		KeyOS:   {"⌘", "cmd", "command", "windows", "win"},
	}
}

// Clone returns a deep copy of t.
func (t AliasTable) Clone() AliasTable {
	out := make(AliasTable, len(t))
	for name, spellings := range t {
		out[name] = slices.Clone(spellings)
	}
	return out
}

// Merge returns a new table holding the spellings of t followed by those of other.
// Spellings already present for a key are not repeated.
func (t AliasTable) Merge(other AliasTable) AliasTable {
	out := t.Clone()
	for name, spellings := range other {
		for _, s := range spellings {
			if !slices.Contains(out[name], s) {
				out[name] = append(out[name], s)
			}
		}
	}
	return out
}

// Lower returns a copy of t with key names and spellings lower-cased.
// Keys that differ only in case are combined into one entry.
func (t AliasTable) Lower() AliasTable {
	out := make(AliasTable, len(t))
	for _, name := range t.Names() {
		key := lower(name)
		spellings := out[key]
		for _, s := range t[name] {
			if s = lower(s); !slices.Contains(spellings, s) {
				spellings = append(spellings, s)
			}
		}
		out[key] = spellings
	}
	return out
}

// Names returns the logical key names of t in sorted order.
func (t AliasTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spellings returns every accepted spelling of name, the logical name first.
func (t AliasTable) Spellings(name string) []string {
	out := []string{name}
	for _, s := range t[name] {
		if s != name && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// index builds the lower-cased spelling → logical name lookup used by Normalize.
// Every logical name resolves to itself.
func (t AliasTable) index(fold func(string) string) (map[string]string, error) {
	idx := make(map[string]string)
	claim := func(spelling, name string) error {
		key := fold(spelling)
		if key == "" {
			return fmt.Errorf("%w: empty spelling for key %q", ErrInvalidInput, name)
		}
		if owner, ok := idx[key]; ok && owner != name {
			return fmt.Errorf("%w: spelling %q belongs to both %q and %q", ErrInvalidInput, spelling, owner, name)
		}
		idx[key] = name
		return nil
	}

	names := t.Names()
	for _, name := range names {
		if err := claim(name, fold(name)); err != nil {
			return nil, err
		}
	}
	for _, name := range names {
		for _, s := range t[name] {
			if err := claim(s, fold(name)); err != nil {
				return nil, err
			}
		}
	}
	return idx, nil
}
