package combo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer turns raw chords into canonical chords.
//
// It is immutable after construction and safe for concurrent use.
type Normalizer struct {
	aliases   map[string]string
	ranks     map[string]int
	other     int
	delimiter string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithDelimiter sets the component delimiter (default "-").
func WithDelimiter(delimiter string) Option {
	return func(n *Normalizer) {
		n.delimiter = delimiter
	}
}

// NewNormalizer builds a Normalizer from an alias table and a priority order.
//
// The inputs are copied; later changes to them do not affect the Normalizer.
// Overlapping spellings, duplicate priority names and an empty delimiter are
// reported as ErrInvalidInput.
func NewNormalizer(aliases AliasTable, priority PriorityOrder, opts ...Option) (*Normalizer, error) {
	n := &Normalizer{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(n)
	}
	if n.delimiter == "" {
		return nil, fmt.Errorf("%w: empty delimiter", ErrInvalidInput)
	}
	if err := n.checkDelimiter(aliases, priority); err != nil {
		return nil, err
	}

	idx, err := aliases.index(lower)
	if err != nil {
		return nil, err
	}
	ranks, err := priority.ranks(lower)
	if err != nil {
		return nil, err
	}
	// A ranked name used as a spelling of another key would never reach its own rank.
	for name := range ranks {
		if owner, ok := idx[name]; ok && owner != name {
			return nil, fmt.Errorf("%w: priority name %q is a spelling of %q", ErrInvalidInput, name, owner)
		}
	}

	n.aliases = idx
	n.ranks = ranks
	n.other = len(ranks)
	return n, nil
}

// checkDelimiter rejects names that Normalize would split apart before resolving.
func (n *Normalizer) checkDelimiter(aliases AliasTable, priority PriorityOrder) error {
	for _, name := range aliases.Names() {
		for _, s := range aliases.Spellings(name) {
			if strings.Contains(s, n.delimiter) {
				return fmt.Errorf("%w: spelling %q of %q contains the delimiter %q",
					ErrInvalidInput, s, name, n.delimiter)
			}
		}
	}
	for _, name := range priority {
		if strings.Contains(name, n.delimiter) {
			return fmt.Errorf("%w: priority name %q contains the delimiter %q",
				ErrInvalidInput, name, n.delimiter)
		}
	}
	return nil
}

// MustNormalizer is like NewNormalizer but panics on error.
// Use only with known-valid tables in initialization code.
func MustNormalizer(aliases AliasTable, priority PriorityOrder, opts ...Option) *Normalizer {
	n, err := NewNormalizer(aliases, priority, opts...)
	if err != nil {
		panic("invalid normalizer configuration: " + err.Error())
	}
	return n
}

// Delimiter returns the component delimiter.
func (n *Normalizer) Delimiter() string {
	return n.delimiter
}

// Resolve lower-cases a single component and maps it to its logical key name.
// Unknown components are returned lower-cased.
func (n *Normalizer) Resolve(token string) string {
	token = lower(token)
	if name, ok := n.aliases[token]; ok {
		return name
	}
	return token
}

// Rank returns the priority position of a resolved component.
// Components outside the priority order share the last rank.
func (n *Normalizer) Rank(token string) int {
	if r, ok := n.ranks[token]; ok {
		return r
	}
	return n.other
}

// Normalize returns the canonical form of raw.
//
// Components are lower-cased, alias-resolved and sorted by priority, then by length,
// then lexicographically. The sort is stable. An empty string yields an empty string.
func (n *Normalizer) Normalize(raw string) string {
	tokens := strings.Split(raw, n.delimiter)
	for i, tok := range tokens {
		tokens[i] = n.Resolve(tok)
	}
	if len(tokens) > 1 {
		slices.SortStableFunc(tokens, n.compare)
	}
	return strings.Join(tokens, n.delimiter)
}

// NormalizeAll normalizes each chord of events, in order.
func (n *Normalizer) NormalizeAll(events []string) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = n.Normalize(ev)
	}
	return out
}

func (n *Normalizer) compare(a, b string) int {
	ra, rb := n.Rank(a), n.Rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	if ra != n.other {
		return 0
	}
	if la, lb := uniseg.GraphemeClusterCount(a), uniseg.GraphemeClusterCount(b); la != lb {
		return cmp.Compare(la, lb)
	}
	return strings.Compare(a, b)
}

var defaultNormalizer = MustNormalizer(DefaultAliases(), DefaultPriority())

// Normalize canonicalizes raw with the default alias table and priority order.
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// lower folds s to lower case. A Caser keeps state, so one is made per call.
func lower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}
