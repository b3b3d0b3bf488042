package combo

import "fmt"

// PriorityOrder lists logical key names from first to last in a canonical chord.
// Names that are not listed sort after every listed name.
type PriorityOrder []string

// DefaultPriority returns ctrl, shift, alt, os.
func DefaultPriority() PriorityOrder {
	return PriorityOrder{KeyCtrl, KeyShift, KeyAlt, KeyOS}
}

// ranks maps each listed name to its position.
func (p PriorityOrder) ranks(fold func(string) string) (map[string]int, error) {
	out := make(map[string]int, len(p))
	for i, name := range p {
		key := fold(name)
		if key == "" {
			return nil, fmt.Errorf("%w: empty name at priority %d", ErrInvalidInput, i)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: %q listed twice in priority order", ErrInvalidInput, name)
		}
		out[key] = i
	}
	return out, nil
}
