package combo

import (
	"fmt"
	"slices"
)

// Expand returns every chord that picks one literal from each group, in group order,
// joined by separator.
//
// The literal of the first group varies fastest:
//
//	Expand([][]string{{"a", "b"}, {"1", "2"}}, "-") // ["a-1", "b-1", "a-2", "b-2"]
//
// The result has one entry per combination; duplicates are kept. An empty group list
// or an empty group is reported as ErrInvalidInput.
func Expand(groups [][]string, separator string) ([]string, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no groups to expand", ErrInvalidInput)
	}
	for i, g := range groups {
		if len(g) == 0 {
			return nil, fmt.Errorf("%w: group %d is empty", ErrInvalidInput, i)
		}
	}

	// Fold from the last group backwards; each step prefixes the current tails
	// with every literal of the group in front of them.
	last := len(groups) - 1
	result := slices.Clone(groups[last])
	for i := last - 1; i >= 0; i-- {
		head := groups[i]
		next := make([]string, 0, len(result)*len(head))
		for _, tail := range result {
			for _, lit := range head {
				next = append(next, lit+separator+tail)
			}
		}
		result = next
	}
	return result, nil
}

// Count returns the number of chords Expand would produce for groups.
func Count(groups [][]string) int {
	if len(groups) == 0 {
		return 0
	}
	total := 1
	for _, g := range groups {
		total *= len(g)
	}
	return total
}
