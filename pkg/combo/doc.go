// Package combo canonicalizes key-combination strings and expands alias groups.
//
// A chord is a list of key names joined by a delimiter, for example "⌘-Control-A".
// Two operations are provided:
//
//   - Normalizer.Normalize: resolve alternate key names to their logical name and sort
//     the components into a fixed order, so that every spelling of a chord produces the
//     same lookup key ("ctrl-os-a").
//   - Expand: enumerate every literal chord that can be built from groups of alternate
//     names, e.g. [["ctrl","control"],["s"]] → ["ctrl-s", "control-s"].
//
// # Ordering
//
// Components are sorted by:
//
//  1. ctrl
//  2. shift
//  3. alt
//  4. os
//  5. length of the key name
//  6. lexicographically
//
// # Example Usage
//
//	n, err := combo.NewNormalizer(combo.DefaultAliases(), combo.DefaultPriority())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n.Normalize("⌘-Control-Shift-A") // "ctrl-shift-os-a"
//
//	spellings, err := combo.Expand([][]string{{"ctrl", "control"}, {"s"}}, "-")
//
// Both operations are pure. A Normalizer never changes after construction and may be
// shared between goroutines.
package combo
