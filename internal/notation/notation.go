// Package notation renders canonical chords in other key notations.
//
// Canonical chords come from combo.Normalizer and look like "ctrl-shift-os-a".
// This package turns them into:
//
//   - Display form for help text: "Ctrl+Shift+Cmd+A"
//   - tmux key names for send-keys: "C-S-a", "M-Enter"
//
// It also recognises tmux key names, so callers can tell a key name from literal
// text before passing it to tmux.
package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/keepmind9/combokey/pkg/combo"
)

// ErrUnsupported is returned when a chord has no equivalent in the target notation
var ErrUnsupported = errors.New("unsupported in target notation")

// Format names an output notation
type Format string

const (
	FormatCanonical Format = "canonical"
	FormatDisplay   Format = "display"
	FormatTmux      Format = "tmux"
)

// ParseFormat returns the Format named by s
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCanonical, FormatDisplay, FormatTmux:
		return f, nil
	case "":
		return FormatCanonical, nil
	default:
		return "", fmt.Errorf("unknown format %q (want canonical, display or tmux)", s)
	}
}

// Render converts a canonical chord to format f
func Render(canonical, delimiter string, f Format) (string, error) {
	switch f {
	case FormatCanonical, "":
		return canonical, nil
	case FormatDisplay:
		return Display(canonical, delimiter), nil
	case FormatTmux:
		return Tmux(canonical, delimiter)
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}

var displayNames = map[string]string{
	combo.KeyCtrl:  "Ctrl",
	combo.KeyShift: "Shift",
	combo.KeyAlt:   "Alt",
	combo.KeyOS:    "Cmd",
	"esc":          "Esc",
	"pageup":       "PgUp",
	"pagedown":     "PgDn",
}

// Display returns a human readable form such as "Ctrl+Shift+P"
func Display(canonical, delimiter string) string {
	if canonical == "" {
		return ""
	}
	parts := strings.Split(canonical, delimiter)
	for i, p := range parts {
		if name, ok := displayNames[p]; ok {
			parts[i] = name
			continue
		}
		parts[i] = titleKey(p)
	}
	return strings.Join(parts, "+")
}

// titleKey upper-cases the first letter of a key name: "a" → "A", "enter" → "Enter", "f5" → "F5"
func titleKey(key string) string {
	r := []rune(key)
	if len(r) == 0 {
		return key
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

var tmuxPrefixes = map[string]string{
	combo.KeyCtrl:  "C-",
	combo.KeyShift: "S-",
	combo.KeyAlt:   "M-",
}

var tmuxKeys = map[string]string{
	"enter":     "Enter",
	"return":    "Enter",
	"tab":       "Tab",
	"escape":    "Escape",
	"esc":       "Escape",
	"space":     "Space",
	"backspace": "BSpace",
	"delete":    "DC",
	"insert":    "IC",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PPage",
	"pagedown":  "NPage",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
}

// Tmux returns the tmux key name for a canonical chord, e.g. "ctrl-alt-a" → "C-M-a".
// tmux has no os/super modifier, so chords using it are ErrUnsupported, as are
// multi-character keys tmux does not know by name.
func Tmux(canonical, delimiter string) (string, error) {
	if canonical == "" {
		return "", fmt.Errorf("%w: empty chord", ErrUnsupported)
	}

	var b strings.Builder
	var keys []string
	for _, p := range strings.Split(canonical, delimiter) {
		if prefix, ok := tmuxPrefixes[p]; ok {
			b.WriteString(prefix)
			continue
		}
		if p == combo.KeyOS {
			return "", fmt.Errorf("%w: tmux has no %q modifier", ErrUnsupported, p)
		}
		keys = append(keys, p)
	}

	if len(keys) != 1 {
		return "", fmt.Errorf("%w: tmux key names take exactly one key, got %d in %q",
			ErrUnsupported, len(keys), canonical)
	}

	key := keys[0]
	if name, ok := tmuxKeys[key]; ok {
		key = name
	} else if isFunctionKey(key) {
		key = "F" + key[1:]
	}
	// Anything else tmux would type out as literal text.
	if !IsTmuxKeyName(key) && utf8.RuneCountInString(key) != 1 {
		return "", fmt.Errorf("%w: %q is not a tmux key name", ErrUnsupported, keys[0])
	}
	b.WriteString(key)
	return b.String(), nil
}

// IsTmuxKeyName reports whether input is a tmux key name (e.g. "C-[", "M-a", "C-S-Tab")
// rather than literal text. Key names must not be sent with send-keys -l.
func IsTmuxKeyName(input string) bool {
	rest := input
	matched := false
	for hasModifierPrefix(rest) {
		rest = rest[2:]
		matched = true
	}
	if rest == "" {
		return false
	}
	if matched || isFunctionKey(strings.ToLower(rest)) {
		return true
	}
	for _, name := range tmuxKeys {
		if rest == name {
			return true
		}
	}
	return false
}

func hasModifierPrefix(s string) bool {
	return strings.HasPrefix(s, "C-") || strings.HasPrefix(s, "M-") || strings.HasPrefix(s, "S-")
}

// isFunctionKey matches f1 through f24 style names
func isFunctionKey(key string) bool {
	if len(key) < 2 || key[0] != 'f' {
		return false
	}
	for _, c := range key[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
