// Package hotkey parses and formats summon-key bindings like "Alt+Space".
// Registering the binding with the OS is a platform collaborator's job;
// this package owns only the textual and capture-flow logic.
package hotkey

import (
	"fmt"
	"strings"
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModAlt Modifier = 1 << iota
	ModCtrl
	ModShift
	ModSuper
)

// Spec is one parsed binding: a modifier set plus exactly one key.
type Spec struct {
	Mods Modifier
	Key  string
}

// namedKeys are the recognized non-character keys, canonical form.
var namedKeys = map[string]string{
	"SPACE":     "Space",
	"ENTER":     "Enter",
	"RETURN":    "Enter",
	"TAB":       "Tab",
	"ESC":       "Esc",
	"ESCAPE":    "Esc",
	"BACKSPACE": "Backspace",
	"LEFT":      "Left",
	"RIGHT":     "Right",
	"UP":        "Up",
	"DOWN":      "Down",
}

// Parse reads a "+"-separated binding. Unknown tokens or multiple
// non-modifier keys are errors; a binding needs exactly one key.
func Parse(input string) (Spec, error) {
	var spec Spec

	for _, token := range strings.Split(input, "+") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		upper := strings.ToUpper(token)

		switch upper {
		case "ALT":
			spec.Mods |= ModAlt
		case "CTRL", "CONTROL":
			spec.Mods |= ModCtrl
		case "SHIFT":
			spec.Mods |= ModShift
		case "WIN", "WINDOWS", "SUPER", "CMD", "META":
			spec.Mods |= ModSuper
		default:
			if spec.Key != "" {
				return Spec{}, fmt.Errorf("hotkey: multiple keys in %q", input)
			}
			key, ok := canonicalKey(upper)
			if !ok {
				return Spec{}, fmt.Errorf("hotkey: unknown key %q", token)
			}
			spec.Key = key
		}
	}

	if spec.Key == "" {
		return Spec{}, fmt.Errorf("hotkey: no key in %q", input)
	}
	return spec, nil
}

func canonicalKey(upper string) (string, bool) {
	if named, ok := namedKeys[upper]; ok {
		return named, true
	}
	if len(upper) == 1 {
		ch := upper[0]
		if ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' {
			return upper, true
		}
		return "", false
	}
	// F1..F12
	if strings.HasPrefix(upper, "F") && len(upper) <= 3 {
		switch upper[1:] {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
			return upper, true
		}
	}
	return "", false
}

// String renders the canonical binding text, modifiers in fixed order.
func (s Spec) String() string {
	var parts []string
	if s.Mods&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if s.Mods&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if s.Mods&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if s.Mods&ModSuper != 0 {
		parts = append(parts, "Super")
	}
	parts = append(parts, s.Key)
	return strings.Join(parts, "+")
}

// ParseOrDefault falls back to Alt+Space for unparseable bindings.
func ParseOrDefault(input string) Spec {
	spec, err := Parse(input)
	if err != nil {
		return Spec{Mods: ModAlt, Key: "Space"}
	}
	return spec
}
