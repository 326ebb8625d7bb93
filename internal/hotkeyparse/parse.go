// Package hotkeyparse turns textual combinations like "ctrl+shift+a" into the
// native encodings the platform components consume: an X11 modifier mask plus
// keysym for the grab component, and a winpoll Combo with a Windows
// virtual-key code for the poll component.
package hotkeyparse

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/keygrab/internal/winpoll"
)

func split(s string) (modifiers []string, key string, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	key = parts[len(parts)-1]
	if key == "" {
		return nil, "", fmt.Errorf("hotkeyparse: empty key in %q", s)
	}
	for _, p := range parts[:len(parts)-1] {
		if p == "" {
			return nil, "", fmt.Errorf("hotkeyparse: empty modifier in %q", s)
		}
		modifiers = append(modifiers, p)
	}
	return modifiers, key, nil
}

// X11 parses a combination into an X modifier bitmask and keysym. Alt maps to
// Mod1 and Super/Win to Mod4, the common assignments on Linux.
func X11(s string) (mods uint16, sym xproto.Keysym, err error) {
	modifiers, key, err := split(s)
	if err != nil {
		return 0, 0, err
	}
	for _, m := range modifiers {
		switch m {
		case "ctrl", "control":
			mods |= xproto.ModMaskControl
		case "shift":
			mods |= xproto.ModMaskShift
		case "alt":
			mods |= xproto.ModMask1
		case "super", "win", "cmd":
			mods |= xproto.ModMask4
		default:
			return 0, 0, fmt.Errorf("hotkeyparse: unsupported modifier %q", m)
		}
	}
	sym, ok := keysyms[key]
	if !ok {
		return 0, 0, fmt.Errorf("hotkeyparse: unsupported key %q", key)
	}
	return mods, sym, nil
}

// VK parses a combination into a winpoll Combo with required-modifier flags
// and the main Windows virtual-key code.
func VK(s string) (winpoll.Combo, error) {
	modifiers, key, err := split(s)
	if err != nil {
		return winpoll.Combo{}, err
	}
	var c winpoll.Combo
	for _, m := range modifiers {
		switch m {
		case "ctrl", "control":
			c.Ctrl = true
		case "shift":
			c.Shift = true
		case "alt":
			c.Alt = true
		case "super", "win", "cmd":
			c.Win = true
		default:
			return winpoll.Combo{}, fmt.Errorf("hotkeyparse: unsupported modifier %q", m)
		}
	}
	vk, ok := vkCodes[key]
	if !ok {
		return winpoll.Combo{}, fmt.Errorf("hotkeyparse: unsupported key %q", key)
	}
	c.Key = vk
	return c, nil
}
