package hotkeyparse

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/keygrab/internal/winpoll"
)

func TestX11(t *testing.T) {
	cases := []struct {
		in       string
		wantMods uint16
		wantSym  xproto.Keysym
	}{
		{"ctrl+shift+a", xproto.ModMaskControl | xproto.ModMaskShift, 0x0061},
		{"Ctrl+Shift+A", xproto.ModMaskControl | xproto.ModMaskShift, 0x0061},
		{"alt+f12", xproto.ModMask1, 0xffc9},
		{"super+space", xproto.ModMask4, 0x0020},
		{"win+enter", xproto.ModMask4, 0xff0d},
		{"f5", 0, 0xffc2},
		{"ctrl+9", xproto.ModMaskControl, 0x0039},
	}
	for _, tc := range cases {
		mods, sym, err := X11(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if mods != tc.wantMods {
			t.Fatalf("%q: expected mods %#x, got %#x", tc.in, tc.wantMods, mods)
		}
		if sym != tc.wantSym {
			t.Fatalf("%q: expected keysym %#x, got %#x", tc.in, tc.wantSym, sym)
		}
	}
}

func TestVK(t *testing.T) {
	cases := []struct {
		in   string
		want winpoll.Combo
	}{
		{"ctrl+shift+a", winpoll.Combo{Ctrl: true, Shift: true, Key: 0x41}},
		{"alt+f12", winpoll.Combo{Alt: true, Key: 0x7B}},
		{"win+v", winpoll.Combo{Win: true, Key: 0x56}},
		{"ctrl+alt+shift+win+0", winpoll.Combo{Ctrl: true, Alt: true, Shift: true, Win: true, Key: 0x30}},
		{"escape", winpoll.Combo{Key: 0x1B}},
	}
	for _, tc := range cases {
		got, err := VK(tc.in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.in, tc.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{"", "ctrl+", "++a", "hyper+a", "ctrl+pause"}
	for _, in := range bad {
		if _, _, err := X11(in); err == nil {
			t.Fatalf("X11(%q): expected error", in)
		}
		if _, err := VK(in); err == nil {
			t.Fatalf("VK(%q): expected error", in)
		}
	}
}
