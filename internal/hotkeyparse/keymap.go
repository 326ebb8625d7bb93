package hotkeyparse

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// keysyms holds the named keys; letters, digits and function keys are filled
// in by init. Values are from X11 keysymdef.h.
var keysyms = map[string]xproto.Keysym{
	"space":  0x0020,
	"enter":  0xff0d,
	"return": 0xff0d,
	"esc":    0xff1b,
	"escape": 0xff1b,
	"tab":    0xff09,
	"delete": 0xffff,
	"left":   0xff51,
	"up":     0xff52,
	"right":  0xff53,
	"down":   0xff54,
}

// vkCodes is the Windows virtual-key counterpart of keysyms.
// https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
var vkCodes = map[string]int{
	"space":  0x20,
	"enter":  0x0D,
	"return": 0x0D,
	"esc":    0x1B,
	"escape": 0x1B,
	"tab":    0x09,
	"delete": 0x2E,
	"left":   0x25,
	"up":     0x26,
	"right":  0x27,
	"down":   0x28,
}

func init() {
	// Latin letter keysyms match lowercase ASCII; VK codes use the
	// uppercase letter.
	for c := 'a'; c <= 'z'; c++ {
		keysyms[string(c)] = xproto.Keysym(c)
		vkCodes[string(c)] = int(c-'a') + 0x41
	}
	// Digit keysyms and VK codes both match ASCII.
	for c := '0'; c <= '9'; c++ {
		keysyms[string(c)] = xproto.Keysym(c)
		vkCodes[string(c)] = int(c)
	}
	for i := 1; i <= 12; i++ {
		keysyms[fmt.Sprintf("f%d", i)] = xproto.Keysym(0xffbe + i - 1)
		vkCodes[fmt.Sprintf("f%d", i)] = 0x70 + i - 1
	}
}
