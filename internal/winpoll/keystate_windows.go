//go:build windows

package winpoll

import "golang.org/x/sys/windows"

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetTickCount     = kernel32.NewProc("GetTickCount")
)

// asyncKeyDown reads the high-order bit of GetAsyncKeyState: the key is
// physically down at the time of the call.
func asyncKeyDown(vk int) bool {
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return state&0x8000 != 0
}

func tickCount() uint32 {
	ticks, _, _ := procGetTickCount.Call()
	return uint32(ticks)
}

// defaultPoller backs the package-level functions. Single poller goroutine
// only: the debounce timestamp carries no locking.
var defaultPoller = NewPoller(asyncKeyDown, tickCount)

// KeyPressed reports whether the given virtual key is currently down.
func KeyPressed(vk int) bool {
	return defaultPoller.KeyPressed(vk)
}

// HotkeyPressed reports whether the combination is currently held, with
// debounce suppression of repeated triggers.
func HotkeyPressed(c Combo) bool {
	return defaultPoller.HotkeyPressed(c)
}
