// Package x11grab acquires exclusive ownership of a hotkey combination at the
// X server and reports press/release transitions.
//
// A Context owns one display connection and at most one active grab. All
// operations are synchronous and blocking; run them on a dedicated goroutine.
// WaitEvent has no timeout of its own — Watch layers cancellation on top by
// closing the connection, which is the only way to unblock a pending wait.
package x11grab

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// defaultOpenAttempts is the historical connection retry budget. The display
// server may not be reachable right at process start (session startup races),
// so opening retries a bounded number of times before giving up.
const defaultOpenAttempts = 42

// Options tunes connection establishment. The zero value preserves the
// historical behavior: 42 attempts, no delay, $DISPLAY.
type Options struct {
	// OpenAttempts is the connection-open retry budget; 0 means the default.
	OpenAttempts int
	// OpenBackoff is the delay between attempts; 0 means none.
	OpenBackoff time.Duration
	// Display names the X display to connect to; empty means $DISPLAY.
	Display string
}

// Context is one exclusive grab session: a display connection, the resolved
// keycode and modifier mask, and the root window events are delivered to.
// A Context returned by Open is fully initialized; there is no observable
// partially-constructed state.
type Context struct {
	xu      *xgbutil.XUtil
	keycode xproto.Keycode
	mods    uint16
	root    xproto.Window
	closed  atomic.Bool
}

// DisplayAvailable reports whether an X server can be reached. The probe
// spends the full retry budget, so a false result means the display stayed
// down for the whole attempt, not just one failed dial.
func DisplayAvailable() bool {
	xu, err := connect(Options{})
	if err != nil {
		return false
	}
	xu.Conn().Close()
	return true
}

func connect(opts Options) (*xgbutil.XUtil, error) {
	attempts := opts.OpenAttempts
	if attempts <= 0 {
		attempts = defaultOpenAttempts
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 && opts.OpenBackoff > 0 {
			time.Sleep(opts.OpenBackoff)
		}
		xu, err := xgbutil.NewConnDisplay(opts.Display)
		if err == nil {
			return xu, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrDisplayUnavailable, lastErr)
}

// Open connects to the display, resolves the keysym to a keycode and captures
// the default root window. The returned Context holds no grab yet.
func Open(mods uint16, sym xproto.Keysym) (*Context, error) {
	return OpenWithOptions(mods, sym, Options{})
}

// OpenWithOptions is Open with an explicit connection retry policy.
func OpenWithOptions(mods uint16, sym xproto.Keysym, opts Options) (*Context, error) {
	xu, err := connect(opts)
	if err != nil {
		return nil, err
	}
	keycode, err := keycodeForKeysym(xu, sym)
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}
	return &Context{xu: xu, keycode: keycode, mods: mods, root: xu.RootWin()}, nil
}

// OpenName is Open with the key given by name ("F12", "a"), resolved through
// the keybind tables instead of a raw keysym value.
func OpenName(mods uint16, key string) (*Context, error) {
	return OpenNameWithOptions(mods, key, Options{})
}

// OpenNameWithOptions is OpenName with an explicit connection retry policy.
func OpenNameWithOptions(mods uint16, key string, opts Options) (*Context, error) {
	xu, err := connect(opts)
	if err != nil {
		return nil, err
	}
	keybind.Initialize(xu)
	codes := keybind.StrToKeycodes(xu, key)
	if len(codes) == 0 {
		xu.Conn().Close()
		return nil, fmt.Errorf("%w: key %q", ErrKeysymUnmapped, key)
	}
	return &Context{xu: xu, keycode: codes[0], mods: mods, root: xu.RootWin()}, nil
}

// keycodeForKeysym scans the server keyboard mapping for the first keycode
// carrying the symbol in any column.
func keycodeForKeysym(xu *xgbutil.XUtil, sym xproto.Keysym) (xproto.Keycode, error) {
	setup := xproto.Setup(xu.Conn())
	min, max := setup.MinKeycode, setup.MaxKeycode
	reply, err := xproto.GetKeyboardMapping(xu.Conn(), min, byte(max-min+1)).Reply()
	if err != nil {
		return 0, fmt.Errorf("%w: keyboard mapping: %v", ErrKeysymUnmapped, err)
	}
	per := int(reply.KeysymsPerKeycode)
	for kc := int(min); kc <= int(max); kc++ {
		base := (kc - int(min)) * per
		for col := 0; col < per; col++ {
			if reply.Keysyms[base+col] == sym {
				return xproto.Keycode(kc), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: keysym 0x%x", ErrKeysymUnmapped, uint32(sym))
}

// Grab reserves the combination exclusively and subscribes the root window to
// press/release events. Returns ErrConflict when another client already holds
// the combination; the connection survives the failed attempt either way.
func (c *Context) Grab() error {
	if !c.valid() {
		return ErrInvalidContext
	}

	grabAttemptMu.Lock()
	defer grabAttemptMu.Unlock()

	// Checked request: Check blocks until the server has processed the
	// grab, so a conflict is observable right here instead of arriving
	// later on the event queue.
	err := xproto.GrabKeyChecked(c.xu.Conn(), false, c.root, c.mods, c.keycode,
		xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
	if err != nil {
		return classifyGrabError(err)
	}

	mask := []uint32{xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease}
	if err := xproto.ChangeWindowAttributesChecked(c.xu.Conn(), c.root, xproto.CwEventMask, mask).Check(); err != nil {
		return fmt.Errorf("%w: select input: %v", ErrGrabFailed, err)
	}
	return nil
}

// Ungrab releases the grab and flushes the request. No-op on a nil or closed
// Context, and harmless when no grab is held.
func (c *Context) Ungrab() {
	if !c.valid() {
		return
	}
	xproto.UngrabKey(c.xu.Conn(), c.keycode, c.root, c.mods)
	c.xu.Conn().Sync()
}

// Close releases the display connection. Callers holding a grab should
// Ungrab first; Unregister does both in order. Safe on nil and safe to call
// more than once.
func (c *Context) Close() {
	if c == nil || c.xu == nil || c.closed.Swap(true) {
		return
	}
	c.xu.Conn().Close()
}

func (c *Context) valid() bool {
	return c != nil && c.xu != nil && !c.closed.Load()
}

// Register is Open followed by Grab. On grab failure the connection opened
// during the attempt is fully closed before returning, so the conflict path
// leaks nothing.
func Register(mods uint16, sym xproto.Keysym) (*Context, error) {
	return RegisterWithOptions(mods, sym, Options{})
}

// RegisterWithOptions is Register with an explicit connection retry policy.
func RegisterWithOptions(mods uint16, sym xproto.Keysym, opts Options) (*Context, error) {
	c, err := OpenWithOptions(mods, sym, opts)
	if err != nil {
		return nil, err
	}
	if err := c.Grab(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Unregister releases the grab and the connection, in that order. Safe on a
// nil or already-closed Context.
func (c *Context) Unregister() {
	if !c.valid() {
		return
	}
	c.Ungrab()
	c.Close()
}
