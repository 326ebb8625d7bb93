// Package winpoll reports whether a modifier+key combination is currently
// held down on Windows, with debounce suppression of repeated triggers.
//
// This is a polling predicate, not an event source: the host calls
// HotkeyPressed from its own loop. The debounce timestamp is unsynchronized
// process-wide state, so the package-level functions assume a single poller
// goroutine; hosts that poll from several threads must use separate Pollers
// or serialize externally.
package winpoll

// Virtual-key codes consulted for modifier state.
// https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
const (
	vkShift    = 0x10
	vkControl  = 0x11
	vkMenu     = 0x12 // Alt
	vkLWin     = 0x5B
	vkRWin     = 0x5C
	vkLShift   = 0xA0
	vkRShift   = 0xA1
	vkLControl = 0xA2
	vkRControl = 0xA3
	vkLMenu    = 0xA4
	vkRMenu    = 0xA5
)

// DebounceInterval is the window after a successful match during which
// HotkeyPressed reports false even if the combination is physically held,
// in GetTickCount milliseconds.
const DebounceInterval = 300

// Combo describes a required hotkey combination. Each modifier flag must
// exactly match the physical state — a held modifier that is not required
// invalidates the match — and Key is the main virtual-key code.
type Combo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Win   bool
	Key   int
}

// Poller evaluates combinations against live key state. keyState reports
// whether a virtual key is down right now and ticks is a millisecond counter
// with GetTickCount wraparound semantics; both are injectable so the
// predicate logic is testable without a Windows input stack.
type Poller struct {
	keyState func(vk int) bool
	ticks    func() uint32
	lastFire uint32
}

// NewPoller builds a Poller over the given key-state and clock sources.
func NewPoller(keyState func(vk int) bool, ticks func() uint32) *Poller {
	return &Poller{keyState: keyState, ticks: ticks}
}

// KeyPressed reports whether the key is currently down. Side-effect free.
func (p *Poller) KeyPressed(vk int) bool {
	return p.keyState(vk)
}

// HotkeyPressed reports whether the combination is down right now. Inside
// the debounce window after a previous match it reports false even when the
// keys are physically held; only a full match updates the debounce tick.
func (p *Poller) HotkeyPressed(c Combo) bool {
	now := p.ticks()
	// Unsigned subtraction stays correct across the 49.7-day tick wrap.
	if now-p.lastFire < DebounceInterval {
		return false
	}

	ctrl := p.keyState(vkControl) || p.keyState(vkLControl) || p.keyState(vkRControl)
	shift := p.keyState(vkShift) || p.keyState(vkLShift) || p.keyState(vkRShift)
	alt := p.keyState(vkMenu) || p.keyState(vkLMenu) || p.keyState(vkRMenu)
	win := p.keyState(vkLWin) || p.keyState(vkRWin)

	if ctrl != c.Ctrl || shift != c.Shift || alt != c.Alt || win != c.Win {
		return false
	}
	if !p.keyState(c.Key) {
		return false
	}

	p.lastFire = now
	return true
}
