package winpoll

import "testing"

type fakeState map[int]bool

func pollerWith(keys fakeState, now *uint32) *Poller {
	return NewPoller(func(vk int) bool { return keys[vk] }, func() uint32 { return *now })
}

const mainKey = 0x41 // VK_A

func TestKeyPressed(t *testing.T) {
	now := uint32(1000)
	p := pollerWith(fakeState{mainKey: true}, &now)
	if !p.KeyPressed(mainKey) {
		t.Fatalf("expected key %#x reported down", mainKey)
	}
	if p.KeyPressed(0x42) {
		t.Fatalf("expected key 0x42 reported up")
	}
}

// TestHotkeyPressed_ModifierExclusivity crosses every required-modifier
// combination with every actual-modifier combination: the predicate must hold
// exactly when they are equal and the main key is down.
func TestHotkeyPressed_ModifierExclusivity(t *testing.T) {
	for req := 0; req < 16; req++ {
		for actual := 0; actual < 16; actual++ {
			keys := fakeState{mainKey: true}
			if actual&1 != 0 {
				keys[vkControl] = true
			}
			if actual&2 != 0 {
				keys[vkShift] = true
			}
			if actual&4 != 0 {
				keys[vkMenu] = true
			}
			if actual&8 != 0 {
				keys[vkLWin] = true
			}

			now := uint32(1000)
			p := pollerWith(keys, &now)
			combo := Combo{
				Ctrl:  req&1 != 0,
				Shift: req&2 != 0,
				Alt:   req&4 != 0,
				Win:   req&8 != 0,
				Key:   mainKey,
			}

			want := req == actual
			if got := p.HotkeyPressed(combo); got != want {
				t.Fatalf("required=%04b actual=%04b: expected %v, got %v", req, actual, got, want)
			}
		}
	}
}

func TestHotkeyPressed_LeftRightVariantsCount(t *testing.T) {
	variants := []struct {
		name string
		vk   int
		c    Combo
	}{
		{"left ctrl", vkLControl, Combo{Ctrl: true, Key: mainKey}},
		{"right ctrl", vkRControl, Combo{Ctrl: true, Key: mainKey}},
		{"left shift", vkLShift, Combo{Shift: true, Key: mainKey}},
		{"right shift", vkRShift, Combo{Shift: true, Key: mainKey}},
		{"left alt", vkLMenu, Combo{Alt: true, Key: mainKey}},
		{"right alt", vkRMenu, Combo{Alt: true, Key: mainKey}},
		{"left win", vkLWin, Combo{Win: true, Key: mainKey}},
		{"right win", vkRWin, Combo{Win: true, Key: mainKey}},
	}
	for _, v := range variants {
		now := uint32(1000)
		p := pollerWith(fakeState{v.vk: true, mainKey: true}, &now)
		if !p.HotkeyPressed(v.c) {
			t.Fatalf("%s: expected variant key %#x to satisfy the modifier", v.name, v.vk)
		}
	}
}

func TestHotkeyPressed_MainKeyAbsent(t *testing.T) {
	now := uint32(1000)
	p := pollerWith(fakeState{vkControl: true}, &now)
	if p.HotkeyPressed(Combo{Ctrl: true, Key: mainKey}) {
		t.Fatalf("expected no match without the main key")
	}
}

func TestHotkeyPressed_DebounceWindow(t *testing.T) {
	now := uint32(5000)
	p := pollerWith(fakeState{vkControl: true, mainKey: true}, &now)
	combo := Combo{Ctrl: true, Key: mainKey}

	if !p.HotkeyPressed(combo) {
		t.Fatalf("expected first poll to match")
	}
	now += 299
	if p.HotkeyPressed(combo) {
		t.Fatalf("expected suppression inside the debounce window")
	}
	now += 1 // exactly DebounceInterval since the match
	if !p.HotkeyPressed(combo) {
		t.Fatalf("expected match at the window edge")
	}
}

func TestHotkeyPressed_DebounceSuppressesEvenWhenHeld(t *testing.T) {
	now := uint32(2000)
	p := pollerWith(fakeState{mainKey: true}, &now)
	combo := Combo{Key: mainKey}

	if !p.HotkeyPressed(combo) {
		t.Fatalf("expected first poll to match")
	}
	// Keys stay physically held; the window must still report not-pressed.
	for i := 0; i < 5; i++ {
		now += 50
		if p.HotkeyPressed(combo) {
			t.Fatalf("expected suppression at +%dms while held", (i+1)*50)
		}
	}
}

func TestHotkeyPressed_TickWraparound(t *testing.T) {
	now := uint32(0xFFFFFF38) // 200 ticks before the counter wraps
	p := pollerWith(fakeState{mainKey: true}, &now)
	combo := Combo{Key: mainKey}

	if !p.HotkeyPressed(combo) {
		t.Fatalf("expected match before the wrap")
	}
	now = 50 // wrapped: 250 ticks elapsed
	if p.HotkeyPressed(combo) {
		t.Fatalf("expected suppression across the wrap")
	}
	now = 100 // 300 ticks elapsed
	if !p.HotkeyPressed(combo) {
		t.Fatalf("expected match once the window passed the wrap")
	}
}
