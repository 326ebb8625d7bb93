package x11grab

import (
	"context"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// EventKind classifies the outcome of one WaitEvent call.
type EventKind int

const (
	// EventOther is any queued event that is not a press or release of the
	// grabbed combination. The caller should simply wait again.
	EventOther EventKind = iota
	// EventDown is a key-press transition.
	EventDown
	// EventUp is a key-release transition.
	EventUp
)

// EventSink receives press/release notifications. The tag identifies which
// logical hotkey fired and is passed through untouched. Sinks run
// synchronously on the goroutine blocked in WaitEvent.
type EventSink interface {
	HotkeyDown(tag uint64)
	HotkeyUp(tag uint64)
}

// SinkFuncs adapts plain functions to an EventSink. Nil functions are skipped.
type SinkFuncs struct {
	Down func(tag uint64)
	Up   func(tag uint64)
}

func (s SinkFuncs) HotkeyDown(tag uint64) {
	if s.Down != nil {
		s.Down(tag)
	}
}

func (s SinkFuncs) HotkeyUp(tag uint64) {
	if s.Up != nil {
		s.Up(tag)
	}
}

// WaitEvent blocks until the next queued event on the context's connection.
// A key press notifies the sink and returns EventDown, a release returns
// EventUp, and anything else is consumed and returned as EventOther so the
// caller can keep waiting. There is no timeout; closing the connection from
// another goroutine is the only way to unblock, and surfaces here as
// ErrInvalidContext.
func (c *Context) WaitEvent(sink EventSink, tag uint64) (EventKind, error) {
	if !c.valid() {
		return EventOther, ErrInvalidContext
	}
	ev, xerr := c.xu.Conn().WaitForEvent()
	if ev == nil && xerr == nil {
		// Connection gone: closed locally or the server went away.
		return EventOther, ErrInvalidContext
	}
	if xerr != nil {
		// Stray protocol errors on the event stream are not transitions.
		return EventOther, nil
	}
	return deliver(ev, sink, tag), nil
}

func deliver(ev xgb.Event, sink EventSink, tag uint64) EventKind {
	switch ev.(type) {
	case xproto.KeyPressEvent:
		if sink != nil {
			sink.HotkeyDown(tag)
		}
		return EventDown
	case xproto.KeyReleaseEvent:
		if sink != nil {
			sink.HotkeyUp(tag)
		}
		return EventUp
	default:
		return EventOther
	}
}

// Watch consumes events until ctx is done or the connection fails, notifying
// the sink on every transition. Cancellation closes the connection to unblock
// the pending wait, so the Context cannot be reused afterward; in that case
// the returned error is ctx.Err().
func (c *Context) Watch(ctx context.Context, sink EventSink, tag uint64) error {
	if !c.valid() {
		return ErrInvalidContext
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.Close()
		case <-done:
		}
	}()

	for {
		if _, err := c.WaitEvent(sink, tag); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
	}
}

// WaitHotkey registers the combination, blocks until it is released, then
// unregisters. This is the legacy composed surface: all failures collapse to
// CodeConflict or CodeFailure, and a clean release returns CodeOK.
func WaitHotkey(mods uint16, sym xproto.Keysym, sink EventSink, tag uint64) int {
	c, err := Register(mods, sym)
	if err != nil {
		return LegacyCode(err)
	}
	defer c.Unregister()

	for {
		kind, err := c.WaitEvent(sink, tag)
		if err != nil {
			return CodeFailure
		}
		if kind == EventUp {
			return CodeOK
		}
	}
}
