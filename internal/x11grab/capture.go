package x11grab

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
)

// grabAttemptMu serializes grab attempts process-wide. Conflict detection
// inspects the error of the one in-flight grab request; the classic Xlib
// protocol only ever supported a single error interceptor per process, and
// keeping the lock turns that implicit contract into a hard guarantee even
// when several goroutines grab on separate connections.
var grabAttemptMu sync.Mutex

// grabKeyRequestCode is the GrabKey major opcode. An access error is only a
// hotkey conflict when it was raised by a grab request, not by some unrelated
// request that failed on the same connection.
const grabKeyRequestCode = 33

// classifyGrabError maps a protocol error from a grab attempt onto the error
// taxonomy. An access error against GrabKey is the documented signature of
// "combination owned by another client" and becomes ErrConflict; every other
// error is folded into ErrGrabFailed rather than propagated raw, so a failing
// grab can never tear down the connection it ran on.
func classifyGrabError(err error) error {
	if access, ok := err.(xproto.AccessError); ok && access.MajorOpcode == grabKeyRequestCode {
		return ErrConflict
	}
	return fmt.Errorf("%w: %v", ErrGrabFailed, err)
}
