package x11grab

import "errors"

var (
	// ErrDisplayUnavailable means no X server could be reached after the
	// full connection retry budget. The condition may clear later (session
	// startup races), so callers are free to try again.
	ErrDisplayUnavailable = errors.New("x11grab: display unavailable")

	// ErrKeysymUnmapped means the requested key symbol resolves to no
	// keycode in the server's current keyboard mapping.
	ErrKeysymUnmapped = errors.New("x11grab: keysym not mapped to any keycode")

	// ErrConflict means another client already holds a grab on the same
	// modifier+key combination. Expected and recoverable: pick a different
	// combination or tell the user.
	ErrConflict = errors.New("x11grab: key combination already grabbed by another client")

	// ErrGrabFailed covers any grab synchronization failure that is not a
	// conflict. Fatal to the attempt.
	ErrGrabFailed = errors.New("x11grab: grab failed")

	// ErrInvalidContext means an operation was invoked on a nil or closed
	// context. Programming error in the caller.
	ErrInvalidContext = errors.New("x11grab: invalid or closed context")
)

// Legacy return codes used by WaitHotkey and LegacyCode.
const (
	CodeOK       = 0
	CodeConflict = -1
	CodeFailure  = -2
)

// LegacyCode collapses an error from this package into the legacy code space:
// nil is CodeOK, a conflict is CodeConflict, everything else is CodeFailure.
// The collapse trades diagnosability for a one-integer surface; callers that
// need to tell failures apart should use the decomposed operations and
// errors.Is instead.
func LegacyCode(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrConflict):
		return CodeConflict
	default:
		return CodeFailure
	}
}
