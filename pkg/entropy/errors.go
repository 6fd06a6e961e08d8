package entropy

import "errors"

// ErrUnavailable is returned when the underlying secure random source fails
// (e.g., OS entropy pool failure). This is fatal for identifier generation:
// it is never retried silently and is always propagated to the caller.
var ErrUnavailable = errors.New("entropy: secure source unavailable")
