// Package entropy provides cryptographically secure random byte generation
// behind a small injectable interface.
//
// The package wraps crypto/rand with a process-wide, lazily initialized
// default source and an interface seam so consumers can substitute a
// deterministic source in tests.
//
// # Basic Usage
//
// Draw random bytes from the default source:
//
//	buf, err := entropy.Bytes(15)
//	if err != nil {
//		// The OS entropy pool is unavailable; do not proceed.
//	}
//
// Or fill an existing buffer:
//
//	buf := make([]byte, 15)
//	if err := entropy.Default().Fill(buf); err != nil {
//		// handle failure
//	}
//
// # Failure Semantics
//
// A Source fails only when the underlying secure generator is unavailable.
// Failures wrap ErrUnavailable and are terminal for the call: there is no
// retry, no fallback to a weaker generator, and the error must be surfaced
// to the caller.
//
// # Concurrency
//
// The default source is safe for concurrent use. Each Fill call draws
// independent fresh randomness; no coordination between callers is required.
package entropy
