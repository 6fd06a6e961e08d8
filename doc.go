// Package crockford generates and validates compact, human-typeable unique
// identifiers: a fixed-size block of cryptographically random bytes rendered
// as a Crockford Base32 string with a single trailing checksum character.
//
// The checksum lets humans and log pipelines catch transcription errors
// without any external lookup: the payload, read as a big-endian unsigned
// integer, is reduced modulo 37 and mapped onto a fixed 37-symbol table (the
// 32 Base32 symbols plus five reserved symbols). Because 37 is prime and
// exceeds the alphabet size, substituting any single body character changes
// the derived checksum whenever the payload width is a multiple of five bytes
// (both supported widths, 15 and 20, are). For other widths the final body
// character carries zero-filled trailing bits, and a substitution confined to
// those bits decodes to the same payload.
//
// # Basic Usage
//
// Generate a fresh identifier and round-trip it through its canonical form:
//
//	id, err := crockford.New()
//	if err != nil {
//		// entropy pool unavailable; do not proceed
//	}
//	s := id.String() // e.g. "4S0Y2VZ7SF4VGHNZNYTZ9GVQ6"
//
//	parsed, err := crockford.Parse(s)
//	if err != nil {
//		// invalid length, invalid encoding, or checksum mismatch
//	}
//	_ = parsed.Equal(id) // true
//
// # Canonical Form
//
// The canonical form is uppercase: ceil(size*8/5) body characters plus one
// checksum character. Parsing is case-insensitive and normalizes the usual
// Crockford confusables (O reads as 0, I and L read as 1) before rejecting
// anything. Equality is defined over the canonical form, and an unparseable
// string is never equal to any identifier.
//
// # Payload Width
//
// The default payload is 15 random bytes (a 25-character string). Other
// widths are configured per call:
//
//	id, err := crockford.New(crockford.WithSize(20)) // 33-character string
//	parsed, err := crockford.Parse(s, crockford.WithSize(20))
//
// # Conversions
//
// An identifier converts losslessly to and from its raw bytes. It also
// converts to an arbitrary-precision integer, but a bare integer cannot
// represent leading zero bytes, so the reverse conversion requires the byte
// width explicitly:
//
//	n := id.Int()
//	back, err := crockford.FromInt(n, id.Size())
//	_ = back.Equal(id) // true
//
// # Error Handling
//
// Parse failures are pure validation errors with no side effects:
//
//   - ErrInvalidLength: the input is not the exact expected length (checked
//     first; nothing else is attempted)
//   - ErrInvalidEncoding: a body character is outside the alphabet even after
//     confusable normalization
//   - ErrChecksumMismatch: the body decodes but the trailing character does
//     not match the derived checksum, a likely transcription error
//
// Generation fails only when the secure entropy source is unavailable; the
// error wraps entropy.ErrUnavailable and is never retried internally.
//
// # Concurrency
//
// Identifiers are immutable values. The package holds no mutable state beyond
// the process-wide entropy handle, which is safe for concurrent use, so any
// number of goroutines may generate and parse without coordination.
package crockford
