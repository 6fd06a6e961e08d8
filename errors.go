package crockford

import "errors"

// Sentinel errors for parsing and conversion.
var (
	// ErrInvalidLength is returned when an input string is not the exact
	// encoded length for the configured payload size.
	ErrInvalidLength = errors.New("crockford: invalid length")

	// ErrInvalidEncoding is returned when the body contains a character
	// outside the Crockford Base32 alphabet, after confusable-character
	// normalization has been applied.
	ErrInvalidEncoding = errors.New("crockford: invalid encoding")

	// ErrChecksumMismatch is returned when the body decodes but the trailing
	// character does not match the checksum derived from the decoded payload.
	// This is the primary signal of a transcription error.
	ErrChecksumMismatch = errors.New("crockford: checksum mismatch")

	// ErrValueOutOfRange is returned when constructing an identifier from a
	// value that does not fit the requested payload width, or from a negative
	// or empty value.
	ErrValueOutOfRange = errors.New("crockford: value out of range")
)
