package crockford

import (
	"fmt"
	"math/big"
)

// DefaultSize is the payload width in bytes when no WithSize option is given.
// 15 bytes yield a 24-character body plus one checksum character.
const DefaultSize = 15

// EncodedLen returns the canonical string length for a payload of size bytes:
// the Base32 body plus one checksum character.
func EncodedLen(size int) int {
	return bodyLen(size) + 1
}

// Identifier is an immutable random identifier with a transcription checksum.
// The zero value is not a valid identifier; construct one with New, Parse,
// FromBytes or FromInt.
type Identifier struct {
	payload  []byte
	checksum uint8
}

// New draws a fresh random payload from the entropy source and derives its
// checksum. Entropy failure is propagated, never masked.
func New(opts ...Option) (Identifier, error) {
	cfg := newConfig(opts...)

	payload := make([]byte, cfg.size)
	if err := cfg.source.Fill(payload); err != nil {
		return Identifier{}, err
	}

	return Identifier{payload: payload, checksum: DeriveChecksum(payload)}, nil
}

// MustNew is like New but panics on entropy failure. Intended for program
// initialization and tests where a dead entropy pool is unrecoverable anyway.
func MustNew(opts ...Option) Identifier {
	id, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse validates text as a canonical identifier string. Checks run in order:
// exact length, body decode, checksum verification. Parsing is
// case-insensitive; the returned Identifier stores the decoded payload and
// the verified checksum verbatim.
func Parse(text string, opts ...Option) (Identifier, error) {
	cfg := newConfig(opts...)

	if len(text) != EncodedLen(cfg.size) {
		return Identifier{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(text), EncodedLen(cfg.size))
	}

	text = upperASCII(text)

	payload, err := DecodeString(text[:len(text)-1])
	if err != nil {
		return Identifier{}, err
	}

	checksum := DeriveChecksum(payload)
	if got := text[len(text)-1]; got != ChecksumSymbol(checksum) {
		return Identifier{}, fmt.Errorf("%w: symbol %q, derived %q", ErrChecksumMismatch, got, ChecksumSymbol(checksum))
	}

	return Identifier{payload: payload, checksum: checksum}, nil
}

// upperASCII uppercases ASCII letters only. Unlike strings.ToUpper it can
// never change the byte length, so the length check above stays authoritative:
// multi-byte characters that case-fold to ASCII (e.g. U+017F to 'S') reach the
// decoder untouched and are rejected there.
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// FromBytes constructs an Identifier from a raw payload. The slice length is
// the payload width; the checksum is derived. The bytes are copied.
func FromBytes(payload []byte) (Identifier, error) {
	if len(payload) == 0 {
		return Identifier{}, fmt.Errorf("%w: empty payload", ErrValueOutOfRange)
	}

	p := make([]byte, len(payload))
	copy(p, payload)

	return Identifier{payload: p, checksum: DeriveChecksum(p)}, nil
}

// FromInt constructs an Identifier from the big-endian integer value of a
// payload. The byte width must be passed explicitly: a bare integer cannot
// represent leading zero bytes, so the value is left-padded with zeros to
// size bytes. Returns ErrValueOutOfRange if v is nil, negative, or does not
// fit in size bytes.
func FromInt(v *big.Int, size int) (Identifier, error) {
	if v == nil || v.Sign() < 0 {
		return Identifier{}, fmt.Errorf("%w: value must be a non-negative integer", ErrValueOutOfRange)
	}
	if size < 1 {
		return Identifier{}, fmt.Errorf("%w: size must be at least 1 byte", ErrValueOutOfRange)
	}
	if v.BitLen() > size*8 {
		return Identifier{}, fmt.Errorf("%w: %d-bit value does not fit in %d bytes", ErrValueOutOfRange, v.BitLen(), size)
	}

	payload := make([]byte, size)
	v.FillBytes(payload)

	return Identifier{payload: payload, checksum: DeriveChecksum(payload)}, nil
}

// IsZero reports whether id is the zero value.
func (id Identifier) IsZero() bool {
	return id.payload == nil
}

// Size returns the payload width in bytes.
func (id Identifier) Size() int {
	return len(id.payload)
}

// Bytes returns a copy of the raw payload.
func (id Identifier) Bytes() []byte {
	b := make([]byte, len(id.payload))
	copy(b, id.payload)
	return b
}

// Int returns the payload as a big-endian unsigned integer. The checksum is
// not part of the integer form; converting back requires FromInt with the
// original byte width, since the bare integer drops leading zero bytes.
func (id Identifier) Int() *big.Int {
	return new(big.Int).SetBytes(id.payload)
}

// Checksum returns the checksum value in [0,36].
func (id Identifier) Checksum() uint8 {
	return id.checksum
}

// String returns the canonical uppercase form: the Base32-encoded payload
// followed by the checksum symbol. Returns "" for the zero value.
func (id Identifier) String() string {
	if id.IsZero() {
		return ""
	}
	return EncodeToString(id.payload) + string(ChecksumSymbol(id.checksum))
}

// Equal reports whether two identifiers have the same canonical form. The
// canonical string, not the raw payload, is the equality contract.
func (id Identifier) Equal(other Identifier) bool {
	return id.String() == other.String()
}

// EqualString reports whether text parses to an identifier equal to id.
// Unparseable text is never equal to any identifier.
func (id Identifier) EqualString(text string) bool {
	other, err := Parse(text, WithSize(id.Size()))
	if err != nil {
		return false
	}
	return id.Equal(other)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (id Identifier) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: zero identifier", ErrValueOutOfRange)
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The payload width is
// inferred from the text length, so identifiers of any configured size
// round-trip through their textual form.
func (id *Identifier) UnmarshalText(text []byte) error {
	size := (len(text) - 1) * 5 / 8
	if size < 1 || EncodedLen(size) != len(text) {
		return fmt.Errorf("%w: %d characters do not map to a whole payload", ErrInvalidLength, len(text))
	}

	parsed, err := Parse(string(text), WithSize(size))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
