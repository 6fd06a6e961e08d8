package crockford

import "fmt"

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// decodeTable maps input bytes to their 5-bit values. Lowercase letters and
// the Crockford confusables (O->0, I->1, L->1) are normalized here so decoding
// never rejects an input a human would read as valid. 0xFF marks invalid bytes.
var decodeTable = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = byte(i)
		}
	}
	for _, c := range []byte{'O', 'o'} {
		t[c] = 0
	}
	for _, c := range []byte{'I', 'i', 'L', 'l'} {
		t[c] = 1
	}
	return t
}()

// EncodeToString encodes src as Crockford Base32. Output is canonical
// uppercase with no padding: ceil(len(src)*8/5) characters, with any trailing
// partial group zero-filled on the right.
func EncodeToString(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	dst := make([]byte, 0, bodyLen(len(src)))
	var buf uint32
	var bits uint

	for _, b := range src {
		buf = buf<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			dst = append(dst, alphabet[(buf>>(bits-5))&0x1F])
			bits -= 5
			buf &= 1<<bits - 1
		}
	}
	if bits > 0 {
		dst = append(dst, alphabet[(buf<<(5-bits))&0x1F])
	}

	return string(dst)
}

// DecodeString decodes a Crockford Base32 string into floor(len(s)*5/8) bytes,
// dropping the zero-filled trailing bits of the final partial group. Input is
// case-insensitive and confusable characters are normalized before any
// rejection. Returns ErrInvalidEncoding for characters outside the alphabet.
func DecodeString(s string) ([]byte, error) {
	dst := make([]byte, 0, len(s)*5/8)
	var buf uint32
	var bits uint

	for i := 0; i < len(s); i++ {
		v := decodeTable[s[i]]
		if v == 0xFF {
			return nil, fmt.Errorf("%w: character %q at position %d", ErrInvalidEncoding, s[i], i)
		}
		buf = buf<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			dst = append(dst, byte(buf>>(bits-8)))
			bits -= 8
			buf &= 1<<bits - 1
		}
	}

	return dst, nil
}

// bodyLen is the number of Base32 characters needed to cover size*8 bits.
func bodyLen(size int) int {
	return (size*8 + 4) / 5
}
