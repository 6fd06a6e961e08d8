package crockford

import "fmt"

// checksumModulo is the smallest prime greater than the 32-symbol alphabet,
// giving 37 distinct checksum symbols so a substituted body character shifts
// the checksum whenever its bits contribute to the payload.
const checksumModulo = 37

// checksumAlphabet is the fixed 37-symbol checksum table: the 32 Base32
// symbols followed by five reserved symbols. Symbol order is part of the wire
// format and must never change.
const checksumAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ*~$=U"

// DeriveChecksum reduces payload, read as a big-endian unsigned integer,
// modulo 37. The reduction proceeds byte by byte so payloads of any width are
// handled without arbitrary-precision arithmetic: the accumulator never
// exceeds 37*256 between steps.
func DeriveChecksum(payload []byte) uint8 {
	var acc uint32
	for _, b := range payload {
		acc = (acc<<8 | uint32(b)) % checksumModulo
	}
	return uint8(acc)
}

// ChecksumSymbol maps a checksum value in [0,36] to its symbol. Values outside
// that range violate the DeriveChecksum contract and panic.
func ChecksumSymbol(v uint8) byte {
	if int(v) >= len(checksumAlphabet) {
		panic(fmt.Sprintf("crockford: checksum value %d out of range [0,36]", v))
	}
	return checksumAlphabet[v]
}
