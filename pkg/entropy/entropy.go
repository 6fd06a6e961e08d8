package entropy

import (
	"crypto/rand"
	"fmt"
	"sync"
)

// Source fills buffers with cryptographically secure random bytes. A Source
// must be safe for concurrent use; each call draws independent fresh
// randomness.
type Source interface {
	// Fill overwrites every byte of p with random data. On error the
	// contents of p must not be used.
	Fill(p []byte) error
}

// cryptoSource reads from the operating system's CSPRNG via crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Fill(p []byte) error {
	if _, err := rand.Read(p); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// defaultSource is the process-wide handle, initialized on first use. It holds
// no closable resource, so there is no teardown.
var defaultSource = sync.OnceValue(func() Source {
	return cryptoSource{}
})

// Default returns the process-wide crypto/rand-backed source. Safe for
// concurrent use from any number of goroutines.
func Default() Source {
	return defaultSource()
}

// Bytes returns a fresh buffer of n cryptographically random bytes from the
// default source.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Default().Fill(b); err != nil {
		return nil, err
	}
	return b, nil
}
