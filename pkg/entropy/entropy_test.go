package entropy_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdeThorMiwa/crockford-uuid/pkg/entropy"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("returns the same handle every time", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, entropy.Default(), entropy.Default())
	})

	t.Run("fills the whole buffer", func(t *testing.T) {
		t.Parallel()

		buf := make([]byte, 64)
		require.NoError(t, entropy.Default().Fill(buf))

		// 64 random bytes being all zero is a broken generator, not chance.
		allZero := true
		for _, b := range buf {
			if b != 0 {
				allZero = false
				break
			}
		}
		assert.False(t, allZero, "buffer was not filled with random data")
	})

	t.Run("independent draws differ", func(t *testing.T) {
		t.Parallel()

		first := make([]byte, 32)
		second := make([]byte, 32)
		require.NoError(t, entropy.Default().Fill(first))
		require.NoError(t, entropy.Default().Fill(second))

		assert.NotEqual(t, first, second)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		const goroutines = 32
		results := make(chan [16]byte, goroutines)
		var wg sync.WaitGroup

		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var buf [16]byte
				if err := entropy.Default().Fill(buf[:]); err != nil {
					t.Error(err)
					return
				}
				results <- buf
			}()
		}

		wg.Wait()
		close(results)

		seen := make(map[[16]byte]bool, goroutines)
		for buf := range results {
			require.False(t, seen[buf], "duplicate 16-byte draw")
			seen[buf] = true
		}
	})
}

func TestBytes(t *testing.T) {
	t.Parallel()

	t.Run("returns requested length", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{1, 15, 20, 64} {
			buf, err := entropy.Bytes(n)
			require.NoError(t, err)
			assert.Len(t, buf, n)
		}
	})

	t.Run("zero length", func(t *testing.T) {
		t.Parallel()

		buf, err := entropy.Bytes(0)
		require.NoError(t, err)
		assert.Empty(t, buf)
	})
}
