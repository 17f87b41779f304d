//go:build !windows && !js && !wasip1 && !plan9

package btesting

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// MustMmap maps size bytes of anonymous memory outside the Go heap and
// unmaps it when the test finishes. Addresses one past the end of such a
// region may be formed, unlike for Go allocations.
func MustMmap(t testing.TB, size int) []byte {
	t.Helper()
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	require.NoError(t, err, "mmap %d bytes", size)
	t.Cleanup(func() {
		require.NoError(t, unix.Munmap(b))
	})
	return b
}
