package btesting

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// AddrOf returns the address of p.
func AddrOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// RequireAddr fails the test unless got holds the address of want.
func RequireAddr[T any](t testing.TB, want *T, got uintptr) {
	t.Helper()
	require.Equalf(t, AddrOf(want), got, "want address %#x, got %#x", AddrOf(want), got)
}

// MustSequence returns a slice of n consecutive bytes 0, 1, ..., n-1.
func MustSequence(t testing.TB, n int) []byte {
	t.Helper()
	require.Positive(t, n, "sequence length")
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}
