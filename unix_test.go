//go:build !windows && !js && !wasip1 && !plan9

package byteoffset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bo "go.etcd.io/byteoffset"
	"go.etcd.io/byteoffset/internal/btesting"
	"go.etcd.io/byteoffset/internal/common"
)

// Ensure an address one past the end of a region can be formed and walked back
// from. The region is mmap'd so no Go allocation is involved.
func TestUnsafeByteOffset_OnePastEnd(t *testing.T) {
	size := common.GetPagesize()
	page := btesting.MustMmap(t, size)
	base := btesting.AddrOf(&page[0])

	end, err := bo.UnsafeByteOffset(bo.NonNullOf(&page[size-1]), 1)
	require.NoError(t, err)
	require.Equal(t, base+uintptr(size), end.Addr())
	require.False(t, end.IsNil())

	last, err := bo.UnsafeByteOffset(end, -1)
	require.NoError(t, err)
	btesting.RequireAddr(t, &page[size-1], last.Addr())

	first, err := bo.CheckedByteOffset(end, -size)
	require.NoError(t, err)
	btesting.RequireAddr(t, &page[0], first.Addr())

	// Writes through a Mut offset are visible in the region.
	m, err := bo.UnsafeByteOffset(bo.MutOf(&page[0]), uint32(size/2))
	require.NoError(t, err)
	m.Store(0xAB)
	require.Equal(t, byte(0xAB), page[size/2])
}

// Ensure element-sized strides walk a typed view of the region.
func TestUnsafeByteOffset_MmapStride(t *testing.T) {
	size := common.GetPagesize()
	page := btesting.MustMmap(t, size)

	const elem = 8
	cur := bo.CastMut[uint64](bo.MutOf(&page[0]))
	for i := 0; i < size/elem; i++ {
		cur.Store(uint64(i))
		if i == size/elem-1 {
			break
		}
		cur = bo.CastMut[uint64](cur.UnsafeByteOffset(elem))
	}

	back := bo.CastConst[uint64](bo.ConstOf(&page[0]))
	for i := 0; i < size/elem; i++ {
		require.Equal(t, uint64(i), back.Load())
		if i == size/elem-1 {
			break
		}
		next, err := bo.CheckedByteOffset(back, elem)
		require.NoError(t, err)
		back = bo.CastConst[uint64](next)
	}
}
