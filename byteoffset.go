package byteoffset

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	berrors "go.etcd.io/byteoffset/errors"
	"go.etcd.io/byteoffset/internal/common"
)

// ByteOffsetter is implemented by Mut, Const and NonNull. Out is the
// byte-granular carrier of the same kind as the implementation.
type ByteOffsetter[Out any] interface {
	// Addr returns the address held by the carrier.
	Addr() uintptr
	// UnsafeByteOffset returns the carrier moved by offset bytes. The
	// caller must uphold the package's unsafe contract.
	UnsafeByteOffset(offset int) Out
}

var (
	_ ByteOffsetter[Mut[byte]]     = Mut[uint64]{}
	_ ByteOffsetter[Const[byte]]   = Const[uint64]{}
	_ ByteOffsetter[NonNull[byte]] = NonNull[uint64]{}
)

// UnsafeByteOffset returns m moved by offset bytes.
func (m Mut[T]) UnsafeByteOffset(offset int) Mut[byte] {
	return Mut[byte]{p: unsafeAdd(unsafe.Pointer(m.p), offset)}
}

// UnsafeByteOffset returns c moved by offset bytes.
func (c Const[T]) UnsafeByteOffset(offset int) Const[byte] {
	return Const[byte]{p: unsafeAdd(unsafe.Pointer(c.p), offset)}
}

// UnsafeByteOffset returns n moved by offset bytes. The result is assumed
// to be non-nil, which holds whenever the unsafe contract holds.
func (n NonNull[T]) UnsafeByteOffset(offset int) NonNull[byte] {
	p := unsafeAdd(unsafe.Pointer(n.p), offset)
	if common.AssertionsEnabled() {
		common.Assert(n.p != nil, "UnsafeByteOffset: zero NonNull")
		common.Assert(p != nil, "UnsafeByteOffset: NonNull at %#x offset by %d is nil", n.Addr(), offset)
	}
	return NonNull[byte]{p: p}
}

// UnsafeByteOffset converts offset to a pointer difference and moves p by
// that many bytes. The only error is a *ConversionError, in which case p is
// not touched. The caller must uphold the package's unsafe contract.
func UnsafeByteOffset[Out any, I constraints.Integer](p ByteOffsetter[Out], offset I) (Out, error) {
	n, err := Ptrdiff(offset)
	if err != nil {
		var zero Out
		return zero, err
	}
	return p.UnsafeByteOffset(n), nil
}

// CheckedByteOffset is UnsafeByteOffset with the address arithmetic
// validated: a nil carrier may only be offset by zero, and the result must
// neither pass the top of the address space nor reach address zero.
// Object bounds are not checked.
func CheckedByteOffset[Out any, I constraints.Integer](p ByteOffsetter[Out], offset I) (Out, error) {
	var zero Out
	n, err := Ptrdiff(offset)
	if err != nil {
		return zero, err
	}
	if err := checkAddrArith(p.Addr(), n); err != nil {
		return zero, err
	}
	return p.UnsafeByteOffset(n), nil
}

func checkAddrArith(addr uintptr, n int) error {
	switch {
	case n == 0:
		return nil
	case addr == 0:
		return berrors.ErrNilPointer
	case n > 0:
		if uintptr(n) > ^uintptr(0)-addr {
			return berrors.ErrAddressOverflow
		}
	default:
		// -(n+1) cannot overflow, even for math.MinInt.
		back := uintptr(-(n + 1)) + 1
		if back >= addr {
			return berrors.ErrAddressOverflow
		}
	}
	return nil
}
