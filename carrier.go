package byteoffset

import (
	"unsafe"

	"go.etcd.io/byteoffset/internal/common"
)

// Mut is a nullable pointer through which the pointee may be modified.
type Mut[T any] struct {
	p *T
}

// MutOf wraps p. p may be nil.
func MutOf[T any](p *T) Mut[T] {
	return Mut[T]{p: p}
}

// Ptr returns the wrapped pointer.
func (m Mut[T]) Ptr() *T {
	return m.p
}

func (m Mut[T]) IsNil() bool {
	return m.p == nil
}

// Addr returns the address held by m.
func (m Mut[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(m.p))
}

// Load reads the pointee. It panics if m is nil.
func (m Mut[T]) Load() T {
	return *m.p
}

// Store writes v to the pointee. It panics if m is nil.
func (m Mut[T]) Store(v T) {
	*m.p = v
}

// Const drops write access.
func (m Mut[T]) Const() Const[T] {
	return Const[T]{p: m.p}
}

// Const is a nullable pointer that only permits reading the pointee.
// It never hands out a *T.
type Const[T any] struct {
	p *T
}

// ConstOf wraps p. p may be nil.
func ConstOf[T any](p *T) Const[T] {
	return Const[T]{p: p}
}

func (c Const[T]) IsNil() bool {
	return c.p == nil
}

// Addr returns the address held by c.
func (c Const[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(c.p))
}

// Pointer returns the address as an unsafe.Pointer.
func (c Const[T]) Pointer() unsafe.Pointer {
	return unsafe.Pointer(c.p)
}

// Load reads the pointee. It panics if c is nil.
func (c Const[T]) Load() T {
	return *c.p
}

// NonNull is a pointer that is never nil. The zero value is invalid; obtain
// one through NewNonNull or NonNullOf.
type NonNull[T any] struct {
	p *T
}

// NewNonNull wraps p, reporting false if p is nil.
func NewNonNull[T any](p *T) (NonNull[T], bool) {
	if p == nil {
		return NonNull[T]{}, false
	}
	return NonNull[T]{p: p}, true
}

// NonNullOf wraps p without checking it. The caller must guarantee p is not
// nil.
func NonNullOf[T any](p *T) NonNull[T] {
	if common.AssertionsEnabled() {
		common.Assert(p != nil, "NonNullOf: nil pointer")
	}
	return NonNull[T]{p: p}
}

// Ptr returns the wrapped pointer.
func (n NonNull[T]) Ptr() *T {
	return n.p
}

// IsNil reports false for every NonNull built through its constructors.
func (n NonNull[T]) IsNil() bool {
	return n.p == nil
}

// Addr returns the address held by n.
func (n NonNull[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(n.p))
}

func (n NonNull[T]) Load() T {
	return *n.p
}

func (n NonNull[T]) Store(v T) {
	*n.p = v
}

// Mut forgets the non-nil guarantee.
func (n NonNull[T]) Mut() Mut[T] {
	return Mut[T]{p: n.p}
}

// Const forgets the non-nil guarantee and write access.
func (n NonNull[T]) Const() Const[T] {
	return Const[T]{p: n.p}
}

// CastMut reinterprets the pointee of m as a U. The address is unchanged.
func CastMut[U, T any](m Mut[T]) Mut[U] {
	return Mut[U]{p: (*U)(unsafe.Pointer(m.p))}
}

// CastConst reinterprets the pointee of c as a U. The address is unchanged.
func CastConst[U, T any](c Const[T]) Const[U] {
	return Const[U]{p: (*U)(unsafe.Pointer(c.p))}
}

// CastNonNull reinterprets the pointee of n as a U. The address is unchanged.
func CastNonNull[U, T any](n NonNull[T]) NonNull[U] {
	return NonNull[U]{p: (*U)(unsafe.Pointer(n.p))}
}
