/*
Package byteoffset computes pointer offsets in bytes for three kinds of
pointer carriers: Mut (nullable, writable), Const (nullable, read-only)
and NonNull (never nil).

Offsetting a carrier by n always moves its address by n bytes, whatever
the size of the pointee, and the result is a carrier of the same kind
over a byte:

	Mut[T]     -> Mut[byte]
	Const[T]   -> Const[byte]
	NonNull[T] -> NonNull[byte]

The offset may be any integer type. It is first converted to int, the
native pointer-difference type; if the value does not fit, a
*ConversionError is returned and no arithmetic happens.

# Unsafe contract

UnsafeByteOffset never validates the resulting address. The caller must
guarantee that:

  - the result stays inside the allocated object the input points into,
    or one byte past its end;
  - the computation does not wrap around the address space.

A Go pointer must never be advanced past the end of its allocation, so
for memory managed by the Go runtime the one-byte-past-the-end address is
not allowed either. It is only valid for memory the runtime does not
manage, such as mmap'd regions.

Breaking the contract is undefined behavior, not an error.
CheckedByteOffset is available for callers that prefer to pay for a
wraparound and nil check; it still does not know about object bounds.
*/
package byteoffset
