// Package errors defines the error variables that may be returned
// by byteoffset operations.
package errors

import "errors"

var (
	// ErrOffsetOutOfRange is returned when an offset cannot be represented
	// as a pointer difference on this platform. The concrete error is a
	// *byteoffset.ConversionError wrapping this one.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrNilPointer is returned by checked offsets when a nil carrier is
	// offset by a non-zero amount.
	ErrNilPointer = errors.New("offset of nil pointer")

	// ErrAddressOverflow is returned by checked offsets when the result
	// would wrap the address space or reach address zero.
	ErrAddressOverflow = errors.New("address overflow")
)
