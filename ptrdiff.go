package byteoffset

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	berrors "go.etcd.io/byteoffset/errors"
)

// ConversionError reports an offset that does not fit in the native
// pointer-difference type (int).
type ConversionError struct {
	// Value is the decimal form of the rejected offset.
	Value string
	// Type is the Go type of the rejected offset.
	Type string
	// Bits is the width of the pointer-difference type.
	Bits int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("byteoffset: offset %s (%s) does not fit in a %d-bit pointer difference", e.Value, e.Type, e.Bits)
}

func (e *ConversionError) Unwrap() error {
	return berrors.ErrOffsetOutOfRange
}

// Ptrdiff converts v to int, the native pointer-difference type.
func Ptrdiff[I constraints.Integer](v I) (int, error) {
	// gofail: var convertOffsetError string
	// return 0, fmt.Errorf("%s: %w", convertOffsetError, newConversionError(v))

	if isSigned[I]() {
		x := int64(v)
		if x < math.MinInt || x > math.MaxInt {
			return 0, newConversionError(v)
		}
		return int(x), nil
	}
	if uint64(v) > math.MaxInt {
		return 0, newConversionError(v)
	}
	return int(v), nil
}

func isSigned[I constraints.Integer]() bool {
	var zero I
	return ^zero < 0
}

func newConversionError[I constraints.Integer](v I) *ConversionError {
	var value string
	if isSigned[I]() {
		value = strconv.FormatInt(int64(v), 10)
	} else {
		value = strconv.FormatUint(uint64(v), 10)
	}
	return &ConversionError{
		Value: value,
		Type:  fmt.Sprintf("%T", v),
		Bits:  strconv.IntSize,
	}
}
