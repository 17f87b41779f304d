package common

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

const (
	// PointerSize is the size in bytes of an address on this platform.
	PointerSize = int(unsafe.Sizeof(uintptr(0)))

	// PtrdiffBits is the width of the native pointer-difference type (int).
	PtrdiffBits = strconv.IntSize

	MinPtrdiff = math.MinInt
	MaxPtrdiff = math.MaxInt
)

// Assert will panic with a given formatted message if the given condition is false.
func Assert(condition bool, msg string, v ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+msg, v...))
	}
}
