package byteoffset_test

import (
	"errors"
	"fmt"
	"math"

	bo "go.etcd.io/byteoffset"
	berrors "go.etcd.io/byteoffset/errors"
)

func ExampleUnsafeByteOffset() {
	type header struct {
		Kind uint16
		Len  uint16
		ID   uint32
	}
	h := header{Kind: 1, Len: 8, ID: 42}

	// Jump straight to ID, 4 bytes into the header.
	p, err := bo.UnsafeByteOffset(bo.ConstOf(&h), 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(bo.CastConst[uint32](p).Load())
	// Output: 42
}

func ExampleUnsafeByteOffset_conversionError() {
	var b byte
	_, err := bo.UnsafeByteOffset(bo.MutOf(&b), uint64(math.MaxUint64))
	fmt.Println(errors.Is(err, berrors.ErrOffsetOutOfRange))
	// Output: true
}

func ExampleCheckedByteOffset() {
	_, err := bo.CheckedByteOffset(bo.MutOf[byte](nil), 16)
	fmt.Println(err)
	// Output: offset of nil pointer
}
