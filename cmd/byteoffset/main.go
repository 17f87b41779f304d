package main

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrSizeRequired is returned when the buffer size is missing or not positive.
	ErrSizeRequired = errors.New("positive buffer size required")

	// ErrIndexOutOfRange is returned when the starting index is not inside the buffer.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrOutsideBuffer is returned when an offset would leave the buffer.
	ErrOutsideBuffer = errors.New("offset leaves the buffer")

	// ErrUnknownKind is returned when the pointer kind is not mut, const or nonnull.
	ErrUnknownKind = errors.New("unknown pointer kind")

	// ErrUnknownType is returned when the integer type name is not recognized.
	ErrUnknownType = errors.New("unknown integer type")
)

func main() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
