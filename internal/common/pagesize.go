//go:build !js && !wasip1

package common

import "os"

// GetPagesize returns the system page size.
func GetPagesize() int {
	return os.Getpagesize()
}
