//go:build js || wasip1

package common

// GetPagesize returns the page size.
// WASM linear memory has no OS pages; the 4KB value matches other platforms.
func GetPagesize() int {
	return 4096
}
