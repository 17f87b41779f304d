package byteoffset

import "unsafe"

func unsafeAdd(base unsafe.Pointer, offset int) *byte {
	return (*byte)(unsafe.Add(base, offset))
}
