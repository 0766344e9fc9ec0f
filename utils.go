package minmap

import "unsafe"

// Estimates the number of buckets of V that fit in the given memory size in bytes.
func SizeFromBytes[V any](size uintptr) int {
	sizeOfValue := unsafe.Sizeof(*new(V))
	if sizeOfValue == 0 {
		return 0
	}

	return int(size / sizeOfValue)
}
