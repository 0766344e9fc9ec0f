package minmap

import (
	"strconv"
	"unsafe"
)

//go:nocheckptr
func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func genKeys[K comparable](start, end int) []K {
	var k K
	switch any(k).(type) {
	case uint64:
		keys := make([]uint64, end-start)
		for i := range keys {
			keys[i] = uint64(start + i)
		}
		return unsafeConvertSlice[K](keys)
	case string:
		keys := make([]string, end-start)
		for i := range keys {
			keys[i] = strconv.Itoa(start + i)
		}
		return unsafeConvertSlice[K](keys)
	default:
		panic("not reached")
	}
}
