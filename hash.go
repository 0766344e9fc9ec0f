package minmap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

// Randomized per seed: tables built with different seeds disagree on buckets.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// size is never zero, New rejects it.
func bucketIndex(hash, size uint64) uintptr {
	return uintptr(hash % size)
}
