package minmap

import "cmp"

// MinMap is a fixed-size hash map which only remembers the minimum value
// set for a given hash bucket. Keys are never stored: two keys landing in the
// same bucket are indistinguishable, and the bucket keeps the smaller of their
// values. That is,
//
//	m.Set(k1, v1)
//	m.Set(k2, v2)
//
// is equivalent to both m.Set(k1, min(v1, v2)) and m.Set(k2, min(v1, v2))
// if and only if k1 and k2 share a bucket.
//
// The capacity is fixed at construction. There's no resizing, deletion or
// iteration. MinMap is not safe for concurrent use.
type MinMap[K comparable, V cmp.Ordered] struct {
	table[K, V]
}

// Returns a new min map of the given size with every slot set to init.
// Fails with ErrInvalidSize if size is not positive.
func New[K comparable, V cmp.Ordered](size int, init V, opts ...Option[K]) (*MinMap[K, V], error) {
	var mm MinMap[K, V]
	if err := mm.init(size, init, opts...); err != nil {
		return nil, err
	}

	return &mm, nil
}

// Like New, but panics on error. Handy for tables with a constant size.
func MustNew[K comparable, V cmp.Ordered](size int, init V, opts ...Option[K]) *MinMap[K, V] {
	mm, err := New[K, V](size, init, opts...)
	if err != nil {
		panic(err)
	}

	return mm
}

// Merges value into the key's bucket, keeping the minimum.
func (mm *MinMap[K, V]) Set(key K, value V) {
	mm.set(key, value)
}

// Returns the minimum value ever merged into the key's bucket,
// or the init value if nothing has been.
func (mm *MinMap[K, V]) Get(key K) V {
	return mm.get(key)
}

// Same as Set for a precomputed hash of the key.
func (mm *MinMap[K, V]) SetHash(hash uint64, value V) {
	mm.lower(bucketIndex(hash, mm.size), value)
}

// Same as Get for a precomputed hash of the key.
func (mm *MinMap[K, V]) GetHash(hash uint64) V {
	return mm.slots[bucketIndex(hash, mm.size)]
}

// Slot returns a pointer to the key's bucket storage.
//
// This is an escape hatch: writes through the pointer bypass the
// keep-minimum rule, so the caller either preserves the invariant or
// overrides it on purpose. The pointer stays valid for the map's lifetime.
func (mm *MinMap[K, V]) Slot(key K) *V {
	return mm.slot(key)
}

// Returns the bucket index of the key, in [0, Size()).
func (mm *MinMap[K, V]) Bucket(key K) int {
	return int(mm.bucket(key))
}

// Returns the number of buckets.
func (mm *MinMap[K, V]) Size() int {
	return int(mm.size)
}

// Returns the value every bucket was initialized with.
func (mm *MinMap[K, V]) Init() V {
	return mm.initV
}

func (mm *MinMap[K, V]) Stats() Stats {
	return Stats{
		Size:    int(mm.size),
		Updates: int(mm.updates),
		Lowered: int(mm.lowered),
	}
}
