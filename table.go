package minmap

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"log/slog"
)

type table[K comparable, V cmp.Ordered] struct {
	// Allocated once in init, never appended to or resliced.
	slots []V
	size  uint64

	hashFunc HashFunc[K]
	initV    V

	updates uint64
	lowered uint64

	logger     *slog.Logger
	customHash bool
}

type Option[K comparable] func(o *options[K])

type options[K comparable] struct {
	hashFunc HashFunc[K]
	seed     *maphash.Seed
	logger   *slog.Logger
}

// Override default hash function.
func WithHashFunc[K comparable](f HashFunc[K]) Option[K] {
	return func(o *options[K]) {
		o.hashFunc = f
	}
}

// Use the default hash function with a fixed seed, so that several tables
// in the same process agree on bucket assignment.
// Ignored if WithHashFunc is given.
func WithSeed[K comparable](seed maphash.Seed) Option[K] {
	return func(o *options[K]) {
		o.seed = &seed
	}
}

// Sets the logger used for construction diagnostics. Discards by default.
func WithLogger[K comparable](l *slog.Logger) Option[K] {
	return func(o *options[K]) {
		o.logger = l
	}
}

func (t *table[K, V]) init(size int, initV V, opts ...Option[K]) error {
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}

	t.logger = o.logger
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}

	if size <= 0 {
		t.logger.Warn("minmap: rejected table size", "size", size)
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	t.slots = make([]V, size)
	for i := range t.slots {
		t.slots[i] = initV
	}

	t.size = uint64(size)
	t.initV = initV

	switch {
	case o.hashFunc != nil:
		t.hashFunc = o.hashFunc
		t.customHash = true
	case o.seed != nil:
		t.hashFunc = MakeDefaultHashFunc[K](*o.seed)
	default:
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	t.logger.Debug("minmap: table created", "size", size, "custom_hash", t.customHash)

	return nil
}

func (t *table[K, V]) bucket(key K) uintptr {
	return bucketIndex(t.hashFunc(key), t.size)
}

func (t *table[K, V]) get(key K) V {
	return t.slots[t.bucket(key)]
}

func (t *table[K, V]) set(key K, value V) {
	t.lower(t.bucket(key), value)
}

// lower merges value into slot idx, keeping the minimum.
func (t *table[K, V]) lower(idx uintptr, value V) {
	t.updates++

	if cmp.Less(value, t.slots[idx]) {
		t.slots[idx] = value
		t.lowered++
	}
}

func (t *table[K, V]) slot(key K) *V {
	return &t.slots[t.bucket(key)]
}
