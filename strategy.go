package minmap

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Strategy builds fresh streaming hashers. Unlike the default hash function,
// every strategy below is deterministic across processes, so tables in
// different programs agree on bucket assignment.
type Strategy interface {
	New() hash.Hash64
}

type StrategyFunc func() hash.Hash64

func (f StrategyFunc) New() hash.Hash64 {
	return f()
}

// xxHash64, github.com/cespare/xxhash.
func XXHash() Strategy {
	return StrategyFunc(func() hash.Hash64 {
		return xxhash.New()
	})
}

// XXH3 64-bit, github.com/zeebo/xxh3.
func XXH3(seed uint64) Strategy {
	return StrategyFunc(func() hash.Hash64 {
		return xxh3.NewSeed(seed)
	})
}

// MurmurHash3 x64 (lower 64 bits of the 128-bit digest).
func Murmur3(seed uint32) Strategy {
	return StrategyFunc(func() hash.Hash64 {
		return murmur3.New64WithSeed(seed)
	})
}

// Encoder appends the byte representation of a key to dst.
// Equal keys must encode to equal bytes.
type Encoder[K comparable] func(dst []byte, key K) []byte

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func StringKey[K ~string](dst []byte, key K) []byte {
	return append(dst, key...)
}

// Little-endian, always 8 bytes regardless of the integer width.
func IntegerKey[K Integer](dst []byte, key K) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(key))
}

// HashFuncOf feeds the encoded key into a fresh hasher from s and
// finalizes it.
func HashFuncOf[K comparable](s Strategy, enc Encoder[K]) HashFunc[K] {
	return func(k K) uint64 {
		var buf [16]byte

		h := s.New()
		h.Write(enc(buf[:0], k))

		return h.Sum64()
	}
}

// One-shot equivalent of HashFuncOf(XXHash(), StringKey[K]).
func XXHashString[K ~string]() HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	}
}

// One-shot equivalent of HashFuncOf(XXH3(seed), StringKey[K]).
func XXH3String[K ~string](seed uint64) HashFunc[K] {
	return func(k K) uint64 {
		return xxh3.HashStringSeed(string(k), seed)
	}
}
