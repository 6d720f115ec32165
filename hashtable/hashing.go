// SPDX-License-Identifier: MIT

package hashtable

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashAlgorithm selects the hash function applied to string and integer keys.
// Keys implementing Hasher bypass it; other comparable types always use
// maphash.Comparable because they have no portable byte encoding.
type HashAlgorithm uint8

const (
	// XXHash hashes with xxHash64.
	XXHash HashAlgorithm = iota
	// Murmur3 hashes with the 64-bit half of MurmurHash3 x64_128.
	Murmur3
	// MapHash hashes with the runtime's seeded hash (hash/maphash); results
	// differ between tables.
	MapHash
)

// String returns the algorithm name.
func (a HashAlgorithm) String() string {
	switch a {
	case XXHash:
		return "xxhash"
	case Murmur3:
		return "murmur3"
	case MapHash:
		return "maphash"
	default:
		return "unknown"
	}
}

func (a HashAlgorithm) valid() bool { return a <= MapHash }

// keyHasher turns keys into unsigned 64-bit hashes. The bucket index is the
// hash modulo the capacity, computed on uint64 so no key can produce a
// negative index.
type keyHasher[K comparable] struct {
	alg  HashAlgorithm
	seed maphash.Seed
}

func newKeyHasher[K comparable](alg HashAlgorithm) keyHasher[K] {
	return keyHasher[K]{alg: alg, seed: maphash.MakeSeed()}
}

func (h keyHasher[K]) hash(key K) uint64 {
	switch k := any(key).(type) {
	case Hasher:
		return k.Hash64()
	case string:
		return h.sumString(k)
	case int:
		return h.sumUint64(uint64(k))
	case int8:
		return h.sumUint64(uint64(k))
	case int16:
		return h.sumUint64(uint64(k))
	case int32:
		return h.sumUint64(uint64(k))
	case int64:
		return h.sumUint64(uint64(k))
	case uint:
		return h.sumUint64(uint64(k))
	case uint8:
		return h.sumUint64(uint64(k))
	case uint16:
		return h.sumUint64(uint64(k))
	case uint32:
		return h.sumUint64(uint64(k))
	case uint64:
		return h.sumUint64(k)
	case uintptr:
		return h.sumUint64(uint64(k))
	default:
		return maphash.Comparable(h.seed, key)
	}
}

// index maps key onto [0, capacity).
func (h keyHasher[K]) index(key K, capacity int) int {
	return int(h.hash(key) % uint64(capacity))
}

func (h keyHasher[K]) sumString(s string) uint64 {
	switch h.alg {
	case Murmur3:
		return murmur3.Sum64([]byte(s))
	case MapHash:
		return maphash.String(h.seed, s)
	default:
		return xxhash.Sum64String(s)
	}
}

func (h keyHasher[K]) sumUint64(x uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	switch h.alg {
	case Murmur3:
		return murmur3.Sum64(buf[:])
	case MapHash:
		return maphash.Bytes(h.seed, buf[:])
	default:
		return xxhash.Sum64(buf[:])
	}
}
