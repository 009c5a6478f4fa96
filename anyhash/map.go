// Package anyhash implements a hash table keyed by values that aren't
// necessarily Go-comparable: anything for which a caller can supply a hash
// function and an equivalence relation.
//
// The e-graph's hash-cons memo is the motivating client: an e-node carries
// a slice of child ids, so it cannot be a map key directly, but it is
// still hashable and comparable under a caller-supplied notion of
// structural equality.
package anyhash

import (
	"hash/maphash"
	"iter"
)

// Hasher defines a hash function and an equivalence relation over values
// of type K. Hash and Equal must be consistent: if Equal(x, y) is true,
// Hash must write the same bytes for x and y.
type Hasher[K any] interface {
	Hash(*maphash.Hash, K)
	Equal(x, y K) bool
}

// Map is a hash-table-based mapping from keys K to values V, keyed
// according to the equivalence relation defined by H.
//
// The zero Map is not ready to use; construct one with New.
type Map[K, V any, H Hasher[K]] struct {
	hasher H
	seed   maphash.Seed
	table  map[uint64][]bucketEntry[K, V]
	length int
}

type bucketEntry[K, V any] struct {
	key  K
	val  V
	used bool
}

// New returns a new empty Map using h to hash and compare keys.
func New[K, V any, H Hasher[K]](h H) *Map[K, V, H] {
	return &Map[K, V, H]{
		hasher: h,
		seed:   maphash.MakeSeed(),
		table:  make(map[uint64][]bucketEntry[K, V]),
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V, H]) Len() int {
	if m == nil {
		return 0
	}
	return m.length
}

func (m *Map[K, V, H]) hashKey(k K) uint64 {
	var h maphash.Hash
	h.SetSeed(m.seed)
	m.hasher.Hash(&h, k)
	return h.Sum64()
}

func (m *Map[K, V, H]) find(k K) (bucket []bucketEntry[K, V], index int, found bool) {
	if m == nil || m.table == nil {
		return nil, -1, false
	}
	b := m.table[m.hashKey(k)]
	for i := range b {
		if b[i].used && m.hasher.Equal(k, b[i].key) {
			return b, i, true
		}
	}
	return b, -1, false
}

// At returns the value for key k, or the zero value of V if not present.
func (m *Map[K, V, H]) At(k K) (v V) {
	if b, i, ok := m.find(k); ok {
		return b[i].val
	}
	return v
}

// Get returns the value for key k and reports whether it was present.
func (m *Map[K, V, H]) Get(k K) (V, bool) {
	if b, i, ok := m.find(k); ok {
		return b[i].val, true
	}
	var zero V
	return zero, false
}

// Set sets the value for k to v, returning the previous value (or the
// zero value of V if none) and whether one was present.
func (m *Map[K, V, H]) Set(k K, v V) (prev V, hadPrev bool) {
	if m.table == nil {
		m.table = make(map[uint64][]bucketEntry[K, V])
	}
	hv := m.hashKey(k)
	b := m.table[hv]

	hole := -1
	for i := range b {
		switch {
		case !b[i].used && hole == -1:
			hole = i
		case b[i].used && m.hasher.Equal(k, b[i].key):
			prev, hadPrev = b[i].val, true
			b[i].val = v
			return prev, hadPrev
		}
	}

	if hole != -1 {
		b[hole] = bucketEntry[K, V]{key: k, val: v, used: true}
	} else {
		b = append(b, bucketEntry[K, V]{key: k, val: v, used: true})
	}
	m.table[hv] = b
	m.length++
	return prev, hadPrev
}

// Delete removes the entry with key k, if present, and reports whether it
// was found.
func (m *Map[K, V, H]) Delete(k K) (old V, deleted bool) {
	if m == nil || m.table == nil {
		return old, false
	}
	hv := m.hashKey(k)
	b := m.table[hv]
	for i := range b {
		if b[i].used && m.hasher.Equal(k, b[i].key) {
			old = b[i].val
			b[i] = bucketEntry[K, V]{}
			m.length--
			return old, true
		}
	}
	return old, false
}

// All returns an iterator over (key, value) pairs in unspecified order.
func (m *Map[K, V, H]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, bucket := range m.table {
			for _, e := range bucket {
				if e.used && !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over keys in unspecified order.
func (m *Map[K, V, H]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over values in unspecified order.
func (m *Map[K, V, H]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
