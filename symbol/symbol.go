// Package symbol interns e-node operator names into comparable handles.
//
// The technique is the one the rest of this codebase uses for
// canonicalizing values under an equivalence relation: a maphash-seeded
// bucket table guarded by a mutex, holding weak pointers so that
// interned names remain collectible once nothing references them. Unlike
// a general-purpose canonicalizer, this package is specialized to a single
// concrete type (operator-name strings) because that is the only thing an
// e-node's Head field ever needs to intern; there is no call for a
// type-parameterized Set here.
package symbol

import (
	"hash/maphash"
	"sync"
	"weak"
)

var (
	seed    = maphash.MakeSeed()
	mu      sync.Mutex
	buckets = make(map[uint64][]weak.Pointer[string])
)

// Symbol is an interned operator name. The zero Symbol is not meaningful;
// use Intern to produce one. Two Symbols obtained from Intern with equal
// strings compare equal; Symbols from unequal strings never compare equal.
type Symbol struct {
	s *string
}

// Intern returns the canonical Symbol for name. Calling Intern twice with
// equal strings returns Symbols that compare ==.
func Intern(name string) Symbol {
	h := hashOf(name)

	mu.Lock()
	defer mu.Unlock()

	bucket := buckets[h]
	firstEmpty := -1
	for i, wp := range bucket {
		if p := wp.Value(); p != nil {
			if *p == name {
				return Symbol{p}
			}
		} else if firstEmpty == -1 {
			firstEmpty = i
		}
	}
	p := new(string)
	*p = name
	entry := weak.Make(p)
	if firstEmpty != -1 {
		bucket[firstEmpty] = entry
	} else {
		bucket = append(bucket, entry)
	}
	buckets[h] = bucket
	return Symbol{p}
}

func hashOf(s string) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(s)
	return h.Sum64()
}

// String returns the original interned text.
func (s Symbol) String() string {
	if s.s == nil {
		return ""
	}
	return *s.s
}

// IsZero reports whether s is the zero Symbol (never produced by Intern).
func (s Symbol) IsZero() bool {
	return s.s == nil
}

// WriteHash writes a short, collision-resistant representation of s to h,
// so that callers hashing structures containing a Symbol don't need to
// rehash the underlying string.
func (s Symbol) WriteHash(h *maphash.Hash) {
	maphash.WriteComparable(h, s.s)
}
