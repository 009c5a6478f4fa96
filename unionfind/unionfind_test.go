package unionfind

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestMakeAllocatesSingletons(t *testing.T) {
	var u UnionFind
	a := u.Make()
	b := u.Make()
	qt.Assert(t, qt.Not(qt.Equals(a, b)))
	qt.Assert(t, qt.IsTrue(u.SameSet(a, a)))
	qt.Assert(t, qt.IsFalse(u.SameSet(a, b)))
}

func TestFindIsIdempotentOnRoots(t *testing.T) {
	var u UnionFind
	a := u.Make()
	qt.Assert(t, qt.Equals(u.Find(a), a))
	qt.Assert(t, qt.Equals(u.Find(u.Find(a)), u.Find(a)))
}

func TestUnionMergesSets(t *testing.T) {
	var u UnionFind
	a, b, c := u.Make(), u.Make(), u.Make()
	root := u.Union(a, b)
	qt.Assert(t, qt.IsTrue(u.SameSet(a, b)))
	qt.Assert(t, qt.IsFalse(u.SameSet(a, c)))
	qt.Assert(t, qt.Equals(u.Find(a), root))
	qt.Assert(t, qt.Equals(u.Find(b), root))
}

func TestUnionSymmetric(t *testing.T) {
	var u UnionFind
	a, b := u.Make(), u.Make()
	u.Union(b, a)
	qt.Assert(t, qt.IsTrue(u.SameSet(a, b)))
}

func TestUnionTieBreakDeterministic(t *testing.T) {
	// Equal-rank ties must resolve to the smaller id, regardless of
	// argument order, so that rewriting/dump iteration is reproducible.
	var u1, u2 UnionFind
	a1, b1 := u1.Make(), u1.Make()
	a2, b2 := u2.Make(), u2.Make()

	r1 := u1.Union(a1, b1)
	r2 := u2.Union(b2, a2)
	qt.Assert(t, qt.Equals(r1, a1))
	qt.Assert(t, qt.Equals(r2, a2))
}

func TestUnionOfAlreadySameSetIsNoop(t *testing.T) {
	var u UnionFind
	a, b := u.Make(), u.Make()
	root := u.Union(a, b)
	qt.Assert(t, qt.Equals(u.Union(a, b), root))
	qt.Assert(t, qt.Equals(u.Union(b, a), root))
}

func TestChainOfUnionsConverge(t *testing.T) {
	var u UnionFind
	ids := make([]Id, 10)
	for i := range ids {
		ids[i] = u.Make()
	}
	for i := 1; i < len(ids); i++ {
		u.Union(ids[i-1], ids[i])
	}
	root := u.Find(ids[0])
	for _, id := range ids {
		qt.Assert(t, qt.Equals(u.Find(id), root))
	}
}

func TestLen(t *testing.T) {
	var u UnionFind
	qt.Assert(t, qt.Equals(u.Len(), 0))
	u.Make()
	u.Make()
	qt.Assert(t, qt.Equals(u.Len(), 2))
	u.Union(0, 1)
	qt.Assert(t, qt.Equals(u.Len(), 2))
}
