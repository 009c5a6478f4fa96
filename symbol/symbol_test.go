package symbol

import (
	"hash/maphash"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestInternReturnsSameHandle(t *testing.T) {
	a := Intern("add")
	b := Intern("add")
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.Equals(a.String(), "add"))
}

func TestInternDistinguishesNames(t *testing.T) {
	a := Intern("add")
	b := Intern("sub")
	qt.Assert(t, qt.Not(qt.Equals(a, b)))
}

func TestZeroSymbol(t *testing.T) {
	var z Symbol
	qt.Assert(t, qt.IsTrue(z.IsZero()))
	qt.Assert(t, qt.Equals(z.String(), ""))
}

func TestWriteHashConsistentForEqualSymbols(t *testing.T) {
	a := Intern("mul")
	b := Intern("mul")

	seed := maphash.MakeSeed()
	var ha, hb maphash.Hash
	ha.SetSeed(seed)
	hb.SetSeed(seed)
	a.WriteHash(&ha)
	b.WriteHash(&hb)
	qt.Assert(t, qt.Equals(ha.Sum64(), hb.Sum64()))
}

func TestInternManyNamesRoundTrip(t *testing.T) {
	names := []string{"a", "b", "c", "plus", "times", "shift-left", ""}
	syms := make([]Symbol, len(names))
	for i, n := range names {
		syms[i] = Intern(n)
	}
	for i, n := range names {
		qt.Assert(t, qt.Equals(syms[i].String(), n))
		qt.Assert(t, qt.Equals(syms[i], Intern(n)))
	}
}
