package sexpr

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParseAtom(t *testing.T) {
	tr, err := Parse("a")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(tr.IsAtom()))
	qt.Assert(t, qt.Equals(tr.Text(), "a"))
}

func TestParseQuotedAtomStripsQuotes(t *testing.T) {
	tr, err := Parse(`"hello"`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tr.Text(), "hello"))
}

func TestParseList(t *testing.T) {
	tr, err := Parse("(+ a a)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(tr.IsAtom()))
	items := tr.Items()
	qt.Assert(t, qt.Equals(len(items), 3))
	qt.Assert(t, qt.Equals(items[0].Text(), "+"))
	qt.Assert(t, qt.Equals(items[1].Text(), "a"))
	qt.Assert(t, qt.Equals(items[2].Text(), "a"))
}

func TestParseNested(t *testing.T) {
	tr, err := Parse("(* (+ a 0) 1)")
	qt.Assert(t, qt.IsNil(err))
	items := tr.Items()
	qt.Assert(t, qt.Equals(items[0].Text(), "*"))
	qt.Assert(t, qt.IsFalse(items[1].IsAtom()))
	qt.Assert(t, qt.Equals(items[1].Items()[0].Text(), "+"))
	qt.Assert(t, qt.Equals(items[2].Text(), "1"))
}

func TestParseRejectsUnbalancedOpen(t *testing.T) {
	_, err := Parse("(+ a a")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseRejectsUnbalancedClose(t *testing.T) {
	_, err := Parse("+ a a)")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := Parse("   ")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("(a b) (c d)")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseAllReadsMultipleTopLevelExprs(t *testing.T) {
	all, err := ParseAll("(f a) (g a)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(all), 2))
	qt.Assert(t, qt.Equals(all[0].Items()[0].Text(), "f"))
	qt.Assert(t, qt.Equals(all[1].Items()[0].Text(), "g"))
}

func TestStringRoundTrip(t *testing.T) {
	tr, err := Parse("(* x 2)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tr.String(), "(* x 2)"))
}

func TestConstructors(t *testing.T) {
	tr := List(Atom("+"), Atom("a"), Atom("b"))
	qt.Assert(t, qt.Equals(tr.String(), "(+ a b)"))
}
