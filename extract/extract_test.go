package extract

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rogpeppe/eqsat/egraph"
	"github.com/rogpeppe/eqsat/sexpr"
	"github.com/rogpeppe/eqsat/symbol"
)

func mustParse(t *testing.T, src string) sexpr.Tree {
	t.Helper()
	tr, err := sexpr.Parse(src)
	qt.Assert(t, qt.IsNil(err))
	return tr
}

func sizeCost(_ symbol.Symbol, argCosts []int) int {
	total := 1
	for _, c := range argCosts {
		total += c
	}
	return total
}

func TestExtractLeaf(t *testing.T) {
	g := egraph.New()
	root := g.InsertTerm(mustParse(t, "a"))

	term, cost := NewExtractor(g, sizeCost).Extract(root)
	qt.Assert(t, qt.Equals(term.String(), "a"))
	qt.Assert(t, qt.Equals(cost, 1))
}

func TestExtractPrefersCheaperEquivalentNode(t *testing.T) {
	g := egraph.New()
	mulID := g.InsertTerm(mustParse(t, "(* x 2)"))
	shl := g.InsertTerm(mustParse(t, "(<< x 1)"))
	g.Union(mulID, shl)
	g.Rebuild()

	// Under sizeCost both nodes cost 3; weight "*" one higher so that
	// "<<" is the strictly cheaper member of the class.
	mulCost := func(head symbol.Symbol, argCosts []int) int {
		if head.String() == "*" {
			return sizeCost(head, argCosts) + 1
		}
		return sizeCost(head, argCosts)
	}
	term, _ := NewExtractor(g, mulCost).Extract(mulID)
	qt.Assert(t, qt.Equals(term.String(), "(<< x 1)"))
}

func TestExtractNestedTerm(t *testing.T) {
	g := egraph.New()
	root := g.InsertTerm(mustParse(t, "(+ a (* b c))"))

	term, cost := NewExtractor(g, sizeCost).Extract(root)
	qt.Assert(t, qt.Equals(term.String(), "(+ a (* b c))"))
	qt.Assert(t, qt.Equals(cost, 5))
}

func TestExtractCostReflectsChosenSubterms(t *testing.T) {
	g := egraph.New()
	root := g.InsertTerm(mustParse(t, "(* x 2)"))
	shl := g.InsertTerm(mustParse(t, "(<< x 1)"))
	g.Union(root, shl)
	g.Rebuild()

	constCost := func(head symbol.Symbol, argCosts []int) int {
		if head.String() == "<<" {
			return 1
		}
		return sizeCost(head, argCosts)
	}
	_, cost := NewExtractor(g, constCost).Extract(root)
	qt.Assert(t, qt.Equals(cost, 1))
}
