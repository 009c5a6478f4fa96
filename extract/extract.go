// Package extract picks one concrete term out of each e-class of an
// e-graph, guided by a caller-supplied cost function. It's a minimal,
// directly-usable sketch: no analysis-driven costs, no multi-pattern
// extraction.
package extract

import (
	"github.com/rogpeppe/eqsat/egraph"
	"github.com/rogpeppe/eqsat/heap"
	"github.com/rogpeppe/eqsat/symbol"
)

// Term is a concrete, cycle-free term reconstructed from an e-graph.
type Term struct {
	Head symbol.Symbol
	Args []Term
}

func (t Term) String() string {
	if len(t.Args) == 0 {
		return t.Head.String()
	}
	s := "(" + t.Head.String()
	for _, a := range t.Args {
		s += " " + a.String()
	}
	return s + ")"
}

// CostFn computes the cost of a node given the already-settled best
// costs of its argument classes.
type CostFn func(head symbol.Symbol, argCosts []int) int

// Extractor finds minimum-cost representative terms in an e-graph
// under a fixed cost function.
type Extractor struct {
	g    *egraph.EGraph
	cost CostFn
}

// NewExtractor returns an Extractor that selects nodes from g according
// to cost.
func NewExtractor(g *egraph.EGraph, cost CostFn) *Extractor {
	return &Extractor{g: g, cost: cost}
}

type best struct {
	id      egraph.Id
	cost    int
	node    egraph.Enode
	settled bool
	index   int // heap slot, maintained by the heap's setIndex callback
}

// Extract computes the minimum-cost e-node for every class reachable
// from root by relaxation over the e-graph's congruence structure
// (classes play the role of a DAG's nodes; an e-node's cost depends on
// its argument classes' best-so-far costs, so this is the same
// fixpoint shape as a shortest-path relaxation), then walks the chosen
// e-node of each class to build a concrete Term. It returns the term
// and its total cost.
func (e *Extractor) Extract(root egraph.Id) (Term, int) {
	bests := map[egraph.Id]*best{}
	for id := range e.g.Classes() {
		bests[id] = &best{id: id, cost: -1, index: -1}
	}

	less := func(a, b *best) bool { return a.cost < b.cost }
	setIndex := func(b **best, i int) { (*b).index = i }
	worklist := heap.New([]*best{}, less, setIndex)

	pushed := map[egraph.Id]bool{}
	relax := func(id egraph.Id, node egraph.Enode, cost int) {
		b := bests[id]
		if b.settled {
			return
		}
		if b.cost == -1 || cost < b.cost {
			b.cost = cost
			b.node = node
			if !pushed[id] {
				worklist.Push(b)
				pushed[id] = true
			} else {
				worklist.Fix(b.index)
			}
		}
	}

	for id, cls := range e.g.Classes() {
		for _, n := range cls.Nodes {
			if len(n.Args) == 0 {
				relax(id, n, e.cost(n.Head, nil))
			}
		}
	}

	for worklist.Len() > 0 {
		b := worklist.Pop()
		if b.settled {
			continue
		}
		b.settled = true

		for id, cls := range e.g.Classes() {
			for _, n := range cls.Nodes {
				argCosts, ready := e.argCosts(bests, n.Args)
				if !ready {
					continue
				}
				relax(id, n, e.cost(n.Head, argCosts))
			}
		}
	}

	return e.buildTerm(bests, e.g.Find(root)), bests[e.g.Find(root)].cost
}

func (e *Extractor) argCosts(bests map[egraph.Id]*best, args []egraph.Id) ([]int, bool) {
	costs := make([]int, len(args))
	for i, a := range args {
		b := bests[a]
		if b == nil || !b.settled {
			return nil, false
		}
		costs[i] = b.cost
	}
	return costs, true
}

func (e *Extractor) buildTerm(bests map[egraph.Id]*best, id egraph.Id) Term {
	b := bests[id]
	args := make([]Term, len(b.node.Args))
	for i, a := range b.node.Args {
		args[i] = e.buildTerm(bests, e.g.Find(a))
	}
	return Term{Head: b.node.Head, Args: args}
}
