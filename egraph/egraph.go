// Package egraph implements an e-graph: a congruence-closed set of
// e-classes compactly representing many equivalent expressions, plus the
// e-matcher and rewriter that grow it under a ruleset.
//
// An EGraph value owns all its state; there is no global state and no
// concurrency support beyond what a caller layers on top (see the
// package doc in the module root SPEC_FULL.md, §5).
package egraph

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rogpeppe/eqsat/anyhash"
	"github.com/rogpeppe/eqsat/sexpr"
	"github.com/rogpeppe/eqsat/unionfind"
)

// EGraph owns a union-find, a hash-cons memo, and the e-classes it
// indexes, following the arena+index layout described in SPEC_FULL.md §9:
// nodes store child ids, never direct references, so there is no cyclic
// ownership despite the logical cycle between classes, nodes and parents.
type EGraph struct {
	uf          unionfind.UnionFind
	memo        *anyhash.Map[Enode, Id, enodeHasher]
	classes     map[Id]*EClass
	dirtyUnions []Id
}

// New returns an empty EGraph.
func New() *EGraph {
	return &EGraph{
		memo:    anyhash.New[Enode, Id](enodeHasher{}),
		classes: make(map[Id]*EClass),
	}
}

// Find returns the canonical id of id's class.
func (g *EGraph) Find(id Id) Id {
	return g.uf.Find(id)
}

// SameClass reports whether a and b resolve to the same class.
func (g *EGraph) SameClass(a, b Id) bool {
	return g.uf.SameSet(a, b)
}

// EClass returns the class with the given (canonical) root id, or nil if
// none exists. Callers typically pass Find(id)'s result.
func (g *EGraph) EClass(root Id) *EClass {
	return g.classes[root]
}

// NumClasses returns the number of live classes.
func (g *EGraph) NumClasses() int {
	return len(g.classes)
}

// NumNodes returns the total number of e-nodes across all classes.
func (g *EGraph) NumNodes() int {
	n := 0
	for _, c := range g.classes {
		n += len(c.Nodes)
	}
	return n
}

// ClassIDs returns the ids of every live (root) class, in ascending
// order, for deterministic iteration during rewriting, dumping and
// extraction.
func (g *EGraph) ClassIDs() []Id {
	ids := make([]Id, 0, len(g.classes))
	for id := range g.classes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Classes iterates every live class in ascending id order.
func (g *EGraph) Classes() iter.Seq2[Id, *EClass] {
	return func(yield func(Id, *EClass) bool) {
		for _, id := range g.ClassIDs() {
			if !yield(id, g.classes[id]) {
				return
			}
		}
	}
}

// canonicalizeArgs returns a copy of node with every arg replaced by its
// current root. Canonicalization happens at every boundary crossing into
// the memo, per SPEC_FULL.md §3/§4.D.
func (g *EGraph) canonicalizeArgs(node Enode) Enode {
	if len(node.Args) == 0 {
		return node
	}
	args := make([]Id, len(node.Args))
	for i, a := range node.Args {
		args[i] = g.uf.Find(a)
	}
	return Enode{Head: node.Head, Args: args}
}

// Lookup canonicalizes node's args and reports its class id, if any.
func (g *EGraph) Lookup(node Enode) (Id, bool) {
	canon := g.canonicalizeArgs(node)
	id, ok := g.memo.Get(canon)
	if !ok {
		return 0, false
	}
	return g.uf.Find(id), true
}

// pushEclass returns the id of node's class, creating one if this exact
// (canonicalized) node has never been seen before.
func (g *EGraph) pushEclass(node Enode) Id {
	canon := g.canonicalizeArgs(node)
	if id, ok := g.memo.Get(canon); ok {
		return g.uf.Find(id)
	}

	id := g.uf.Make()
	g.classes[id] = newEClass(canon)
	g.memo.Set(canon, id)

	for _, child := range canon.Args {
		childRoot := g.uf.Find(child)
		if cls := g.classes[childRoot]; cls != nil {
			cls.addParent(canon, id)
		}
	}
	return id
}

// Union merges the classes of a and b. It returns the surviving root and
// true if a union actually happened, or the (shared) root and false if a
// and b were already the same class.
func (g *EGraph) Union(a, b Id) (Id, bool) {
	a, b = g.uf.Find(a), g.uf.Find(b)
	if a == b {
		return a, false
	}

	survivor := g.uf.Union(a, b)
	absorbed := a
	if survivor == a {
		absorbed = b
	}

	to, from := g.classes[survivor], g.classes[absorbed]
	to.absorb(from)
	delete(g.classes, absorbed)

	// Re-canonicalize every node now owned by the merged class: a node
	// that pointed at `absorbed` must be reinserted under `survivor`.
	nodes := to.Nodes
	to.Nodes = make([]Enode, 0, len(nodes))
	for _, n := range nodes {
		g.memo.Delete(n)
		canon := g.canonicalizeArgs(n)
		g.memo.Set(canon, survivor)
		to.Nodes = append(to.Nodes, canon)
	}

	g.dirtyUnions = append(g.dirtyUnions, survivor)
	return survivor, true
}

// InsertTerm inserts a parsed s-expression bottom-up: each inner node
// becomes an e-node whose args are the ids returned by recursively
// inserting its children, and each leaf becomes a zero-arity e-node.
// Inserting a structurally identical subterm twice returns the same id.
func (g *EGraph) InsertTerm(t sexpr.Tree) Id {
	if t.IsAtom() {
		return g.pushEclass(NewEnode(t.Text()))
	}
	items := t.Items()
	if len(items) == 0 {
		panic("egraph: cannot insert an empty list")
	}
	head := items[0].Text()
	args := make([]Id, len(items)-1)
	for i, child := range items[1:] {
		args[i] = g.InsertTerm(child)
	}
	return g.pushEclass(NewEnode(head, args...))
}

// InSameClass reports whether t1 and t2, once inserted, are in the same
// class. It panics if either node is absent from the memo: this is an
// invariant violation per SPEC_FULL.md §7 (asking about a term that was
// never inserted is a programmer error, not a recoverable failure).
func (g *EGraph) InSameClass(t1, t2 Enode) bool {
	id1, ok1 := g.memo.Get(g.canonicalizeArgs(t1))
	id2, ok2 := g.memo.Get(g.canonicalizeArgs(t2))
	if !ok1 || !ok2 {
		panic(fmt.Sprintf("egraph: InSameClass called with a term absent from the memo (%v present=%v, %v present=%v)", t1, ok1, t2, ok2))
	}
	return g.uf.SameSet(id1, id2)
}
