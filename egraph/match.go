package egraph

import (
	"github.com/rogpeppe/eqsat/pattern"
	"github.com/rogpeppe/eqsat/symbol"
)

// Binding maps a pattern variable name to the e-class id it is bound to.
// A Binding is consistent when every occurrence of the same variable
// maps to the same id; Match only ever returns consistent bindings.
type Binding map[string]Id

// Match returns every consistent binding of p against the e-nodes in
// class classID. A pattern with no variables still yields one (empty)
// binding per successful structural match, since that signals existence
// rather than nothing.
//
// Match reads the e-graph (through Find, for path compression) but never
// mutates classes, memo or the union-find's union structure.
func (g *EGraph) Match(classID Id, p pattern.Pattern) []Binding {
	classID = g.uf.Find(classID)
	cls := g.classes[classID]
	if cls == nil {
		return nil
	}

	if p.IsVar() {
		return []Binding{{p.Name(): classID}}
	}

	var out []Binding
	head := symbol.Intern(p.Head())
	args := p.Args()
	for _, n := range cls.Nodes {
		if n.Head != head || len(n.Args) != len(args) {
			continue
		}
		out = append(out, matchChildren(g, n, args)...)
	}
	return out
}

// matchChildren matches each child pattern against the corresponding
// child class of n, then combines the per-child binding sets by Cartesian
// product, discarding any combination with an inconsistent variable
// assignment.
func matchChildren(g *EGraph, n Enode, args []pattern.Pattern) []Binding {
	combined := []Binding{{}}
	for i, childPattern := range args {
		childBindings := g.Match(n.Args[i], childPattern)
		if len(childBindings) == 0 {
			return nil
		}
		combined = cartesianMerge(combined, childBindings)
		if len(combined) == 0 {
			return nil
		}
	}
	return combined
}

// cartesianMerge combines every binding in `left` with every binding in
// `right`, keeping only consistent merges (same variable, same id).
func cartesianMerge(left, right []Binding) []Binding {
	var out []Binding
	for _, l := range left {
		for _, r := range right {
			if merged, ok := mergeConsistent(l, r); ok {
				out = append(out, merged)
			}
		}
	}
	return out
}

func mergeConsistent(a, b Binding) (Binding, bool) {
	out := make(Binding, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok && existing != v {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}
