package egraph

import "github.com/rogpeppe/eqsat/pattern"

// ApplyRule matches rule.LHS against every class currently in the
// e-graph and, for each binding found, instantiates both sides and
// unions them. It snapshots the class id list before iterating (see
// SPEC_FULL.md §9 on mutation during iteration): classes absorbed by an
// earlier union in the same pass simply yield no further matches when
// reached through Find. It returns the number of unions that actually
// changed the structure.
func (g *EGraph) ApplyRule(rule pattern.Rule) int {
	edits := 0
	for _, classID := range g.ClassIDs() {
		for _, binding := range g.Match(classID, rule.LHS) {
			lhsID := g.instantiate(rule.LHS, binding)
			rhsID := g.instantiate(rule.RHS, binding)
			if _, changed := g.Union(lhsID, rhsID); changed {
				edits++
			}
		}
	}
	return edits
}

// ApplyRuleset applies every rule in rs, in order, without rebuilding in
// between: the e-graph tolerates staleness between rules, and calling
// Rebuild is the saturation driver's responsibility. It returns the total
// number of unions made across all rules.
func (g *EGraph) ApplyRuleset(rs []pattern.Rule) int {
	edits := 0
	for _, r := range rs {
		edits += g.ApplyRule(r)
	}
	return edits
}

// instantiate builds an e-node tree for p under binding, pushing every
// node via pushEclass, and returns the id of the root.
func (g *EGraph) instantiate(p pattern.Pattern, binding Binding) Id {
	if p.IsVar() {
		id, ok := binding[p.Name()]
		if !ok {
			panic("egraph: instantiate: pattern variable " + p.Name() + " missing from binding")
		}
		return id
	}
	args := p.Args()
	ids := make([]Id, len(args))
	for i, a := range args {
		ids[i] = g.instantiate(a, binding)
	}
	return g.pushEclass(NewEnode(p.Head(), ids...))
}
