package egraph

import "fmt"

// CheckInvariants verifies the universal invariants from SPEC_FULL.md §8:
// root canonicity, memo agreement, classes-keyed-by-roots, parent
// soundness, and congruence closure. It's meant to run after Rebuild, in
// tests and debug builds; it is not called from any public mutator.
//
// It returns the first violation found as an error, or nil if every
// invariant holds.
func (g *EGraph) CheckInvariants() error {
	if err := g.checkCanonicity(); err != nil {
		return err
	}
	if err := g.checkMemoAgreement(); err != nil {
		return err
	}
	if err := g.checkClassesKeyedByRoots(); err != nil {
		return err
	}
	if err := g.checkParentSoundness(); err != nil {
		return err
	}
	return g.checkCongruenceClosure()
}

func (g *EGraph) checkCanonicity() error {
	for id, cls := range g.classes {
		for _, n := range cls.Nodes {
			for _, a := range n.Args {
				if root := g.uf.Find(a); root != a {
					return fmt.Errorf("egraph: canonicity violated in class %s: node %s has non-root arg %s (root %s)",
						idString(id), n, idString(a), idString(root))
				}
			}
		}
	}
	return nil
}

func (g *EGraph) checkMemoAgreement() error {
	for n, id := range g.memo.All() {
		root := g.uf.Find(id)
		cls := g.classes[root]
		if cls == nil {
			return fmt.Errorf("egraph: memo entry %s -> %s has no live class", n, idString(root))
		}
		if !containsNode(cls.Nodes, n) {
			return fmt.Errorf("egraph: memo entry %s -> %s but class %s does not contain it", n, idString(root), idString(root))
		}
	}
	for id, cls := range g.classes {
		for _, n := range cls.Nodes {
			memoID, ok := g.memo.Get(n)
			if !ok {
				return fmt.Errorf("egraph: node %s in class %s is missing from memo", n, idString(id))
			}
			if g.uf.Find(memoID) != id {
				return fmt.Errorf("egraph: node %s in class %s maps to class %s in memo", n, idString(id), idString(g.uf.Find(memoID)))
			}
		}
	}
	return nil
}

func (g *EGraph) checkClassesKeyedByRoots() error {
	for id := range g.classes {
		if g.uf.Find(id) != id {
			return fmt.Errorf("egraph: classes map has non-root key %s (root is %s)", idString(id), idString(g.uf.Find(id)))
		}
	}
	return nil
}

func (g *EGraph) checkParentSoundness() error {
	for id, cls := range g.classes {
		for _, n := range cls.Nodes {
			for _, childArg := range n.Args {
				childCls := g.classes[g.uf.Find(childArg)]
				if childCls == nil {
					return fmt.Errorf("egraph: node %s in class %s references class %s which has no entry", n, idString(id), idString(g.uf.Find(childArg)))
				}
				if !hasParent(childCls.Parents, n, id) {
					return fmt.Errorf("egraph: class %s missing parent edge (%s -> %s)", idString(g.uf.Find(childArg)), n, idString(id))
				}
			}
		}
	}
	return nil
}

func (g *EGraph) checkCongruenceClosure() error {
	seen := map[string]Id{}
	for id, cls := range g.classes {
		for _, n := range cls.Nodes {
			key := congruenceKey(g, n)
			if other, ok := seen[key]; ok && other != id {
				return fmt.Errorf("egraph: congruence violated: %s and a node in class %s are congruent but live in classes %s and %s",
					n, idString(other), idString(id), idString(other))
			}
			seen[key] = id
		}
	}
	return nil
}

func congruenceKey(g *EGraph, n Enode) string {
	key := n.Head.String()
	for _, a := range n.Args {
		key += "," + idString(g.uf.Find(a))
	}
	return key
}

func containsNode(nodes []Enode, n Enode) bool {
	h := enodeHasher{}
	for _, x := range nodes {
		if h.Equal(x, n) {
			return true
		}
	}
	return false
}

func hasParent(parents []ParentEdge, n Enode, owner Id) bool {
	h := enodeHasher{}
	for _, p := range parents {
		if h.Equal(p.Node, n) && p.ID == owner {
			return true
		}
	}
	return false
}
