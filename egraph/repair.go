package egraph

import (
	"slices"

	"github.com/rogpeppe/eqsat/anyhash"
)

// Rebuild restores root canonicity, memo consistency and congruence
// closure after a batch of Unions. It drains dirtyUnions, deduplicating
// by canonical id, and calls repair on each; repair can itself discover
// new congruences and call Union, refilling dirtyUnions, so the outer
// loop repeats until the queue is empty. It terminates because each
// Union strictly reduces the number of distinct roots.
func (g *EGraph) Rebuild() {
	for len(g.dirtyUnions) > 0 {
		todo := make(map[Id]bool, len(g.dirtyUnions))
		for _, id := range g.dirtyUnions {
			todo[g.uf.Find(id)] = true
		}
		g.dirtyUnions = g.dirtyUnions[:0]

		ids := make([]Id, 0, len(todo))
		for id := range todo {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			g.repair(id)
		}
	}
}

// repair re-canonicalizes class id's parent e-nodes, then detects
// congruence among them: two parents that canonicalize to the same node
// but are owned by different classes are the same term reached two ways,
// so their owning classes are unioned.
//
// This congruence-detection pass is the part the original source left
// commented out (SPEC_FULL.md §9); without it, saturation silently misses
// equalities introduced indirectly by parent rewrites.
//
// A parent node is, in general, referenced from the Parents list of
// every one of its distinct argument classes, not just id's. Once its
// owner is corrected here, that correction is pushed into every one of
// those argument classes' Parents lists (EClass.setParent) — not only
// id's own — or classes untouched by this particular union would be left
// holding a stale owner id for a class that's since been absorbed away.
func (g *EGraph) repair(id Id) {
	cls := g.classes[id]
	if cls == nil {
		// id was absorbed into another class by a union that happened
		// earlier in this same rebuild pass; nothing to repair.
		return
	}

	oldParents := cls.Parents
	cls.Parents = nil

	newParents := anyhash.New[Enode, Id](enodeHasher{})
	for _, p := range oldParents {
		g.memo.Delete(p.Node)
		canon := g.canonicalizeArgs(p.Node)
		owner := g.uf.Find(p.ID)
		g.memo.Set(canon, owner)

		if existing, ok := newParents.Get(canon); ok {
			if existing != owner {
				owner, _ = g.Union(existing, owner)
			}
		}
		newParents.Set(canon, owner)
	}

	for node, owner := range newParents.All() {
		edge := ParentEdge{Node: node, ID: owner}
		for _, arg := range node.Args {
			argCls := g.classes[g.uf.Find(arg)]
			if argCls == nil {
				continue
			}
			argCls.setParent(node, edge)
		}
	}
}
