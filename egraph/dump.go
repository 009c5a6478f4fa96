package egraph

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Dump writes a human-readable (not format-stable) listing of the
// e-graph's state to w: the union-find (each allocated id and its
// root), the memo, every class with its nodes and parents, and the
// pending dirty-union queue. It's meant for development and debugging,
// mirroring how this codebase's other container types expose a dump for
// the same purpose.
//
//	union-find (#3):
//	    e0 -> e0
//	    e1 -> e1
//	    e2 -> e2
//	memo (#3):
//	    (+ e0 e1) -> e2
//	    a -> e0
//	    b -> e1
//	classes (#3):
//	    eclass e0:
//	        nodes: a
//	        parents: (+ e0 e1) -> e2
//	    eclass e1:
//	        nodes: b
//	        parents: (+ e0 e1) -> e2
//	    eclass e2:
//	        nodes: (+ e0 e1)
//	        parents: (none)
//	dirty unions: (none)
func (g *EGraph) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "union-find (#%d):\n", g.uf.Len()); err != nil {
		return err
	}
	for i := range g.uf.Len() {
		id := Id(i)
		if _, err := fmt.Fprintf(w, "    %s -> %s\n", idString(id), idString(g.uf.Find(id))); err != nil {
			return err
		}
	}
	if err := g.dumpMemo(w); err != nil {
		return err
	}
	if err := g.dumpClasses(w); err != nil {
		return err
	}
	return g.dumpDirty(w)
}

func (g *EGraph) dumpMemo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "memo (#%d):\n", g.memo.Len()); err != nil {
		return err
	}
	entries := make([]string, 0, g.memo.Len())
	for n, id := range g.memo.All() {
		entries = append(entries, fmt.Sprintf("    %s -> %s", n, idString(id)))
	}
	slices.Sort(entries)
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

func (g *EGraph) dumpClasses(w io.Writer) error {
	ids := g.ClassIDs()
	if _, err := fmt.Fprintf(w, "classes (#%d):\n", len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		cls := g.classes[id]
		nodes := make([]string, len(cls.Nodes))
		for i, n := range cls.Nodes {
			nodes[i] = n.String()
		}
		if _, err := fmt.Fprintf(w, "    eclass %s:\n        nodes: %s\n", idString(id), strings.Join(nodes, ", ")); err != nil {
			return err
		}
		parents := "(none)"
		if len(cls.Parents) > 0 {
			ps := make([]string, len(cls.Parents))
			for i, p := range cls.Parents {
				ps[i] = fmt.Sprintf("%s -> %s", p.Node, idString(p.ID))
			}
			parents = strings.Join(ps, ", ")
		}
		if _, err := fmt.Fprintf(w, "        parents: %s\n", parents); err != nil {
			return err
		}
	}
	return nil
}

func (g *EGraph) dumpDirty(w io.Writer) error {
	if len(g.dirtyUnions) == 0 {
		_, err := fmt.Fprintln(w, "dirty unions: (none)")
		return err
	}
	ids := make([]string, len(g.dirtyUnions))
	for i, id := range g.dirtyUnions {
		ids[i] = idString(id)
	}
	_, err := fmt.Fprintf(w, "dirty unions: %s\n", strings.Join(ids, ", "))
	return err
}

// DumpString is a convenience wrapper around Dump for tests and REPL-ish
// debugging.
func (g *EGraph) DumpString() string {
	var b strings.Builder
	if err := g.Dump(&b); err != nil {
		panic(err) // strings.Builder's Write never fails
	}
	return b.String()
}
