package egraph

import (
	"fmt"

	"github.com/rogpeppe/eqsat/mermaid"
)

type classEdge struct {
	From, To Id
}

// mermaidView adapts an EGraph to mermaid.GraphInterface: classes are
// nodes, and an edge c1 --> c2 is drawn when some e-node in c1 has c2
// among its canonical args.
type mermaidView struct {
	g *EGraph
}

func (v mermaidView) EdgesFrom(id Id) ([]classEdge, bool) {
	cls, ok := v.g.classes[id]
	if !ok {
		return nil, false
	}
	seen := map[Id]bool{}
	var edges []classEdge
	for _, n := range cls.Nodes {
		for _, arg := range n.Args {
			child := v.g.uf.Find(arg)
			if seen[child] {
				continue
			}
			seen[child] = true
			edges = append(edges, classEdge{From: id, To: child})
		}
	}
	return edges, true
}

func (v mermaidView) Nodes(e classEdge) (Id, Id) {
	return e.From, e.To
}

func (v mermaidView) CmpNode(a, b Id) int {
	return int(a - b)
}

func (v mermaidView) AllNodes() []Id {
	return v.g.ClassIDs()
}

func (v mermaidView) NodeInfo(id Id) mermaid.NodeInfo {
	cls := v.g.classes[id]
	return mermaid.NodeInfo{
		ID:   idString(id),
		Text: fmt.Sprintf("%s (#%d)", idString(id), len(cls.Nodes)),
	}
}

// Mermaid returns a Marshaler rendering the e-graph's classes and
// membership edges as a Mermaid "graph TD" diagram, for visual
// inspection during development.
func (g *EGraph) Mermaid() mermaid.Marshaler {
	return mermaid.NewGraph[Id, classEdge](mermaidView{g: g})
}
