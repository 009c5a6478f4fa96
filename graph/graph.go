// Package graph defines a minimal graph interface used to adapt an
// e-graph's classes and membership edges for diagram rendering.
package graph

import "iter"

// Graph is implemented by anything that exposes outgoing edges per
// node and the endpoints of an edge.
type Graph[Node comparable, Edge any] interface {
	EdgesFrom(Node) ([]Edge, bool)
	Nodes(Edge) (from, to Node)
	CmpNode(n0, n1 Node) int
}

// EnumerableGraph additionally knows the full set of its nodes.
type EnumerableGraph[Node comparable, Edge any] interface {
	Graph[Node, Edge]
	AllNodes() iter.Seq[Node]
}

// NodesFrom yields the nodes reachable in one hop from n.
func NodesFrom[Node comparable, Edge any](g Graph[Node, Edge], n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		edges, _ := g.EdgesFrom(n)
		for _, e := range edges {
			if _, to := g.Nodes(e); !yield(to) {
				break
			}
		}
	}
}

// NodeInGraph reports whether g knows n, as signalled by the second
// result of EdgesFrom; a known node may have no edges.
func NodeInGraph[Node comparable, Edge any](g Graph[Node, Edge], n Node) bool {
	_, ok := g.EdgesFrom(n)
	return ok
}
