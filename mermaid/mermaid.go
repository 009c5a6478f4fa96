// Package mermaid marshals graph structures to Mermaid diagram syntax,
// for pasting into a viewer during development.
package mermaid

import (
	"bytes"
	"fmt"

	"github.com/rogpeppe/eqsat/graph"
)

// Marshaler can be rendered as a Mermaid diagram.
type Marshaler interface {
	MarshalMermaid() ([]byte, error)
}

// NewGraph adapts a GraphInterface into a Marshaler.
func NewGraph[Node comparable, Edge any](g GraphInterface[Node, Edge]) Marshaler {
	return &graphImpl[Node, Edge]{g}
}

// GraphInterface is what a graph must expose to be rendered.
type GraphInterface[Node comparable, Edge any] interface {
	graph.Graph[Node, Edge]
	AllNodes() []Node
	NodeInfo(Node) NodeInfo
}

// NodeInfo carries a node's rendering metadata.
type NodeInfo struct {
	ID    string
	Text  string
	Style string
}

type graphImpl[Node comparable, Edge any] struct {
	g GraphInterface[Node, Edge]
}

func (g *graphImpl[Node, Edge]) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for _, n := range g.g.AllNodes() {
		info := g.g.NodeInfo(n)
		if info.ID != info.Text && info.Text != "" {
			fmt.Fprintf(&buf, "  %s[%s]\n", info.ID, info.Text)
		}
		if info.Style != "" {
			fmt.Fprintf(&buf, "  style %s %s\n", info.ID, info.Style)
		}
		edges, ok := g.g.EdgesFrom(n)
		if ok {
			for _, e := range edges {
				from, to := g.g.Nodes(e)
				fmt.Fprintf(&buf, "  %s-->%s\n", g.g.NodeInfo(from).ID, g.g.NodeInfo(to).ID)
			}
		}
	}
	return buf.Bytes(), nil
}
