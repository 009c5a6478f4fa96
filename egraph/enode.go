package egraph

import (
	"hash/maphash"
	"strconv"
	"strings"

	"github.com/rogpeppe/eqsat/symbol"
	"github.com/rogpeppe/eqsat/unionfind"
)

// Id names an equivalence class. It is the union-find's Id type, exposed
// here under the vocabulary the rest of the e-graph uses.
type Id = unionfind.Id

// Enode is an operator symbol applied to an ordered list of child class
// ids. A leaf is an Enode with no Args. Enode is a plain value type: the
// e-graph owns every Enode it stores, and moving one between classes
// under Union is destructive on the source (see eclass.go).
type Enode struct {
	Head Symbol
	Args []Id
}

// Symbol is re-exported so callers building Enodes don't need to import
// the symbol package directly for the common case.
type Symbol = symbol.Symbol

// NewEnode builds an Enode from a head name and child ids. The head is
// interned.
func NewEnode(head string, args ...Id) Enode {
	return Enode{Head: symbol.Intern(head), Args: append([]Id(nil), args...)}
}

// String renders n as an s-expression-like term for diagnostics.
func (n Enode) String() string {
	if len(n.Args) == 0 {
		return n.Head.String()
	}
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = idString(a)
	}
	return "(" + n.Head.String() + " " + strings.Join(parts, " ") + ")"
}

func idString(id Id) string {
	return "e" + strconv.Itoa(int(id))
}

// enodeHasher implements anyhash.Hasher[Enode] for the memo table: Enode
// carries a slice (Args) so it isn't a Go-comparable type, but it is
// still hashable and comparable under positional structural equality.
type enodeHasher struct{}

func (enodeHasher) Hash(h *maphash.Hash, n Enode) {
	n.Head.WriteHash(h)
	for _, a := range n.Args {
		maphash.WriteComparable(h, a)
	}
}

func (enodeHasher) Equal(x, y Enode) bool {
	if x.Head != y.Head || len(x.Args) != len(y.Args) {
		return false
	}
	for i := range x.Args {
		if x.Args[i] != y.Args[i] {
			return false
		}
	}
	return true
}
