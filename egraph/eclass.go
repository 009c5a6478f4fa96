package egraph

// ParentEdge is a back-pointer from a class to an e-node elsewhere that
// has this class among its (canonical) args, together with that e-node's
// own owning class id.
type ParentEdge struct {
	Node Enode
	ID   Id
}

// EClass is a set of structurally distinct e-nodes known to be
// semantically equal, plus the parent list used to discover congruences
// when one of its members' children is unioned elsewhere.
//
// Nodes and Parents only grow, except wholesale during Union (absorbing
// another class) and in place during repair (re-canonicalizing parents).
type EClass struct {
	Nodes   []Enode
	Parents []ParentEdge
}

// newEClass creates a fresh, single-member class.
func newEClass(seed Enode) *EClass {
	return &EClass{Nodes: []Enode{seed}}
}

func (c *EClass) addParent(node Enode, id Id) {
	c.Parents = append(c.Parents, ParentEdge{node, id})
}

// setParent installs edge into c.Parents, overwriting any existing entry
// for the same node (matched structurally, not by owner id) and
// appending one otherwise. repair uses this to propagate a parent
// node's corrected owner into every one of the node's distinct argument
// classes, not just the class currently being repaired.
func (c *EClass) setParent(node Enode, edge ParentEdge) {
	h := enodeHasher{}
	for i, p := range c.Parents {
		if h.Equal(p.Node, node) {
			c.Parents[i] = edge
			return
		}
	}
	c.Parents = append(c.Parents, edge)
}

// absorb merges from's nodes and parents into c: the effect of Union on
// the surviving side when from is the absorbed class.
func (c *EClass) absorb(from *EClass) {
	c.Nodes = append(c.Nodes, from.Nodes...)
	c.Parents = append(c.Parents, from.Parents...)
}
