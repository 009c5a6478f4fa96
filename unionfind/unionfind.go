// Package unionfind implements a disjoint-set forest over dense,
// monotonically-allocated integer ids.
//
// It is the union-find component that the e-graph builds its equivalence
// classes on top of: path compression on Find and union-by-rank on Union
// give amortized-inverse-Ackermann operations, and ids stay stable across
// mutation since the forest is backed by plain index-addressed slices
// rather than a map.
package unionfind

// Id names an equivalence class. Make allocates ids densely, starting
// at 0.
type Id int

// UnionFind is a disjoint-set forest. The zero value is an empty forest
// ready to use.
type UnionFind struct {
	parent []Id
	rank   []uint8
}

// Make allocates a new singleton set and returns its id.
func (u *UnionFind) Make() Id {
	id := Id(len(u.parent))
	u.parent = append(u.parent, id)
	u.rank = append(u.rank, 0)
	return id
}

// Len reports the number of ids ever allocated by Make, including ones
// since absorbed by Union.
func (u *UnionFind) Len() int {
	return len(u.parent)
}

// Find returns the canonical root of id's set, compressing the path from
// id to the root so that subsequent Find calls on it (and on the nodes
// along the way) are cheaper. Find is idempotent on roots: Find(Find(id))
// == Find(id).
func (u *UnionFind) Find(id Id) Id {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// Path compression: repoint every node on the path directly at root.
	for u.parent[id] != root {
		id, u.parent[id] = u.parent[id], root
	}
	return root
}

// Union merges the sets containing a and b and returns the surviving
// root. Ties between equal-rank roots are broken in favor of the smaller
// id, so that the result is deterministic regardless of call history.
func (u *UnionFind) Union(a, b Id) Id {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return ra
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		ra, rb = rb, ra
	case u.rank[ra] == u.rank[rb]:
		if rb < ra {
			ra, rb = rb, ra
		}
		u.rank[ra]++
	}
	u.parent[rb] = ra
	return ra
}

// SameSet reports whether a and b are in the same set.
func (u *UnionFind) SameSet(a, b Id) bool {
	return u.Find(a) == u.Find(b)
}
