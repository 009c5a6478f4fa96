// Package heap provides a binary heap over a slice of values, used by
// the extractor to drive its priority worklist.
package heap

// New returns a binary heap over items, ordered by less. If setIndex is
// non-nil, it's called whenever an item moves, with a pointer to the
// item and its new index; the extractor uses this to keep each entry's
// recorded heap slot in sync as items shift around.
func New[E any](items []E, less func(E, E) bool, setIndex func(e *E, i int)) *Heap[E] {
	h := &Heap[E]{
		Items:    items,
		less:     less,
		setIndex: setIndex,
	}
	h.Init()
	return h
}

// Heap implements a binary min-heap: Items[0] is always the least
// element according to less.
type Heap[E any] struct {
	Items    []E
	less     func(E, E) bool
	setIndex func(*E, int)
}

func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Init establishes the heap invariant. It's idempotent and safe to call
// whenever the invariant may have been invalidated by bulk edits to
// Items.
func (h *Heap[E]) Init() {
	n := len(h.Items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// Push adds x to the heap.
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	if h.setIndex != nil {
		index := len(h.Items) - 1
		h.setIndex(&h.Items[index], index)
	}
	h.up(len(h.Items) - 1)
}

// Pop removes and returns the least element.
func (h *Heap[E]) Pop() E {
	n := len(h.Items) - 1
	h.swap(0, n)
	h.down(0, n)
	return h.pop()
}

// Fix re-establishes the heap invariant after the element at index i
// has changed value in place. Cheaper than Remove followed by Push.
func (h *Heap[E]) Fix(i int) {
	if !h.down(i, len(h.Items)) {
		h.up(i)
	}
}

// Remove removes and returns the element at index i.
func (h *Heap[E]) Remove(i int) E {
	n := len(h.Items) - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	return h.pop()
}

func (h *Heap[E]) swap(i, j int) {
	h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
	if h.setIndex != nil {
		h.setIndex(&h.Items[i], i)
		h.setIndex(&h.Items[j], j)
	}
}

func (h *Heap[E]) pop() E {
	n := len(h.Items) - 1
	x := h.Items[n]
	h.Items = h.Items[0:n]
	return x
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.less(h.Items[j2], h.Items[j1]) {
			j = j2
		}
		if !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
