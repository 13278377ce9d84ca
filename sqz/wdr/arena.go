// Package wdr implements the bitplane coding engine: per-subband
// significance lists over a node arena, and the wavelet-difference-reduction
// sorting/refinement passes that produce and consume the payload bits.
package wdr

// Node is one list entry: a coefficient position plus the arena index of its
// successor. -1 marks end-of-list.
type Node struct {
	X, Y uint16
	Next int32
}

// Arena is a pre-allocated node pool addressed by 32-bit indices.
// Allocation is a bump append; nodes are never freed individually.
type Arena struct {
	nodes []Node
}

// NewArena creates an arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]Node, 0, capacity)}
}

// Alloc appends a node and returns its index.
func (a *Arena) Alloc(x, y uint16) int32 {
	idx := int32(len(a.nodes))
	a.nodes = append(a.nodes, Node{X: x, Y: y, Next: -1})
	return idx
}

// At returns the node at index i.
func (a *Arena) At(i int32) *Node {
	return &a.nodes[i]
}

// List is a singly-linked list of arena nodes. All lists of one subband
// share the subband's arena; a node never moves between arenas.
type List struct {
	Head int32
	Tail int32
	Len  int32
}

// NewList returns an empty list.
func NewList() List {
	return List{Head: -1, Tail: -1}
}

// Append links node n at the tail.
func (l *List) Append(a *Arena, n int32) {
	a.At(n).Next = -1
	if l.Tail < 0 {
		l.Head = n
	} else {
		a.At(l.Tail).Next = n
	}
	l.Tail = n
	l.Len++
}

// Exchange unlinks n from src, given its predecessor prev (-1 when n is the
// head), and appends it to dst. Insertion order in dst is preserved.
func Exchange(a *Arena, src, dst *List, n, prev int32) {
	next := a.At(n).Next
	if prev < 0 {
		src.Head = next
	} else {
		a.At(prev).Next = next
	}
	if next < 0 {
		src.Tail = prev
	}
	src.Len--
	dst.Append(a, n)
}

// Merge concatenates src onto dst's tail in O(1) and empties src.
func Merge(a *Arena, src, dst *List) {
	if src.Head < 0 {
		return
	}
	if dst.Tail < 0 {
		*dst = *src
	} else {
		a.At(dst.Tail).Next = src.Head
		dst.Tail = src.Tail
		dst.Len += src.Len
	}
	*src = NewList()
}
