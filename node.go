package indexlist

// node is a list node.
type node[V comparable] struct {
	next, prev *node[V]
	value      V
}

// Next returns the next node.
func (n *node[V]) Next() *node[V] {
	return n.next
}

// SetNext sets the next node.
func (n *node[V]) SetNext(next *node[V]) {
	n.next = next
}

// Prev returns the previous node.
func (n *node[V]) Prev() *node[V] {
	return n.prev
}

// SetPrev sets the previous node.
func (n *node[V]) SetPrev(prev *node[V]) {
	n.prev = prev
}

// Value returns the element held by the node.
func (n *node[V]) Value() V {
	return n.value
}

// link inserts s after this node.
func (n *node[V]) link(s *node[V]) {
	next := n.next
	n.SetNext(s)
	s.SetPrev(n)
	next.SetPrev(s)
	s.SetNext(next)
}

// unlink unlinks this node and clears its links and value.
func (n *node[V]) unlink() {
	n.prev.SetNext(n.next)
	n.next.SetPrev(n.prev)
	n.next = nil
	n.prev = nil

	var zero V
	n.value = zero
}
