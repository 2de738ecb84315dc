/*
Package indexlist implements a doubly linked list of unique elements
with lookup by element and by position.

Elements are compared with Go equality: pointers by identity,
strings, numbers and structs by value.
*/
package indexlist

import (
	"fmt"
	"iter"

	"github.com/mgnsk/indexlist/internal/index"
)

// List is a doubly linked list of unique elements.
//
// The zero value is a ready to use empty list. A List must not be copied after first use.
// List is not safe for concurrent use.
type List[V comparable] struct {
	head, tail  node[V]
	elems       map[V]*node[V]
	positions   index.Positions[*node[V]]
	len         int
	lazyReindex bool
}

// New creates an empty list.
func New[V comparable](opts ...Option) *List[V] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[V]{
		elems:       make(map[V]*node[V], o.capacity),
		lazyReindex: !o.eagerReindex,
	}
	l.lazyInit()

	return l
}

func (l *List[V]) lazyInit() {
	if l.head.next == nil {
		l.head.next = &l.tail
		l.tail.prev = &l.head
	}
	if l.elems == nil {
		l.elems = make(map[V]*node[V])
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Has reports whether v is in the list.
func (l *List[V]) Has(v V) bool {
	_, ok := l.elems[v]
	return ok
}

// Front returns the first element of the list.
func (l *List[V]) Front() (v V, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.head.Next().Value(), true
}

// Back returns the last element of the list.
func (l *List[V]) Back() (v V, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.tail.Prev().Value(), true
}

// PushBack inserts v at the back of the list.
func (l *List[V]) PushBack(v V) error {
	if l.Has(v) {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, v)
	}
	l.lazyInit()
	l.insertAfter(l.tail.Prev(), v)
	return nil
}

// PushFront inserts v at the front of the list.
func (l *List[V]) PushFront(v V) error {
	if l.Has(v) {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, v)
	}
	l.lazyInit()
	l.insertAfter(&l.head, v)
	return nil
}

// PopBack removes and returns the last element of the list.
func (l *List[V]) PopBack() (v V, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.remove(l.tail.Prev()), true
}

// PopFront removes and returns the first element of the list.
func (l *List[V]) PopFront() (v V, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.remove(l.head.Next()), true
}

// InsertBefore inserts v immediately before mark.
func (l *List[V]) InsertBefore(mark, v V) error {
	m, err := l.lookup(mark)
	if err != nil {
		return err
	}
	if l.Has(v) {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, v)
	}
	l.insertAfter(m.Prev(), v)
	return nil
}

// InsertAfter inserts v immediately after mark.
func (l *List[V]) InsertAfter(mark, v V) error {
	m, err := l.lookup(mark)
	if err != nil {
		return err
	}
	if l.Has(v) {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, v)
	}
	l.insertAfter(m, v)
	return nil
}

// Remove removes v from the list and returns the stored element.
func (l *List[V]) Remove(v V) (V, error) {
	n, err := l.lookup(v)
	if err != nil {
		var zero V
		return zero, err
	}
	return l.remove(n), nil
}

// At returns the element at position i.
//
// The position index is rebuilt in O(n) on the first call after a modification,
// subsequent calls are O(1).
func (l *List[V]) At(i int) (v V, ok bool) {
	n, ok := l.nodeAt(i)
	if !ok {
		return v, false
	}
	return n.Value(), true
}

// RemoveAt removes the element at position i and returns it.
// Elements after i shift one position to the front.
func (l *List[V]) RemoveAt(i int) (V, error) {
	n, ok := l.nodeAt(i)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %d", ErrIndexNotFound, i)
	}

	v := l.remove(n)

	if !l.lazyReindex {
		l.positions.Rebuild(l.nodes())
	}

	return v, nil
}

// All returns an iterator over the elements in forward order.
//
// The list must not be modified during iteration, except for removing
// the element that was just yielded.
func (l *List[V]) All() iter.Seq[V] {
	l.lazyInit()
	return values(walk(l.head.Next, (*node[V]).Next))
}

// Backward returns an iterator over the elements in backward order.
//
// The same modification rules as for All apply.
func (l *List[V]) Backward() iter.Seq[V] {
	l.lazyInit()
	return values(walk(l.tail.Prev, (*node[V]).Prev))
}

// From returns an iterator over the elements in forward order, starting at v.
func (l *List[V]) From(v V) (iter.Seq[V], error) {
	n, err := l.lookup(v)
	if err != nil {
		return nil, err
	}
	return values(walk(func() *node[V] { return n }, (*node[V]).Next)), nil
}

// BackwardFrom returns an iterator over the elements in backward order, starting at v.
func (l *List[V]) BackwardFrom(v V) (iter.Seq[V], error) {
	n, err := l.lookup(v)
	if err != nil {
		return nil, err
	}
	return values(walk(func() *node[V] { return n }, (*node[V]).Prev)), nil
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(v V) bool) {
	for v := range l.All() {
		if !f(v) {
			return
		}
	}
}

// Values returns the elements of the list in forward order.
func (l *List[V]) Values() []V {
	s := make([]V, 0, l.len)
	for v := range l.All() {
		s = append(s, v)
	}
	return s
}

func (l *List[V]) lookup(v V) (*node[V], error) {
	n, ok := l.elems[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrElementNotFound, v)
	}
	return n, nil
}

func (l *List[V]) nodeAt(i int) (*node[V], bool) {
	l.lazyInit()
	l.positions.Refresh(l.nodes())
	return l.positions.Get(i)
}

// insertAfter links a new node holding v after at.
func (l *List[V]) insertAfter(at *node[V], v V) {
	n := &node[V]{value: v}
	at.link(n)
	l.elems[v] = n
	l.len++
	l.positions.Invalidate()
}

// remove unlinks n and returns its element.
func (l *List[V]) remove(n *node[V]) V {
	if l.len == 0 {
		panic(fmt.Errorf("%w: length would become negative", ErrInvariantViolation))
	}

	v := n.Value()
	delete(l.elems, v)
	n.unlink()
	l.len--
	l.positions.Invalidate()

	return v
}

func (l *List[V]) nodes() iter.Seq[*node[V]] {
	return walk(l.head.Next, (*node[V]).Next)
}

// walk yields nodes starting at start() and following step until a sentinel is reached.
// start is evaluated on each iteration.
func walk[V comparable](start func() *node[V], step func(*node[V]) *node[V]) iter.Seq[*node[V]] {
	return func(yield func(*node[V]) bool) {
		// Sentinels and removed nodes have a nil link.
		for n := start(); n != nil && n.next != nil && n.prev != nil; {
			next := step(n)
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

func values[V comparable](nodes iter.Seq[*node[V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range nodes {
			if !yield(n.Value()) {
				return
			}
		}
	}
}
