/*
Package index implements a lazily rebuilt position index.
*/
package index

import "iter"

// Positions maps positions 0..n-1 to items of a sequence.
//
// The index is either fresh or stale. Invalidate marks it stale,
// Refresh rebuilds it from scratch when stale. The zero value is a stale empty index.
type Positions[N any] struct {
	items    []N
	fresh    bool
	rebuilds int
}

// Invalidate marks the index stale.
func (p *Positions[N]) Invalidate() {
	p.fresh = false
}

// Stale reports whether the index must be rebuilt before reading.
func (p *Positions[N]) Stale() bool {
	return !p.fresh
}

// Rebuilds returns the number of times the index has been rebuilt.
func (p *Positions[N]) Rebuilds() int {
	return p.rebuilds
}

// Len returns the number of indexed positions.
func (p *Positions[N]) Len() int {
	return len(p.items)
}

// Refresh rebuilds the index if it is stale.
func (p *Positions[N]) Refresh(seq iter.Seq[N]) {
	if p.fresh {
		return
	}
	p.Rebuild(seq)
}

// Rebuild unconditionally rebuilds the index and marks it fresh.
func (p *Positions[N]) Rebuild(seq iter.Seq[N]) {
	clear(p.items)
	p.items = p.items[:0]

	for n := range seq {
		p.items = append(p.items, n)
	}

	p.fresh = true
	p.rebuilds++
}

// Get returns the item at position i.
// The result is only meaningful when the index is fresh.
func (p *Positions[N]) Get(i int) (item N, ok bool) {
	if i < 0 || i >= len(p.items) {
		var zero N
		return zero, false
	}
	return p.items[i], true
}
