// SPDX-License-Identifier: Unlicense OR MIT

/*
Package reuse pools idle view instances by reuse identifier, so
repeated layout passes can rebind existing views instead of
allocating new ones.

The pool is owned by the single thread driving layout; none of its
operations are safe for concurrent use.
*/
package reuse

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Pool holds idle views keyed by reuse identifier. The zero value
// is ready to use.
//
// A view moves between exactly two states: idle, held by the pool,
// and in use, held by the caller. Callers must not insert a view
// that is already in the pool.
type Pool[V comparable] struct {
	idle map[string][]V
}

// Insert adds v to the identifier's idle views.
func (p *Pool[V]) Insert(id string, v V) {
	if p.idle == nil {
		p.idle = make(map[string][]V)
	}
	p.idle[id] = append(p.idle[id], v)
}

// Pop removes and returns the most recently inserted idle view for
// the identifier. It returns false when none is left. The most
// recently used view is the one most likely to still be configured
// close to what is needed next.
func (p *Pool[V]) Pop(id string) (V, bool) {
	var zero V
	vs := p.idle[id]
	if len(vs) == 0 {
		return zero, false
	}
	v := vs[len(vs)-1]
	// Clear the vacated slot so the backing array does not keep the
	// view reachable.
	vs[len(vs)-1] = zero
	vs = vs[:len(vs)-1]
	if len(vs) == 0 {
		delete(p.idle, id)
	} else {
		p.idle[id] = vs
	}
	return v, true
}

// Remove deletes v from the identifier's idle views. It is a no-op
// when v is not pooled under the identifier.
func (p *Pool[V]) Remove(id string, v V) {
	vs := p.idle[id]
	for i := range vs {
		if vs[i] == v {
			var zero V
			copy(vs[i:], vs[i+1:])
			// The shift leaves a duplicate in the last slot; clear
			// it so the view is not kept reachable.
			vs[len(vs)-1] = zero
			vs = vs[:len(vs)-1]
			if len(vs) == 0 {
				delete(p.idle, id)
			} else {
				p.idle[id] = vs
			}
			return
		}
	}
}

// All calls yield for every idle view until yield returns false.
// Views are produced in sorted identifier order, insertion order
// within an identifier. Iterating twice without mutating the pool
// in between produces identical sequences.
func (p *Pool[V]) All(yield func(V) bool) {
	for _, id := range p.ids() {
		for _, v := range p.idle[id] {
			if !yield(v) {
				return
			}
		}
	}
}

// Groups calls yield once per identifier with its idle views, in
// sorted identifier order, until yield returns false. The yielded
// slice is owned by the pool and must not be modified.
func (p *Pool[V]) Groups(yield func(id string, idle []V) bool) {
	for _, id := range p.ids() {
		if !yield(id, p.idle[id]) {
			return
		}
	}
}

// RemoveAll discards every idle view.
func (p *Pool[V]) RemoveAll() {
	p.idle = nil
}

// Len returns the number of idle views across all identifiers.
func (p *Pool[V]) Len() int {
	n := 0
	for _, vs := range p.idle {
		n += len(vs)
	}
	return n
}

func (p *Pool[V]) ids() []string {
	ids := maps.Keys(p.idle)
	slices.Sort(ids)
	return ids
}
