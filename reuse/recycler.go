// SPDX-License-Identifier: Unlicense OR MIT

package reuse

// A Recycler hands out views for reuse identifiers, preferring idle
// pooled views over newly made ones. The zero value is ready to
// use.
type Recycler[V comparable] struct {
	pool Pool[V]
}

// Obtain returns an idle view for the identifier, or the result of
// newView when none is pooled. An empty identifier always makes a
// new view.
func (r *Recycler[V]) Obtain(id string, newView func() V) V {
	if id != "" {
		if v, ok := r.pool.Pop(id); ok {
			return v
		}
	}
	return newView()
}

// Release returns v to the idle pool under the identifier. Views
// released with an empty identifier are discarded rather than
// pooled.
func (r *Recycler[V]) Release(id string, v V) {
	if id == "" {
		return
	}
	r.pool.Insert(id, v)
}

// Purge hands every idle view to dispose and empties the pool. It
// is called on teardown or memory pressure, with dispose detaching
// the view from whatever still holds it.
func (r *Recycler[V]) Purge(dispose func(V)) {
	r.pool.All(func(v V) bool {
		dispose(v)
		return true
	})
	r.pool.RemoveAll()
}

// Idle returns the number of idle views held for future Obtain
// calls.
func (r *Recycler[V]) Idle() int {
	return r.pool.Len()
}
