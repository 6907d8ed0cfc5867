// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

// arena is a generational slot store. Records are addressed by (index,
// generation) pairs; freeing a slot bumps its generation, so handles captured
// before the free can be detected instead of silently aliasing a reallocated
// record. Freed slots are recycled through a freelist.
//
// Generation 0 is never issued, which keeps the zero handle permanently nil.
type arena[T any] struct {
	slots []slot[T]
	free  []int32
	count int
}

type slot[T any] struct {
	val  T
	gen  int32
	live bool
}

func (a *arena[T]) alloc(v T) (idx, gen int32) {
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.val = v
		s.live = true
		a.count++
		return idx, s.gen
	}
	a.slots = append(a.slots, slot[T]{val: v, gen: 1, live: true})
	a.count++
	return int32(len(a.slots) - 1), 1
}

// get resolves a handle to its record, or nil if the handle is out of range,
// freed, or from an older generation of the slot.
func (a *arena[T]) get(idx, gen int32) *T {
	if idx < 0 || int(idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx]
	if !s.live || s.gen != gen {
		return nil
	}
	return &s.val
}

// release frees the slot for recycling and invalidates every outstanding
// handle to it. It reports whether the handle was live.
func (a *arena[T]) release(idx, gen int32) bool {
	if a.get(idx, gen) == nil {
		return false
	}
	s := &a.slots[idx]
	var zero T
	s.val = zero
	s.live = false
	s.gen++
	a.free = append(a.free, idx)
	a.count--
	return true
}

func (a *arena[T]) len() int { return a.count }

// each calls fn for every live slot in storage order until fn returns false.
func (a *arena[T]) each(fn func(idx, gen int32, v *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !fn(int32(i), s.gen, &s.val) {
			return
		}
	}
}
