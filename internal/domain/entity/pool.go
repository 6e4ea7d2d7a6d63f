package entity

// Handle refers to a pool slot. The generation changes every time the slot
// is released, so a handle kept past its occupant's lifetime never resolves.
type Handle struct {
	Index int32
	Gen   uint32
}

// NilHandle never resolves in any pool
var NilHandle = Handle{Index: -1}

// IsNil returns true for the zero-value sentinel
func (h Handle) IsNil() bool {
	return h.Index < 0
}

// Pool is a fixed-capacity arena of reusable slots with a free list.
// Slots are allocated lazily up to capacity and recycled afterwards.
type Pool[T any] struct {
	items    []T
	active   []bool
	gen      []uint32
	free     []int32
	capacity int
	count    int
}

// NewPool creates a pool that holds at most capacity live entries
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		items:    make([]T, 0, capacity),
		active:   make([]bool, 0, capacity),
		gen:      make([]uint32, 0, capacity),
		free:     make([]int32, 0, capacity),
		capacity: capacity,
	}
}

// Acquire reserves a slot and returns it zeroed.
// Returns ok=false when the pool is at capacity.
func (p *Pool[T]) Acquire() (Handle, *T, bool) {
	var idx int32
	switch {
	case len(p.free) > 0:
		idx = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
	case len(p.items) < p.capacity:
		var zero T
		p.items = append(p.items, zero)
		p.active = append(p.active, false)
		p.gen = append(p.gen, 0)
		idx = int32(len(p.items) - 1)
	default:
		return NilHandle, nil, false
	}

	// A recycled slot must not carry anything from its previous occupant
	var zero T
	p.items[idx] = zero
	p.active[idx] = true
	p.count++

	return Handle{Index: idx, Gen: p.gen[idx]}, &p.items[idx], true
}

// Release returns the slot to the free list. Releasing a stale or
// already-released handle is a no-op and returns false.
func (p *Pool[T]) Release(h Handle) bool {
	if !p.valid(h) {
		return false
	}
	var zero T
	p.items[h.Index] = zero
	p.active[h.Index] = false
	p.gen[h.Index]++
	p.free = append(p.free, h.Index)
	p.count--
	return true
}

// Get resolves a handle to its live entry
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.valid(h) {
		return nil, false
	}
	return &p.items[h.Index], true
}

// Each visits live entries in slot order. Releasing the visited handle
// inside fn is allowed; acquiring during iteration is not visited.
func (p *Pool[T]) Each(fn func(h Handle, v *T)) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if !p.active[i] {
			continue
		}
		fn(Handle{Index: int32(i), Gen: p.gen[i]}, &p.items[i])
	}
}

// Clear releases every live entry
func (p *Pool[T]) Clear() {
	p.Each(func(h Handle, _ *T) {
		p.Release(h)
	})
}

// Len returns the number of live entries
func (p *Pool[T]) Len() int { return p.count }

// Cap returns the pool capacity
func (p *Pool[T]) Cap() int { return p.capacity }

// Full reports whether Acquire would fail
func (p *Pool[T]) Full() bool { return p.count >= p.capacity }

func (p *Pool[T]) valid(h Handle) bool {
	if h.Index < 0 || int(h.Index) >= len(p.items) {
		return false
	}
	return p.active[h.Index] && p.gen[h.Index] == h.Gen
}
