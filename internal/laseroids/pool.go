package laseroids

// Pool is a fixed-capacity, unordered collection with an explicit live count.
// Only indices [0, Len()) are live. Removal swaps with the last live element.
type Pool[T any] struct {
	items []T
	n     int
}

// NewPool creates an empty pool that holds at most capacity items.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{items: make([]T, capacity)}
}

// Add stores v in the next free slot. It returns false and leaves the pool
// unchanged when the pool is full.
func (p *Pool[T]) Add(v T) bool {
	if p.n == len(p.items) {
		return false
	}
	p.items[p.n] = v
	p.n++
	return true
}

// Remove deletes the item at index i by moving the last live item into its
// slot. Out-of-range indices are ignored.
func (p *Pool[T]) Remove(i int) {
	if i < 0 || i >= p.n {
		return
	}
	last := p.n - 1
	p.items[i] = p.items[last]
	var zero T
	p.items[last] = zero
	p.n--
}

// RemoveFunc removes every live item for which pred returns true and reports
// how many were removed. After a swap-remove the element moved into index i
// is examined before advancing.
func (p *Pool[T]) RemoveFunc(pred func(*T) bool) int {
	removed := 0
	for i := 0; i < p.n; {
		if pred(&p.items[i]) {
			p.Remove(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// At returns a pointer to the live item at index i. It panics if i is not live.
func (p *Pool[T]) At(i int) *T {
	if i < 0 || i >= p.n {
		panic("laseroids: pool index out of range")
	}
	return &p.items[i]
}

// Each calls fn for every live item in index order.
func (p *Pool[T]) Each(fn func(*T)) {
	for i := 0; i < p.n; i++ {
		fn(&p.items[i])
	}
}

// Len returns the live count.
func (p *Pool[T]) Len() int { return p.n }

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int { return len(p.items) }

// Full reports whether Add would fail.
func (p *Pool[T]) Full() bool { return p.n == len(p.items) }

// Clear removes all items.
func (p *Pool[T]) Clear() {
	var zero T
	for i := 0; i < p.n; i++ {
		p.items[i] = zero
	}
	p.n = 0
}
