package grid

// Pool is a LIFO store of detached row containers available for reuse.
// Each Manager owns exactly one Pool; nothing in this package exports a
// shared instance, so two managers can never contaminate each other's
// recycled containers. Single-goroutine use by contract, hence no locking.
type Pool struct {
	free  []RowHandle
	cells int

	recycled  uint64
	released  uint64
	discarded uint64
}

// NewPool creates a pool that hands out containers with the given cell
// count. Pooled handles built with a different cell count are discarded on
// acquisition rather than reused with a stale layout.
func NewPool(cells int) *Pool {
	return &Pool{cells: cells}
}

// Acquire pops the most recently released handle. The second return is
// false when the pool is empty and the caller must construct a container
// from scratch. A returned handle carries stale position and cell content;
// the caller must overwrite both before attaching it.
func (p *Pool) Acquire() (RowHandle, bool) {
	for n := len(p.free); n > 0; n = len(p.free) {
		h := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		if h.Cells() != p.cells {
			p.discarded++
			continue
		}
		p.recycled++
		return h, true
	}
	return nil, false
}

// Release pushes a handle that is no longer part of any window.
func (p *Pool) Release(h RowHandle) {
	p.free = append(p.free, h)
	p.released++
}

// Len returns the number of handles currently available for reuse.
func (p *Pool) Len() int {
	return len(p.free)
}

// Recycled returns how many acquisitions were served from the pool.
func (p *Pool) Recycled() uint64 { return p.recycled }

// Released returns how many handles were returned to the pool.
func (p *Pool) Released() uint64 { return p.released }

// Reset drops all pooled handles. Called on manager teardown.
func (p *Pool) Reset() {
	p.free = nil
}
