package grid

import "testing"

func TestPoolLIFO(t *testing.T) {
	t.Parallel()

	p := NewPool(3)
	a := &fakeHandle{cells: make([]string, 3)}
	b := &fakeHandle{cells: make([]string, 3)}
	p.Release(a)
	p.Release(b)

	got, ok := p.Acquire()
	if !ok || got != RowHandle(b) {
		t.Fatalf("first Acquire = %v ok=%v, want most recently released handle", got, ok)
	}
	got, ok = p.Acquire()
	if !ok || got != RowHandle(a) {
		t.Fatalf("second Acquire = %v ok=%v, want first released handle", got, ok)
	}
	if _, ok := p.Acquire(); ok {
		t.Fatalf("Acquire on empty pool reported a handle")
	}
}

func TestPoolDiscardsStaleCellCount(t *testing.T) {
	t.Parallel()

	p := NewPool(3)
	p.Release(&fakeHandle{cells: make([]string, 5)}) // built for a different column count
	fresh := &fakeHandle{cells: make([]string, 3)}
	p.Release(&fakeHandle{cells: make([]string, 2)})
	p.Release(fresh)

	got, ok := p.Acquire()
	if !ok || got != RowHandle(fresh) {
		t.Fatalf("Acquire = %v ok=%v, want the matching handle", got, ok)
	}
	if _, ok := p.Acquire(); ok {
		t.Fatalf("stale handles should be discarded, not reused")
	}
	if p.Len() != 0 {
		t.Fatalf("Len = %d after draining, want 0", p.Len())
	}
}

func TestPoolReset(t *testing.T) {
	t.Parallel()

	p := NewPool(1)
	p.Release(&fakeHandle{cells: make([]string, 1)})
	p.Reset()
	if p.Len() != 0 {
		t.Fatalf("Len = %d after Reset, want 0", p.Len())
	}
}
