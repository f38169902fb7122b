package grid

import (
	"errors"
	"fmt"
)

// fakeHandle is a test row container that remembers its cell contents and
// position.
type fakeHandle struct {
	cells    []string
	offset   int
	attached bool
}

func (h *fakeHandle) Cells() int { return len(h.cells) }

// fakeSurface implements Surface and counts every operation so tests can
// assert the exact diff cost of an update.
type fakeSurface struct {
	metrics    Metrics
	metricsErr error

	attached map[*fakeHandle]struct{}

	constructions int
	attaches      int
	detaches      int
	sentinels     []int // history of PlaceSentinel offsets

	constructErr error
	attachErr    error
	detachErr    error
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{attached: make(map[*fakeHandle]struct{})}
}

func (s *fakeSurface) NewRowContainer(cells int) (RowHandle, error) {
	if s.constructErr != nil {
		return nil, s.constructErr
	}
	s.constructions++
	return &fakeHandle{cells: make([]string, cells)}, nil
}

func (s *fakeSurface) Attach(h RowHandle) error {
	if s.attachErr != nil {
		return s.attachErr
	}
	fh := h.(*fakeHandle)
	if fh.attached {
		return errors.New("attach of already-attached handle")
	}
	fh.attached = true
	s.attached[fh] = struct{}{}
	s.attaches++
	return nil
}

func (s *fakeSurface) Detach(h RowHandle) error {
	if s.detachErr != nil {
		return s.detachErr
	}
	fh := h.(*fakeHandle)
	if !fh.attached {
		return errors.New("detach of unattached handle")
	}
	fh.attached = false
	delete(s.attached, fh)
	s.detaches++
	return nil
}

func (s *fakeSurface) SetOffset(h RowHandle, px int) {
	h.(*fakeHandle).offset = px
}

func (s *fakeSurface) SetCell(h RowHandle, col int, text string) {
	h.(*fakeHandle).cells[col] = text
}

func (s *fakeSurface) Metrics() (Metrics, error) {
	if s.metricsErr != nil {
		return Metrics{}, s.metricsErr
	}
	return s.metrics, nil
}

func (s *fakeSurface) PlaceSentinel(px int) error {
	s.sentinels = append(s.sentinels, px)
	return nil
}

// resetCounters zeroes the operation counters so a test can measure one
// update in isolation.
func (s *fakeSurface) resetCounters() {
	s.constructions = 0
	s.attaches = 0
	s.detaches = 0
}

// rowAt returns the attached handle positioned for row r, if any.
func (s *fakeSurface) rowAt(r, extent int) (*fakeHandle, bool) {
	for h := range s.attached {
		if h.offset == r*extent {
			return h, true
		}
	}
	return nil, false
}

// fakeSource produces "r<row>c<col>" values and can be told to fail for
// specific cells.
type fakeSource struct {
	columns int
	fail    map[[2]int]error
	calls   int
}

func (s *fakeSource) Columns() int { return s.columns }

func (s *fakeSource) Item(row, col int) (string, error) {
	s.calls++
	if err, ok := s.fail[[2]int{row, col}]; ok {
		return "", err
	}
	return fmt.Sprintf("r%dc%d", row, col), nil
}
