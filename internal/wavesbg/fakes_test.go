package wavesbg

import "math/rand/v2"

type fakeHost struct {
	width, height int
	scale         float64
	surfaces      []*fakeSurface
	listeners     map[int]func()
	nextID        int
}

func newFakeHost(width, height int) *fakeHost {
	return &fakeHost{width: width, height: height, scale: 1, listeners: map[int]func(){}}
}

func (h *fakeHost) Size() (int, int)     { return h.width, h.height }
func (h *fakeHost) DeviceScale() float64 { return h.scale }

func (h *fakeHost) Attach() Surface {
	s := &fakeSurface{}
	h.surfaces = append(h.surfaces, s)
	return s
}

func (h *fakeHost) OnResize(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

func (h *fakeHost) resize(width, height int) {
	h.width, h.height = width, height
	for _, fn := range h.listeners {
		fn()
	}
}

type fill struct {
	gradient Gradient
	path     *recordingPath
}

type fakeSurface struct {
	width, height int
	scale         float64
	clears        int
	fills         []fill
}

func (s *fakeSurface) SetSize(width, height int, scale float64) {
	s.width, s.height, s.scale = width, height, scale
}

func (s *fakeSurface) Clear() {
	s.clears++
	s.fills = s.fills[:0]
}

func (s *fakeSurface) Fill(g Gradient, trace func(p Pather)) {
	p := &recordingPath{}
	trace(p)
	s.fills = append(s.fills, fill{gradient: g, path: p})
}

type pathOp struct {
	op   string
	args []float32
}

type recordingPath struct {
	ops []pathOp
}

func (p *recordingPath) MoveTo(x, y float32) {
	p.ops = append(p.ops, pathOp{"move", []float32{x, y}})
}

func (p *recordingPath) QuadTo(x1, y1, x2, y2 float32) {
	p.ops = append(p.ops, pathOp{"quad", []float32{x1, y1, x2, y2}})
}

func (p *recordingPath) LineTo(x, y float32) {
	p.ops = append(p.ops, pathOp{"line", []float32{x, y}})
}

func (p *recordingPath) Close() {
	p.ops = append(p.ops, pathOp{op: "close"})
}

// manualScheduler holds requested frames until step is called.
type manualScheduler struct {
	pending []*frameReq
}

type frameReq struct {
	fn       func()
	canceled bool
}

func (m *manualScheduler) RequestFrame(fn func()) func() {
	r := &frameReq{fn: fn}
	m.pending = append(m.pending, r)
	return func() { r.canceled = true }
}

func (m *manualScheduler) step() {
	queue := m.pending
	m.pending = nil
	for _, r := range queue {
		if !r.canceled {
			r.fn()
		}
	}
}

func (m *manualScheduler) live() int {
	n := 0
	for _, r := range m.pending {
		if !r.canceled {
			n++
		}
	}
	return n
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
