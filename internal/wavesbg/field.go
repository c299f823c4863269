// Package wavesbg animates a set of sinusoidal bands, each filled with a
// vertical multi-stop gradient, on a surface provided by a host.
package wavesbg

import (
	"errors"
	"log"
	"math/rand/v2"
	"os"
)

var ErrMissingHost = errors.New("wavesbg: container is required")

var ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)

// Host is where a Field lives: it reports the content size, hands out a
// surface and tells when its size changes.
type Host interface {
	// Size returns the content box in logical pixels.
	Size() (width, height int)
	// DeviceScale is the number of device pixels per logical pixel.
	DeviceScale() float64
	// Attach creates a new surface and attaches it to the host.
	Attach() Surface
	// OnResize registers fn to run after a size change. remove unregisters it.
	OnResize(fn func()) (remove func())
}

// Surface is a 2D drawing target addressed in logical pixels.
type Surface interface {
	SetSize(width, height int, scale float64)
	Clear()
	// Fill fills the path built by trace with g.
	Fill(g Gradient, trace func(p Pather))
}

// FrameScheduler runs a callback once, on the next frame.
type FrameScheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// Field is one waves background. It runs until Dispose is called.
type Field struct {
	opts    Options
	host    Host
	surface Surface
	sched   FrameScheduler
	rng     *rand.Rand

	width, height int
	scale         float64
	state         State

	removeResize func()
	cancelFrame  func()
	disposed     bool
}

// New attaches a surface to opts.Container, sizes it, builds the waves and
// requests the first frame. Without a container nothing is created and
// ErrMissingHost is returned.
func New(opts Options, sched FrameScheduler) (*Field, error) {
	if opts.Container == nil {
		ErrorLogger.Print(ErrMissingHost)
		return nil, ErrMissingHost
	}

	f := &Field{
		opts:  opts,
		host:  opts.Container,
		sched: sched,
		rng:   opts.Rand,
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f.surface = f.host.Attach()
	f.removeResize = f.host.OnResize(f.Resize)
	f.Resize()

	f.cancelFrame = f.sched.RequestFrame(f.frame)
	return f, nil
}

// Resize matches the surface to the host and rebuilds every wave. The phase
// offsets are drawn again, so the waves change shape; the tick carries on.
func (f *Field) Resize() {
	if f.disposed {
		return
	}

	f.width, f.height = f.host.Size()
	f.scale = f.host.DeviceScale()
	if f.scale <= 0 {
		f.scale = 1
	}
	f.surface.SetSize(f.width, f.height, f.scale)

	f.state.Waves = InitWaves(float64(f.width), float64(f.height), f.state.Tick, f.opts, f.rng)
}

func (f *Field) frame() {
	f.cancelFrame = nil
	if f.disposed {
		return
	}

	f.surface.Clear()
	f.state = Update(f.state, f.opts)
	for i, wave := range f.state.Waves {
		f.drawWave(wave, Opacity(i))
	}

	f.cancelFrame = f.sched.RequestFrame(f.frame)
}

func (f *Field) drawWave(wave Wave, opacity float64) {
	if len(wave.Points) == 0 {
		return
	}

	g := NewGradient(wave.Points, f.opts.Colors, opacity)
	width, height := float64(f.width), float64(f.height)
	f.surface.Fill(g, func(p Pather) {
		TracePath(p, wave.Points, width, height)
	})
}

// Dispose stops the animation and stops listening for resizes. Calling it
// again does nothing.
func (f *Field) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true

	if f.removeResize != nil {
		f.removeResize()
		f.removeResize = nil
	}
	if f.cancelFrame != nil {
		f.cancelFrame()
		f.cancelFrame = nil
	}
}

// State returns the current animation state.
func (f *Field) State() State {
	return f.state
}

// Size returns the logical size and device scale of the surface.
func (f *Field) Size() (width, height int, scale float64) {
	return f.width, f.height, f.scale
}

// Disposed reports whether Dispose has been called.
func (f *Field) Disposed() bool {
	return f.disposed
}
