package wavesbg

import (
	"math"
	"math/rand/v2"
)

const (
	// PointStep is the horizontal distance between wave points, in logical pixels.
	PointStep = 5

	spreadRatio = 0.7
	maxPhase    = 100
)

// Point is one sample of a wave. Only Y changes after the wave is built.
type Point struct {
	X           float64
	Y           float64
	BaselineY   float64
	PhaseOffset float64
}

type Wave struct {
	Points []Point
	Spread float64
}

// State is everything that changes from frame to frame.
type State struct {
	Tick  float64
	Waves []Wave
}

// PointCount returns how many points a wave has on a canvas of the given width.
func PointCount(width float64) int {
	if width < 0 {
		return 0
	}
	return int(math.Floor(width/PointStep)) + 1
}

func waveY(p Point, spread, tick float64, opts Options) float64 {
	return p.BaselineY + math.Sin(p.X*opts.Frequency+p.PhaseOffset+tick)*(opts.Amplitude*spread)
}

// InitWaves builds opts.Waves fresh waves for a width x height canvas, each
// with its own random phase offset, positioned for the given tick.
func InitWaves(width, height, tick float64, opts Options, rng *rand.Rand) []Wave {
	if opts.Waves <= 0 {
		return nil
	}

	n := PointCount(width)
	waves := make([]Wave, 0, opts.Waves)
	for range opts.Waves {
		baseY := height / 2
		spread := height * spreadRatio
		offset := rng.Float64() * maxPhase

		points := make([]Point, n)
		for i := range points {
			p := Point{
				X:           float64(i * PointStep),
				BaselineY:   baseY,
				PhaseOffset: offset,
			}
			p.Y = waveY(p, spread, tick, opts)
			points[i] = p
		}
		waves = append(waves, Wave{Points: points, Spread: spread})
	}
	return waves
}

// Update advances the tick by opts.Speed and moves every point to its new Y.
// The input state is not modified.
// All waves are driven by the same tick, so they move in lockstep.
func Update(s State, opts Options) State {
	next := State{
		Tick:  s.Tick + opts.Speed,
		Waves: make([]Wave, len(s.Waves)),
	}

	for w, wave := range s.Waves {
		points := make([]Point, len(wave.Points))
		for i, p := range wave.Points {
			p.Y = waveY(p, wave.Spread, next.Tick, opts)
			points[i] = p
		}
		next.Waves[w] = Wave{Points: points, Spread: wave.Spread}
	}
	return next
}

// Opacity is the fill alpha of the wave at index. It is not clamped and goes
// negative from the sixth wave on.
func Opacity(index int) float64 {
	return 0.6 - float64(index)*0.15
}
