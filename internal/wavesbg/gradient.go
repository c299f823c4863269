package wavesbg

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is one color anchor of a gradient. Alpha is the raw wave opacity and
// may fall outside [0,1].
type Stop struct {
	Offset float64
	Color  RGB
	Alpha  float64
}

// Gradient is a vertical linear gradient from Y0 (offset 0) to Y1 (offset 1).
type Gradient struct {
	Y0, Y1 float64
	Stops  []Stop
}

// NewGradient spans the vertical extent of points and spreads colors evenly
// over it, all at the given opacity. A single color becomes one stop at 0.
func NewGradient(points []Point, colors []RGB, opacity float64) Gradient {
	lo, hi := minMaxY(points)
	g := Gradient{Y0: lo, Y1: hi}

	if len(colors) == 0 {
		return g
	}

	g.Stops = make([]Stop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		g.Stops[i] = Stop{Offset: offset, Color: c, Alpha: opacity}
	}
	return g
}

func minMaxY(points []Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	return lo, hi
}

// At samples the gradient at offset t, clamped to [0,1]. Colors are mixed in
// sRGB space like a 2D canvas does.
func (g Gradient) At(t float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}

	t = clamp(t, 0, 1)
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.nrgba()
	}
	if t >= last.Offset {
		return last.nrgba()
	}

	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.nrgba()
		}
		f := (t - a.Offset) / span
		c := a.colorful().BlendRgb(b.colorful(), f).Clamped()
		r, gg, bb := c.RGB255()
		return color.NRGBA{R: r, G: gg, B: bb, A: alpha8(lerp(a.Alpha, b.Alpha, f))}
	}
	return last.nrgba()
}

// Resample returns a gradient with n evenly spaced stops sampled from g.
func (g Gradient) Resample(n int) Gradient {
	out := Gradient{Y0: g.Y0, Y1: g.Y1}
	if n <= 0 || len(g.Stops) == 0 {
		return out
	}
	if n == 1 {
		out.Stops = []Stop{g.Stops[0]}
		return out
	}

	out.Stops = make([]Stop, n)
	for i := range out.Stops {
		t := float64(i) / float64(n-1)
		c := g.At(t)
		out.Stops[i] = Stop{
			Offset: t,
			Color:  RGB{c.R, c.G, c.B},
			Alpha:  float64(c.A) / 255,
		}
	}
	return out
}

func (s Stop) colorful() colorful.Color {
	return colorful.Color{
		R: float64(s.Color[0]) / 255,
		G: float64(s.Color[1]) / 255,
		B: float64(s.Color[2]) / 255,
	}
}

func (s Stop) nrgba() color.NRGBA {
	return color.NRGBA{R: s.Color[0], G: s.Color[1], B: s.Color[2], A: alpha8(s.Alpha)}
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(clamp(a, 0, 1) * 255))
}
