package wavesbg

import "math/rand/v2"

// RGB is a color as three 0-255 channels.
type RGB [3]uint8

// Options configures a Field. Start from DefaultOptions and override fields;
// zero values are taken literally.
type Options struct {
	// Container is the host the canvas is attached to. Required.
	Container Host

	Colors    []RGB
	Waves     int
	Speed     float64 // phase advance per tick, radians
	Amplitude float64 // fraction of the spread
	Frequency float64 // radians per horizontal pixel

	// Rand draws the per-wave phase offsets. Nil means a randomly seeded source.
	Rand *rand.Rand
}

func DefaultOptions() Options {
	return Options{
		Colors: []RGB{
			{62, 35, 255},
			{60, 255, 242},
			{255, 35, 98},
		},
		Waves:     3,
		Speed:     0.004,
		Amplitude: 0.7,
		Frequency: 0.005,
	}
}
