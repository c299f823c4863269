package wavesbg

import "golang.org/x/exp/constraints"

func clamp[T constraints.Float | constraints.Integer](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}
