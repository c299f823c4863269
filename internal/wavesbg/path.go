package wavesbg

// Pather receives path construction commands. *vector.Path from ebiten
// satisfies it.
type Pather interface {
	MoveTo(x, y float32)
	QuadTo(x1, y1, x2, y2 float32)
	LineTo(x, y float32)
	Close()
}

// TracePath outlines the band between a wave and the bottom of a width x
// height canvas. The curve goes through each point as a control point and ends
// each segment at the midpoint with the next one, which smooths the polyline.
func TracePath(p Pather, points []Point, width, height float64) {
	if len(points) == 0 {
		return
	}

	p.MoveTo(float32(points[0].X), float32(points[0].Y))
	for i := 0; i < len(points)-1; i++ {
		curr, next := points[i], points[i+1]
		midX := (curr.X + next.X) / 2
		midY := (curr.Y + next.Y) / 2
		p.QuadTo(float32(curr.X), float32(curr.Y), float32(midX), float32(midY))
	}

	p.LineTo(float32(width), float32(height))
	p.LineTo(0, float32(height))
	p.Close()
}
