// Package canvas is an ebiten backed drawing surface for wave backgrounds.
package canvas

import (
	"log"
	"math"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/waves-background/internal/wavesbg"
)

var ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)

// Canvas is an offscreen image sized in device pixels and drawn to in
// logical pixels.
type Canvas struct {
	img           *eb.Image
	width, height int
	scale         float64

	// reused between fills
	path     ebv.Path
	vertices []eb.Vertex
	indices  []uint16
}

func New() *Canvas {
	return &Canvas{scale: 1}
}

// SetSize reallocates the backing image. The previous content is lost.
func (c *Canvas) SetSize(width, height int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.width, c.height, c.scale = width, height, scale

	pw, ph := DeviceSize(width, height, scale)
	if c.img != nil {
		b := c.img.Bounds()
		if b.Dx() == pw && b.Dy() == ph {
			c.img.Clear()
			return
		}
		c.img.Deallocate()
	}
	c.img = eb.NewImage(pw, ph)
}

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// Fill fills the path built by trace with a vertical gradient. Gradients with
// more than MaxStops stops are resampled.
func (c *Canvas) Fill(g wavesbg.Gradient, trace func(p wavesbg.Pather)) {
	if c.img == nil || len(g.Stops) == 0 {
		return
	}

	shader, err := loadGradientShader()
	if err != nil {
		ErrorLogger.Printf("failed to load the gradient shader %v", err)
		return
	}

	c.path = ebv.Path{}
	trace(&c.path)

	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	if len(c.indices) == 0 {
		return
	}
	ScaleVertices(c.vertices, c.scale)

	op := &eb.DrawTrianglesShaderOptions{}
	op.Uniforms = GradientUniforms(g, c.scale)
	op.FillRule = eb.FillRuleNonZero
	op.AntiAlias = true
	c.img.DrawTrianglesShader(c.vertices, c.indices, shader, op)
}

// Image is the backing image, nil before the first SetSize.
func (c *Canvas) Image() *eb.Image {
	return c.img
}

// Size returns the logical size and scale last passed to SetSize.
func (c *Canvas) Size() (width, height int, scale float64) {
	return c.width, c.height, c.scale
}

// ScaleVertices moves vertices from logical to device pixels in place.
func ScaleVertices(vertices []eb.Vertex, scale float64) {
	s := float32(scale)
	for i := range vertices {
		vertices[i].DstX *= s
		vertices[i].DstY *= s
	}
}

// DeviceSize converts a logical size to device pixels, never below 1x1.
func DeviceSize(width, height int, scale float64) (int, int) {
	pw := int(math.Ceil(float64(width) * scale))
	ph := int(math.Ceil(float64(height) * scale))
	return max(pw, 1), max(ph, 1)
}

// GradientUniforms packs g into the shader's uniforms, in device pixels.
func GradientUniforms(g wavesbg.Gradient, scale float64) map[string]any {
	if len(g.Stops) > MaxStops {
		g = g.Resample(MaxStops)
	}

	offsets := make([]float32, MaxStops)
	colors := make([]float32, MaxStops*4)
	for i, stop := range g.Stops {
		a := float32(min(max(stop.Alpha, 0), 1))
		offsets[i] = float32(stop.Offset)
		colors[i*4+0] = float32(stop.Color[0]) / 255 * a
		colors[i*4+1] = float32(stop.Color[1]) / 255 * a
		colors[i*4+2] = float32(stop.Color[2]) / 255 * a
		colors[i*4+3] = a
	}

	return map[string]any{
		"Y0":          float32(g.Y0 * scale),
		"Y1":          float32(g.Y1 * scale),
		"StopCount":   float32(len(g.Stops)),
		"StopOffsets": offsets,
		"StopColors":  colors,
	}
}
