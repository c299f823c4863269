package canvas

import (
	"sync"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// MaxStops is the number of gradient stops the shader takes.
const MaxStops = 8

// Evaluates a vertical gradient between Y0 and Y1 at each destination pixel.
// Stop colors are premultiplied.
const gradientShaderCode = `//kage:unit pixels

package main

var Y0 float
var Y1 float
var StopCount float
var StopOffsets [8]float
var StopColors [8]vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	y := dstPos.y - imageDstOrigin().y

	t := 0.0
	if Y1 != Y0 {
		t = clamp((y-Y0)/(Y1-Y0), 0, 1)
	}

	c := StopColors[0]
	for i := 1; i < 8; i++ {
		if float(i) < StopCount {
			lo := StopOffsets[i-1]
			hi := StopOffsets[i]
			if t >= hi {
				c = StopColors[i]
			} else if t > lo {
				c = mix(StopColors[i-1], StopColors[i], (t-lo)/(hi-lo))
			}
		}
	}
	return c
}
`

var (
	gradientShaderOnce sync.Once
	gradientShader     *eb.Shader
	gradientShaderErr  error
)

func loadGradientShader() (*eb.Shader, error) {
	gradientShaderOnce.Do(func() {
		gradientShader, gradientShaderErr = eb.NewShader([]byte(gradientShaderCode))
	})
	return gradientShader, gradientShaderErr
}
