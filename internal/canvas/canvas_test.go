package canvas

import (
	"testing"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/waves-background/internal/wavesbg"
)

func TestDeviceSize(t *testing.T) {
	tests := []struct {
		w, h   int
		scale  float64
		pw, ph int
	}{
		{300, 150, 1, 300, 150},
		{300, 150, 2, 600, 300},
		{101, 33, 1.5, 152, 50},
		{0, 0, 1, 1, 1},
	}
	for _, tt := range tests {
		pw, ph := DeviceSize(tt.w, tt.h, tt.scale)
		if pw != tt.pw || ph != tt.ph {
			t.Errorf("DeviceSize(%d, %d, %v) = %d, %d, want %d, %d", tt.w, tt.h, tt.scale, pw, ph, tt.pw, tt.ph)
		}
	}
}

func TestGradientUniforms(t *testing.T) {
	g := wavesbg.Gradient{
		Y0: 10,
		Y1: 40,
		Stops: []wavesbg.Stop{
			{Offset: 0, Color: wavesbg.RGB{255, 0, 0}, Alpha: 0.5},
			{Offset: 1, Color: wavesbg.RGB{0, 0, 255}, Alpha: 0.5},
		},
	}

	u := GradientUniforms(g, 2)

	if u["Y0"] != float32(20) || u["Y1"] != float32(80) {
		t.Errorf("bounds = %v, %v, want 20, 80", u["Y0"], u["Y1"])
	}
	if u["StopCount"] != float32(2) {
		t.Errorf("StopCount = %v, want 2", u["StopCount"])
	}

	offsets := u["StopOffsets"].([]float32)
	if len(offsets) != MaxStops || offsets[0] != 0 || offsets[1] != 1 {
		t.Errorf("offsets = %v", offsets)
	}

	colors := u["StopColors"].([]float32)
	if len(colors) != MaxStops*4 {
		t.Fatalf("got %d color floats, want %d", len(colors), MaxStops*4)
	}
	want := []float32{0.5, 0, 0, 0.5, 0, 0, 0.5, 0.5}
	for i, w := range want {
		if colors[i] != w {
			t.Errorf("colors[%d] = %v, want %v", i, colors[i], w)
		}
	}
}

func TestGradientUniformsClampsAlpha(t *testing.T) {
	g := wavesbg.Gradient{Stops: []wavesbg.Stop{
		{Offset: 0, Color: wavesbg.RGB{255, 255, 255}, Alpha: -0.15},
	}}
	colors := GradientUniforms(g, 1)["StopColors"].([]float32)
	for i := 0; i < 4; i++ {
		if colors[i] != 0 {
			t.Errorf("colors[%d] = %v, want 0", i, colors[i])
		}
	}
}

func TestGradientUniformsResamples(t *testing.T) {
	stops := make([]wavesbg.Stop, 20)
	for i := range stops {
		stops[i] = wavesbg.Stop{Offset: float64(i) / 19, Color: wavesbg.RGB{uint8(i * 10), 0, 0}, Alpha: 1}
	}

	u := GradientUniforms(wavesbg.Gradient{Y1: 1, Stops: stops}, 1)

	if u["StopCount"] != float32(MaxStops) {
		t.Errorf("StopCount = %v, want %d", u["StopCount"], MaxStops)
	}
	offsets := u["StopOffsets"].([]float32)
	if offsets[MaxStops-1] != 1 {
		t.Errorf("last offset = %v, want 1", offsets[MaxStops-1])
	}
}

func TestScaleVertices(t *testing.T) {
	vs := []eb.Vertex{
		{DstX: 0, DstY: 0, SrcX: 1, SrcY: 1, ColorA: 1},
		{DstX: 10, DstY: 2.5, SrcX: 1, SrcY: 1, ColorA: 1},
		{DstX: 300, DstY: 150, SrcX: 1, SrcY: 1, ColorA: 1},
	}

	ScaleVertices(vs, 2)

	want := [][2]float32{{0, 0}, {20, 5}, {600, 300}}
	for i, w := range want {
		if vs[i].DstX != w[0] || vs[i].DstY != w[1] {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", i, vs[i].DstX, vs[i].DstY, w[0], w[1])
		}
		if vs[i].SrcX != 1 || vs[i].SrcY != 1 || vs[i].ColorA != 1 {
			t.Errorf("vertex %d: non-position fields changed: %+v", i, vs[i])
		}
	}
}

func TestScaleVerticesTracedBand(t *testing.T) {
	points := []wavesbg.Point{{X: 0, Y: 10}, {X: 5, Y: 20}, {X: 10, Y: 10}}

	var p ebv.Path
	wavesbg.TracePath(&p, points, 10, 40)
	vs, _ := p.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(vs) == 0 {
		t.Fatal("no vertices for the traced band")
	}

	ScaleVertices(vs, 2)

	var maxX, maxY float32
	for _, v := range vs {
		maxX = max(maxX, v.DstX)
		maxY = max(maxY, v.DstY)
	}
	if maxX != 20 || maxY != 80 {
		t.Errorf("scaled extent = (%v, %v), want (20, 80)", maxX, maxY)
	}
}
