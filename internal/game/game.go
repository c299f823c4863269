// Package game hosts wave backgrounds in an ebiten window. The window is the
// container, every attached canvas is composited onto the screen in attach
// order and Update is the frame clock.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/waves-background/internal/canvas"
	"github.com/iburimskiy/waves-background/internal/wavesbg"
)

var (
	_ ebiten.Game            = (*Game)(nil)
	_ wavesbg.Host           = (*Game)(nil)
	_ wavesbg.FrameScheduler = (*Game)(nil)
)

type Disposer interface {
	Dispose()
}

type listener struct {
	id int
	fn func()
}

type frameRequest struct {
	fn       func()
	canceled bool
}

type Game struct {
	width, height int
	scale         float64
	deviceScale   func() float64

	background color.Color
	surfaces   []*canvas.Canvas
	widgets    []Disposer

	listeners []listener
	nextID    int
	frames    []*frameRequest

	debug   bool
	started time.Time
}

// New creates a host with an initial logical size, used until ebiten reports
// the real window size.
func New(width, height int, background color.Color) *Game {
	return &Game{
		width:       width,
		height:      height,
		scale:       1,
		deviceScale: monitorScale,
		background:  background,
		started:     time.Now(),
	}
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (g *Game) SetDebug(on bool) { g.debug = on }

// Own registers a widget to dispose when the game quits.
func (g *Game) Own(d Disposer) {
	g.widgets = append(g.widgets, d)
}

func (g *Game) Size() (int, int) { return g.width, g.height }

func (g *Game) DeviceScale() float64 { return g.scale }

func (g *Game) Attach() wavesbg.Surface {
	c := canvas.New()
	g.surfaces = append(g.surfaces, c)
	return c
}

func (g *Game) OnResize(fn func()) (remove func()) {
	id := g.nextID
	g.nextID++
	g.listeners = append(g.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range g.listeners {
			if l.id == id {
				g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

// RequestFrame queues fn for the next Update. Frames requested while the
// queue is running wait for the Update after.
func (g *Game) RequestFrame(fn func()) (cancel func()) {
	r := &frameRequest{fn: fn}
	g.frames = append(g.frames, r)
	return func() { r.canceled = true }
}

func (g *Game) runFrames() {
	queue := g.frames
	g.frames = nil
	for _, r := range queue {
		if !r.canceled {
			r.fn()
		}
	}
}

func (g *Game) notifyResize() {
	// listeners may remove themselves
	ls := append([]listener(nil), g.listeners...)
	for _, l := range ls {
		l.fn()
	}
}

func (g *Game) dispose() {
	for _, w := range g.widgets {
		w.Dispose()
	}
	g.widgets = nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.dispose()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	g.runFrames()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.background != nil {
		screen.Fill(g.background)
	}

	for _, c := range g.surfaces {
		if img := c.Image(); img != nil {
			screen.DrawImage(img, nil)
		}
	}

	if g.debug {
		msg := fmt.Sprintf("TPS %0.1f  FPS %0.1f  %dx%d@%.2g  up %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			g.width, g.height, g.scale,
			formatDuration(time.Since(g.started)))
		ebitenutil.DebugPrintAt(screen, msg, 12, 12)
	}
}

// Layout keeps the screen in device pixels so canvases are drawn 1:1. A change
// of logical size or scale notifies the resize listeners.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := g.deviceScale()
	if scale <= 0 {
		scale = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height || scale != g.scale {
		g.width, g.height, g.scale = outsideWidth, outsideHeight, scale
		g.notifyResize()
	}
	return canvas.DeviceSize(g.width, g.height, g.scale)
}
