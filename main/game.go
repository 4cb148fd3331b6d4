package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/config"
	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/fluid"
	"github.com/antoinefournier/Eulerian-Fluid-Simulation/pkg/render"
)

const (
	// maxFrameDelta caps dt after stalls such as window drags.
	maxFrameDelta  = 0.1
	mouseForce     = 50.0
	mouseDensity   = 100.0
	diffusionStep  = 1.0
	fidelityStep   = 5
	maxFidelity    = 200
	defaultTPSRate = 60.0
)

// fieldView selects which field Draw renders.
type fieldView int

const (
	viewDensity fieldView = iota
	viewSpeed
	viewVorticity
	viewPressure
	numViews
)

func (v fieldView) String() string {
	switch v {
	case viewDensity:
		return "density"
	case viewSpeed:
		return "speed"
	case viewVorticity:
		return "vorticity"
	case viewPressure:
		return "pressure"
	}
	return "unknown"
}

type Game struct {
	fluid    *fluid.Fluid
	settings config.Settings

	palettes   []*render.Palette
	paletteIdx int
	view       fieldView
	pixels     []byte

	last         time.Time
	prevX, prevY int
	dragging     bool
}

func NewGame(s config.Settings) (*Game, error) {
	f, err := s.NewFluid()
	if err != nil {
		return nil, err
	}
	g := &Game{
		fluid:    f,
		settings: s,
	}
	for _, name := range render.Names() {
		p, err := render.NewPalette(name)
		if err != nil {
			return nil, err
		}
		if name == s.Palette {
			g.paletteIdx = len(g.palettes)
		}
		g.palettes = append(g.palettes, p)
	}
	return g, nil
}

// frameDelta returns the seconds elapsed since the previous frame. The
// first frame and non-positive intervals fall back to one nominal tick.
func (g *Game) frameDelta(now time.Time) float64 {
	dt := 1.0 / defaultTPSRate
	if !g.last.IsZero() {
		if elapsed := now.Sub(g.last).Seconds(); elapsed > 0 {
			dt = min(elapsed, maxFrameDelta)
		}
	}
	g.last = now
	return dt
}

// cursorToCell maps a position in layout pixels to an interior cell.
func cursorToCell(x, y, n int) (int, int, bool) {
	if x < 0 || x >= n || y < 0 || y >= n {
		return 0, 0, false
	}
	return x + 1, y + 1, true
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handleMouse()
	g.fluid.Update(g.frameDelta(time.Now()))
	return nil
}

func (g *Game) handleMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	x, y := ebiten.CursorPosition()
	cx, cy, ok := cursorToCell(x, y, g.fluid.GridSize())
	if !ok {
		g.dragging = false
		return
	}
	fx, fy := 0.0, 0.0
	if g.dragging {
		fx = float64(cx-g.prevX) * mouseForce
		fy = float64(cy-g.prevY) * mouseForce
	}
	g.fluid.Inject(cx, cy, fx, fy, mouseDensity)
	g.prevX, g.prevY = cx, cy
	g.dragging = true
}

func (g *Game) handleKeys() {
	opts := g.fluid.Options()
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		opts.DiffusionRate = max(0, opts.DiffusionRate-diffusionStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		opts.DiffusionRate += diffusionStep
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		opts.Fidelity = max(1, opts.Fidelity-fidelityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		opts.Fidelity = min(maxFidelity, opts.Fidelity+fidelityStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		opts.Gravity = toggleGravity(opts.Gravity)
	default:
		changed = false
	}
	if changed {
		g.configure(opts)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.fluid.Reset()
		log.Println("Grid reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed(g.settings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.reseed(g.settings.Resized(true))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.reseed(g.settings.Resized(false))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.view = (g.view + 1) % numViews
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.paletteIdx = (g.paletteIdx + 1) % len(g.palettes)
	}
}

func (g *Game) configure(opts fluid.Options) {
	if err := g.fluid.Configure(opts); err != nil {
		log.Printf("Ignoring options: %v", err)
		return
	}
	log.Printf("Options: diffusion %.1f, fidelity %d, gravity (%.2f, %.2f)",
		opts.DiffusionRate, opts.Fidelity, opts.Gravity.X, opts.Gravity.Y)
}

// reseed discards the grid and builds a new one from s, keeping the current
// solver options. A change of size also drops the pixel buffer and resizes
// the window.
func (g *Game) reseed(s config.Settings) {
	s.Fluid = g.fluid.Options()
	f, err := s.NewFluid()
	if err != nil {
		log.Printf("Reseed failed: %v", err)
		return
	}
	if s.Size != g.settings.Size {
		g.pixels = nil
		setWindowSize(s)
	}
	g.fluid = f
	g.settings = s
	log.Printf("Grid reseeded at %dx%d", s.Size, s.Size)
}

func toggleGravity(g fluid.Vec2) fluid.Vec2 {
	if g == (fluid.Vec2{}) {
		return fluid.Vec2{Y: 9.81}
	}
	return fluid.Vec2{}
}

// field returns the view to render and its colour range.
func (g *Game) field() (fluid.ScalarField, float64, float64) {
	switch g.view {
	case viewSpeed:
		s := g.fluid.VelocityMagnitude()
		return s, 0, max(s.MaxValue, 1e-6)
	case viewVorticity:
		s := g.fluid.Vorticity()
		lo, hi := render.SymmetricRange(s)
		return s, lo, hi
	case viewPressure:
		s := g.fluid.Pressure()
		lo, hi := render.SymmetricRange(s)
		return s, lo, hi
	}
	return g.fluid.Density(), 0, 1
}

func (g *Game) Draw(screen *ebiten.Image) {
	n := g.fluid.GridSize()
	if g.pixels == nil {
		g.pixels = make([]byte, n*n*4)
	}
	s, lo, hi := g.field()
	p := g.palettes[g.paletteIdx]
	render.Fill(g.pixels, s, p, lo, hi)
	screen.WritePixels(g.pixels)

	opts := g.fluid.Options()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\n%s / %s\ndiffusion %.1f fidelity %d",
		ebiten.ActualFPS(), g.view, p.Name, opts.DiffusionRate, opts.Fidelity))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.fluid.GridSize()
	return n, n
}

