//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifecode/internal/render"
	"lifecode/internal/ui"
	"lifecode/pkg/core"
	"lifecode/pkg/life"
)

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	world   *life.World
	painter *render.GridPainter
	cells   []uint8
	hud     *ui.HUD
	clock   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game around a prepared world. The caller seeds the
// world beforehand; seed is what the R key replays.
func New(world *life.World, scale int, seed int64, tps int) *Game {
	if scale < 1 {
		scale = 1
	}
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(size.W, size.H),
		cells:    make([]uint8, size.W*size.H),
		hud:      ui.NewHUD(),
		clock:    core.NewFixedStep(tps),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reseeds the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.clock.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.paused {
		g.paused = false
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.world.Toggle(mx/g.scale, my/g.scale)
	}

	if g.hud != nil {
		g.hud.Update()
	}

	if (!g.paused && g.clock.ShouldStep()) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Fill(g.cells)
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.world, g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
