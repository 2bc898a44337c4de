package life

import (
	"math/rand/v2"

	"lifecode/pkg/core"
)

// Default simulation parameters.
const (
	DefaultWidth  = 64
	DefaultHeight = 32
	DefaultRule   = "drift"
	DefaultSeed   = 1337

	// DefaultDensity is the per-cell live probability used by Randomize.
	DefaultDensity = 0.1

	DefaultLiveGlyph = '█'
	DefaultDeadGlyph = ' '
)

// Surface is the minimal drawing contract World renders onto. Implementors
// map board coordinates to a displayed glyph; writes are assumed to succeed
// for any position inside the board domain.
type Surface interface {
	SetGlyph(x, y int, g rune)
}

// Config bundles the knobs for constructing a World. Zero-valued fields
// fall back to the package defaults. Construction always yields an empty
// board; seeding happens explicitly through Reset, Randomize or Load.
type Config struct {
	Width     int
	Height    int
	Rule      string
	Density   float64
	LiveGlyph rune
	DeadGlyph rune
}

// DefaultConfig returns the stock configuration: a 64x32 board running the
// drift preset seeded at one-in-ten density.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Rule:      DefaultRule,
		Density:   DefaultDensity,
		LiveGlyph: DefaultLiveGlyph,
		DeadGlyph: DefaultDeadGlyph,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.Rule == "" {
		c.Rule = d.Rule
	}
	if c.Density <= 0 {
		c.Density = d.Density
	}
	if c.LiveGlyph == 0 {
		c.LiveGlyph = d.LiveGlyph
	}
	if c.DeadGlyph == 0 {
		c.DeadGlyph = d.DeadGlyph
	}
	return c
}

// World steps a bounded board under a fixed rule. A spare grid double
// buffers generation updates: every next-state decision reads the previous
// generation only, then the two grids swap by reference.
type World struct {
	rule      Rule
	grid      *Grid
	spare     *Grid
	size      core.Size
	density   float64
	liveGlyph rune
	deadGlyph rune
	gen       int
}

// New returns a world with the given dimensions, the given rule and an
// empty board. Dimensions below 1 are clamped to 1.
func New(width, height int, rule Rule) *World {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return newWorld(cfg, rule)
}

// NewWithConfig builds a world from a full configuration, resolving the
// rule by preset name or textual code.
func NewWithConfig(cfg Config) (*World, error) {
	cfg = cfg.withDefaults()
	rule, err := LookupRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	return newWorld(cfg, rule), nil
}

func newWorld(cfg Config, rule Rule) *World {
	grid := NewBounded(cfg.Width, cfg.Height)
	spare := NewBounded(cfg.Width, cfg.Height)
	size, _ := grid.Size()
	return &World{
		rule:      rule,
		grid:      grid,
		spare:     spare,
		size:      size,
		density:   cfg.Density,
		liveGlyph: cfg.LiveGlyph,
		deadGlyph: cfg.DeadGlyph,
	}
}

// Size returns the board dimensions.
func (w *World) Size() core.Size { return w.size }

// Rule returns the rule the world steps under.
func (w *World) Rule() Rule { return w.rule }

// Generation returns how many steps have been applied since the last seed.
func (w *World) Generation() int { return w.gen }

// Glyphs returns the live and dead glyphs Render writes.
func (w *World) Glyphs() (live, dead rune) { return w.liveGlyph, w.deadGlyph }

// Population returns the live-cell count.
func (w *World) Population() int { return w.grid.Len() }

// Contains reports whether the cell at (x, y) is live.
func (w *World) Contains(x, y int) bool {
	return w.grid.Contains(Cell{X: x, Y: y})
}

// LiveCells returns the live cells sorted row-major.
func (w *World) LiveCells() []Cell { return w.grid.Cells() }

// Set marks the cell at (x, y) live, subject to the board bounds.
func (w *World) Set(x, y int) {
	w.grid.Insert(Cell{X: x, Y: y})
}

// Toggle flips the cell at (x, y) between live and dead.
func (w *World) Toggle(x, y int) {
	c := Cell{X: x, Y: y}
	if w.grid.Contains(c) {
		w.grid.Remove(c)
		return
	}
	w.grid.Insert(c)
}

// Clear empties the board and rewinds the generation counter.
func (w *World) Clear() {
	w.grid.Clear()
	w.gen = 0
}

// Load copies every live cell of a pattern onto the board. Cells outside
// the board bounds are dropped; existing live cells are kept.
func (w *World) Load(pattern *Grid) {
	pattern.Each(func(c Cell) {
		w.grid.Insert(c)
	})
}

// Randomize reseeds the board in place from the supplied generator at the
// configured density and rewinds the generation counter.
func (w *World) Randomize(rng *rand.Rand) {
	w.grid.Randomize(rng, w.density)
	w.gen = 0
}

// Reset repopulates the board deterministically from the given seed.
func (w *World) Reset(seed int64) {
	w.Randomize(core.NewRNG(seed).Source())
}

// Step advances the simulation by one generation. The spare grid is
// cleared and receives the survivors while every neighbor-state code is
// computed against the untouched current grid; the sweep covers the full
// [0,width)x[0,height) domain and the grids swap once it completes.
func (w *World) Step() {
	w.spare.Clear()
	for x := 0; x < w.size.W; x++ {
		for y := 0; y < w.size.H; y++ {
			c := Cell{X: x, Y: y}
			if w.rule.Alive(StateCode(w.grid, c)) {
				w.spare.Insert(c)
			}
		}
	}
	w.grid, w.spare = w.spare, w.grid
	w.gen++
}

// Render writes one glyph per board cell onto the surface, the live glyph
// for live cells and the dead glyph for everything else.
func (w *World) Render(s Surface) {
	for x := 0; x < w.size.W; x++ {
		for y := 0; y < w.size.H; y++ {
			if w.grid.Contains(Cell{X: x, Y: y}) {
				s.SetGlyph(x, y, w.liveGlyph)
			} else {
				s.SetGlyph(x, y, w.deadGlyph)
			}
		}
	}
}

// Fill writes the board into dst as row-major cell values, one byte per
// cell, 1 for live and 0 for dead. dst must hold Width*Height entries.
func (w *World) Fill(dst []uint8) {
	clear(dst)
	w.grid.Each(func(c Cell) {
		if c.X < w.size.W && c.Y < w.size.H {
			dst[c.Y*w.size.W+c.X] = 1
		}
	})
}
