// Package life implements a generalized two-state cellular automaton over
// the 3x3 Moore neighborhood. The next state of every cell is decided by a
// 512-entry lookup table indexed by the packed state of the cell and its
// eight neighbors; tables travel as compact base64 codes, so arbitrary
// automata in the Game-of-Life family can be selected at runtime.
package life

import (
	"math/rand/v2"
	"slices"

	"lifecode/pkg/core"
)

// LiveMarker is the rune ParsePattern recognizes as a live cell.
const LiveMarker = '#'

// Cell addresses one grid position. The origin sits at the top left and
// coordinates never go negative.
type Cell struct {
	X int
	Y int
}

// Grid stores the set of live cells, so memory scales with population
// rather than area. A grid is either unbounded (used for parsed patterns)
// or bounded (used for simulation), fixed at construction.
type Grid struct {
	cells   map[Cell]struct{}
	size    core.Size
	bounded bool
}

// NewUnbounded returns an empty grid that accepts any non-negative cell.
func NewUnbounded() *Grid {
	return &Grid{cells: make(map[Cell]struct{})}
}

// NewBounded returns an empty grid covering the given dimensions.
// Dimensions below 1 are clamped to 1.
func NewBounded(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{
		cells:   make(map[Cell]struct{}),
		size:    core.Size{W: w, H: h},
		bounded: true,
	}
}

// Insert marks a cell live. Cells with a negative coordinate are dropped.
// On a bounded grid the check against the bound is inclusive: a cell at
// exactly (width, height) is kept, anything beyond is silently dropped.
func (g *Grid) Insert(c Cell) {
	if c.X < 0 || c.Y < 0 {
		return
	}
	if g.bounded && (c.X > g.size.W || c.Y > g.size.H) {
		return
	}
	g.cells[c] = struct{}{}
}

// Remove marks a cell dead. Removing an absent cell is a no-op.
func (g *Grid) Remove(c Cell) {
	delete(g.cells, c)
}

// Contains reports whether the given cell is live.
func (g *Grid) Contains(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the live-cell count.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Clear removes every live cell while keeping bounds intact.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Bounded reports whether the grid carries a rectangular bound.
func (g *Grid) Bounded() bool {
	return g.bounded
}

// Size returns the grid dimensions and whether they are meaningful.
// Unbounded grids report a zero size and false.
func (g *Grid) Size() (core.Size, bool) {
	return g.size, g.bounded
}

// Each calls fn for every live cell in unspecified order.
func (g *Grid) Each(fn func(Cell)) {
	for c := range g.cells {
		fn(c)
	}
}

// Cells returns the live cells sorted row-major, top to bottom then left
// to right, so output is stable across runs.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Randomize clears the grid and refills it, making each cell in
// [0,width)x[0,height) live independently with the given probability.
// Unbounded grids are left untouched.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	if !g.bounded {
		return
	}
	g.Clear()
	for x := 0; x < g.size.W; x++ {
		for y := 0; y < g.size.H; y++ {
			if rng.Float64() < density {
				g.Insert(Cell{X: x, Y: y})
			}
		}
	}
}

// ParsePattern builds an unbounded grid from rows of text. The row index is
// y and the character column within a row is x; LiveMarker runes are live
// cells, every other rune is dead.
func ParsePattern(rows []string) *Grid {
	g := NewUnbounded()
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == LiveMarker {
				g.Insert(Cell{X: x, Y: y})
			}
		}
	}
	return g
}
