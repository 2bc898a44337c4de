// Package term is the interactive terminal player: it renders a world into
// a gocui view, runs the generation clock and handles key and mouse input.
package term

// Frame is an in-memory rune board satisfying the world's drawing contract.
// The player renders each generation into a Frame, then colors and writes
// the rows into the board view.
type Frame struct {
	w, h int
	rows [][]rune
}

// NewFrame allocates a blank frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = make([]rune, w)
		for x := range rows[y] {
			rows[y][x] = ' '
		}
	}
	return &Frame{w: w, h: h, rows: rows}
}

// SetGlyph stores the glyph at (x, y). Writes outside the frame are dropped.
func (f *Frame) SetGlyph(x, y int, g rune) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.rows[y][x] = g
}

// Row returns the runes of row y.
func (f *Frame) Row(y int) []rune {
	return f.rows[y]
}

// Line returns row y as a string.
func (f *Frame) Line(y int) string {
	return string(f.rows[y])
}

// Lines returns all rows top to bottom.
func (f *Frame) Lines() []string {
	out := make([]string, f.h)
	for y := range f.rows {
		out[y] = string(f.rows[y])
	}
	return out
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) { return f.w, f.h }
