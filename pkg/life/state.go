package life

// Neighborhood geometry. Offsets dx and dy range over [0, neighborhoodSpan)
// and stand for the relative positions -1, 0 and +1.
const (
	neighborhoodSpan = 3

	// CenterBit is the position within a neighbor-state code that holds the
	// cell's own state; CenterValue is the code of a live cell whose eight
	// neighbors are all dead.
	CenterBit   = 4
	CenterValue = 1 << CenterBit
)

// StateCode packs the 3x3 neighborhood centered on cell into a rule-table
// index in [0, TableSize). The position at offset (dx, dy) maps to bit
// dx + 3*dy and is set when the cell at (x+dx-1, y+dy-1) is live. Positions
// that would need a negative coordinate count as dead; there is no
// wraparound.
func StateCode(g *Grid, cell Cell) int {
	code := 0
	for dx := 0; dx < neighborhoodSpan; dx++ {
		for dy := 0; dy < neighborhoodSpan; dy++ {
			nx := cell.X + dx - 1
			ny := cell.Y + dy - 1
			if nx < 0 || ny < 0 {
				continue
			}
			if g.Contains(Cell{X: nx, Y: ny}) {
				code |= 1 << (dx + neighborhoodSpan*dy)
			}
		}
	}
	return code
}
