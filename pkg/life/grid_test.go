package life

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lifecode/pkg/core"
)

func TestInsertBoundaryInclusive(t *testing.T) {
	g := NewBounded(4, 3)

	cases := []struct {
		cell Cell
		kept bool
	}{
		{Cell{X: 0, Y: 0}, true},
		{Cell{X: 3, Y: 2}, true},
		{Cell{X: 4, Y: 3}, true}, // the bound itself is in range
		{Cell{X: 5, Y: 0}, false},
		{Cell{X: 0, Y: 4}, false},
		{Cell{X: -1, Y: 0}, false},
		{Cell{X: 0, Y: -1}, false},
	}

	for _, tc := range cases {
		g.Insert(tc.cell)
		if got := g.Contains(tc.cell); got != tc.kept {
			t.Errorf("insert %v: contains=%v, want %v", tc.cell, got, tc.kept)
		}
	}
}

func TestInsertIdempotent(t *testing.T) {
	g := NewBounded(8, 8)
	g.Insert(Cell{X: 2, Y: 2})
	g.Insert(Cell{X: 2, Y: 2})
	if g.Len() != 1 {
		t.Fatalf("len=%d after duplicate insert, want 1", g.Len())
	}
}

func TestRemove(t *testing.T) {
	g := NewBounded(8, 8)
	g.Insert(Cell{X: 1, Y: 1})
	g.Remove(Cell{X: 1, Y: 1})
	g.Remove(Cell{X: 5, Y: 5}) // absent, no-op
	if g.Len() != 0 {
		t.Fatalf("len=%d after remove, want 0", g.Len())
	}
}

func TestClearKeepsBounds(t *testing.T) {
	g := NewBounded(6, 4)
	g.Insert(Cell{X: 1, Y: 1})
	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("len=%d after clear, want 0", g.Len())
	}
	size, bounded := g.Size()
	if !bounded || size != (core.Size{W: 6, H: 4}) {
		t.Fatalf("size=%v bounded=%v after clear, want {6 4} true", size, bounded)
	}
}

func TestNewBoundedClampsDimensions(t *testing.T) {
	g := NewBounded(0, -3)
	size, _ := g.Size()
	if size != (core.Size{W: 1, H: 1}) {
		t.Fatalf("size=%v, want {1 1}", size)
	}
}

func TestCellsSortedRowMajor(t *testing.T) {
	g := NewBounded(8, 8)
	for _, c := range []Cell{{X: 3, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 7, Y: 0}} {
		g.Insert(c)
	}

	want := []Cell{{X: 7, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 1}, {X: 0, Y: 2}}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := NewBounded(16, 16)
	b := NewBounded(16, 16)
	a.Randomize(core.NewRNG(42).Source(), 0.1)
	b.Randomize(core.NewRNG(42).Source(), 0.1)

	if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
		t.Fatalf("same seed produced different boards (-a +b):\n%s", diff)
	}
}

func TestRandomizeDensityExtremes(t *testing.T) {
	g := NewBounded(8, 8)
	g.Insert(Cell{X: 0, Y: 0})

	g.Randomize(core.NewRNG(1).Source(), 0)
	if g.Len() != 0 {
		t.Fatalf("len=%d at density 0, want 0", g.Len())
	}

	g.Randomize(core.NewRNG(1).Source(), 1)
	if g.Len() != 64 {
		t.Fatalf("len=%d at density 1, want 64", g.Len())
	}
}

func TestRandomizeUnboundedNoop(t *testing.T) {
	g := NewUnbounded()
	g.Insert(Cell{X: 100, Y: 200})
	g.Randomize(core.NewRNG(1).Source(), 1)
	if g.Len() != 1 || !g.Contains(Cell{X: 100, Y: 200}) {
		t.Fatalf("unbounded randomize touched the grid: len=%d", g.Len())
	}
}

func TestParsePattern(t *testing.T) {
	g := ParsePattern([]string{"#  ", " # ", "  #"})

	want := []Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("pattern mismatch (-want +got):\n%s", diff)
	}
	if g.Bounded() {
		t.Fatal("parsed pattern should be unbounded")
	}
}

func TestParsePatternRaggedRows(t *testing.T) {
	g := ParsePattern([]string{"#", "", "   ##"})

	want := []Cell{{X: 0, Y: 0}, {X: 3, Y: 2}, {X: 4, Y: 2}}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("pattern mismatch (-want +got):\n%s", diff)
	}
}
