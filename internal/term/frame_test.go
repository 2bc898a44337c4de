package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lifecode/pkg/life"
)

func TestFrameRendersWorld(t *testing.T) {
	rule, err := life.LookupRule("void")
	if err != nil {
		t.Fatal(err)
	}
	w := life.New(3, 2, rule)
	w.Set(0, 0)
	w.Set(2, 1)

	f := NewFrame(3, 2)
	w.Render(f)

	want := []string{"█  ", "  █"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
	if f.Line(0) != "█  " {
		t.Fatalf("line 0 = %q", f.Line(0))
	}
}

func TestFrameDropsOutOfRangeWrites(t *testing.T) {
	f := NewFrame(2, 2)
	f.SetGlyph(-1, 0, 'x')
	f.SetGlyph(0, -1, 'x')
	f.SetGlyph(2, 0, 'x')
	f.SetGlyph(0, 2, 'x')

	want := []string{"  ", "  "}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameSize(t *testing.T) {
	f := NewFrame(4, 3)
	w, h := f.Size()
	if w != 4 || h != 3 {
		t.Fatalf("size=%dx%d, want 4x3", w, h)
	}
}
