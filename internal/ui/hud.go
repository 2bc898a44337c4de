//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifecode/pkg/life"
)

// HUD draws a one-line status readout over the board.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update toggles visibility on the H key.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the status line in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, w *life.World, paused bool) {
	if h == nil || !h.visible || w == nil {
		return
	}
	mode := "running"
	if paused {
		mode = "paused"
	}
	msg := fmt.Sprintf("rule %s  gen %d  pop %d  [%s]",
		w.Rule().Encode(), w.Generation(), w.Population(), mode)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
