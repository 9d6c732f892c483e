//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"sand-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     *controlSet
	skip         map[string]bool
	panelOffsetX int
	title        string
	paused       bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, controls: newControlSet(sim, width), skip: map[string]bool{}}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	for _, state := range h.controls.controls {
		h.skip[state.control.Key] = true
	}
	h.title = buildTitle(sim)
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// panel. It reports whether the click was consumed by the HUD.
func (h *HUD) Update(panelOffsetX int, paused bool) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.paused = paused
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	h.controls.refresh(h.snapshot)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	h.controls.click(mx-h.panelOffsetX, my)
	return true
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls.controls {
		state := &h.controls.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.controls.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.controls.canAdjust(state, 1))
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := h.controls.bottom() + infoSpacing
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	for _, line := range statusLines(h.snapshot, h.skip) {
		text.Draw(h.panel, line, face, panelPadding, y, dim)
		y += infoSpacing
	}
	state := "Running"
	if h.paused {
		state = "Paused"
	}
	text.Draw(h.panel, state, face, panelPadding, y+infoSpacing, color.RGBA{R: 235, G: 200, B: 60, A: 255})
	text.Draw(h.panel, "P pause  N step", face, panelPadding, y+2*infoSpacing, dim)
	text.Draw(h.panel, "R new  S replay", face, panelPadding, y+3*infoSpacing, dim)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
