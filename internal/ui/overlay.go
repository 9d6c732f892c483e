//go:build ebiten

package ui

import (
	"image/color"

	"sand-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay highlights the cell under the cursor and dims the view while
// paused.
type Overlay struct {
	size   core.Size
	scale  int
	pixel  *ebiten.Image
	col    int
	row    int
	hover  bool
	paused bool
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update records the cursor cell and pause state for the next Draw.
func (o *Overlay) Update(paused bool) {
	o.paused = paused
	mx, my := ebiten.CursorPosition()
	o.col, o.row = mx/o.scale, my/o.scale
	_, _, o.hover = o.size.FromScreen(o.col, o.row)
	if mx < 0 || my < 0 {
		o.hover = false
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.paused {
		o.fill(screen, 0, 0, o.size.W*o.scale, o.size.H*o.scale, color.RGBA{A: 96})
	}
	if o.hover {
		o.fill(screen, o.col*o.scale, o.row*o.scale, o.scale, o.scale, color.RGBA{R: 80, G: 80, B: 80, A: 80})
	}
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
