package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

// Fade draws a black overlay that clears over Duration seconds. It is
// cosmetic only; the world keeps stepping underneath.
type Fade struct {
	Duration float64
	left     float64
	overlay  *ebiten.Image
}

func NewFade(duration float64) *Fade {
	overlay := ebiten.NewImage(1, 1)
	overlay.Fill(color.Black)
	return &Fade{Duration: duration, overlay: overlay}
}

// Start restarts the fade from fully black.
func (f *Fade) Start() {
	f.left = f.Duration
}

func (f *Fade) Update(dt float64) {
	common.Countdown(&f.left, dt)
}

func (f *Fade) Active() bool { return f.left > 0 }

func (f *Fade) Draw(screen *ebiten.Image) {
	if !f.Active() || f.Duration <= 0 {
		return
	}
	alpha := f.left / f.Duration

	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(f.overlay, op)
}
