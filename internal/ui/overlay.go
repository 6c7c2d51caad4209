//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"dungenon/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frontierProvider interface {
	FrontierMask() []float32
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim          core.Sim
	scale        int
	showFrontier bool
	maskImg      *ebiten.Image
	maskBuf      []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFrontier = !o.showFrontier
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showFrontier {
		return
	}
	provider, ok := o.sim.(frontierProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
	}
	if len(o.maskBuf) != 4*total {
		o.maskBuf = make([]byte, 4*total)
	}
	o.drawMask(screen, provider.FrontierMask(), color.RGBA{R: 255, G: 255, B: 255, A: 0})
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	const maxAlpha = 170.0

	for i, v := range mask {
		base := i * 4
		intensity := clamp01(float64(v))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		alpha := math.Round(maxAlpha * intensity)
		// Premultiplied alpha.
		o.maskBuf[base+0] = scaleColorComponent(tint.R, alpha/255)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, alpha/255)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, alpha/255)
		o.maskBuf[base+3] = uint8(alpha)
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
