package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"dungenon/pkg/faction"
	"dungenon/pkg/level"
)

// Image converts palette-indexed cells into an RGBA image of w x h pixels.
func Image(cells []uint8, w, h int, palette []color.RGBA) (*image.RGBA, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("render: %d cells do not fill %dx%d", len(cells), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPaletteRGBA(img.Pix, cells, palette)
	return img, nil
}

// WriteFactionPNG encodes l as a PNG with one pixel per cell.
func WriteFactionPNG(out io.Writer, l *level.Level[faction.Faction]) error {
	cells := make([]uint8, len(l.Cells()))
	EncodeFactions(cells, l.Cells())
	img, err := Image(cells, l.Width(), l.Height(), FactionPalette())
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
