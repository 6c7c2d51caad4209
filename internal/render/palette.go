package render

import (
	"image/color"
	"math"

	"dungenon/pkg/faction"
)

const (
	// PaletteSize is the number of distinct display values.
	PaletteSize = 256

	indexVoid    = 0
	indexNeutral = 1
	indexOwned   = 2
)

var (
	voidColor    = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	neutralColor = color.RGBA{R: 96, G: 96, B: 104, A: 255}
)

// FactionPalette returns the display palette: void, neutral, then one colour
// per owned slot. Hues step by the golden angle so neighbouring ids contrast.
func FactionPalette() []color.RGBA {
	palette := make([]color.RGBA, PaletteSize)
	palette[indexVoid] = voidColor
	palette[indexNeutral] = neutralColor
	const golden = 0.618033988749895
	hue := 0.0
	for i := indexOwned; i < PaletteSize; i++ {
		palette[i] = hsv(hue, 0.65, 0.95)
		hue = math.Mod(hue+golden, 1)
	}
	return palette
}

// FactionIndex maps a cell to its palette index. Owned ids wrap around the
// available slots.
func FactionIndex(f faction.Faction) uint8 {
	switch f.Kind() {
	case faction.KindVoid:
		return indexVoid
	case faction.KindNeutral:
		return indexNeutral
	}
	id, _ := f.ID()
	return uint8(indexOwned + id%(PaletteSize-indexOwned))
}

// EncodeFactions writes the palette index of every cell into dst, which must
// be at least as long as cells.
func EncodeFactions(dst []uint8, cells []faction.Faction) {
	for i, f := range cells {
		dst[i] = FactionIndex(f)
	}
}

func hsv(h, s, v float64) color.RGBA {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 255}
}
