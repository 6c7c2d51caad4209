package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"dungenon/pkg/faction"
	"dungenon/pkg/level"
)

func TestFillPaletteRGBAClampsToLastEntry(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
	fillPaletteRGBA(buf, []uint8{0, 1, 2}, nil)
	if !bytes.Equal(buf, make([]byte, 12)) {
		t.Fatal("empty palette should clear the buffer")
	}
}

func TestFactionIndex(t *testing.T) {
	if FactionIndex(faction.Void) != indexVoid || FactionIndex(faction.Neutral) != indexNeutral {
		t.Fatal("special states must map to reserved slots")
	}
	if FactionIndex(faction.Owned(0)) != indexOwned {
		t.Fatal("first faction should use the first owned slot")
	}
	if FactionIndex(faction.Owned(PaletteSize-indexOwned)) != indexOwned {
		t.Fatal("ids should wrap around the owned slots")
	}
}

func TestPaletteColoursAreDistinct(t *testing.T) {
	palette := FactionPalette()
	if len(palette) != PaletteSize {
		t.Fatalf("palette has %d entries", len(palette))
	}
	for i := indexOwned; i < indexOwned+16; i++ {
		if palette[i] == palette[i+1] {
			t.Fatalf("adjacent faction colours %d and %d are equal", i, i+1)
		}
		if palette[i].A != 255 {
			t.Fatalf("colour %d is not opaque", i)
		}
	}
}

func TestWriteFactionPNG(t *testing.T) {
	l := level.NewFilledWith(faction.Neutral, 3, 2)
	_ = l.SetTile(0, 0, faction.Void)
	_ = l.SetTile(2, 1, faction.Owned(4))

	var buf bytes.Buffer
	if err := WriteFactionPNG(&buf, l); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", b)
	}
	palette := FactionPalette()
	check := func(x, y int, want color.RGBA) {
		r, g, b, a := img.At(x, y).RGBA()
		got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
		if got != want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
		}
	}
	check(0, 0, palette[indexVoid])
	check(1, 0, palette[indexNeutral])
	check(2, 1, palette[FactionIndex(faction.Owned(4))])
}

func TestImageRejectsShortCells(t *testing.T) {
	if _, err := Image(make([]uint8, 5), 3, 2, FactionPalette()); err == nil {
		t.Fatal("expected an error for mismatched cell count")
	}
}
