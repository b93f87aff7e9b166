/*
Package mosaic implements the monochrome bitmaps used to draw teletext mosaic
(block graphics) characters in test fixtures.

A mosaic character cell is split into 2 columns by 3 rows of sub-cells and a
6 bit selector lights each of them, bits 0 and 1 for the left and right
sub-cells of the top row, bits 2 and 3 for the middle row and bits 4 and 5 for
the bottom row.

The bitmap is 8 pixels wide and 9 pixels tall, one byte per pixel row with the
most significant bit leftmost, so each sub-cell is a solid block of 4 by 3
pixels filling either the upper or lower nibble of three consecutive bytes.
*/
package mosaic

import (
	"image"
	"image/color"
)

const (
	subCols      = 2
	subRows      = 3
	bandHeight   = 3
	leftNibble   = 0xf0
	rightNibble  = 0x0f
	selectorMask = 0x3f

	// Width and Height are the dimensions in pixels of a rendered Bitmap
	Width  = 8
	Height = subRows * bandHeight

	// NumSelectors is the number of distinct mosaic characters
	NumSelectors = selectorMask + 1
)

// Palette is used for rendered bitmaps, unset pixels take the first color.
var Palette = color.Palette{color.Black, color.White}

// Bitmap is the rendered form of a mosaic character.
type Bitmap [Height]byte

// Encode returns the bitmap for selector. Bits above bit 5 are ignored.
func Encode(selector byte) Bitmap {
	var b Bitmap
	for r := 0; r < subRows; r++ {
		var v byte
		if selector&(1<<(2*r)) != 0 {
			v |= leftNibble
		}
		if selector&(1<<(2*r+1)) != 0 {
			v |= rightNibble
		}
		for y := r * bandHeight; y < (r+1)*bandHeight; y++ {
			b[y] |= v
		}
	}
	return b
}

// Selector returns the selector that encodes to b, reading only the first row
// of each band.
func (b Bitmap) Selector() byte {
	var s byte
	for r := 0; r < subRows; r++ {
		if b[r*bandHeight]&leftNibble != 0 {
			s |= 1 << (2 * r)
		}
		if b[r*bandHeight]&rightNibble != 0 {
			s |= 1 << (2*r + 1)
		}
	}
	return s
}

// Image renders b as a Width by Height image using Palette.
func (b Bitmap) Image() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, Width, Height), Palette)
	b.draw(m, image.Point{})
	return m
}

func (b Bitmap) draw(m *image.Paletted, at image.Point) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			m.SetColorIndex(at.X+x, at.Y+y, b[y]>>(7-x)&1)
		}
	}
}
