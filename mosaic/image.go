package mosaic

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

const sheetColumns = 16

// Sheet renders every mosaic character, sixteen to a row, in selector order.
func Sheet() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, sheetColumns*Width, NumSelectors/sheetColumns*Height), Palette)
	for i, b := range NewSet() {
		b.draw(m, image.Pt(i%sheetColumns*Width, i/sheetColumns*Height))
	}
	return m
}

func luma(c color.Color) int {
	return int(color.GrayModel.Convert(c).(color.Gray).Y)
}

// FromImage recovers the selector of a rendered mosaic character of any size.
// The image is reduced to two colors, the brighter of which counts as lit, and
// a sub-cell is lit when more than half of its pixels are. A paletted image
// with no colors is treated as blank.
func FromImage(m image.Image) byte {
	b := m.Bounds()
	if b.Dx() < subCols || b.Dy() < subRows {
		return 0
	}

	pm, _ := m.(*image.Paletted)
	if pm != nil && len(pm.Palette) == 0 {
		// Nothing to be lit, At returns nil for every pixel
		return 0
	}
	if pm == nil || len(pm.Palette) > 2 {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 2), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	lo, hi := 0xff, 0
	for _, c := range pm.Palette {
		y := luma(c)
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}

	lit := make([]bool, len(pm.Palette))
	for i, c := range pm.Palette {
		if lo == hi {
			lit[i] = lo >= 0x80
		} else {
			lit[i] = luma(c)*2 > lo+hi
		}
	}

	var s byte
	for r := 0; r < subRows; r++ {
		for c := 0; c < subCols; c++ {
			cell := image.Rect(
				b.Min.X+c*b.Dx()/subCols,
				b.Min.Y+r*b.Dy()/subRows,
				b.Min.X+(c+1)*b.Dx()/subCols,
				b.Min.Y+(r+1)*b.Dy()/subRows,
			)

			var n int
			for y := cell.Min.Y; y < cell.Max.Y; y++ {
				for x := cell.Min.X; x < cell.Max.X; x++ {
					if lit[pm.ColorIndexAt(x, y)] {
						n++
					}
				}
			}
			if n*2 > cell.Dx()*cell.Dy() {
				s |= 1 << (2*r + c)
			}
		}
	}

	return s
}
