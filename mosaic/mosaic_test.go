package mosaic

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	for _, tc := range []struct {
		selector byte
		want     Bitmap
	}{
		{0, Bitmap{}},
		{63, Bitmap{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{1, Bitmap{0xf0, 0xf0, 0xf0, 0, 0, 0, 0, 0, 0}},
		{2, Bitmap{0x0f, 0x0f, 0x0f, 0, 0, 0, 0, 0, 0}},
		{12, Bitmap{0, 0, 0, 0xff, 0xff, 0xff, 0, 0, 0}},
		{32, Bitmap{0, 0, 0, 0, 0, 0, 0x0f, 0x0f, 0x0f}},
		{0x40 | 1, Bitmap{0xf0, 0xf0, 0xf0, 0, 0, 0, 0, 0, 0}},
		{0xff, Bitmap{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	} {
		assert.Equal(t, tc.want, Encode(tc.selector), "selector %d", tc.selector)
	}
}

func TestSelector(t *testing.T) {
	for i := 0; i < NumSelectors; i++ {
		assert.Equal(t, byte(i), Encode(byte(i)).Selector())
	}
}

func TestSetMarshalBinary(t *testing.T) {
	b, err := NewSet().MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 576)

	for i := 0; i < NumSelectors; i++ {
		want := Encode(byte(i))
		assert.Equal(t, want[:], b[i*Height:(i+1)*Height])
	}
}

func TestSetWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewSet().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(SetSize), n)

	var s Set
	require.NoError(t, s.UnmarshalBinary(buf.Bytes()))
	assert.Equal(t, *NewSet(), s)
}

func TestSetUnmarshalBinaryErrors(t *testing.T) {
	var s Set
	assert.Equal(t, errBadLength, s.UnmarshalBinary(make([]byte, SetSize-1)))

	b, err := NewSet().MarshalBinary()
	require.NoError(t, err)
	b[5*Height+4] ^= 0x01
	assert.ErrorIs(t, s.UnmarshalBinary(b), errBadBitmap)
}

func TestBitmapImage(t *testing.T) {
	m := Encode(1 | 8).Image()
	assert.Equal(t, image.Rect(0, 0, Width, Height), m.Bounds())

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := uint8(0)
			if (y < 3 && x < 4) || (y >= 3 && y < 6 && x >= 4) {
				want = 1
			}
			assert.Equal(t, want, m.ColorIndexAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestFromImagePaletted(t *testing.T) {
	for i := 0; i < NumSelectors; i++ {
		assert.Equal(t, byte(i), FromImage(Encode(byte(i)).Image()))
	}
}

func TestFromImageEmptyPalette(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, Width, Height), color.Palette{})
	assert.NotPanics(t, func() {
		assert.Equal(t, byte(0), FromImage(m))
	})
}

func TestFromImageQuantized(t *testing.T) {
	fg := color.RGBA{0xff, 0xff, 0x00, 0xff}
	bg := color.RGBA{0x00, 0x00, 0xcc, 0xff}

	for _, selector := range []byte{5, 18, 33, 42, 62} {
		src := Encode(selector).Image()

		// Scaled up 4 times in two colors
		m := image.NewRGBA(image.Rect(0, 0, Width*4, Height*4))
		draw.Draw(m, m.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
		for y := 0; y < m.Bounds().Dy(); y++ {
			for x := 0; x < m.Bounds().Dx(); x++ {
				if src.ColorIndexAt(x/4, y/4) == 1 {
					m.Set(x, y, fg)
				}
			}
		}

		assert.Equal(t, selector, FromImage(m), "selector %d", selector)
	}
}

func TestSheet(t *testing.T) {
	m := Sheet()
	require.Equal(t, image.Rect(0, 0, 128, 36), m.Bounds())

	for i := 0; i < NumSelectors; i++ {
		r := image.Rect(0, 0, Width, Height).Add(image.Pt(i%16*Width, i/16*Height))
		assert.Equal(t, byte(i), FromImage(m.SubImage(r)), "selector %d", i)
	}
}
