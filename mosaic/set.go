package mosaic

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	// Filename is the expected filename used when writing to disk
	Filename = "mosaic.bin"

	// SetSize is the size in bytes of an encoded Set
	SetSize = NumSelectors * Height
)

var (
	errBadLength = errors.New("mosaic: wrong length for set")
	errBadBitmap = errors.New("mosaic: unexpected bitmap")
)

// Set is the table of every mosaic character bitmap indexed by selector. It
// implements the encoding.BinaryMarshaler and encoding.BinaryUnmarshaler
// interfaces.
type Set [NumSelectors]Bitmap

// NewSet returns a set holding the bitmap of each selector
func NewSet() *Set {
	s := new(Set)
	for i := range s {
		s[i] = Encode(byte(i))
	}
	return s
}

// MarshalBinary encodes the set as the bitmaps of selectors 0 to 63 in order
func (s *Set) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	b.Grow(SetSize)
	for i := range s {
		if _, err := b.Write(s[i][:]); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// UnmarshalBinary decodes the set from binary form, each bitmap must match
// the one Encode returns for its selector
func (s *Set) UnmarshalBinary(b []byte) error {
	if len(b) != SetSize {
		return errBadLength
	}

	for i := range s {
		copy(s[i][:], b[i*Height:])
		if s[i] != Encode(byte(i)) {
			return fmt.Errorf("%w for selector %d", errBadBitmap, i)
		}
	}

	return nil
}

// WriteTo writes the binary form of the set to w
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	b, err := s.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}
