package pagehash

import "strings"

// Cell is a teletext byte recovered from a bitstream along with its position
// on the page.
type Cell struct {
	Index  int // cell number counted from the start of the stream
	Row    int
	Column int
	Code   byte
}

// WalkBitstream treats data as a stream of 6 bit symbols taken from Alphabet,
// most significant bit first, and calls fn for every 7 bits completed. Symbol
// and cell boundaries are independent of each other. Walking stops at the
// first error returned by fn.
func WalkBitstream(data string, fn func(Cell) error) error {
	// Reject the whole stream before emitting anything
	for p := 0; p < len(data); p++ {
		if strings.IndexByte(Alphabet, data[p]) < 0 {
			return &AlphabetError{Pos: p, Char: data[p]}
		}
	}

	var code byte
	for p := 0; p < len(data); p++ {
		d := strings.IndexByte(Alphabet, data[p])
		for b := 0; b < 6; b++ {
			pos := 6*p + b
			bit := pos % windowIn
			if d&(1<<(5-b)) != 0 {
				code |= 1 << (6 - bit)
			}
			if bit != 6 {
				continue
			}

			n := pos / windowIn
			if err := fn(Cell{
				Index:  n,
				Row:    n / rowWidth,
				Column: n % rowWidth,
				Code:   code,
			}); err != nil {
				return err
			}
			code = 0
		}
	}

	return nil
}

// DecodeBitstream returns every 7-bit cell found in data by WalkBitstream.
func DecodeBitstream(data string) ([]byte, error) {
	dst := make([]byte, 0, len(data)*6/windowIn)
	if err := WalkBitstream(data, func(c Cell) error {
		dst = append(dst, c.Code)
		return nil
	}); err != nil {
		return nil, err
	}
	return dst, nil
}
