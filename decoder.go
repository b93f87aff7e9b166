package teletext

import (
	"fmt"

	"github.com/bodgit/teletext/pagehash"
)

// Decoder names the scheme used to turn a hash into page bytes.
type Decoder string

const (
	DecoderHash      Decoder = "hash"
	DecoderBitstream Decoder = "bitstream"
)

// Decode returns the page code and the raw page bytes held by token.
func (d Decoder) Decode(token string) (string, []byte, error) {
	code, payload, err := pagehash.Split(token)
	if err != nil {
		return "", nil, err
	}

	var raw []byte
	switch d {
	case DecoderHash, "":
		raw, err = pagehash.Decode(token)
	case DecoderBitstream:
		raw, err = pagehash.DecodeBitstream(payload)
	default:
		return "", nil, fmt.Errorf("unknown decoder %q", string(d))
	}
	if err != nil {
		return "", nil, err
	}

	return code, raw, nil
}
