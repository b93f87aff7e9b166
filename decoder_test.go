package teletext

import (
	"strings"
	"testing"

	"github.com/bodgit/teletext/pagehash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder(t *testing.T) {
	code, raw, err := DecoderHash.Decode("http://example.com/#p100:" + strings.Repeat("A", 1120))
	require.NoError(t, err)
	assert.Equal(t, "p100", code)
	assert.Len(t, raw, 960)

	code, raw, err = DecoderBitstream.Decode("p101:gA")
	require.NoError(t, err)
	assert.Equal(t, "p101", code)
	assert.Equal(t, []byte{0x40}, raw)
}

func TestDecoderErrors(t *testing.T) {
	var fe *pagehash.FormatError
	_, _, err := DecoderHash.Decode("novalue")
	assert.ErrorAs(t, err, &fe)

	var ae *pagehash.AlphabetError
	_, _, err = DecoderBitstream.Decode("p:a.b")
	assert.ErrorAs(t, err, &ae)

	_, _, err = Decoder("morse").Decode("p:A")
	assert.EqualError(t, err, "unknown decoder \"morse\"")
}
