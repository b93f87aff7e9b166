package pagehash

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Split removes any URL prefix up to and including the first "#" and returns
// the page code and the still encoded payload.
func Split(token string) (string, string, error) {
	if i := strings.IndexByte(token, '#'); i > -1 {
		token = token[i+1:]
	}
	if token == "" {
		return "", "", &FormatError{Reason: "empty hash"}
	}

	i := strings.IndexByte(token, ':')
	if i < 0 {
		return "", "", &FormatError{Token: token, Reason: "expected \"code:payload\""}
	}

	return token[:i], token[i+1:], nil
}

// Decode returns the 7-bit teletext bytes held by the hash token. The token
// may be a full URL, only the fragment after "#" is considered.
func Decode(token string) ([]byte, error) {
	_, data, err := Split(token)
	if err != nil {
		return nil, err
	}

	switch len(data) {
	case shortPayload:
	case longPayload:
		data += longPadding
	default:
		return nil, &FormatError{Token: token, Reason: fmt.Sprintf("unexpected payload length %d", len(data))}
	}

	src, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil, &FormatError{Token: token, Reason: "bad payload", Err: err}
	}

	dst := make([]byte, len(src)/windowIn*windowOut)
	Unpack7(dst, src)

	return dst, nil
}

// Unpack7 expands every complete 7 byte window of src into 8 bytes of 7 bits
// in dst and returns the number of bytes written. Any trailing bytes of src
// that do not fill a window are ignored. dst must hold at least
// len(src)/7*8 bytes.
func Unpack7(dst, src []byte) int {
	d := 0
	for s := 0; s+windowIn <= len(src); d, s = d+windowOut, s+windowIn {
		b := src[s : s+windowIn : s+windowIn]
		dst[d+0] = (b[0] >> 1) & 0x7f
		dst[d+1] = (b[0]<<6)&0x40 | (b[1]>>2)&0x3f
		dst[d+2] = (b[1]<<5)&0x60 | (b[2]>>3)&0x1f
		dst[d+3] = (b[2]<<4)&0x70 | (b[3]>>4)&0x0f
		dst[d+4] = (b[3]<<3)&0x78 | (b[4]>>5)&0x07
		dst[d+5] = (b[4]<<2)&0x7c | (b[5]>>6)&0x03
		dst[d+6] = (b[5]<<1)&0x7e | (b[6]>>7)&0x01
		dst[d+7] = b[6] & 0x7f
	}
	return d
}

// Pack7 is the inverse of Unpack7; every complete group of 8 bytes in src is
// reduced to its low 7 bits and packed into 7 bytes of dst. It returns the
// number of bytes written.
func Pack7(dst, src []byte) int {
	d := 0
	for s := 0; s+windowOut <= len(src); d, s = d+windowIn, s+windowOut {
		var v [windowOut]byte
		for i := range v {
			v[i] = src[s+i] & 0x7f
		}
		dst[d+0] = v[0]<<1 | v[1]>>6
		dst[d+1] = v[1]<<2 | v[2]>>5
		dst[d+2] = v[2]<<3 | v[3]>>4
		dst[d+3] = v[3]<<4 | v[4]>>3
		dst[d+4] = v[4]<<5 | v[5]>>2
		dst[d+5] = v[5]<<6 | v[6]>>1
		dst[d+6] = v[6]<<7 | v[7]
	}
	return d
}

// Encode builds a hash token for a page of either 24 or 25 rows of 40 bytes.
func Encode(code string, page []byte) (string, error) {
	if strings.ContainsAny(code, ":#") {
		return "", &FormatError{Token: code, Reason: "code must not contain \":\" or \"#\""}
	}
	switch len(page) {
	case 24 * rowWidth, 25 * rowWidth:
	default:
		return "", &FormatError{Reason: fmt.Sprintf("unexpected page length %d", len(page))}
	}

	dst := make([]byte, len(page)/windowOut*windowIn)
	Pack7(dst, page)

	return code + ":" + base64.RawURLEncoding.EncodeToString(dst), nil
}
