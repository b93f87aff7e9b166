/*
Package pagehash implements decoders for teletext page hashes, the compact
identifiers used by online teletext editors to carry a whole page in the
fragment of a URL.

A hash is written as "<code>:<payload>", optionally preceded by a URL and a
"#". The payload is base64url encoded and is either 1120 or 1167 characters
long. Once decoded, every run of 7 bytes holds 8 teletext bytes of 7 bits
each, packed most significant bit first, so a 1167 character payload yields
the 1000 bytes of a 25 by 40 page and a 1120 character payload yields 960
bytes, or 24 rows.

An older variant of the scheme walks the payload alphabet directly as a
bitstream of 6 bit symbols, realigning every 7 bits into a teletext byte; it
is exposed separately by DecodeBitstream.
*/
package pagehash

const (
	shortPayload = 1120
	longPayload  = 1167

	// padding appended to a long payload to make it a multiple of 4
	longPadding = "_"

	windowIn  = 7
	windowOut = 8

	rowWidth = 40
)

// Alphabet is the base64url alphabet both decoders work with.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
