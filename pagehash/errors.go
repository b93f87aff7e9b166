package pagehash

import "fmt"

// FormatError is returned when a hash token is malformed: empty, missing the
// ":" separator, carrying a payload of the wrong length or containing
// characters the base64 decoder rejects.
type FormatError struct {
	Token  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagehash: %s: %v", e.Reason, e.Err)
	}
	return "pagehash: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// AlphabetError is returned by the bitstream decoder for a character that is
// not part of Alphabet.
type AlphabetError struct {
	Pos  int
	Char byte
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("pagehash: invalid character %q at position %d", e.Char, e.Pos)
}
