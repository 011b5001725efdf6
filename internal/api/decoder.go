package api

import (
	"strings"
	"unicode/utf8"
)

// streamDecoder converts raw byte buffers from the response body into text.
// A multi-byte UTF-8 sequence split across two reads is held back until the
// next read completes it; undecodable bytes become U+FFFD rather than
// aborting the stream.
//
// State persists across Decode calls for the duration of one response body
// and must be Reset when a new attempt begins.
type streamDecoder struct {
	carry []byte
}

// Decode returns the text for p, including any bytes carried over from the
// previous call.
func (d *streamDecoder) Decode(p []byte) string {
	data := p
	if len(d.carry) > 0 {
		data = append(d.carry, p...)
		d.carry = nil
	}

	// Hold back a trailing incomplete sequence for the next read.
	cut := len(data)
	for i := len(data) - 1; i >= 0 && i > len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if !utf8.FullRune(data[i:]) {
				cut = i
			}
			break
		}
	}

	if cut < len(data) {
		d.carry = append([]byte(nil), data[cut:]...)
		data = data[:cut]
	}

	return decodeReplacing(data)
}

// Flush returns the text for any bytes still held back. The carry is
// always a single truncated sequence, so it decodes to one replacement
// character.
func (d *streamDecoder) Flush() string {
	if len(d.carry) == 0 {
		return ""
	}
	d.carry = nil
	return string(utf8.RuneError)
}

// Reset discards carried state for a fresh response stream.
func (d *streamDecoder) Reset() {
	d.carry = nil
}

// decodeReplacing decodes data as UTF-8, substituting U+FFFD for each
// invalid byte.
func decodeReplacing(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteRune(r)
		}
		data = data[size:]
	}
	return b.String()
}
