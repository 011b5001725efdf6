package api

import (
	"strings"

	"github.com/diogo/streamchat/internal/models"
)

// frameParser splits decoded text into discrete frames on the blank-line
// delimiter, carrying incomplete trailing data forward across reads.
//
// Frames that start with the content prefix have it stripped and their
// payload returned in order. Frames without the prefix are control lines
// and are dropped silently. An empty payload ("data: " followed by the
// delimiter) is a valid zero-length content frame and is returned, not
// skipped, so exact character counts are preserved.
type frameParser struct {
	carry string
}

// Parse appends text to the carry-over buffer and returns the payloads of
// all complete content frames extracted.
func (p *frameParser) Parse(text string) []string {
	p.carry += text

	parts := strings.Split(p.carry, models.FrameDelimiter)
	p.carry = parts[len(parts)-1]

	var payloads []string
	for _, raw := range parts[:len(parts)-1] {
		if payload, ok := strings.CutPrefix(raw, models.DataPrefix); ok {
			payloads = append(payloads, payload)
		}
	}
	return payloads
}

// Flush returns the payload of an unterminated trailing frame, if the
// carry-over holds one. Called when the stream ends, cleanly or not, so a
// final frame the server never terminated still reaches the accumulator.
// A single trailing newline is a half-received delimiter, not payload.
func (p *frameParser) Flush() (string, bool) {
	rest := strings.TrimSuffix(p.carry, "\n")
	p.carry = ""
	return strings.CutPrefix(rest, models.DataPrefix)
}

// Reset discards carried state for a fresh response stream.
func (p *frameParser) Reset() {
	p.carry = ""
}
