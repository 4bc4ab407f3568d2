// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements text content and measurement.

A Text is either Plain or Attributed. Measurement computes the size
a body of text occupies within a maximum size, given a font, edge
insets and line padding. Measuring never touches live views; it is
pure and safe for concurrent use.
*/
package text

import "strings"

// Text is the content of a text element, either Plain or Attributed.
// Values are immutable once constructed.
type Text interface {
	// Empty reports whether the text contains no characters.
	Empty() bool
	// String returns the text content without attributes.
	String() string

	ImplementsText()
}

// Plain is text in a single uniform font.
type Plain string

// Attributed is text composed of spans, each in its own font.
type Attributed []Span

// A Span is a fragment of attributed text.
type Span struct {
	String string
	// Font is the font of the fragment. If nil, the enclosing
	// element's resolved font is used.
	Font *Font
}

// Empty reports whether the string has zero length.
func (p Plain) Empty() bool {
	return len(p) == 0
}

func (p Plain) String() string {
	return string(p)
}

// Empty reports whether all spans have zero length.
func (a Attributed) Empty() bool {
	for _, s := range a {
		if len(s.String) > 0 {
			return false
		}
	}
	return true
}

func (a Attributed) String() string {
	var b strings.Builder
	for _, s := range a {
		b.WriteString(s.String)
	}
	return b.String()
}

func (Plain) ImplementsText()      {}
func (Attributed) ImplementsText() {}
