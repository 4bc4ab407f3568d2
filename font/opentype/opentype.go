// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements the metrics of OpenType font files.
package opentype

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a loaded OpenType font. A Face is read-only after Parse
// and safe for concurrent use. For efficiency, parse any given font
// file once and reuse the Face.
type Face struct {
	font    *sfnt.Font
	hinting font.Hinting
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	fnt, err := sfnt.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed to parse font: %w", err)
	}
	return Face{font: fnt, hinting: font.HintingFull}, nil
}

var buffers = sync.Pool{
	New: func() any {
		return new(sfnt.Buffer)
	},
}

// Metrics returns the vertical metrics of the face at the given
// size.
func (f Face) Metrics(ppem fixed.Int26_6) font.Metrics {
	buf := buffers.Get().(*sfnt.Buffer)
	defer buffers.Put(buf)
	m, _ := f.font.Metrics(buf, ppem, f.hinting)
	return m
}

// GlyphAdvance returns the advance of the glyph for r, or false if
// the face failed to load a glyph for it.
func (f Face) GlyphAdvance(ppem fixed.Int26_6, r rune) (fixed.Int26_6, bool) {
	buf := buffers.Get().(*sfnt.Buffer)
	defer buffers.Put(buf)
	g, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0, false
	}
	adv, err := f.font.GlyphAdvance(buf, g, ppem, f.hinting)
	return adv, err == nil
}

// Kern returns the kerning adjustment between the glyphs for r0 and
// r1.
func (f Face) Kern(ppem fixed.Int26_6, r0, r1 rune) fixed.Int26_6 {
	buf := buffers.Get().(*sfnt.Buffer)
	defer buffers.Put(buf)
	g0, err := f.font.GlyphIndex(buf, r0)
	if err != nil {
		return 0
	}
	g1, err := f.font.GlyphIndex(buf, r1)
	if err != nil {
		return 0
	}
	adv, err := f.font.Kern(buf, g0, g1, ppem, f.hinting)
	if err != nil {
		return 0
	}
	return adv
}
