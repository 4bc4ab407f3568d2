// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a loaded typeface. It provides the glyph metrics
// measurement is built on. Implementations must be comparable, so
// fonts can key measurement caches, and usable from multiple
// goroutines.
type Face interface {
	// Metrics returns the vertical metrics of the face at the given
	// size.
	Metrics(ppem fixed.Int26_6) font.Metrics
	// GlyphAdvance returns the advance of the glyph for r, or false
	// if the face has no glyph for it.
	GlyphAdvance(ppem fixed.Int26_6, r rune) (fixed.Int26_6, bool)
	// Kern returns the kerning adjustment between the glyphs for r0
	// and r1.
	Kern(ppem fixed.Int26_6, r0, r1 rune) fixed.Int26_6
}

// Font is a Face at a size in dp.
type Font struct {
	Face Face
	Size float32
}

// Defaults is the font table consulted when text carries no font of
// its own. The table is split by content kind because live text
// views fall back to different fonts for plain, attributed and empty
// attributed content.
type Defaults struct {
	// Plain is the font for plain text.
	Plain Font
	// Attributed is the font for attributed text whose spans carry
	// no font.
	Attributed Font
	// AttributedEmpty is the font sizing the line height probe of
	// empty attributed text.
	AttributedEmpty Font
}

func (f Font) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.Size * 64)
}
