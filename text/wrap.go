// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"
	"unicode"

	"github.com/spekke/LayoutKit/f32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// A run is a fragment of text in a single font, ready for layout.
type run struct {
	str  string
	face Face
	ppem fixed.Int26_6
}

// A line holds the measurements of one laid out line.
type line struct {
	// width is the advance width of the line.
	width fixed.Int26_6
	// ascent is the height above the baseline.
	ascent fixed.Int26_6
	// descent is the height below the baseline. The line gap is not
	// included; lines advance by exactly ascent plus descent.
	descent fixed.Int26_6
}

// wrap lays out runs into lines no wider than maxWidth, breaking an
// overfull line at its last space, or after its last rune when it
// contains no space. Newlines always end a line. The number of lines
// is unlimited.
func wrap(runs []run, maxWidth float32) []line {
	if len(runs) == 0 {
		return nil
	}
	type item struct {
		r  rune
		ri int
	}
	var items []item
	for ri := range runs {
		for _, r := range runs[ri].str {
			items = append(items, item{r: r, ri: ri})
		}
	}
	metrics := make([]font.Metrics, len(runs))
	for ri := range runs {
		metrics[ri] = runs[ri].face.Metrics(runs[ri].ppem)
	}
	maxDotX := fixed.Int26_6(math.MaxInt32)
	if w := math.Ceil(float64(maxWidth) * 64); w < math.MaxInt32 {
		maxDotX = fixed.Int26_6(w)
	}
	lineStart := 0
	// lineMetrics is the tallest ascent and descent of the fonts on
	// the line. An empty line keeps the height of the font in effect
	// at its position.
	lineMetrics := func(end int) (ascent, descent fixed.Int26_6) {
		if lineStart >= end {
			ri := len(runs) - 1
			if lineStart < len(items) {
				ri = items[lineStart].ri
			}
			return metrics[ri].Ascent, metrics[ri].Descent
		}
		var asc, desc fixed.Int26_6
		prev := -1
		for _, it := range items[lineStart:end] {
			if it.ri == prev {
				continue
			}
			prev = it.ri
			m := metrics[it.ri]
			if m.Ascent > asc {
				asc = m.Ascent
			}
			if m.Descent > desc {
				desc = m.Descent
			}
		}
		return asc, desc
	}
	type state struct {
		r     rune
		adv   fixed.Int26_6
		x     fixed.Int26_6
		idx   int
		valid bool
	}
	var lines []line
	var prev, word state
	endLine := func(end, resume int) {
		asc, desc := lineMetrics(end)
		lines = append(lines, line{
			width:   prev.x + prev.adv,
			ascent:  asc,
			descent: desc,
		})
		lineStart = resume
		prev = state{idx: resume}
		word = state{}
	}
	for prev.idx < len(items) {
		it := items[prev.idx]
		if it.r == '\n' {
			// The newline is zero width; the line keeps the
			// measurements of what precedes it.
			endLine(prev.idx, prev.idx+1)
			continue
		}
		a, ok := runs[it.ri].face.GlyphAdvance(runs[it.ri].ppem, it.r)
		if !ok {
			prev.idx++
			continue
		}
		next := state{
			r:     it.r,
			adv:   a,
			x:     prev.x + prev.adv,
			idx:   prev.idx + 1,
			valid: true,
		}
		var k fixed.Int26_6
		if prev.valid && items[prev.idx-1].ri == it.ri {
			k = runs[it.ri].face.Kern(runs[it.ri].ppem, prev.r, next.r)
		}
		// Break the line if we're out of space. A glyph ending
		// exactly at the limit fits, so re-wrapping lines in their
		// own width keeps their breaks.
		if prev.idx > lineStart && next.x+next.adv+k > maxDotX {
			// If the line contains no word breaks, break off the
			// last rune.
			if !word.valid {
				word = prev
			}
			next.x -= word.x + word.adv
			prev = word
			endLine(prev.idx, prev.idx)
		} else {
			next.adv += k
		}
		if unicode.IsSpace(next.r) {
			word = next
		}
		prev = next
	}
	endLine(len(items), len(items))
	return lines
}

// linesSize is the size of the laid out lines: the widest line by
// the summed line heights.
func linesSize(lines []line) f32.Size {
	var width, h fixed.Int26_6
	var prevDesc fixed.Int26_6
	for _, l := range lines {
		h += prevDesc + l.ascent
		prevDesc = l.descent
		if l.width > width {
			width = l.width
		}
	}
	h += prevDesc
	return f32.Size{
		Width:  float32(width) / 64,
		Height: float32(h) / 64,
	}
}
