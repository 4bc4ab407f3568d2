// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"sync"

	"github.com/spekke/LayoutKit/f32"
	"github.com/spekke/LayoutKit/unit"
)

// Parameters configure a measurement.
type Parameters struct {
	// Font overrides the default font resolution when non-nil.
	Font *Font
	// Insets is the space around the text inside its container.
	Insets f32.Insets
	// LinePadding is the horizontal padding of each line fragment.
	LinePadding float32
}

// Measurer computes the sizes of text elements. It is safe for
// concurrent use.
type Measurer struct {
	defaults Defaults
	metric   unit.Metric

	mu    sync.Mutex
	cache measureCache
}

// MeasurerOption configures a Measurer.
type MeasurerOption func(*Measurer)

// WithMetric sets the display metric measured sizes are rounded up
// to.
func WithMetric(m unit.Metric) MeasurerOption {
	return func(ms *Measurer) {
		ms.metric = m
	}
}

// NewMeasurer creates a Measurer that resolves unfonted text through
// the given defaults.
func NewMeasurer(defaults Defaults, opts ...MeasurerOption) *Measurer {
	m := &Measurer{defaults: defaults}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ResolveFont returns the font measurement uses for t: the override
// if non-nil, otherwise the default for t's kind.
func (m *Measurer) ResolveFont(t Text, override *Font) Font {
	if override != nil {
		return *override
	}
	switch t := t.(type) {
	case Plain:
		return m.defaults.Plain
	case Attributed:
		if t.Empty() {
			return m.defaults.AttributedEmpty
		}
		return m.defaults.Attributed
	default:
		panic("unreachable")
	}
}

// Measure returns the size t occupies when laid out within maxSize.
//
// Non-empty text is word wrapped inside maxSize shrunk by the
// insets, with no limit on the number of lines. The used width and
// height are each rounded up to the display pixel grid, never down,
// and then grown by the insets.
//
// Empty text keeps the height a live empty text view would occupy:
// the height of a single space in the resolved font. Its width is
// zero before the insets and the line padding are added back.
//
// Measure is pure; its result depends only on its inputs.
func (m *Measurer) Measure(t Text, maxSize f32.Size, p Parameters) f32.Size {
	font := m.ResolveFont(t, p.Font)
	if t.Empty() {
		return m.measureEmpty(font, maxSize, p)
	}
	box := maxSize.Inset(p.Insets)
	sz := m.layout(t, font, box.Width)
	sz.Width = m.metric.Ceil(sz.Width)
	sz.Height = m.metric.Ceil(sz.Height)
	return sz.Expand(p.Insets)
}

// measureEmpty probes the height of a single space in the resolved
// font. The probe is attributed even for plain text, matching the
// live view a plain empty element sizes against.
func (m *Measurer) measureEmpty(font Font, maxSize f32.Size, p Parameters) f32.Size {
	box := maxSize.Inset(p.Insets)
	box.Width -= 2 * p.LinePadding
	if box.Width < 0 {
		box.Width = 0
	}
	probe := Attributed{{String: " ", Font: &font}}
	sz := m.layout(probe, font, box.Width)
	sz.Width = 0
	sz.Height = m.metric.Ceil(sz.Height)
	sz = sz.Expand(p.Insets)
	sz.Width += 2 * p.LinePadding
	return sz
}

// layout wraps t within maxWidth and returns the raw laid out size.
// Plain text layouts are cached.
func (m *Measurer) layout(t Text, font Font, maxWidth float32) f32.Size {
	str, plain := t.(Plain)
	var key measureKey
	if plain {
		key = measureKey{str: string(str), font: font, maxWidth: maxWidth}
		m.mu.Lock()
		sz, ok := m.cache.Get(key)
		m.mu.Unlock()
		if ok {
			return sz
		}
	}
	sz := linesSize(wrap(m.runs(t, font), maxWidth))
	if plain {
		m.mu.Lock()
		m.cache.Put(key, sz)
		m.mu.Unlock()
	}
	return sz
}

// runs splits t into single font runs, substituting font for spans
// that carry none. The substitution happens here because the
// wrapping engine has no notion of a default font.
func (m *Measurer) runs(t Text, font Font) []run {
	switch t := t.(type) {
	case Plain:
		return []run{{str: string(t), face: font.Face, ppem: font.ppem()}}
	case Attributed:
		runs := make([]run, 0, len(t))
		for _, s := range t {
			f := font
			if s.Font != nil {
				f = *s.Font
			}
			runs = append(runs, run{str: s.String, face: f.Face, ppem: f.ppem()})
		}
		return runs
	default:
		panic("unreachable")
	}
}
