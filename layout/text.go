// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/spekke/LayoutKit/f32"
	"github.com/spekke/LayoutKit/text"
)

// TextView is the capability a live text view provides for binding.
type TextView interface {
	// SetText replaces the view's content.
	SetText(text.Text)
	// SetFont sets the font of content that carries none.
	SetFont(text.Font)
	// SetTextInsets sets the space around the text inside the view.
	SetTextInsets(f32.Insets)
	// SetLinePadding sets the horizontal padding of each line
	// fragment.
	SetLinePadding(float32)
	// SetInteractive toggles editing, selection and scrolling.
	SetInteractive(bool)
}

// Text lays out a plain or attributed string and configures the
// view it is bound to. Nodes are immutable; create a new node for
// new content.
type Text[V TextView] struct {
	measurer    *text.Measurer
	content     text.Text
	font        *text.Font
	insets      f32.Insets
	linePadding float32
	alignment   Alignment
	flexibility Flexibility
	reuseID     string
	configure   func(V)
}

// TextOption configures a Text node.
type TextOption[V TextView] func(*Text[V])

// WithFont overrides the default font resolution.
func WithFont[V TextView](f text.Font) TextOption[V] {
	return func(t *Text[V]) {
		t.font = &f
	}
}

// WithInsets sets the space around the text inside its view.
func WithInsets[V TextView](in f32.Insets) TextOption[V] {
	return func(t *Text[V]) {
		t.insets = in
	}
}

// WithLinePadding sets the horizontal padding of each line
// fragment.
func WithLinePadding[V TextView](p float32) TextOption[V] {
	return func(t *Text[V]) {
		t.linePadding = p
	}
}

// WithAlignment sets how the measured size is placed when the node
// is arranged in a larger rectangle.
func WithAlignment[V TextView](a Alignment) TextOption[V] {
	return func(t *Text[V]) {
		t.alignment = a
	}
}

// WithFlexibility sets the node's resize priority hint.
func WithFlexibility[V TextView](f Flexibility) TextOption[V] {
	return func(t *Text[V]) {
		t.flexibility = f
	}
}

// WithReuseID sets the identifier used to pool and retrieve views
// for this node.
func WithReuseID[V TextView](id string) TextOption[V] {
	return func(t *Text[V]) {
		t.reuseID = id
	}
}

// WithConfigure sets a callback invoked after the node has
// configured a bound view. The callback must leave the view's
// insets, line padding and font size alone; the node's measurement
// cannot see such changes.
func WithConfigure[V TextView](fn func(V)) TextOption[V] {
	return func(t *Text[V]) {
		t.configure = fn
	}
}

// NewText creates a text node measuring content through m.
func NewText[V TextView](m *text.Measurer, content text.Text, opts ...TextOption[V]) *Text[V] {
	t := &Text[V]{measurer: m, content: content}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Measure computes the size of the content within the given maximum
// size, clamped to it.
func (t *Text[V]) Measure(within f32.Size) Measurement {
	sz := t.measurer.Measure(t.content, within, text.Parameters{
		Font:        t.font,
		Insets:      t.insets,
		LinePadding: t.linePadding,
	})
	return Measurement{
		Layout:  t,
		Size:    sz.Constrain(within),
		MaxSize: within,
	}
}

// Arrange places the measured size inside within according to the
// node's alignment.
func (t *Text[V]) Arrange(within f32.Rectangle, m Measurement) Arrangement {
	return Arrangement{
		Layout: t,
		Frame:  t.alignment.Position(m.Size, within),
	}
}

// Configure binds a live view to the node: the view is made non
// interactive, then receives the node's insets, line padding,
// resolved font and content, and is finally handed to the
// configuration callback.
func (t *Text[V]) Configure(v V) {
	v.SetInteractive(false)
	v.SetTextInsets(t.insets)
	v.SetLinePadding(t.linePadding)
	v.SetFont(t.measurer.ResolveFont(t.content, t.font))
	v.SetText(t.content)
	if t.configure != nil {
		t.configure(v)
	}
}

// ReuseID is the identifier used to pool views for this node, empty
// when the node does not participate in view reuse.
func (t *Text[V]) ReuseID() string {
	return t.reuseID
}

// Flexibility is the node's resize priority hint.
func (t *Text[V]) Flexibility() Flexibility {
	return t.flexibility
}
