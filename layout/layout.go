// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the two phase measure and arrange protocol
for trees of immutable layout nodes.

A Layout describes a piece of user interface without referencing
live views. Measuring computes the size of every node within a
maximum size; arranging places the measured sizes into frames.
Concrete views are bound afterwards, typically drawn from a reuse
pool.
*/
package layout

import (
	"math"

	"github.com/spekke/LayoutKit/f32"
)

// A Layout is an immutable description of a piece of user interface
// that can be measured and arranged.
type Layout interface {
	// Measure computes the size of the layout within a maximum
	// size. The returned size never exceeds within.
	Measure(within f32.Size) Measurement
	// Arrange positions the measured layout inside a rectangle,
	// producing its final frame.
	Arrange(within f32.Rectangle, m Measurement) Arrangement
}

// Measurement is the result of the measure phase.
type Measurement struct {
	// Layout is the node that produced the measurement.
	Layout Layout
	// Size is the computed size. It never exceeds MaxSize.
	Size f32.Size
	// MaxSize is the maximum size the measurement was computed
	// within.
	MaxSize f32.Size
	// Children are the measurements of the node's children.
	Children []Measurement
}

// Arrangement is the result of the arrange phase.
type Arrangement struct {
	// Layout is the node that produced the arrangement.
	Layout Layout
	// Frame is the node's frame, relative to its parent's frame.
	Frame f32.Rectangle
	// Children are the arrangements of the node's children.
	Children []Arrangement
}

// Alignment positions a size relative to a containing rectangle.
// The zero value aligns to the top leading corner.
type Alignment struct {
	Vertical   VerticalAlignment
	Horizontal HorizontalAlignment
}

// VerticalAlignment is the vertical placement of a size inside a
// containing rectangle.
type VerticalAlignment uint8

// HorizontalAlignment is the horizontal placement of a size inside
// a containing rectangle.
type HorizontalAlignment uint8

const (
	Top VerticalAlignment = iota
	Middle
	Bottom
	// Stretch ignores the size and covers the full height.
	Stretch
)

const (
	Leading HorizontalAlignment = iota
	Center
	Trailing
	// Fill ignores the size and covers the full width.
	Fill
)

var (
	TopLeading     = Alignment{Top, Leading}
	TopCenter      = Alignment{Top, Center}
	TopTrailing    = Alignment{Top, Trailing}
	CenterLeading  = Alignment{Middle, Leading}
	Centered       = Alignment{Middle, Center}
	CenterTrailing = Alignment{Middle, Trailing}
	BottomLeading  = Alignment{Bottom, Leading}
	BottomCenter   = Alignment{Bottom, Center}
	BottomTrailing = Alignment{Bottom, Trailing}
	Filled         = Alignment{Stretch, Fill}
)

// Position places a size inside a rectangle according to the
// alignment, returning the resulting frame.
func (a Alignment) Position(size f32.Size, within f32.Rectangle) f32.Rectangle {
	x, w := within.Min.X, size.Width
	switch a.Horizontal {
	case Center:
		x += (within.Dx() - size.Width) / 2
	case Trailing:
		x += within.Dx() - size.Width
	case Fill:
		w = within.Dx()
	}
	y, h := within.Min.Y, size.Height
	switch a.Vertical {
	case Middle:
		y += (within.Dy() - size.Height) / 2
	case Bottom:
		y += within.Dy() - size.Height
	case Stretch:
		h = within.Dy()
	}
	return f32.Rectangle{
		Max: f32.Point{X: w, Y: h},
	}.Add(f32.Point{X: x, Y: y})
}

// Flex is how willing a node is to be resized from its measured
// size. Composers distributing excess or missing space resize
// higher flex nodes first.
type Flex int32

const (
	Inflexible Flex = math.MinInt32
	Low        Flex = -1000
	Normal     Flex = 0
	High       Flex = 1000
	Max        Flex = math.MaxInt32
)

// Flexibility is a node's flex along both axes. It is carried by
// nodes and consumed by external composers; nothing in this package
// interprets it.
type Flexibility struct {
	Horizontal, Vertical Flex
}

// Inset adds space around a child layout.
type Inset struct {
	Insets f32.Insets
	Child  Layout
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32, child Layout) Inset {
	return Inset{
		Insets: f32.Insets{Top: v, Right: v, Bottom: v, Left: v},
		Child:  child,
	}
}

// Measure measures the child within the inset reduced size. The
// reported size restores the insets, clamped to within.
func (in Inset) Measure(within f32.Size) Measurement {
	cm := in.Child.Measure(within.Inset(in.Insets))
	return Measurement{
		Layout:   in,
		Size:     cm.Size.Expand(in.Insets).Constrain(within),
		MaxSize:  within,
		Children: []Measurement{cm},
	}
}

// Arrange covers within and arranges the child between the insets.
func (in Inset) Arrange(within f32.Rectangle, m Measurement) Arrangement {
	// Child frames are relative to the inset's own frame.
	bounds := within.Sub(within.Min)
	ca := in.Child.Arrange(bounds.Inset(in.Insets), m.Children[0])
	return Arrangement{
		Layout:   in,
		Frame:    within,
		Children: []Arrangement{ca},
	}
}

func (a VerticalAlignment) String() string {
	switch a {
	case Top:
		return "Top"
	case Middle:
		return "Middle"
	case Bottom:
		return "Bottom"
	case Stretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (a HorizontalAlignment) String() string {
	switch a {
	case Leading:
		return "Leading"
	case Center:
		return "Center"
	case Trailing:
		return "Trailing"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}
