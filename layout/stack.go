// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "github.com/spekke/LayoutKit/f32"

// Stack lays out children on top of each other. The order of the
// children determines their stacking order.
type Stack struct {
	// Alignment positions children smaller than the stack's
	// bounds.
	Alignment Alignment

	Children []Layout
}

// Measure measures every child within the same maximum size. The
// stack's size is the union of the child sizes.
func (s Stack) Measure(within f32.Size) Measurement {
	var sz f32.Size
	cms := make([]Measurement, len(s.Children))
	for i, c := range s.Children {
		cms[i] = c.Measure(within)
		sz = sz.Union(cms[i].Size)
	}
	return Measurement{
		Layout:   s,
		Size:     sz.Constrain(within),
		MaxSize:  within,
		Children: cms,
	}
}

// Arrange covers within and positions every child inside it by the
// stack's alignment.
func (s Stack) Arrange(within f32.Rectangle, m Measurement) Arrangement {
	// Child frames are relative to the stack's own frame.
	bounds := within.Sub(within.Min)
	cas := make([]Arrangement, len(m.Children))
	for i, cm := range m.Children {
		cas[i] = s.Children[i].Arrange(s.Alignment.Position(cm.Size, bounds), cm)
	}
	return Arrangement{
		Layout:   s,
		Frame:    within,
		Children: cas,
	}
}
