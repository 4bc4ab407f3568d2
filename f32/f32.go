// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle, extended with the sizes and edge insets
used throughout the layout protocol.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package f32

import "math"

// Inf is the positive single precision infinity. A Size axis set to
// Inf is unconstrained.
var Inf = float32(math.Inf(+1))

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Size is a width and a height. Either axis may be Inf.
type Size struct {
	Width, Height float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Insets are the widths of the four edges of a rectangle.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Inset returns s shrunk by the insets, with each axis floored
// at zero. An Inf axis stays Inf.
func (s Size) Inset(in Insets) Size {
	s.Width -= in.Left + in.Right
	if s.Width < 0 {
		s.Width = 0
	}
	s.Height -= in.Top + in.Bottom
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}

// Expand returns s grown by the insets.
func (s Size) Expand(in Insets) Size {
	s.Width += in.Left + in.Right
	s.Height += in.Top + in.Bottom
	return s
}

// Constrain returns s limited to max in both axes. An Inf axis of
// max imposes no limit.
func (s Size) Constrain(max Size) Size {
	if s.Width > max.Width {
		s.Width = max.Width
	}
	if s.Height > max.Height {
		s.Height = max.Height
	}
	return s
}

// Union returns the smallest size covering both s and s2.
func (s Size) Union(s2 Size) Size {
	if s.Width < s2.Width {
		s.Width = s2.Width
	}
	if s.Height < s2.Height {
		s.Height = s2.Height
	}
	return s
}

// Size returns r's width and height.
func (r Rectangle) Size() Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Inset returns r shrunk by the insets. The result is not
// canonicalized when the insets exceed r's size.
func (r Rectangle) Inset(in Insets) Rectangle {
	r.Min.X += in.Left
	r.Min.Y += in.Top
	r.Max.X -= in.Right
	r.Max.Y -= in.Bottom
	return r
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X - p.X, r.Min.Y - p.Y},
		Point{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}
