// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func TestSizeInset(t *testing.T) {
	in := Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	sz := Size{Width: 100, Height: 50}.Inset(in)
	if want := (Size{Width: 94, Height: 46}); sz != want {
		t.Errorf("inset size mismatch: have %v, want %v", sz, want)
	}
}

func TestSizeInsetFloor(t *testing.T) {
	in := Insets{Left: 30, Right: 30}
	sz := Size{Width: 40, Height: 10}.Inset(in)
	if sz.Width != 0 {
		t.Errorf("inset width not floored at zero: have %v", sz.Width)
	}
	if sz.Height != 10 {
		t.Errorf("height changed by horizontal insets: have %v", sz.Height)
	}
}

func TestSizeInsetInf(t *testing.T) {
	sz := Size{Width: Inf, Height: Inf}.Inset(Insets{Top: 5, Right: 5, Bottom: 5, Left: 5})
	if !math.IsInf(float64(sz.Width), +1) || !math.IsInf(float64(sz.Height), +1) {
		t.Errorf("infinite size not preserved by insets: have %v", sz)
	}
}

func TestSizeExpandInverts(t *testing.T) {
	in := Insets{Top: 2, Right: 4, Bottom: 6, Left: 8}
	sz := Size{Width: 60, Height: 30}
	if got := sz.Inset(in).Expand(in); got != sz {
		t.Errorf("expand did not invert inset: have %v, want %v", got, sz)
	}
}

func TestSizeConstrain(t *testing.T) {
	max := Size{Width: 50, Height: 50}
	for _, test := range []struct {
		sz, want Size
	}{
		{Size{Width: 100, Height: 20}, Size{Width: 50, Height: 20}},
		{Size{Width: 20, Height: 100}, Size{Width: 20, Height: 50}},
		{Size{Width: 20, Height: 20}, Size{Width: 20, Height: 20}},
		{Size{Width: Inf, Height: Inf}, Size{Width: 50, Height: 50}},
	} {
		if got := test.sz.Constrain(max); got != test.want {
			t.Errorf("Constrain(%v): have %v, want %v", test.sz, got, test.want)
		}
	}
}

func TestSizeConstrainUnbounded(t *testing.T) {
	max := Size{Width: Inf, Height: Inf}
	sz := Size{Width: 123, Height: 456}
	if got := sz.Constrain(max); got != sz {
		t.Errorf("unbounded max altered size: have %v, want %v", got, sz)
	}
}

func TestSizeUnion(t *testing.T) {
	a := Size{Width: 10, Height: 40}
	b := Size{Width: 30, Height: 20}
	want := Size{Width: 30, Height: 40}
	if got := a.Union(b); got != want {
		t.Errorf("union mismatch: have %v, want %v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("union not symmetric: have %v, want %v", got, want)
	}
}

func TestRectangleInset(t *testing.T) {
	r := Rectangle{Min: Point{X: 10, Y: 10}, Max: Point{X: 50, Y: 40}}
	got := r.Inset(Insets{Top: 1, Right: 2, Bottom: 3, Left: 4})
	want := Rectangle{Min: Point{X: 14, Y: 11}, Max: Point{X: 48, Y: 37}}
	if got != want {
		t.Errorf("rectangle inset mismatch: have %v, want %v", got, want)
	}
	if got.Size() != (Size{Width: 34, Height: 26}) {
		t.Errorf("inset rectangle size mismatch: have %v", got.Size())
	}
}

func TestRectangleTranslate(t *testing.T) {
	r := Rectangle{Min: Point{X: 10, Y: 20}, Max: Point{X: 30, Y: 60}}
	origin := r.Sub(r.Min)
	if want := (Rectangle{Max: Point{X: 20, Y: 40}}); origin != want {
		t.Errorf("rebased rectangle mismatch: have %v, want %v", origin, want)
	}
	if got := origin.Add(r.Min); got != r {
		t.Errorf("translation round trip mismatch: have %v, want %v", got, r)
	}
}
