// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"reflect"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/spekke/LayoutKit/f32"
	"github.com/spekke/LayoutKit/font/opentype"
	"github.com/spekke/LayoutKit/text"
)

// fakeView records the calls a Text node makes while binding.
type fakeView struct {
	calls       []string
	content     text.Text
	font        text.Font
	insets      f32.Insets
	linePadding float32
	interactive bool
}

func (v *fakeView) SetText(t text.Text) {
	v.calls = append(v.calls, "text")
	v.content = t
}

func (v *fakeView) SetFont(f text.Font) {
	v.calls = append(v.calls, "font")
	v.font = f
}

func (v *fakeView) SetTextInsets(in f32.Insets) {
	v.calls = append(v.calls, "insets")
	v.insets = in
}

func (v *fakeView) SetLinePadding(p float32) {
	v.calls = append(v.calls, "padding")
	v.linePadding = p
}

func (v *fakeView) SetInteractive(b bool) {
	v.calls = append(v.calls, "interactive")
	v.interactive = b
}

func testMeasurer(t *testing.T) *text.Measurer {
	t.Helper()
	face, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse font: %v", err)
	}
	return text.NewMeasurer(text.Defaults{
		Plain:           text.Font{Face: face, Size: 16},
		Attributed:      text.Font{Face: face, Size: 12},
		AttributedEmpty: text.Font{Face: face, Size: 12},
	})
}

func TestTextMeasure(t *testing.T) {
	m := testMeasurer(t)
	node := NewText[*fakeView](m, text.Plain("hello world"))
	within := f32.Size{Width: 40, Height: 30}
	meas := node.Measure(within)
	if meas.Size.Width > within.Width || meas.Size.Height > within.Height {
		t.Errorf("measured %v exceeds %v", meas.Size, within)
	}
	if meas.MaxSize != within {
		t.Errorf("max size %v, want %v", meas.MaxSize, within)
	}
	if len(meas.Children) != 0 {
		t.Errorf("got %d children; expected none", len(meas.Children))
	}
}

func TestTextMeasureEmptyWidth(t *testing.T) {
	m := testMeasurer(t)
	in := f32.Insets{Top: 1, Right: 2, Bottom: 4, Left: 8}
	node := NewText[*fakeView](m, text.Plain(""),
		WithInsets[*fakeView](in),
		WithLinePadding[*fakeView](5),
	)
	meas := node.Measure(f32.Size{Width: 100, Height: 100})
	if want := 2*float32(5) + in.Left + in.Right; meas.Size.Width != want {
		t.Errorf("width %v, want %v", meas.Size.Width, want)
	}
	if meas.Size.Height <= in.Top+in.Bottom {
		t.Errorf("height %v, want a line of text above the insets", meas.Size.Height)
	}
}

func TestTextArrangeRoundTrip(t *testing.T) {
	m := testMeasurer(t)
	node := NewText[*fakeView](m, text.Plain("hello"))
	meas := node.Measure(f32.Size{Width: f32.Inf, Height: f32.Inf})

	// Arranging the measured size at an origin keeps the origin.
	within := f32.Rectangle{
		Min: f32.Point{X: 7, Y: 9},
		Max: f32.Point{X: 7 + meas.Size.Width, Y: 9 + meas.Size.Height},
	}
	a := node.Arrange(within, meas)
	if a.Frame != within {
		t.Errorf("frame %v, want %v", a.Frame, within)
	}
}

func TestTextArrangeAligned(t *testing.T) {
	m := testMeasurer(t)
	node := NewText[*fakeView](m, text.Plain("hello"),
		WithAlignment[*fakeView](BottomTrailing),
	)
	meas := node.Measure(f32.Size{Width: f32.Inf, Height: f32.Inf})
	within := rect(0, 0, 200, 100)
	a := node.Arrange(within, meas)
	want := f32.Rectangle{
		Min: f32.Point{X: 200 - meas.Size.Width, Y: 100 - meas.Size.Height},
		Max: f32.Point{X: 200, Y: 100},
	}
	if a.Frame != want {
		t.Errorf("frame %v, want %v", a.Frame, want)
	}
}

func TestTextConfigure(t *testing.T) {
	m := testMeasurer(t)
	in := f32.Insets{Top: 1, Right: 2, Bottom: 4, Left: 8}
	content := text.Plain("hi")
	node := NewText[*fakeView](m, content,
		WithInsets[*fakeView](in),
		WithLinePadding[*fakeView](5),
		WithConfigure[*fakeView](func(v *fakeView) {
			v.calls = append(v.calls, "callback")
		}),
	)

	v := new(fakeView)
	node.Configure(v)
	// The callback runs last, on a fully configured view.
	want := []string{"interactive", "insets", "padding", "font", "text", "callback"}
	if !reflect.DeepEqual(v.calls, want) {
		t.Errorf("calls %v, want %v", v.calls, want)
	}
	if v.interactive {
		t.Error("view left interactive")
	}
	if v.insets != in {
		t.Errorf("insets %v, want %v", v.insets, in)
	}
	if v.linePadding != 5 {
		t.Errorf("line padding %v, want 5", v.linePadding)
	}
	if want := m.ResolveFont(content, nil); v.font != want {
		t.Errorf("font %v, want the resolved default %v", v.font, want)
	}
	if v.content != content {
		t.Errorf("content %v, want %v", v.content, content)
	}
}

func TestTextConfigureFontOverride(t *testing.T) {
	m := testMeasurer(t)
	face, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse font: %v", err)
	}
	override := text.Font{Face: face, Size: 44}
	node := NewText[*fakeView](m, text.Plain("hi"),
		WithFont[*fakeView](override),
	)
	v := new(fakeView)
	node.Configure(v)
	if v.font != override {
		t.Errorf("font %v, want the override %v", v.font, override)
	}
}

func TestTextReuseID(t *testing.T) {
	m := testMeasurer(t)
	if id := NewText[*fakeView](m, text.Plain("hi")).ReuseID(); id != "" {
		t.Errorf("reuse identifier %q, want empty", id)
	}
	node := NewText[*fakeView](m, text.Plain("hi"), WithReuseID[*fakeView]("cell"))
	if id := node.ReuseID(); id != "cell" {
		t.Errorf("reuse identifier %q, want %q", id, "cell")
	}
}

func TestTextFlexibility(t *testing.T) {
	m := testMeasurer(t)
	if f := NewText[*fakeView](m, text.Plain("hi")).Flexibility(); f != (Flexibility{}) {
		t.Errorf("flexibility %v, want the zero value", f)
	}
	want := Flexibility{Horizontal: Low, Vertical: High}
	node := NewText[*fakeView](m, text.Plain("hi"), WithFlexibility[*fakeView](want))
	if f := node.Flexibility(); f != want {
		t.Errorf("flexibility %v, want %v", f, want)
	}
}
