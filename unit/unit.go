// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Pixels, or px, is the unit for display
dependent pixels. Their size vary between platforms and displays.

Layout and text measurement happen in dp, yet results must land on
the pixel grid of the display to avoid blurry edges. A Metric carries
the density of a display and rounds dp values up to its grid.
*/
package unit

import "math"

// Metric converts device independent sizes to the pixel grid of a
// display.
type Metric struct {
	// PxPerDp is the device-dependent pixel density. The zero value
	// behaves as density 1.
	PxPerDp float32
}

// Ceil rounds v up to the nearest value that covers whole display
// pixels, expressed in dp. With a density of 2 px per dp, values are
// rounded up to multiples of 0.5 dp. Ceil never rounds down.
func (m Metric) Ceil(v float32) float32 {
	s := m.PxPerDp
	if s <= 0 {
		s = 1
	}
	return float32(math.Ceil(float64(v)*float64(s))) / s
}
