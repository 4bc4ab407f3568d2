// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts for text measurement.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/spekke/LayoutKit/font/opentype"
	"github.com/spekke/LayoutKit/text"
)

var (
	once  sync.Once
	faces struct {
		regular opentype.Face
		italic  opentype.Face
		bold    opentype.Face
		mono    opentype.Face
	}
)

func load() {
	once.Do(func() {
		faces.regular = parse(goregular.TTF)
		faces.italic = parse(goitalic.TTF)
		faces.bold = parse(gobold.TTF)
		faces.mono = parse(gomono.TTF)
	})
}

func parse(ttf []byte) opentype.Face {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return face
}

// Regular returns the Go regular face.
func Regular() opentype.Face {
	load()
	return faces.regular
}

// Italic returns the Go italic face.
func Italic() opentype.Face {
	load()
	return faces.italic
}

// Bold returns the Go bold face.
func Bold() opentype.Face {
	load()
	return faces.bold
}

// Mono returns the Go mono face.
func Mono() opentype.Face {
	load()
	return faces.mono
}

// Defaults returns the stock default font table on the Go regular
// face: body sized plain text and small attributed text.
func Defaults() text.Defaults {
	r := Regular()
	return text.Defaults{
		Plain:           text.Font{Face: r, Size: 17},
		Attributed:      text.Font{Face: r, Size: 12},
		AttributedEmpty: text.Font{Face: r, Size: 12},
	}
}
