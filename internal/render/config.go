package render

import "image/color"

// Icon palette. Semi-transparent entries are non-premultiplied.
var (
	ShieldFill    = color.NRGBA{R: 0x38, G: 0xBD, B: 0xF8, A: 0xFF} // #38bdf8
	ShieldOutline = color.NRGBA{R: 0x0E, G: 0xA5, B: 0xE9, A: 0xFF} // #0ea5e9
	Highlight     = color.NRGBA{R: 125, G: 211, B: 252, A: 180}
	Checkmark     = color.NRGBA{R: 0xA7, G: 0xF3, B: 0xD0, A: 0xFF} // #a7f3d0
	Sparkle       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Shadow        = color.NRGBA{R: 0, G: 0, B: 0, A: 60}

	// Sizes written by the generator, in order.
	DefaultSizes = []int{16, 32, 48, 128}
)
