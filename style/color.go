package style

import (
	"math"
	"strconv"
)

// Color is an RGBA color with unit-interval channels.
type Color struct {
	R, G, B, A float64
}

// Format renders the color as a CSS rgba() value. RGB channels scale to
// 0-255, alpha stays fractional.
func (c Color) Format() string {
	return "rgba(" + FloatClass(c.R) + "," + FloatClass(c.G) + "," + FloatClass(c.B) + "," + FormatFloat(c.A) + ")"
}

// FormatClass renders the color as a class-name fragment. All four
// channels use the 255-scaled integer encoding so visually identical
// colors collide to the same name.
func (c Color) FormatClass() string {
	return FloatClass(c.R) + "-" + FloatClass(c.G) + "-" + FloatClass(c.B) + "-" + FloatClass(c.A)
}

// FloatClass encodes a unit-interval channel for use in a class name:
// multiply by 255 and round to the nearest integer.
func FloatClass(v float64) string {
	return strconv.Itoa(int(math.Round(v * 255)))
}

// FormatFloat renders a float the way CSS values and class names expect:
// plain decimal form, at most four fractional digits, no trailing zeros.
func FormatFloat(v float64) string {
	r := math.Round(v*10000) / 10000
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Shadow describes one box/text shadow.
type Shadow struct {
	Color   Color
	OffsetX float64
	OffsetY float64
	Blur    float64
	Size    float64
}

// FormatDropShadow renders the shadow for a drop-shadow() filter
// (no spread component).
func (s Shadow) FormatDropShadow() string {
	return FormatFloat(s.OffsetX) + "px " + FormatFloat(s.OffsetY) + "px " + FormatFloat(s.Blur) + "px " + s.Color.Format()
}

// FormatTextShadow renders the shadow as a text-shadow value.
func (s Shadow) FormatTextShadow() string {
	return FormatFloat(s.OffsetX) + "px " + FormatFloat(s.OffsetY) + "px " + FormatFloat(s.Blur) + "px " + s.Color.Format()
}

// TextShadowClass derives the class-name fragment for a text shadow.
func (s Shadow) TextShadowClass() string {
	return "txt" + FloatClass(s.OffsetX) + "px" + FloatClass(s.OffsetY) + "px" + FloatClass(s.Blur) + "px" + s.Color.FormatClass()
}

// FormatBoxShadow renders the shadow as a box-shadow value.
func (s Shadow) FormatBoxShadow(inset bool) string {
	v := FormatFloat(s.OffsetX) + "px " + FormatFloat(s.OffsetY) + "px " + FormatFloat(s.Blur) + "px " + FormatFloat(s.Size) + "px " + s.Color.Format()
	if inset {
		return "inset " + v
	}
	return v
}

// BoxShadowClass derives the class-name fragment for a box shadow.
func (s Shadow) BoxShadowClass(inset bool) string {
	prefix := "box-"
	if inset {
		prefix = "box-inset"
	}
	return prefix + FloatClass(s.OffsetX) + "px" + FloatClass(s.OffsetY) + "px" + FloatClass(s.Blur) + "px" + FloatClass(s.Size) + "px" + s.Color.FormatClass()
}
