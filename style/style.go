// Package style models renderable CSS rules. Every rule value derives a
// canonical class name from its payload; the name doubles as the stylesheet
// selector and as the deduplication key, so equal payloads always collide.
package style

import (
	"strconv"
	"strings"

	"weft/flags"
)

// Property is one CSS property/value pair.
type Property struct {
	Name  string
	Value string
}

// Style is a renderable CSS rule shape. The set of variants is closed:
// consumers type-switch exhaustively and a new variant requires updating
// every switch.
type Style interface {
	// Name returns the canonical class name derived from the payload.
	// It is pure: equal payloads yield equal names.
	Name() string
	isStyle()
}

// Rule is an arbitrary named rule carrying a full property list. The
// selector is emitted verbatim, so it may address pseudo classes or
// multiple targets.
type Rule struct {
	Selector string
	Props    []Property
}

// Shadows is a named box-shadow rule with a preformatted value.
type Shadows struct {
	Class string
	Prop  string
}

// Transparency renders an opacity rule; the stored value is the
// transparency level, the rendered opacity is 1-clamp(level, 0, 1).
type Transparency struct {
	Class string
	Level float64
}

// FontSize is a numeric font size in pixels.
type FontSize int

// FontFamily is a typeface stack.
type FontFamily struct {
	Class string
	Fonts []Font
}

// Single is one property/value pair.
type Single struct {
	Class string
	Prop  string
	Value string
}

// Colored is a color-valued property; the class embeds the color's
// 255-scaled channel encoding.
type Colored struct {
	Class string
	Prop  string
	Color Color
}

// SpacingStyle is the gap between the children of a container, per axis.
type SpacingStyle struct {
	Class string
	X     int
	Y     int
}

// BorderWidth is a four-sided border width.
type BorderWidth struct {
	Class  string
	Top    int
	Right  int
	Bottom int
	Left   int
}

// PaddingStyle is a four-sided padding; sides are fractional to support
// the wrapped-row compensation algebra.
type PaddingStyle struct {
	Class  string
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GridTemplateStyle describes grid tracks and gaps.
type GridTemplateStyle struct {
	SpacingX Length
	SpacingY Length
	Columns  []Length
	Rows     []Length
}

// GridPosition places an element inside a grid template.
type GridPosition struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// Transform is a composed transform (see Transformation).
type Transform struct {
	Transformation
}

// PseudoSelector wraps nested styles under a pseudo class.
type PseudoSelector struct {
	Class  PseudoClass
	Styles []Style
}

func (r Rule) Name() string         { return r.Selector }
func (s Shadows) Name() string      { return s.Class }
func (t Transparency) Name() string { return t.Class }
func (f FontSize) Name() string     { return "font-size-" + strconv.Itoa(int(f)) }
func (f FontFamily) Name() string   { return f.Class }
func (s Single) Name() string       { return s.Class }
func (c Colored) Name() string      { return c.Class }
func (s SpacingStyle) Name() string { return s.Class }
func (b BorderWidth) Name() string  { return b.Class }
func (p PaddingStyle) Name() string { return p.Class }

func (g GridTemplateStyle) Name() string {
	rows := make([]string, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = r.ClassName()
	}
	cols := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		cols[i] = c.ClassName()
	}
	return "grid-rows-" + strings.Join(rows, "-") +
		"-cols-" + strings.Join(cols, "-") +
		"-space-x-" + g.SpacingX.ClassName() +
		"-space-y-" + g.SpacingY.ClassName()
}

func (g GridPosition) Name() string {
	return "gp grid-pos-" + strconv.Itoa(g.Row) + "-" + strconv.Itoa(g.Col) +
		"-" + strconv.Itoa(g.Width) + "-" + strconv.Itoa(g.Height)
}

func (t Transform) Name() string {
	cls, ok := t.Class()
	if !ok {
		return ""
	}
	return cls
}

func (p PseudoSelector) Name() string {
	names := make([]string, 0, len(p.Styles))
	for _, s := range p.Styles {
		name := s.Name()
		if name == "" {
			names = append(names, "")
			continue
		}
		names = append(names, name+"-"+p.Class.String())
	}
	return strings.Join(names, " ")
}

func (Rule) isStyle()              {}
func (Shadows) isStyle()           {}
func (Transparency) isStyle()      {}
func (FontSize) isStyle()          {}
func (FontFamily) isStyle()        {}
func (Single) isStyle()            {}
func (Colored) isStyle()           {}
func (SpacingStyle) isStyle()      {}
func (BorderWidth) isStyle()       {}
func (PaddingStyle) isStyle()      {}
func (GridTemplateStyle) isStyle() {}
func (GridPosition) isStyle()      {}
func (Transform) isStyle()         {}
func (PseudoSelector) isStyle()    {}

// PseudoClass selects a pseudo-class wrapper for nested styles.
type PseudoClass int

const (
	PseudoFocus PseudoClass = iota
	PseudoHover
	PseudoActive
)

// String returns the short suffix used in class names and selectors.
func (p PseudoClass) String() string {
	switch p {
	case PseudoFocus:
		return "fs"
	case PseudoHover:
		return "hv"
	case PseudoActive:
		return "act"
	}
	return ""
}

// Tag prefixes the style's class with a label so decorations applied under
// different pseudo wrappers do not collide with their plain counterparts.
// Variants without a free-form class pass through unchanged.
func Tag(label string, s Style) Style {
	switch s := s.(type) {
	case Single:
		s.Class = label + "-" + s.Class
		return s
	case Colored:
		s.Class = label + "-" + s.Class
		return s
	case Rule:
		s.Selector = label + "-" + s.Selector
		return s
	case Transparency:
		s.Class = label + "-" + s.Class
		return s
	default:
		return s
	}
}

// Skippable reports whether the style's value falls in a range pre-baked
// into the static sheet, so the element references it by class name alone
// and no dynamic rule is emitted. Uniform border widths 0-6, font sizes
// 8-32 and uniform integral paddings 0-24 are pre-baked. The class must be
// the pre-baked name itself: a compensated wrapped-row padding carries a
// 255-scaled float name, and skipping it would leave the class without a
// rule.
func Skippable(flag flags.Flag, s Style) bool {
	if flag == flags.BorderWidth {
		single, ok := s.(Single)
		if !ok {
			return false
		}
		switch single.Value {
		case "0px", "1px", "2px", "3px", "4px", "5px", "6px":
			return true
		}
		return false
	}
	switch s := s.(type) {
	case FontSize:
		return s >= 8 && s <= 32
	case PaddingStyle:
		if s.Top != s.Bottom || s.Top != s.Right || s.Top != s.Left {
			return false
		}
		n := int(s.Top)
		return s.Top == float64(n) && n >= 0 && n <= 24 &&
			s.Class == "p-"+strconv.Itoa(n)
	}
	return false
}

// SpacingName derives the canonical class for a spacing pair.
func SpacingName(x, y int) string {
	return "spacing-" + strconv.Itoa(x) + "-" + strconv.Itoa(y)
}

// PaddingName derives the canonical class for integral padding sides.
func PaddingName(top, right, bottom, left int) string {
	return "pad-" + strconv.Itoa(top) + "-" + strconv.Itoa(right) +
		"-" + strconv.Itoa(bottom) + "-" + strconv.Itoa(left)
}

// PaddingNameFloat derives the canonical class for fractional padding
// sides using the 255-scaled encoding.
func PaddingNameFloat(top, right, bottom, left float64) string {
	return "pad-" + FloatClass(top) + "-" + FloatClass(right) +
		"-" + FloatClass(bottom) + "-" + FloatClass(left)
}
