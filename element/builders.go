package element

import (
	"strconv"

	"weft/flags"
	"weft/style"
	"weft/vdom"
)

// None renders nothing and takes no space.
func None() Element { return empty{} }

// Text is a raw text run. It renders inside a content-sized text node,
// or a fill-sized one when it is the lone child of an el.
func Text(content string) Element { return textRun(content) }

// El wraps a single child, shrink-sized unless the attributes say
// otherwise.
func El(attrs []Attribute, child Element) Element {
	base := []Attribute{Width(Shrink()), Height(Shrink())}
	return newElement(asEl, nodeName{}, append(base, attrs...), unkeyedOf(child))
}

// Row lays out children horizontally, left-aligned and vertically
// centered by default.
func Row(attrs []Attribute, children ...Element) Element {
	base := []Attribute{
		htmlClass(style.ClassContentLeft + " " + style.ClassContentCenterY),
		Width(Shrink()),
		Height(Shrink()),
	}
	return newElement(asRow, nodeName{}, append(base, attrs...), unkeyedOf(children...))
}

// Column lays out children vertically from the top left.
func Column(attrs []Attribute, children ...Element) Element {
	base := []Attribute{
		htmlClass(style.ClassContentTop + " " + style.ClassContentLeft),
		Height(Shrink()),
		Width(Shrink()),
	}
	return newElement(asColumn, nodeName{}, append(base, attrs...), unkeyedOf(children...))
}

// KeyedRow is Row with diff-stable child keys.
func KeyedRow(attrs []Attribute, children []KeyedElement) Element {
	base := []Attribute{
		htmlClass(style.ClassContentLeft + " " + style.ClassContentCenterY),
		Width(Shrink()),
		Height(Shrink()),
	}
	return newElement(asRow, nodeName{}, append(base, attrs...), keyedOf(children))
}

// KeyedColumn is Column with diff-stable child keys.
func KeyedColumn(attrs []Attribute, children []KeyedElement) Element {
	base := []Attribute{
		htmlClass(style.ClassContentTop + " " + style.ClassContentLeft),
		Height(Shrink()),
		Width(Shrink()),
	}
	return newElement(asColumn, nodeName{}, append(base, attrs...), keyedOf(children))
}

// WrappedRow lays out children horizontally, wrapping onto new lines.
// Wrapped line spacing is real margin on every child, which leaks on the
// container's outer edge; enough padding absorbs it, otherwise a
// negative-margin wrapper cancels it.
func WrappedRow(attrs []Attribute, children ...Element) Element {
	rowClass := htmlClass(style.ClassContentLeft + " " + style.ClassContentCenterY + " " + style.ClassWrapped)

	pad, space := extractSpacingAndPadding(attrs)
	if space == nil {
		base := []Attribute{rowClass, Width(Shrink()), Height(Shrink())}
		return newElement(asRow, nodeName{}, append(base, attrs...), unkeyedOf(children...))
	}

	x, y := space.X, space.Y
	if pad != nil && pad.Right >= float64(x)/2 && pad.Bottom >= float64(y)/2 {
		top := pad.Top - float64(y)/2
		right := pad.Right - float64(x)/2
		bottom := pad.Bottom - float64(y)/2
		left := pad.Left - float64(x)/2
		compensated := styleClass{flags.Padding, style.PaddingStyle{
			Class: style.PaddingNameFloat(top, right, bottom, left),
			Top:   top, Right: right, Bottom: bottom, Left: left,
		}}
		base := []Attribute{rowClass, Width(Shrink()), Height(Shrink())}
		base = append(base, attrs...)
		// Appended after the author's attributes so it wins the padding
		// slot over the padding it compensates for.
		base = append(base, compensated)
		return newElement(asRow, nodeName{}, base, unkeyedOf(children...))
	}

	// Not enough padding to absorb the margins: cancel them with an
	// oversized inner row instead.
	halfX := -float64(x) / 2
	halfY := -float64(y) / 2
	inner := newElement(asRow, nodeName{}, []Attribute{
		rowClass,
		rawAttr{vdom.Style("margin", style.FormatFloat(halfY) + "px " + style.FormatFloat(halfX) + "px")},
		rawAttr{vdom.Style("width", "calc(100% + " + strconv.Itoa(x) + "px)")},
		rawAttr{vdom.Style("height", "calc(100% + " + strconv.Itoa(y) + "px)")},
		styleClass{flags.Spacing, *space},
	}, unkeyedOf(children...))
	return newElement(asEl, nodeName{}, attrs, unkeyedOf(inner))
}

// Paragraph flows its children as inline text, filling the available
// width with a 5px line gap by default.
func Paragraph(attrs []Attribute, children ...Element) Element {
	base := []Attribute{describe{descParagraph{}}, Width(Fill()), Spacing(5)}
	return newElement(asParagraph, nodeName{}, append(base, attrs...), unkeyedOf(children...))
}

// TextColumn arranges paragraphs and text blocks in a readable column,
// 500 to 750 pixels wide unless the caller sets a width.
func TextColumn(attrs []Attribute, children ...Element) Element {
	base := []Attribute{Width(Maximum(750, Minimum(500, Fill())))}
	return newElement(asTextColumn, nodeName{}, append(base, attrs...), unkeyedOf(children...))
}

// Image renders an img inside a container so nearby decorations have
// something to anchor to. The description becomes the alt text; width
// and height attributes apply to the image itself, everything else to
// the container.
func Image(attrs []Attribute, src, description string) Element {
	sizing := []Attribute{
		rawAttr{vdom.Src(src)},
		rawAttr{vdom.Alt(description)},
	}
	for _, a := range attrs {
		switch a.(type) {
		case widthAttr, heightAttr:
			sizing = append(sizing, a)
		}
	}
	img := newElement(asEl, nodeName{base: "img"}, sizing, unkeyedOf())
	base := []Attribute{htmlClass(style.ClassImageContainer)}
	return newElement(asEl, nodeName{}, append(base, attrs...), unkeyedOf(img))
}

// Link renders an anchor around the label.
func Link(attrs []Attribute, url string, label Element) Element {
	return anchor(attrs, url, label,
		rawAttr{vdom.Rel("noopener noreferrer")},
	)
}

// NewTabLink opens the target in a new tab.
func NewTabLink(attrs []Attribute, url string, label Element) Element {
	return anchor(attrs, url, label,
		rawAttr{vdom.Rel("noopener noreferrer")},
		rawAttr{vdom.Target("_blank")},
	)
}

// DownloadLink asks the browser to save the target under the given
// filename instead of navigating. An empty filename keeps the name the
// server suggests.
func DownloadLink(attrs []Attribute, url, filename string, label Element) Element {
	return anchor(attrs, url, label,
		rawAttr{vdom.Download(filename)},
	)
}

func anchor(attrs []Attribute, url string, label Element, extra ...Attribute) Element {
	base := append([]Attribute{rawAttr{vdom.Href(url)}}, extra...)
	base = append(base,
		Width(Shrink()),
		Height(Shrink()),
		htmlClass(style.ClassContentCenterX+" "+style.ClassContentCenterY+" "+style.ClassLink),
	)
	return newElement(asEl, nodeName{base: "a"}, append(base, attrs...), unkeyedOf(label))
}

// Px is an exact pixel length.
func Px(n int) style.Length { return style.Px(n) }

// Shrink sizes to content.
func Shrink() style.Length { return style.Content{} }

// Fill takes all remaining space, shared equally with sibling fills.
func Fill() style.Length { return style.Fill(1) }

// FillPortion weights this element's share of remaining space relative
// to its sibling fills.
func FillPortion(n int) style.Length { return style.Fill(n) }

// Minimum bounds a length from below.
func Minimum(size int, l style.Length) style.Length {
	return style.Min{Size: size, Length: l}
}

// Maximum bounds a length from above.
func Maximum(size int, l style.Length) style.Length {
	return style.Max{Size: size, Length: l}
}

// Rgb builds an opaque color from unit-interval channels.
func Rgb(r, g, b float64) style.Color {
	return style.Color{R: r, G: g, B: b, A: 1}
}

// Rgba builds a color from unit-interval channels with explicit alpha.
func Rgba(r, g, b, a float64) style.Color {
	return style.Color{R: r, G: g, B: b, A: a}
}

// Rgb255 builds an opaque color from 0-255 channels.
func Rgb255(r, g, b uint8) style.Color {
	return style.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// Rgba255 builds a color from 0-255 channels and a fractional alpha.
func Rgba255(r, g, b uint8, a float64) style.Color {
	return style.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: a}
}
