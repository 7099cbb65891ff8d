package element

import (
	"strconv"

	"weft/flags"
	"weft/style"
	"weft/vdom"
)

// Attribute is one styling or semantic declaration attached to an
// element. Attributes are plain values; conflicts resolve during
// gathering, never at construction, so building a list allocates
// nothing surprising.
type Attribute interface {
	isAttribute()
}

type noAttribute struct{}

type rawAttr struct {
	attr vdom.Attribute
}

type classAttr struct {
	flag  flags.Flag
	class string
}

type styleClass struct {
	flag  flags.Flag
	style style.Style
}

type describe struct {
	description description
}

type widthAttr struct {
	length style.Length
}

type heightAttr struct {
	length style.Length
}

type alignX hAlign

type alignY vAlign

type nearby struct {
	location location
	element  Element
}

type transformAttr struct {
	flag      flags.Flag
	component style.TransformComponent
}

func (noAttribute) isAttribute()   {}
func (rawAttr) isAttribute()       {}
func (classAttr) isAttribute()     {}
func (styleClass) isAttribute()    {}
func (describe) isAttribute()      {}
func (widthAttr) isAttribute()     {}
func (heightAttr) isAttribute()    {}
func (alignX) isAttribute()        {}
func (alignY) isAttribute()        {}
func (nearby) isAttribute()        {}
func (transformAttr) isAttribute() {}

func htmlClass(cls string) Attribute {
	return rawAttr{vdom.Class(cls)}
}

type hAlign int

const (
	hLeft hAlign = iota
	hCenter
	hRight
)

type vAlign int

const (
	vTop vAlign = iota
	vCenter
	vBottom
)

func alignXClasses(a hAlign) string {
	switch a {
	case hCenter:
		return style.ClassAlignedHorizontally + " " + style.ClassAlignCenterX
	case hRight:
		return style.ClassAlignedHorizontally + " " + style.ClassAlignRight
	}
	return style.ClassAlignedHorizontally + " " + style.ClassAlignLeft
}

func alignYClasses(a vAlign) string {
	switch a {
	case vCenter:
		return style.ClassAlignedVertically + " " + style.ClassAlignCenterY
	case vBottom:
		return style.ClassAlignedVertically + " " + style.ClassAlignBottom
	}
	return style.ClassAlignedVertically + " " + style.ClassAlignTop
}

// description marks an element's semantic role for assistive technology
// and document structure.
type description interface {
	isDescription()
}

type (
	descMain          struct{}
	descNavigation    struct{}
	descContentInfo   struct{}
	descComplementary struct{}
	descHeading       struct{ level int }
	descLabel         struct{ label string }
	descLivePolite    struct{}
	descLiveAssertive struct{}
	descButton        struct{}
	descParagraph     struct{}
)

func (descMain) isDescription()          {}
func (descNavigation) isDescription()    {}
func (descContentInfo) isDescription()   {}
func (descComplementary) isDescription() {}
func (descHeading) isDescription()       {}
func (descLabel) isDescription()         {}
func (descLivePolite) isDescription()    {}
func (descLiveAssertive) isDescription() {}
func (descButton) isDescription()        {}
func (descParagraph) isDescription()     {}

// Width sets the element's width. When several widths are supplied the
// last one in authoring order wins.
func Width(l style.Length) Attribute { return widthAttr{l} }

// Height sets the element's height.
func Height(l style.Length) Attribute { return heightAttr{l} }

// Spacing sets the gap between the element's children on both axes.
func Spacing(n int) Attribute {
	return styleClass{flags.Spacing, style.SpacingStyle{Class: style.SpacingName(n, n), X: n, Y: n}}
}

// SpacingXY sets the horizontal and vertical child gaps independently.
func SpacingXY(x, y int) Attribute {
	return styleClass{flags.Spacing, style.SpacingStyle{Class: style.SpacingName(x, y), X: x, Y: y}}
}

// SpaceEvenly distributes leftover space between the children instead of
// after them.
func SpaceEvenly() Attribute {
	return classAttr{flags.Spacing, style.ClassSpaceEvenly}
}

// Padding pads all four sides. Integer values 0 through 24 resolve
// against the static sheet and emit no dynamic rule.
func Padding(n int) Attribute {
	f := float64(n)
	return styleClass{flags.Padding, style.PaddingStyle{
		Class: "p-" + strconv.Itoa(n),
		Top:   f, Right: f, Bottom: f, Left: f,
	}}
}

// PaddingXY pads the horizontal and vertical sides independently.
func PaddingXY(x, y int) Attribute {
	if x == y {
		return Padding(x)
	}
	fx, fy := float64(x), float64(y)
	return styleClass{flags.Padding, style.PaddingStyle{
		Class: "p-" + strconv.Itoa(x) + "-" + strconv.Itoa(y),
		Top:   fy, Right: fx, Bottom: fy, Left: fx,
	}}
}

// PaddingEach pads each side separately.
func PaddingEach(top, right, bottom, left int) Attribute {
	if top == right && top == bottom && top == left {
		return Padding(top)
	}
	return styleClass{flags.Padding, style.PaddingStyle{
		Class: style.PaddingName(top, right, bottom, left),
		Top:   float64(top), Right: float64(right), Bottom: float64(bottom), Left: float64(left),
	}}
}

// AlignLeft aligns the element to the left of its parent. Alignments on
// the same axis shadow each other; the last one wins.
func AlignLeft() Attribute { return alignX(hLeft) }

// AlignRight aligns the element to the right of its parent.
func AlignRight() Attribute { return alignX(hRight) }

// CenterX centers the element horizontally.
func CenterX() Attribute { return alignX(hCenter) }

// AlignTop aligns the element to the top of its parent.
func AlignTop() Attribute { return alignY(vTop) }

// AlignBottom aligns the element to the bottom of its parent.
func AlignBottom() Attribute { return alignY(vBottom) }

// CenterY centers the element vertically.
func CenterY() Attribute { return alignY(vCenter) }

// MoveUp shifts the element up without affecting layout. Movement,
// rotation and scale compose into a single transform; later components
// on the same axis replace earlier ones.
func MoveUp(y float64) Attribute {
	return transformAttr{flags.MoveY, style.MoveY(-y)}
}

// MoveDown shifts the element down.
func MoveDown(y float64) Attribute {
	return transformAttr{flags.MoveY, style.MoveY(y)}
}

// MoveRight shifts the element right.
func MoveRight(x float64) Attribute {
	return transformAttr{flags.MoveX, style.MoveX(x)}
}

// MoveLeft shifts the element left.
func MoveLeft(x float64) Attribute {
	return transformAttr{flags.MoveX, style.MoveX(-x)}
}

// Rotate turns the element clockwise by angle radians.
func Rotate(angle float64) Attribute {
	return transformAttr{flags.Rotate, style.Rotate{Axis: style.XYZ{X: 0, Y: 0, Z: 1}, Angle: angle}}
}

// Scale resizes the element by a factor without affecting layout.
func Scale(n float64) Attribute {
	return transformAttr{flags.Scale, style.Scale(style.XYZ{X: n, Y: n, Z: 1})}
}

// Alpha sets the element's opacity. Values outside [0, 1] clamp.
func Alpha(opacity float64) Attribute {
	t := 1 - opacity
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return styleClass{flags.Transparency, style.Transparency{
		Class: "transparency-" + style.FloatClass(t),
		Level: t,
	}}
}

// Pointer shows the pointing-hand cursor over the element.
func Pointer() Attribute {
	return classAttr{flags.Cursor, style.ClassCursorPointer}
}

// Explain outlines the element and its children for layout debugging.
func Explain() Attribute {
	return htmlClass("explain")
}

// BackgroundColor fills the element's background.
func BackgroundColor(c style.Color) Attribute {
	return styleClass{flags.BgColor, style.Colored{Class: "bg-" + c.FormatClass(), Prop: "background-color", Color: c}}
}

// FontColor sets the text color.
func FontColor(c style.Color) Attribute {
	return styleClass{flags.FontColor, style.Colored{Class: "fc-" + c.FormatClass(), Prop: "color", Color: c}}
}

// FontSize sets the text size in pixels. Sizes 8 through 32 resolve
// against the static sheet.
func FontSize(n int) Attribute {
	return styleClass{flags.FontSize, style.FontSize(n)}
}

// FontFamily sets the typeface stack, most preferred first.
func FontFamily(fonts ...style.Font) Attribute {
	return styleClass{flags.FontFamily, style.FontFamily{
		Class: style.FamilyClassName("ff-", fonts),
		Fonts: fonts,
	}}
}

// Bold renders text at weight 700.
func Bold() Attribute { return classAttr{flags.FontWeight, style.ClassBold} }

// Italic renders italic text.
func Italic() Attribute { return htmlClass(style.ClassItalic) }

// Underline underlines text.
func Underline() Attribute { return htmlClass(style.ClassUnderline) }

// Strike renders struck-through text.
func Strike() Attribute { return htmlClass(style.ClassStrike) }

// TextCenter centers text within its line box.
func TextCenter() Attribute { return classAttr{flags.FontAlignment, style.ClassTextCenter} }

// TextLeft left-aligns text.
func TextLeft() Attribute { return classAttr{flags.FontAlignment, style.ClassTextLeft} }

// TextRight right-aligns text.
func TextRight() Attribute { return classAttr{flags.FontAlignment, style.ClassTextRight} }

// TextJustify stretches lines to the full width.
func TextJustify() Attribute { return classAttr{flags.FontAlignment, style.ClassTextJustify} }

// BorderWidth sets a uniform border width. Widths 0 through 6 resolve
// against the static sheet.
func BorderWidth(n int) Attribute {
	return styleClass{flags.BorderWidth, style.Single{
		Class: "border-" + strconv.Itoa(n),
		Prop:  "border-width",
		Value: strconv.Itoa(n) + "px",
	}}
}

// BorderWidthEach sets each border width separately.
func BorderWidthEach(top, right, bottom, left int) Attribute {
	if top == bottom && left == right {
		if top == right {
			return BorderWidth(top)
		}
		return styleClass{flags.BorderWidth, style.BorderWidth{
			Class: "b-" + strconv.Itoa(top) + "-" + strconv.Itoa(right),
			Top:   top, Right: right, Bottom: bottom, Left: left,
		}}
	}
	return styleClass{flags.BorderWidth, style.BorderWidth{
		Class: "b-" + strconv.Itoa(top) + "-" + strconv.Itoa(right) +
			"-" + strconv.Itoa(bottom) + "-" + strconv.Itoa(left),
		Top: top, Right: right, Bottom: bottom, Left: left,
	}}
}

// BorderRounded rounds the element's corners.
func BorderRounded(radius int) Attribute {
	return styleClass{flags.BorderRound, style.Single{
		Class: "br-" + strconv.Itoa(radius),
		Prop:  "border-radius",
		Value: strconv.Itoa(radius) + "px",
	}}
}

// BorderColor colors all four borders.
func BorderColor(c style.Color) Attribute {
	return styleClass{flags.BorderColor, style.Colored{Class: "bc-" + c.FormatClass(), Prop: "border-color", Color: c}}
}

// BorderShadow casts an outer box shadow.
func BorderShadow(s style.Shadow) Attribute {
	return styleClass{flags.Shadows, style.Shadows{
		Class: s.BoxShadowClass(false),
		Prop:  s.FormatBoxShadow(false),
	}}
}

// Above attaches an element floating above this one without affecting
// layout. Nearby attachments stack in authoring order.
func Above(el Element) Attribute { return newNearby(above, el) }

// Below attaches an element floating below this one.
func Below(el Element) Attribute { return newNearby(below, el) }

// OnRight attaches an element to the right edge.
func OnRight(el Element) Attribute { return newNearby(onRight, el) }

// OnLeft attaches an element to the left edge.
func OnLeft(el Element) Attribute { return newNearby(onLeft, el) }

// InFront overlays an element on top of this one's content.
func InFront(el Element) Attribute { return newNearby(inFront, el) }

// BehindContent slips an element behind this one's content.
func BehindContent(el Element) Attribute { return newNearby(behind, el) }

func newNearby(loc location, el Element) Attribute {
	if _, ok := el.(empty); ok {
		return noAttribute{}
	}
	return nearby{location: loc, element: el}
}

// MainContent marks the page's main landmark and renders the element as
// a <main> tag.
func MainContent() Attribute { return describe{descMain{}} }

// Navigation marks a navigation landmark.
func Navigation() Attribute { return describe{descNavigation{}} }

// Footer marks a content-info landmark.
func Footer() Attribute { return describe{descContentInfo{}} }

// Aside marks a complementary landmark.
func Aside() Attribute { return describe{descComplementary{}} }

// Heading marks the element as a heading of the given level, clamped to
// h1 through h6.
func Heading(level int) Attribute { return describe{descHeading{level}} }

// AriaLabel labels the element for assistive technology.
func AriaLabel(label string) Attribute { return describe{descLabel{label}} }

// Announce asks screen readers to read updates to this region when idle.
func Announce() Attribute { return describe{descLivePolite{}} }

// AnnounceUrgently asks screen readers to interrupt with updates to this
// region.
func AnnounceUrgently() Attribute { return describe{descLiveAssertive{}} }

// ButtonRole marks a non-button element as acting like a button.
func ButtonRole() Attribute { return describe{descButton{}} }

// NoStaticStyleSheet renders without the static base sheet; the host
// serves it once out of band instead of once per root.
func NoStaticStyleSheet() style.Option {
	return style.RenderModeOption(style.NoStaticStyleSheet)
}

// VirtualCSS hands rules to the host as element properties instead of
// rendered CSS text.
func VirtualCSS() style.Option {
	return style.RenderModeOption(style.WithVirtualCSS)
}

// NoHover drops hover rules entirely, for touch-first targets where
// hover states misfire.
func NoHover() style.Option { return style.HoverOption(style.NoHover) }

// ForceHover renders hover rules unconditionally.
func ForceHover() style.Option { return style.HoverOption(style.ForceHover) }

// FocusStyle replaces the default focus ring.
func FocusStyle(fs style.FocusStyle) style.Option { return style.FocusStyleOption(fs) }

// extractSpacingAndPadding picks the effective spacing and padding the
// same way gathering would: the last of each in authoring order.
func extractSpacingAndPadding(attrs []Attribute) (pad *style.PaddingStyle, space *style.SpacingStyle) {
	for i := len(attrs) - 1; i >= 0 && (pad == nil || space == nil); i-- {
		sc, ok := attrs[i].(styleClass)
		if !ok {
			continue
		}
		switch s := sc.style.(type) {
		case style.PaddingStyle:
			if pad == nil {
				p := s
				pad = &p
			}
		case style.SpacingStyle:
			if space == nil {
				sp := s
				space = &sp
			}
		}
	}
	return pad, space
}
