// Package element builds declarative layout trees and renders them to
// virtual DOM nodes plus a deduplicated stylesheet. An element carries a
// flat attribute list; gathering resolves it in one pass so the last
// attribute in authoring order wins each semantic slot, and every style
// rule produced below an element bubbles up to the root, which renders
// the whole collection exactly once.
package element

import (
	"strconv"
	"strings"

	"weft/flags"
	"weft/style"
	"weft/vdom"
)

// Element is a laid-out tree node awaiting finalization by its parent
// container, or by Layout at the root.
type Element interface {
	isElement()
}

type empty struct{}

type textRun string

type unstyled struct {
	args renderArgs
}

type styled struct {
	styles []style.Style
	args   renderArgs
}

func (empty) isElement()    {}
func (textRun) isElement()  {}
func (unstyled) isElement() {}
func (styled) isElement()   {}

// renderArgs is everything finalizeNode needs once the element's own
// attributes and children have been resolved.
type renderArgs struct {
	has      flags.Field
	node     nodeName
	attrs    []vdom.Attribute
	children childList
}

// childList holds the element's already-rendered virtual children.
type childList struct {
	keyed bool
	nodes []vdom.Child
}

// nodeName is the rendered tag. The zero value is a generic div. One
// semantic override replaces the tag; a second nests inside the first,
// so a link that is also a heading renders <a><h2>...</h2></a>. Further
// overrides are ignored.
type nodeName struct {
	base     string
	embedded string
}

func (n nodeName) add(tag string) nodeName {
	switch {
	case n.base == "":
		return nodeName{base: tag}
	case n.embedded == "":
		return nodeName{base: n.base, embedded: tag}
	}
	return n
}

// layoutContext is the container mode an element renders under. It
// selects the context classes and the alignment wrapper rules.
type layoutContext int

const (
	asRow layoutContext = iota
	asColumn
	asEl
	asGrid
	asParagraph
	asTextColumn
)

func contextClasses(ctx layoutContext) string {
	switch ctx {
	case asRow:
		return style.ClassAny + " " + style.ClassRow
	case asColumn:
		return style.ClassAny + " " + style.ClassColumn
	case asGrid:
		return style.ClassAny + " " + style.ClassGrid
	case asParagraph:
		return style.ClassAny + " " + style.ClassParagraph
	case asTextColumn:
		return style.ClassAny + " " + style.ClassPage
	}
	return style.ClassAny + " " + style.ClassSingle
}

// elementChildren is the child set before rendering.
type elementChildren struct {
	keyed bool
	list  []Element
	pairs []KeyedElement
}

// KeyedElement names a child so host-side diffing can track it across
// re-renders. Keys never reach serialized output.
type KeyedElement struct {
	Key     string
	Element Element
}

func unkeyedOf(els ...Element) elementChildren {
	return elementChildren{list: els}
}

func keyedOf(pairs []KeyedElement) elementChildren {
	return elementChildren{keyed: true, pairs: pairs}
}

// nearbyChildren buckets elements attached with Above, Below, OnRight,
// OnLeft, InFront and BehindContent. Behind children render before the
// main children, everything else after.
type nearbyChildren struct {
	behind  []vdom.Child
	inFront []vdom.Child
}

// add prepends: gathering walks attributes back to front, so prepending
// restores authoring order.
func (nc nearbyChildren) add(loc location, el Element) nearbyChildren {
	child := vdom.Element(nearbyElement(loc, el))
	if loc == behind {
		nc.behind = append([]vdom.Child{child}, nc.behind...)
	} else {
		nc.inFront = append([]vdom.Child{child}, nc.inFront...)
	}
	return nc
}

func (nc nearbyChildren) none() bool {
	return len(nc.behind) == 0 && len(nc.inFront) == 0
}

type location int

const (
	above location = iota
	below
	onRight
	onLeft
	inFront
	behind
)

func (l location) class() string {
	switch l {
	case above:
		return style.ClassAbove
	case below:
		return style.ClassBelow
	case onRight:
		return style.ClassOnRight
	case onLeft:
		return style.ClassOnLeft
	case inFront:
		return style.ClassInFront
	}
	return style.ClassBehind
}

// gathered is the result of one attribute-gathering pass.
type gathered struct {
	node     nodeName
	attrs    []vdom.Attribute
	styles   []style.Style
	children nearbyChildren
	has      flags.Field
}

// newElement gathers the attribute list and folds the children into a
// finished Element.
func newElement(ctx layoutContext, node nodeName, attrs []Attribute, children elementChildren) Element {
	return createElement(ctx, children, gatherAttributes(ctx, node, attrs))
}

// gatherAttributes resolves a flat attribute list into a class string,
// raw attributes, style rules and nearby children. It walks the list
// back to front so that the first attribute to claim a flag is the last
// one the author wrote.
func gatherAttributes(ctx layoutContext, node nodeName, attrs []Attribute) gathered {
	var (
		classes  = contextClasses(ctx)
		has      = flags.None()
		trans    = style.Transformation(style.Untransformed{})
		styles   []style.Style
		raw      []vdom.Attribute
		children nearbyChildren
	)

	prependStyle := func(s style.Style) {
		styles = append([]style.Style{s}, styles...)
	}
	prependAttr := func(a vdom.Attribute) {
		raw = append([]vdom.Attribute{a}, raw...)
	}

	for i := len(attrs) - 1; i >= 0; i-- {
		switch attr := attrs[i].(type) {
		case noAttribute:

		case rawAttr:
			prependAttr(attr.attr)

		case classAttr:
			if has.Present(attr.flag) {
				continue
			}
			has = has.Add(attr.flag)
			classes = attr.class + " " + classes

		case styleClass:
			if has.Present(attr.flag) {
				continue
			}
			has = has.Add(attr.flag)
			classes = attr.style.Name() + " " + classes
			if !style.Skippable(attr.flag, attr.style) {
				prependStyle(attr.style)
			}

		case describe:
			switch d := attr.description.(type) {
			case descMain:
				node = node.add("main")
			case descNavigation:
				node = node.add("nav")
			case descContentInfo:
				node = node.add("footer")
			case descComplementary:
				node = node.add("aside")
			case descHeading:
				switch {
				case d.level <= 1:
					node = node.add("h1")
				case d.level < 7:
					node = node.add("h" + strconv.Itoa(d.level))
				default:
					node = node.add("h6")
				}
			case descButton:
				prependAttr(vdom.Attr("role", "button"))
			case descLabel:
				prependAttr(vdom.Attr("aria-label", d.label))
			case descLivePolite:
				prependAttr(vdom.Attr("aria-live", "polite"))
			case descLiveAssertive:
				prependAttr(vdom.Attr("aria-live", "assertive"))
			case descParagraph:
				// A <p> tag would be invalid HTML around the block
				// children a paragraph is allowed to contain, so the
				// marker changes nothing about the rendered node.
			}

		case widthAttr:
			if has.Present(flags.Width) {
				continue
			}
			switch w := attr.length.(type) {
			case style.Px:
				name := "width-px-" + strconv.Itoa(int(w))
				classes = style.ClassWidthExact + " " + name + " " + classes
				prependStyle(style.Single{Class: name, Prop: "width", Value: strconv.Itoa(int(w)) + "px"})
				has = has.Add(flags.Width)
			case style.Content:
				classes = style.ClassWidthContent + " " + classes
				has = has.Add(flags.Width).Add(flags.WidthContent)
			case style.Fill:
				if w == 1 {
					classes = style.ClassWidthFill + " " + classes
				} else {
					portion := strconv.Itoa(int(w))
					classes = classes + " " + style.ClassWidthFillPortion + " width-fill-" + portion
					prependStyle(style.Single{
						Class: style.ClassAny + "." + style.ClassRow + " > .width-fill-" + portion,
						Prop:  "flex-grow",
						Value: strconv.Itoa(int(w) * 100000),
					})
				}
				has = has.Add(flags.Width).Add(flags.WidthFill)
			default:
				between, cls, widthStyles := renderWidth(attr.length)
				classes = classes + " " + cls
				styles = append(widthStyles, styles...)
				has = has.Add(flags.Width).Merge(between)
			}

		case heightAttr:
			if has.Present(flags.Height) {
				continue
			}
			switch h := attr.length.(type) {
			case style.Px:
				name := "height-px-" + strconv.Itoa(int(h))
				classes = style.ClassHeightExact + " " + name + " " + classes
				prependStyle(style.Single{Class: name, Prop: "height", Value: strconv.Itoa(int(h)) + "px"})
				has = has.Add(flags.Height)
			case style.Content:
				classes = style.ClassHeightContent + " " + classes
				has = has.Add(flags.Height).Add(flags.HeightContent)
			case style.Fill:
				if h == 1 {
					classes = style.ClassHeightFill + " " + classes
				} else {
					portion := strconv.Itoa(int(h))
					classes = classes + " " + style.ClassHeightFillPortion + " height-fill-" + portion
					prependStyle(style.Single{
						Class: style.ClassAny + "." + style.ClassColumn + " > .height-fill-" + portion,
						Prop:  "flex-grow",
						Value: strconv.Itoa(int(h) * 100000),
					})
				}
				has = has.Add(flags.Height).Add(flags.HeightFill)
			default:
				between, cls, heightStyles := renderHeight(attr.length)
				classes = classes + " " + cls
				styles = append(heightStyles, styles...)
				has = has.Add(flags.Height).Merge(between)
			}

		case alignX:
			if has.Present(flags.AlignX) {
				continue
			}
			has = has.Add(flags.AlignX)
			switch hAlign(attr) {
			case hCenter:
				has = has.Add(flags.CenterX)
			case hRight:
				has = has.Add(flags.AlignRight)
			}
			classes = alignXClasses(hAlign(attr)) + " " + classes

		case alignY:
			if has.Present(flags.AlignY) {
				continue
			}
			has = has.Add(flags.AlignY)
			switch vAlign(attr) {
			case vCenter:
				has = has.Add(flags.CenterY)
			case vBottom:
				has = has.Add(flags.AlignBottom)
			}
			classes = alignYClasses(vAlign(attr)) + " " + classes

		case nearby:
			if s, ok := attr.element.(styled); ok {
				styles = append(styles, s.styles...)
			}
			children = children.add(attr.location, attr.element)

		case transformAttr:
			// Transforms never shadow each other; every component
			// composes into one accumulated transformation.
			has = has.Add(attr.flag)
			trans = trans.Compose(attr.component)
		}
	}

	if cls, ok := trans.Class(); ok {
		classes = classes + " " + cls
		prependStyle(style.Transform{Transformation: trans})
	}

	return gathered{
		node:     node,
		attrs:    append([]vdom.Attribute{vdom.Class(classes)}, raw...),
		styles:   styles,
		children: children,
		has:      has,
	}
}

// renderWidth resolves a bounded width recursively: a min or max bound
// contributes its class and rule first, then whatever the wrapped length
// produces. The between flag records that the plain fill bit no longer
// tells the whole story, which keeps row containers from unwrapping a
// bounded fill.
func renderWidth(w style.Length) (flags.Field, string, []style.Style) {
	switch w := w.(type) {
	case style.Px:
		name := "width-px-" + strconv.Itoa(int(w))
		return flags.None(), style.ClassWidthExact + " " + name, []style.Style{
			style.Single{Class: name, Prop: "width", Value: strconv.Itoa(int(w)) + "px"},
		}
	case style.Content:
		return flags.None().Add(flags.WidthContent), style.ClassWidthContent, nil
	case style.Fill:
		if w == 1 {
			return flags.None().Add(flags.WidthFill), style.ClassWidthFill, nil
		}
		portion := strconv.Itoa(int(w))
		return flags.None().Add(flags.WidthFill),
			style.ClassWidthFillPortion + " width-fill-" + portion,
			[]style.Style{style.Single{
				Class: style.ClassAny + "." + style.ClassRow + " > .width-fill-" + portion,
				Prop:  "flex-grow",
				Value: strconv.Itoa(int(w) * 100000),
			}}
	case style.Min:
		cls := "min-width-" + strconv.Itoa(w.Size)
		field, inner, styles := renderWidth(w.Length)
		return field.Add(flags.WidthBetween),
			cls + " " + inner,
			append([]style.Style{style.Single{
				Class: cls,
				Prop:  "min-width",
				Value: strconv.Itoa(w.Size) + "px",
			}}, styles...)
	case style.Max:
		cls := "max-width-" + strconv.Itoa(w.Size)
		field, inner, styles := renderWidth(w.Length)
		return field.Add(flags.WidthBetween),
			cls + " " + inner,
			append([]style.Style{style.Single{
				Class: cls,
				Prop:  "max-width",
				Value: strconv.Itoa(w.Size) + "px",
			}}, styles...)
	}
	return flags.None(), "", nil
}

func renderHeight(h style.Length) (flags.Field, string, []style.Style) {
	switch h := h.(type) {
	case style.Px:
		name := "height-px-" + strconv.Itoa(int(h))
		return flags.None(), style.ClassHeightExact + " " + name, []style.Style{
			style.Single{Class: name, Prop: "height", Value: strconv.Itoa(int(h)) + "px"},
		}
	case style.Content:
		return flags.None().Add(flags.HeightContent), style.ClassHeightContent, nil
	case style.Fill:
		if h == 1 {
			return flags.None().Add(flags.HeightFill), style.ClassHeightFill, nil
		}
		portion := strconv.Itoa(int(h))
		return flags.None().Add(flags.HeightFill),
			style.ClassHeightFillPortion + " height-fill-" + portion,
			[]style.Style{style.Single{
				Class: style.ClassAny + "." + style.ClassColumn + " > .height-fill-" + portion,
				Prop:  "flex-grow",
				Value: strconv.Itoa(int(h) * 100000),
			}}
	case style.Min:
		// min-height loses to inline height styles without !important.
		cls := "min-height-" + strconv.Itoa(h.Size)
		field, inner, styles := renderHeight(h.Length)
		return field.Add(flags.HeightBetween),
			cls + " " + inner,
			append([]style.Style{style.Single{
				Class: cls,
				Prop:  "min-height",
				Value: strconv.Itoa(h.Size) + "px !important",
			}}, styles...)
	case style.Max:
		cls := "max-height-" + strconv.Itoa(h.Size)
		field, inner, styles := renderHeight(h.Length)
		return field.Add(flags.HeightBetween),
			cls + " " + inner,
			append([]style.Style{style.Single{
				Class: cls,
				Prop:  "max-height",
				Value: strconv.Itoa(h.Size) + "px",
			}}, styles...)
	}
	return flags.None(), "", nil
}

// createElement renders the children under the element's own context,
// hoists their styles next to the element's own, and decides whether the
// result still carries styles at all.
func createElement(ctx layoutContext, children elementChildren, rendered gathered) Element {
	var (
		parts       []vdom.Child
		childStyles []style.Style
	)

	if children.keyed {
		for _, pair := range children.pairs {
			switch el := pair.Element.(type) {
			case unstyled:
				parts = append(parts, vdom.Keyed(pair.Key, finalizeNode(el.args, embedMode{}, ctx)))
			case styled:
				parts = append(parts, vdom.Keyed(pair.Key, finalizeNode(el.args, embedMode{}, ctx)))
				childStyles = append(childStyles, el.styles...)
			case textRun:
				parts = append(parts, vdom.Keyed(pair.Key, textNode(string(el))))
			}
		}
	} else {
		for _, child := range children.list {
			switch el := child.(type) {
			case unstyled:
				parts = append(parts, vdom.Element(finalizeNode(el.args, embedMode{}, ctx)))
			case styled:
				parts = append(parts, vdom.Element(finalizeNode(el.args, embedMode{}, ctx)))
				childStyles = append(childStyles, el.styles...)
			case textRun:
				// A lone text inside an el stretches to the el's box so
				// alignment has something to act on.
				if ctx == asEl {
					parts = append(parts, vdom.Element(textNodeFill(string(el))))
				} else {
					parts = append(parts, vdom.Element(textNode(string(el))))
				}
			}
		}
	}

	list := childList{keyed: children.keyed}
	if children.keyed {
		list.nodes = addKeyedChildren(parts, rendered.children)
	} else {
		list.nodes = addChildren(parts, rendered.children)
	}

	args := renderArgs{
		has:      rendered.has,
		node:     rendered.node,
		attrs:    rendered.attrs,
		children: list,
	}

	if len(rendered.styles) == 0 && len(childStyles) == 0 {
		return unstyled{args: args}
	}
	allStyles := rendered.styles
	if len(childStyles) > 0 {
		allStyles = make([]style.Style, 0, len(rendered.styles)+len(childStyles))
		allStyles = append(allStyles, rendered.styles...)
		allStyles = append(allStyles, childStyles...)
	}
	return styled{styles: allStyles, args: args}
}

func addChildren(existing []vdom.Child, nearby nearbyChildren) []vdom.Child {
	if nearby.none() {
		return existing
	}
	out := make([]vdom.Child, 0, len(nearby.behind)+len(existing)+len(nearby.inFront))
	out = append(out, nearby.behind...)
	out = append(out, existing...)
	return append(out, nearby.inFront...)
}

// addKeyedChildren gives every nearby child the same reserved key so
// keyed diffing stays stable around the authored children.
func addKeyedChildren(existing []vdom.Child, nearby nearbyChildren) []vdom.Child {
	if nearby.none() {
		return existing
	}
	keyed := func(cs []vdom.Child) []vdom.Child {
		out := make([]vdom.Child, len(cs))
		for i, c := range cs {
			c.Key = "nearby-element-pls"
			out[i] = c
		}
		return out
	}
	out := make([]vdom.Child, 0, len(nearby.behind)+len(existing)+len(nearby.inFront))
	out = append(out, keyed(nearby.behind)...)
	out = append(out, existing...)
	return append(out, keyed(nearby.inFront)...)
}

// embedMode says which stylesheets finalizeNode injects ahead of the
// node's children. Only the root ever carries a non-zero mode; interior
// nodes hoist their styles instead.
type embedMode struct {
	kind   embedKind
	opts   style.OptionSet
	styles []style.Style
}

type embedKind int

const (
	embedNone embedKind = iota
	embedDynamic
	embedStaticAndDynamic
)

// finalizeNode renders the element into its virtual node and, when the
// parent is a row or column, wraps it in a neutral container for the
// alignments flexbox cannot express on the child alone.
func finalizeNode(args renderArgs, embed embedMode, parentCtx layoutContext) *vdom.Node {
	createNode := func(tag string, attrs []vdom.Attribute) *vdom.Node {
		children := args.children.nodes
		switch embed.kind {
		case embedDynamic:
			if args.children.keyed {
				children = embedKeyed(false, embed.opts, embed.styles, children)
			} else {
				children = embedWith(false, embed.opts, embed.styles, children)
			}
		case embedStaticAndDynamic:
			if args.children.keyed {
				children = embedKeyed(true, embed.opts, embed.styles, children)
			} else {
				children = embedWith(true, embed.opts, embed.styles, children)
			}
		}
		return vdom.NewNode(tag, attrs, children...)
	}

	var html *vdom.Node
	switch {
	case args.node.base == "":
		html = createNode("div", args.attrs)
	case args.node.embedded == "":
		html = createNode(args.node.base, args.attrs)
	default:
		html = vdom.NewNode(args.node.base, args.attrs, vdom.Element(
			createNode(args.node.embedded, []vdom.Attribute{
				vdom.Class(style.ClassAny + " " + style.ClassSingle),
			}),
		))
	}

	switch parentCtx {
	case asRow:
		switch {
		case args.has.Present(flags.WidthFill) && !args.has.Present(flags.WidthBetween):
			return html
		case args.has.Present(flags.AlignRight):
			return vdom.U(
				wrapperClass(style.ClassContentCenterY, style.ClassAlignContainerRight),
				vdom.Element(html),
			)
		case args.has.Present(flags.CenterX):
			return vdom.S(
				wrapperClass(style.ClassContentCenterY, style.ClassAlignContainerCenterX),
				vdom.Element(html),
			)
		}
	case asColumn:
		switch {
		case args.has.Present(flags.HeightFill) && !args.has.Present(flags.HeightBetween):
			return html
		case args.has.Present(flags.CenterY):
			return vdom.S(
				wrapperClass(style.ClassAlignContainerCenterY),
				vdom.Element(html),
			)
		case args.has.Present(flags.AlignBottom):
			return vdom.U(
				wrapperClass(style.ClassAlignContainerBottom),
				vdom.Element(html),
			)
		}
	}
	return html
}

func wrapperClass(extra ...string) []vdom.Attribute {
	parts := append([]string{style.ClassAny, style.ClassSingle, style.ClassContainer}, extra...)
	return []vdom.Attribute{vdom.Class(strings.Join(parts, " "))}
}

// embedWith injects the stylesheet nodes ahead of the children. Focus
// rules come first, then the deduplicated dynamic rules in first-seen
// order, so repeated renders of the same tree yield the same sheet.
func embedWith(static bool, opts style.OptionSet, styles []style.Style, children []vdom.Child) []vdom.Child {
	rules := append(opts.Focus.Rules(), style.Reduce(styles)...)
	sheet := vdom.Element(stylesheetNode(opts, rules))
	if static {
		return append([]vdom.Child{staticRoot(opts), sheet}, children...)
	}
	return append([]vdom.Child{sheet}, children...)
}

func embedKeyed(static bool, opts style.OptionSet, styles []style.Style, children []vdom.Child) []vdom.Child {
	rules := append(opts.Focus.Rules(), style.Reduce(styles)...)
	sheet := vdom.Child{Key: "dynamic-stylesheet", Node: stylesheetNode(opts, rules)}
	if static {
		root := staticRoot(opts)
		root.Key = "static-stylesheet"
		return append([]vdom.Child{root, sheet}, children...)
	}
	return append([]vdom.Child{sheet}, children...)
}

// staticRoot embeds the fixed base sheet once per root.
func staticRoot(opts style.OptionSet) vdom.Child {
	switch opts.Mode {
	case style.NoStaticStyleSheet:
		return vdom.Text("")
	case style.WithVirtualCSS:
		return vdom.Element(vdom.NewNode("weft-static-rules", []vdom.Attribute{
			vdom.Property("rules", style.Rules()),
		}))
	}
	// The div wrapper keeps style-mutating browser extensions from
	// reparenting a bare style node.
	return vdom.Element(vdom.Div(nil,
		vdom.Element(vdom.NewNode("style", nil, vdom.Text(style.Rules()))),
	))
}

func stylesheetNode(opts style.OptionSet, rules []style.Style) *vdom.Node {
	if opts.Mode == style.WithVirtualCSS {
		return vdom.NewNode("weft-rules", []vdom.Attribute{
			vdom.Property("rules", style.EncodeStyles(opts, rules)),
		})
	}
	return vdom.Div(nil,
		vdom.Element(vdom.NewNode("style", nil, vdom.Text(style.ToStyleSheet(opts, rules)))),
	)
}

// nearbyElement renders an attached element in its positioning shell.
func nearbyElement(loc location, el Element) *vdom.Node {
	cls := style.ClassNearby + " " + style.ClassSingle + " " + loc.class()
	var child vdom.Child
	switch el := el.(type) {
	case empty:
		child = vdom.Text("")
	case textRun:
		child = vdom.Element(textNode(string(el)))
	case unstyled:
		child = vdom.Element(finalizeNode(el.args, embedMode{}, asEl))
	case styled:
		child = vdom.Element(finalizeNode(el.args, embedMode{}, asEl))
	}
	return vdom.Div([]vdom.Attribute{vdom.Class(cls)}, child)
}

const (
	textClasses     = style.ClassAny + " " + style.ClassText + " " + style.ClassWidthContent + " " + style.ClassHeightContent
	textFillClasses = style.ClassAny + " " + style.ClassText + " " + style.ClassWidthFill + " " + style.ClassHeightFill
)

// textNode wraps a raw text run so it participates in layout like any
// other content-sized element.
func textNode(s string) *vdom.Node {
	return vdom.Div([]vdom.Attribute{vdom.Class(textClasses)}, vdom.Text(s))
}

func textNodeFill(s string) *vdom.Node {
	return vdom.Div([]vdom.Attribute{vdom.Class(textFillClasses)}, vdom.Text(s))
}

// Layout renders the element tree to a root virtual node with default
// options: hover rules on, the stock focus ring, and both stylesheets
// embedded as style nodes.
func Layout(attrs []Attribute, child Element) *vdom.Node {
	return LayoutWith(nil, attrs, child)
}

// LayoutWith renders the element tree under explicit root options.
func LayoutWith(options []style.Option, attrs []Attribute, child Element) *vdom.Node {
	opts := style.NewOptionSet(options...)
	root := []Attribute{htmlClass(style.ClassRoot + " " + style.ClassAny + " " + style.ClassSingle)}
	root = append(root, rootStyle()...)
	root = append(root, attrs...)
	return renderRoot(opts, root, child)
}

// rootStyle is the default look: transparent background, black 20px text
// in a common sans-serif stack. Each entry is an ordinary style class,
// so author attributes override by flag like anywhere else.
func rootStyle() []Attribute {
	bg := style.Color{R: 1, G: 1, B: 1, A: 0}
	fc := style.Color{R: 0, G: 0, B: 0, A: 1}
	families := []style.Font{
		style.Typeface("Open Sans"),
		style.Typeface("Helvetica"),
		style.Typeface("Verdana"),
		style.SansSerif{},
	}
	return []Attribute{
		styleClass{flags.BgColor, style.Colored{Class: "bg-" + bg.FormatClass(), Prop: "background-color", Color: bg}},
		styleClass{flags.FontColor, style.Colored{Class: "fc-" + fc.FormatClass(), Prop: "color", Color: fc}},
		styleClass{flags.FontSize, style.FontSize(20)},
		styleClass{flags.FontFamily, style.FontFamily{
			Class: style.FamilyClassName("font-", families),
			Fonts: families,
		}},
	}
}

func renderRoot(opts style.OptionSet, attrs []Attribute, child Element) *vdom.Node {
	el := newElement(asEl, nodeName{}, attrs, unkeyedOf(child))
	switch el := el.(type) {
	case unstyled:
		return finalizeNode(el.args, embedMode{}, asEl)
	case styled:
		kind := embedStaticAndDynamic
		if opts.Mode == style.NoStaticStyleSheet {
			kind = embedDynamic
		}
		return finalizeNode(el.args, embedMode{kind: kind, opts: opts, styles: el.styles}, asEl)
	case textRun:
		return textNode(string(el))
	}
	return textNode("")
}
