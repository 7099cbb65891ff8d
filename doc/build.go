package doc

import (
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"

	"weft/element"
	"weft/style"
	"weft/vdom"
)

// Page is a compiled document ready for layout.
type Page struct {
	Title    string
	Language string
	Options  []style.Option
	Root     []element.Attribute
	Body     element.Element
}

// Render lays the page out and writes it as a complete XHTML document.
func (p *Page) Render(w io.Writer) error {
	lang := p.Language
	if lang == "" {
		lang = "en"
	}
	root := element.LayoutWith(p.Options, p.Root, p.Body)
	return vdom.WriteDocument(w, root, vdom.DocumentInfo{Title: p.Title, Lang: lang})
}

// Builder compiles loaded documents into pages.
type Builder struct {
	open   AssetOpener
	images ImagePolicy
	log    *zap.Logger
}

// NewBuilder creates a builder. The opener may be nil, in which case image
// references are passed through untouched.
func NewBuilder(open AssetOpener, images ImagePolicy, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{open: open, images: images, log: log.Named("doc")}
}

// Build validates the document and compiles it. All schema problems are
// reported with the path of the offending node.
func (b *Builder) Build(d *Document) (*Page, error) {
	opts, err := themeOptions(d.Theme)
	if err != nil {
		return nil, err
	}
	root, err := themeRoot(d.Theme)
	if err != nil {
		return nil, err
	}
	body, err := b.buildNode(d.Body, "body")
	if err != nil {
		return nil, err
	}
	return &Page{
		Title:    d.Title,
		Language: d.Language,
		Options:  opts,
		Root:     root,
		Body:     body,
	}, nil
}

func themeOptions(t Theme) ([]style.Option, error) {
	var opts []style.Option
	switch t.Hover {
	case "", "allow":
	case "none":
		opts = append(opts, element.NoHover())
	case "force":
		opts = append(opts, element.ForceHover())
	default:
		return nil, fmt.Errorf("theme: unknown hover policy %q", t.Hover)
	}
	switch t.Mode {
	case "", "layout":
	case "no-static-sheet":
		opts = append(opts, element.NoStaticStyleSheet())
	case "virtual-css":
		opts = append(opts, element.VirtualCSS())
	default:
		return nil, fmt.Errorf("theme: unknown render mode %q", t.Mode)
	}
	if t.Focus != nil {
		var fs style.FocusStyle
		if t.Focus.BorderColor != "" {
			c, err := parseColor(t.Focus.BorderColor)
			if err != nil {
				return nil, fmt.Errorf("theme focus: %w", err)
			}
			fs.BorderColor = &c
		}
		if t.Focus.BackgroundColor != "" {
			c, err := parseColor(t.Focus.BackgroundColor)
			if err != nil {
				return nil, fmt.Errorf("theme focus: %w", err)
			}
			fs.BackgroundColor = &c
		}
		if t.Focus.Shadow != nil {
			sh, err := t.Focus.Shadow.toShadow()
			if err != nil {
				return nil, fmt.Errorf("theme focus: %w", err)
			}
			fs.Shadow = &sh
		}
		opts = append(opts, element.FocusStyle(fs))
	}
	return opts, nil
}

func themeRoot(t Theme) ([]element.Attribute, error) {
	var attrs []element.Attribute
	if len(t.FontFamily) > 0 {
		attrs = append(attrs, element.FontFamily(parseFonts(t.FontFamily)...))
	}
	if t.FontSize < 0 {
		return nil, fmt.Errorf("theme: negative font size %d", t.FontSize)
	}
	if t.FontSize > 0 {
		attrs = append(attrs, element.FontSize(t.FontSize))
	}
	if t.FontColor != "" {
		c, err := parseColor(t.FontColor)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		attrs = append(attrs, element.FontColor(c))
	}
	if t.Background != "" {
		c, err := parseColor(t.Background)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		attrs = append(attrs, element.BackgroundColor(c))
	}
	return attrs, nil
}

func (b *Builder) buildNode(n *Node, path string) (element.Element, error) {
	attrs, err := b.nodeAttrs(n, path)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case "text":
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%s: text node cannot have children", path)
		}
		if len(attrs) > 0 {
			return nil, fmt.Errorf("%s: text node cannot carry attributes, wrap it in an el", path)
		}
		return element.Text(n.Value), nil

	case "el":
		if len(n.Children) > 1 {
			return nil, fmt.Errorf("%s: el holds at most one child", path)
		}
		child := element.None()
		switch {
		case len(n.Children) == 1 && n.Value != "":
			return nil, fmt.Errorf("%s: el cannot have both value and children", path)
		case len(n.Children) == 1:
			child, err = b.buildNode(n.Children[0], path+".children[0]")
			if err != nil {
				return nil, err
			}
		case n.Value != "":
			child = element.Text(n.Value)
		}
		return element.El(attrs, child), nil

	case "row", "column", "wrapped-row", "paragraph", "text-column":
		children, err := b.buildChildren(n, path)
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case "row":
			return element.Row(attrs, children...), nil
		case "column":
			return element.Column(attrs, children...), nil
		case "wrapped-row":
			return element.WrappedRow(attrs, children...), nil
		case "paragraph":
			return element.Paragraph(attrs, children...), nil
		default:
			return element.TextColumn(attrs, children...), nil
		}

	case "image":
		if n.Src == "" {
			return nil, fmt.Errorf("%s: image is missing src", path)
		}
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%s: image cannot have children", path)
		}
		src, err := b.imageSrc(n.Src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return element.Image(attrs, src, n.Description), nil

	case "link":
		if n.URL == "" {
			return nil, fmt.Errorf("%s: link is missing url", path)
		}
		label := element.None()
		switch {
		case len(n.Children) > 1:
			return nil, fmt.Errorf("%s: link holds at most one child", path)
		case len(n.Children) == 1 && n.Value != "":
			return nil, fmt.Errorf("%s: link cannot have both value and children", path)
		case len(n.Children) == 1:
			label, err = b.buildNode(n.Children[0], path+".children[0]")
			if err != nil {
				return nil, err
			}
		case n.Value != "":
			label = element.Text(n.Value)
		}
		switch {
		case n.Download != "" && n.NewTab:
			return nil, fmt.Errorf("%s: link cannot be both new_tab and download", path)
		case n.Download != "":
			return element.DownloadLink(attrs, n.URL, n.Download, label), nil
		case n.NewTab:
			return element.NewTabLink(attrs, n.URL, label), nil
		default:
			return element.Link(attrs, n.URL, label), nil
		}
	}
	return nil, fmt.Errorf("%s: unknown kind %q", path, n.Kind)
}

func (b *Builder) buildChildren(n *Node, path string) ([]element.Element, error) {
	var children []element.Element
	if n.Value != "" {
		children = append(children, element.Text(n.Value))
	}
	for i, c := range n.Children {
		el, err := b.buildNode(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, el)
	}
	return children, nil
}

func (b *Builder) nodeAttrs(n *Node, path string) ([]element.Attribute, error) {
	var attrs []element.Attribute
	fail := func(err error) ([]element.Attribute, error) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if n.Width != "" {
		l, err := parseLength(n.Width)
		if err != nil {
			return fail(err)
		}
		attrs = append(attrs, element.Width(l))
	}
	if n.Height != "" {
		l, err := parseLength(n.Height)
		if err != nil {
			return fail(err)
		}
		attrs = append(attrs, element.Height(l))
	}

	if n.Padding != "" {
		p, err := parseInts(n.Padding, 1, 2, 4)
		if err != nil {
			return fail(err)
		}
		switch len(p) {
		case 1:
			attrs = append(attrs, element.Padding(p[0]))
		case 2:
			attrs = append(attrs, element.PaddingXY(p[0], p[1]))
		default:
			attrs = append(attrs, element.PaddingEach(p[0], p[1], p[2], p[3]))
		}
	}
	if n.Spacing != "" {
		if n.Spacing == "evenly" {
			attrs = append(attrs, element.SpaceEvenly())
		} else {
			p, err := parseInts(n.Spacing, 1, 2)
			if err != nil {
				return fail(err)
			}
			if len(p) == 1 {
				attrs = append(attrs, element.Spacing(p[0]))
			} else {
				attrs = append(attrs, element.SpacingXY(p[0], p[1]))
			}
		}
	}

	switch n.AlignX {
	case "":
	case "left":
		attrs = append(attrs, element.AlignLeft())
	case "center":
		attrs = append(attrs, element.CenterX())
	case "right":
		attrs = append(attrs, element.AlignRight())
	default:
		return fail(fmt.Errorf("unknown align_x %q", n.AlignX))
	}
	switch n.AlignY {
	case "":
	case "top":
		attrs = append(attrs, element.AlignTop())
	case "center":
		attrs = append(attrs, element.CenterY())
	case "bottom":
		attrs = append(attrs, element.AlignBottom())
	default:
		return fail(fmt.Errorf("unknown align_y %q", n.AlignY))
	}

	if n.FontSize < 0 {
		return fail(fmt.Errorf("negative font size %d", n.FontSize))
	}
	if n.FontSize > 0 {
		attrs = append(attrs, element.FontSize(n.FontSize))
	}
	if n.FontColor != "" {
		c, err := parseColor(n.FontColor)
		if err != nil {
			return fail(err)
		}
		attrs = append(attrs, element.FontColor(c))
	}
	if len(n.FontFamily) > 0 {
		attrs = append(attrs, element.FontFamily(parseFonts(n.FontFamily)...))
	}
	if n.Background != "" {
		c, err := parseColor(n.Background)
		if err != nil {
			return fail(err)
		}
		attrs = append(attrs, element.BackgroundColor(c))
	}

	if n.Bold {
		attrs = append(attrs, element.Bold())
	}
	if n.Italic {
		attrs = append(attrs, element.Italic())
	}
	if n.Underline {
		attrs = append(attrs, element.Underline())
	}
	if n.Strike {
		attrs = append(attrs, element.Strike())
	}

	switch n.TextAlign {
	case "":
	case "left":
		attrs = append(attrs, element.TextLeft())
	case "center":
		attrs = append(attrs, element.TextCenter())
	case "right":
		attrs = append(attrs, element.TextRight())
	case "justify":
		attrs = append(attrs, element.TextJustify())
	default:
		return fail(fmt.Errorf("unknown text_align %q", n.TextAlign))
	}

	if n.BorderWidth != "" {
		p, err := parseInts(n.BorderWidth, 1, 4)
		if err != nil {
			return fail(err)
		}
		if len(p) == 1 {
			attrs = append(attrs, element.BorderWidth(p[0]))
		} else {
			attrs = append(attrs, element.BorderWidthEach(p[0], p[1], p[2], p[3]))
		}
	}
	if n.BorderColor != "" {
		c, err := parseColor(n.BorderColor)
		if err != nil {
			return fail(err)
		}
		attrs = append(attrs, element.BorderColor(c))
	}
	if n.BorderRounded < 0 {
		return fail(fmt.Errorf("negative border radius %d", n.BorderRounded))
	}
	if n.BorderRounded > 0 {
		attrs = append(attrs, element.BorderRounded(n.BorderRounded))
	}
	if n.Shadow != nil {
		sh, err := n.Shadow.toShadow()
		if err != nil {
			return fail(err)
		}
		attrs = append(attrs, element.BorderShadow(sh))
	}

	if n.Alpha != nil {
		if *n.Alpha < 0 || *n.Alpha > 1 {
			return fail(fmt.Errorf("alpha %v out of range", *n.Alpha))
		}
		attrs = append(attrs, element.Alpha(*n.Alpha))
	}
	if n.Move != "" {
		x, y, err := parseFloatPair(n.Move)
		if err != nil {
			return fail(err)
		}
		if x != 0 {
			attrs = append(attrs, element.MoveRight(x))
		}
		if y != 0 {
			attrs = append(attrs, element.MoveDown(y))
		}
	}
	if n.Rotate != nil {
		attrs = append(attrs, element.Rotate(*n.Rotate*math.Pi/180))
	}
	if n.Scale != nil {
		attrs = append(attrs, element.Scale(*n.Scale))
	}

	if n.Pointer {
		attrs = append(attrs, element.Pointer())
	}

	switch n.Role {
	case "":
	case "main":
		attrs = append(attrs, element.MainContent())
	case "navigation":
		attrs = append(attrs, element.Navigation())
	case "footer":
		attrs = append(attrs, element.Footer())
	case "aside":
		attrs = append(attrs, element.Aside())
	case "button":
		attrs = append(attrs, element.ButtonRole())
	case "announce":
		attrs = append(attrs, element.Announce())
	case "announce-urgently":
		attrs = append(attrs, element.AnnounceUrgently())
	default:
		return fail(fmt.Errorf("unknown role %q", n.Role))
	}
	if n.Heading != 0 {
		if n.Heading < 1 || n.Heading > 6 {
			return fail(fmt.Errorf("heading level %d out of range", n.Heading))
		}
		attrs = append(attrs, element.Heading(n.Heading))
	}
	if n.AriaLabel != "" {
		attrs = append(attrs, element.AriaLabel(n.AriaLabel))
	}

	nearby := []struct {
		node *Node
		name string
		wrap func(element.Element) element.Attribute
	}{
		{n.Above, "above", element.Above},
		{n.Below, "below", element.Below},
		{n.OnRight, "on_right", element.OnRight},
		{n.OnLeft, "on_left", element.OnLeft},
		{n.InFront, "in_front", element.InFront},
		{n.Behind, "behind", element.BehindContent},
	}
	for _, near := range nearby {
		if near.node == nil {
			continue
		}
		el, err := b.buildNode(near.node, path+"."+near.name)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, near.wrap(el))
	}

	return attrs, nil
}
