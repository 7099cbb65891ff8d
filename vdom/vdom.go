// Package vdom models the virtual-DOM node tree produced by element
// finalization and serializes it to XHTML.
package vdom

// AttrKind tells the serializer how an attribute contributes to the
// rendered element.
type AttrKind int

const (
	// KindAttr is a plain HTML attribute, the last value for a key wins.
	KindAttr AttrKind = iota
	// KindClass is a class fragment, fragments are space-joined.
	KindClass
	// KindStyle is a single inline style declaration, declarations are
	// collected into one style attribute.
	KindStyle
	// KindProp is a DOM property, serialized as an attribute. The
	// className property merges with class fragments.
	KindProp
)

// Attribute is one fact about an element. Key is unused for KindClass.
type Attribute struct {
	Kind  AttrKind
	Key   string
	Value string
}

// Node is an element with attributes and ordered children.
type Node struct {
	Tag      string
	Attrs    []Attribute
	Children []Child
}

// Child is a single entry in a node's child list: a text run when Node is
// nil, otherwise a nested node. Key is carried for keyed child lists and
// never appears in serialized output.
type Child struct {
	Key  string
	Node *Node
	Text string
}

// Attr creates a plain attribute.
func Attr(key, value string) Attribute {
	return Attribute{Kind: KindAttr, Key: key, Value: value}
}

// Class creates a class fragment.
func Class(class string) Attribute {
	return Attribute{Kind: KindClass, Key: "class", Value: class}
}

// Style creates an inline style declaration.
func Style(key, value string) Attribute {
	return Attribute{Kind: KindStyle, Key: key, Value: value}
}

// Property creates a DOM property.
func Property(key, value string) Attribute {
	return Attribute{Kind: KindProp, Key: key, Value: value}
}

func Src(url string) Attribute {
	return Attr("src", url)
}

func Alt(text string) Attribute {
	return Attr("alt", text)
}

func Href(url string) Attribute {
	return Attr("href", url)
}

func Rel(value string) Attribute {
	return Attr("rel", value)
}

func Target(value string) Attribute {
	return Attr("target", value)
}

func Download(name string) Attribute {
	return Attr("download", name)
}

// NewNode creates a node with an arbitrary tag.
func NewNode(tag string, attrs []Attribute, children ...Child) *Node {
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

func Div(attrs []Attribute, children ...Child) *Node {
	return NewNode("div", attrs, children...)
}

func Paragraph(attrs []Attribute, children ...Child) *Node {
	return NewNode("p", attrs, children...)
}

func S(attrs []Attribute, children ...Child) *Node {
	return NewNode("s", attrs, children...)
}

func U(attrs []Attribute, children ...Child) *Node {
	return NewNode("u", attrs, children...)
}

// Text wraps a text run as a child.
func Text(text string) Child {
	return Child{Text: text}
}

// Element wraps a node as an unkeyed child.
func Element(n *Node) Child {
	return Child{Node: n}
}

// Keyed wraps a node as a keyed child.
func Keyed(key string, n *Node) Child {
	return Child{Key: key, Node: n}
}
