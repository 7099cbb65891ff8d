// Package doc loads declarative page descriptions from YAML and compiles
// them into element trees. This is the untrusted boundary of the module:
// documents are validated here so that malformed input surfaces as errors
// instead of tripping contract panics further down.
package doc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is one page description.
type Document struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	Theme    Theme  `yaml:"theme"`
	Body     *Node  `yaml:"body"`
}

// Theme carries page-wide rendering defaults. Empty fields keep the
// built-in behavior (hover allowed, stock focus ring, embedded styles).
type Theme struct {
	// Hover policy: "allow", "none" or "force".
	Hover string `yaml:"hover"`
	// Mode selects stylesheet emission: "layout", "no-static-sheet" or
	// "virtual-css".
	Mode string `yaml:"mode"`
	// Focus overrides the focus ring decoration.
	Focus *FocusSpec `yaml:"focus"`
	// FontFamily is the root typeface stack. Generic family names
	// (serif, sans-serif, monospace) are recognized, anything else is
	// treated as a local font name.
	FontFamily []string `yaml:"font_family"`
	// FontSize is the root font size in px.
	FontSize int `yaml:"font_size"`
	// FontColor and Background override the root colors.
	FontColor  string `yaml:"font_color"`
	Background string `yaml:"background"`
}

// FocusSpec describes the decoration of focused elements.
type FocusSpec struct {
	BorderColor     string      `yaml:"border_color"`
	BackgroundColor string      `yaml:"background_color"`
	Shadow          *ShadowSpec `yaml:"shadow"`
}

// ShadowSpec is a box shadow: offsets, blur and spread in px.
type ShadowSpec struct {
	Color   string  `yaml:"color"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Blur    float64 `yaml:"blur"`
	Size    float64 `yaml:"size"`
}

// Node is one element of the page tree.
//
// Lengths use the forms "px:N", "fill", "fill:K", "content" and the
// bounded forms "min:N,<length>" / "max:N,<length>", which nest:
// "max:700,min:300,fill". Colors are "#rgb", "#rrggbb", "#rrggbbaa" or
// "r,g,b[,a]" with channels 0-255 and alpha 0-1.
type Node struct {
	// Kind: "el", "row", "column", "wrapped-row", "paragraph",
	// "text-column", "image", "link" or "text".
	Kind string `yaml:"kind"`

	// Value is the content of a text node, the label of a link, or a
	// shorthand text child for container kinds.
	Value string `yaml:"value"`

	// Link fields. Download names the file a download link saves as.
	URL      string `yaml:"url"`
	NewTab   bool   `yaml:"new_tab"`
	Download string `yaml:"download"`

	// Image fields. Src is resolved through the asset pipeline unless
	// it is already a data: URI or an absolute URL.
	Src         string `yaml:"src"`
	Description string `yaml:"description"`

	Width  string `yaml:"width"`
	Height string `yaml:"height"`

	// Padding is "N", "x,y" or "top,right,bottom,left".
	Padding string `yaml:"padding"`
	// Spacing is "N", "x,y" or "evenly".
	Spacing string `yaml:"spacing"`

	// AlignX: "left", "center" or "right". AlignY: "top", "center" or
	// "bottom".
	AlignX string `yaml:"align_x"`
	AlignY string `yaml:"align_y"`

	FontSize   int      `yaml:"font_size"`
	FontColor  string   `yaml:"font_color"`
	FontFamily []string `yaml:"font_family"`
	Background string   `yaml:"background"`

	Bold      bool `yaml:"bold"`
	Italic    bool `yaml:"italic"`
	Underline bool `yaml:"underline"`
	Strike    bool `yaml:"strike"`

	// TextAlign: "left", "center", "right" or "justify".
	TextAlign string `yaml:"text_align"`

	// BorderWidth is "N" or "top,right,bottom,left".
	BorderWidth   string      `yaml:"border_width"`
	BorderColor   string      `yaml:"border_color"`
	BorderRounded int         `yaml:"border_rounded"`
	Shadow        *ShadowSpec `yaml:"shadow"`

	// Alpha is the element opacity in [0, 1].
	Alpha *float64 `yaml:"alpha"`
	// Move is an "x,y" px offset; positive x moves right, positive y
	// moves down.
	Move string `yaml:"move"`
	// Rotate is clockwise degrees.
	Rotate *float64 `yaml:"rotate"`
	Scale  *float64 `yaml:"scale"`

	Pointer bool `yaml:"pointer"`

	// Role: "main", "navigation", "footer", "aside", "button",
	// "announce" or "announce-urgently".
	Role string `yaml:"role"`
	// Heading level 1-6.
	Heading   int    `yaml:"heading"`
	AriaLabel string `yaml:"aria_label"`

	Children []*Node `yaml:"children"`

	// Nearby placements, rendered relative to this element without
	// affecting its layout.
	Above   *Node `yaml:"above"`
	Below   *Node `yaml:"below"`
	OnRight *Node `yaml:"on_right"`
	OnLeft  *Node `yaml:"on_left"`
	InFront *Node `yaml:"in_front"`
	Behind  *Node `yaml:"behind"`
}

// Load reads one YAML document. Unknown fields are rejected.
func Load(r io.Reader) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	if d.Body == nil {
		return nil, errors.New("document has no body")
	}
	return &d, nil
}

// LoadFile reads one YAML document from a file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()
	return Load(f)
}
