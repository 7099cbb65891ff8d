package dumputil

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// TreeWriter accumulates an indented text tree.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}

// snippetLen bounds inline text and attribute values in tree dumps; full
// stylesheet payloads belong to the styles dump.
const snippetLen = 120

// DumpTree renders the DOM trees of all pages into one report.
func DumpTree(pages []Page) ([]byte, error) {
	tw := NewTreeWriter()
	for i, page := range pages {
		if i > 0 {
			tw.Line(0, "")
		}
		tw.Line(0, "=== %s ===", page.Name)
		root, err := html.Parse(bytes.NewReader(page.Data))
		if err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", page.Name, err)
		}
		dumpNode(tw, root, 0)
	}
	return []byte(tw.String()), nil
}

func dumpNode(tw *TreeWriter, n *html.Node, depth int) {
	switch n.Type {
	case html.DocumentNode:
		// children of the document root start at depth 0
		depth--
	case html.DoctypeNode:
		tw.Line(depth, "doctype %s", n.Data)
	case html.CommentNode:
		tw.TextBlock(depth, "comment", snippet(n.Data))
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			tw.TextBlock(depth, "text", snippet(text))
		}
	case html.ElementNode:
		tw.Line(depth, "<%s>%s", n.Data, formatAttrs(n.Attr))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dumpNode(tw, c, depth+1)
	}
}

func formatAttrs(attrs []html.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(snippet(a.Val)))
	}
	return b.String()
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetLen {
		return s
	}
	return string(runes[:snippetLen]) + "..."
}
