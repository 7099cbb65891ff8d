package vdom

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// DocumentInfo carries the head metadata of a serialized document.
type DocumentInfo struct {
	Title string
	Lang  string
}

// WriteDocument serializes root as a complete XHTML document. Output is
// deterministic for a given tree.
func WriteDocument(w io.Writer, root *Node, info DocumentInfo) error {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")
	if info.Lang != "" {
		html.CreateAttr("lang", info.Lang)
		html.CreateAttr("xml:lang", info.Lang)
	}

	head := html.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "utf-8")
	title := head.CreateElement("title")
	title.SetText(info.Title)

	body := html.CreateElement("body")
	appendNode(body, root)

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}
	return nil
}

// Fragment serializes a subtree without the surrounding document.
func Fragment(n *Node) (string, error) {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	appendNode(&doc.Element, n)

	var sb strings.Builder
	if _, err := doc.WriteTo(&sb); err != nil {
		return "", fmt.Errorf("unable to write fragment: %w", err)
	}
	return sb.String(), nil
}

func appendNode(parent *etree.Element, n *Node) {
	el := parent.CreateElement(n.Tag)
	for _, a := range mergeAttrs(n.Attrs) {
		el.CreateAttr(a.key, a.value)
	}
	for _, c := range n.Children {
		if c.Node == nil {
			el.CreateText(c.Text)
			continue
		}
		appendNode(el, c.Node)
	}
}

type attrPair struct {
	key   string
	value string
}

// mergeAttrs flattens attributes into serializable key/value pairs: class
// fragments and the className property space-join, style declarations
// collect into a single style attribute, everything else is last value
// wins. Keys keep the position of their first appearance.
func mergeAttrs(attrs []Attribute) []attrPair {
	var (
		order []string
		vals  = make(map[string]string, len(attrs))
	)
	join := func(key, value, sep string) {
		if cur, ok := vals[key]; ok {
			if cur == "" {
				vals[key] = value
			} else if value != "" {
				vals[key] = cur + sep + value
			}
			return
		}
		order = append(order, key)
		vals[key] = value
	}
	set := func(key, value string) {
		if _, ok := vals[key]; !ok {
			order = append(order, key)
		}
		vals[key] = value
	}

	for _, a := range attrs {
		switch {
		case a.Kind == KindClass:
			join("class", a.Value, " ")
		case a.Kind == KindStyle:
			join("style", a.Key+": "+a.Value, "; ")
		case a.Kind == KindProp && a.Key == "className":
			join("class", a.Value, " ")
		case a.Key == "class":
			join("class", a.Value, " ")
		default:
			set(a.Key, a.Value)
		}
	}

	out := make([]attrPair, 0, len(order))
	for _, k := range order {
		out = append(out, attrPair{key: k, value: vals[k]})
	}
	return out
}
