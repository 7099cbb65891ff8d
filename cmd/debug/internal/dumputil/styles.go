package dumputil

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Sheet is one stylesheet-like payload extracted from a rendered page.
type Sheet struct {
	// Label names the carrier: "style", "weft-static-rules" or "weft-rules".
	Label string
	Text  string
	// Encoded marks weft-rules payloads, which hold an encoded property map
	// for client-side expansion rather than CSS.
	Encoded bool
}

// CollectSheets extracts every embedded stylesheet from a page: style
// element payloads plus the rules attributes of the virtual rendering mode
// carriers.
func CollectSheets(data []byte) ([]Sheet, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var sheets []Sheet
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "style":
				var css strings.Builder
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.TextNode {
						css.WriteString(c.Data)
					}
				}
				if css.Len() > 0 {
					sheets = append(sheets, Sheet{Label: "style", Text: css.String()})
				}
			case "weft-static-rules", "weft-rules":
				for _, a := range n.Attr {
					if a.Key == "rules" && a.Val != "" {
						sheets = append(sheets, Sheet{Label: n.Data, Text: a.Val, Encoded: n.Data == "weft-rules"})
						break
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return sheets, nil
}

// DumpStyles renders every extracted stylesheet of all pages into one report.
func DumpStyles(pages []Page) ([]byte, error) {
	var b strings.Builder
	for _, page := range pages {
		sheets, err := CollectSheets(page.Data)
		if err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", page.Name, err)
		}
		fmt.Fprintf(&b, "=== %s: %d stylesheet(s) ===\n", page.Name, len(sheets))
		for _, sheet := range sheets {
			fmt.Fprintf(&b, "\n--- %s ---\n", sheet.Label)
			b.WriteString(sheet.Text)
			if !strings.HasSuffix(sheet.Text, "\n") {
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}
