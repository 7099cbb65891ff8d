package publish

import (
	"bytes"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"weft/csscheck"
)

// verifyPage reparses an emitted page with a real HTML5 parser and runs
// every embedded stylesheet through the CSS checker. The parse itself mostly
// guards against truncated output - html.Parse recovers from markup errors
// the way browsers do - so the substance of the check is the CSS: style
// element payloads plus the rules attribute of weft-static-rules, which
// carries the base sheet in the virtual rendering mode. weft-rules payloads
// are encoded property maps, not CSS, and are left alone.
func verifyPage(log *zap.Logger, data []byte, source string) error {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unable to parse rendered page: %w", err)
	}

	checker := csscheck.NewChecker(log)

	var sheets int
	var total csscheck.Stats
	var verify func(n *html.Node) error
	verify = func(n *html.Node) error {
		if n.Type == html.ElementNode {
			var sheet string
			switch n.Data {
			case "style":
				var css strings.Builder
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.TextNode {
						css.WriteString(c.Data)
					}
				}
				sheet = css.String()
			case "weft-static-rules":
				for _, a := range n.Attr {
					if a.Key == "rules" {
						sheet = a.Val
						break
					}
				}
			}
			if sheet != "" {
				stats, err := checker.CheckString(sheet, source)
				if err != nil {
					return err
				}
				sheets++
				total.Rules += stats.Rules
				total.Declarations += stats.Declarations
				total.AtRules += stats.AtRules
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := verify(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := verify(root); err != nil {
		return err
	}

	log.Debug("Page verified",
		zap.String("source", source),
		zap.Int("stylesheets", sheets),
		zap.Int("rules", total.Rules),
		zap.Int("declarations", total.Declarations))
	return nil
}
