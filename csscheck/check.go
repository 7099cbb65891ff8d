// Package csscheck verifies generated stylesheets with a real CSS tokenizer.
//
// The style package renders CSS by string assembly. csscheck is the guard
// rail behind the --check flags: it walks the grammar of a finished sheet
// and fails on anything a browser's parser would reject, instead of letting
// a bad rule be dropped silently at display time.
package csscheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Stats summarizes what the checker saw in one stylesheet.
type Stats struct {
	Rules        int // rule blocks, including blocks nested in @-rule bodies
	Declarations int // property declarations, custom properties included
	AtRules      int // @-rules, with and without bodies
}

// Checker validates stylesheets.
type Checker struct {
	log *zap.Logger
}

// NewChecker creates a stylesheet checker.
func NewChecker(log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{log: log.Named("csscheck")}
}

// Check walks a stylesheet and returns grammar counts. The optional source
// parameter identifies what is being checked (for logging and error text).
// A non-nil error means the sheet does not parse as CSS.
func (c *Checker) Check(data []byte, source ...string) (Stats, error) {
	name := "stylesheet"
	if len(source) > 0 && source[0] != "" {
		name = source[0]
	}

	var stats Stats
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			err := parser.Err()
			if err == nil || errors.Is(err, io.EOF) {
				c.log.Debug("Checked CSS",
					zap.String("source", name),
					zap.Int("bytes", len(data)),
					zap.Int("rules", stats.Rules),
					zap.Int("declarations", stats.Declarations),
					zap.Int("at-rules", stats.AtRules))
				return stats, nil
			}
			return stats, fmt.Errorf("unable to parse %s at offset %d: %w", name, input.Offset(), err)
		case css.BeginRulesetGrammar:
			stats.Rules++
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			stats.Declarations++
		case css.AtRuleGrammar, css.BeginAtRuleGrammar:
			stats.AtRules++
		}
	}
}

// CheckString is Check for in-memory sheets.
func (c *Checker) CheckString(text string, source ...string) (Stats, error) {
	return c.Check([]byte(text), source...)
}
