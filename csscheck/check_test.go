package csscheck_test

import (
	"testing"

	"go.uber.org/zap"

	"weft/csscheck"
	"weft/style"
)

func TestCheckerCounts(t *testing.T) {
	c := csscheck.NewChecker(zap.NewNop())
	stats, err := c.CheckString(`@import url(fonts.css);
.a {
  color: red;
  margin: 0;
}
@media print {
  .b {
    display: none;
  }
}
`, "fixture")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if stats.Rules != 2 {
		t.Errorf("rules = %d, want 2", stats.Rules)
	}
	if stats.Declarations != 3 {
		t.Errorf("declarations = %d, want 3", stats.Declarations)
	}
	if stats.AtRules != 2 {
		t.Errorf("at-rules = %d, want 2", stats.AtRules)
	}
}

func TestCheckerStaticSheet(t *testing.T) {
	c := csscheck.NewChecker(zap.NewNop())
	stats, err := c.CheckString(style.Rules(), "static sheet")
	if err != nil {
		t.Fatalf("static sheet does not parse: %v", err)
	}
	if stats.Rules < 50 {
		t.Errorf("rules = %d, want the full base sheet", stats.Rules)
	}
	if stats.Declarations == 0 {
		t.Error("no declarations found in the static sheet")
	}
	t.Logf("static sheet: %d rules, %d declarations, %d at-rules",
		stats.Rules, stats.Declarations, stats.AtRules)
}

func TestCheckerDynamicSheet(t *testing.T) {
	opts := style.NewOptionSet()
	styles := append(opts.Focus.Rules(), []style.Style{
		style.SpacingStyle{Class: style.SpacingName(7, 7), X: 7, Y: 7},
		style.PaddingStyle{Class: style.PaddingName(30, 30, 30, 30), Top: 30, Right: 30, Bottom: 30, Left: 30},
		style.Colored{Class: "bg-255-0-0-255", Prop: "background-color", Color: style.Color{R: 1, A: 1}},
		style.FontSize(40),
		style.Single{Class: "min-width-500", Prop: "min-width", Value: "500px"},
		style.Shadows{Class: "shadow-soft", Prop: "0px 10px 20px 0px rgba(0,0,0,0.5)"},
		style.PseudoSelector{
			Class: style.PseudoHover,
			Styles: []style.Style{
				style.Colored{Class: "bg-0-0-255-255", Prop: "background-color", Color: style.Color{B: 1, A: 1}},
			},
		},
	}...)
	sheet := style.ToStyleSheet(opts, styles)

	c := csscheck.NewChecker(nil)
	stats, err := c.CheckString(sheet, "dynamic sheet")
	if err != nil {
		t.Fatalf("dynamic sheet does not parse: %v", err)
	}
	// Spacing alone expands into its companion rule set, so the block count
	// is well above the style count.
	if stats.Rules < 10 {
		t.Errorf("rules = %d, want the expanded rule set", stats.Rules)
	}
	if stats.Declarations < stats.Rules {
		t.Errorf("declarations = %d for %d rules", stats.Declarations, stats.Rules)
	}
}
