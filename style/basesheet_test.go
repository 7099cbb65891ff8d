package style_test

import (
	"strings"
	"testing"

	"weft/style"
)

func TestStaticRulesContainBaseClasses(t *testing.T) {
	sheet := style.Rules()

	for _, want := range []string{
		"html,body {height:100%;padding:0;margin:0;}",
		".ui {width:100%;height:auto;min-height:100%;z-index:0;}",
		".s:focus {outline:none;}",
		".s.r > .s {flex-basis:0%;}",
		".s.r > .s.we {flex-basis:auto;}",
		".s.c > .s {flex-basis:0px;min-height:min-content;}",
		".s.c > .hf {flex-grow:100000;}",
		".s.t {white-space:pre;display:inline-block;}",
		".s.p .t {display:inline;white-space:normal;}",
		".s.u.sk {text-decoration:line-through underline;",
		".s.g {display:-ms-grid;}",
		"@supports (display:grid) {.s.g {display:grid;\n}}",
		".s.pg {display:block;}",
		".s.it {line-height:1.05;background:transparent;text-align:inherit;}",
		".s.c > u:first-of-type.acb {flex-grow:1;}",
		".s.c > s:last-of-type.accy ~ u {flex-grow:0;}",
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("static sheet missing %q", want)
		}
	}
}

func TestStaticRulesContainAlignments(t *testing.T) {
	sheet := style.Rules()

	for _, want := range []string{
		// row content and self alignment
		".s.r.ct {align-items:flex-start;}",
		".s.r > .s.at {align-self:flex-start;}",
		".s.r.ccx {justify-content:center;}",
		// column content and self alignment
		".s.c.ccy {justify-content:center;}",
		".s.c > .s.cx {align-self:center;}",
		// page floats carry a clearfix
		".s.pg > .s.ar {float:right;}",
		".s.pg > .s.ar::after {content:\"\";display:table;clear:both;}",
		// space-evenly sits below the alignment rules
		".s.r.sev {justify-content:space-between;}",
		".s.c.sev {justify-content:space-between;}",
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("static sheet missing %q", want)
		}
	}

	// the row alignment block must come before its space-evenly override
	if strings.Index(sheet, ".s.r.ccx {") > strings.Index(sheet, ".s.r.sev {") {
		t.Error("space-evenly must render after the row alignment rules")
	}
}

func TestStaticRulesContainCommonValues(t *testing.T) {
	sheet := style.Rules()

	for _, want := range []string{
		".border-0 {border-width:0px;}",
		".border-6 {border-width:6px;}",
		".font-size-8 {font-size:8px;}",
		".font-size-32 {font-size:32px;}",
		".p-0 {padding:0px 0px 0px 0px;}",
		".p-10 {padding:10px 10px 10px 10px;}",
		".p-24 {padding:24px 24px 24px 24px;}",
		".v-smcp {font-variant:small-caps;}",
		".v-smcp-off {font-variant:normal;}",
		`.v-liga {font-feature-settings:"liga";}`,
		`.v-liga-off {font-feature-settings:"liga" 0;}`,
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("static sheet missing %q", want)
		}
	}
}

func TestStaticRulesContainResets(t *testing.T) {
	sheet := style.Rules()

	for _, want := range []string{
		"@media screen and (-ms-high-contrast: active), (-ms-high-contrast: none) {",
		".s.r > .s { flex-basis: auto !important; }",
		`input[type="search"]`,
		"input[type=range]::-webkit-slider-thumb {",
		"input[type=range][orient=vertical]{",
		".explain {",
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("static sheet missing %q", want)
		}
	}
}

func TestStaticRulesBracesBalance(t *testing.T) {
	sheet := style.Rules()
	open := strings.Count(sheet, "{")
	closing := strings.Count(sheet, "}")
	if open != closing {
		t.Errorf("unbalanced braces: %d open, %d close", open, closing)
	}
}
