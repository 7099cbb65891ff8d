package style_test

import (
	"strconv"
	"strings"
	"testing"

	"weft/flags"
	"weft/style"
)

func TestCanonicalNames(t *testing.T) {
	tests := []struct {
		name  string
		style style.Style
		want  string
	}{
		{
			name:  "font size",
			style: style.FontSize(18),
			want:  "font-size-18",
		},
		{
			name:  "single keeps stored class",
			style: style.Single{Class: "br-4", Prop: "border-radius", Value: "4px"},
			want:  "br-4",
		},
		{
			name: "grid template",
			style: style.GridTemplateStyle{
				SpacingX: style.Px(10),
				SpacingY: style.Px(5),
				Columns:  []style.Length{style.Px(100), style.Fill(1)},
				Rows:     []style.Length{style.Content{}},
			},
			want: "grid-rows-auto-cols-100px-1fr-space-x-10px-space-y-5px",
		},
		{
			name:  "grid position",
			style: style.GridPosition{Row: 1, Col: 2, Width: 3, Height: 4},
			want:  "gp grid-pos-1-2-3-4",
		},
		{
			name: "pseudo selector suffixes nested names",
			style: style.PseudoSelector{
				Class: style.PseudoHover,
				Styles: []style.Style{
					style.Single{Class: "br-4", Prop: "border-radius", Value: "4px"},
					style.FontSize(9),
				},
			},
			want: "br-4-hv font-size-9-hv",
		},
		{
			name:  "identity transform has no name",
			style: style.Transform{Transformation: style.Untransformed{}},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Name(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamesAreDeterministic(t *testing.T) {
	mk := func() style.Style {
		return style.Colored{
			Class: "bg-" + style.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}.FormatClass(),
			Prop:  "background-color",
			Color: style.Color{R: 0.2, G: 0.4, B: 0.6, A: 1},
		}
	}
	if a, b := mk().Name(), mk().Name(); a != b {
		t.Errorf("same payload produced different names: %q vs %q", a, b)
	}
}

func TestTag(t *testing.T) {
	tagged := style.Tag("hv", style.Single{Class: "br-4", Prop: "border-radius", Value: "4px"})
	if got := tagged.Name(); got != "hv-br-4" {
		t.Errorf("tagged single: got %q, want %q", got, "hv-br-4")
	}

	// variants without a free-form class pass through untouched
	passthrough := style.Tag("hv", style.FontSize(12))
	if got := passthrough.Name(); got != "font-size-12" {
		t.Errorf("tagged font size: got %q, want %q", got, "font-size-12")
	}
}

func TestSkippable(t *testing.T) {
	pad := func(v float64) style.Style {
		return style.PaddingStyle{
			Class: "p-" + strconv.Itoa(int(v)),
			Top:   v, Right: v, Bottom: v, Left: v,
		}
	}
	tests := []struct {
		name  string
		flag  flags.Flag
		style style.Style
		want  bool
	}{
		{"border width in range", flags.BorderWidth, style.Single{Class: "border-1", Prop: "border-width", Value: "1px"}, true},
		{"border width out of range", flags.BorderWidth, style.Single{Class: "border-7", Prop: "border-width", Value: "7px"}, false},
		{"font size lower bound", flags.FontSize, style.FontSize(8), true},
		{"font size upper bound", flags.FontSize, style.FontSize(32), true},
		{"font size below range", flags.FontSize, style.FontSize(7), false},
		{"font size above range", flags.FontSize, style.FontSize(33), false},
		{"uniform padding 24", flags.Padding, pad(24), true},
		{"uniform padding 25", flags.Padding, pad(25), false},
		{"fractional padding", flags.Padding, style.PaddingStyle{Class: style.PaddingNameFloat(10.5, 10.5, 10.5, 10.5), Top: 10.5, Right: 10.5, Bottom: 10.5, Left: 10.5}, false},
		{"non-uniform padding", flags.Padding, style.PaddingStyle{Class: style.PaddingName(4, 4, 4, 5), Top: 4, Right: 4, Bottom: 4, Left: 5}, false},
		{"float-named compensated padding", flags.Padding, style.PaddingStyle{Class: style.PaddingNameFloat(6, 6, 6, 6), Top: 6, Right: 6, Bottom: 6, Left: 6}, false},
		{"spacing never skips", flags.Spacing, style.SpacingStyle{Class: style.SpacingName(4, 4), X: 4, Y: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := style.Skippable(tt.flag, tt.style); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDerivedClassNames(t *testing.T) {
	if got := style.SpacingName(7, 12); got != "spacing-7-12" {
		t.Errorf("SpacingName: got %q", got)
	}
	if got := style.PaddingName(1, 2, 3, 4); got != "pad-1-2-3-4" {
		t.Errorf("PaddingName: got %q", got)
	}
	if got := style.PaddingNameFloat(0.5, 0.5, 1, 1); got != "pad-128-128-255-255" {
		t.Errorf("PaddingNameFloat: got %q", got)
	}
}

func TestPseudoSelectorEmptyNestedName(t *testing.T) {
	ps := style.PseudoSelector{
		Class:  style.PseudoFocus,
		Styles: []style.Style{style.Transform{Transformation: style.Untransformed{}}},
	}
	if got := ps.Name(); got != "" {
		t.Errorf("identity under pseudo should stay nameless, got %q", got)
	}
}

func TestLengthClassNames(t *testing.T) {
	tests := []struct {
		l    style.Length
		want string
	}{
		{style.Px(42), "42px"},
		{style.Content{}, "auto"},
		{style.Fill(3), "3fr"},
		{style.Min{Size: 20, Length: style.Fill(1)}, "min201fr"},
		{style.Max{Size: 300, Length: style.Content{}}, "max300auto"},
	}
	for _, tt := range tests {
		if got := tt.l.ClassName(); got != tt.want {
			t.Errorf("ClassName: got %q, want %q", got, tt.want)
		}
	}
}

func TestReduceKeepsFirstOccurrence(t *testing.T) {
	a := style.Single{Class: "br-4", Prop: "border-radius", Value: "4px"}
	b := style.FontSize(16)
	c := style.Single{Class: "br-4", Prop: "border-radius", Value: "4px"}
	d := style.Single{Class: "w-10", Prop: "width", Value: "10px"}

	got := style.Reduce([]style.Style{a, b, c, d, b})
	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Name()
	}
	want := "br-4 font-size-16 w-10"
	if strings.Join(names, " ") != want {
		t.Errorf("got %q, want %q", strings.Join(names, " "), want)
	}
}

func TestReduceIsIdempotent(t *testing.T) {
	a := style.Single{Class: "br-4", Prop: "border-radius", Value: "4px"}
	b := style.FontSize(16)
	c := style.SpacingStyle{Class: style.SpacingName(5, 5), X: 5, Y: 5}

	once := style.Reduce([]style.Style{a, b, a, c, b})
	twice := style.Reduce(once)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Name() != twice[i].Name() {
			t.Errorf("entry %d changed: %q vs %q", i, once[i].Name(), twice[i].Name())
		}
	}
}
