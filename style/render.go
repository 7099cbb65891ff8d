package style

import (
	"strconv"
	"strings"
)

// Reduce drops styles whose name was already seen, keeping the first
// occurrence and its position. Styles hoist upward child-first, so the
// survivor is the most deeply nested instance.
func Reduce(styles []Style) []Style {
	seen := make(map[string]struct{}, len(styles))
	out := make([]Style, 0, len(styles))
	for _, s := range styles {
		name := s.Name()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ToStyleSheet renders the style list to CSS text: font @import lines
// first, then font metric-adjustment rules, then every rule in input
// order. The caller is responsible for deduplication.
func ToStyleSheet(opts OptionSet, styles []Style) string {
	var (
		rules    []string
		toplevel []FontFamily
	)
	for _, s := range styles {
		rules = append(rules, renderRule(opts, s, nil)...)
		if ff, ok := s.(FontFamily); ok {
			toplevel = append([]FontFamily{ff}, toplevel...)
		}
	}

	var sheet strings.Builder
	sheet.WriteString(renderTopLevel(toplevel))
	for _, r := range rules {
		sheet.WriteString(r)
	}
	return sheet.String()
}

// EncodeStyles renders the style list as a JSON object mapping each style
// name to its rendered rule strings, for hosts that apply styles through a
// virtual stylesheet instead of a <style> tag.
func EncodeStyles(opts OptionSet, styles []Style) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range styles {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(s.Name()))
		b.WriteByte(':')
		b.WriteByte('[')
		for j, rule := range renderRule(opts, s, nil) {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(rule))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.String()
}

// renderTopLevel renders @import lines and metric-adjustment rules for
// every font family in the sheet. Adjustment rules are emitted once per
// family pair so a cap-sized block keeps working under a nested family
// switch.
func renderTopLevel(families []FontFamily) string {
	if len(families) == 0 {
		return ""
	}

	names := make([]string, len(families))
	for i, ff := range families {
		names[i] = ff.Class
	}

	var b strings.Builder
	for _, ff := range families {
		for _, f := range ff.Fonts {
			imp, ok := f.(ImportFont)
			if !ok {
				continue
			}
			b.WriteString("@import url('" + imp.URL + "');")
			b.WriteByte('\n')
		}
	}
	for _, ff := range families {
		adj, ok := typefaceAdjustment(ff.Fonts)
		for _, other := range names {
			if ok {
				b.WriteString(renderFontAdjustmentRule(ff.Class, adj, other))
			} else {
				b.WriteString(renderNullAdjustmentRule(ff.Class, other))
			}
		}
	}
	return b.String()
}

func renderNullAdjustmentRule(target, other string) string {
	name := target
	if target != other {
		name = other + " ." + target
	}
	return bracket(
		"."+name+"."+ClassSizeByCapital+", ."+name+" ."+ClassSizeByCapital,
		[]Property{{"line-height", "1"}},
	) + " " + bracket(
		"."+name+"."+ClassSizeByCapital+"> ."+ClassText+", ."+name+" ."+ClassSizeByCapital+" > ."+ClassText,
		[]Property{{"vertical-align", "0"}, {"line-height", "1"}},
	)
}

func renderFontAdjustmentRule(target string, adj adjustmentRules, other string) string {
	name := target
	if target != other {
		name = other + " ." + target
	}
	rules := fontRule(name, ClassSizeByCapital, adj.capital)
	rules = append(rules, fontRule(name, ClassFullSize, adj.full)...)
	return strings.Join(rules, " ")
}

func fontRule(name, modifier string, adj adjustmentRule) []string {
	return []string{
		bracket(
			"."+name+"."+modifier+", ."+name+" ."+modifier,
			adj.parent,
		),
		bracket(
			"."+name+"."+modifier+"> ."+ClassText+", ."+name+" ."+modifier+" > ."+ClassText,
			adj.text,
		),
	}
}

// bracket renders a compact one-line rule.
func bracket(selector string, props []Property) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {")
	for _, p := range props {
		b.WriteString(p.Name + ": " + p.Value + ";")
	}
	b.WriteByte('}')
	return b.String()
}

func renderProps(force bool, props []Property) string {
	var b strings.Builder
	for _, p := range props {
		if force {
			b.WriteString("\n  " + p.Name + ": " + p.Value + " !important;")
		} else {
			b.WriteString("\n  " + p.Name + ": " + p.Value + ";")
		}
	}
	return b.String()
}

// renderStyle renders one selector/property block, expanded per the
// active pseudo class. Hover obeys the global hover policy; focus emits
// defensive variants covering focus-within and the slider thumb pattern.
func renderStyle(opts OptionSet, pseudo *PseudoClass, selector string, props []Property) []string {
	if pseudo == nil {
		return []string{selector + " {" + renderProps(false, props) + "\n}"}
	}
	switch *pseudo {
	case PseudoHover:
		switch opts.Hover {
		case NoHover:
			return nil
		case ForceHover:
			return []string{selector + "-hv {" + renderProps(true, props) + "\n}"}
		default:
			return []string{selector + "-hv:hover {" + renderProps(false, props) + "\n}"}
		}
	case PseudoFocus:
		rendered := renderProps(false, props)
		return []string{
			selector + "-fs:focus {" + rendered + "\n}",
			".s:focus " + selector + "-fs {" + rendered + "\n}",
			selector + "-fs:focus-within {" + rendered + "\n}",
			".ui-slide-bar:focus + .s .focusable-thumb" + selector + "-fs {" + rendered + "\n}",
		}
	case PseudoActive:
		return []string{selector + "-act:active {" + renderProps(false, props) + "\n}"}
	}
	return nil
}

// renderRule renders one Style to raw CSS rule strings.
func renderRule(opts OptionSet, s Style, pseudo *PseudoClass) []string {
	switch s := s.(type) {
	case Rule:
		return renderStyle(opts, pseudo, s.Selector, s.Props)

	case Shadows:
		return renderStyle(opts, pseudo, "."+s.Class, []Property{{"box-shadow", s.Prop}})

	case Transparency:
		opacity := 1 - s.Level
		if opacity < 0 {
			opacity = 0
		}
		if opacity > 1 {
			opacity = 1
		}
		return renderStyle(opts, pseudo, "."+s.Class, []Property{{"opacity", FormatFloat(opacity)}})

	case FontSize:
		return renderStyle(opts, pseudo, ".font-size-"+strconv.Itoa(int(s)),
			[]Property{{"font-size", strconv.Itoa(int(s)) + "px"}})

	case FontFamily:
		names := make([]string, len(s.Fonts))
		for i, f := range s.Fonts {
			names[i] = f.Name()
		}
		variant := "normal"
		if hasSmallCaps(s.Fonts) {
			variant = "small-caps"
		}
		return renderStyle(opts, pseudo, "."+s.Class, []Property{
			{"font-family", strings.Join(names, " ,")},
			{"font-feature-settings", fontFeatures(s.Fonts)},
			{"font-variant", variant},
		})

	case Single:
		return renderStyle(opts, pseudo, "."+s.Class, []Property{{s.Prop, s.Value}})

	case Colored:
		return renderStyle(opts, pseudo, "."+s.Class, []Property{{s.Prop, s.Color.Format()}})

	case SpacingStyle:
		return renderSpacing(opts, s, pseudo)

	case PaddingStyle:
		padding := FormatFloat(s.Top) + "px " + FormatFloat(s.Right) + "px " +
			FormatFloat(s.Bottom) + "px " + FormatFloat(s.Left) + "px"
		return renderStyle(opts, pseudo, "."+s.Class, []Property{{"padding", padding}})

	case BorderWidth:
		width := strconv.Itoa(s.Top) + "px " + strconv.Itoa(s.Right) + "px " +
			strconv.Itoa(s.Bottom) + "px " + strconv.Itoa(s.Left) + "px"
		return renderStyle(opts, pseudo, "."+s.Class, []Property{{"border-width", width}})

	case GridTemplateStyle:
		return renderGridTemplate(s)

	case GridPosition:
		return renderGridPosition(s)

	case PseudoSelector:
		var out []string
		for _, nested := range s.Styles {
			out = append(out, renderRule(opts, nested, &s.Class)...)
		}
		return out

	case Transform:
		cls, okClass := s.Class()
		val, okValue := s.Value()
		if !okClass || !okValue {
			return nil
		}
		return renderStyle(opts, pseudo, "."+cls, []Property{{"transform", val}})
	}
	return nil
}

// renderSpacing expands one spacing class into its companion rules: sibling
// margins per container kind, paragraph line-height with first/last line
// correction spacers, and the textarea height compensation.
func renderSpacing(opts OptionSet, s SpacingStyle, pseudo *PseudoClass) []string {
	var (
		class      = "." + s.Class
		halfX      = FormatFloat(float64(s.X)/2) + "px"
		halfY      = FormatFloat(float64(s.Y)/2) + "px"
		pxX        = strconv.Itoa(s.X) + "px"
		pxY        = strconv.Itoa(s.Y) + "px"
		row        = "." + ClassRow
		wrappedRow = "." + ClassWrapped + row
		col        = "." + ClassColumn
		page       = "." + ClassPage
		paragraph  = "." + ClassParagraph
		left       = "." + ClassAlignLeft
		right      = "." + ClassAlignRight
		any        = "." + ClassAny
	)

	halfNegY := strconv.Itoa(-(s.Y / 2)) + "px"

	var out []string
	render := func(selector string, props ...Property) {
		out = append(out, renderStyle(opts, pseudo, selector, props)...)
	}

	render(class+row+" > "+any+" + "+any, Property{"margin-left", pxX})
	// Margins apply to every child of a wrapped row; the element cancels
	// the outer ones with compensating negative padding.
	render(class+wrappedRow+" > "+any, Property{"margin", halfY + " " + halfX})
	render(class+col+" > "+any+" + "+any, Property{"margin-top", pxY})
	render(class+page+" > "+any+" + "+any, Property{"margin-top", pxY})
	render(class+page+" > "+left, Property{"margin-right", pxX})
	render(class+page+" > "+right, Property{"margin-left", pxX})
	render(class+paragraph, Property{"line-height", "calc(1em + " + pxY + ")"})
	render("textarea"+any+class,
		Property{"line-height", "calc(1em + " + pxY + ")"},
		Property{"height", "calc(100% + " + pxY + ")"})
	render(class+paragraph+" > "+left, Property{"margin-right", pxX})
	render(class+" "+paragraph+" > "+right, Property{"margin-left", pxX})
	render(class+" "+paragraph+"::after",
		Property{"content", "''"},
		Property{"display", "block"},
		Property{"height", "0"},
		Property{"width", "0"},
		Property{"margin-top", halfNegY})
	render(class+" "+paragraph+"::before",
		Property{"content", "''"},
		Property{"display", "block"},
		Property{"height", "0"},
		Property{"width", "0"},
		Property{"margin-bottom", halfNegY})
	return out
}

// renderGridTemplate renders the legacy -ms-grid form and the modern form
// under an @supports gate. Neither varies by pseudo class.
func renderGridTemplate(s GridTemplateStyle) []string {
	class := "." + s.Name()

	spacingY := gridTrack(s.SpacingY)
	cols := make([]string, len(s.Columns))
	for i, l := range s.Columns {
		cols[i] = gridTrack(l)
	}
	rows := make([]string, len(s.Rows))
	for i, l := range s.Rows {
		rows[i] = gridTrack(l)
	}

	base := class + "{" +
		"-ms-grid-columns: " + strings.Join(cols, spacingY) + ";" +
		"-ms-grid-rows: " + strings.Join(rows, spacingY) + ";" +
		"}"

	modern := class + "{" +
		"grid-template-columns: " + strings.Join(cols, " ") + ";" +
		"grid-template-rows: " + strings.Join(rows, " ") + ";" +
		"grid-column-gap:" + gridTrack(s.SpacingX) + ";" +
		"grid-row-gap:" + spacingY + ";" +
		"}"

	return []string{base, "@supports (display:grid) {" + modern + "}"}
}

func renderGridPosition(s GridPosition) []string {
	class := ".grid-pos-" + strconv.Itoa(s.Row) + "-" + strconv.Itoa(s.Col) +
		"-" + strconv.Itoa(s.Width) + "-" + strconv.Itoa(s.Height)

	base := class + "{" +
		"-ms-grid-row: " + strconv.Itoa(s.Row) + "; " +
		"-ms-grid-row-span: " + strconv.Itoa(s.Height) + "; " +
		"-ms-grid-column: " + strconv.Itoa(s.Col) + "; " +
		"-ms-grid-column-span: " + strconv.Itoa(s.Width) + ";" +
		"}"

	modern := class + "{" +
		"grid-row: " + strconv.Itoa(s.Row) + " / " + strconv.Itoa(s.Row+s.Height) + "; " +
		"grid-column: " + strconv.Itoa(s.Col) + " / " + strconv.Itoa(s.Col+s.Width) + ";" +
		"}"

	return []string{base, "@supports (display:grid) {" + modern + "}"}
}
