package style

import (
	"strconv"
	"strings"
)

// The static base sheet is declared as a typed rule tree and rendered once
// at package init. Selectors are assembled from the class constants so the
// sheet can never drift from the names the engine attaches to nodes.

type sheetRule interface {
	isSheetRule()
}

type prop struct {
	name  string
	value string
}

type child struct {
	selector string
	rules    []sheetRule
}

type allChildren struct {
	selector string
	rules    []sheetRule
}

type supports struct {
	condProp  string
	condValue string
	props     []prop
}

type descriptor struct {
	selector string
	rules    []sheetRule
}

type adjacent struct {
	selector string
	rules    []sheetRule
}

type batch []sheetRule

func (prop) isSheetRule()        {}
func (child) isSheetRule()       {}
func (allChildren) isSheetRule() {}
func (supports) isSheetRule()    {}
func (descriptor) isSheetRule()  {}
func (adjacent) isSheetRule()    {}
func (batch) isSheetRule()       {}

type sheetClass struct {
	selector string
	rules    []sheetRule
}

// intermediate is one flattened selector block; others holds blocks derived
// from nested rules.
type intermediate struct {
	selector string
	props    []prop
	closing  string
	others   []*intermediate
}

func renderRules(parent *intermediate, rules []sheetRule) *intermediate {
	for _, r := range rules {
		switch r := r.(type) {
		case prop:
			parent.props = append(parent.props, r)
		case supports:
			parent.others = append(parent.others, &intermediate{
				selector: "@supports (" + r.condProp + ":" + r.condValue + ") {" + parent.selector,
				props:    r.props,
				closing:  "\n}",
			})
		case adjacent:
			parent.others = append(parent.others,
				renderRules(&intermediate{selector: parent.selector + " + " + r.selector}, r.rules))
		case child:
			parent.others = append(parent.others,
				renderRules(&intermediate{selector: parent.selector + " > " + r.selector}, r.rules))
		case allChildren:
			parent.others = append(parent.others,
				renderRules(&intermediate{selector: parent.selector + " " + r.selector}, r.rules))
		case descriptor:
			parent.others = append(parent.others,
				renderRules(&intermediate{selector: parent.selector + r.selector}, r.rules))
		case batch:
			parent.others = append(parent.others,
				renderRules(&intermediate{selector: parent.selector}, []sheetRule(r)))
		}
	}
	return parent
}

func renderIntermediate(it *intermediate) string {
	var b strings.Builder
	if len(it.props) > 0 {
		b.WriteString(it.selector)
		b.WriteString(" {")
		for _, p := range it.props {
			b.WriteString(p.name + ":" + p.value + ";")
		}
		b.WriteString(it.closing)
		b.WriteByte('}')
	}
	for i, o := range it.others {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderIntermediate(o))
	}
	return b.String()
}

func renderCompact(classes []sheetClass) string {
	var b strings.Builder
	for _, c := range classes {
		b.WriteString(renderIntermediate(renderRules(&intermediate{selector: c.selector}, c.rules)))
	}
	return b.String()
}

type alignment int

const (
	alignmentTop alignment = iota
	alignmentBottom
	alignmentRight
	alignmentLeft
	alignmentCenterX
	alignmentCenterY
)

var alignments = []alignment{
	alignmentTop, alignmentBottom, alignmentRight,
	alignmentLeft, alignmentCenterX, alignmentCenterY,
}

func contentClass(a alignment) string {
	switch a {
	case alignmentTop:
		return ClassContentTop
	case alignmentBottom:
		return ClassContentBottom
	case alignmentRight:
		return ClassContentRight
	case alignmentLeft:
		return ClassContentLeft
	case alignmentCenterX:
		return ClassContentCenterX
	default:
		return ClassContentCenterY
	}
}

func selfClass(a alignment) string {
	switch a {
	case alignmentTop:
		return ClassAlignTop
	case alignmentBottom:
		return ClassAlignBottom
	case alignmentRight:
		return ClassAlignRight
	case alignmentLeft:
		return ClassAlignLeft
	case alignmentCenterX:
		return ClassAlignCenterX
	default:
		return ClassAlignCenterY
	}
}

// describeAlignment expands one rule per alignment for the container's
// content alignment class and one for each child's self alignment class.
func describeAlignment(values func(alignment) (content, self []sheetRule)) sheetRule {
	var rules []sheetRule
	for _, a := range alignments {
		content, self := values(a)
		rules = append(rules,
			descriptor{"." + contentClass(a), content},
			child{"." + ClassAny, []sheetRule{descriptor{"." + selfClass(a), self}}},
		)
	}
	return batch(rules)
}

func gridAlignments(values func(alignment) []sheetRule) sheetRule {
	var rules []sheetRule
	for _, a := range alignments {
		rules = append(rules,
			child{"." + ClassAny, []sheetRule{descriptor{"." + selfClass(a), values(a)}}},
		)
	}
	return batch(rules)
}

var staticSheet = overrides + renderCompact(append(basesheet(), commonValues()...))

// Rules returns the static base stylesheet. It is embedded at most once per
// layout root.
func Rules() string {
	return staticSheet
}

func commonValues() []sheetClass {
	var classes []sheetClass
	for i := 0; i <= 6; i++ {
		classes = append(classes, sheetClass{
			".border-" + strconv.Itoa(i),
			[]sheetRule{prop{"border-width", strconv.Itoa(i) + "px"}},
		})
	}
	for i := 8; i <= 32; i++ {
		classes = append(classes, sheetClass{
			".font-size-" + strconv.Itoa(i),
			[]sheetRule{prop{"font-size", strconv.Itoa(i) + "px"}},
		})
	}
	for i := 0; i <= 24; i++ {
		// Same four-sided shorthand the dynamic renderer produces, so a
		// skipped uniform padding still resolves to an identical rule.
		px := strconv.Itoa(i) + "px"
		classes = append(classes, sheetClass{
			".p-" + strconv.Itoa(i),
			[]sheetRule{prop{"padding", px + " " + px + " " + px + " " + px}},
		})
	}
	classes = append(classes,
		sheetClass{".v-smcp", []sheetRule{prop{"font-variant", "small-caps"}}},
		sheetClass{".v-smcp-off", []sheetRule{prop{"font-variant", "normal"}}},
	)
	for _, f := range []string{"zero", "onum", "liga", "dlig", "ordn", "tnum", "afrc", "frac"} {
		classes = append(classes,
			sheetClass{".v-" + f, []sheetRule{prop{"font-feature-settings", `"` + f + `"`}}},
			sheetClass{".v-" + f + "-off", []sheetRule{prop{"font-feature-settings", `"` + f + `" 0`}}},
		)
	}
	return classes
}

func basesheet() []sheetClass {
	return []sheetClass{
		{"html,body", []sheetRule{
			prop{"height", "100%"},
			prop{"padding", "0"},
			prop{"margin", "0"},
		}},
		{"." + ClassAny + "." + ClassSingle + "." + ClassImageContainer, []sheetRule{
			prop{"display", "block"},
			descriptor{"." + ClassHeightFill, []sheetRule{
				child{"img", []sheetRule{
					prop{"max-height", "100%"},
					prop{"object-fit", "cover"},
				}},
			}},
			descriptor{"." + ClassWidthFill, []sheetRule{
				child{"img", []sheetRule{
					prop{"max-width", "100%"},
					prop{"object-fit", "cover"},
				}},
			}},
		}},
		{"." + ClassAny + ":focus", []sheetRule{
			prop{"outline", "none"},
		}},
		{"." + ClassRoot, []sheetRule{
			prop{"width", "100%"},
			prop{"height", "auto"},
			prop{"min-height", "100%"},
			prop{"z-index", "0"},
			descriptor{"." + ClassAny + "." + ClassSingle + "." + ClassHeightFill, []sheetRule{
				prop{"height", "100%"},
				child{"." + ClassHeightFill, []sheetRule{prop{"height", "100%"}}},
			}},
			child{"." + ClassInFront, []sheetRule{
				descriptor{"." + ClassNearby, []sheetRule{
					prop{"position", "fixed"},
					prop{"z-index", "20"},
				}},
			}},
		}},
		{"." + ClassNearby, []sheetRule{
			prop{"position", "relative"},
			prop{"border", "none"},
			prop{"display", "flex"},
			prop{"flex-direction", "row"},
			prop{"flex-basis", "auto"},
			batch{
				descriptor{"." + ClassAbove, []sheetRule{
					prop{"position", "absolute"},
					prop{"bottom", "100%"},
					prop{"left", "0"},
					prop{"width", "100%"},
					prop{"z-index", "20"},
					prop{"margin", "0 !important"},
					child{"." + ClassHeightFill, []sheetRule{prop{"height", "auto"}}},
					child{"." + ClassWidthFill, []sheetRule{prop{"width", "100%"}}},
					prop{"pointer-events", "none"},
					child{"*", []sheetRule{prop{"pointer-events", "auto"}}},
				}},
				descriptor{"." + ClassBelow, []sheetRule{
					prop{"position", "absolute"},
					prop{"bottom", "0"},
					prop{"left", "0"},
					prop{"height", "0"},
					prop{"width", "100%"},
					prop{"z-index", "20"},
					prop{"margin", "0 !important"},
					prop{"pointer-events", "none"},
					child{"*", []sheetRule{prop{"pointer-events", "auto"}}},
					child{"." + ClassHeightFill, []sheetRule{prop{"height", "auto"}}},
				}},
				descriptor{"." + ClassOnRight, []sheetRule{
					prop{"position", "absolute"},
					prop{"left", "100%"},
					prop{"top", "0"},
					prop{"height", "100%"},
					prop{"margin", "0 !important"},
					prop{"z-index", "20"},
					prop{"pointer-events", "none"},
					child{"*", []sheetRule{prop{"pointer-events", "auto"}}},
				}},
				descriptor{"." + ClassOnLeft, []sheetRule{
					prop{"position", "absolute"},
					prop{"right", "100%"},
					prop{"top", "0"},
					prop{"height", "100%"},
					prop{"margin", "0 !important"},
					prop{"z-index", "20"},
					prop{"pointer-events", "none"},
					child{"*", []sheetRule{prop{"pointer-events", "auto"}}},
				}},
				descriptor{"." + ClassInFront, []sheetRule{
					prop{"position", "absolute"},
					prop{"width", "100%"},
					prop{"height", "100%"},
					prop{"left", "0"},
					prop{"top", "0"},
					prop{"margin", "0 !important"},
					prop{"pointer-events", "none"},
					child{"*", []sheetRule{prop{"pointer-events", "auto"}}},
				}},
				descriptor{"." + ClassBehind, []sheetRule{
					prop{"position", "absolute"},
					prop{"width", "100%"},
					prop{"height", "100%"},
					prop{"left", "0"},
					prop{"top", "0"},
					prop{"margin", "0 !important"},
					prop{"z-index", "0"},
					prop{"pointer-events", "none"},
					child{"*", []sheetRule{prop{"pointer-events", "auto"}}},
				}},
			},
		}},
		{"." + ClassAny, anyRules()},
	}
}

// anyRules is the bulk of the sheet: resets and behavior classes scoped
// under the universal element class.
func anyRules() []sheetRule {
	return []sheetRule{
		prop{"position", "relative"},
		prop{"border", "none"},
		prop{"flex-shrink", "0"},
		prop{"display", "flex"},
		prop{"flex-direction", "row"},
		prop{"flex-basis", "auto"},
		prop{"resize", "none"},
		prop{"font-feature-settings", "inherit"},
		prop{"box-sizing", "border-box"},
		prop{"margin", "0"},
		prop{"padding", "0"},
		prop{"border-width", "0"},
		prop{"border-style", "solid"},
		prop{"font-size", "inherit"},
		prop{"color", "inherit"},
		prop{"font-family", "inherit"},
		prop{"line-height", "1"},
		prop{"font-weight", "inherit"},
		// Text decoration is mandatorily inherited in the css spec.
		prop{"text-decoration", "none"},
		prop{"font-style", "inherit"},
		descriptor{"." + ClassWrapped, []sheetRule{prop{"flex-wrap", "wrap"}}},
		descriptor{"." + ClassNoTextSelection, []sheetRule{
			prop{"-moz-user-select", "none"},
			prop{"-webkit-user-select", "none"},
			prop{"-ms-user-select", "none"},
			prop{"user-select", "none"},
		}},
		descriptor{"." + ClassCursorPointer, []sheetRule{prop{"cursor", "pointer"}}},
		descriptor{"." + ClassCursorText, []sheetRule{prop{"cursor", "text"}}},
		descriptor{"." + ClassPassPointerEvents, []sheetRule{prop{"pointer-events", "none !important"}}},
		descriptor{"." + ClassCapturePointerEvents, []sheetRule{prop{"pointer-events", "auto !important"}}},
		descriptor{"." + ClassTransparent, []sheetRule{prop{"opacity", "0"}}},
		descriptor{"." + ClassOpaque, []sheetRule{prop{"opacity", "1"}}},
		descriptor{"." + ClassHover + "." + ClassTransparent + ":hover", []sheetRule{prop{"opacity", "0"}}},
		descriptor{"." + ClassHover + "." + ClassOpaque + ":hover", []sheetRule{prop{"opacity", "1"}}},
		descriptor{"." + ClassFocus + "." + ClassTransparent + ":focus", []sheetRule{prop{"opacity", "0"}}},
		descriptor{"." + ClassFocus + "." + ClassOpaque + ":focus", []sheetRule{prop{"opacity", "1"}}},
		descriptor{"." + ClassActive + "." + ClassTransparent + ":active", []sheetRule{prop{"opacity", "0"}}},
		descriptor{"." + ClassActive + "." + ClassOpaque + ":active", []sheetRule{prop{"opacity", "1"}}},
		descriptor{"." + ClassTransition, []sheetRule{
			prop{"transition", "transform 160ms, opacity 160ms, filter 160ms, background-color 160ms, color 160ms, font-size 160ms"},
		}},
		descriptor{"." + ClassScrollbars, []sheetRule{
			prop{"overflow", "auto"},
			prop{"flex-shrink", "1"},
		}},
		descriptor{"." + ClassScrollbarsX, []sheetRule{
			prop{"overflow-x", "auto"},
			descriptor{"." + ClassRow, []sheetRule{prop{"flex-shrink", "1"}}},
		}},
		descriptor{"." + ClassScrollbarsY, []sheetRule{
			prop{"overflow-y", "auto"},
			descriptor{"." + ClassColumn, []sheetRule{prop{"flex-shrink", "1"}}},
			descriptor{"." + ClassSingle, []sheetRule{prop{"flex-shrink", "1"}}},
		}},
		descriptor{"." + ClassClip, []sheetRule{prop{"overflow", "hidden"}}},
		descriptor{"." + ClassClipX, []sheetRule{prop{"overflow-x", "hidden"}}},
		descriptor{"." + ClassClipY, []sheetRule{prop{"overflow-y", "hidden"}}},
		descriptor{"." + ClassWidthContent, []sheetRule{prop{"width", "auto"}}},
		descriptor{"." + ClassBorderNone, []sheetRule{prop{"border-width", "0"}}},
		descriptor{"." + ClassBorderDashed, []sheetRule{prop{"border-style", "dashed"}}},
		descriptor{"." + ClassBorderDotted, []sheetRule{prop{"border-style", "dotted"}}},
		descriptor{"." + ClassBorderSolid, []sheetRule{prop{"border-style", "solid"}}},
		descriptor{"." + ClassText, []sheetRule{
			prop{"white-space", "pre"},
			prop{"display", "inline-block"},
		}},
		descriptor{"." + ClassInputText, []sheetRule{
			// chrome and safari bump a line height of 1 up to ~1.2;
			// 1.05 is the minimum they honor for text inputs.
			prop{"line-height", "1.05"},
			prop{"background", "transparent"},
			prop{"text-align", "inherit"},
		}},
		descriptor{"." + ClassRow, rowRules()},
		descriptor{"." + ClassColumn, columnRules()},
		descriptor{"." + ClassGrid, gridRules()},
		descriptor{"." + ClassPage, pageRules()},
		descriptor{"." + ClassInputMultiline, []sheetRule{
			prop{"white-space", "pre-wrap !important"},
			prop{"height", "100%"},
			prop{"width", "100%"},
			prop{"background-color", "transparent"},
		}},
		descriptor{"." + ClassInputMultilineWrapper, []sheetRule{
			// increased specificity to beat the column flex-basis rule
			descriptor{"." + ClassSingle, []sheetRule{prop{"flex-basis", "auto"}}},
		}},
		descriptor{"." + ClassInputMultilineParent, []sheetRule{
			prop{"white-space", "pre-wrap !important"},
			prop{"cursor", "text"},
			child{"." + ClassInputMultilineFiller, []sheetRule{
				prop{"white-space", "pre-wrap !important"},
				prop{"color", "transparent"},
			}},
		}},
		descriptor{"." + ClassParagraph, paragraphRules()},
		descriptor{".hidden", []sheetRule{prop{"display", "none"}}},
		descriptor{"." + ClassTextThin, []sheetRule{prop{"font-weight", "100"}}},
		descriptor{"." + ClassTextExtraLight, []sheetRule{prop{"font-weight", "200"}}},
		descriptor{"." + ClassTextLight, []sheetRule{prop{"font-weight", "300"}}},
		descriptor{"." + ClassTextNormalWeight, []sheetRule{prop{"font-weight", "400"}}},
		descriptor{"." + ClassTextMedium, []sheetRule{prop{"font-weight", "500"}}},
		descriptor{"." + ClassTextSemiBold, []sheetRule{prop{"font-weight", "600"}}},
		descriptor{"." + ClassBold, []sheetRule{prop{"font-weight", "700"}}},
		descriptor{"." + ClassTextExtraBold, []sheetRule{prop{"font-weight", "800"}}},
		descriptor{"." + ClassTextHeavy, []sheetRule{prop{"font-weight", "900"}}},
		descriptor{"." + ClassItalic, []sheetRule{prop{"font-style", "italic"}}},
		descriptor{"." + ClassStrike, []sheetRule{prop{"text-decoration", "line-through"}}},
		descriptor{"." + ClassUnderline, []sheetRule{
			prop{"text-decoration", "underline"},
			prop{"text-decoration-skip-ink", "auto"},
			prop{"text-decoration-skip", "ink"},
		}},
		descriptor{"." + ClassUnderline + "." + ClassStrike, []sheetRule{
			prop{"text-decoration", "line-through underline"},
			prop{"text-decoration-skip-ink", "auto"},
			prop{"text-decoration-skip", "ink"},
		}},
		descriptor{"." + ClassTextUnitalicized, []sheetRule{prop{"font-style", "normal"}}},
		descriptor{"." + ClassTextJustify, []sheetRule{prop{"text-align", "justify"}}},
		descriptor{"." + ClassTextJustifyAll, []sheetRule{prop{"text-align", "justify-all"}}},
		descriptor{"." + ClassTextCenter, []sheetRule{prop{"text-align", "center"}}},
		descriptor{"." + ClassTextRight, []sheetRule{prop{"text-align", "right"}}},
		descriptor{"." + ClassTextLeft, []sheetRule{prop{"text-align", "left"}}},
		descriptor{".modal", []sheetRule{
			prop{"position", "fixed"},
			prop{"left", "0"},
			prop{"top", "0"},
			prop{"width", "100%"},
			prop{"height", "100%"},
			prop{"pointer-events", "none"},
		}},
	}
}

func rowRules() []sheetRule {
	return []sheetRule{
		prop{"display", "flex"},
		prop{"flex-direction", "row"},
		child{"." + ClassAny, []sheetRule{
			prop{"flex-basis", "0%"},
			descriptor{"." + ClassWidthExact, []sheetRule{prop{"flex-basis", "auto"}}},
			descriptor{"." + ClassLink, []sheetRule{prop{"flex-basis", "auto"}}},
		}},
		child{"." + ClassHeightFill, []sheetRule{
			// alignTop, centerY and alignBottom are disabled for fills
			prop{"align-self", "stretch !important"},
		}},
		child{"." + ClassHeightFillPortion, []sheetRule{
			prop{"align-self", "stretch !important"},
		}},
		describeAlignment(func(a alignment) (content, self []sheetRule) {
			switch a {
			case alignmentTop:
				return []sheetRule{prop{"align-items", "flex-start"}},
					[]sheetRule{prop{"align-self", "flex-start"}}
			case alignmentBottom:
				return []sheetRule{prop{"align-items", "flex-end"}},
					[]sheetRule{prop{"align-self", "flex-end"}}
			case alignmentRight:
				return []sheetRule{prop{"justify-content", "flex-end"}}, nil
			case alignmentLeft:
				return []sheetRule{prop{"justify-content", "flex-start"}}, nil
			case alignmentCenterX:
				return []sheetRule{prop{"justify-content", "center"}}, nil
			default:
				return []sheetRule{prop{"align-items", "center"}},
					[]sheetRule{prop{"align-self", "center"}}
			}
		}),
		// must stay below the alignment rules or it interferes with them
		descriptor{"." + ClassSpaceEvenly, []sheetRule{prop{"justify-content", "space-between"}}},
		descriptor{"." + ClassInputLabel, []sheetRule{prop{"align-items", "baseline"}}},
	}
}

func columnRules() []sheetRule {
	return []sheetRule{
		prop{"display", "flex"},
		prop{"flex-direction", "column"},
		child{"." + ClassAny, []sheetRule{
			// Safari renders flex-basis 0% in a column as a zero height
			// instead of the content size, so pair 0px with a
			// min-content floor (ignored by IE, honored everywhere else).
			prop{"flex-basis", "0px"},
			prop{"min-height", "min-content"},
			descriptor{"." + ClassHeightExact, []sheetRule{prop{"flex-basis", "auto"}}},
		}},
		child{"." + ClassHeightFill, []sheetRule{prop{"flex-grow", "100000"}}},
		child{"." + ClassWidthFill, []sheetRule{prop{"width", "100%"}}},
		child{"." + ClassWidthFillPortion, []sheetRule{prop{"width", "100%"}}},
		child{"." + ClassWidthContent, []sheetRule{prop{"align-self", "flex-start"}}},
		child{"u:first-of-type." + ClassAlignContainerBottom, []sheetRule{prop{"flex-grow", "1"}}},
		// centerY children render in an <s> wrapper, alignBottom in <u>
		child{"s:first-of-type." + ClassAlignContainerCenterY, []sheetRule{
			prop{"flex-grow", "1"},
			child{"." + ClassAlignCenterY, []sheetRule{
				prop{"margin-top", "auto !important"},
				prop{"margin-bottom", "0 !important"},
			}},
		}},
		child{"s:last-of-type." + ClassAlignContainerCenterY, []sheetRule{
			prop{"flex-grow", "1"},
			child{"." + ClassAlignCenterY, []sheetRule{
				prop{"margin-bottom", "auto !important"},
				prop{"margin-top", "0 !important"},
			}},
		}},
		child{"s:only-of-type." + ClassAlignContainerCenterY, []sheetRule{
			prop{"flex-grow", "1"},
			child{"." + ClassAlignCenterY, []sheetRule{
				prop{"margin-top", "auto !important"},
				prop{"margin-bottom", "auto !important"},
			}},
		}},
		// alignBottom after a centerY must not grow, and vice versa
		child{"s:last-of-type." + ClassAlignContainerCenterY + " ~ u", []sheetRule{prop{"flex-grow", "0"}}},
		child{"u:first-of-type." + ClassAlignContainerBottom + " ~ s." + ClassAlignContainerCenterY, []sheetRule{prop{"flex-grow", "0"}}},
		describeAlignment(func(a alignment) (content, self []sheetRule) {
			switch a {
			case alignmentTop:
				return []sheetRule{prop{"justify-content", "flex-start"}},
					[]sheetRule{prop{"margin-bottom", "auto"}}
			case alignmentBottom:
				return []sheetRule{prop{"justify-content", "flex-end"}},
					[]sheetRule{prop{"margin-top", "auto"}}
			case alignmentRight:
				return []sheetRule{prop{"align-items", "flex-end"}},
					[]sheetRule{prop{"align-self", "flex-end"}}
			case alignmentLeft:
				return []sheetRule{prop{"align-items", "flex-start"}},
					[]sheetRule{prop{"align-self", "flex-start"}}
			case alignmentCenterX:
				return []sheetRule{prop{"align-items", "center"}},
					[]sheetRule{prop{"align-self", "center"}}
			default:
				return []sheetRule{prop{"justify-content", "center"}}, nil
			}
		}),
		child{"." + ClassContainer, []sheetRule{
			prop{"flex-grow", "0"},
			prop{"flex-basis", "auto"},
			prop{"width", "100%"},
			prop{"align-self", "stretch !important"},
		}},
		descriptor{"." + ClassSpaceEvenly, []sheetRule{prop{"justify-content", "space-between"}}},
	}
}

func gridRules() []sheetRule {
	return []sheetRule{
		prop{"display", "-ms-grid"},
		child{".gp", []sheetRule{
			child{"." + ClassAny, []sheetRule{prop{"width", "100%"}}},
		}},
		supports{"display", "grid", []prop{{"display", "grid"}}},
		gridAlignments(func(a alignment) []sheetRule {
			switch a {
			case alignmentTop:
				return []sheetRule{prop{"justify-content", "flex-start"}}
			case alignmentBottom:
				return []sheetRule{prop{"justify-content", "flex-end"}}
			case alignmentRight:
				return []sheetRule{prop{"align-items", "flex-end"}}
			case alignmentLeft:
				return []sheetRule{prop{"align-items", "flex-start"}}
			case alignmentCenterX:
				return []sheetRule{prop{"align-items", "center"}}
			default:
				return []sheetRule{prop{"justify-content", "center"}}
			}
		}),
	}
}

func pageRules() []sheetRule {
	return []sheetRule{
		prop{"display", "block"},
		child{"." + ClassAny + ":first-child", []sheetRule{prop{"margin", "0 !important"}}},
		// a floated first element must not push spacing onto its successor
		child{"." + ClassAny + "." + ClassAlignLeft + ":first-child + ." + ClassAny,
			[]sheetRule{prop{"margin", "0 !important"}}},
		child{"." + ClassAny + "." + ClassAlignRight + ":first-child + ." + ClassAny,
			[]sheetRule{prop{"margin", "0 !important"}}},
		describeAlignment(func(a alignment) (content, self []sheetRule) {
			switch a {
			case alignmentRight:
				return nil, []sheetRule{
					prop{"float", "right"},
					descriptor{"::after", []sheetRule{
						prop{"content", `""`},
						prop{"display", "table"},
						prop{"clear", "both"},
					}},
				}
			case alignmentLeft:
				return nil, []sheetRule{
					prop{"float", "left"},
					descriptor{"::after", []sheetRule{
						prop{"content", `""`},
						prop{"display", "table"},
						prop{"clear", "both"},
					}},
				}
			default:
				return nil, nil
			}
		}),
	}
}

func paragraphRules() []sheetRule {
	return []sheetRule{
		prop{"display", "block"},
		prop{"white-space", "normal"},
		prop{"overflow-wrap", "break-word"},
		descriptor{"." + ClassHasBehind, []sheetRule{
			prop{"z-index", "0"},
			child{"." + ClassBehind, []sheetRule{prop{"z-index", "-1"}}},
		}},
		allChildren{"." + ClassText, []sheetRule{
			prop{"display", "inline"},
			prop{"white-space", "normal"},
		}},
		allChildren{"." + ClassParagraph, []sheetRule{
			prop{"display", "inline"},
			descriptor{"::after", []sheetRule{prop{"content", "none"}}},
			descriptor{"::before", []sheetRule{prop{"content", "none"}}},
		}},
		allChildren{"." + ClassSingle, []sheetRule{
			prop{"display", "inline"},
			prop{"white-space", "normal"},
			// inline-block respects an exact width but breaks normal
			// text wrapping; assume exact-width elements do not expect
			// paragraph flow.
			descriptor{"." + ClassWidthExact, []sheetRule{prop{"display", "inline-block"}}},
			descriptor{"." + ClassInFront, []sheetRule{prop{"display", "flex"}}},
			descriptor{"." + ClassBehind, []sheetRule{prop{"display", "flex"}}},
			descriptor{"." + ClassAbove, []sheetRule{prop{"display", "flex"}}},
			descriptor{"." + ClassBelow, []sheetRule{prop{"display", "flex"}}},
			descriptor{"." + ClassOnRight, []sheetRule{prop{"display", "flex"}}},
			descriptor{"." + ClassOnLeft, []sheetRule{prop{"display", "flex"}}},
			child{"." + ClassText, []sheetRule{
				prop{"display", "inline"},
				prop{"white-space", "normal"},
			}},
		}},
		child{"." + ClassRow, []sheetRule{prop{"display", "inline"}}},
		child{"." + ClassColumn, []sheetRule{prop{"display", "inline-flex"}}},
		child{"." + ClassGrid, []sheetRule{prop{"display", "inline-grid"}}},
		describeAlignment(func(a alignment) (content, self []sheetRule) {
			switch a {
			case alignmentRight:
				return nil, []sheetRule{prop{"float", "right"}}
			case alignmentLeft:
				return nil, []sheetRule{prop{"float", "left"}}
			default:
				return nil, nil
			}
		}),
	}
}

const overrides = `
@media screen and (-ms-high-contrast: active), (-ms-high-contrast: none) {
    .s.r > .s { flex-basis: auto !important; }
    .s.r > .s.ctr { flex-basis: auto !important; }
}
input[type="search"],
input[type="search"]::-webkit-search-decoration,
input[type="search"]::-webkit-search-cancel-button,
input[type="search"]::-webkit-search-results-button,
input[type="search"]::-webkit-search-results-decoration {
  -webkit-appearance:none;
}
input[type=range] {
  -webkit-appearance: none;
  background: transparent;
  position:absolute;
  left:0;
  top:0;
  z-index:10;
  width: 100%;
  outline: dashed 1px;
  height: 100%;
  opacity: 0;
}
input[type=range]::-moz-range-track {
    background: transparent;
    cursor: pointer;
}
input[type=range]::-ms-track {
    background: transparent;
    cursor: pointer;
}
input[type=range]::-webkit-slider-runnable-track {
    background: transparent;
    cursor: pointer;
}
input[type=range]::-webkit-slider-thumb {
    -webkit-appearance: none;
    opacity: 0.5;
    width: 80px;
    height: 80px;
    background-color: black;
    border:none;
    border-radius: 5px;
}
input[type=range]::-moz-range-thumb {
    opacity: 0.5;
    width: 80px;
    height: 80px;
    background-color: black;
    border:none;
    border-radius: 5px;
}
input[type=range]::-ms-thumb {
    opacity: 0.5;
    width: 80px;
    height: 80px;
    background-color: black;
    border:none;
    border-radius: 5px;
}
input[type=range][orient=vertical]{
    writing-mode: bt-lr; /* IE */
    -webkit-appearance: slider-vertical;  /* WebKit */
}
.explain {
    border: 6px solid rgb(174, 121, 15) !important;
}
.explain > .s {
    border: 4px dashed rgb(0, 151, 167) !important;
}
.ctr {
    border: none !important;
}
.explain > .ctr > .s {
    border: 4px dashed rgb(0, 151, 167) !important;
}
`
