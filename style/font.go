package style

import (
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

// Font is one entry in a typeface stack.
type Font interface {
	// Name returns the CSS font-family list entry, quoted unless the
	// font is a generic family.
	Name() string
	isFont()
}

// Serif is the generic serif family.
type Serif struct{}

// SansSerif is the generic sans-serif family.
type SansSerif struct{}

// Monospace is the generic monospace family.
type Monospace struct{}

// Typeface is a named font assumed to be available locally.
type Typeface string

// ImportFont is a named font loaded through an @import url.
type ImportFont struct {
	Family string
	URL    string
}

// FontWith is a named font carrying optional vertical-metric adjustments
// and feature variants.
type FontWith struct {
	Family     string
	Adjustment *Adjustment
	Variants   []Variant
}

func (Serif) Name() string        { return "serif" }
func (SansSerif) Name() string    { return "sans-serif" }
func (Monospace) Name() string    { return "monospace" }
func (t Typeface) Name() string   { return `"` + string(t) + `"` }
func (f ImportFont) Name() string { return `"` + f.Family + `"` }
func (f FontWith) Name() string   { return `"` + f.Family + `"` }

func (Serif) isFont()      {}
func (SansSerif) isFont()  {}
func (Monospace) isFont()  {}
func (Typeface) isFont()   {}
func (ImportFont) isFont() {}
func (FontWith) isFont()   {}

// FamilyClassName folds a typeface stack into a class name. Fragments
// concatenate directly onto the prefix; named fonts are slugged so the
// result stays a valid class.
func FamilyClassName(prefix string, fonts []Font) string {
	name := prefix
	for _, f := range fonts {
		switch f := f.(type) {
		case Serif:
			name += "serif"
		case SansSerif:
			name += "sans-serif"
		case Monospace:
			name += "monospace"
		case Typeface:
			name += slug.Make(string(f))
		case ImportFont:
			name += slug.Make(f.Family)
		case FontWith:
			name += slug.Make(f.Family)
		}
	}
	return name
}

// fontFeatures renders the font-feature-settings value for a stack: the
// variant lists of every FontWith entry, flattened and comma separated.
func fontFeatures(fonts []Font) string {
	var features []string
	for _, f := range fonts {
		fw, ok := f.(FontWith)
		if !ok {
			continue
		}
		rendered := make([]string, len(fw.Variants))
		for i, v := range fw.Variants {
			rendered[i] = v.render()
		}
		features = append(features, strings.Join(rendered, ", "))
	}
	return strings.Join(features, ", ")
}

func hasSmallCaps(fonts []Font) bool {
	for _, f := range fonts {
		fw, ok := f.(FontWith)
		if !ok {
			continue
		}
		for _, v := range fw.Variants {
			if v.isSmallCaps() {
				return true
			}
		}
	}
	return false
}

// Variant toggles one OpenType feature.
type Variant interface {
	render() string
	isSmallCaps() bool
	isVariant()
}

// VariantActive enables a feature.
type VariantActive string

// VariantOff disables a feature.
type VariantOff string

// VariantIndexed selects a numbered alternate of a feature.
type VariantIndexed struct {
	Feature string
	Index   int
}

func (v VariantActive) render() string { return `"` + string(v) + `"` }
func (v VariantOff) render() string    { return `"` + string(v) + `" 0` }
func (v VariantIndexed) render() string {
	return `"` + v.Feature + `" ` + strconv.Itoa(v.Index)
}

func (v VariantActive) isSmallCaps() bool { return v == "smcp" }
func (VariantOff) isSmallCaps() bool      { return false }
func (v VariantIndexed) isSmallCaps() bool {
	return v.Feature == "smcp" && v.Index == 1
}

func (VariantActive) isVariant()  {}
func (VariantOff) isVariant()     {}
func (VariantIndexed) isVariant() {}

// Adjustment holds measured font metrics on a 0-1 em scale, used to derive
// sizing rules that align the rendered box to the capital height or the
// full glyph extent.
type Adjustment struct {
	Capital   float64
	Lowercase float64
	Baseline  float64
	Descender float64
}

type adjustmentSizes struct {
	vertical float64
	height   float64
	size     float64
}

func newAdjustmentSizes(size, height, vertical float64) adjustmentSizes {
	return adjustmentSizes{vertical: vertical, height: height / size, size: size}
}

// rule converts the sizes into the parent/text property pairs applied by
// the cap/full-size helper classes.
func (a adjustmentSizes) rule() adjustmentRule {
	return adjustmentRule{
		parent: []Property{{"display", "block"}},
		text: []Property{
			{"display", "inline-block"},
			{"line-height", FormatFloat(a.height)},
			{"vertical-align", FormatFloat(a.vertical) + "em"},
			{"font-size", FormatFloat(a.size) + "em"},
		},
	}
}

type adjustmentRule struct {
	parent []Property
	text   []Property
}

type adjustmentRules struct {
	full    adjustmentRule
	capital adjustmentRule
}

// sizeRules derives the full-height and capital-height sizing from the
// measured metrics. The ascender is the largest metric, the descender the
// smallest, and the working baseline the smallest metric above the
// descender.
func (a Adjustment) sizeRules() (full, capital adjustmentSizes) {
	lines := []float64{a.Capital, a.Baseline, a.Descender, a.Lowercase}

	asc, dsc := lines[0], lines[0]
	for _, v := range lines[1:] {
		if v > asc {
			asc = v
		}
		if v < dsc {
			dsc = v
		}
	}

	baseline := a.Baseline
	found := false
	for _, v := range lines {
		if v == dsc {
			continue
		}
		if !found || v < baseline {
			baseline = v
			found = true
		}
	}

	vertical := 1 - asc
	full = newAdjustmentSizes(1/(asc-dsc), asc-dsc, vertical)
	capital = newAdjustmentSizes(1/(asc-baseline), asc-baseline, vertical)
	return full, capital
}

// typefaceAdjustment returns the adjustment rules of the first font in the
// stack that declares metrics.
func typefaceAdjustment(fonts []Font) (adjustmentRules, bool) {
	for _, f := range fonts {
		fw, ok := f.(FontWith)
		if !ok || fw.Adjustment == nil {
			continue
		}
		full, capital := fw.Adjustment.sizeRules()
		return adjustmentRules{full: full.rule(), capital: capital.rule()}, true
	}
	return adjustmentRules{}, false
}
