package style

// HoverSetting is the global hover policy. NoHover suppresses hover rules
// entirely, ForceHover renders them without the :hover gate so they always
// apply (touch devices with no real hover).
type HoverSetting int

const (
	AllowHover HoverSetting = iota
	NoHover
	ForceHover
)

// RenderMode selects how stylesheets attach to the rendered tree.
type RenderMode int

const (
	// Layout embeds the static sheet and dynamic rules as <style> text.
	Layout RenderMode = iota
	// NoStaticStyleSheet embeds only the dynamic rules; the caller is
	// expected to serve the static sheet once out of band.
	NoStaticStyleSheet
	// WithVirtualCSS hands rules to the host as element properties
	// instead of CSS text.
	WithVirtualCSS
)

// FocusStyle overrides the decoration applied to focused focusable
// elements. Nil fields render nothing for that property.
type FocusStyle struct {
	BorderColor     *Color
	BackgroundColor *Color
	Shadow          *Shadow
}

// DefaultFocus is the stock focus ring: a 3px light blue glow.
func DefaultFocus() FocusStyle {
	return FocusStyle{
		Shadow: &Shadow{
			Color: Color{R: 155.0 / 255.0, G: 203.0 / 255.0, B: 1, A: 1},
			Size:  3,
		},
	}
}

// Rules renders the focus decoration as stylesheet rules. They are placed
// ahead of all dynamic rules and are exempt from deduplication.
func (f FocusStyle) Rules() []Style {
	props := func() []Property {
		var ps []Property
		if f.BorderColor != nil {
			ps = append(ps, Property{"border-color", f.BorderColor.Format()})
		}
		if f.BackgroundColor != nil {
			ps = append(ps, Property{"background-color", f.BackgroundColor.Format()})
		}
		if f.Shadow != nil {
			ps = append(ps, Property{"box-shadow", f.Shadow.FormatBoxShadow(false)})
		}
		return append(ps, Property{"outline", "none"})
	}
	return []Style{
		Rule{
			Selector: "." + ClassFocusedWithin + ":focus-within",
			Props:    props(),
		},
		Rule{
			Selector: ".s:focus .focusable, .s.focusable:focus, .ui-slide-bar:focus + .s.focusable-thumb",
			Props:    props(),
		},
	}
}

// Option is one root-level rendering option.
type Option interface {
	isOption()
}

// HoverOption sets the hover policy.
type HoverOption HoverSetting

// FocusStyleOption overrides the focus decoration.
type FocusStyleOption FocusStyle

// RenderModeOption selects the stylesheet emission mode.
type RenderModeOption RenderMode

func (HoverOption) isOption()      {}
func (FocusStyleOption) isOption() {}
func (RenderModeOption) isOption() {}

// OptionSet is the folded root configuration.
type OptionSet struct {
	Hover HoverSetting
	Focus FocusStyle
	Mode  RenderMode
}

// NewOptionSet folds options into a set. The first option supplied for a
// slot wins; untouched slots fall back to hover allowed, the default focus
// ring and plain layout.
func NewOptionSet(opts ...Option) OptionSet {
	set := OptionSet{Hover: AllowHover, Focus: DefaultFocus(), Mode: Layout}
	var haveHover, haveFocus, haveMode bool
	for _, opt := range opts {
		switch o := opt.(type) {
		case HoverOption:
			if !haveHover {
				set.Hover = HoverSetting(o)
				haveHover = true
			}
		case FocusStyleOption:
			if !haveFocus {
				set.Focus = FocusStyle(o)
				haveFocus = true
			}
		case RenderModeOption:
			if !haveMode {
				set.Mode = RenderMode(o)
				haveMode = true
			}
		}
	}
	return set
}
