package doc

import (
	"fmt"
	"strconv"
	"strings"

	"weft/style"
)

// parseLength parses the length forms accepted by documents: "px:N",
// "fill", "fill:K", "content", "min:N,<length>" and "max:N,<length>".
func parseLength(s string) (style.Length, error) {
	switch {
	case s == "fill":
		return style.Fill(1), nil
	case s == "content":
		return style.Content{}, nil
	}
	kind, arg, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("malformed length %q", s)
	}
	switch kind {
	case "px":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("malformed length %q", s)
		}
		return style.Px(n), nil
	case "fill":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("malformed length %q", s)
		}
		return style.Fill(n), nil
	case "min", "max":
		bound, rest, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("malformed length %q", s)
		}
		n, err := strconv.Atoi(bound)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("malformed length %q", s)
		}
		inner, err := parseLength(rest)
		if err != nil {
			return nil, fmt.Errorf("malformed length %q", s)
		}
		if kind == "min" {
			return style.Min{Size: n, Length: inner}, nil
		}
		return style.Max{Size: n, Length: inner}, nil
	}
	return nil, fmt.Errorf("malformed length %q", s)
}

// parseColor parses "#rgb", "#rrggbb", "#rrggbbaa" and "r,g,b[,a]" forms.
// Channels are 0-255, alpha is 0-1.
func parseColor(s string) (style.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(s, hex)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return style.Color{}, fmt.Errorf("malformed color %q", s)
	}
	var ch [3]float64
	for i := range 3 {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return style.Color{}, fmt.Errorf("malformed color %q", s)
		}
		ch[i] = float64(n) / 255
	}
	a := 1.0
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return style.Color{}, fmt.Errorf("malformed color %q", s)
		}
		a = v
	}
	return style.Color{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHexColor(s, hex string) (style.Color, error) {
	channel := func(sub string) (float64, error) {
		n, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("malformed color %q", s)
		}
		return float64(n) / 255, nil
	}

	var pieces [4]string
	switch len(hex) {
	case 3:
		pieces = [4]string{hex[0:1] + hex[0:1], hex[1:2] + hex[1:2], hex[2:3] + hex[2:3], "ff"}
	case 6:
		pieces = [4]string{hex[0:2], hex[2:4], hex[4:6], "ff"}
	case 8:
		pieces = [4]string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
	default:
		return style.Color{}, fmt.Errorf("malformed color %q", s)
	}

	var c style.Color
	for i, dst := range []*float64{&c.R, &c.G, &c.B, &c.A} {
		v, err := channel(pieces[i])
		if err != nil {
			return style.Color{}, err
		}
		*dst = v
	}
	return c, nil
}

// parseInts splits a comma list of non-negative integers and checks the
// count against the allowed arities.
func parseInts(s string, arities ...int) ([]int, error) {
	parts := strings.Split(s, ",")
	ok := false
	for _, n := range arities {
		if len(parts) == n {
			ok = true
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("malformed value %q", s)
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("malformed value %q", s)
		}
		out[i] = n
	}
	return out, nil
}

// parseFloatPair parses "x,y".
func parseFloatPair(s string) (float64, float64, error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("malformed pair %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed pair %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(second), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed pair %q", s)
	}
	return x, y, nil
}

// parseFonts maps a typeface stack to style fonts. The generic family
// names are recognized, anything else is a named local font.
func parseFonts(names []string) []style.Font {
	fonts := make([]style.Font, 0, len(names))
	for _, name := range names {
		switch name {
		case "serif":
			fonts = append(fonts, style.Serif{})
		case "sans-serif":
			fonts = append(fonts, style.SansSerif{})
		case "monospace":
			fonts = append(fonts, style.Monospace{})
		default:
			fonts = append(fonts, style.Typeface(name))
		}
	}
	return fonts
}

func (s *ShadowSpec) toShadow() (style.Shadow, error) {
	shadow := style.Shadow{
		OffsetX: s.OffsetX,
		OffsetY: s.OffsetY,
		Blur:    s.Blur,
		Size:    s.Size,
	}
	if s.Color != "" {
		c, err := parseColor(s.Color)
		if err != nil {
			return style.Shadow{}, err
		}
		shadow.Color = c
	}
	return shadow, nil
}
