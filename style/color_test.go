package style_test

import (
	"testing"

	"weft/style"
)

func TestFloatClass(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1, "255"},
		{0.5, "128"},
		{155.0 / 255.0, "155"},
	}
	for _, tt := range tests {
		if got := style.FloatClass(tt.v); got != tt.want {
			t.Errorf("FloatClass(%v): got %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, "0.5"},
		{1.5708, "1.5708"},
		{1.57079632679, "1.5708"},
		{-0.0000001, "0"},
		{2.10000, "2.1"},
	}
	for _, tt := range tests {
		if got := style.FormatFloat(tt.v); got != tt.want {
			t.Errorf("FormatFloat(%v): got %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestColorFormat(t *testing.T) {
	c := style.Color{R: 1, G: 0, B: 0, A: 0.5}
	if got := c.Format(); got != "rgba(255,0,0,0.5)" {
		t.Errorf("Format: got %q", got)
	}
	if got := c.FormatClass(); got != "255-0-0-128" {
		t.Errorf("FormatClass: got %q", got)
	}
}

func TestShadowFormats(t *testing.T) {
	s := style.Shadow{
		Color:   style.Color{R: 0, G: 0, B: 0, A: 1},
		OffsetX: 1,
		OffsetY: 2,
		Blur:    3,
		Size:    4,
	}
	if got := s.FormatBoxShadow(false); got != "1px 2px 3px 4px rgba(0,0,0,1)" {
		t.Errorf("box shadow: got %q", got)
	}
	if got := s.FormatBoxShadow(true); got != "inset 1px 2px 3px 4px rgba(0,0,0,1)" {
		t.Errorf("inset box shadow: got %q", got)
	}
	if got := s.FormatDropShadow(); got != "1px 2px 3px rgba(0,0,0,1)" {
		t.Errorf("drop shadow: got %q", got)
	}
	if got := s.BoxShadowClass(false); got != "box-255px510px765px1020px0-0-0-255" {
		t.Errorf("box shadow class: got %q", got)
	}
	if got := s.BoxShadowClass(true); got != "box-inset255px510px765px1020px0-0-0-255" {
		t.Errorf("inset box shadow class: got %q", got)
	}
	if got := s.TextShadowClass(); got != "txt255px510px765px0-0-0-255" {
		t.Errorf("text shadow class: got %q", got)
	}
}
