package doc

import (
	"reflect"
	"testing"

	"weft/style"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want style.Length
	}{
		{"px:20", style.Px(20)},
		{"px:0", style.Px(0)},
		{"fill", style.Fill(1)},
		{"fill:3", style.Fill(3)},
		{"content", style.Content{}},
		{"min:40,fill", style.Min{Size: 40, Length: style.Fill(1)}},
		{"max:750,content", style.Max{Size: 750, Length: style.Content{}}},
		{"max:700,min:300,fill", style.Max{Size: 700, Length: style.Min{Size: 300, Length: style.Fill(1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLength(tt.in)
			if err != nil {
				t.Fatalf("parseLength(%q) failed: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLength(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{"", "20px", "px:", "px:x", "px:-3", "fill:0", "fill:x", "min:40", "min:x,fill", "max:700,", "grow"} {
		if _, err := parseLength(in); err == nil {
			t.Errorf("parseLength(%q) did not fail", in)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want style.Color
	}{
		{"#fff", style.Color{R: 1, G: 1, B: 1, A: 1}},
		{"#000", style.Color{A: 1}},
		{"#1a66ff", style.Color{R: 0x1a / 255.0, G: 0x66 / 255.0, B: 1, A: 1}},
		{"#00000080", style.Color{A: 0x80 / 255.0}},
		{"255,0,0", style.Color{R: 1, A: 1}},
		{"12, 24, 48", style.Color{R: 12.0 / 255, G: 24.0 / 255, B: 48.0 / 255, A: 1}},
		{"0,0,0,0.5", style.Color{A: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColor(tt.in)
			if err != nil {
				t.Fatalf("parseColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#ff", "#ffff", "#zzzzzz", "red", "300,0,0", "1,2", "1,2,3,4,5", "0,0,0,1.5", "-1,0,0"} {
		if _, err := parseColor(in); err == nil {
			t.Errorf("parseColor(%q) did not fail", in)
		}
	}
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("10", 1, 2, 4)
	if err != nil || !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("parseInts(10) = %v, %v", got, err)
	}
	got, err = parseInts("1, 2", 1, 2, 4)
	if err != nil || !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("parseInts(1, 2) = %v, %v", got, err)
	}
	got, err = parseInts("1,2,3,4", 1, 2, 4)
	if err != nil || !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("parseInts(1,2,3,4) = %v, %v", got, err)
	}

	for _, in := range []string{"1,2,3", "", "x", "-1", "1,2,3,4,5"} {
		if _, err := parseInts(in, 1, 2, 4); err == nil {
			t.Errorf("parseInts(%q) did not fail", in)
		}
	}
}

func TestParseFloatPair(t *testing.T) {
	x, y, err := parseFloatPair("10, -4.5")
	if err != nil {
		t.Fatalf("parseFloatPair failed: %v", err)
	}
	if x != 10 || y != -4.5 {
		t.Errorf("got %v, %v, want 10, -4.5", x, y)
	}
	for _, in := range []string{"10", "", "a,b", "1,"} {
		if _, _, err := parseFloatPair(in); err == nil {
			t.Errorf("parseFloatPair(%q) did not fail", in)
		}
	}
}

func TestParseFonts(t *testing.T) {
	got := parseFonts([]string{"serif", "sans-serif", "monospace", "Open Sans"})
	want := []style.Font{style.Serif{}, style.SansSerif{}, style.Monospace{}, style.Typeface("Open Sans")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseFonts = %#v, want %#v", got, want)
	}
}
