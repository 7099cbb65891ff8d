// Package flags tracks which semantic style slots have been resolved while
// an element's attribute list is processed. Each slot (width, padding, one
// transform axis, a pseudo state, ...) owns a single bit in a two-word
// Field, so precedence between conflicting attributes reduces to a bit test.
package flags

// Flag identifies one semantic style slot by its fixed bit index. Indices
// 0-31 live in the first word of a Field, 32-63 in the second.
type Flag uint8

// word reports which Field word the flag lives in and its mask within it.
func (f Flag) word() (second bool, mask uint32) {
	if f > 31 {
		return true, 1 << (uint32(f) - 32)
	}
	return false, 1 << uint32(f)
}

// Field is the set of flags already applied to the current element. It is
// a plain value: Add and Merge return updated copies and never alias. A
// Field is transient - it lives for a single gathering pass and is never
// persisted beyond the Gathered record it ends up in.
type Field struct {
	first  uint32
	second uint32
}

// None returns the empty field.
func None() Field {
	return Field{}
}

// Add returns the field with the flag's bit set. Adding a present flag is
// a no-op.
func (f Field) Add(flag Flag) Field {
	if second, mask := flag.word(); second {
		f.second |= mask
	} else {
		f.first |= mask
	}
	return f
}

// Present reports whether the flag has been applied.
func (f Field) Present(flag Flag) bool {
	second, mask := flag.word()
	if second {
		return f.second&mask != 0
	}
	return f.first&mask != 0
}

// Merge returns the union of both fields. Used when a single attribute
// contributes several slots at once, for example a bounded Length setting
// both the plain width bit and the width-between bit.
func (f Field) Merge(other Field) Field {
	f.first |= other.first
	f.second |= other.second
	return f
}

// The slot registry. Indices are stable and define the Field bit layout;
// gaps are slots retired upstream and intentionally left unassigned.
const (
	Transparency          Flag = 1
	Padding               Flag = 2
	Spacing               Flag = 3
	FontSize              Flag = 4
	FontFamily            Flag = 5
	Width                 Flag = 6
	Height                Flag = 7
	BgColor               Flag = 8
	BgImage               Flag = 9
	BgGradient            Flag = 10
	BorderStyle           Flag = 11
	FontAlignment         Flag = 12
	FontWeight            Flag = 13
	FontColor             Flag = 14
	WordSpacing           Flag = 15
	LetterSpacing         Flag = 16
	BorderRound           Flag = 17
	TxtShadows            Flag = 18
	Shadows               Flag = 19
	Overflow              Flag = 20
	Cursor                Flag = 21
	Scale                 Flag = 23
	Rotate                Flag = 24
	MoveX                 Flag = 25
	MoveY                 Flag = 26
	BorderWidth           Flag = 27
	BorderColor           Flag = 28
	AlignY                Flag = 29
	AlignX                Flag = 30
	Focus                 Flag = 31
	Active                Flag = 32
	Hover                 Flag = 33
	GridTemplate          Flag = 34
	GridPosition          Flag = 35
	HeightContent         Flag = 36
	HeightFill            Flag = 37
	WidthContent          Flag = 38
	WidthFill             Flag = 39
	AlignRight            Flag = 40
	AlignBottom           Flag = 41
	CenterX               Flag = 42
	CenterY               Flag = 43
	WidthBetween          Flag = 44
	HeightBetween         Flag = 45
	Behind                Flag = 46
	HeightTextAreaContent Flag = 47
	FontVariant           Flag = 48
)
