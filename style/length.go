package style

import "strconv"

// Length is a sizing constraint. The closed set of shapes is Px, Content,
// Fill and the bounding wrappers Min and Max; bounds nest finitely and
// bottom out in one of the terminal shapes.
type Length interface {
	// ClassName returns the fragment identifying this length inside a
	// derived class name.
	ClassName() string
	isLength()
}

// Px is an exact pixel size.
type Px int

// Content sizes to the contained content.
type Content struct{}

// Fill grows to share leftover space, weighted by the portion value.
type Fill int

// Min bounds the wrapped length from below.
type Min struct {
	Size   int
	Length Length
}

// Max bounds the wrapped length from above.
type Max struct {
	Size   int
	Length Length
}

func (p Px) ClassName() string { return strconv.Itoa(int(p)) + "px" }

func (Content) ClassName() string { return "auto" }

func (f Fill) ClassName() string { return strconv.Itoa(int(f)) + "fr" }

func (m Min) ClassName() string { return "min" + strconv.Itoa(m.Size) + m.Length.ClassName() }

func (m Max) ClassName() string { return "max" + strconv.Itoa(m.Size) + m.Length.ClassName() }

func (Px) isLength()      {}
func (Content) isLength() {}
func (Fill) isLength()    {}
func (Min) isLength()     {}
func (Max) isLength()     {}

// gridTrack renders a length as a CSS grid track size.
func gridTrack(l Length) string {
	return gridTrackBounded(nil, nil, l)
}

func gridTrackBounded(min, max *int, l Length) string {
	switch l := l.(type) {
	case Px:
		return strconv.Itoa(int(l)) + "px"
	case Content:
		switch {
		case min == nil && max == nil:
			return "max-content"
		case min != nil && max == nil:
			return "minmax(" + strconv.Itoa(*min) + "px, max-content)"
		case min == nil && max != nil:
			return "minmax(max-content, " + strconv.Itoa(*max) + "px)"
		default:
			return "minmax(" + strconv.Itoa(*min) + "px, " + strconv.Itoa(*max) + "px)"
		}
	case Fill:
		switch {
		case min == nil && max == nil:
			return strconv.Itoa(int(l)) + "fr"
		case min != nil && max == nil:
			return "minmax(" + strconv.Itoa(*min) + "px, " + strconv.Itoa(int(l)) + "frfr)"
		case min == nil && max != nil:
			return "minmax(max-content, " + strconv.Itoa(*max) + "px)"
		default:
			return "minmax(" + strconv.Itoa(*min) + "px, " + strconv.Itoa(*max) + "px)"
		}
	case Min:
		return gridTrackBounded(&l.Size, max, l.Length)
	case Max:
		return gridTrackBounded(min, &l.Size, l.Length)
	default:
		return ""
	}
}
