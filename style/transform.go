package style

// XYZ is a translation vector, a scale triple or a rotation axis.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// TransformComponent is one authored transform step. Components only ever
// add to the accumulated Transformation, there is no removal.
type TransformComponent interface {
	isTransformComponent()
}

// MoveX translates along the x axis.
type MoveX float64

// MoveY translates along the y axis.
type MoveY float64

// MoveZ translates along the z axis.
type MoveZ float64

// MoveTo replaces the whole translation vector.
type MoveTo XYZ

// Rotate turns by Angle radians around Axis.
type Rotate struct {
	Axis  XYZ
	Angle float64
}

// Scale multiplies each axis.
type Scale XYZ

func (MoveX) isTransformComponent()  {}
func (MoveY) isTransformComponent()  {}
func (MoveZ) isTransformComponent()  {}
func (MoveTo) isTransformComponent() {}
func (Rotate) isTransformComponent() {}
func (Scale) isTransformComponent()  {}

// Transformation is the composed transform state. It starts at
// Untransformed, stays a pure translation while only move components
// arrive, and promotes to FullTransform on the first rotate or scale.
// Promotion preserves any accumulated translation; it never goes back.
type Transformation interface {
	// Compose folds one component into the state.
	Compose(component TransformComponent) Transformation
	// Class returns the class-name fragment; false for the identity.
	Class() (string, bool)
	// Value returns the CSS transform value; false for the identity.
	Value() (string, bool)
	isTransformation()
}

// Untransformed is the identity. It renders nothing.
type Untransformed struct{}

// Moved is a pure translation.
type Moved XYZ

// FullTransform is the general case: translation, per-axis scale and a
// rotation of Angle radians around Axis.
type FullTransform struct {
	Translate XYZ
	Scale     XYZ
	Rotate    XYZ
	Angle     float64
}

func (Untransformed) isTransformation() {}
func (Moved) isTransformation()         {}
func (FullTransform) isTransformation() {}

func (Untransformed) Compose(component TransformComponent) Transformation {
	switch c := component.(type) {
	case MoveX:
		return Moved{X: float64(c)}
	case MoveY:
		return Moved{Y: float64(c)}
	case MoveZ:
		return Moved{Z: float64(c)}
	case MoveTo:
		return Moved(c)
	case Rotate:
		return FullTransform{Scale: XYZ{1, 1, 1}, Rotate: c.Axis, Angle: c.Angle}
	case Scale:
		return FullTransform{Scale: XYZ(c), Rotate: XYZ{0, 0, 1}}
	}
	return Untransformed{}
}

func (m Moved) Compose(component TransformComponent) Transformation {
	switch c := component.(type) {
	case MoveX:
		m.X = float64(c)
		return m
	case MoveY:
		m.Y = float64(c)
		return m
	case MoveZ:
		m.Z = float64(c)
		return m
	case MoveTo:
		return Moved(c)
	case Rotate:
		return FullTransform{Translate: XYZ(m), Scale: XYZ{1, 1, 1}, Rotate: c.Axis, Angle: c.Angle}
	case Scale:
		return FullTransform{Translate: XYZ(m), Scale: XYZ(c), Rotate: XYZ{0, 0, 1}}
	}
	return m
}

func (f FullTransform) Compose(component TransformComponent) Transformation {
	switch c := component.(type) {
	case MoveX:
		f.Translate.X = float64(c)
		return f
	case MoveY:
		f.Translate.Y = float64(c)
		return f
	case MoveZ:
		f.Translate.Z = float64(c)
		return f
	case MoveTo:
		f.Translate = XYZ(c)
		return f
	case Rotate:
		f.Rotate = c.Axis
		f.Angle = c.Angle
		return f
	case Scale:
		f.Scale = XYZ(c)
		return f
	}
	return f
}

func (Untransformed) Class() (string, bool) { return "", false }

func (m Moved) Class() (string, bool) {
	return "mv-" + FloatClass(m.X) + "-" + FloatClass(m.Y) + "-" + FloatClass(m.Z), true
}

func (f FullTransform) Class() (string, bool) {
	return "tfrm-" +
		FloatClass(f.Translate.X) + "-" + FloatClass(f.Translate.Y) + "-" + FloatClass(f.Translate.Z) + "-" +
		FloatClass(f.Scale.X) + "-" + FloatClass(f.Scale.Y) + "-" + FloatClass(f.Scale.Z) + "-" +
		FloatClass(f.Rotate.X) + "-" + FloatClass(f.Rotate.Y) + "-" + FloatClass(f.Rotate.Z) + "-" +
		FloatClass(f.Angle), true
}

func (Untransformed) Value() (string, bool) { return "", false }

func (m Moved) Value() (string, bool) { return translate3d(XYZ(m)), true }

func (f FullTransform) Value() (string, bool) {
	return translate3d(f.Translate) +
		" scale3d(" + FormatFloat(f.Scale.X) + ", " + FormatFloat(f.Scale.Y) + ", " + FormatFloat(f.Scale.Z) + ")" +
		" rotate3d(" + FormatFloat(f.Rotate.X) + ", " + FormatFloat(f.Rotate.Y) + ", " + FormatFloat(f.Rotate.Z) +
		", " + FormatFloat(f.Angle) + "rad)", true
}

func translate3d(v XYZ) string {
	return "translate3d(" + FormatFloat(v.X) + "px, " + FormatFloat(v.Y) + "px, " + FormatFloat(v.Z) + "px)"
}
