package style_test

import (
	"testing"

	"weft/style"
)

func compose(components ...style.TransformComponent) style.Transformation {
	var t style.Transformation = style.Untransformed{}
	for _, c := range components {
		t = t.Compose(c)
	}
	return t
}

func TestComposeStaysTranslationForMoves(t *testing.T) {
	got := compose(style.MoveX(10), style.MoveY(-4), style.MoveZ(2))
	moved, ok := got.(style.Moved)
	if !ok {
		t.Fatalf("got %T, want Moved", got)
	}
	if moved.X != 10 || moved.Y != -4 || moved.Z != 2 {
		t.Errorf("got %+v, want {10 -4 2}", moved)
	}
}

func TestComposeAxesShadowIndependently(t *testing.T) {
	a := compose(style.MoveX(10), style.MoveY(5))
	b := compose(style.MoveY(5), style.MoveX(10))
	if a != b {
		t.Errorf("axis order changed the result: %+v vs %+v", a, b)
	}

	// a later component on the same axis wins
	c := compose(style.MoveX(1), style.MoveX(10), style.MoveY(5))
	if c != b {
		t.Errorf("same-axis shadowing failed: %+v vs %+v", c, b)
	}
}

func TestComposeMoveToReplacesTranslation(t *testing.T) {
	got := compose(style.MoveX(99), style.MoveTo(style.XYZ{X: 1, Y: 2, Z: 3}))
	if got != (style.Moved{X: 1, Y: 2, Z: 3}) {
		t.Errorf("got %+v, want {1 2 3}", got)
	}
}

func TestComposePromotionPreservesTranslation(t *testing.T) {
	got := compose(style.MoveX(10), style.Rotate{Axis: style.XYZ{Z: 1}, Angle: 1.5708})
	full, ok := got.(style.FullTransform)
	if !ok {
		t.Fatalf("got %T, want FullTransform", got)
	}
	if full.Translate != (style.XYZ{X: 10}) {
		t.Errorf("translation lost on promotion: %+v", full.Translate)
	}
	if full.Scale != (style.XYZ{X: 1, Y: 1, Z: 1}) {
		t.Errorf("promotion should install unit scale, got %+v", full.Scale)
	}
	if full.Rotate != (style.XYZ{Z: 1}) || full.Angle != 1.5708 {
		t.Errorf("rotation not recorded: %+v angle %v", full.Rotate, full.Angle)
	}
}

func TestComposeScalePromotesWithDefaultAxis(t *testing.T) {
	got := compose(style.Scale{X: 2, Y: 2, Z: 1})
	full, ok := got.(style.FullTransform)
	if !ok {
		t.Fatalf("got %T, want FullTransform", got)
	}
	if full.Rotate != (style.XYZ{Z: 1}) || full.Angle != 0 {
		t.Errorf("scale promotion should default to z-axis rotation of 0, got %+v angle %v", full.Rotate, full.Angle)
	}
}

func TestComposedRender(t *testing.T) {
	full := compose(style.MoveX(10), style.Rotate{Axis: style.XYZ{Z: 1}, Angle: 1.5708})

	val, ok := full.Value()
	if !ok {
		t.Fatal("composed transform should render a value")
	}
	want := "translate3d(10px, 0px, 0px) scale3d(1, 1, 1) rotate3d(0, 0, 1, 1.5708rad)"
	if val != want {
		t.Errorf("value:\n got %q\nwant %q", val, want)
	}

	cls, ok := full.Class()
	if !ok {
		t.Fatal("composed transform should have a class")
	}
	wantClass := "tfrm-2550-0-0-255-255-255-0-0-255-401"
	if cls != wantClass {
		t.Errorf("class:\n got %q\nwant %q", cls, wantClass)
	}
}

func TestIdentityRendersNothing(t *testing.T) {
	var id style.Transformation = style.Untransformed{}
	if _, ok := id.Class(); ok {
		t.Error("identity should have no class")
	}
	if _, ok := id.Value(); ok {
		t.Error("identity should have no value")
	}
}

func TestMovedRender(t *testing.T) {
	m := style.Moved{X: 1, Y: 0, Z: 0}
	cls, _ := m.Class()
	if cls != "mv-255-0-0" {
		t.Errorf("class: got %q, want %q", cls, "mv-255-0-0")
	}
	val, _ := m.Value()
	if val != "translate3d(1px, 0px, 0px)" {
		t.Errorf("value: got %q", val)
	}
}
