package modifier

import (
	"math"
	"testing"
)

func seedCollection(s Shape) InstanceCollection {
	return newCollection(s, nil)
}

// Scenario: 100x100 shape at the origin, three copies offset by one full
// width each. Instances land at x = 0, 100, 200 with no scaling.
func TestLinearArray_FullWidthSteps(t *testing.T) {
	shape := NewShape("rect", 0, 0, 100, 100)
	mod := NewLinearArray(LinearArraySettings{Count: 3, OffsetX: 100, ScaleStep: 100})

	out := linearArray{}.Apply(seedCollection(shape), mod)

	if out.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", out.Len())
	}
	for i, in := range out.Instances {
		want := Pt(float64(i)*100, 0)
		if !in.Transform.Position().Approx(want, testEpsilon) {
			t.Errorf("instance %d position = %v, want %v", i, in.Transform.Position(), want)
		}
		if in.Transform.ScaleX != 1 || in.Transform.ScaleY != 1 {
			t.Errorf("instance %d scale = (%v, %v), want (1, 1)",
				i, in.Transform.ScaleX, in.Transform.ScaleY)
		}
		if in.Transform.Rotation != 0 {
			t.Errorf("instance %d rotation = %v, want 0", i, in.Transform.Rotation)
		}
	}
}

// Count 1 with no uniform rotation must reproduce the input unchanged.
func TestLinearArray_Identity(t *testing.T) {
	shape := NewShape("rect", 12, 34, 80, 60)
	shape.Rotation = 0.7
	in := seedCollection(shape)
	mod := NewLinearArray(LinearArraySettings{Count: 1, OffsetX: 100, OffsetY: 50, RotationStep: 45})

	out := linearArray{}.Apply(in, mod)

	if out.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", out.Len())
	}
	got := out.Instances[0].Transform
	want := in.Instances[0].Transform
	if !got.Position().Approx(want.Position(), testEpsilon) {
		t.Errorf("position = %v, want %v", got.Position(), want.Position())
	}
	if math.Abs(got.Rotation-want.Rotation) > testEpsilon {
		t.Errorf("rotation = %v, want %v", got.Rotation, want.Rotation)
	}
	if got.ScaleX != 1 || got.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", got.ScaleX, got.ScaleY)
	}
}

// Instance 0 must reproduce the source position exactly for any source
// rotation: the pivot compensation converts center-space math back to the
// top-left anchor without drift.
func TestLinearArray_RotatedSourceRoundTrip(t *testing.T) {
	angles := []float64{0, math.Pi / 2, math.Pi, 0.6435011087932844}
	for _, angle := range angles {
		shape := NewShape("rect", 40, -15, 100, 100)
		shape.Rotation = angle
		mod := NewLinearArray(LinearArraySettings{Count: 3, OffsetX: 100})

		out := linearArray{}.Apply(seedCollection(shape), mod)

		got := out.Instances[0].Transform.Position()
		if !got.Approx(shape.Position(), testEpsilon) {
			t.Errorf("angle %v: instance 0 position = %v, want %v", angle, got, shape.Position())
		}
	}
}

// Percentage offsets follow the source's local axes: with the source rotated
// 90 degrees, an x offset steps along canvas y.
func TestLinearArray_OffsetFollowsRotation(t *testing.T) {
	shape := NewShape("rect", 0, 0, 100, 100)
	shape.Rotation = math.Pi / 2
	mod := NewLinearArray(LinearArraySettings{Count: 2, OffsetX: 100})

	out := linearArray{}.Apply(seedCollection(shape), mod)

	c0 := out.Instances[0].VisualCenter()
	c1 := out.Instances[1].VisualCenter()
	if got, want := c1.Sub(c0), Pt(0, 100); !got.Approx(want, testEpsilon) {
		t.Errorf("step between centers = %v, want %v", got, want)
	}
}

func TestLinearArray_RotationIncrement(t *testing.T) {
	shape := NewShape("rect", 0, 0, 100, 100)
	mod := NewLinearArray(LinearArraySettings{Count: 3, RotationStep: 30, RotateAll: 10})

	out := linearArray{}.Apply(seedCollection(shape), mod)

	for i, in := range out.Instances {
		want := Radians(10 + float64(i)*30)
		if math.Abs(in.Transform.Rotation-want) > testEpsilon {
			t.Errorf("instance %d rotation = %v, want %v", i, in.Transform.Rotation, want)
		}
		// Rotation pivots on each instance's own center: centers stay put.
		wantCenter := Pt(50, 50)
		if !in.VisualCenter().Approx(wantCenter, testEpsilon) {
			t.Errorf("instance %d center = %v, want %v", i, in.VisualCenter(), wantCenter)
		}
	}
}

func TestLinearArray_ScaleInterpolation(t *testing.T) {
	shape := NewShape("rect", 0, 0, 100, 100)
	mod := NewLinearArray(LinearArraySettings{Count: 3, ScaleStep: 50})

	out := linearArray{}.Apply(seedCollection(shape), mod)

	wantScales := []float64{1, 0.75, 0.5}
	for i, in := range out.Instances {
		if math.Abs(in.Transform.ScaleX-wantScales[i]) > testEpsilon {
			t.Errorf("instance %d scaleX = %v, want %v", i, in.Transform.ScaleX, wantScales[i])
		}
		if math.Abs(in.Transform.ScaleY-wantScales[i]) > testEpsilon {
			t.Errorf("instance %d scaleY = %v, want %v", i, in.Transform.ScaleY, wantScales[i])
		}
	}
}

func TestLinearArray_ClampsDegenerateSettings(t *testing.T) {
	shape := NewShape("rect", 0, 0, 100, 100)
	mod := NewLinearArray(LinearArraySettings{Count: -5, ScaleStep: -20})

	out := linearArray{}.Apply(seedCollection(shape), mod)

	if out.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (count clamped)", out.Len())
	}
	if s := out.Instances[0].Transform.ScaleX; s <= 0 {
		t.Errorf("scaleX = %v, want positive (scale floored)", s)
	}
}

func TestLinearArray_Provenance(t *testing.T) {
	shape := NewShape("rect", 0, 0, 100, 100)
	mod := NewLinearArray(LinearArraySettings{Count: 2, OffsetX: 100})

	first := linearArray{}.Apply(seedCollection(shape), mod)
	second := linearArray{}.Apply(first, mod)

	if second.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", second.Len())
	}
	wantSources := []int{0, 0, 1, 1}
	wantArrayIdx := []int{0, 1, 0, 1}
	for i, in := range second.Instances {
		if in.Index != i {
			t.Errorf("instance %d Index = %d", i, in.Index)
		}
		if in.Prov.Source != wantSources[i] {
			t.Errorf("instance %d Source = %d, want %d", i, in.Prov.Source, wantSources[i])
		}
		if in.Prov.ArrayIndex != wantArrayIdx[i] {
			t.Errorf("instance %d ArrayIndex = %d, want %d", i, in.Prov.ArrayIndex, wantArrayIdx[i])
		}
	}
}
