package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/driftpeak/terracarve/internal/terrain"
)

func TestIntersectPlaneY(t *testing.T) {
	r := Ray{
		Origin:    mgl64.Vec3{0, 100, 0},
		Direction: mgl64.Vec3{0, -1, 0},
	}
	p, ok := r.IntersectPlaneY(0)
	if !ok {
		t.Fatal("expected a hit")
	}
	if p.Y() != 0 || p.X() != 0 || p.Z() != 0 {
		t.Errorf("hit = %v, want origin at plane", p)
	}
}

func TestIntersectPlaneYParallel(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 100, 0}, Direction: mgl64.Vec3{1, 0, 0}}
	if _, ok := r.IntersectPlaneY(0); ok {
		t.Error("parallel ray should miss")
	}
}

func TestIntersectPlaneYBehind(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 100, 0}, Direction: mgl64.Vec3{0, 1, 0}}
	if _, ok := r.IntersectPlaneY(0); ok {
		t.Error("plane behind the ray should miss")
	}
}

func TestIntersectHeightfieldStraightDown(t *testing.T) {
	g := terrain.NewFlat(120)
	r := Ray{
		Origin:    mgl64.Vec3{500, 5000, -300},
		Direction: mgl64.Vec3{0, -1, 0},
	}
	p, ok := r.IntersectHeightfield(g)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(p.Y()-120) > 0.01 {
		t.Errorf("hit height = %v, want 120", p.Y())
	}
	if math.Abs(p.X()-500) > 1e-9 || math.Abs(p.Z()+300) > 1e-9 {
		t.Errorf("hit planar position moved: %v", p)
	}
}

func TestIntersectHeightfieldAngled(t *testing.T) {
	g := terrain.NewFlat(0)
	dir := mgl64.Vec3{1, -1, 0}.Normalize()
	r := Ray{Origin: mgl64.Vec3{-2000, 1000, 0}, Direction: dir}

	p, ok := r.IntersectHeightfield(g)
	if !ok {
		t.Fatal("expected a hit")
	}
	// Descends 1000 over 1000 of X travel.
	if math.Abs(p.X()-(-1000)) > 1 {
		t.Errorf("hit X = %v, want about -1000", p.X())
	}
	if math.Abs(p.Y()) > 0.01 {
		t.Errorf("hit Y = %v, want about 0", p.Y())
	}
}

func TestIntersectHeightfieldMiss(t *testing.T) {
	g := terrain.NewFlat(0)
	r := Ray{Origin: mgl64.Vec3{0, 1000, 0}, Direction: mgl64.Vec3{0, 1, 0}}
	if _, ok := r.IntersectHeightfield(g); ok {
		t.Error("upward ray should miss the terrain")
	}
}

func TestScreenToRayCenterLooksForward(t *testing.T) {
	proj := mgl64.Perspective(mgl64.DegToRad(60), 16.0/9.0, 1, 50000)
	view := mgl64.LookAtV(
		mgl64.Vec3{0, 1000, 2000},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	inv := proj.Mul4(view).Inv()

	r := ScreenToRay(960, 540, 1920, 1080, inv)
	if math.Abs(r.Direction.Len()-1) > 1e-9 {
		t.Errorf("direction not normalized: %v", r.Direction.Len())
	}
	// Center-screen ray points from the eye toward the look target.
	want := mgl64.Vec3{0, -1000, -2000}.Normalize()
	if r.Direction.Sub(want).Len() > 1e-6 {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
}
