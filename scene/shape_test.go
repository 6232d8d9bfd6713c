package scene

import (
	"math"
	"testing"

	"notebox/geometry"
)

func TestShapeForFallsBackToBox(t *testing.T) {
	if _, ok := ShapeFor("banana").(boxShape); !ok {
		t.Error("unknown kind should use the box shape")
	}
}

func TestBoxEdgeIntersection(t *testing.T) {
	r := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	center := r.Center()

	// Horizontal exit hits the right edge.
	p := ShapeFor(ShapeBox).EdgeIntersection(r, center, geometry.Point{X: 300, Y: 50})
	if math.Abs(p.X-100) > 1e-9 || math.Abs(p.Y-50) > 1e-9 {
		t.Errorf("right exit = %v, want (100, 50)", p)
	}

	// Segment entirely inside falls back to the center.
	p = ShapeFor(ShapeBox).EdgeIntersection(r, center, geometry.Point{X: 60, Y: 60})
	if p != center {
		t.Errorf("interior segment = %v, want center fallback", p)
	}
}

func TestCircleEdgeIntersection(t *testing.T) {
	r := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	center := r.Center()

	p := ShapeFor(ShapeCircle).EdgeIntersection(r, center, geometry.Point{X: 300, Y: 50})
	if math.Abs(p.X-100) > 1e-6 || math.Abs(p.Y-50) > 1e-6 {
		t.Errorf("circle right exit = %v, want (100, 50)", p)
	}

	// Any exit point lies on the inscribed ellipse.
	p = ShapeFor(ShapeCircle).EdgeIntersection(r, center, geometry.Point{X: 200, Y: 200})
	dx := (p.X - center.X) / 50
	dy := (p.Y - center.Y) / 50
	if math.Abs(dx*dx+dy*dy-1) > 1e-6 {
		t.Errorf("point %v not on the ellipse", p)
	}
}

func TestDiamondEdgeIntersection(t *testing.T) {
	r := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	center := r.Center()

	// Exit toward the right vertex.
	p := ShapeFor(ShapeDiamond).EdgeIntersection(r, center, geometry.Point{X: 300, Y: 50})
	if math.Abs(p.X-100) > 1e-9 || math.Abs(p.Y-50) > 1e-9 {
		t.Errorf("diamond right exit = %v, want the (100, 50) vertex", p)
	}

	// Diagonal exit crosses the sloped edge inside the bounding box.
	p = ShapeFor(ShapeDiamond).EdgeIntersection(r, center, geometry.Point{X: 300, Y: 300})
	if p.X >= 100 || p.Y >= 100 {
		t.Errorf("diamond diagonal exit %v outside bounds", p)
	}
	if math.Abs((p.X-50)+(p.Y-50)-50) > 1e-6 {
		t.Errorf("point %v not on the diamond edge", p)
	}
}

func TestEndpoints(t *testing.T) {
	s := newTestScene()
	a := s.NewNode(0, 0)
	b := s.NewNode(400, 0)
	c, err := s.Connect(a, b, "")
	if err != nil {
		t.Fatal(err)
	}

	from, to, ok := s.Endpoints(c)
	if !ok {
		t.Fatal("endpoints should resolve")
	}
	if from.X != a.SceneRect().Right() {
		t.Errorf("from.X = %v, want right edge %v", from.X, a.SceneRect().Right())
	}
	if to.X != b.SceneRect().X {
		t.Errorf("to.X = %v, want left edge %v", to.X, b.SceneRect().X)
	}

	s.Delete(b)
	// The connection was removed with b; a dangling one reports !ok.
	dangling := &Connection{From: a.ID, To: "gone"}
	if _, _, ok := s.Endpoints(dangling); ok {
		t.Error("dangling connection should not resolve")
	}
}
