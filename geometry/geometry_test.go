package geometry

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 60, Y: 45}, true},
		{"top-left corner", Point{X: 10, Y: 20}, true},
		{"bottom-right edge", Point{X: 110, Y: 70}, true},
		{"left of rect", Point{X: 9, Y: 45}, false},
		{"below rect", Point{X: 60, Y: 71}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"contained", Rect{X: 25, Y: 25, Width: 10, Height: 10}, true},
		{"disjoint right", Rect{X: 150, Y: 0, Width: 50, Height: 50}, false},
		{"touching edges", Rect{X: 100, Y: 0, Width: 50, Height: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects not symmetric for %v", tt.b)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	e := r.Expand(5)
	if e.X != 5 || e.Y != 5 || e.Width != 30 || e.Height != 30 {
		t.Errorf("Expand(5) = %+v", e)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 30, Width: 10, Height: 10}
	u := a.Union(b)
	if u.X != 0 || u.Y != 0 || u.Right() != 30 || u.Bottom() != 40 {
		t.Errorf("Union = %+v", u)
	}
}

func TestDirectionVector(t *testing.T) {
	for _, d := range []Direction{East, South, West, North} {
		v := d.Vector()
		if math.Abs(v.X)+math.Abs(v.Y) != 1 {
			t.Errorf("%v vector %v is not a unit step", d, v)
		}
	}
	if East.Vector().X != 1 || South.Vector().Y != 1 {
		t.Error("East/South vectors point the wrong way")
	}
}

func TestSegmentIntersection(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		p, ok := SegmentIntersection(
			Point{X: 0, Y: 0}, Point{X: 10, Y: 10},
			Point{X: 0, Y: 10}, Point{X: 10, Y: 0},
		)
		if !ok {
			t.Fatal("expected intersection")
		}
		if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y-5) > 1e-9 {
			t.Errorf("intersection = %v, want (5,5)", p)
		}
	})

	t.Run("parallel", func(t *testing.T) {
		if _, ok := SegmentIntersection(
			Point{X: 0, Y: 0}, Point{X: 10, Y: 0},
			Point{X: 0, Y: 5}, Point{X: 10, Y: 5},
		); ok {
			t.Error("parallel segments should not intersect")
		}
	})

	t.Run("disjoint", func(t *testing.T) {
		if _, ok := SegmentIntersection(
			Point{X: 0, Y: 0}, Point{X: 1, Y: 1},
			Point{X: 5, Y: 0}, Point{X: 6, Y: 1},
		); ok {
			t.Error("disjoint segments should not intersect")
		}
	})
}
