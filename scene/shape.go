package scene

import (
	"math"

	"notebox/geometry"
)

// ShapeKind selects the visual variant of a node.
type ShapeKind string

// Shape kinds. The layout engine only ever sees bounding rectangles; kinds
// matter for connection endpoints and export.
const (
	ShapeBox     ShapeKind = "box"
	ShapeCircle  ShapeKind = "circle"
	ShapeDiamond ShapeKind = "diamond"
	ShapeHexagon ShapeKind = "hexagon"
)

// Shape is the capability interface a node variant implements: its bounding
// rectangle and where a line from inside the shape crosses its edge.
type Shape interface {
	// BoundingRect returns the axis-aligned bounds for the given node rect.
	BoundingRect(r geometry.Rect) geometry.Rect

	// EdgeIntersection returns the point where the segment from-to crosses
	// the shape's outline, for a shape occupying r. If the segment never
	// crosses the outline the shape's center is returned.
	EdgeIntersection(r geometry.Rect, from, to geometry.Point) geometry.Point
}

// ShapeFor returns the Shape implementation for a kind. Unknown kinds fall
// back to the box shape.
func ShapeFor(kind ShapeKind) Shape {
	switch kind {
	case ShapeCircle:
		return circleShape{}
	case ShapeDiamond:
		return diamondShape{}
	case ShapeHexagon:
		return hexagonShape{}
	default:
		return boxShape{}
	}
}

type boxShape struct{}

func (boxShape) BoundingRect(r geometry.Rect) geometry.Rect { return r }

func (boxShape) EdgeIntersection(r geometry.Rect, from, to geometry.Point) geometry.Point {
	corners := []geometry.Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
	return outlineIntersection(corners, r, from, to)
}

type circleShape struct{}

func (circleShape) BoundingRect(r geometry.Rect) geometry.Rect { return r }

// EdgeIntersection treats the shape as the ellipse inscribed in r.
func (circleShape) EdgeIntersection(r geometry.Rect, from, to geometry.Point) geometry.Point {
	c := r.Center()
	dx := to.X - c.X
	dy := to.Y - c.Y
	rx := r.Width / 2
	ry := r.Height / 2
	if rx <= 0 || ry <= 0 {
		return c
	}
	d := math.Sqrt((dx/rx)*(dx/rx) + (dy/ry)*(dy/ry))
	if d < 1e-9 {
		return c
	}
	return geometry.Point{X: c.X + dx/d, Y: c.Y + dy/d}
}

type diamondShape struct{}

func (diamondShape) BoundingRect(r geometry.Rect) geometry.Rect { return r }

func (diamondShape) EdgeIntersection(r geometry.Rect, from, to geometry.Point) geometry.Point {
	c := r.Center()
	corners := []geometry.Point{
		{X: c.X, Y: r.Y},
		{X: r.Right(), Y: c.Y},
		{X: c.X, Y: r.Bottom()},
		{X: r.X, Y: c.Y},
	}
	return outlineIntersection(corners, r, from, to)
}

type hexagonShape struct{}

func (hexagonShape) BoundingRect(r geometry.Rect) geometry.Rect { return r }

func (hexagonShape) EdgeIntersection(r geometry.Rect, from, to geometry.Point) geometry.Point {
	c := r.Center()
	inset := r.Width / 4
	corners := []geometry.Point{
		{X: r.X + inset, Y: r.Y},
		{X: r.Right() - inset, Y: r.Y},
		{X: r.Right(), Y: c.Y},
		{X: r.Right() - inset, Y: r.Bottom()},
		{X: r.X + inset, Y: r.Bottom()},
		{X: r.X, Y: c.Y},
	}
	return outlineIntersection(corners, r, from, to)
}

// outlineIntersection walks the closed polygon given by corners and returns
// the crossing of segment from-to nearest to from, falling back to the rect
// center when the segment stays inside.
func outlineIntersection(corners []geometry.Point, r geometry.Rect, from, to geometry.Point) geometry.Point {
	best := r.Center()
	bestDist := math.Inf(1)
	found := false
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		if p, ok := geometry.SegmentIntersection(from, to, a, b); ok {
			if d := geometry.Distance(from, p); d < bestDist {
				best = p
				bestDist = d
				found = true
			}
		}
	}
	if !found {
		return r.Center()
	}
	return best
}
