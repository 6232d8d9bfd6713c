// Package placement finds non-overlapping positions for nodes: a bounded
// grid scan for container insertion, a spiral search for free-canvas
// placement, and a push-away pass that clears overlaps after a resize.
package placement

import (
	"errors"
	"math"

	"notebox/config"
	"notebox/geometry"
	"notebox/scene"
)

// ErrNoPosition is returned when no clear position exists within the search
// bounds. The caller abandons the operation and leaves prior state intact.
var ErrNoPosition = errors.New("no non-overlapping position within search bounds")

// Solver performs overlap-free placement searches.
type Solver struct {
	tune config.Tuning
}

// New creates a solver with the given tuning.
func New(tune config.Tuning) *Solver {
	return &Solver{tune: tune}
}

// PlaceInContainer returns a container-local position for child where it
// does not overlap any sibling, scanning grid slots row-major below the
// text header. Sibling rectangles are expanded by the configured buffer so
// placed notes keep a gap. If no slot within the bounded number of rows is
// clear, the child goes below the lowest sibling.
func (s *Solver) PlaceInContainer(child, container *scene.Node) geometry.Point {
	pad := s.tune.Padding
	minY := container.HeaderHeight()

	siblings := make([]*scene.Node, 0, len(container.Children()))
	for _, c := range container.Children() {
		if c != child {
			siblings = append(siblings, c)
		}
	}
	if len(siblings) == 0 {
		return geometry.Point{X: pad, Y: minY}
	}

	cw := container.Width
	cols := int((cw - pad) / (child.Width + pad))
	if cols < 1 {
		cols = 1
	}

	for row := 0; row < s.tune.GridMaxRows; row++ {
		for col := 0; col < cols; col++ {
			x := pad + float64(col)*(child.Width+pad)
			y := minY + float64(row)*(child.Height+pad)
			if x+child.Width > cw-pad && col > 0 {
				continue
			}
			candidate := geometry.Rect{X: x, Y: y, Width: child.Width, Height: child.Height}
			if !s.overlapsSiblings(candidate, siblings) {
				return geometry.Point{X: x, Y: y}
			}
		}
	}

	// Grid exhausted; stack below the lowest sibling.
	maxBottom := minY
	for _, sib := range siblings {
		maxBottom = math.Max(maxBottom, sib.Y+sib.Height)
	}
	return geometry.Point{X: pad, Y: maxBottom + pad}
}

func (s *Solver) overlapsSiblings(candidate geometry.Rect, siblings []*scene.Node) bool {
	for _, sib := range siblings {
		if sib.Rect().Expand(s.tune.SiblingBuffer).Intersects(candidate) {
			return true
		}
	}
	return false
}

// NearestFreePosition returns a scene position for n that clears every
// obstacle with the configured free-canvas padding. The current position is
// tried first; otherwise candidates ring outward in the four cardinal
// directions with a step derived from the node's own size, up to the
// configured maximum distance. The node itself is not moved.
func (s *Solver) NearestFreePosition(n *scene.Node, obstacles []*scene.Node) (geometry.Point, error) {
	origin := geometry.Point{X: n.X, Y: n.Y}
	size := geometry.Rect{Width: n.Width, Height: n.Height}

	if !s.overlapsObstacles(size.Translate(origin.X, origin.Y), obstacles, n) {
		return origin, nil
	}

	step := math.Max(n.Width, n.Height) / 2
	if step <= 0 {
		step = 1
	}
	maxRings := int(s.tune.SpiralMaxDistance / step)

	dirs := []geometry.Direction{geometry.East, geometry.South, geometry.West, geometry.North}
	for ring := 1; ring <= maxRings; ring++ {
		for _, dir := range dirs {
			v := dir.Vector()
			candidate := geometry.Point{
				X: origin.X + v.X*step*float64(ring),
				Y: origin.Y + v.Y*step*float64(ring),
			}
			if !s.overlapsObstacles(size.Translate(candidate.X, candidate.Y), obstacles, n) {
				return candidate, nil
			}
		}
	}
	return geometry.Point{}, ErrNoPosition
}

func (s *Solver) overlapsObstacles(r geometry.Rect, obstacles []*scene.Node, skip *scene.Node) bool {
	for _, o := range obstacles {
		if o == skip {
			continue
		}
		if r.Expand(s.tune.ElementPadding).Intersects(o.SceneRect()) {
			return true
		}
	}
	return false
}
