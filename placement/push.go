package placement

import (
	"math"

	"notebox/geometry"
	"notebox/scene"
)

// PushAway relocates obstacles that a grown node now overlaps. Each
// overlapped obstacle is translated along the dominant axis of the
// center-to-center direction, just far enough to restore the configured
// padding gap. A pushed obstacle may in turn displace others; the cascade
// is bounded by the obstacle count so it always terminates. Nothing happens
// if the node did not grow.
func (s *Solver) PushAway(resized *scene.Node, oldWidth, oldHeight float64, obstacles []*scene.Node) {
	if resized.Width <= oldWidth && resized.Height <= oldHeight {
		return
	}

	queue := []*scene.Node{resized}
	pushes := 0
	for len(queue) > 0 && pushes <= len(obstacles) {
		mover := queue[0]
		queue = queue[1:]
		for _, o := range obstacles {
			if o == mover || o == resized {
				continue
			}
			// Never push our own subtree or our own container.
			if mover.IsAncestorOf(o) || o == mover.Parent() {
				continue
			}
			if !mover.SceneRect().Expand(s.tune.ElementPadding).Intersects(o.SceneRect()) {
				continue
			}
			s.pushClear(mover, o)
			pushes++
			queue = append(queue, o)
		}
	}
}

// pushClear translates o along the dominant axis so its padded rectangle no
// longer intersects mover's.
func (s *Solver) pushClear(mover, o *scene.Node) {
	mc := mover.SceneRect().Center()
	oc := o.SceneRect().Center()
	dx := oc.X - mc.X
	dy := oc.Y - mc.Y

	// Coincident centers get a fixed fallback direction.
	if geometry.Distance(mc, oc) < 1e-3 {
		dx, dy = 1, 0
	}

	if math.Abs(dx) >= math.Abs(dy) {
		minDist := (mover.Width+o.Width)/2 + s.tune.ElementPadding
		push := minDist - math.Abs(dx)
		if push > 0 {
			if dx < 0 {
				push = -push
			}
			o.MoveBy(push, 0)
		}
	} else {
		minDist := (mover.Height+o.Height)/2 + s.tune.ElementPadding
		push := minDist - math.Abs(dy)
		if push > 0 {
			if dy < 0 {
				push = -push
			}
			o.MoveBy(0, push)
		}
	}
}
