package containment

import "notebox/scene"

// DragUpdate runs the live containment behavior for one pointer-move step
// of a dragged node and reports whether the node detached. Evaluated
// continuously during the move, not only on release, so the user sees the
// detach happen. Only free-mode containers allow dragging out; list-like
// modes snap the child to a clear grid slot instead.
func (r *Resolver) DragUpdate(moved *scene.Node) (detached bool) {
	parent := moved.Parent()
	if parent == nil {
		return false
	}

	if parent.Arrangement == scene.ArrangeFree {
		if r.maybeAutoDetach(moved, parent) {
			return true
		}
		r.clampSoft(moved, parent)
		r.engine.CheckAndResize(parent)
		return false
	}

	p := r.solver.PlaceInContainer(moved, parent)
	moved.SetPos(p.X, p.Y)
	r.engine.CheckAndResize(parent)
	return false
}

// maybeAutoDetach detaches the node once it has been dragged beyond the
// configured outward margin of its free-mode container. A smaller overshoot
// is tolerated (the soft clamp handles it); the top edge gets extra slack
// because the label area already pushes children down.
func (r *Resolver) maybeAutoDetach(moved, parent *scene.Node) bool {
	minY := parent.HeaderHeight()
	maxX := parent.Width - moved.Width + r.tune.InnerMargin
	maxY := parent.Height - moved.Height + r.tune.InnerMargin

	outside := moved.X < -r.tune.DetachMargin ||
		moved.Y < minY-r.tune.TopDetachSlack ||
		moved.X > maxX+r.tune.DetachMargin ||
		moved.Y > maxY+r.tune.DetachMargin
	if !outside {
		return false
	}

	r.detach(moved)
	r.scn.RefreshColors()
	return true
}

// clampSoft keeps a free-mode child loosely inside its container: the
// bounds are scaled by the soft factors, so slight overshoot is allowed
// without snapping hard to the interior.
func (r *Resolver) clampSoft(moved, parent *scene.Node) {
	minX := -r.tune.InnerMargin
	minY := parent.HeaderHeight()
	maxX := parent.Width - moved.Width + r.tune.InnerMargin
	maxY := parent.Height - moved.Height + r.tune.InnerMargin

	softMinX := minX * r.tune.SoftNegativeFactor
	softMinY := minY * r.tune.SoftMinFactor
	softMaxX := maxX * r.tune.SoftMaxFactor
	softMaxY := maxY * r.tune.SoftMaxFactor

	x, y := moved.X, moved.Y
	if x < softMinX {
		x = softMinX
	}
	if x > softMaxX {
		x = softMaxX
	}
	if y < softMinY {
		y = softMinY
	}
	if y > softMaxY {
		y = softMaxY
	}
	if x != moved.X || y != moved.Y {
		moved.SetPos(x, y)
	}
}
