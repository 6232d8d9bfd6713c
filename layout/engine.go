// Package layout positions children inside containers and keeps container
// sizes in sync with their content. It implements the three arrangement
// modes (free, rows, columns) plus the size maintenance routines that run
// after geometry or membership changes.
package layout

import (
	"math"
	"sort"

	"notebox/config"
	"notebox/scene"
)

// Engine lays out containers. It is stateless apart from tuning; all
// per-node state (positions, guard flags) lives on the nodes themselves.
type Engine struct {
	tune config.Tuning
}

// New creates an engine with the given tuning.
func New(tune config.Tuning) *Engine {
	return &Engine{tune: tune}
}

// Tuning returns the engine's tuning parameters.
func (e *Engine) Tuning() config.Tuning {
	return e.tune
}

// Arrange recomputes child positions and the container's size for its
// current arrangement mode. Children are taken in reading order (top to
// bottom, ties broken left to right). No-ops if c is not a container or a
// layout for c is already in progress.
func (e *Engine) Arrange(c *scene.Node) {
	if !c.IsContainer() {
		return
	}
	if !c.Begin(scene.LayoutInProgress) {
		return
	}
	defer c.End()

	ordered := append([]*scene.Node(nil), c.Children()...)
	sortByReadingOrder(ordered)
	e.arrangeOrdered(c, ordered)
}

// SetArrangement switches the container's mode and re-runs the layout.
// Membership is unchanged; the mode persists even if children are later
// removed.
func (e *Engine) SetArrangement(c *scene.Node, mode scene.Arrangement) {
	if !mode.Valid() {
		return
	}
	c.Arrangement = mode
	e.Arrange(c)
}

// arrangeOrdered dispatches on the container's mode with an explicit child
// order. Caller holds the layout guard.
func (e *Engine) arrangeOrdered(c *scene.Node, ordered []*scene.Node) {
	switch c.Arrangement {
	case scene.ArrangeRows:
		e.arrangeRows(c, ordered)
	case scene.ArrangeColumns:
		e.arrangeColumns(c, ordered)
	default:
		e.arrangeFree(c)
	}
}

// CheckAndResize re-derives the container's size from its current children
// without moving them. Used after external geometry changes, e.g. a child's
// text grew. Idempotent; no-ops when a resize or layout for c is already
// running. A childless container collapses back to its intrinsic size.
func (e *Engine) CheckAndResize(c *scene.Node) {
	if !c.Begin(scene.ResizeInProgress) {
		return
	}
	defer c.End()

	if !c.IsContainer() {
		e.resetToIntrinsic(c)
		return
	}
	e.resizeToChildren(c)
}

// ResetToIntrinsic shrinks the node to the size its own text needs,
// independent of any former children.
func (e *Engine) ResetToIntrinsic(c *scene.Node) {
	if !c.Begin(scene.ResizeInProgress) {
		return
	}
	defer c.End()
	e.resetToIntrinsic(c)
}

func (e *Engine) resetToIntrinsic(c *scene.Node) {
	c.Width, c.Height = c.IntrinsicSize()
}

// resizeToChildren grows the container to the tight bounding box of its
// intrinsic size and every child's extent, with padding on the trailing
// edges.
func (e *Engine) resizeToChildren(c *scene.Node) {
	pad := e.tune.Padding
	maxRight := pad
	maxBottom := c.HeaderHeight() + pad
	for _, child := range c.Children() {
		r := child.Rect()
		maxRight = math.Max(maxRight, r.Right()+pad)
		maxBottom = math.Max(maxBottom, r.Bottom()+pad)
	}
	iw, ih := c.IntrinsicSize()
	c.Width = math.Max(iw, maxRight)
	c.Height = math.Max(ih, maxBottom)
}

// NudgeChildrenBelowHeader pushes any child overlapping the label area down
// to the first valid row. Run after a container's text grows.
func (e *Engine) NudgeChildrenBelowHeader(c *scene.Node) {
	minY := c.HeaderHeight() + e.tune.Padding
	for _, child := range c.Children() {
		if child.Y < c.HeaderHeight() {
			child.SetPos(child.X, minY)
		}
	}
}

// ArrangeScene lays out every container bottom-up: children first, so parent
// sizes account for final child extents. Used once after loading a
// persisted scene with parent links pre-established.
func (e *Engine) ArrangeScene(s *scene.Scene) {
	var visit func(*scene.Node)
	visit = func(n *scene.Node) {
		for _, c := range n.Children() {
			visit(c)
		}
		if n.IsContainer() {
			if n.Arrangement == scene.ArrangeFree {
				e.CheckAndResize(n)
			} else {
				e.Arrange(n)
			}
		}
	}
	for _, n := range s.TopLevel() {
		visit(n)
	}
}

// sortByReadingOrder sorts nodes top to bottom, ties broken left to right.
// Stable so repeated layouts of an already-ordered set are idempotent.
func sortByReadingOrder(nodes []*scene.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Y != nodes[j].Y {
			return nodes[i].Y < nodes[j].Y
		}
		return nodes[i].X < nodes[j].X
	})
}
