package scene

import (
	"math"

	"notebox/config"
	"notebox/geometry"
)

// Arrangement is the layout policy a container applies to its children.
type Arrangement string

// Arrangement constants. Free is the default for new containers.
const (
	ArrangeFree    Arrangement = "free"
	ArrangeRows    Arrangement = "rows"
	ArrangeColumns Arrangement = "columns"
)

// Valid reports whether the arrangement is one of the known modes.
func (a Arrangement) Valid() bool {
	switch a {
	case ArrangeFree, ArrangeRows, ArrangeColumns:
		return true
	}
	return false
}

// GuardState tracks whether a node is inside a layout or resize routine.
// Geometry mutation triggers change notifications that could otherwise call
// back into the routine already running for the same node.
type GuardState int

const (
	Idle GuardState = iota
	LayoutInProgress
	ResizeInProgress
)

// Node is a positioned rectangular entity on the canvas: a sticky note or a
// diagram element. Position is parent-local when nested, scene-absolute when
// top-level. Children are owned by the node; Parent is a non-owning back
// reference.
type Node struct {
	ID          string
	Title       string
	Description string

	X, Y          float64
	Width, Height float64
	Z             float64

	Arrangement Arrangement
	Shape       ShapeKind
	Color       string

	parent   *Node
	children []*Node
	state    GuardState

	// Cached text metrics, refreshed on every text change.
	titleH, titleW float64
	descH, descW   float64

	measure TextMeasurer
	tune    *config.Tuning
}

// Parent returns the containing node, or nil for a top-level node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the ordered child collection. The returned slice is the
// node's own; callers must not splice it directly.
func (n *Node) Children() []*Node {
	return n.children
}

// IsContainer reports whether the node currently has children.
func (n *Node) IsContainer() bool {
	return len(n.children) > 0
}

// Root walks parent links to the top-level ancestor.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Depth returns the nesting level, 0 for a top-level node.
func (n *Node) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}
	return d
}

// IsAncestorOf reports whether other is in n's subtree (walking other's
// parent links upward reaches n). A node is not its own ancestor.
func (n *Node) IsAncestorOf(other *Node) bool {
	for cur := other.parent; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Rect returns the node's rectangle in parent-local coordinates.
func (n *Node) Rect() geometry.Rect {
	return geometry.Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// ScenePos returns the node's top-left corner in scene coordinates.
func (n *Node) ScenePos() geometry.Point {
	p := geometry.Point{X: n.X, Y: n.Y}
	for cur := n.parent; cur != nil; cur = cur.parent {
		p.X += cur.X
		p.Y += cur.Y
	}
	return p
}

// SceneRect returns the node's rectangle in scene coordinates.
func (n *Node) SceneRect() geometry.Rect {
	p := n.ScenePos()
	return geometry.Rect{X: p.X, Y: p.Y, Width: n.Width, Height: n.Height}
}

// SetPos moves the node to (x, y) in parent-local coordinates.
func (n *Node) SetPos(x, y float64) {
	n.X = x
	n.Y = y
}

// MoveBy translates the node by (dx, dy) in parent-local coordinates.
func (n *Node) MoveBy(dx, dy float64) {
	n.X += dx
	n.Y += dy
}

// Resize sets the node's size, floored at the minimum its text requires.
func (n *Node) Resize(width, height float64) {
	minW, minH := n.MinSize()
	n.Width = math.Max(width, minW)
	n.Height = math.Max(height, minH)
}

// SetTitle replaces the title and refreshes the cached text metrics.
func (n *Node) SetTitle(s string) {
	n.Title = s
	n.refreshMetrics()
}

// SetDescription replaces the description and refreshes the cached metrics.
func (n *Node) SetDescription(s string) {
	n.Description = s
	n.refreshMetrics()
}

func (n *Node) refreshMetrics() {
	wrap := n.tune.BaseWidth - n.tune.Padding
	n.titleW, n.titleH = n.measure.MeasureText(n.Title, wrap)
	n.descW, n.descH = n.measure.MeasureText(n.Description, wrap)
	// Never shrink below what the text now needs.
	minW, minH := n.MinSize()
	if n.Width < minW {
		n.Width = minW
	}
	if n.Height < minH {
		n.Height = minH
	}
}

// HeaderHeight is the vertical extent of the label area: rendered title plus
// description plus the fixed gap. Child placement never goes above it.
func (n *Node) HeaderHeight() float64 {
	return n.titleH + n.descH + n.tune.Padding
}

// MinSize returns the smallest size the node may take, derived from its
// rendered text plus fixed margins.
func (n *Node) MinSize() (w, h float64) {
	w = math.Max(n.tune.MinNodeWidth, math.Max(n.titleW, n.descW)+n.tune.TextMarginX)
	h = math.Max(n.tune.MinNodeHeight, n.titleH+n.descH+n.tune.TextMarginY)
	return w, h
}

// IntrinsicSize is the size of the node when it has no children: the base
// width and the text height with padding above and below, floored at MinSize.
func (n *Node) IntrinsicSize() (w, h float64) {
	minW, minH := n.MinSize()
	w = math.Max(n.tune.BaseWidth, minW)
	h = math.Max(n.titleH+n.descH+2*n.tune.Padding, minH)
	return w, h
}

// State returns the node's current guard state.
func (n *Node) State() GuardState {
	return n.state
}

// Begin attempts to enter the given guard state. It returns false if the
// node is already inside a layout or resize routine; the caller must then
// no-op rather than recurse.
func (n *Node) Begin(s GuardState) bool {
	if n.state != Idle || s == Idle {
		return false
	}
	n.state = s
	return true
}

// End returns the node to the Idle state. Safe to call from a defer.
func (n *Node) End() {
	n.state = Idle
}
