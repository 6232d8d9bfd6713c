// Package scene owns the node tree of a notebox canvas: creation,
// duplication, deletion, parent/child links, and z-ordered hit testing.
// Layout is done elsewhere; the scene is purely structural.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"notebox/config"
	"notebox/geometry"
)

// ErrWouldCycle is returned when a reparent would make a node its own
// descendant's child.
var ErrWouldCycle = errors.New("reparenting would create a containment cycle")

// DefaultColor is the base fill of a freshly created note.
const DefaultColor = "#323246"

// Scene is the owning collection of all nodes on one canvas. Top-level
// nodes are held directly; nested nodes are owned by their parents.
type Scene struct {
	measure TextMeasurer
	tune    config.Tuning

	top   []*Node
	conns []*Connection
	topZ  float64
}

// New creates an empty scene.
func New(measure TextMeasurer, tune config.Tuning) *Scene {
	return &Scene{measure: measure, tune: tune}
}

// Tuning returns the scene's tuning parameters.
func (s *Scene) Tuning() config.Tuning {
	return s.tune
}

// NewNode creates an unparented node at (x, y) in scene coordinates, sized
// intrinsically for its (empty) text, on top of the z order.
func (s *Scene) NewNode(x, y float64) *Node {
	return s.newNode(uuid.NewString(), x, y)
}

// NewNodeWithID creates a node with a caller-supplied identity. Used when
// reconstructing a persisted scene; new nodes should use NewNode.
func (s *Scene) NewNodeWithID(id string, x, y float64) *Node {
	return s.newNode(id, x, y)
}

func (s *Scene) newNode(id string, x, y float64) *Node {
	n := &Node{
		ID:          id,
		X:           x,
		Y:           y,
		Arrangement: ArrangeFree,
		Shape:       ShapeBox,
		Color:       DefaultColor,
		measure:     s.measure,
		tune:        &s.tune,
	}
	n.refreshMetrics()
	n.Width, n.Height = n.IntrinsicSize()
	s.topZ++
	n.Z = s.topZ
	s.top = append(s.top, n)
	return n
}

// Duplicate creates an unparented copy of n: same text, size, shape, and
// color, fresh identity, placed at n's scene position. The caller decides
// where to put it and whether to attach it anywhere.
func (s *Scene) Duplicate(n *Node) *Node {
	p := n.ScenePos()
	c := s.NewNode(p.X, p.Y)
	c.Title = n.Title
	c.Description = n.Description
	c.Shape = n.Shape
	c.Color = n.Color
	c.Arrangement = n.Arrangement
	c.refreshMetrics()
	c.Width, c.Height = n.Width, n.Height
	return c
}

// Delete removes n and its entire subtree from the scene, along with any
// connections touching a removed node.
func (s *Scene) Delete(n *Node) {
	removed := make(map[string]bool)
	var mark func(*Node)
	mark = func(m *Node) {
		removed[m.ID] = true
		for _, c := range m.children {
			mark(c)
		}
	}
	mark(n)

	if n.parent != nil {
		n.parent.removeChild(n)
		n.parent = nil
	} else {
		s.removeTop(n)
	}

	kept := s.conns[:0]
	for _, c := range s.conns {
		if !removed[c.From] && !removed[c.To] {
			kept = append(kept, c)
		}
	}
	s.conns = kept
}

// SetParent moves child under parent, or detaches it to the top level when
// parent is nil. Only the structural links change; the caller converts
// coordinates. Returns ErrWouldCycle if parent sits in child's subtree.
func (s *Scene) SetParent(child, parent *Node) error {
	if parent == child {
		return ErrWouldCycle
	}
	if parent != nil && child.IsAncestorOf(parent) {
		return ErrWouldCycle
	}
	if child.parent == parent {
		return nil
	}

	if child.parent != nil {
		child.parent.removeChild(child)
	} else {
		s.removeTop(child)
	}

	child.parent = parent
	if parent != nil {
		parent.children = append(parent.children, child)
	} else {
		s.top = append(s.top, child)
		s.topZ++
		child.Z = s.topZ
	}
	return nil
}

func (n *Node) removeChild(c *Node) {
	for i, x := range n.children {
		if x == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (s *Scene) removeTop(n *Node) {
	for i, x := range s.top {
		if x == n {
			s.top = append(s.top[:i], s.top[i+1:]...)
			return
		}
	}
}

// TopLevel returns the unparented nodes in insertion order.
func (s *Scene) TopLevel() []*Node {
	return s.top
}

// Walk visits every node in the scene, parents before children.
func (s *Scene) Walk(fn func(*Node)) {
	var visit func(*Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.children {
			visit(c)
		}
	}
	for _, n := range s.top {
		visit(n)
	}
}

// FindByID returns the node with the given identity, or nil.
func (s *Scene) FindByID(id string) *Node {
	var found *Node
	s.Walk(func(n *Node) {
		if n.ID == id {
			found = n
		}
	})
	return found
}

// NodeAt hit-tests the scene at p and returns the topmost accepted node, or
// nil. Topmost means: highest root z value first, then deepest nesting, so
// a child is always hit before its container. Nodes for which accept
// returns false are skipped; a nil accept matches everything.
func (s *Scene) NodeAt(p geometry.Point, accept func(*Node) bool) *Node {
	var best *Node
	bestZ := 0.0
	bestDepth := -1
	s.Walk(func(n *Node) {
		if !n.SceneRect().Contains(p) {
			return
		}
		if accept != nil && !accept(n) {
			return
		}
		z := n.Root().Z
		d := n.Depth()
		if best == nil || z > bestZ || (z == bestZ && d > bestDepth) {
			best = n
			bestZ = z
			bestDepth = d
		}
	})
	return best
}

// RaiseToTop brings the node's root above every other top-level node.
func (s *Scene) RaiseToTop(n *Node) {
	s.topZ++
	n.Root().Z = s.topZ
}

// Connect adds a directed connection between two existing nodes.
func (s *Scene) Connect(from, to *Node, label string) (*Connection, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("connection endpoints must be non-nil")
	}
	if from == to {
		return nil, fmt.Errorf("connection cannot link a node to itself")
	}
	c := &Connection{
		ID:    uuid.NewString(),
		From:  from.ID,
		To:    to.ID,
		Label: label,
	}
	s.conns = append(s.conns, c)
	return c, nil
}

// Connections returns all connections in creation order.
func (s *Scene) Connections() []*Connection {
	return s.conns
}
