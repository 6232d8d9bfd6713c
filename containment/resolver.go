// Package containment decides container membership when nodes are dragged
// and dropped: which container a release enters, when a drag leaves its
// container, and the coordinate conversions both transitions need.
package containment

import (
	"notebox/config"
	"notebox/geometry"
	"notebox/layout"
	"notebox/placement"
	"notebox/scene"
)

// Outcome classifies what a drop does to the moved node's membership.
type Outcome int

const (
	// Stay keeps the current parent (or keeps the node top-level).
	Stay Outcome = iota
	// Enter moves the node into a new container.
	Enter
	// Detach removes the node from its container to the top level.
	Detach
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case Stay:
		return "Stay"
	case Enter:
		return "Enter"
	case Detach:
		return "Detach"
	default:
		return "Unknown"
	}
}

// Decision is the result of resolving a drop. Parent is set only for Enter.
type Decision struct {
	Outcome Outcome
	Parent  *scene.Node
}

// Resolver applies containment transitions to a scene, triggering layout
// and placement as membership changes.
type Resolver struct {
	scn    *scene.Scene
	engine *layout.Engine
	solver *placement.Solver
	tune   config.Tuning
}

// New creates a resolver operating on the given scene.
func New(scn *scene.Scene, engine *layout.Engine, solver *placement.Solver) *Resolver {
	return &Resolver{scn: scn, engine: engine, solver: solver, tune: scn.Tuning()}
}

// DropTarget returns the container the pointer is over, excluding the moved
// node itself and its descendants (entering a descendant would create a
// cycle). Returns nil when the pointer is over empty canvas.
func (r *Resolver) DropTarget(moved *scene.Node, pointer geometry.Point) *scene.Node {
	return r.scn.NodeAt(pointer, func(n *scene.Node) bool {
		return n != moved && !moved.IsAncestorOf(n)
	})
}

// ResolveDrop determines the membership transition for a node released with
// the pointer at the given scene position. A drop that would create a cycle
// never surfaces as an error: the cyclic candidate is simply not a target,
// so the node detaches or stays as if dropped on empty space.
func (r *Resolver) ResolveDrop(moved *scene.Node, pointer geometry.Point) Decision {
	target := r.DropTarget(moved, pointer)
	switch {
	case target == nil && moved.Parent() == nil:
		return Decision{Outcome: Stay}
	case target == nil:
		return Decision{Outcome: Detach}
	case target == moved.Parent():
		return Decision{Outcome: Stay}
	default:
		return Decision{Outcome: Enter, Parent: target}
	}
}

// ApplyDrop resolves the drop and mutates the scene accordingly: membership
// links, coordinate conversion, non-overlapping placement in the new
// container, and relayout of every container involved. The decision that
// was applied is returned.
func (r *Resolver) ApplyDrop(moved *scene.Node, pointer geometry.Point) Decision {
	d := r.ResolveDrop(moved, pointer)
	switch d.Outcome {
	case Enter:
		r.enter(moved, d.Parent)
	case Detach:
		r.detach(moved)
	case Stay:
		if p := moved.Parent(); p != nil {
			r.relayout(p)
		}
	}
	r.scn.RefreshColors()
	return d
}

func (r *Resolver) enter(moved, parent *scene.Node) {
	old := moved.Parent()
	scenePos := moved.ScenePos()

	if err := r.scn.SetParent(moved, parent); err != nil {
		// Cycle slipped past resolution; treat as a drop on empty space.
		r.detach(moved)
		return
	}

	// Convert into the new parent's local space, then find a clear slot.
	origin := parent.ScenePos()
	moved.SetPos(scenePos.X-origin.X, scenePos.Y-origin.Y)
	p := r.solver.PlaceInContainer(moved, parent)
	moved.SetPos(p.X, p.Y)

	if old != nil {
		r.relayout(old)
	}
	r.relayout(parent)
}

func (r *Resolver) detach(moved *scene.Node) {
	old := moved.Parent()
	if old == nil {
		return
	}
	scenePos := moved.ScenePos()
	if err := r.scn.SetParent(moved, nil); err != nil {
		return
	}
	moved.SetPos(scenePos.X, scenePos.Y)
	r.relayout(old)
}

// relayout re-runs the appropriate maintenance for a container after a
// membership change: a full arrange while it has children, a collapse back
// to intrinsic size once it has none.
func (r *Resolver) relayout(c *scene.Node) {
	if c.IsContainer() {
		r.engine.Arrange(c)
	} else {
		r.engine.CheckAndResize(c)
	}
}
