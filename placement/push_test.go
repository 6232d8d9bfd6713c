package placement

import (
	"testing"

	"notebox/scene"
)

func TestPushAwayRestoresPaddingGap(t *testing.T) {
	s, sv := newTestSetup()
	n := s.NewNode(0, 0)
	n.Width, n.Height = 100, 60
	neighbor := s.NewNode(120, 0) // 20 to the right of n's right edge
	neighbor.Width, neighbor.Height = 100, 60

	// Grow n until it overlaps the neighbor.
	oldW, oldH := n.Width, n.Height
	n.Width = 300
	sv.PushAway(n, oldW, oldH, []*scene.Node{neighbor})

	gap := neighbor.X - n.SceneRect().Right()
	if gap != sv.tune.ElementPadding {
		t.Errorf("gap = %v, want exactly the element padding %v", gap, sv.tune.ElementPadding)
	}
	if neighbor.Y != 0 {
		t.Errorf("neighbor moved vertically to %v", neighbor.Y)
	}
}

func TestPushAwayNoOpWithoutGrowth(t *testing.T) {
	s, sv := newTestSetup()
	n := s.NewNode(0, 0)
	neighbor := s.NewNode(50, 0) // already overlapping
	x := neighbor.X

	sv.PushAway(n, n.Width, n.Height, []*scene.Node{neighbor})
	if neighbor.X != x {
		t.Error("neighbor moved although the node did not grow")
	}
}

func TestPushAwayCascades(t *testing.T) {
	s, sv := newTestSetup()
	n := s.NewNode(0, 0)
	n.Width, n.Height = 100, 60
	first := s.NewNode(120, 0)
	first.Width, first.Height = 100, 60
	second := s.NewNode(240, 0)
	second.Width, second.Height = 100, 60

	// Growing into the first neighbor shoves it into the second.
	oldW := n.Width
	n.Width = 160
	sv.PushAway(n, oldW, 60, []*scene.Node{first, second})

	pad := sv.tune.ElementPadding
	if gap := first.X - n.SceneRect().Right(); gap != pad {
		t.Errorf("first neighbor gap = %v, want %v", gap, pad)
	}
	if gap := second.X - (first.X + first.Width); gap != pad {
		t.Errorf("second neighbor gap = %v, want %v", gap, pad)
	}
}

func TestPushAwayVertical(t *testing.T) {
	s, sv := newTestSetup()
	n := s.NewNode(0, 0)
	n.Width, n.Height = 100, 60
	below := s.NewNode(0, 80)
	below.Width, below.Height = 100, 60

	oldH := n.Height
	n.Height = 200
	sv.PushAway(n, 100, oldH, []*scene.Node{below})

	if gap := below.Y - n.SceneRect().Bottom(); gap != sv.tune.ElementPadding {
		t.Errorf("vertical gap = %v, want %v", gap, sv.tune.ElementPadding)
	}
	if below.X != 0 {
		t.Errorf("neighbor moved horizontally to %v", below.X)
	}
}

func TestPushAwaySkipsOwnSubtree(t *testing.T) {
	s, sv := newTestSetup()
	c := s.NewNode(0, 0)
	child := s.NewNode(0, 0)
	if err := s.SetParent(child, c); err != nil {
		t.Fatal(err)
	}
	child.SetPos(30, c.HeaderHeight())
	x, y := child.X, child.Y

	oldW := c.Width
	c.Width = oldW + 200
	sv.PushAway(c, oldW, c.Height, []*scene.Node{child})

	if child.X != x || child.Y != y {
		t.Error("container's own child was pushed")
	}
}
