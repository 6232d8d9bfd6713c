package scene

import (
	"strings"
	"testing"
)

func TestMinSizeFloorsResize(t *testing.T) {
	s := newTestScene()
	n := s.NewNode(0, 0)

	n.Resize(10, 10)
	if n.Width < 100 || n.Height < 60 {
		t.Errorf("size %vx%v fell below the minimum floor", n.Width, n.Height)
	}
}

func TestMinSizeTracksText(t *testing.T) {
	s := newTestScene()
	n := s.NewNode(0, 0)
	minW0, minH0 := n.MinSize()

	n.SetTitle("a reasonably long title line")
	minW1, minH1 := n.MinSize()
	if minW1 <= minW0 {
		t.Errorf("min width %v did not grow for longer text (was %v)", minW1, minW0)
	}
	if minH1 <= minH0 {
		t.Errorf("min height %v did not grow for wrapped text (was %v)", minH1, minH0)
	}

	n.SetDescription("first line\nsecond line\nthird line")
	_, minH2 := n.MinSize()
	if minH2 <= minH1 {
		t.Errorf("min height %v did not grow for more lines (was %v)", minH2, minH1)
	}
}

func TestTextGrowthExpandsNode(t *testing.T) {
	s := newTestScene()
	n := s.NewNode(0, 0)
	n.Resize(100, 60)
	h0 := n.Height

	n.SetDescription(strings.Repeat("line\n", 10) + "line")
	if n.Height <= h0 {
		t.Errorf("height %v did not grow with text (was %v)", n.Height, h0)
	}
	minW, minH := n.MinSize()
	if n.Width < minW || n.Height < minH {
		t.Error("node smaller than its own minimum after text change")
	}
}

func TestIntrinsicSize(t *testing.T) {
	s := newTestScene()
	n := s.NewNode(0, 0)

	w, h := n.IntrinsicSize()
	if w != 200 {
		t.Errorf("intrinsic width = %v, want base width 200", w)
	}
	minW, minH := n.MinSize()
	if w < minW || h < minH {
		t.Error("intrinsic size below minimum size")
	}
}

func TestHeaderHeight(t *testing.T) {
	s := newTestScene()
	n := s.NewNode(0, 0)
	h0 := n.HeaderHeight()

	n.SetTitle("one\ntwo")
	if n.HeaderHeight() <= h0 {
		t.Error("header height did not grow with a second title line")
	}
}

func TestGuardState(t *testing.T) {
	s := newTestScene()
	n := s.NewNode(0, 0)

	if n.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", n.State())
	}
	if !n.Begin(LayoutInProgress) {
		t.Fatal("Begin on idle node should succeed")
	}
	if n.Begin(ResizeInProgress) {
		t.Error("nested Begin should fail while a routine is running")
	}
	if n.Begin(LayoutInProgress) {
		t.Error("re-entrant Begin should fail")
	}
	n.End()
	if n.State() != Idle {
		t.Error("End should restore Idle")
	}
	if !n.Begin(ResizeInProgress) {
		t.Error("Begin after End should succeed")
	}
	n.End()

	if n.Begin(Idle) {
		t.Error("Begin(Idle) is meaningless and should fail")
	}
}

func TestDepthAndRoot(t *testing.T) {
	s := newTestScene()
	a := s.NewNode(0, 0)
	b := s.NewNode(0, 0)
	c := s.NewNode(0, 0)
	if err := s.SetParent(b, a); err != nil {
		t.Fatal(err)
	}
	if err := s.SetParent(c, b); err != nil {
		t.Fatal(err)
	}

	if a.Depth() != 0 || b.Depth() != 1 || c.Depth() != 2 {
		t.Errorf("depths = %d/%d/%d, want 0/1/2", a.Depth(), b.Depth(), c.Depth())
	}
	if c.Root() != a {
		t.Error("root of grandchild should be the top node")
	}
	if !a.IsAncestorOf(c) {
		t.Error("a should be ancestor of c")
	}
	if c.IsAncestorOf(a) {
		t.Error("c is not an ancestor of a")
	}
	if a.IsAncestorOf(a) {
		t.Error("a node is not its own ancestor")
	}
}
