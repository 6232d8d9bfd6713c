package layout

import (
	"testing"

	"notebox/scene"
)

func TestInsertionIndex(t *testing.T) {
	s, e := newTestSetup()
	c := s.NewNode(0, 0)
	c.Arrangement = scene.ArrangeRows
	top := addChild(t, s, c, 20, 100, 50, 50)
	mid := addChild(t, s, c, 20, 200, 50, 50)
	bottom := addChild(t, s, c, 20, 300, 50, 50)
	_ = top
	_ = bottom

	dragged := addChild(t, s, c, 20, 0, 50, 50)

	t.Run("above all siblings", func(t *testing.T) {
		dragged.SetPos(20, 0)
		if got := e.InsertionIndex(dragged); got != 0 {
			t.Errorf("index = %d, want 0", got)
		}
	})

	t.Run("between siblings", func(t *testing.T) {
		// Center between mid's and bottom's centers.
		dragged.SetPos(20, mid.Y+mid.Height)
		if got := e.InsertionIndex(dragged); got != 2 {
			t.Errorf("index = %d, want 2", got)
		}
	})

	t.Run("below all siblings", func(t *testing.T) {
		dragged.SetPos(20, 500)
		if got := e.InsertionIndex(dragged); got != 3 {
			t.Errorf("index = %d, want 3", got)
		}
	})
}

func TestInsertionIndexEdgeCases(t *testing.T) {
	s, e := newTestSetup()

	t.Run("no parent", func(t *testing.T) {
		n := s.NewNode(0, 0)
		if got := e.InsertionIndex(n); got != -1 {
			t.Errorf("index = %d, want -1 for top-level node", got)
		}
	})

	t.Run("only child", func(t *testing.T) {
		c := s.NewNode(0, 0)
		only := addChild(t, s, c, 20, 100, 50, 50)
		if got := e.InsertionIndex(only); got != 0 {
			t.Errorf("index = %d, want 0 for only child", got)
		}
	})
}

func TestReorderAt(t *testing.T) {
	s, e := newTestSetup()
	c := s.NewNode(0, 0)
	c.Arrangement = scene.ArrangeRows
	first := addChild(t, s, c, 20, 100, 50, 50)
	second := addChild(t, s, c, 20, 200, 50, 50)
	third := addChild(t, s, c, 20, 300, 50, 50)

	// Move the third child to the front.
	e.ReorderAt(third, 0)

	if !(third.Y < first.Y && first.Y < second.Y) {
		t.Errorf("order after reorder: third %v, first %v, second %v",
			third.Y, first.Y, second.Y)
	}

	// An out-of-range index clamps to the end.
	e.ReorderAt(third, 99)
	if !(third.Y > first.Y && third.Y > second.Y) {
		t.Error("clamped reorder should land last")
	}
}

func TestReorderAtIgnoresInvalid(t *testing.T) {
	s, e := newTestSetup()
	n := s.NewNode(0, 0)
	x, y := n.X, n.Y
	e.ReorderAt(n, 0)
	e.ReorderAt(n, -1)
	if n.X != x || n.Y != y {
		t.Error("top-level node moved by reorder")
	}
}

func TestInsertionLineY(t *testing.T) {
	s, e := newTestSetup()
	pad := e.Tuning().Padding
	c := s.NewNode(0, 0)
	c.Arrangement = scene.ArrangeRows
	first := addChild(t, s, c, 20, 100, 50, 50)
	second := addChild(t, s, c, 20, 200, 50, 50)
	dragged := addChild(t, s, c, 20, 0, 50, 50)

	t.Run("at front", func(t *testing.T) {
		y, ok := e.InsertionLineY(dragged, 0)
		if !ok {
			t.Fatal("expected a preview line")
		}
		if want := first.Y - pad/2; y != want {
			t.Errorf("line y = %v, want %v", y, want)
		}
	})

	t.Run("between", func(t *testing.T) {
		y, ok := e.InsertionLineY(dragged, 1)
		if !ok {
			t.Fatal("expected a preview line")
		}
		if want := (first.Y + first.Height + second.Y) / 2; y != want {
			t.Errorf("line y = %v, want %v", y, want)
		}
	})

	t.Run("at end", func(t *testing.T) {
		y, ok := e.InsertionLineY(dragged, 2)
		if !ok {
			t.Fatal("expected a preview line")
		}
		if want := second.Y + second.Height + pad/2; y != want {
			t.Errorf("line y = %v, want %v", y, want)
		}
	})

	t.Run("no parent", func(t *testing.T) {
		n := s.NewNode(0, 0)
		if _, ok := e.InsertionLineY(n, 0); ok {
			t.Error("top-level node has no preview line")
		}
	})
}
