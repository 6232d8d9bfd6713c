package scene

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestDepthColor(t *testing.T) {
	base := "#323246"

	if got := DepthColor(base, 0); got != base {
		t.Errorf("level 0 = %v, want base unchanged", got)
	}
	if got := DepthColor("not-a-color", 2); got != "not-a-color" {
		t.Errorf("unparsable base = %v, want passthrough", got)
	}

	value := func(hex string) float64 {
		c, err := colorful.Hex(hex)
		if err != nil {
			t.Fatalf("bad hex %q: %v", hex, err)
		}
		_, _, v := c.Hsv()
		return v
	}

	v0 := value(base)
	v1 := value(DepthColor(base, 1))
	v2 := value(DepthColor(base, 2))
	if !(v1 > v0) || !(v2 > v1) {
		t.Errorf("brightness not increasing with depth: %v, %v, %v", v0, v1, v2)
	}

	// Deep nesting saturates instead of washing out.
	vDeep := value(DepthColor(base, 50))
	if vDeep > 0.7+1e-9 {
		t.Errorf("deep level value = %v, want capped at 0.7", vDeep)
	}
}

func TestRefreshColors(t *testing.T) {
	s := newTestScene()
	parent := s.NewNode(0, 0)
	child := s.NewNode(0, 0)
	grand := s.NewNode(0, 0)
	if err := s.SetParent(child, parent); err != nil {
		t.Fatal(err)
	}
	if err := s.SetParent(grand, child); err != nil {
		t.Fatal(err)
	}

	s.RefreshColors()

	if parent.Color != DefaultColor {
		t.Errorf("top-level color = %v, want base", parent.Color)
	}
	if child.Color != DepthColor(DefaultColor, 1) {
		t.Errorf("child color = %v, want depth 1 ramp", child.Color)
	}
	if grand.Color != DepthColor(DefaultColor, 2) {
		t.Errorf("grandchild color = %v, want depth 2 ramp", grand.Color)
	}
}
