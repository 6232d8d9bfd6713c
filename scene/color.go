package scene

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DepthColor derives the fill for a node nested level containers deep.
// Each level brightens the base color by 5%, capped at a 30% total increase
// and an absolute 70% value so white text stays readable. Level 0 returns
// the base color unchanged, as does any unparsable base.
func DepthColor(base string, level int) string {
	if level <= 0 {
		return base
	}
	c, err := colorful.Hex(base)
	if err != nil {
		return base
	}
	h, s, v := c.Hsv()
	v += math.Min(0.05*float64(level), 0.3)
	if v > 0.7 {
		v = 0.7
	}
	return colorful.Hsv(h, s, v).Hex()
}

// RefreshColors reassigns every node's color from its root's base color and
// nesting depth. Called after containment changes.
func (s *Scene) RefreshColors() {
	s.Walk(func(n *Node) {
		n.Color = DepthColor(n.Root().Color, n.Depth())
	})
}
