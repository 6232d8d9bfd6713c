package layout

import (
	"math"

	"notebox/scene"
)

// arrangeRows stacks children vertically in the given order, each at
// x = padding, and sizes the container to the cumulative stack.
func (e *Engine) arrangeRows(c *scene.Node, ordered []*scene.Node) {
	pad := e.tune.Padding
	y := c.HeaderHeight() + pad

	widest := 0.0
	for _, child := range ordered {
		child.SetPos(pad, y)
		y += child.Height + pad
		widest = math.Max(widest, child.Width)
	}

	iw, _ := c.IntrinsicSize()
	c.Width = math.Max(iw, widest+2*pad)
	c.Height = y
}
