package layout

import (
	"math"

	"notebox/scene"
)

// arrangeColumns distributes children row-major over a bounded number of
// columns. The column count grows with the child count but is capped so
// containers never become unreasonably wide. The container width is fixed
// first from the column count; the height follows from the tallest stack.
func (e *Engine) arrangeColumns(c *scene.Node, ordered []*scene.Node) {
	pad := e.tune.Padding

	cols := len(ordered)
	if cols < 1 {
		cols = 1
	}
	if cols > e.tune.MaxColumns {
		cols = e.tune.MaxColumns
	}

	// Uniform slot size keeps the grid regular with mixed child sizes.
	slotW, slotH := 0.0, 0.0
	for _, child := range ordered {
		slotW = math.Max(slotW, child.Width)
		slotH = math.Max(slotH, child.Height)
	}

	base := c.HeaderHeight() + pad
	c.Width = pad + float64(cols)*(slotW+pad)

	maxBottom := base
	for i, child := range ordered {
		col := i % cols
		row := i / cols
		x := pad + float64(col)*(slotW+pad)
		y := base + float64(row)*(slotH+pad)
		child.SetPos(x, y)
		maxBottom = math.Max(maxBottom, y+child.Height)
	}
	c.Height = maxBottom + pad
}
