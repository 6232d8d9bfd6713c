package layout

import "notebox/scene"

// arrangeFree leaves children where they were placed or dragged and only
// fits the container around them.
func (e *Engine) arrangeFree(c *scene.Node) {
	e.resizeToChildren(c)
}

// restackFree reassigns vertical positions in the given order, preserving
// each child's x, starting just below the text header. Used when a drag
// reorder lands in a free-mode container.
func (e *Engine) restackFree(c *scene.Node, ordered []*scene.Node) {
	pad := e.tune.Padding
	y := c.HeaderHeight()
	for _, child := range ordered {
		child.SetPos(child.X, y)
		y += child.Height + pad
	}
	e.resizeToChildren(c)
}
