package layout

import "notebox/scene"

// InsertionIndex computes where among its siblings a dragged child would
// land if dropped at its current position: the index of the first sibling
// whose vertical center lies below the dragged node's vertical center, or
// the sibling count when none does. Returns 0 for an only child and -1 when
// the node is not in a container.
func (e *Engine) InsertionIndex(dragged *scene.Node) int {
	parent := dragged.Parent()
	if parent == nil {
		return -1
	}
	siblings := e.orderedSiblings(dragged)
	if len(siblings) == 0 {
		return 0
	}
	myCenter := dragged.Y + dragged.Height/2
	for i, sib := range siblings {
		if myCenter < sib.Y+sib.Height/2 {
			return i
		}
	}
	return len(siblings)
}

// ReorderAt splices the dragged node into the reading-order sibling
// sequence at index and relays the container. Rows and columns fully
// re-derive positions from the new order; free mode restacks vertically
// while preserving each child's x.
func (e *Engine) ReorderAt(dragged *scene.Node, index int) {
	parent := dragged.Parent()
	if parent == nil || index < 0 {
		return
	}
	if !parent.Begin(scene.LayoutInProgress) {
		return
	}
	defer parent.End()

	siblings := e.orderedSiblings(dragged)
	if index > len(siblings) {
		index = len(siblings)
	}
	ordered := make([]*scene.Node, 0, len(siblings)+1)
	ordered = append(ordered, siblings[:index]...)
	ordered = append(ordered, dragged)
	ordered = append(ordered, siblings[index:]...)

	switch parent.Arrangement {
	case scene.ArrangeRows:
		e.arrangeRows(parent, ordered)
	case scene.ArrangeColumns:
		e.arrangeColumns(parent, ordered)
	default:
		e.restackFree(parent, ordered)
	}
}

// InsertionLineY returns the y coordinate, in container-local space, where
// the insertion preview line should be drawn for the given target index.
// Returns false when there is nothing to preview.
func (e *Engine) InsertionLineY(dragged *scene.Node, index int) (float64, bool) {
	parent := dragged.Parent()
	if parent == nil || index < 0 {
		return 0, false
	}
	pad := e.tune.Padding
	siblings := e.orderedSiblings(dragged)

	switch {
	case len(siblings) == 0:
		return parent.HeaderHeight() + pad/2, true
	case index >= len(siblings):
		last := siblings[len(siblings)-1]
		return last.Y + last.Height + pad/2, true
	case index == 0:
		return siblings[0].Y - pad/2, true
	default:
		above := siblings[index-1]
		below := siblings[index]
		return (above.Y + above.Height + below.Y) / 2, true
	}
}

// orderedSiblings returns the dragged node's siblings in reading order,
// excluding the dragged node itself.
func (e *Engine) orderedSiblings(dragged *scene.Node) []*scene.Node {
	parent := dragged.Parent()
	siblings := make([]*scene.Node, 0, len(parent.Children()))
	for _, c := range parent.Children() {
		if c != dragged {
			siblings = append(siblings, c)
		}
	}
	sortByReadingOrder(siblings)
	return siblings
}
