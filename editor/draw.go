package editor

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"notebox/geometry"
	"notebox/scene"
)

var (
	styleDefault = tcell.StyleDefault
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

func (e *Editor) draw() {
	e.screen.Clear()

	// Lowest z first so higher stacks paint over lower ones. Children
	// paint after their parent inside drawNode.
	roots := make([]*scene.Node, len(e.scn.TopLevel()))
	copy(roots, e.scn.TopLevel())
	sort.SliceStable(roots, func(i, j int) bool { return roots[i].Z < roots[j].Z })

	for _, c := range e.scn.Connections() {
		e.drawConnection(c)
	}
	for _, n := range roots {
		e.drawNode(n)
	}
	if e.dragging != nil {
		e.drawInsertionPreview(e.dragging)
	}
	e.drawStatus()
	e.screen.Show()
}

func (e *Editor) drawNode(n *scene.Node) {
	r := n.SceneRect()
	x0, y0 := e.cellAt(geometry.Point{X: r.X, Y: r.Y})
	x1, y1 := e.cellAt(geometry.Point{X: r.Right(), Y: r.Bottom()})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	style := styleDefault.Foreground(tcell.GetColor(n.Color))
	switch {
	case n == e.dropTarget:
		style = style.Foreground(tcell.ColorYellow).Bold(true)
	case n == e.selected:
		style = style.Bold(true)
	}

	e.drawBox(x0, y0, x1, y1, style, n == e.selected)
	e.drawLabel(x0+1, y0, x1-1, n.Title, style)
	if n.Description != "" {
		e.drawLabel(x0+1, y0+1, x1-1, n.Description, style.Dim(true))
	}
	if n.Arrangement != scene.ArrangeFree {
		e.drawLabel(x0+1, y1, x1-1, string(n.Arrangement), style.Dim(true))
	}

	for _, c := range n.Children() {
		e.drawNode(c)
	}
}

func (e *Editor) drawBox(x0, y0, x1, y1 int, style tcell.Style, emphasis bool) {
	h, v := '─', '│'
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if emphasis {
		h, v = '═', '║'
		tl, tr, bl, br = '╔', '╗', '╚', '╝'
	}
	for x := x0 + 1; x < x1; x++ {
		e.screen.SetContent(x, y0, h, nil, style)
		e.screen.SetContent(x, y1, h, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		e.screen.SetContent(x0, y, v, nil, style)
		e.screen.SetContent(x1, y, v, nil, style)
	}
	e.screen.SetContent(x0, y0, tl, nil, style)
	e.screen.SetContent(x1, y0, tr, nil, style)
	e.screen.SetContent(x0, y1, bl, nil, style)
	e.screen.SetContent(x1, y1, br, nil, style)
}

func (e *Editor) drawLabel(x0, y, x1 int, text string, style tcell.Style) {
	x := x0
	for _, r := range text {
		if x >= x1 {
			break
		}
		e.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawConnection draws a dotted line between the shape edge points of the
// two endpoints, with the label at the midpoint.
func (e *Editor) drawConnection(c *scene.Connection) {
	from, to, ok := e.scn.Endpoints(c)
	if !ok {
		return
	}
	x0, y0 := e.cellAt(from)
	x1, y1 := e.cellAt(to)
	e.drawLine(x0, y0, x1, y1, styleDefault.Dim(true))
	if c.Label != "" {
		mx, my := (x0+x1)/2, (y0+y1)/2
		e.drawLabel(mx, my, mx+len(c.Label)+1, c.Label, styleDefault)
	}
}

// drawLine plots a dotted segment between two cells.
func (e *Editor) drawLine(x0, y0, x1, y1 int, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	steps := dx
	if dy > steps {
		steps = dy
	}
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		e.screen.SetContent(x, y, '·', nil, style)
	}
}

// drawInsertionPreview shows where a dragged note would land among its
// list-mode siblings.
func (e *Editor) drawInsertionPreview(dragged *scene.Node) {
	parent := dragged.Parent()
	if parent == nil || parent.Arrangement == scene.ArrangeFree {
		return
	}
	idx := e.engine.InsertionIndex(dragged)
	lineY, ok := e.engine.InsertionLineY(dragged, idx)
	if !ok {
		return
	}
	origin := parent.ScenePos()
	x0, y := e.cellAt(geometry.Point{X: origin.X, Y: origin.Y + lineY})
	x1, _ := e.cellAt(geometry.Point{X: origin.X + parent.Width, Y: origin.Y + lineY})
	style := styleDefault.Foreground(tcell.ColorRed)
	for x := x0 + 1; x < x1; x++ {
		e.screen.SetContent(x, y, '╌', nil, style)
	}
}

func (e *Editor) drawStatus() {
	w, h := e.screen.Size()
	line := e.status
	if e.input != nil {
		line = e.input.prompt + string(e.input.buf) + "▏"
	} else if e.dirty {
		line = "* " + line
	}
	for x := 0; x < w; x++ {
		e.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	e.drawLabel(0, h-1, w, line, styleStatus)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
