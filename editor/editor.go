// Package editor implements the interactive terminal canvas: mouse-driven
// dragging of notes between containers, keyboard commands for editing, and
// the screen rendering that goes with them.
package editor

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"notebox/containment"
	"notebox/geometry"
	"notebox/layout"
	"notebox/placement"
	"notebox/scene"
)

// Cell size in scene units. Terminal cells are roughly twice as tall as
// wide, so the vertical scale is doubled to keep shapes proportional.
const (
	unitsPerCellX = 10.0
	unitsPerCellY = 20.0
)

// Editor owns the interactive session state: the scene being edited and
// the transient drag, selection, and camera state around it.
type Editor struct {
	screen tcell.Screen
	logger *log.Logger

	scn      *scene.Scene
	engine   *layout.Engine
	solver   *placement.Solver
	resolver *containment.Resolver

	filePath string
	dirty    bool
	quit     bool

	// Camera offset in scene units.
	camX, camY float64

	selected *scene.Node

	// Drag state. dragOffset is pointer minus node origin, so the node
	// does not jump to the pointer on grab.
	dragging   *scene.Node
	dragOffset geometry.Point
	dropTarget *scene.Node

	// Pending connection source, set by the connect command.
	connectFrom *scene.Node

	// Active status-bar text entry, nil outside input mode.
	input *inputState

	status string

	// save is swappable for tests; defaults to writing the scene file.
	save func() error
}

// New creates an editor for the given scene. filePath is where the save
// command writes; it may be empty for an unsaved scene.
func New(scn *scene.Scene, filePath string, logger *log.Logger) *Editor {
	tune := scn.Tuning()
	e := &Editor{
		logger:   logger,
		scn:      scn,
		engine:   layout.New(tune),
		solver:   placement.New(tune),
		filePath: filePath,
	}
	e.resolver = containment.New(scn, e.engine, e.solver)
	return e
}

// Run starts the event loop and blocks until the user quits.
func (e *Editor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	e.screen = screen

	e.setStatus("a:add  d:delete  u:duplicate  t:title  e:desc  +/-:resize  m:mode  c:connect  s:save  q:quit")
	for !e.quit {
		e.draw()
		e.handleEvent(screen.PollEvent())
	}
	return nil
}

func (e *Editor) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.screen.Sync()
	case *tcell.EventKey:
		e.handleKey(ev)
	case *tcell.EventMouse:
		e.handleMouse(ev)
	}
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	if e.input != nil {
		e.handleInputKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.quit = true
		return
	case tcell.KeyUp:
		e.camY -= unitsPerCellY * 2
		return
	case tcell.KeyDown:
		e.camY += unitsPerCellY * 2
		return
	case tcell.KeyLeft:
		e.camX -= unitsPerCellX * 4
		return
	case tcell.KeyRight:
		e.camX += unitsPerCellX * 4
		return
	}

	switch ev.Rune() {
	case 'q':
		e.quit = true
	case 's':
		e.saveScene()
	case 'a':
		e.addNote()
	case 'd':
		e.deleteSelected()
	case 'u':
		e.duplicateSelected()
	case 'm':
		e.cycleArrangement()
	case 'c':
		e.beginConnect()
	case 't':
		e.editTitle()
	case 'e':
		e.editDescription()
	case '+', '=':
		e.resizeSelected(resizeStep)
	case '-':
		e.resizeSelected(-resizeStep)
	}
}

// inputState is a line of text being typed into the status bar.
type inputState struct {
	prompt string
	buf    []rune
	commit func(string)
}

func (e *Editor) startInput(prompt, initial string, commit func(string)) {
	e.input = &inputState{prompt: prompt, buf: []rune(initial), commit: commit}
}

func (e *Editor) handleInputKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.input = nil
	case tcell.KeyEnter:
		in := e.input
		e.input = nil
		in.commit(string(in.buf))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.input.buf) > 0 {
			e.input.buf = e.input.buf[:len(e.input.buf)-1]
		}
	case tcell.KeyRune:
		e.input.buf = append(e.input.buf, ev.Rune())
	}
}

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	p := e.sceneAt(cx, cy)

	switch {
	case ev.Buttons()&tcell.Button1 != 0 && e.dragging == nil:
		e.beginDrag(p)
	case ev.Buttons()&tcell.Button1 != 0 && e.dragging != nil:
		e.continueDrag(p)
	case e.dragging != nil:
		e.endDrag(p)
	}
}

// beginDrag grabs the topmost note under the pointer, or completes a
// pending connection if one was started.
func (e *Editor) beginDrag(p geometry.Point) {
	n := e.scn.NodeAt(p, nil)
	if n == nil {
		e.selected = nil
		e.connectFrom = nil
		return
	}

	if e.connectFrom != nil && e.connectFrom != n {
		if _, err := e.scn.Connect(e.connectFrom, n, ""); err != nil {
			e.logger.Warn("connect failed", "err", err)
		} else {
			e.dirty = true
			e.setStatus(fmt.Sprintf("connected %q to %q", title(e.connectFrom), title(n)))
		}
		e.connectFrom = nil
		return
	}

	e.selected = n
	e.dragging = n
	origin := n.ScenePos()
	e.dragOffset = p.Sub(origin)
	e.scn.RaiseToTop(n)
}

// continueDrag moves the grabbed note and runs the live containment
// behavior: soft clamping, auto-detach, and list-mode snapping.
func (e *Editor) continueDrag(p geometry.Point) {
	n := e.dragging
	want := p.Sub(e.dragOffset)

	// Scene target converted into the node's own coordinate space.
	if parent := n.Parent(); parent != nil {
		origin := parent.ScenePos()
		n.SetPos(want.X-origin.X, want.Y-origin.Y)
	} else {
		n.SetPos(want.X, want.Y)
	}

	if e.resolver.DragUpdate(n) {
		e.logger.Info("detached by drag", "note", title(n))
	}
	e.dropTarget = e.resolver.DropTarget(n, p)
	e.dirty = true
}

// endDrag drops the note: reorder in place for list-mode containers,
// otherwise resolve the containment transition for the release point.
func (e *Editor) endDrag(p geometry.Point) {
	n := e.dragging
	e.dragging = nil
	e.dropTarget = nil

	d := e.resolver.ResolveDrop(n, p)
	if parent := n.Parent(); d.Outcome == containment.Stay && parent != nil && parent.Arrangement != scene.ArrangeFree {
		idx := e.engine.InsertionIndex(n)
		e.engine.ReorderAt(n, idx)
		e.setStatus(fmt.Sprintf("moved %q to position %d", title(n), idx+1))
		return
	}

	applied := e.resolver.ApplyDrop(n, p)
	switch applied.Outcome {
	case containment.Enter:
		e.logger.Info("entered container", "note", title(n), "container", title(applied.Parent))
		e.setStatus(fmt.Sprintf("%q entered %q", title(n), title(applied.Parent)))
	case containment.Detach:
		e.logger.Info("detached", "note", title(n))
		e.setStatus(fmt.Sprintf("%q detached", title(n)))
	}
}

// addNote creates a note at the view center, nudged to a clear position.
func (e *Editor) addNote() {
	w, h := e.screen.Size()
	center := e.sceneAt(w/2, h/2)
	n := e.scn.NewNode(center.X, center.Y)
	n.SetTitle(fmt.Sprintf("Note %d", len(e.scn.TopLevel())))

	if pos, err := e.solver.NearestFreePosition(n, e.scn.TopLevel()); err == nil {
		n.SetPos(pos.X, pos.Y)
	}
	e.scn.RefreshColors()
	e.selected = n
	e.dirty = true
	e.setStatus(fmt.Sprintf("added %q", title(n)))
}

func (e *Editor) deleteSelected() {
	if e.selected == nil {
		return
	}
	parent := e.selected.Parent()
	e.setStatus(fmt.Sprintf("deleted %q", title(e.selected)))
	e.scn.Delete(e.selected)
	e.selected = nil
	e.dirty = true
	if parent != nil {
		e.engine.CheckAndResize(parent)
	}
}

func (e *Editor) duplicateSelected() {
	if e.selected == nil {
		return
	}
	c := e.scn.Duplicate(e.selected)
	if pos, err := e.solver.NearestFreePosition(c, e.scn.TopLevel()); err == nil {
		c.SetPos(pos.X, pos.Y)
	}
	e.scn.RefreshColors()
	e.selected = c
	e.dirty = true
	e.setStatus(fmt.Sprintf("duplicated %q", title(c)))
}

// cycleArrangement steps the selected container through free, rows,
// columns and re-lays it out.
func (e *Editor) cycleArrangement() {
	n := e.selected
	if n == nil {
		return
	}
	next := map[scene.Arrangement]scene.Arrangement{
		scene.ArrangeFree:    scene.ArrangeRows,
		scene.ArrangeRows:    scene.ArrangeColumns,
		scene.ArrangeColumns: scene.ArrangeFree,
	}[n.Arrangement]
	e.engine.SetArrangement(n, next)
	e.dirty = true
	e.setStatus(fmt.Sprintf("%q arrangement: %s", title(n), next))
}

// resizeStep is the size change per resize keypress, in scene units.
const resizeStep = 20.0

func (e *Editor) editTitle() {
	n := e.selected
	if n == nil {
		return
	}
	e.startInput("title: ", n.Title, func(s string) {
		n.SetTitle(s)
		e.afterTextChange(n)
	})
}

func (e *Editor) editDescription() {
	n := e.selected
	if n == nil {
		return
	}
	e.startInput("description: ", n.Description, func(s string) {
		n.SetDescription(s)
		e.afterTextChange(n)
	})
}

// afterTextChange propagates a text edit: children move below the grown
// label area, then sizes re-derive for the node and its container.
func (e *Editor) afterTextChange(n *scene.Node) {
	e.engine.NudgeChildrenBelowHeader(n)
	e.engine.CheckAndResize(n)
	if p := n.Parent(); p != nil {
		e.engine.CheckAndResize(p)
	}
	e.dirty = true
	e.setStatus(fmt.Sprintf("edited %q", title(n)))
}

// resizeSelected grows or shrinks the selected note by one step in both
// dimensions and pushes any overlapped neighbors clear.
func (e *Editor) resizeSelected(delta float64) {
	n := e.selected
	if n == nil {
		return
	}
	oldW, oldH := n.Width, n.Height
	n.Resize(n.Width+delta, n.Height+delta)
	if n.Width == oldW && n.Height == oldH {
		return
	}

	obstacles := e.scn.TopLevel()
	if p := n.Parent(); p != nil {
		obstacles = p.Children()
	}
	e.solver.PushAway(n, oldW, oldH, obstacles)
	if p := n.Parent(); p != nil {
		e.engine.CheckAndResize(p)
	}
	e.dirty = true
	e.setStatus(fmt.Sprintf("resized %q to %.0fx%.0f", title(n), n.Width, n.Height))
}

func (e *Editor) beginConnect() {
	if e.selected == nil {
		return
	}
	e.connectFrom = e.selected
	e.setStatus(fmt.Sprintf("connecting from %q: click a target", title(e.selected)))
}

func (e *Editor) saveScene() {
	if e.save == nil {
		e.setStatus("no save destination")
		return
	}
	if err := e.save(); err != nil {
		e.logger.Error("save failed", "err", err)
		e.setStatus(fmt.Sprintf("save failed: %v", err))
		return
	}
	e.dirty = false
	e.setStatus(fmt.Sprintf("saved to %s", e.filePath))
}

// SetSave installs the function invoked by the save command.
func (e *Editor) SetSave(fn func() error) {
	e.save = fn
}

func (e *Editor) setStatus(s string) {
	e.status = s
}

// sceneAt converts a screen cell to scene coordinates.
func (e *Editor) sceneAt(cx, cy int) geometry.Point {
	return geometry.Point{
		X: float64(cx)*unitsPerCellX + e.camX,
		Y: float64(cy)*unitsPerCellY + e.camY,
	}
}

// cellAt converts scene coordinates to a screen cell.
func (e *Editor) cellAt(p geometry.Point) (int, int) {
	return int((p.X - e.camX) / unitsPerCellX), int((p.Y - e.camY) / unitsPerCellY)
}

func title(n *scene.Node) string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID[:8]
}
