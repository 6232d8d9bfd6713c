package scene

import "notebox/geometry"

// Connection is a directed, optionally labelled edge between two nodes,
// referenced by identity so persisted scenes can restore edges after nodes.
type Connection struct {
	ID    string
	From  string
	To    string
	Label string
}

// Endpoints returns the connection's anchor points in scene coordinates,
// clipped to each node's shape outline so the line runs border to border.
// ok is false when either endpoint no longer resolves to a node.
func (s *Scene) Endpoints(c *Connection) (from, to geometry.Point, ok bool) {
	a := s.FindByID(c.From)
	b := s.FindByID(c.To)
	if a == nil || b == nil {
		return geometry.Point{}, geometry.Point{}, false
	}
	ar := a.SceneRect()
	br := b.SceneRect()
	ac := ar.Center()
	bc := br.Center()
	from = ShapeFor(a.Shape).EdgeIntersection(ar, ac, bc)
	to = ShapeFor(b.Shape).EdgeIntersection(br, bc, ac)
	return from, to, true
}
