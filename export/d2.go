package export

import (
	"fmt"
	"strings"

	"notebox/scene"
)

// D2Exporter exports scenes to D2 syntax. Containment maps to D2's nested
// block syntax, so container structure survives the export.
type D2Exporter struct{}

// NewD2Exporter creates a new D2 exporter
func NewD2Exporter() *D2Exporter {
	return &D2Exporter{}
}

// Export converts the scene to D2 syntax
func (e *D2Exporter) Export(s *scene.Scene) (string, error) {
	if s == nil {
		return "", fmt.Errorf("scene is nil")
	}
	if len(s.TopLevel()) == 0 {
		return "", fmt.Errorf("scene has no notes")
	}

	var sb strings.Builder

	// Assign short stable identifiers; the full dotted path is needed for
	// connections into nested blocks.
	ids := make(map[string]string)
	paths := make(map[string]string)
	counter := 0
	s.Walk(func(n *scene.Node) {
		counter++
		id := fmt.Sprintf("note_%d", counter)
		ids[n.ID] = id
		if p := n.Parent(); p != nil {
			paths[n.ID] = paths[p.ID] + "." + id
		} else {
			paths[n.ID] = id
		}
	})

	for i, n := range s.TopLevel() {
		if i > 0 {
			sb.WriteString("\n")
		}
		e.writeNode(&sb, n, ids, 0)
	}

	if len(s.Connections()) > 0 {
		sb.WriteString("\n")
	}
	for _, c := range s.Connections() {
		from, okFrom := paths[c.From]
		to, okTo := paths[c.To]
		if !okFrom || !okTo {
			continue
		}
		if c.Label != "" {
			sb.WriteString(fmt.Sprintf("%s -> %s: %s\n", from, to, e.escapeLabel(c.Label)))
		} else {
			sb.WriteString(fmt.Sprintf("%s -> %s\n", from, to))
		}
	}

	return sb.String(), nil
}

// writeNode emits one note as a D2 block, recursing into children.
func (e *D2Exporter) writeNode(sb *strings.Builder, n *scene.Node, ids map[string]string, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(fmt.Sprintf("%s%s: {\n", indent, ids[n.ID]))
	sb.WriteString(fmt.Sprintf("%s  label: %s\n", indent, e.escapeLabel(e.nodeLabel(n))))
	if shape := e.mapShape(n.Shape); shape != "" {
		sb.WriteString(fmt.Sprintf("%s  shape: %s\n", indent, shape))
	}
	if n.Color != "" {
		sb.WriteString(fmt.Sprintf("%s  style.fill: %q\n", indent, n.Color))
	}
	for _, c := range n.Children() {
		e.writeNode(sb, c, ids, depth+1)
	}
	sb.WriteString(indent + "}\n")
}

// nodeLabel extracts a label from a note
func (e *D2Exporter) nodeLabel(n *scene.Node) string {
	switch {
	case n.Title != "" && n.Description != "":
		return n.Title + "\\n" + n.Description
	case n.Title != "":
		return n.Title
	case n.Description != "":
		return n.Description
	default:
		return "Note"
	}
}

// escapeLabel escapes special characters in labels
func (e *D2Exporter) escapeLabel(label string) string {
	if strings.ContainsAny(label, ":-><|{}[]()\"") {
		label = strings.ReplaceAll(label, `\`, `\\`)
		label = strings.ReplaceAll(label, `"`, `\"`)
		return fmt.Sprintf("\"%s\"", label)
	}
	return label
}

// mapShape maps shape kinds to D2 shape names
func (e *D2Exporter) mapShape(kind scene.ShapeKind) string {
	switch kind {
	case scene.ShapeCircle:
		return "circle"
	case scene.ShapeDiamond:
		return "diamond"
	case scene.ShapeHexagon:
		return "hexagon"
	default:
		return "rectangle"
	}
}

// GetFileExtension returns the recommended file extension
func (e *D2Exporter) GetFileExtension() string {
	return ".d2"
}

// GetFormatName returns the format name
func (e *D2Exporter) GetFormatName() string {
	return "D2"
}
