package export

import (
	"encoding/json"
	"fmt"
	"os"

	"notebox/config"
	"notebox/layout"
	"notebox/scene"
)

// document is the on-disk shape of a scene: a flat list of note records
// referencing their parents by id, plus the connections.
type document struct {
	Notes       []noteRecord `json:"notes"`
	Connections []connRecord `json:"connections,omitempty"`
}

// noteRecord stores one node. Coordinates are scene coordinates regardless
// of nesting, so a record is meaningful even if its parent goes missing.
type noteRecord struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Arrangement string  `json:"arrangement_mode"`
	Shape       string  `json:"shape"`
	Parent      string  `json:"parent,omitempty"`
	Z           float64 `json:"z_value"`
}

type connRecord struct {
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// Marshal serializes a scene to the JSON document format.
func Marshal(s *scene.Scene) ([]byte, error) {
	var doc document
	s.Walk(func(n *scene.Node) {
		pos := n.ScenePos()
		rec := noteRecord{
			ID:          n.ID,
			X:           pos.X,
			Y:           pos.Y,
			Width:       n.Width,
			Height:      n.Height,
			Title:       n.Title,
			Description: n.Description,
			Color:       n.Color,
			Arrangement: string(n.Arrangement),
			Shape:       string(n.Shape),
			Z:           n.Z,
		}
		if p := n.Parent(); p != nil {
			rec.Parent = p.ID
		}
		doc.Notes = append(doc.Notes, rec)
	})
	for _, c := range s.Connections() {
		doc.Connections = append(doc.Connections, connRecord{
			ID:    c.ID,
			From:  c.From,
			To:    c.To,
			Label: c.Label,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal reconstructs a scene from the JSON document format. Notes are
// created in a first pass and linked to their parents in a second, so
// records may appear in any order. A record whose parent id matches no note,
// or whose parent chain would close a cycle, stays top-level rather than
// failing the load. After linking, every
// container is re-laid-out bottom-up so loaded scenes satisfy the same
// layout invariants as edited ones.
func Unmarshal(data []byte, measure scene.TextMeasurer, tune config.Tuning) (*scene.Scene, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene document: %w", err)
	}

	s := scene.New(measure, tune)
	byID := make(map[string]*scene.Node, len(doc.Notes))
	for _, rec := range doc.Notes {
		if rec.ID == "" {
			return nil, fmt.Errorf("note record missing id")
		}
		if _, dup := byID[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate note id %q", rec.ID)
		}
		n := s.NewNodeWithID(rec.ID, rec.X, rec.Y)
		n.SetTitle(rec.Title)
		n.SetDescription(rec.Description)
		n.Resize(rec.Width, rec.Height)
		if rec.Color != "" {
			n.Color = rec.Color
		}
		if a := scene.Arrangement(rec.Arrangement); a.Valid() {
			n.Arrangement = a
		}
		if rec.Shape != "" {
			n.Shape = scene.ShapeKind(rec.Shape)
		}
		n.Z = rec.Z
		byID[rec.ID] = n
	}

	var maxZ *scene.Node
	for _, rec := range doc.Notes {
		n := byID[rec.ID]
		if parent, ok := byID[rec.Parent]; ok && rec.Parent != "" {
			// A link that would close a cycle is as corrupt as a missing
			// parent id; the note stays top-level.
			if err := s.SetParent(n, parent); err == nil {
				// Stored coordinates are scene coordinates; convert to local.
				origin := parent.ScenePos()
				n.SetPos(rec.X-origin.X, rec.Y-origin.Y)
				n.Z = rec.Z
			}
		}
		if n.Parent() == nil && (maxZ == nil || n.Z > maxZ.Z) {
			maxZ = n
		}
	}
	// Sync the z counter with the restored values.
	if maxZ != nil {
		s.RaiseToTop(maxZ)
	}

	for _, rec := range doc.Connections {
		from := byID[rec.From]
		to := byID[rec.To]
		if from == nil || to == nil {
			continue
		}
		if _, err := s.Connect(from, to, rec.Label); err != nil {
			return nil, fmt.Errorf("restoring connection %q: %w", rec.ID, err)
		}
	}

	layout.New(tune).ArrangeScene(s)
	s.RefreshColors()
	return s, nil
}

// Save writes a scene to path in the JSON document format.
func Save(s *scene.Scene, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("serializing scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scene file: %w", err)
	}
	return nil
}

// Load reads a scene from path.
func Load(path string, measure scene.TextMeasurer, tune config.Tuning) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Unmarshal(data, measure, tune)
}

// JSONExporter exports scenes to the native JSON document format
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a scene to JSON
func (e *JSONExporter) Export(s *scene.Scene) (string, error) {
	data, err := Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
