// Package export provides functionality to save scenes and export them to
// text-based diagram formats.
package export

import (
	"fmt"

	"notebox/scene"
)

// Format represents an export format
type Format string

const (
	// FormatJSON exports to the native JSON document format
	FormatJSON Format = "json"
	// FormatD2 exports to D2 diagram syntax
	FormatD2 Format = "d2"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a scene to the target format
	Export(s *scene.Scene) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatD2:
		return NewD2Exporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "d2":
		return FormatD2, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatJSON,
		FormatD2,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatJSON: "Native JSON document (round-trips the full scene)",
		FormatD2:   "D2 diagram syntax",
	}
}
