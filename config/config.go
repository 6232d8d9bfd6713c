// Package config holds the tuning constants of the layout engine and loads
// overrides from a TOML file. Every value that governs spacing, clamping, or
// search bounds lives here rather than being hard-coded in the engine.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tuning collects the engine's spacing and search parameters.
// Zero values are not meaningful; construct with Default and override.
type Tuning struct {
	// Padding is the spacing between children and the container margin.
	Padding float64 `toml:"padding"`

	// SiblingBuffer expands sibling rectangles when testing a grid slot,
	// so that placed notes keep a small gap.
	SiblingBuffer float64 `toml:"sibling_buffer"`

	// ElementPadding is the overlap buffer used on the free canvas
	// (spiral search and push-away).
	ElementPadding float64 `toml:"element_padding"`

	// DetachMargin is how far outside a free-mode container a child must be
	// dragged before it detaches.
	DetachMargin float64 `toml:"detach_margin"`

	// TopDetachSlack is extra tolerated overshoot above the text header
	// before a detach triggers.
	TopDetachSlack float64 `toml:"top_detach_slack"`

	// InnerMargin is how far a free-mode child may sit outside the strict
	// interior bounds before the soft clamp engages.
	InnerMargin float64 `toml:"inner_margin"`

	// Soft clamp factors for free-mode dragging. The child may overshoot
	// the strict interior bounds by these factors without detaching.
	SoftMinFactor      float64 `toml:"soft_min_factor"`
	SoftMaxFactor      float64 `toml:"soft_max_factor"`
	SoftNegativeFactor float64 `toml:"soft_negative_factor"`

	// MaxColumns caps the column count in columns mode.
	MaxColumns int `toml:"max_columns"`

	// GridMaxRows bounds the grid search for a free slot in a container.
	GridMaxRows int `toml:"grid_max_rows"`

	// SpiralMaxDistance bounds the free-canvas spiral search.
	SpiralMaxDistance float64 `toml:"spiral_max_distance"`

	// BaseWidth is the default width of a freshly created note.
	BaseWidth float64 `toml:"base_width"`

	// MinNodeWidth and MinNodeHeight floor node dimensions regardless of
	// text content.
	MinNodeWidth  float64 `toml:"min_node_width"`
	MinNodeHeight float64 `toml:"min_node_height"`

	// TextMarginX and TextMarginY pad the measured text when deriving a
	// node's minimum size.
	TextMarginX float64 `toml:"text_margin_x"`
	TextMarginY float64 `toml:"text_margin_y"`
}

// Default returns the tuning values of the original application.
func Default() Tuning {
	return Tuning{
		Padding:            20,
		SiblingBuffer:      5,
		ElementPadding:     10,
		DetachMargin:       100,
		TopDetachSlack:     50,
		InnerMargin:        30,
		SoftMinFactor:      0.9,
		SoftMaxFactor:      1.1,
		SoftNegativeFactor: 2,
		MaxColumns:         3,
		GridMaxRows:        10,
		SpiralMaxDistance:  300,
		BaseWidth:          200,
		MinNodeWidth:       100,
		MinNodeHeight:      60,
		TextMarginX:        40,
		TextMarginY:        30,
	}
}

// Load reads a TOML tuning file and merges it over the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading tuning file: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parsing tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects values the engine cannot work with.
func (t Tuning) Validate() error {
	if t.Padding < 0 {
		return fmt.Errorf("padding must be non-negative, got %v", t.Padding)
	}
	if t.MaxColumns < 1 {
		return fmt.Errorf("max_columns must be at least 1, got %d", t.MaxColumns)
	}
	if t.GridMaxRows < 1 {
		return fmt.Errorf("grid_max_rows must be at least 1, got %d", t.GridMaxRows)
	}
	if t.SpiralMaxDistance <= 0 {
		return fmt.Errorf("spiral_max_distance must be positive, got %v", t.SpiralMaxDistance)
	}
	if t.MinNodeWidth <= 0 || t.MinNodeHeight <= 0 {
		return fmt.Errorf("minimum node size must be positive, got %vx%v", t.MinNodeWidth, t.MinNodeHeight)
	}
	return nil
}
