package scene

import "strings"

// TextMeasurer reports the rendered size of a text block. The layout engine
// never inspects glyphs itself; minimum node sizes are derived through this
// interface so the rendering toolkit can be swapped out.
type TextMeasurer interface {
	// MeasureText returns the width and height of text rendered with
	// wrapping at wrapWidth scene units. A wrapWidth of zero disables
	// wrapping. Empty text still occupies one line.
	MeasureText(text string, wrapWidth float64) (width, height float64)
}

// RuneMeasurer is a deterministic measurer using fixed per-rune metrics.
// It stands in for real font metrics in tests and in the terminal editor.
type RuneMeasurer struct {
	RuneWidth  float64 // advance per rune
	LineHeight float64 // height per wrapped line
}

// NewRuneMeasurer returns a measurer with metrics approximating an 11pt UI
// font.
func NewRuneMeasurer() RuneMeasurer {
	return RuneMeasurer{RuneWidth: 7, LineHeight: 18}
}

// MeasureText implements TextMeasurer.
func (m RuneMeasurer) MeasureText(text string, wrapWidth float64) (float64, float64) {
	lines := strings.Split(text, "\n")
	maxWidth := 0.0
	rows := 0
	for _, line := range lines {
		w := float64(len([]rune(line))) * m.RuneWidth
		if wrapWidth > 0 && w > wrapWidth {
			// Wrapped lines all take the full wrap width.
			perRow := int(wrapWidth / m.RuneWidth)
			if perRow < 1 {
				perRow = 1
			}
			n := len([]rune(line))
			rows += (n + perRow - 1) / perRow
			w = wrapWidth
		} else {
			rows++
		}
		if w > maxWidth {
			maxWidth = w
		}
	}
	if rows < 1 {
		rows = 1
	}
	return maxWidth, float64(rows) * m.LineHeight
}
