package progress

import (
	bubbles "github.com/charmbracelet/bubbles/progress"
)

// minBarWidth keeps bars legible on narrow terminals.
const minBarWidth = 10

// Glyphs returns the default bar renderer, backed by the bubbles
// progress widget rendered statically at the requested fraction.
func Glyphs() RenderFunc {
	model := bubbles.New(bubbles.WithDefaultGradient())
	return func(label string, fraction float64, width int) string {
		if fraction < 0 {
			fraction = 0
		}
		if fraction > 1 {
			fraction = 1
		}
		barWidth := width - len([]rune(label))
		if barWidth < minBarWidth {
			barWidth = minBarWidth
		}
		model.Width = barWidth
		return label + model.ViewAs(fraction)
	}
}
