// Package contrast picks a readable text color for a given background.
//
// It uses the Rec. 601 luma weights as a perceptual brightness estimate. This is
// an approximation and makes no claim of WCAG AA/AAA contrast compliance.
package contrast

import "github.com/alexisbeaulieu97/pview/internal/palette"

// Dark returns the foreground used on bright backgrounds.
func Dark() palette.Color {
	return palette.RGB(0, 0, 0)
}

// Light returns the foreground used on dark backgrounds.
func Light() palette.Color {
	return palette.RGB(255, 255, 255)
}

// Threshold is the luminance above which a background counts as bright.
const Threshold = 0.5

// Luminance returns the perceptual brightness of c in [0, 1].
func Luminance(c palette.Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ForegroundFor returns Dark for bright backgrounds and Light otherwise.
func ForegroundFor(bg palette.Color) palette.Color {
	if Luminance(bg) > Threshold {
		return Dark()
	}
	return Light()
}
