package rendering

import (
	"math"
	"regexp"
)

// Zoom limits of the interactive preview.
const (
	MinZoom  = 0.4
	MaxZoom  = 1.5
	ZoomStep = 0.1
)

// ClampZoom limits z to [MinZoom, MaxZoom] and rounds it to two decimals so
// repeated steps do not accumulate float noise. Zero means no zoom.
func ClampZoom(z float64) float64 {
	if z == 0 || math.IsNaN(z) {
		return 1
	}
	z = math.Max(MinZoom, math.Min(MaxZoom, z))
	return math.Round(z*100) / 100
}

// ZoomIn increases z by one step.
func ZoomIn(z float64) float64 {
	return ClampZoom(z + ZoomStep)
}

// ZoomOut decreases z by one step.
func ZoomOut(z float64) float64 {
	return ClampZoom(z - ZoomStep)
}

// DefaultZoom picks the starting zoom for a viewport width in CSS pixels.
func DefaultZoom(viewportWidth int) float64 {
	switch {
	case viewportWidth >= 1280:
		return 0.9
	case viewportWidth >= 1024:
		return 0.7
	default:
		return 0.5
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ExportFilename derives the PDF filename from the person's name: every
// character outside [a-zA-Z0-9] becomes an underscore, and an empty name
// yields "Resume".
func ExportFilename(fullName string) string {
	base := nonAlphanumeric.ReplaceAllString(fullName, "_")
	if base == "" {
		base = "Resume"
	}
	return base + ".pdf"
}
