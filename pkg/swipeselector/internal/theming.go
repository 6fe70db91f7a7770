package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the selector screens.
// Colors are typically loaded from CFW theme files (Cannoli).
type Theme struct {
	AccentColor         sdl.Color // Footer button pills
	ButtonLabelColor    sdl.Color // Button label text inside pills
	TextColor           sdl.Color // Titles
	HintColor           sdl.Color // Descriptions and footer help text
	AffordanceColor     sdl.Color // Chevron tint
	BackgroundColor     sdl.Color // Screen background color
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// WithAlpha returns c with its alpha scaled by alpha in [0, 1].
func WithAlpha(c sdl.Color, alpha float64) sdl.Color {
	alpha = max(0, min(1, alpha))
	c.A = uint8(float64(c.A) * alpha)
	return c
}
