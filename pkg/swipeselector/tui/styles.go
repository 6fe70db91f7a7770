package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

// StyleConfig holds the colors of the terminal selector.
type StyleConfig struct {
	TitleColor      lipgloss.Color
	TextPrimary     lipgloss.Color
	TextSecondary   lipgloss.Color
	AffordanceColor lipgloss.Color
	BorderColor     lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		TitleColor:      lipgloss.Color("#8AB4F8"),
		TextPrimary:     lipgloss.Color("#E8EAED"),
		TextSecondary:   lipgloss.Color("#9AA0A6"),
		AffordanceColor: lipgloss.Color("#E8EAED"),
		BorderColor:     lipgloss.Color("#5F6368"),
	}
}

// HeaderStyle returns the style of the screen title.
func (s *StyleConfig) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.TitleColor).
		Bold(true).
		Padding(0, 1)
}

// CardStyle returns the frame drawn around the pages.
func (s *StyleConfig) CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.BorderColor)
}

// TextStyle maps a carousel text style to terminal attributes. Terminals
// have one font size, so larger styles get heavier emphasis.
func (s *StyleConfig) TextStyle(style, fallback carousel.TextStyle, color lipgloss.Color) lipgloss.Style {
	if style == carousel.TextStyleDefault {
		style = fallback
	}

	base := lipgloss.NewStyle().Foreground(color)
	switch style {
	case carousel.TextStyleSmall:
		return base.Faint(true)
	case carousel.TextStyleLarge:
		return base.Bold(true)
	case carousel.TextStyleExtraLarge:
		return base.Bold(true).Underline(true)
	default:
		return base
	}
}

// hexColor converts 0xRRGGBB to a lipgloss color.
func hexColor(rgb uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", rgb&0xFFFFFF))
}
