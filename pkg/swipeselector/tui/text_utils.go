package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

// VisualWidth returns the display width of text, accounting for multi-byte characters
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Wrap breaks text into lines of at most width cells on word boundaries.
// Words longer than width are broken mid-word. Explicit newlines are kept.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			for VisualWidth(word) > width {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				head := runewidth.Truncate(word, width, "")
				lines = append(lines, head)
				word = word[len(head):]
			}

			switch {
			case word == "":
			case current == "":
				current = word
			case VisualWidth(current)+1+VisualWidth(word) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// Align pads a possibly styled line to exactly width cells, placing it by
// gravity. Unspecified gravity centers. Lines wider than width are cut.
func Align(line string, width int, gravity carousel.Gravity) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "")
	}

	free := width - w
	var left int
	switch gravity {
	case carousel.GravityStart:
		left = 0
	case carousel.GravityEnd:
		left = free
	default:
		left = free / 2
	}
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", free-left)
}

// window cuts width cells out of line starting at column from.
func window(line string, from, width int) string {
	if from > 0 {
		line = ansi.TruncateLeft(line, from, "")
	}
	return ansi.Truncate(line, width, "")
}
