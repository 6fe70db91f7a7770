package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

// TextWidth returns the rendered width of text, or 0 if it cannot be
// measured.
func TextWidth(font *ttf.Font, text string) int32 {
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// LineHeight returns the height of one line plus the line spacing used by
// wrapped text.
func LineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + h/5
}

// RenderText draws a single line at (x, y) and returns its size.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	if color.A < 255 {
		texture.SetAlphaMod(color.A)
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// WrapText breaks text into lines no wider than maxWidth. Explicit newlines
// are kept; a single word wider than maxWidth gets a line of its own.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	return wrapLines(text, maxWidth, func(s string) int32 { return TextWidth(font, s) })
}

func wrapLines(text string, maxWidth int32, measure func(string) int32) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measure(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// AlignX positions a line of lineWidth inside [x, x+width) according to
// gravity. Unspecified gravity centers.
func AlignX(gravity carousel.Gravity, x, width, lineWidth int32) int32 {
	switch gravity {
	case carousel.GravityStart:
		return x
	case carousel.GravityEnd:
		return x + width - lineWidth
	default:
		return x + (width-lineWidth)/2
	}
}

// WrappedTextHeight returns the height RenderWrappedText would use.
func WrappedTextHeight(font *ttf.Font, text string, width int32) int32 {
	return int32(len(WrapText(font, text, width))) * LineHeight(font)
}

// RenderWrappedText draws text wrapped to width, each line aligned by
// gravity, and returns the height used.
func RenderWrappedText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y, width int32, color sdl.Color, gravity carousel.Gravity) int32 {
	lineHeight := LineHeight(font)
	lines := WrapText(font, text, width)

	for i, line := range lines {
		lineX := AlignX(gravity, x, width, TextWidth(font, line))
		RenderText(renderer, font, line, lineX, y+int32(i)*lineHeight, color)
	}
	return int32(len(lines)) * lineHeight
}

// FillCircle draws a filled circle with horizontal spans.
func FillCircle(renderer *sdl.Renderer, cx, cy, radius int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for dy := -radius; dy <= radius; dy++ {
		dx := int32(0)
		for (dx+1)*(dx+1)+dy*dy <= radius*radius {
			dx++
		}
		renderer.DrawLine(cx-dx, cy+dy, cx+dx, cy+dy)
	}
}

// FillRoundedRect draws a filled rectangle whose corners are rounded by
// radius.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	radius = min(radius, rect.H/2, rect.W/2)

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&sdl.Rect{X: rect.X + radius, Y: rect.Y, W: rect.W - 2*radius, H: rect.H})
	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: radius, H: rect.H - 2*radius})
	renderer.FillRect(&sdl.Rect{X: rect.X + rect.W - radius, Y: rect.Y + radius, W: radius, H: rect.H - 2*radius})

	FillCircle(renderer, rect.X+radius, rect.Y+radius, radius, color)
	FillCircle(renderer, rect.X+rect.W-radius-1, rect.Y+radius, radius, color)
	FillCircle(renderer, rect.X+radius, rect.Y+rect.H-radius-1, radius, color)
	FillCircle(renderer, rect.X+rect.W-radius-1, rect.Y+rect.H-radius-1, radius, color)
}
