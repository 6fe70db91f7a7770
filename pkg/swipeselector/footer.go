package swipeselector

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal"
)

// FooterHelpItem is a button hint shown at the bottom of a screen, e.g.
// "A" "Choose".
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

type footerSlot struct {
	pillWidth  int32
	labelWidth int32
	textWidth  int32
}

func (s footerSlot) width(gap int32) int32 {
	return s.pillWidth + gap + s.textWidth
}

// layoutFooter measures every hint. Pills are at least as wide as they are
// tall so single-letter buttons render as circles.
func layoutFooter(items []FooterHelpItem, pillHeight, pillPadding int32, measure func(string) int32) ([]footerSlot, int32) {
	gap := pillPadding
	slots := make([]footerSlot, len(items))
	var total int32

	for i, item := range items {
		label := measure(item.ButtonName)
		slots[i] = footerSlot{
			pillWidth:  max(pillHeight, label+2*pillPadding),
			labelWidth: label,
			textWidth:  measure(item.HelpText),
		}
		total += slots[i].width(gap)
		if i > 0 {
			total += 2 * gap
		}
	}
	return slots, total
}

// renderFooter draws the hints centered along the bottom edge.
func renderFooter(window *internal.Window, font *ttf.Font, items []FooterHelpItem, margin int32) int32 {
	if len(items) == 0 || font == nil {
		return 0
	}

	renderer := window.Renderer
	theme := internal.GetTheme()

	textHeight := int32(font.Height())
	pillHeight := textHeight + window.Dp(6)
	pillPadding := window.Dp(8)

	slots, total := layoutFooter(items, pillHeight, pillPadding, func(s string) int32 {
		return internal.TextWidth(font, s)
	})

	x := (window.GetWidth() - total) / 2
	y := window.GetHeight() - margin - pillHeight
	textY := y + (pillHeight-textHeight)/2

	for i, item := range items {
		slot := slots[i]
		pill := sdl.Rect{X: x, Y: y, W: slot.pillWidth, H: pillHeight}
		internal.FillRoundedRect(renderer, pill, pillHeight/2, theme.AccentColor)
		internal.RenderText(renderer, font, item.ButtonName, x+(slot.pillWidth-slot.labelWidth)/2, textY, theme.ButtonLabelColor)

		internal.RenderText(renderer, font, item.HelpText, x+slot.pillWidth+pillPadding, textY, theme.HintColor)
		x += slot.width(pillPadding) + 2*pillPadding
	}

	return pillHeight + margin
}
