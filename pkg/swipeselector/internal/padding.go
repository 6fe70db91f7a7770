package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// ContentPadding insets page content so it never runs under the chevrons:
// each side reserves the chevron width plus gap.
func ContentPadding(chevronWidth, gap, vertical int32) Padding {
	side := chevronWidth + gap
	return Padding{
		Top:    vertical,
		Right:  side,
		Bottom: vertical,
		Left:   side,
	}
}

// Inset returns the rectangle (x, y, w, h) shrunk by the padding. Width and
// height never go negative.
func (p Padding) Inset(x, y, w, h int32) (int32, int32, int32, int32) {
	return x + p.Left, y + p.Top, max(0, w-p.Left-p.Right), max(0, h-p.Top-p.Bottom)
}
