package constants

// Text glyphs for the navigation affordances when no SVG is configured and
// the theme font has no icon coverage.
const (
	ChevronLeftGlyph  = "‹"
	ChevronRightGlyph = "›"
)

// Built-in chevron artwork, rasterized at the affordance size. Drawn white so
// the renderer can tint and fade them with color and alpha modulation.
const (
	ChevronLeftSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path fill="#FFFFFF" d="M15.41 7.41 14 6l-6 6 6 6 1.41-1.41L10.83 12z"/>
</svg>`

	ChevronRightSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path fill="#FFFFFF" d="M8.59 16.59 10 18l6-6-6-6-1.41 1.41L13.17 12z"/>
</svg>`
)
