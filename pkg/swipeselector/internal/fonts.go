package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

// FontSizes are point sizes before scaling, one per text style.
type FontSizes struct {
	Small      int
	Medium     int
	Large      int
	ExtraLarge int
}

var DefaultFontSizes = FontSizes{
	Small:      18,
	Medium:     22,
	Large:      28,
	ExtraLarge: 36,
}

type fontKey struct {
	path string
	size int
}

// FontSet opens fonts lazily and keeps them for the life of the window.
type FontSet struct {
	sizes FontSizes
	scale float64
	open  map[fontKey]*ttf.Font
}

var Fonts *FontSet

func initFonts(sizes FontSizes, scale float64) {
	Fonts = &FontSet{
		sizes: sizes,
		scale: scale,
		open:  make(map[fontKey]*ttf.Font),
	}
}

func closeFonts() {
	if Fonts == nil {
		return
	}
	for key, font := range Fonts.open {
		font.Close()
		delete(Fonts.open, key)
	}
}

// Size returns the scaled point size for a text style. fallback is used for
// carousel.TextStyleDefault.
func (f *FontSet) Size(style, fallback carousel.TextStyle) int {
	if style == carousel.TextStyleDefault {
		style = fallback
	}

	var size int
	switch style {
	case carousel.TextStyleSmall:
		size = f.sizes.Small
	case carousel.TextStyleLarge:
		size = f.sizes.Large
	case carousel.TextStyleExtraLarge:
		size = f.sizes.ExtraLarge
	default:
		size = f.sizes.Medium
	}
	return max(1, int(float64(size)*f.scale))
}

// Get returns the font at path in the given style. An empty path selects the
// theme font.
func (f *FontSet) Get(path string, style, fallback carousel.TextStyle) (*ttf.Font, error) {
	if path == "" {
		path = GetTheme().FontPath
	}
	key := fontKey{path: path, size: f.Size(style, fallback)}

	if font, ok := f.open[key]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(key.path, key.size)
	if err != nil {
		return nil, fmt.Errorf("open font %s at %dpt: %w", key.path, key.size, err)
	}
	logging.GetInternalLogger().Debug("Opened font", "path", key.path, "size", key.size)

	f.open[key] = font
	return font, nil
}
