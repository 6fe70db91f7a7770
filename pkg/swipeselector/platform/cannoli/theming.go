// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal"
)

// DefaultFontPath is where Cannoli installs its system font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return internal.Theme{
		AccentColor:      internal.HexToColor(0x008080),
		ButtonLabelColor: internal.HexToColor(0xFFFFFF),
		TextColor:        internal.HexToColor(0xFFFFFF),
		HintColor:        internal.HexToColor(0xB4B4B4),
		AffordanceColor:  internal.HexToColor(0xFFFFFF),
		BackgroundColor:  internal.HexToColor(0x000000),
		FontPath:         fontPath,
	}
}
