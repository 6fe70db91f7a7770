package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/constants"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

// Init brings up SDL, the window, input and fonts. A zero PowerButtonConfig
// disables power button handling.
func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); err != nil {
		logging.GetInternalLogger().Warn("Some image formats unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true}
		}
	}

	var err error
	window, err = initWindow(title, showBackground, winOpts)
	if err != nil {
		return err
	}

	initFonts(DefaultFontSizes, window.ScaleFactor())

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		window.initPowerButtonHandling(pbc)
	}

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	logging.CloseLogger()
}
