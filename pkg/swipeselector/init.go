// Package swipeselector is the SDL2 host for the swipe selector: a full-screen
// carousel that shows one item per page, a row of position indicators and
// previous/next chevrons, driven by touch, mouse, keyboard or a game
// controller. It targets handheld Linux devices running custom firmware such
// as Cannoli and works on the desktop in development mode.
//
// The selection logic lives in the carousel package; this package draws it
// and feeds it input.
package swipeselector

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/constants"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/platform/cannoli"
)

// Options configures the SDL host initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color
	FontPath             string                 // Theme font; defaults to the Cannoli system font
	IsCannoli            bool                   // Enable Cannoli CFW theming
	IsHandheld           bool                   // Enable power button handling on TrimUI-style handhelds
	ControllerConfigFile string                 // Path to a TOML controller mapping file
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	LogLevel             string                 // Application log level ("debug", "info", "warn", "error")
	FlipFaceButtons      bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
}

var initialized bool

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before SwipeSelect.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		logging.SetRawLogLevel(options.LogLevel)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}

	// Set face button flip preference before input mapping is loaded
	internal.SetFlipFaceButtons(options.FlipFaceButtons)
	if options.ControllerConfigFile != "" {
		internal.SetInputMappingPath(options.ControllerConfigFile)
	}

	theme := cannoli.InitCannoliTheme(options.FontPath)
	if !options.IsCannoli && options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{}
	if options.IsHandheld {
		pbc = HandheldPowerButton()
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc); err != nil {
		logging.GetInternalLogger().Error("Failed to initialize SDL", "error", err)
		return NewInfrastructureError(OpInit, err)
	}

	initialized = true
	return nil
}

// HandheldPowerButton returns the power key configuration for TrimUI
// handhelds. TG5050 uses /dev/input/event2, all others use /dev/input/event1.
func HandheldPowerButton() internal.PowerButtonConfig {
	powerDevicePath := "/dev/input/event1"
	platformEnv := strings.ToUpper(os.Getenv("PLATFORM"))
	if strings.Contains(platformEnv, "TG5050") {
		powerDevicePath = "/dev/input/event2"
	}

	return internal.PowerButtonConfig{
		ButtonCode:      116,
		DevicePath:      powerDevicePath,
		ShortPressMax:   2 * time.Second,
		CoolDownTime:    1 * time.Second,
		SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
		ShutdownCommand: "/sbin/poweroff",
	}
}

// Close releases all SDL resources and shuts down the host.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if !initialized {
		logging.CloseLogger()
		return
	}
	internal.SDLCleanup()
	initialized = false
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// SetLogOutput replaces the console writer of both loggers. Terminal hosts
// pass io.Discard so logs do not land on the screen. Call before Init().
func SetLogOutput(w io.Writer) {
	logging.SetOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// When true, uses A=A, B=B, X=X, Y=Y instead of the default Nintendo-style swap.
// Can also be set via the FLIP_FACE_BUTTONS environment variable.
// Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	if w := internal.GetWindow(); w != nil {
		w.Window.Hide()
	}
}

// ShowWindow shows the application window.
func ShowWindow() {
	if w := internal.GetWindow(); w != nil {
		w.Window.Show()
	}
}
