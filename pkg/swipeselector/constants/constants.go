// Package constants defines shared constants, types, and configuration values
// used by the swipe selector hosts.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the SDL host.
const (
	EnvironmentEnvVar     = "ENVIRONMENT"
	BackgroundPathEnvVar  = "BACKGROUND_PATH"
	WindowWidthEnvVar     = "WINDOW_WIDTH"
	WindowHeightEnvVar    = "WINDOW_HEIGHT"
	FlipFaceButtonsEnvVar = "FLIP_FACE_BUTTONS"
	DebugEnvVar           = "SWIPESELECTOR_DEBUG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows the selector to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

var virtualButtonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
	VirtualButtonPower:      "Power",
}

func (vb VirtualButton) GetName() string {
	if name, ok := virtualButtonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// ParseVirtualButton looks a button up by the name GetName returns. Matching
// is exact; the second result is false for unknown names.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb, n := range virtualButtonNames {
		if n == name && vb != VirtualButtonUnassigned {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultRepeatDelay        = 300 * time.Millisecond
	DefaultRepeatInterval     = 150 * time.Millisecond
	DefaultTitleSpacing int32 = 5  // Vertical spacing below title text
	ChevronContentGap   int32 = 16 // Gap between a chevron and the page content
	DefaultFrameDelay         = 16 * time.Millisecond
)
