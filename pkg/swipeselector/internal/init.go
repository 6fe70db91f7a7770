// Package internal contains the SDL infrastructure behind the swipe selector
// screen: window and renderer setup, input processing, fonts, theming, image
// loading, and power button handling.
// Types and functions in this package are not part of the public API.
package internal
