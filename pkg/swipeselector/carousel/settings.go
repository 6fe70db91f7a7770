package carousel

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Defaults for the configuration surface. Sizes are in density-independent
// pixels; hosts multiply by their scale factor.
const (
	DefaultIndicatorSize   int32 = 6
	DefaultIndicatorMargin int32 = 8
	DefaultFadeDuration          = 120 * time.Millisecond
	DefaultSlideDuration         = 250 * time.Millisecond

	// NoAnimation turns a fade or slide off; zero selects the default. In
	// settings files it is written "-1ns".
	NoAnimation time.Duration = -1
)

// Gravity is the horizontal alignment of the description text.
type Gravity int

const (
	GravityUnspecified Gravity = iota // Host default
	GravityStart
	GravityCenter
	GravityEnd
)

// ParseGravity maps a configuration string to a Gravity. The empty string is
// GravityUnspecified; "left" and "right" are accepted as aliases of start and
// end.
func ParseGravity(s string) (Gravity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GravityUnspecified, nil
	case "start", "left":
		return GravityStart, nil
	case "center", "centre":
		return GravityCenter, nil
	case "end", "right":
		return GravityEnd, nil
	default:
		return GravityUnspecified, &InvalidConfigurationError{
			Field: "DescriptionGravity",
			Value: s,
			Err:   errors.New(`use "start", "center", "end" or leave blank for default`),
		}
	}
}

func (g Gravity) String() string {
	switch g {
	case GravityStart:
		return "start"
	case GravityCenter:
		return "center"
	case GravityEnd:
		return "end"
	default:
		return ""
	}
}

// TextStyle names a font size step from the host theme.
type TextStyle int

const (
	TextStyleDefault TextStyle = iota
	TextStyleSmall
	TextStyleMedium
	TextStyleLarge
	TextStyleExtraLarge
)

// ParseTextStyle maps a configuration string to a TextStyle.
func ParseTextStyle(field, s string) (TextStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TextStyleDefault, nil
	case "small":
		return TextStyleSmall, nil
	case "medium":
		return TextStyleMedium, nil
	case "large":
		return TextStyleLarge, nil
	case "xlarge", "extra-large":
		return TextStyleExtraLarge, nil
	default:
		return TextStyleDefault, &InvalidConfigurationError{
			Field: field,
			Value: s,
			Err:   errors.New(`use "small", "medium", "large" or "xlarge"`),
		}
	}
}

// Settings is the configuration surface of a selector. Every field is
// optional; zero values fall back to DefaultSettings.
type Settings struct {
	IndicatorSize          int32  `toml:"indicator_size" yaml:"indicator_size"`
	IndicatorMargin        int32  `toml:"indicator_margin" yaml:"indicator_margin"`
	ActiveIndicatorColor   uint32 `toml:"active_indicator_color" yaml:"active_indicator_color"`
	InactiveIndicatorColor uint32 `toml:"inactive_indicator_color" yaml:"inactive_indicator_color"`

	// LeftGlyph and RightGlyph are either a short text glyph or a path to an
	// .svg file. Empty selects the built-in chevrons.
	LeftGlyph  string `toml:"left_glyph" yaml:"left_glyph"`
	RightGlyph string `toml:"right_glyph" yaml:"right_glyph"`

	FontPath           string `toml:"font_path" yaml:"font_path"`
	TitleStyle         string `toml:"title_style" yaml:"title_style"`
	DescriptionStyle   string `toml:"description_style" yaml:"description_style"`
	DescriptionGravity string `toml:"description_gravity" yaml:"description_gravity"`

	// ItemsPath points at a declarative item list (.xml, .yaml or .toml).
	ItemsPath string `toml:"items" yaml:"items"`

	// UnselectedTitle and UnselectedDescription, when both set, prefix the
	// item list with the unselected sentinel.
	UnselectedTitle       string `toml:"unselected_title" yaml:"unselected_title"`
	UnselectedDescription string `toml:"unselected_description" yaml:"unselected_description"`

	// FadeDuration and SlideDuration are zero for the defaults and
	// NoAnimation to change state immediately.
	FadeDuration  time.Duration `toml:"fade_duration" yaml:"fade_duration"`
	SlideDuration time.Duration `toml:"slide_duration" yaml:"slide_duration"`
}

// DefaultSettings returns the settings used for zero-valued fields.
func DefaultSettings() Settings {
	return Settings{
		IndicatorSize:          DefaultIndicatorSize,
		IndicatorMargin:        DefaultIndicatorMargin,
		ActiveIndicatorColor:   0xFFFFFF,
		InactiveIndicatorColor: 0x6E6E6E,
		FadeDuration:           DefaultFadeDuration,
		SlideDuration:          DefaultSlideDuration,
	}
}

// withDefaults fills zero-valued fields from DefaultSettings and turns
// NoAnimation into a zero duration.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.IndicatorSize <= 0 {
		s.IndicatorSize = d.IndicatorSize
	}
	if s.IndicatorMargin <= 0 {
		s.IndicatorMargin = d.IndicatorMargin
	}
	if s.ActiveIndicatorColor == 0 && s.InactiveIndicatorColor == 0 {
		s.ActiveIndicatorColor = d.ActiveIndicatorColor
		s.InactiveIndicatorColor = d.InactiveIndicatorColor
	}
	s.FadeDuration = animationDuration(s.FadeDuration, d.FadeDuration)
	s.SlideDuration = animationDuration(s.SlideDuration, d.SlideDuration)
	return s
}

func animationDuration(d, fallback time.Duration) time.Duration {
	switch d {
	case 0:
		return fallback
	case NoAnimation:
		return 0
	}
	return d
}

// Validate checks the enumerated fields.
func (s Settings) Validate() error {
	if _, err := s.ContentStyle(); err != nil {
		return err
	}
	if s.FadeDuration < 0 && s.FadeDuration != NoAnimation {
		return &InvalidConfigurationError{Field: "FadeDuration", Value: s.FadeDuration.String()}
	}
	if s.SlideDuration < 0 && s.SlideDuration != NoAnimation {
		return &InvalidConfigurationError{Field: "SlideDuration", Value: s.SlideDuration.String()}
	}
	return nil
}

// HasUnselectedItem reports whether the sentinel should be prefixed.
func (s Settings) HasUnselectedItem() bool {
	return s.UnselectedTitle != "" && s.UnselectedDescription != ""
}

// ContentStyle is the per-page text configuration handed to hosts.
type ContentStyle struct {
	FontPath           string
	TitleStyle         TextStyle
	DescriptionStyle   TextStyle
	DescriptionGravity Gravity
}

// ContentStyle resolves the textual fields of the settings.
func (s Settings) ContentStyle() (ContentStyle, error) {
	gravity, err := ParseGravity(s.DescriptionGravity)
	if err != nil {
		return ContentStyle{}, err
	}
	titleStyle, err := ParseTextStyle("TitleStyle", s.TitleStyle)
	if err != nil {
		return ContentStyle{}, err
	}
	descStyle, err := ParseTextStyle("DescriptionStyle", s.DescriptionStyle)
	if err != nil {
		return ContentStyle{}, err
	}
	return ContentStyle{
		FontPath:           s.FontPath,
		TitleStyle:         titleStyle,
		DescriptionStyle:   descStyle,
		DescriptionGravity: gravity,
	}, nil
}

// LoadSettingsFile reads settings from a .toml or .yaml file. Unknown keys
// are rejected. A relative ItemsPath or FontPath is resolved against the
// directory holding the settings file.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return Settings{}, &InvalidConfigurationError{Field: "file", Value: path, Err: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Settings{}, &InvalidConfigurationError{Field: "key", Value: undecoded[0].String(), Err: errors.New("unknown setting")}
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return Settings{}, &InvalidConfigurationError{Field: "file", Value: path, Err: err}
		}
	default:
		return Settings{}, &InvalidConfigurationError{Field: "file", Value: path, Err: errors.New("unsupported settings format")}
	}

	dir := filepath.Dir(path)
	s.ItemsPath = resolveRelative(dir, s.ItemsPath)
	s.FontPath = resolveRelative(dir, s.FontPath)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func resolveRelative(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
