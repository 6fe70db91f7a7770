package carousel

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseGravity(t *testing.T) {
	tests := []struct {
		in      string
		want    Gravity
		wantErr bool
	}{
		{"", GravityUnspecified, false},
		{"start", GravityStart, false},
		{"CENTER", GravityCenter, false},
		{" end ", GravityEnd, false},
		{"left", GravityStart, false},
		{"middle", GravityUnspecified, true},
	}

	for _, tt := range tests {
		got, err := ParseGravity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGravity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGravity(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.wantErr && !IsInvalidConfiguration(err) {
			t.Errorf("ParseGravity(%q) error type = %T", tt.in, err)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		field    string
	}{
		{"valid", Settings{TitleStyle: "large", DescriptionGravity: "center"}, ""},
		{"bad title style", Settings{TitleStyle: "huge"}, "TitleStyle"},
		{"bad description style", Settings{DescriptionStyle: "tiny"}, "DescriptionStyle"},
		{"bad gravity", Settings{DescriptionGravity: "top"}, "DescriptionGravity"},
		{"negative fade", Settings{FadeDuration: -time.Second}, "FadeDuration"},
		{"negative slide", Settings{SlideDuration: -time.Millisecond}, "SlideDuration"},
		{"animations off", Settings{FadeDuration: NoAnimation, SlideDuration: NoAnimation}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			cfgErr, ok := err.(*InvalidConfigurationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *InvalidConfigurationError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestSettingsDefaults(t *testing.T) {
	s := Settings{IndicatorSize: 10}.withDefaults()

	if s.IndicatorSize != 10 {
		t.Errorf("IndicatorSize = %d, want 10", s.IndicatorSize)
	}
	if s.IndicatorMargin != DefaultIndicatorMargin {
		t.Errorf("IndicatorMargin = %d, want %d", s.IndicatorMargin, DefaultIndicatorMargin)
	}
	if s.FadeDuration != 120*time.Millisecond {
		t.Errorf("FadeDuration = %v, want 120ms", s.FadeDuration)
	}

	off := Settings{FadeDuration: NoAnimation, SlideDuration: 40 * time.Millisecond}.withDefaults()
	if off.FadeDuration != 0 || off.SlideDuration != 40*time.Millisecond {
		t.Errorf("durations = %v, %v, want 0, 40ms", off.FadeDuration, off.SlideDuration)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	files := map[string]string{
		"selector.toml": `indicator_size = 8
active_indicator_color = 0xFF8800
description_gravity = "center"
title_style = "xlarge"
items = "sizes.xml"
unselected_title = "Select a size"
unselected_description = "Start by swiping left."
fade_duration = "200ms"
`,
		"selector.yaml": `indicator_size: 8
active_indicator_color: 0xFF8800
description_gravity: center
title_style: xlarge
items: sizes.xml
unselected_title: Select a size
unselected_description: Start by swiping left.
fade_duration: 200ms
`,
	}

	dir := t.TempDir()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			s, err := LoadSettingsFile(path)
			if err != nil {
				t.Fatalf("LoadSettingsFile() error = %v", err)
			}
			if s.IndicatorSize != 8 || s.ActiveIndicatorColor != 0xFF8800 {
				t.Errorf("indicator = %d %#x", s.IndicatorSize, s.ActiveIndicatorColor)
			}
			if s.ItemsPath != filepath.Join(dir, "sizes.xml") {
				t.Errorf("ItemsPath = %q, want resolved against %s", s.ItemsPath, dir)
			}
			if s.FadeDuration != 200*time.Millisecond {
				t.Errorf("FadeDuration = %v, want 200ms", s.FadeDuration)
			}
			if !s.HasUnselectedItem() {
				t.Error("HasUnselectedItem() = false")
			}

			style, err := s.ContentStyle()
			if err != nil {
				t.Fatal(err)
			}
			if style.TitleStyle != TextStyleExtraLarge || style.DescriptionGravity != GravityCenter {
				t.Errorf("ContentStyle() = %+v", style)
			}
		})
	}
}

func TestLoadSettingsFileRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"typo.toml": "indicator_sise = 8\n",
		"typo.yaml": "indicator_sise: 8\n",
		"bad.toml":  "description_gravity = \"diagonal\"\n",
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadSettingsFile(path); !IsInvalidConfiguration(err) {
			t.Errorf("LoadSettingsFile(%s) error = %v, want InvalidConfigurationError", name, err)
		}
	}
}
