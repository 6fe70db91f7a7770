package internal

import (
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

func TestWrapLines(t *testing.T) {
	// One unit per rune.
	measure := func(s string) int32 { return int32(utf8.RuneCountInString(s)) }

	tests := []struct {
		name  string
		text  string
		width int32
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "Thin crust", 10, []string{"Thin crust"}},
		{"wraps", "Thick and fluffy crust", 10, []string{"Thick and", "fluffy", "crust"}},
		{"newline", "one\n\ntwo", 10, []string{"one", "", "two"}},
		{"long word", "supercalifragilistic pie", 10, []string{"supercalifragilistic", "pie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLines(tt.text, tt.width, measure)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAlignX(t *testing.T) {
	tests := []struct {
		gravity carousel.Gravity
		want    int32
	}{
		{carousel.GravityStart, 10},
		{carousel.GravityCenter, 40},
		{carousel.GravityUnspecified, 40},
		{carousel.GravityEnd, 70},
	}

	for _, tt := range tests {
		if got := AlignX(tt.gravity, 10, 100, 40); got != tt.want {
			t.Errorf("AlignX(%v) = %d, want %d", tt.gravity, got, tt.want)
		}
	}
}

func TestContentPadding(t *testing.T) {
	p := ContentPadding(24, 16, 8)
	x, y, w, h := p.Inset(0, 0, 640, 480)
	if x != 40 || y != 8 || w != 560 || h != 464 {
		t.Errorf("Inset = (%d, %d, %d, %d), want (40, 8, 560, 464)", x, y, w, h)
	}

	_, _, w, h = p.Inset(0, 0, 50, 10)
	if w != 0 || h != 0 {
		t.Errorf("Inset of a tiny rect = %dx%d, want 0x0", w, h)
	}
}
