package swipeselector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no such file")
	err := fmt.Errorf("rendering page: %w", NewInfrastructureError(OpLoadFont, cause))

	if !IsInfrastructureError(err) {
		t.Error("IsInfrastructureError = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got, want := NewInfrastructureError(OpLoadFont, cause).Error(), "swipeselector: load_font: no such file"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := NewInfrastructureError(OpPresent, nil).Error(), "swipeselector: present"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsCancelled(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrCancelled, true},
		{fmt.Errorf("size step: %w", ErrCancelled), true},
		{NewInfrastructureError(OpRender, nil), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := IsCancelled(tt.err); got != tt.want {
			t.Errorf("IsCancelled(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsSelectorError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"out of range", fmt.Errorf("restore: %w", carousel.ErrOutOfRange), true},
		{"duplicate value", carousel.ErrDuplicateValue, true},
		{"bad gravity", &carousel.InvalidConfigurationError{Field: "DescriptionGravity", Value: "up"}, true},
		{"markup", &carousel.MarkupParseError{Source: "sizes.xml", Err: errors.New("unexpected EOF")}, true},
		{"host failure", NewInfrastructureError(OpRender, nil), false},
		{"cancelled", ErrCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelectorError(tt.err); got != tt.want {
				t.Errorf("IsSelectorError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
