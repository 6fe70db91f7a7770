package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/constants"
)

func TestDirectionalInputRepeats(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 100*time.Millisecond)

	if !d.SetHeld(constants.VirtualButtonRight, true, start) {
		t.Fatal("SetHeld(Right) = false")
	}
	if d.SetHeld(constants.VirtualButtonA, true, start) {
		t.Error("SetHeld(A) = true")
	}

	steps := []struct {
		at   time.Duration
		want Direction
	}{
		{100 * time.Millisecond, DirectionNone},
		{300 * time.Millisecond, DirectionRight},
		{350 * time.Millisecond, DirectionNone},
		{400 * time.Millisecond, DirectionRight},
		{500 * time.Millisecond, DirectionRight},
	}
	for _, s := range steps {
		if got := d.Update(start.Add(s.at)); got != s.want {
			t.Errorf("Update(+%v) = %v, want %v", s.at, got, s.want)
		}
	}

	d.SetHeld(constants.VirtualButtonRight, false, start.Add(time.Second))
	if got := d.Update(start.Add(2 * time.Second)); got != DirectionNone {
		t.Errorf("Update after release = %v", got)
	}
}
