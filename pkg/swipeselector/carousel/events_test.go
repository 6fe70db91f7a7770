package carousel

import (
	"testing"
	"time"
)

func TestBusDeliversInOrderWithoutReentry(t *testing.T) {
	bus := NewBus()

	var log []string
	depth := 0
	bus.Subscribe(func(ev Event) {
		depth++
		defer func() { depth-- }()
		if depth > 1 {
			t.Errorf("handler re-entered for %#v", ev)
		}

		switch e := ev.(type) {
		case PageSettled:
			log = append(log, "settled")
			if e.Index == 0 {
				bus.Publish(AffordanceClicked{Side: SideRight})
				bus.Publish(PageSettled{Index: 1})
				if bus.Pending() != 2 {
					t.Errorf("Pending() = %d, want 2", bus.Pending())
				}
			}
		case AffordanceClicked:
			log = append(log, "clicked "+e.Side.String())
		}
	})

	bus.Publish(PageSettled{Index: 0})

	want := []string{"settled", "clicked right", "settled"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log = %v, want %v", log, want)
			break
		}
	}
	if bus.Pending() != 0 {
		t.Errorf("Pending() = %d after drain", bus.Pending())
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	for _, curve := range []Curve{LinearCurve, EaseOut, CubicBezier(0.42, 0, 0.58, 1)} {
		if curve(0) != 0 || curve(1) != 1 {
			t.Errorf("curve endpoints = %v, %v", curve(0), curve(1))
		}
		prev := 0.0
		for i := 1; i <= 10; i++ {
			v := curve(float64(i) / 10)
			if v < prev-1e-6 {
				t.Errorf("curve not monotonic at %d: %v < %v", i, v, prev)
			}
			prev = v
		}
	}
}

func TestTween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var tw tween
	tw.animate(0, 10, start, 100*time.Millisecond, LinearCurve)

	if tw.update(start.Add(50 * time.Millisecond)) {
		t.Error("update() finished early")
	}
	if tw.value != 5 {
		t.Errorf("value = %v, want 5", tw.value)
	}
	if !tw.update(start.Add(100 * time.Millisecond)) {
		t.Error("update() did not finish")
	}
	if tw.value != 10 || tw.running {
		t.Errorf("value = %v running = %v", tw.value, tw.running)
	}

	tw.animate(10, 0, start, 0, nil)
	if tw.value != 0 || tw.running {
		t.Errorf("zero duration: value = %v running = %v", tw.value, tw.running)
	}
}
