package internal

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/holoplot/go-evdev"
)

func TestPowerButtonClassify(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &powerButton{cfg: PowerButtonConfig{ShortPressMax: 2 * time.Second, CoolDownTime: time.Second}}

	if got := p.classify(500*time.Millisecond, now); got != PowerButtonSuspend {
		t.Errorf("short press = %v, want suspend", got)
	}
	if got := p.classify(3*time.Second, now); got != PowerButtonShutdown {
		t.Errorf("long press = %v, want shutdown", got)
	}

	p.coolUntil.Store(now.Add(time.Second))
	if got := p.classify(100*time.Millisecond, now.Add(500*time.Millisecond)); got != PowerButtonIgnore {
		t.Errorf("press during cool down = %v, want ignore", got)
	}
	if got := p.classify(100*time.Millisecond, now.Add(2*time.Second)); got != PowerButtonSuspend {
		t.Errorf("press after cool down = %v, want suspend", got)
	}
}

// fakeKeyDevice blocks in ReadOne until it is closed.
type fakeKeyDevice struct {
	reading chan struct{}
	closed  chan struct{}
	once    sync.Once
}

func newFakeKeyDevice() *fakeKeyDevice {
	return &fakeKeyDevice{reading: make(chan struct{}, 1), closed: make(chan struct{})}
}

func (d *fakeKeyDevice) ReadOne() (*evdev.InputEvent, error) {
	select {
	case d.reading <- struct{}{}:
	default:
	}
	<-d.closed
	return nil, os.ErrClosed
}

func (d *fakeKeyDevice) Close() error {
	d.once.Do(func() { close(d.closed) })
	return nil
}

func (d *fakeKeyDevice) isClosed() bool {
	select {
	case <-d.closed:
		return true
	default:
		return false
	}
}

func useOpener(t *testing.T, open func(string) (keyDevice, error)) {
	t.Helper()
	orig := openDevice
	openDevice = open
	t.Cleanup(func() { openDevice = orig })
}

func waitOrFail(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("power button reader did not return")
	}
}

func TestPowerButtonStopDuringOpen(t *testing.T) {
	device := newFakeKeyDevice()
	opening := make(chan struct{})
	release := make(chan struct{})
	useOpener(t, func(string) (keyDevice, error) {
		close(opening)
		<-release
		return device, nil
	})

	var wg sync.WaitGroup
	StartPowerButtonHandler(&wg, PowerButtonConfig{DevicePath: "/dev/input/event1"})
	<-opening
	StopPowerButtonHandler()
	close(release)

	waitOrFail(t, &wg)
	if !device.isClosed() {
		t.Error("device left open after stop")
	}
	if power.Load() != nil {
		t.Error("handler still registered after stop")
	}
}

func TestPowerButtonStopWhileReading(t *testing.T) {
	device := newFakeKeyDevice()
	useOpener(t, func(string) (keyDevice, error) { return device, nil })

	var wg sync.WaitGroup
	StartPowerButtonHandler(&wg, PowerButtonConfig{DevicePath: "/dev/input/event1"})
	<-device.reading
	StopPowerButtonHandler()

	waitOrFail(t, &wg)
	if !device.isClosed() {
		t.Error("device left open after stop")
	}
}

func TestPowerButtonOpenFailure(t *testing.T) {
	useOpener(t, func(string) (keyDevice, error) { return nil, errors.New("no such device") })

	var wg sync.WaitGroup
	StartPowerButtonHandler(&wg, PowerButtonConfig{DevicePath: "/dev/input/event9"})
	waitOrFail(t, &wg)
	StopPowerButtonHandler()
}
