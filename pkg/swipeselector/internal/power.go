package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

// PowerButtonConfig describes how the handheld's power key is read and what
// a short or long press does.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code, 116 is KEY_POWER
	DevicePath      string        // e.g. /dev/input/event1
	ShortPressMax   time.Duration // Presses shorter than this suspend
	CoolDownTime    time.Duration // Presses are ignored this long after resume
	SuspendScript   string
	ShutdownCommand string
}

// PowerButtonAction is the outcome of one press.
type PowerButtonAction int

const (
	PowerButtonIgnore PowerButtonAction = iota
	PowerButtonSuspend
	PowerButtonShutdown
)

// powerButton holds the press state shared between the reader goroutine and
// shutdown.
type powerButton struct {
	cfg       PowerButtonConfig
	pressedAt time.Time
	coolUntil atomic.Time
	stopped   atomic.Bool

	mu     sync.Mutex
	device keyDevice
}

// keyDevice is the part of an evdev device the handler reads.
type keyDevice interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// power is the handler of the open window, nil when power handling is off.
var power atomic.Pointer[powerButton]

func newPowerButton(cfg PowerButtonConfig) *powerButton {
	return &powerButton{cfg: cfg}
}

// classify decides what a press that lasted held does at now.
func (p *powerButton) classify(held time.Duration, now time.Time) PowerButtonAction {
	if now.Before(p.coolUntil.Load()) {
		return PowerButtonIgnore
	}
	if held < p.cfg.ShortPressMax {
		return PowerButtonSuspend
	}
	return PowerButtonShutdown
}

// openDevice opens path in non-blocking mode so that Close interrupts a
// pending ReadOne. Tests replace it.
var openDevice = func(path string) (keyDevice, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	if err := device.NonBlock(); err != nil {
		device.Close()
		return nil, err
	}
	return device, nil
}

// StartPowerButtonHandler registers a handler for cfg and starts its reader.
// The handler is registered before the reader runs so that
// StopPowerButtonHandler always reaches it.
func StartPowerButtonHandler(wg *sync.WaitGroup, cfg PowerButtonConfig) {
	p := newPowerButton(cfg)
	power.Store(p)
	wg.Add(1)
	go p.listen(wg)
}

// listen reads the power key until the handler is stopped. It marks wg done
// on return.
func (p *powerButton) listen(wg *sync.WaitGroup) {
	defer wg.Done()
	logger := logging.GetInternalLogger()

	if p.stopped.Load() {
		return
	}
	device, err := openDevice(p.cfg.DevicePath)
	if err != nil {
		logger.Error("Failed to open power button device", "path", p.cfg.DevicePath, "error", err)
		return
	}
	p.mu.Lock()
	p.device = device
	p.mu.Unlock()
	defer p.closeDevice()
	// A stop that raced the open saw no device to close.
	if p.stopped.Load() {
		return
	}

	for !p.stopped.Load() {
		ev, err := device.ReadOne()
		if err != nil {
			if !p.stopped.Load() {
				logger.Error("Power button read failed", "error", err)
			}
			return
		}
		if ev.Type != evdev.EV_KEY || uint16(ev.Code) != p.cfg.ButtonCode {
			continue
		}

		now := time.Now()
		switch ev.Value {
		case 1:
			p.pressedAt = now
		case 0:
			if p.pressedAt.IsZero() {
				continue
			}
			action := p.classify(now.Sub(p.pressedAt), now)
			p.pressedAt = time.Time{}
			p.run(action)
		}
	}
}

func (p *powerButton) run(action PowerButtonAction) {
	logger := logging.GetInternalLogger()

	switch action {
	case PowerButtonSuspend:
		logger.Debug("Power button short press, suspending")
		if err := exec.Command(p.cfg.SuspendScript).Run(); err != nil {
			logger.Error("Suspend failed", "script", p.cfg.SuspendScript, "error", err)
		}
		p.coolUntil.Store(time.Now().Add(p.cfg.CoolDownTime))
	case PowerButtonShutdown:
		logger.Debug("Power button long press, shutting down")
		if err := exec.Command(p.cfg.ShutdownCommand).Run(); err != nil {
			logger.Error("Shutdown failed", "command", p.cfg.ShutdownCommand, "error", err)
		}
	}
}

func (p *powerButton) stop() {
	p.stopped.Store(true)
	p.closeDevice()
}

// closeDevice closes the device once, whichever of stop and listen gets
// there first.
func (p *powerButton) closeDevice() {
	p.mu.Lock()
	device := p.device
	p.device = nil
	p.mu.Unlock()
	if device != nil {
		device.Close()
	}
}

// StopPowerButtonHandler stops the registered handler and closes its device
// so the reader returns.
func StopPowerButtonHandler() {
	if p := power.Swap(nil); p != nil {
		p.stop()
	}
}
