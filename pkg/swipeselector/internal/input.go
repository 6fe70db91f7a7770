package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/constants"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

// InputSource tells which kind of device produced an event.
type InputSource int

const (
	InputSourceKeyboard InputSource = iota
	InputSourceController
	InputSourceJoystick
	InputSourceHat
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  InputSource
}

// InputMapping maps physical inputs to virtual buttons. Keys are SDL key
// names ("Left", "Return"), game controller button names ("a", "dpleft"),
// raw joystick button numbers and hat directions ("up", "left").
type InputMapping struct {
	Keyboard         map[string]string `toml:"keyboard"`
	ControllerButton map[string]string `toml:"controller_button"`
	JoystickButton   map[string]string `toml:"joystick_button"`
	Hat              map[string]string `toml:"hat"`

	keys        map[sdl.Keycode]constants.VirtualButton
	controller  map[sdl.GameControllerButton]constants.VirtualButton
	joystick    map[uint8]constants.VirtualButton
	hatMappings map[uint8]constants.VirtualButton
}

// DefaultInputMapping returns the bindings used when no mapping file is
// configured. Face buttons follow the Nintendo layout unless flip is set.
func DefaultInputMapping(flip bool) InputMapping {
	confirm, back := "A", "B"
	alt1, alt2 := "X", "Y"
	if !flip {
		confirm, back = "B", "A"
		alt1, alt2 = "Y", "X"
	}

	return InputMapping{
		Keyboard: map[string]string{
			"Left":      "Left",
			"Right":     "Right",
			"Up":        "Up",
			"Down":      "Down",
			"A":         "A",
			"Return":    "A",
			"B":         "B",
			"Escape":    "B",
			"Backspace": "B",
			"X":         "X",
			"Y":         "Y",
			"Space":     "Start",
			"Tab":       "Select",
			"H":         "Menu",
		},
		ControllerButton: map[string]string{
			"dpleft":        "Left",
			"dpright":       "Right",
			"dpup":          "Up",
			"dpdown":        "Down",
			"a":             confirm,
			"b":             back,
			"x":             alt1,
			"y":             alt2,
			"leftshoulder":  "L1",
			"rightshoulder": "R1",
			"start":         "Start",
			"back":          "Select",
			"guide":         "Menu",
		},
		Hat: map[string]string{
			"up":    "Up",
			"down":  "Down",
			"left":  "Left",
			"right": "Right",
		},
	}
}

// LoadInputMapping reads a TOML mapping file. Sections that are missing
// fall back to the defaults.
func LoadInputMapping(path string, flip bool) (InputMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InputMapping{}, fmt.Errorf("failed to read input mapping: %w", err)
	}
	return ParseInputMapping(data, flip)
}

// ParseInputMapping decodes a TOML mapping and resolves every name.
func ParseInputMapping(data []byte, flip bool) (InputMapping, error) {
	var m InputMapping
	if _, err := toml.Decode(string(data), &m); err != nil {
		return InputMapping{}, fmt.Errorf("failed to parse input mapping: %w", err)
	}

	def := DefaultInputMapping(flip)
	if m.Keyboard == nil {
		m.Keyboard = def.Keyboard
	}
	if m.ControllerButton == nil {
		m.ControllerButton = def.ControllerButton
	}
	if m.Hat == nil {
		m.Hat = def.Hat
	}

	if err := m.compile(); err != nil {
		return InputMapping{}, err
	}
	return m, nil
}

func (m *InputMapping) compile() error {
	m.keys = make(map[sdl.Keycode]constants.VirtualButton)
	m.controller = make(map[sdl.GameControllerButton]constants.VirtualButton)
	m.joystick = make(map[uint8]constants.VirtualButton)
	m.hatMappings = make(map[uint8]constants.VirtualButton)

	for name, target := range m.Keyboard {
		vb, err := parseTarget("keyboard", name, target)
		if err != nil {
			return err
		}
		code := sdl.GetKeyFromName(name)
		if code == sdl.K_UNKNOWN {
			return fmt.Errorf("input mapping: unknown key %q", name)
		}
		m.keys[code] = vb
	}

	for name, target := range m.ControllerButton {
		vb, err := parseTarget("controller_button", name, target)
		if err != nil {
			return err
		}
		button := sdl.GameControllerGetButtonFromString(name)
		if int(button) == int(sdl.CONTROLLER_BUTTON_INVALID) {
			return fmt.Errorf("input mapping: unknown controller button %q", name)
		}
		m.controller[button] = vb
	}

	for name, target := range m.JoystickButton {
		vb, err := parseTarget("joystick_button", name, target)
		if err != nil {
			return err
		}
		var n uint8
		if _, err := fmt.Sscanf(name, "%d", &n); err != nil {
			return fmt.Errorf("input mapping: joystick button %q is not a number", name)
		}
		m.joystick[n] = vb
	}

	hats := map[string]uint8{
		"up":    sdl.HAT_UP,
		"down":  sdl.HAT_DOWN,
		"left":  sdl.HAT_LEFT,
		"right": sdl.HAT_RIGHT,
	}
	for name, target := range m.Hat {
		vb, err := parseTarget("hat", name, target)
		if err != nil {
			return err
		}
		hat, ok := hats[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("input mapping: unknown hat direction %q", name)
		}
		m.hatMappings[hat] = vb
	}

	return nil
}

func parseTarget(section, name, target string) (constants.VirtualButton, error) {
	vb, ok := constants.ParseVirtualButton(target)
	if !ok {
		return constants.VirtualButtonUnassigned, fmt.Errorf("input mapping: %s %q maps to unknown button %q", section, name, target)
	}
	return vb, nil
}

// InputProcessor turns SDL events into virtual button events.
type InputProcessor struct {
	mapping     InputMapping
	controllers map[sdl.JoystickID]*sdl.GameController
	joysticks   map[sdl.JoystickID]*sdl.Joystick
	lastHat     uint8
}

var (
	processor       *InputProcessor
	flipFaceButtons bool
	mappingPath     string
)

// SetFlipFaceButtons selects direct face button mapping. Must be called
// before InitInputProcessor.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

// SetInputMappingPath names a TOML mapping file. Must be called before
// InitInputProcessor.
func SetInputMappingPath(path string) {
	mappingPath = path
}

// InitInputProcessor loads the mapping and opens attached controllers.
func InitInputProcessor() {
	flip := flipFaceButtons || os.Getenv(constants.FlipFaceButtonsEnvVar) != ""

	mapping := DefaultInputMapping(flip)
	if mappingPath != "" {
		loaded, err := LoadInputMapping(mappingPath, flip)
		if err != nil {
			logging.GetInternalLogger().Error("Failed to load input mapping, using defaults", "path", mappingPath, "error", err)
		} else {
			mapping = loaded
		}
	}
	if err := mapping.compile(); err != nil {
		logging.GetInternalLogger().Error("Invalid default input mapping", "error", err)
	}

	processor = NewInputProcessor(mapping)
	processor.openControllers()
}

// NewInputProcessor creates a processor for a compiled mapping.
func NewInputProcessor(mapping InputMapping) *InputProcessor {
	return &InputProcessor{
		mapping:     mapping,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		joysticks:   make(map[sdl.JoystickID]*sdl.Joystick),
	}
}

// GetInputProcessor returns the processor created by Init.
func GetInputProcessor() *InputProcessor {
	return processor
}

func (p *InputProcessor) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.open(i)
	}
}

func (p *InputProcessor) open(index int) {
	if sdl.IsGameController(index) {
		if gc := sdl.GameControllerOpen(index); gc != nil {
			id := gc.Joystick().InstanceID()
			p.controllers[id] = gc
			logging.GetInternalLogger().Debug("Opened game controller", "name", gc.Name(), "id", id)
		}
		return
	}
	if js := sdl.JoystickOpen(index); js != nil {
		p.joysticks[js.InstanceID()] = js
		logging.GetInternalLogger().Debug("Opened joystick", "name", js.Name(), "id", js.InstanceID())
	}
}

// ProcessSDLEvent maps an SDL event. It returns nil for events that carry
// no virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		if vb, ok := p.mapping.keys[e.Keysym.Sym]; ok {
			return &Event{Button: vb, Pressed: e.State == sdl.PRESSED, Source: InputSourceKeyboard}
		}

	case *sdl.ControllerButtonEvent:
		if vb, ok := p.mapping.controller[sdl.GameControllerButton(e.Button)]; ok {
			return &Event{Button: vb, Pressed: e.State == sdl.PRESSED, Source: InputSourceController}
		}

	case *sdl.JoyButtonEvent:
		if _, isController := p.controllers[e.Which]; isController {
			return nil
		}
		if vb, ok := p.mapping.joystick[e.Button]; ok {
			return &Event{Button: vb, Pressed: e.State == sdl.PRESSED, Source: InputSourceJoystick}
		}

	case *sdl.JoyHatEvent:
		return p.processHat(e.Value)

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			p.open(int(e.Which))
		} else if e.Type == sdl.CONTROLLERDEVICEREMOVED {
			if gc, ok := p.controllers[e.Which]; ok {
				gc.Close()
				delete(p.controllers, e.Which)
			}
		}
	}
	return nil
}

// processHat reports a press for a newly pushed hat direction and a
// release when the hat returns to center.
func (p *InputProcessor) processHat(value uint8) *Event {
	previous := p.lastHat
	p.lastHat = value

	if value == sdl.HAT_CENTERED {
		if vb, ok := p.mapping.hatMappings[previous]; ok {
			return &Event{Button: vb, Pressed: false, Source: InputSourceHat}
		}
		return nil
	}
	if vb, ok := p.mapping.hatMappings[value]; ok {
		return &Event{Button: vb, Pressed: true, Source: InputSourceHat}
	}
	return nil
}

// CloseAllControllers closes every opened controller and joystick.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, gc := range processor.controllers {
		gc.Close()
		delete(processor.controllers, id)
	}
	for id, js := range processor.joysticks {
		js.Close()
		delete(processor.joysticks, id)
	}
}
