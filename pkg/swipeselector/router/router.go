package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

var (
	ErrNoTransition  = errors.New("router: no transition function set")
	ErrNotRegistered = errors.New("router: screen not registered")
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
type Screen int

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
// It returns the next screen to navigate to and its input.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

type registration struct {
	name string
	fn   ScreenFunc
}

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Screen]registration
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]registration),
		stack:   NewStack(),
		logger:  logging.GetInternalLogger(),
	}
}

// Register adds a screen to the router. name only appears in logs and
// errors.
func (r *Router) Register(screen Screen, name string, fn ScreenFunc) *Router {
	r.screens[screen] = registration{name: name, fn: fn}
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Name returns the registered name of screen.
func (r *Router) Name(screen Screen) string {
	if screen == ScreenExit {
		return "exit"
	}
	if reg, ok := r.screens[screen]; ok && reg.name != "" {
		return reg.name
	}
	return fmt.Sprintf("screen %d", int(screen))
}

// Run starts the router at the given screen with the given input.
// It continues running until the transition function returns ScreenExit
// or a screen returns an error.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		reg, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("%w: %d", ErrNotRegistered, int(current))
		}

		result, err := reg.fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: %s: %w", r.Name(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		r.logger.Debug("Router transition",
			"from", r.Name(current),
			"to", r.Name(next),
			"depth", r.stack.Len())

		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}
