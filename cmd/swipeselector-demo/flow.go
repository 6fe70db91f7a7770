package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/router"
)

// stepInput is handed to a step screen by the router.
type stepInput struct {
	Resume *carousel.SavedState
}

// stepResult is what a step screen returns.
type stepResult struct {
	Back  bool
	Item  carousel.Item
	State carousel.SavedState
}

// selectFunc shows one selector and waits for the user. Hosts map their
// cancel error to stepResult.Back.
type selectFunc func(s step, resume *carousel.SavedState) (stepResult, error)

// stateStore keeps the selector state of each step between runs. A store
// without a directory remembers nothing.
type stateStore struct {
	dir    string
	logger *slog.Logger
}

func newStateStore(dir string, logger *slog.Logger) stateStore {
	return stateStore{dir: dir, logger: logger}
}

func (st stateStore) path(name string) string {
	return filepath.Join(st.dir, name+".state.toml")
}

// Load returns the saved state of a step, or nil when there is none.
func (st stateStore) Load(name string) *carousel.SavedState {
	if st.dir == "" {
		return nil
	}
	state, err := carousel.ReadStateFile(st.path(name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			st.logger.Warn("Ignoring unreadable step state", "step", name, "error", err)
		}
		return nil
	}
	return &state
}

// Save records the state of a step.
func (st stateStore) Save(name string, state carousel.SavedState) {
	if st.dir == "" {
		return
	}
	if err := carousel.WriteStateFile(st.path(name), state); err != nil {
		st.logger.Error("Failed to save step state", "step", name, "error", err)
	}
}

// orderResult is the outcome of the order flow.
type orderResult struct {
	Choices   map[string]carousel.Item
	Cancelled bool
}

// runOrder walks the steps with the router. Backing out of a step reopens
// the previous one where it was left; backing out of the first step
// cancels the order.
func runOrder(steps []step, show selectFunc, store stateStore) (orderResult, error) {
	result := orderResult{Choices: make(map[string]carousel.Item)}
	if len(steps) == 0 {
		return result, nil
	}

	r := router.New()
	for i, s := range steps {
		r.Register(router.Screen(i), s.Name, func(input any) (any, error) {
			return show(s, input.(stepInput).Resume)
		})
	}

	r.OnTransition(func(from router.Screen, res any, stack *router.Stack) (router.Screen, any) {
		out := res.(stepResult)
		s := steps[from]

		if out.Back {
			delete(result.Choices, s.Name)
			if entry := stack.Pop(); entry != nil {
				return entry.Screen, stepInput{Resume: entry.Resume}
			}
			result.Cancelled = true
			return router.ScreenExit, nil
		}

		result.Choices[s.Name] = out.Item
		state := out.State
		store.Save(s.Name, state)

		next := from + 1
		if int(next) >= len(steps) {
			return router.ScreenExit, nil
		}
		stack.Push(from, stepInput{}, &state)
		store.logger.Debug("Step confirmed", "step", s.Name, "item", out.Item.String(), "trail", trailNames(r, stack))
		return next, stepInput{Resume: store.Load(steps[next].Name)}
	})

	err := r.Run(0, stepInput{Resume: store.Load(steps[0].Name)})
	return result, err
}

func trailNames(r *router.Router, stack *router.Stack) []string {
	trail := stack.Trail()
	names := make([]string, len(trail))
	for i, screen := range trail {
		names[i] = r.Name(screen)
	}
	return names
}
