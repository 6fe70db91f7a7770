package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel/carouseltest"
)

func sizes() []carousel.Item {
	return []carousel.Item{
		carousel.NewUnselectedItem("Pick a size", "Swipe left or right"),
		carousel.NewItem(0, "Small", "Serves one"),
		carousel.NewItem(1, "Medium", "Serves two"),
		carousel.NewItem(2, "Large", "Serves four"),
	}
}

func newTestModel(t *testing.T, opts Options) (Model, *carouseltest.FakeClock) {
	t.Helper()
	clock := carouseltest.NewFakeClock()
	opts.Clock = clock
	m, err := New("Pizza size", sizes(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 48, Height: 20})
	return updated.(Model), clock
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// settle delivers frames until the model stops asking for them.
func settle(t *testing.T, m Model, clock *carouseltest.FakeClock, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 100 {
			t.Fatal("animation never settled")
		}
		m, cmd = send(m, frameMsg(clock.Advance(frameInterval)))
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelEmpty(t *testing.T) {
	_, err := New("", nil, Options{Clock: carouseltest.NewFakeClock()})
	if !errors.Is(err, carousel.ErrEmptySelector) {
		t.Fatalf("err = %v, want ErrEmptySelector", err)
	}
}

func TestModelNavigation(t *testing.T) {
	var fired []any
	m, clock := newTestModel(t, Options{
		OnItemSelected: func(item carousel.Item) { fired = append(fired, item.Value) },
	})

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatal("expected an animation frame to be scheduled")
	}
	m = settle(t, m, clock, cmd)

	if got := m.Selector().Position(); got != 1 {
		t.Errorf("Position() = %d, want 1", got)
	}
	if len(fired) != 1 || fired[0] != 0 {
		t.Errorf("fired = %v, want [0]", fired)
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Small") || !strings.Contains(view, "Serves one") {
		t.Errorf("view does not show the Small page:\n%s", view)
	}

	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = settle(t, m, clock, cmd)
	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = settle(t, m, clock, cmd)

	if got := m.Selector().Position(); got != 1 {
		t.Errorf("Position() = %d, want 1", got)
	}
}

func TestModelBoundaries(t *testing.T) {
	m, clock := newTestModel(t, Options{})

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = settle(t, m, clock, cmd)
	if got := m.Selector().Position(); got != 0 {
		t.Errorf("Position() = %d after left on the first item, want 0", got)
	}

	view := ansi.Strip(m.View())
	if strings.Contains(view, "‹") {
		t.Errorf("left chevron shown on the first item:\n%s", view)
	}
	if !strings.Contains(view, "›") {
		t.Errorf("right chevron missing:\n%s", view)
	}
}

func TestModelConfirm(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		keys    []tea.KeyMsg
		wantNil bool
		want    any
	}{
		{
			name: "confirm the sentinel",
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			want: carousel.UnselectedValue,
		},
		{
			name:    "sentinel needs a choice",
			opts:    Options{RequireSelection: true},
			keys:    []tea.KeyMsg{{Type: tea.KeyEnter}},
			wantNil: true,
		},
		{
			name: "confirm mid slide",
			opts: Options{RequireSelection: true},
			keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyRight}, {Type: tea.KeySpace, Runes: []rune{' '}}},
			want: 1,
		},
		{
			name: "initial value",
			opts: Options{InitialValue: 2},
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			want: 2,
		},
		{
			name: "initial state",
			opts: Options{InitialState: &carousel.SavedState{CurrentPosition: 1}},
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.opts)

			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = send(m, k)
			}

			if tt.wantNil {
				if m.Result() != nil || isQuit(cmd) {
					t.Fatalf("Result() = %+v, want no result", m.Result())
				}
				return
			}
			if !isQuit(cmd) {
				t.Fatal("expected tea.Quit after confirm")
			}
			if got := m.Result().Item.Value; got != tt.want {
				t.Errorf("Result().Item.Value = %v, want %v", got, tt.want)
			}
			if m.Result().State.CurrentPosition != m.Result().Index {
				t.Errorf("State = %+v, want position %d", m.Result().State, m.Result().Index)
			}
		})
	}
}

func TestModelBack(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) || !m.Cancelled() {
		t.Fatal("esc did not cancel")
	}
	if m.Result() != nil {
		t.Errorf("Result() = %+v, want nil", m.Result())
	}
}

func TestModelMouse(t *testing.T) {
	m, clock := newTestModel(t, Options{})

	// Click on the right chevron column.
	m, cmd := send(m, tea.MouseMsg{X: 46, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = settle(t, m, clock, cmd)
	if got := m.Selector().Position(); got != 1 {
		t.Fatalf("Position() = %d after clicking right, want 1", got)
	}

	// Drag the page left by more than half its width.
	m, _ = send(m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for x := 29; x >= 5; x-- {
		clock.Advance(200 * time.Millisecond)
		m, _ = send(m, tea.MouseMsg{X: x, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	}
	m, cmd = send(m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease})
	m = settle(t, m, clock, cmd)
	if got := m.Selector().Position(); got != 2 {
		t.Fatalf("Position() = %d after dragging, want 2", got)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	short := ansi.Strip(m.View())
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	full := ansi.Strip(m.View())

	if short == full {
		t.Error("help toggle did not change the view")
	}
	if !strings.Contains(full, "choose") {
		t.Errorf("full help missing the confirm binding:\n%s", full)
	}
}
