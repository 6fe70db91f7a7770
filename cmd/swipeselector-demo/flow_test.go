package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

const back = 0

// scripted plays a fixed list of moves, one per screen shown. A move of 0
// backs out; any other value moves the selector by that many items and
// confirms.
type scripted struct {
	t        *testing.T
	resolver carousel.Resolver
	moves    []int
	shown    []string
	resumed  map[string]int
}

func (s *scripted) show(st step, resume *carousel.SavedState) (stepResult, error) {
	s.t.Helper()
	if len(s.moves) == 0 {
		s.t.Fatalf("no move left for step %s", st.Name)
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	s.shown = append(s.shown, st.Name)

	sel, err := carousel.New(st.Settings, nil, carousel.WithResolver(s.resolver))
	if err != nil {
		return stepResult{}, err
	}
	if len(st.Items) > 0 {
		if err := sel.SetItems(st.Items...); err != nil {
			return stepResult{}, err
		}
	}
	if resume != nil {
		if s.resumed == nil {
			s.resumed = make(map[string]int)
		}
		s.resumed[st.Name] = resume.CurrentPosition
		if err := sel.RestoreState(*resume); err != nil {
			return stepResult{}, err
		}
	}

	if move == back {
		return stepResult{Back: true}, nil
	}
	if err := sel.SelectItemAt(sel.Position()+move, false); err != nil {
		return stepResult{}, err
	}
	item, err := sel.SelectedItem()
	if err != nil {
		return stepResult{}, err
	}
	return stepResult{Item: item, State: sel.SaveState()}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRunOrder(t *testing.T) {
	steps := builtinSteps()
	s := &scripted{t: t, moves: []int{2, back, 1, 3, 1}}

	result, err := runOrder(steps, s.show, newStateStore("", discardLogger()))
	if err != nil {
		t.Fatalf("runOrder() error = %v", err)
	}
	if result.Cancelled {
		t.Fatal("order cancelled")
	}

	wantShown := []string{"size", "toppings", "size", "toppings", "delivery"}
	if len(s.shown) != len(wantShown) {
		t.Fatalf("shown = %v, want %v", s.shown, wantShown)
	}
	for i := range wantShown {
		if s.shown[i] != wantShown[i] {
			t.Fatalf("shown = %v, want %v", s.shown, wantShown)
		}
	}
	if got := s.resumed["size"]; got != 2 {
		t.Errorf("size reopened at %d, want 2", got)
	}

	want := "Size: Large\nToppings: Hans' Meat Monster\nDelivery: Delivery"
	if got := summary(steps, result.Choices); got != want {
		t.Errorf("summary() = %q, want %q", got, want)
	}
}

func TestRunOrderCancelled(t *testing.T) {
	s := &scripted{t: t, moves: []int{1, back, back}}

	result, err := runOrder(builtinSteps(), s.show, newStateStore("", discardLogger()))
	if err != nil {
		t.Fatalf("runOrder() error = %v", err)
	}
	if !result.Cancelled {
		t.Error("Cancelled = false, want true")
	}
	if len(result.Choices) != 0 {
		t.Errorf("Choices = %v, want none", result.Choices)
	}
}

func TestRunOrderRemembersSteps(t *testing.T) {
	store := newStateStore(t.TempDir(), discardLogger())

	first := &scripted{t: t, moves: []int{4, 1, 1}}
	if _, err := runOrder(builtinSteps(), first.show, store); err != nil {
		t.Fatalf("first run: %v", err)
	}

	second := &scripted{t: t, moves: []int{-1, 1, -1}}
	result, err := runOrder(builtinSteps(), second.show, store)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	want := map[string]int{"size": 4, "toppings": 1, "delivery": 1}
	for name, pos := range want {
		if got, ok := second.resumed[name]; !ok || got != pos {
			t.Errorf("%s resumed at %d (%v), want %d", name, got, ok, pos)
		}
	}

	if got := summary(builtinSteps(), result.Choices); got != "Size: Large\nToppings: Uncle Bob's Special\nDelivery: No delivery" {
		t.Errorf("summary() = %q", got)
	}
}

func TestSummary(t *testing.T) {
	steps := builtinSteps()
	tests := []struct {
		name    string
		choices map[string]carousel.Item
		want    string
	}{
		{
			name: "nothing chosen",
			want: "No size selected.\nNo toppings selected.\nNo delivery selected.",
		},
		{
			name: "placeholder confirmed",
			choices: map[string]carousel.Item{
				"size":     steps[0].Items[0],
				"toppings": steps[1].Items[1],
				"delivery": steps[2].Items[0],
			},
			want: "No size selected.\nToppings: Aunt Emily's\nDelivery: No delivery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summary(steps, tt.choices); got != tt.want {
				t.Errorf("summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadSteps(t *testing.T) {
	dir := filepath.Join("testdata", "menu")
	steps, err := loadSteps(dir)
	if err != nil {
		t.Fatalf("loadSteps() error = %v", err)
	}

	catalog := carousel.NewCatalog(language.English)
	for _, name := range []string{"strings.en.toml", "strings.de.yaml"} {
		if err := catalog.LoadFile(filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}
	catalog.SetLanguages("de", "en")

	s := &scripted{t: t, resolver: catalog, moves: []int{1, 2, 1}}
	result, err := runOrder(steps, s.show, newStateStore("", discardLogger()))
	if err != nil {
		t.Fatalf("runOrder() error = %v", err)
	}

	size := result.Choices["size"]
	if size.Title != "Kindergröße" || size.Value != 0 {
		t.Errorf("size = %+v, want Kindergröße with value 0", size)
	}
	if size.Description != "For the small appetite. Can be shared by four toddlers." {
		t.Errorf("size description = %q, want the English fallback", size.Description)
	}
	if got := result.Choices["toppings"].Title; got != "Uncle Bob's Special" {
		t.Errorf("toppings = %q", got)
	}
	if got := result.Choices["delivery"]; got.Value != "delivery" || got.Title != "Lieferung" {
		t.Errorf("delivery = %+v", got)
	}
}

func TestLoadStepsMissing(t *testing.T) {
	if _, err := loadSteps(t.TempDir()); err == nil {
		t.Error("loadSteps() error = nil for an empty directory")
	}
}
