package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

// step is one selector of the order flow.
type step struct {
	Name     string // Settings file stem and state file stem
	Label    string // Shown in the summary ("Size: Large")
	Title    string
	Settings carousel.Settings
	Items    []carousel.Item
}

// stepNames lists the order flow in sequence.
var stepNames = []string{"size", "toppings", "delivery"}

// builtinSteps returns the pizza order with literal items.
func builtinSteps() []step {
	return []step{
		{
			Name:  "size",
			Label: "Size",
			Title: "Pizza size",
			Items: []carousel.Item{
				carousel.NewUnselectedItem("Select a size", "Start by swiping left."),
				carousel.NewItem(0, "Kids' size", "For the small appetite. Can be shared by four toddlers."),
				carousel.NewItem(1, "Normal", "Our most popular size. Ideal for kids before their growth spurt."),
				carousel.NewItem(2, "Large", "This is two times the normal size. Suits well for the hangover after a bachelor party."),
				carousel.NewItem(3, "Huge", "Suitable for families. Also perfect for a bigger appetite if your name happens to be Furious Pete."),
			},
		},
		{
			Name:  "toppings",
			Label: "Toppings",
			Title: "Toppings",
			Items: []carousel.Item{
				carousel.NewUnselectedItem("Select toppings", "Start by swiping left."),
				carousel.NewItem(0, "Aunt Emily's", "Strawberries, potatoes and cucumber. Just what Aunt Emily found in her backyard."),
				carousel.NewItem(1, "Uncle Bob's Special", "Ranch dressing, bacon, kebab and double pepperoni. And also some lettuce, because lettuce is healthy."),
				carousel.NewItem(2, "Hans' Meat Monster", "Ham, sauerbraten, salami and bratwurst. Hans likes his meat."),
				carousel.NewItem(3, "Andreis' Russian Style", "Whole pickles and sour cream. Prijatnovo appetita!"),
			},
		},
		{
			Name:  "delivery",
			Label: "Delivery",
			Title: "Delivery",
			Settings: carousel.Settings{
				DescriptionGravity: "start",
			},
			Items: []carousel.Item{
				carousel.NewItem(0, "No delivery", "Come to our lovely restaurant and pick up the pizza yourself."),
				carousel.NewItem(1, "Delivery", "Our minimum-wage delivery boy will bring you the pizza by his own scooter using his own gas money."),
			},
		},
	}
}

// loadSteps reads one settings file per step from dir. Each settings file
// names its item list; the items are parsed by the selector itself.
func loadSteps(dir string) ([]step, error) {
	defaults := builtinSteps()
	steps := make([]step, 0, len(stepNames))
	for i, name := range stepNames {
		settings, err := carousel.LoadSettingsFile(filepath.Join(dir, name+".toml"))
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", name, err)
		}
		if settings.ItemsPath == "" {
			return nil, fmt.Errorf("step %s: settings name no items file", name)
		}
		steps = append(steps, step{
			Name:     name,
			Label:    defaults[i].Label,
			Title:    defaults[i].Title,
			Settings: settings,
		})
	}
	return steps, nil
}

// summary mirrors the confirmation shown by the order form: one line per
// step, or a notice when the step was left on its placeholder.
func summary(steps []step, choices map[string]carousel.Item) string {
	lines := make([]string, 0, len(steps))
	for _, s := range steps {
		item, ok := choices[s.Name]
		if !ok || !item.IsReal() {
			lines = append(lines, fmt.Sprintf("No %s selected.", strings.ToLower(s.Label)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", s.Label, item.Title))
	}
	return strings.Join(lines, "\n")
}
