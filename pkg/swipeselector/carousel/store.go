package carousel

import "fmt"

// store is the ordered item list owned by one Selector. It is replaced
// wholesale; generation increments on every replacement so that lazily
// built views know when to rebuild.
type store struct {
	items      []Item
	generation int
}

func (s *store) replace(items []Item) error {
	if err := validateItems(items); err != nil {
		return err
	}
	s.items = append([]Item(nil), items...)
	s.generation++
	return nil
}

func (s *store) count() int {
	return len(s.items)
}

func (s *store) at(position int) Item {
	return s.items[position]
}

// indexOf returns the first position holding value, or -1.
func (s *store) indexOf(value any) int {
	for i, item := range s.items {
		if valuesEqual(item.Value, value) {
			return i
		}
	}
	return -1
}

func (s *store) snapshot() []Item {
	return append([]Item(nil), s.items...)
}

func validateItems(items []Item) error {
	for i, item := range items {
		if !isComparable(item.Value) {
			return &InvalidConfigurationError{
				Field: "Item.Value",
				Value: fmt.Sprintf("%T", item.Value),
				Err:   fmt.Errorf("value of item %d is not comparable", i),
			}
		}
		for j := 0; j < i; j++ {
			if valuesEqual(items[j].Value, item.Value) {
				return fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateValue, item.Value, j, i)
			}
		}
	}
	return nil
}
