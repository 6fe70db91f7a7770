package router

import "github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"

// StackEntry is a screen the user went forward from. Resume holds the
// selector state that screen confirmed, so going back reopens the selector
// on the same item.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume *carousel.SavedState
}

// Stack is the back history of a Router. Transition functions push the
// screen they leave and pop to go back.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records that the user left screen, called with input, after
// confirming the selector state resume. resume may be nil.
func (s *Stack) Push(screen Screen, input any, resume *carousel.SavedState) {
	s.entries = append(s.entries, StackEntry{Screen: screen, Input: input, Resume: resume})
}

// Pop removes the most recent entry. It returns nil when there is no
// history, which transition functions usually turn into ScreenExit.
func (s *Stack) Pop() *StackEntry {
	top := s.Peek()
	if top == nil {
		return nil
	}
	entry := *top
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Trail lists the screens in the history, oldest first.
func (s *Stack) Trail() []Screen {
	trail := make([]Screen, len(s.entries))
	for i, e := range s.entries {
		trail[i] = e.Screen
	}
	return trail
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear drops the whole history.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
