package swipeselector

import (
	"testing"
	"unicode/utf8"
)

func TestLayoutFooter(t *testing.T) {
	measure := func(s string) int32 { return 10 * int32(utf8.RuneCountInString(s)) }

	items := []FooterHelpItem{
		{ButtonName: "B", HelpText: "Back"},
		{ButtonName: "Start", HelpText: "Order"},
	}
	slots, total := layoutFooter(items, 30, 8, measure)

	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if slots[0].pillWidth != 30 {
		t.Errorf("single letter pill width = %d, want pill height 30", slots[0].pillWidth)
	}
	if slots[1].pillWidth != 66 {
		t.Errorf("Start pill width = %d, want 66", slots[1].pillWidth)
	}

	// (30+8+40) + 16 + (66+8+50)
	if total != 218 {
		t.Errorf("total = %d, want 218", total)
	}
}
