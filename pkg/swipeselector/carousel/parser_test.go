package carousel

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testStrings = ResolverFunc(func(id string) (string, error) {
	switch id {
	case "size_kids":
		return "Kids' size", nil
	case "size_kids_desc":
		return "For the small appetite.", nil
	}
	return "", fmt.Errorf("no string %q", id)
})

const sizesXML = `<?xml version="1.0" encoding="utf-8"?>
<items>
    <item value="0" title="@string/size_kids" description="@string/size_kids_desc" />
    <item value="1" title="Normal" description="Our most popular size." extra="ignored" />
    <group>
        <item value="large" title="Large"></item>
    </group>
</items>
`

func TestParseItems(t *testing.T) {
	items, err := ParseItems(strings.NewReader(sizesXML), testStrings)
	if err != nil {
		t.Fatalf("ParseItems() error = %v", err)
	}

	want := []Item{
		{Value: 0, Title: "Kids' size", Description: "For the small appetite."},
		{Value: 1, Title: "Normal", Description: "Our most popular size."},
		{Value: "large", Title: "Large"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %#v, want %#v", i, items[i], want[i])
		}
	}
}

func TestParseItemsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		res   Resolver
	}{
		{"unclosed element", `<items><item value="0" title="a">`, nil},
		{"mismatched tags", `<items><item value="0"></items>`, nil},
		{"unknown string", `<items><item value="0" title="@string/missing"/></items>`, testStrings},
		{"reference without resolver", `<items><item value="0" title="@string/size_kids"/></items>`, nil},
		{"nested items", `<items><item value="0"><item value="1"/></item></items>`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseItems(strings.NewReader(tt.input), tt.res)
			if !IsMarkupParseError(err) {
				t.Fatalf("ParseItems() error = %v, want MarkupParseError", err)
			}
			if items != nil {
				t.Errorf("ParseItems() returned %d items alongside the error", len(items))
			}
		})
	}
}

func TestLoadItemsFile(t *testing.T) {
	files := map[string]string{
		"sizes.xml": sizesXML,
		"sizes.yaml": `items:
  - value: 0
    title: "@string/size_kids"
    description: "@string/size_kids_desc"
  - value: 1
    title: Normal
    description: Our most popular size.
  - value: large
    title: Large
`,
		"sizes.toml": `[[item]]
value = 0
title = "@string/size_kids"
description = "@string/size_kids_desc"

[[item]]
value = 1
title = "Normal"
description = "Our most popular size."

[[item]]
value = "large"
title = "Large"
`,
	}

	dir := t.TempDir()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			items, err := LoadItemsFile(path, testStrings)
			if err != nil {
				t.Fatalf("LoadItemsFile() error = %v", err)
			}
			if len(items) != 3 {
				t.Fatalf("got %d items, want 3", len(items))
			}
			if items[0].Value != 0 || items[0].Title != "Kids' size" {
				t.Errorf("items[0] = %#v", items[0])
			}
			if items[2].Value != "large" || items[2].HasDescription() {
				t.Errorf("items[2] = %#v", items[2])
			}
		})
	}
}

func TestLoadItemsFileErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[[item]\nvalue = "), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{bad, filepath.Join(dir, "missing.xml"), filepath.Join(dir, "items.json")} {
		if _, err := LoadItemsFile(path, nil); !IsMarkupParseError(err) {
			t.Errorf("LoadItemsFile(%s) error = %v, want MarkupParseError", filepath.Base(path), err)
		}
	}
}

func TestNewLoadsItemsWithSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sizes.xml")
	if err := os.WriteFile(path, []byte(sizesXML), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := New(Settings{
		ItemsPath:             path,
		UnselectedTitle:       "Select a size",
		UnselectedDescription: "Start by swiping left.",
	}, nil, WithResolver(testStrings), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if s.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", s.Count())
	}
	if s.HasSelection() {
		t.Error("HasSelection() = true on the sentinel")
	}
	if err := s.SelectItemWithValue(0, false); err != nil {
		t.Fatal(err)
	}
	if !s.HasSelection() || s.Position() != 1 {
		t.Errorf("after select: HasSelection() = %v, Position() = %d", s.HasSelection(), s.Position())
	}

	// Only one of the two strings set: no sentinel.
	s, err = New(Settings{ItemsPath: path, UnselectedTitle: "Select a size"}, nil,
		WithResolver(testStrings), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3 without sentinel", s.Count())
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"int64", int64(3), 3},
		{"uint64", uint64(3), 3},
		{"uint64 beyond int", uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"whole float", 2.0, 2},
		{"fractional float", 2.5, 2.5},
		{"float beyond int", 1e19, 1e19},
		{"negative float beyond int", -1e19, -1e19},
		{"integer string", " 7 ", 7},
		{"text", "large", "large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeValue(tt.in); got != tt.want {
				t.Errorf("normalizeValue(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadItemsFileLargeValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.yaml")
	content := "items:\n  - value: 18446744073709551615\n    title: Party size\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadItemsFile(path, nil)
	if err != nil {
		t.Fatalf("LoadItemsFile() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !items[0].IsReal() {
		t.Errorf("item with value %v is not real", items[0].Value)
	}
	if items[0].Value != uint64(math.MaxUint64) {
		t.Errorf("Value = %#v, want uint64 max", items[0].Value)
	}
}
