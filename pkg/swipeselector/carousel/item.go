// Package carousel implements the selection state machine behind a swipeable
// item selector: an ordered item store, a row of position indicators, the
// previous/next affordances and the paging surface contract that hosts
// (SDL, terminal) plug into.
//
// The package never draws anything. Hosts read the indicator markers and
// affordance alpha every frame and forward user input as events.
package carousel

import (
	"fmt"
	"reflect"
)

// UnselectedValue is the reserved value carried by the sentinel item that
// stands for "nothing chosen yet".
const UnselectedValue = -1

// Item is one selectable entry.
//
// Description is optional: an empty Description means the host hides the
// description region entirely. Image, when set, is drawn in place of the
// textual title; it is a file path, and paths ending in .svg are rasterized.
type Item struct {
	Value       any
	Title       string
	Description string
	Image       string
}

// NewItem creates an item with a textual title and description.
func NewItem(value any, title, description string) Item {
	return Item{Value: value, Title: title, Description: description}
}

// NewImageItem creates an item whose title is an image.
func NewImageItem(value any, image, description string) Item {
	return Item{Value: value, Image: image, Description: description}
}

// NewUnselectedItem creates the sentinel item shown before the user picks
// anything.
func NewUnselectedItem(title, description string) Item {
	return Item{Value: UnselectedValue, Title: title, Description: description}
}

// IsReal reports whether the item is a real choice rather than the
// unselected sentinel.
func (i Item) IsReal() bool {
	return !valuesEqual(i.Value, UnselectedValue)
}

// HasDescription reports whether the description region should be shown.
func (i Item) HasDescription() bool {
	return i.Description != ""
}

// HasImage reports whether the title is an image.
func (i Item) HasImage() bool {
	return i.Image != ""
}

func (i Item) String() string {
	return fmt.Sprintf("Item(%v, %q)", i.Value, i.Title)
}

// ContentKind tags the variant held by a Content.
type ContentKind int

const (
	ContentNone     ContentKind = iota // Absent
	ContentText                        // Literal text
	ContentImage                       // Image reference
	ContentResource                    // String resource id, resolved through a Resolver
)

func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentImage:
		return "image"
	case ContentResource:
		return "resource"
	default:
		return "none"
	}
}

// Content is the unresolved form of an item title or description.
type Content struct {
	Kind ContentKind
	Ref  string // text, image path or resource id depending on Kind
}

// Text wraps literal text.
func Text(s string) Content {
	return Content{Kind: ContentText, Ref: s}
}

// ImageRef wraps an image path.
func ImageRef(path string) Content {
	return Content{Kind: ContentImage, Ref: path}
}

// Resource wraps a string resource id.
func Resource(id string) Content {
	return Content{Kind: ContentResource, Ref: id}
}

// ItemSpec describes an item before its text has been resolved.
type ItemSpec struct {
	Value       any
	Title       Content
	Description Content
}

// Resolve turns the spec into a plain Item, looking up resource references
// through res. res may be nil when the spec holds no resource references.
func (s ItemSpec) Resolve(res Resolver) (Item, error) {
	item := Item{Value: s.Value}

	switch s.Title.Kind {
	case ContentImage:
		item.Image = s.Title.Ref
	case ContentNone:
	default:
		title, err := resolveText(s.Title, res)
		if err != nil {
			return Item{}, fmt.Errorf("title of item %v: %w", s.Value, err)
		}
		item.Title = title
	}

	switch s.Description.Kind {
	case ContentNone:
	case ContentImage:
		return Item{}, fmt.Errorf("description of item %v: image content is not supported", s.Value)
	default:
		desc, err := resolveText(s.Description, res)
		if err != nil {
			return Item{}, fmt.Errorf("description of item %v: %w", s.Value, err)
		}
		item.Description = desc
	}

	return item, nil
}

func resolveText(c Content, res Resolver) (string, error) {
	if c.Kind != ContentResource {
		return c.Ref, nil
	}
	if res == nil {
		return "", fmt.Errorf("resource %q: no resolver configured", c.Ref)
	}
	return res.Resolve(c.Ref)
}

// valuesEqual compares two opaque values without panicking on
// incomparable dynamic types.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func isComparable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}
