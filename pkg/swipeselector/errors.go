package swipeselector

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
)

var (
	// ErrCancelled is returned when the user backs out of a selector. It is
	// ordinary flow control, not a failure.
	ErrCancelled = errors.New("selection cancelled")

	// ErrNotInitialized is returned by screens called before Init.
	ErrNotInitialized = errors.New("swipeselector not initialized")
)

// Op names the host step an InfrastructureError happened in.
type Op string

const (
	OpInit        Op = "init"
	OpLoadFont    Op = "load_font"
	OpLoadChevron Op = "load_chevron"
	OpLoadImage   Op = "load_image"
	OpRender      Op = "render"
	OpPresent     Op = "present"
)

// InfrastructureError is a failure of the SDL host itself: a missing font,
// an image that will not decode, a renderer that refuses to draw. The
// selection state is fine when one of these comes back.
//
// Selector configuration and item list errors are never wrapped in an
// InfrastructureError; they come straight from the carousel package. See
// IsSelectorError.
type InfrastructureError struct {
	Op  Op
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swipeselector: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("swipeselector: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError wraps err as a failure of op.
func NewInfrastructureError(op Op, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError reports whether err came from the host.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled reports whether the user backed out.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsSelectorError reports whether err is a rejected configuration, a
// malformed item list or a bad position or value handed to the selector.
func IsSelectorError(err error) bool {
	return carousel.IsInvalidConfiguration(err) ||
		carousel.IsMarkupParseError(err) ||
		carousel.IsOutOfRange(err) ||
		carousel.IsValueNotFound(err) ||
		carousel.IsEmptySelector(err) ||
		errors.Is(err, carousel.ErrDuplicateValue)
}
