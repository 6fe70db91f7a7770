package carousel

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

// State is the coarse state of a Selector.
type State int

const (
	StateEmpty State = iota // No items
	StateReady              // At least one item, position valid
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "empty"
}

// Option configures a Selector at construction.
type Option func(*Selector)

// WithClock sets the time source for fades and the default pager.
func WithClock(clock Clock) Option {
	return func(s *Selector) {
		s.clock = clock
	}
}

// WithResolver sets the resolver used for string resources in the item
// list named by Settings.ItemsPath.
func WithResolver(res Resolver) Option {
	return func(s *Selector) {
		s.resolver = res
	}
}

// WithLogger replaces the internal logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

// Selector is the selection state machine. It owns the item store and the
// current position, keeps the indicator strip and affordances in step with
// the position, and notifies a listener when the user lands on a new item.
//
// A Selector is driven from a single UI thread and is not safe for
// concurrent use.
type Selector struct {
	settings Settings
	style    ContentStyle
	clock    Clock
	resolver Resolver
	logger   *slog.Logger

	store    store
	position int

	strip IndicatorStrip
	left  *Affordance
	right *Affordance

	pager    PagingSurface
	bus      *Bus
	listener func(Item)
}

// New creates a selector. A nil pager selects a SlidePager configured from
// settings. When settings name an item list it is loaded immediately,
// prefixed with the unselected sentinel if both unselected strings are set.
func New(settings Settings, pager PagingSurface, opts ...Option) (*Selector, error) {
	settings = settings.withDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	style, err := settings.ContentStyle()
	if err != nil {
		return nil, err
	}

	s := &Selector{
		settings: settings,
		style:    style,
		clock:    SystemClock{},
		bus:      NewBus(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.GetInternalLogger()
	}
	if pager == nil {
		pager = NewSlidePager(settings.SlideDuration, s.clock)
	}

	s.pager = pager
	s.left = newAffordance(SideLeft, settings.FadeDuration)
	s.right = newAffordance(SideRight, settings.FadeDuration)
	s.strip.reset(0)

	s.bus.Subscribe(s.handle)
	s.pager.Attach(s, s.bus)

	if settings.ItemsPath != "" {
		items, err := LoadItemsFile(settings.ItemsPath, s.resolver)
		if err != nil {
			return nil, err
		}
		if settings.HasUnselectedItem() {
			sentinel := NewUnselectedItem(settings.UnselectedTitle, settings.UnselectedDescription)
			items = append([]Item{sentinel}, items...)
		}
		if err := s.SetItems(items...); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Settings returns the effective settings, defaults applied.
func (s *Selector) Settings() Settings {
	return s.settings
}

// Pager returns the paging surface.
func (s *Selector) Pager() PagingSurface {
	return s.pager
}

// Bus returns the event bus hosts publish AffordanceClicked on.
func (s *Selector) Bus() *Bus {
	return s.bus
}

// SetItems replaces all items and moves to the first one. The listener is
// not notified. Duplicate or incomparable values are rejected and leave the
// selector unchanged.
func (s *Selector) SetItems(items ...Item) error {
	if err := s.store.replace(items); err != nil {
		return err
	}

	s.position = 0
	s.strip.reset(s.store.generation)
	s.pager.Reload()

	if s.store.count() > 0 {
		s.strip.setActive(s.store.count(), 0)
	}
	s.refreshAffordances(false)

	s.logger.Debug("Selector items replaced",
		"count", s.store.count(),
		"generation", s.store.generation)

	if s.store.count() > 0 {
		s.pager.JumpTo(0, false)
	}
	return nil
}

// Items returns a copy of the items.
func (s *Selector) Items() []Item {
	return s.store.snapshot()
}

// Count returns the number of items.
func (s *Selector) Count() int {
	return s.store.count()
}

// Page implements PageSource.
func (s *Selector) Page(i int) Page {
	return Page{Index: i, Item: s.store.at(i), Style: s.style}
}

// State returns StateEmpty or StateReady.
func (s *Selector) State() State {
	if s.store.count() == 0 {
		return StateEmpty
	}
	return StateReady
}

// Position returns the current position, or -1 when empty.
func (s *Selector) Position() int {
	if s.store.count() == 0 {
		return -1
	}
	return s.position
}

// SelectedItem returns the item at the current position.
func (s *Selector) SelectedItem() (Item, error) {
	if s.store.count() == 0 {
		return Item{}, ErrEmptySelector
	}
	return s.store.at(s.position), nil
}

// HasSelection reports whether the current item is a real choice. It is
// false for an empty selector and while the unselected sentinel is shown.
func (s *Selector) HasSelection() bool {
	item, err := s.SelectedItem()
	return err == nil && item.IsReal()
}

// SelectItemAt asks the pager to move to position. The selection changes,
// and the listener fires, when the pager settles there.
func (s *Selector) SelectItemAt(position int, animate bool) error {
	if s.store.count() == 0 {
		return ErrEmptySelector
	}
	if position < 0 || position >= s.store.count() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, position, s.store.count())
	}
	s.pager.JumpTo(position, animate)
	return nil
}

// SelectItemWithValue selects the first item carrying value.
func (s *Selector) SelectItemWithValue(value any, animate bool) error {
	if s.store.count() == 0 {
		return ErrEmptySelector
	}
	index := s.store.indexOf(value)
	if index < 0 {
		return fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	return s.SelectItemAt(index, animate)
}

// SetOnItemSelectedListener registers the callback fired when the user
// lands on a different item. It replaces any previous listener; nil
// removes it. The listener is never fired for the initial item.
func (s *Selector) SetOnItemSelectedListener(listener func(Item)) {
	s.listener = listener
}

// ClickAffordance publishes a click on the given affordance.
func (s *Selector) ClickAffordance(side Side) {
	s.bus.Publish(AffordanceClicked{Side: side})
}

// Affordance returns the left or right affordance for drawing.
func (s *Selector) Affordance(side Side) *Affordance {
	if side == SideLeft {
		return s.left
	}
	return s.right
}

// Indicators returns the indicator strip for drawing.
func (s *Selector) Indicators() *IndicatorStrip {
	return &s.strip
}

// Style returns the content style applied to every page.
func (s *Selector) Style() ContentStyle {
	return s.style
}

// Update advances the pager and the affordance fades. It reports whether
// more frames are needed.
func (s *Selector) Update(now time.Time) bool {
	busy := s.pager.Update(now)
	if s.left.update(now) {
		busy = true
	}
	if s.right.update(now) {
		busy = true
	}
	return busy
}

func (s *Selector) handle(ev Event) {
	switch e := ev.(type) {
	case PageSettled:
		s.pageSettled(e.Index)
	case AffordanceClicked:
		s.affordanceClicked(e.Side)
	}
}

func (s *Selector) pageSettled(index int) {
	if s.store.count() == 0 || index == s.position || index < 0 || index >= s.store.count() {
		return
	}

	s.strip.setActive(s.store.count(), index)
	previous := s.position
	s.position = index
	s.refreshAffordances(true)

	item := s.store.at(index)
	s.logger.Debug("Selector position changed",
		"from", previous,
		"to", index,
		"value", item.Value)

	if s.listener != nil {
		s.listener(item)
	}
}

func (s *Selector) affordanceClicked(side Side) {
	aff := s.Affordance(side)
	if s.store.count() == 0 || !aff.Enabled() {
		return
	}

	target := s.position + 1
	if side == SideLeft {
		target = s.position - 1
	}
	if err := s.SelectItemAt(target, true); err != nil {
		s.logger.Debug("Ignoring affordance click", "side", side.String(), "error", err)
	}
}

// refreshAffordances applies the visibility rules for the current position:
// left is hidden on the first item, right on the last.
func (s *Selector) refreshAffordances(animate bool) {
	now := s.clock.Now()
	count := s.store.count()
	s.left.show(count > 0 && s.position >= 1, animate, now)
	s.right.show(count > 0 && s.position != count-1, animate, now)
}
