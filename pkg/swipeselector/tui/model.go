// Package tui is the terminal host for the swipe selector. It renders the
// same carousel core as the SDL host with bubbletea: one page at a time,
// chevrons that fade at the ends and a row of position dots. Pages slide
// when the user pages with the arrow keys or drags with the mouse.
package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/constants"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

// ErrCancelled is returned by Run when the user backs out.
var ErrCancelled = errors.New("selection cancelled")

const (
	frameInterval = 16 * time.Millisecond
	chevronWidth  = 3
	minPageWidth  = 10
)

// Options configures a Model.
type Options struct {
	Settings         carousel.Settings
	Resolver         carousel.Resolver
	InitialState     *carousel.SavedState // Wins over InitialValue
	InitialValue     any
	RequireSelection bool // Ignore confirm on the unselected sentinel
	OnItemSelected   func(carousel.Item)
	Styles           *StyleConfig
	Clock            carousel.Clock
}

// Result is the outcome of a confirmed selection.
type Result struct {
	Item  carousel.Item
	Index int
	State carousel.SavedState
}

// frameMsg drives slide and fade animations.
type frameMsg time.Time

// Model is the bubbletea model of a selector screen.
type Model struct {
	title    string
	selector *carousel.Selector
	pager    *carousel.SlidePager
	clock    carousel.Clock
	styles   *StyleConfig
	keys     keyMap
	help     help.Model

	requireSelection bool

	width  int
	height int

	dragging bool
	dragX    int

	ticking   bool
	result    *Result
	cancelled bool
	err       error
}

// New creates a model showing items. When items is empty the list named by
// opts.Settings.ItemsPath is shown instead.
func New(title string, items []carousel.Item, opts Options) (Model, error) {
	clock := opts.Clock
	if clock == nil {
		clock = carousel.SystemClock{}
	}
	styles := opts.Styles
	if styles == nil {
		styles = DefaultStyles()
	}

	selector, err := carousel.New(opts.Settings, nil,
		carousel.WithClock(clock),
		carousel.WithResolver(opts.Resolver))
	if err != nil {
		return Model{}, err
	}
	if len(items) > 0 {
		if err := selector.SetItems(items...); err != nil {
			return Model{}, err
		}
	}
	if selector.Count() == 0 {
		return Model{}, carousel.ErrEmptySelector
	}

	switch {
	case opts.InitialState != nil:
		if err := selector.RestoreState(*opts.InitialState); err != nil {
			return Model{}, err
		}
	case opts.InitialValue != nil:
		if err := selector.SelectItemWithValue(opts.InitialValue, false); err != nil {
			return Model{}, err
		}
	}
	selector.SetOnItemSelectedListener(opts.OnItemSelected)

	pager, ok := selector.Pager().(*carousel.SlidePager)
	if !ok {
		return Model{}, fmt.Errorf("unexpected paging surface %T", selector.Pager())
	}

	return Model{
		title:            title,
		selector:         selector,
		pager:            pager,
		clock:            clock,
		styles:           styles,
		keys:             defaultKeyMap(),
		help:             help.New(),
		requireSelection: opts.RequireSelection,
		width:            60,
		height:           16,
	}, nil
}

// Init initializes the model. Required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the confirmed selection, or nil if the user has not
// confirmed.
func (m Model) Result() *Result {
	return m.result
}

// Cancelled reports whether the user backed out.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the error that ended the model, if any.
func (m Model) Err() error {
	return m.err
}

// Selector exposes the underlying selector.
func (m Model) Selector() *carousel.Selector {
	return m.selector
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.ticking = false
		m.selector.Update(m.clock.Now())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.step(-1)
		case key.Matches(msg, m.keys.Right):
			m.step(1)
		case key.Matches(msg, m.keys.Confirm):
			if m.confirm() {
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Back):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		m.mouse(msg)
	}

	return m, m.tick()
}

// tick schedules the next animation frame while anything is moving.
func (m *Model) tick() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) animating() bool {
	if m.pager.Animating() {
		return true
	}
	for _, side := range []carousel.Side{carousel.SideLeft, carousel.SideRight} {
		if m.selector.Affordance(side).Visibility() == carousel.Transitioning {
			return true
		}
	}
	return false
}

func (m *Model) step(delta int) {
	target := m.pager.Target() + delta
	if err := m.selector.SelectItemAt(target, true); err != nil && !carousel.IsOutOfRange(err) {
		logging.GetInternalLogger().Error("Failed to move selector", "target", target, "error", err)
	}
}

func (m *Model) confirm() bool {
	target := m.pager.Target()
	if m.requireSelection && !m.pager.Page(target).Item.IsReal() {
		return false
	}

	if target != m.selector.Position() {
		if err := m.selector.SelectItemAt(target, false); err != nil {
			m.err = err
			return true
		}
	}

	item, err := m.selector.SelectedItem()
	if err != nil {
		m.err = err
		return true
	}
	m.result = &Result{
		Item:  item,
		Index: m.selector.Position(),
		State: m.selector.SaveState(),
	}
	return true
}

func (m *Model) mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		// One border cell sits outside each chevron column.
		switch {
		case msg.X <= chevronWidth:
			m.selector.ClickAffordance(carousel.SideLeft)
		case msg.X >= m.width-chevronWidth-1:
			m.selector.ClickAffordance(carousel.SideRight)
		default:
			m.dragging = true
			m.dragX = msg.X
			m.pager.SetPageWidth(float64(m.pageWidth()))
			m.pager.BeginDrag()
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.pager.DragBy(float64(msg.X - m.dragX))
			m.dragX = msg.X
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.pager.EndDrag()
		}
	}
}

func (m Model) pageWidth() int {
	return max(minPageWidth, m.width-2*chevronWidth-2)
}

// View renders the selector.
func (m Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.styles.HeaderStyle().Render(m.title))
		b.WriteString("\n\n")
	}

	width := m.pageWidth()
	pages := m.renderPages(width)
	left, right := m.renderAffordances()

	middle := len(pages) / 2
	rows := make([]string, len(pages))
	for i, line := range pages {
		l, r := strings.Repeat(" ", chevronWidth), strings.Repeat(" ", chevronWidth)
		if i == middle {
			l, r = left, right
		}
		rows[i] = l + line + r
	}
	b.WriteString(m.styles.CardStyle().Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	b.WriteString(Align(m.renderIndicators(), width+2*chevronWidth+2, carousel.GravityCenter))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// renderPages draws the visible pages side by side and cuts the viewport
// out at the pager offset.
func (m Model) renderPages(width int) []string {
	visible := m.pager.VisiblePages()
	rendered := make([][]string, len(visible))
	height := 0
	for i, index := range visible {
		rendered[i] = m.renderPage(m.pager.Page(index), width)
		height = max(height, len(rendered[i]))
	}

	blank := strings.Repeat(" ", width)
	lines := make([]string, height)
	for row := range lines {
		var strip strings.Builder
		for _, page := range rendered {
			if row < len(page) {
				strip.WriteString(page[row])
			} else {
				strip.WriteString(blank)
			}
		}
		lines[row] = strip.String()
	}

	if len(visible) == 0 {
		return lines
	}
	from := int(math.Round((m.pager.Offset() - float64(visible[0])) * float64(width)))
	for row, line := range lines {
		lines[row] = Align(window(line, from, width), width, carousel.GravityStart)
	}
	return lines
}

// renderPage lays out one page as lines exactly width cells wide.
func (m Model) renderPage(page carousel.Page, width int) []string {
	item := page.Item
	style := page.Style
	inner := max(1, width-2)

	titleStyle := m.styles.TextStyle(style.TitleStyle, carousel.TextStyleExtraLarge, m.styles.TextPrimary)
	descStyle := m.styles.TextStyle(style.DescriptionStyle, carousel.TextStyleMedium, m.styles.TextSecondary)

	lines := []string{strings.Repeat(" ", width)}

	title := item.Title
	if item.HasImage() {
		title = "[" + item.Image + "]"
	}
	for _, line := range Wrap(title, inner) {
		lines = append(lines, " "+Align(titleStyle.Render(line), inner, carousel.GravityCenter)+" ")
	}

	if item.HasDescription() {
		lines = append(lines, strings.Repeat(" ", width))
		for _, line := range Wrap(item.Description, inner) {
			lines = append(lines, " "+Align(descStyle.Render(line), inner, style.DescriptionGravity)+" ")
		}
	}

	return append(lines, strings.Repeat(" ", width))
}

func (m Model) renderAffordances() (string, string) {
	settings := m.selector.Settings()
	return m.renderAffordance(carousel.SideLeft, settings.LeftGlyph, constants.ChevronLeftGlyph),
		m.renderAffordance(carousel.SideRight, settings.RightGlyph, constants.ChevronRightGlyph)
}

func (m Model) renderAffordance(side carousel.Side, glyph, fallback string) string {
	if glyph == "" || strings.HasSuffix(strings.ToLower(glyph), ".svg") {
		glyph = fallback
	}

	alpha := m.selector.Affordance(side).Alpha()
	if alpha <= 0 {
		return strings.Repeat(" ", chevronWidth)
	}

	style := lipgloss.NewStyle().Foreground(m.styles.AffordanceColor)
	if alpha < 1 {
		style = style.Faint(true)
	}
	return Align(style.Render(glyph), chevronWidth, carousel.GravityCenter)
}

func (m Model) renderIndicators() string {
	settings := m.selector.Settings()
	active := lipgloss.NewStyle().Foreground(hexColor(settings.ActiveIndicatorColor))
	inactive := lipgloss.NewStyle().Foreground(hexColor(settings.InactiveIndicatorColor))

	markers := m.selector.Indicators().Markers()
	dots := make([]string, len(markers))
	for i, marker := range markers {
		if marker.Active {
			dots[i] = active.Render("●")
		} else {
			dots[i] = inactive.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
