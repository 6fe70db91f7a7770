package swipeselector

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/constants"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/internal/logging"
)

const (
	// dragSlop is how far, in window pixels, a pointer may travel before a
	// press stops counting as a tap.
	dragSlop = 8

	// Three pages of wrapped lines stay resident while sliding.
	pageTextureCacheSize = 64
)

// SwipeSelectSettings configures the SwipeSelect screen.
type SwipeSelectSettings struct {
	// Selector holds the carousel configuration: indicator look, chevrons,
	// fonts, item list file and animation timing.
	Selector carousel.Settings
	// Resolver looks up @string/ references in Selector.ItemsPath.
	Resolver carousel.Resolver

	ConfirmButton     constants.VirtualButton // Confirms the current item (default: VirtualButtonA)
	BackButton        constants.VirtualButton // Cancels (default: VirtualButtonB)
	ActionButton      constants.VirtualButton // Optional secondary action; unassigned disables it
	DisableBackButton bool

	// RequireSelection ignores confirm while the unselected sentinel is shown
	// or being slid to.
	RequireSelection bool

	// InitialState restores a position saved from an earlier result. It wins
	// over InitialValue.
	InitialState *carousel.SavedState
	InitialValue any

	// OnItemSelected is called each time the user lands on a different item.
	// It is not called for the initial item.
	OnItemSelected func(carousel.Item)

	FooterHelpItems []FooterHelpItem
}

// DefaultSwipeSelectSettings returns settings with the default buttons and
// footer hints.
func DefaultSwipeSelectSettings() SwipeSelectSettings {
	return SwipeSelectSettings{
		Selector:      carousel.DefaultSettings(),
		ConfirmButton: constants.VirtualButtonA,
		BackButton:    constants.VirtualButtonB,
		FooterHelpItems: []FooterHelpItem{
			{ButtonName: "B", HelpText: "Back"},
			{ButtonName: "A", HelpText: "Choose"},
		},
	}
}

type swipeSelectController struct {
	title    string
	selector *carousel.Selector
	pager    *carousel.SlidePager
	clock    carousel.Clock
	settings SwipeSelectSettings

	directional   internal.DirectionalInput
	inputDelay    time.Duration
	lastInputTime time.Time

	pointerDown   bool
	pointerStartX int32
	pointerLastX  int32
	pointerMoved  bool
	leftHit       sdl.Rect
	rightHit      sdl.Rect

	textures *internal.TextureCache
	chevrons [2]*sdl.Texture

	confirmed bool
	triggered bool
	cancelled bool
	err       error
}

// SwipeSelect shows items one page at a time and blocks until the user
// confirms, triggers the action button or goes back. When items is empty the
// list named by settings.Selector.ItemsPath is shown instead.
//
// Returns ErrCancelled if the user presses the back button. Configuration and
// item list errors are returned unchanged from the carousel package.
func SwipeSelect(title string, items []carousel.Item, settings SwipeSelectSettings) (*SwipeSelectResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, ErrNotInitialized
	}

	c, err := newSwipeSelectController(title, items, settings, carousel.SystemClock{})
	if err != nil {
		return nil, err
	}
	defer c.destroy()

	for !c.done() {
		event := sdl.WaitEventTimeout(int(constants.DefaultFrameDelay.Milliseconds()))
		now := c.clock.Now()

		for ; event != nil; event = sdl.PollEvent() {
			c.handleEvent(event, now)
		}
		if c.done() {
			break
		}

		if dir := c.directional.Update(now); dir != internal.DirectionNone {
			c.step(dir)
		}
		c.selector.Update(now)

		c.render(window)
		window.Present()
	}

	return c.result()
}

func newSwipeSelectController(title string, items []carousel.Item, settings SwipeSelectSettings, clock carousel.Clock) (*swipeSelectController, error) {
	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonA
	}
	if settings.BackButton == constants.VirtualButtonUnassigned {
		settings.BackButton = constants.VirtualButtonB
	}

	selector, err := carousel.New(settings.Selector, nil,
		carousel.WithClock(clock),
		carousel.WithResolver(settings.Resolver))
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := selector.SetItems(items...); err != nil {
			return nil, err
		}
	}
	if selector.Count() == 0 {
		return nil, carousel.ErrEmptySelector
	}

	switch {
	case settings.InitialState != nil:
		if err := selector.RestoreState(*settings.InitialState); err != nil {
			return nil, err
		}
	case settings.InitialValue != nil:
		if err := selector.SelectItemWithValue(settings.InitialValue, false); err != nil {
			return nil, err
		}
	}
	selector.SetOnItemSelectedListener(settings.OnItemSelected)

	pager, ok := selector.Pager().(*carousel.SlidePager)
	if !ok {
		return nil, fmt.Errorf("unexpected paging surface %T", selector.Pager())
	}

	return &swipeSelectController{
		title:         title,
		selector:      selector,
		pager:         pager,
		clock:         clock,
		settings:      settings,
		directional:   internal.NewDirectionalInput(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: clock.Now(),
		textures:      internal.NewTextureCache(pageTextureCacheSize),
	}, nil
}

func (c *swipeSelectController) done() bool {
	return c.confirmed || c.triggered || c.cancelled || c.err != nil
}

func (c *swipeSelectController) result() (*SwipeSelectResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.cancelled {
		return nil, ErrCancelled
	}

	// Land on the page the user was heading to before reporting it.
	if c.pager.Target() != c.selector.Position() {
		if err := c.selector.SelectItemAt(c.pager.Target(), false); err != nil {
			return nil, err
		}
	}

	item, err := c.selector.SelectedItem()
	if err != nil {
		return nil, err
	}

	action := SwipeActionConfirmed
	if c.triggered {
		action = SwipeActionTriggered
	}

	return &SwipeSelectResult{
		Item:   item,
		Index:  c.selector.Position(),
		Action: action,
		State:  c.selector.SaveState(),
	}, nil
}

func (c *swipeSelectController) destroy() {
	c.textures.Destroy()
	for i, texture := range c.chevrons {
		if texture != nil {
			texture.Destroy()
			c.chevrons[i] = nil
		}
	}
}

func (c *swipeSelectController) handleEvent(event sdl.Event, now time.Time) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		c.cancelled = true

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			c.pointerPressed(e.X)
		} else {
			c.pointerReleased(e.X, e.Y)
		}

	case *sdl.MouseMotionEvent:
		c.pointerMovedTo(e.X)

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.JoyButtonEvent, *sdl.JoyHatEvent, *sdl.ControllerDeviceEvent:
		processor := internal.GetInputProcessor()
		if processor == nil {
			return
		}
		if inputEvent := processor.ProcessSDLEvent(event); inputEvent != nil {
			c.handleButton(inputEvent, now)
		}
	}
}

func (c *swipeSelectController) handleButton(event *internal.Event, now time.Time) {
	if c.directional.SetHeld(event.Button, event.Pressed, now) {
		if event.Pressed {
			c.step(c.directional.HeldDirection())
		}
		return
	}

	if !event.Pressed {
		return
	}
	if now.Sub(c.lastInputTime) < c.inputDelay {
		return
	}
	c.lastInputTime = now

	switch event.Button {
	case c.settings.ConfirmButton, constants.VirtualButtonStart:
		if c.settings.RequireSelection && !c.pager.Page(c.pager.Target()).Item.IsReal() {
			logging.GetInternalLogger().Debug("Confirm ignored without a selection")
			return
		}
		c.confirmed = true
	case c.settings.BackButton:
		if !c.settings.DisableBackButton {
			c.cancelled = true
		}
	case c.settings.ActionButton:
		if c.settings.ActionButton != constants.VirtualButtonUnassigned {
			c.triggered = true
		}
	}
}

// step moves one page from wherever the pager is heading, so repeated
// presses during a slide keep advancing.
func (c *swipeSelectController) step(dir internal.Direction) {
	target := c.pager.Target() + 1
	if dir == internal.DirectionLeft {
		target = c.pager.Target() - 1
	}
	if err := c.selector.SelectItemAt(target, true); err != nil && !errors.Is(err, carousel.ErrOutOfRange) {
		logging.GetInternalLogger().Error("Failed to move selector", "target", target, "error", err)
	}
}

func (c *swipeSelectController) pointerPressed(x int32) {
	c.pointerDown = true
	c.pointerStartX = x
	c.pointerLastX = x
	c.pointerMoved = false
	c.pager.BeginDrag()
}

func (c *swipeSelectController) pointerMovedTo(x int32) {
	if !c.pointerDown {
		return
	}
	if abs32(x-c.pointerStartX) > dragSlop {
		c.pointerMoved = true
	}
	c.pager.DragBy(float64(x - c.pointerLastX))
	c.pointerLastX = x
}

func (c *swipeSelectController) pointerReleased(x, y int32) {
	if !c.pointerDown {
		return
	}
	c.pointerDown = false
	c.pager.EndDrag()

	if c.pointerMoved {
		return
	}

	point := sdl.Point{X: x, Y: y}
	switch {
	case point.InRect(&c.leftHit):
		c.selector.ClickAffordance(carousel.SideLeft)
	case point.InRect(&c.rightHit):
		c.selector.ClickAffordance(carousel.SideRight)
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func (c *swipeSelectController) render(window *internal.Window) {
	renderer := window.Renderer
	window.Clear()

	width, height := window.GetWidth(), window.GetHeight()
	margin := window.Dp(20)
	theme := internal.GetTheme()

	top := margin
	if c.title != "" {
		font, err := internal.Fonts.Get("", carousel.TextStyleMedium, carousel.TextStyleMedium)
		if err != nil {
			c.err = NewInfrastructureError(OpLoadFont, err)
			return
		}
		titleWidth := width - 2*margin
		top += internal.RenderWrappedText(renderer, font, c.title, margin, top, titleWidth, theme.TextColor, carousel.GravityCenter)
		top += window.Dp(constants.DefaultTitleSpacing)
	}

	bottom := height - margin
	if len(c.settings.FooterHelpItems) > 0 {
		font, err := internal.Fonts.Get("", carousel.TextStyleSmall, carousel.TextStyleSmall)
		if err != nil {
			c.err = NewInfrastructureError(OpLoadFont, err)
			return
		}
		bottom -= renderFooter(window, font, c.settings.FooterHelpItems, margin)
	}

	settings := c.selector.Settings()
	dotSize := window.Dp(settings.IndicatorSize)
	bottom -= dotSize
	c.renderIndicators(window, bottom+dotSize/2, dotSize, window.Dp(settings.IndicatorMargin))
	bottom -= margin

	chevronSize := window.Dp(32)
	chevronY := top + (bottom-top-chevronSize)/2
	c.leftHit = sdl.Rect{X: 0, Y: top, W: margin + chevronSize + margin, H: bottom - top}
	c.rightHit = sdl.Rect{X: width - margin - chevronSize - margin, Y: top, W: margin + chevronSize + margin, H: bottom - top}
	c.renderAffordance(window, carousel.SideLeft, margin, chevronY, chevronSize)
	c.renderAffordance(window, carousel.SideRight, width-margin-chevronSize, chevronY, chevronSize)

	padding := internal.ContentPadding(margin+chevronSize, window.Dp(constants.ChevronContentGap), 0)
	x, y, w, h := padding.Inset(0, top, width, bottom-top)
	c.pager.SetPageWidth(float64(w))

	renderer.SetClipRect(&sdl.Rect{X: x, Y: y, W: w, H: h})
	offset := c.pager.Offset()
	for _, i := range c.pager.VisiblePages() {
		shift := int32((float64(i) - offset) * float64(w))
		if err := c.renderPage(window, c.pager.Page(i), x+shift, y, w, h); err != nil {
			c.err = err
			break
		}
	}
	renderer.SetClipRect(nil)
}

func (c *swipeSelectController) renderIndicators(window *internal.Window, centerY, size, spacing int32) {
	strip := c.selector.Indicators()
	n := int32(strip.Len())
	if n == 0 {
		return
	}

	settings := c.selector.Settings()
	active := internal.HexToColor(settings.ActiveIndicatorColor)
	inactive := internal.HexToColor(settings.InactiveIndicatorColor)

	total := n*size + (n-1)*spacing
	x := (window.GetWidth() - total) / 2
	for i, marker := range strip.Markers() {
		color := inactive
		if marker.Active {
			color = active
		}
		internal.FillCircle(window.Renderer, x+int32(i)*(size+spacing)+size/2, centerY, size/2, color)
	}
}

func (c *swipeSelectController) renderAffordance(window *internal.Window, side carousel.Side, x, y, size int32) {
	alpha := c.selector.Affordance(side).Alpha()
	if alpha <= 0 {
		return
	}

	settings := c.selector.Settings()
	glyph, builtin := settings.RightGlyph, constants.ChevronRightSVG
	if side == carousel.SideLeft {
		glyph, builtin = settings.LeftGlyph, constants.ChevronLeftSVG
	}
	color := internal.GetTheme().AffordanceColor

	if glyph != "" && !internal.IsSVGPath(glyph) {
		font, err := internal.Fonts.Get(settings.FontPath, carousel.TextStyleExtraLarge, carousel.TextStyleExtraLarge)
		if err != nil {
			c.err = NewInfrastructureError(OpLoadFont, err)
			return
		}
		gx := x + (size-internal.TextWidth(font, glyph))/2
		gy := y + (size-int32(font.Height()))/2
		internal.RenderText(window.Renderer, font, glyph, gx, gy, internal.WithAlpha(color, alpha))
		return
	}

	texture := c.chevrons[side]
	if texture == nil {
		var err error
		if glyph == "" {
			texture, err = internal.SVGTexture(window.Renderer, []byte(builtin), size, size)
		} else {
			texture, err = internal.LoadImageTexture(window.Renderer, glyph, size, size)
		}
		if err != nil {
			c.err = NewInfrastructureError(OpLoadChevron, err)
			return
		}
		c.chevrons[side] = texture
	}

	texture.SetColorMod(color.R, color.G, color.B)
	texture.SetAlphaMod(uint8(alpha * 255))
	window.Renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
}

func (c *swipeSelectController) renderPage(window *internal.Window, page carousel.Page, x, y, w, h int32) error {
	item := page.Item
	style := page.Style
	theme := internal.GetTheme()
	gap := window.Dp(constants.DefaultTitleSpacing) * 2

	titleFont, err := internal.Fonts.Get(style.FontPath, style.TitleStyle, carousel.TextStyleExtraLarge)
	if err != nil {
		return NewInfrastructureError(OpLoadFont, err)
	}
	descFont, err := internal.Fonts.Get(style.FontPath, style.DescriptionStyle, carousel.TextStyleMedium)
	if err != nil {
		return NewInfrastructureError(OpLoadFont, err)
	}

	var titleHeight int32
	imageSize := min(w, h/2)
	if item.HasImage() {
		titleHeight = imageSize
	} else {
		titleHeight = internal.WrappedTextHeight(titleFont, item.Title, w)
	}

	var descHeight int32
	if item.HasDescription() {
		descHeight = internal.WrappedTextHeight(descFont, item.Description, w) + gap
	}

	cy := y + (h-titleHeight-descHeight)/2

	if item.HasImage() {
		texture, err := c.textures.GetOrCreate("image:"+item.Image, func() (*sdl.Texture, error) {
			return internal.LoadImageTexture(window.Renderer, item.Image, imageSize, imageSize)
		})
		if err != nil {
			logging.GetInternalLogger().Error("Failed to load item image", "path", item.Image, "error", err)
		} else {
			window.Renderer.Copy(texture, nil, fitRect(texture, x+(w-imageSize)/2, cy, imageSize))
		}
	} else {
		c.renderLines(window, titleFont, item.Title, x, cy, w, theme.TextColor, carousel.GravityCenter)
	}

	if item.HasDescription() {
		c.renderLines(window, descFont, item.Description, x, cy+titleHeight+gap, w, theme.HintColor, style.DescriptionGravity)
	}
	return nil
}

// renderLines draws wrapped text, caching one texture per line.
func (c *swipeSelectController) renderLines(window *internal.Window, font *ttf.Font, text string, x, y, w int32, color sdl.Color, gravity carousel.Gravity) {
	lineHeight := internal.LineHeight(font)
	drawLines(internal.WrapText(font, text, w), logging.GetInternalLogger(), func(i int, line string) error {
		key := fmt.Sprintf("text:%p:%06x:%s", font, uint32(color.R)<<16|uint32(color.G)<<8|uint32(color.B), line)
		texture, err := c.textures.GetOrCreate(key, func() (*sdl.Texture, error) {
			surface, err := font.RenderUTF8Blended(line, color)
			if err != nil {
				return nil, err
			}
			defer surface.Free()
			return window.Renderer.CreateTextureFromSurface(surface)
		})
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		_, _, tw, th, err := texture.Query()
		if err != nil {
			return fmt.Errorf("query texture: %w", err)
		}
		lineX := internal.AlignX(gravity, x, w, tw)
		return window.Renderer.Copy(texture, nil, &sdl.Rect{X: lineX, Y: y + int32(i)*lineHeight, W: tw, H: th})
	})
}

// drawLines calls draw for every non-empty line. A line that fails is
// logged and skipped; the rest are still drawn.
func drawLines(lines []string, logger *slog.Logger, draw func(i int, line string) error) {
	for i, line := range lines {
		if line == "" {
			continue
		}
		if err := draw(i, line); err != nil {
			logger.Debug("Failed to draw text line", "line", line, "error", err)
		}
	}
}

// fitRect scales a texture into a size by size box at (x, y), keeping its
// aspect ratio.
func fitRect(texture *sdl.Texture, x, y, size int32) *sdl.Rect {
	_, _, tw, th, err := texture.Query()
	if err != nil || tw == 0 || th == 0 {
		return &sdl.Rect{X: x, Y: y, W: size, H: size}
	}
	w, h := size, size
	if tw > th {
		h = size * th / tw
	} else {
		w = size * tw / th
	}
	return &sdl.Rect{X: x + (size-w)/2, Y: y + (size-h)/2, W: w, H: h}
}
