package tui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/logger"
	"github.com/rivo/tview"
)

// ConversationView renders the header bar over an unbounded, lazily built
// list of messages and a fixed trailing label.
//
// Positions are built when they scroll into view and forgotten when they
// scroll out, so returning to a position builds a new message.
type ConversationView struct {
	*tview.Box

	identity  conversation.Identity
	theme     Theme
	actions   Actions
	generator *conversation.Generator
	header    *HeaderBar
	menu      MenuComponent
	menuOpen  bool
	menuArea  Rect

	offset   int
	visible  map[int]conversation.DisplayedMessage
	failures map[int]error
	pageSize int

	log *logger.ComponentLogger
}

// ViewOption configures a ConversationView
type ViewOption func(*viewOptions)

type viewOptions struct {
	theme         Theme
	actions       Actions
	generatorOpts []conversation.Option
	log           *logger.ComponentLogger
}

// WithTheme sets the theme used for every draw
func WithTheme(t Theme) ViewOption {
	return func(o *viewOptions) {
		o.theme = t
	}
}

// WithActions injects the header affordance handlers
func WithActions(a Actions) ViewOption {
	return func(o *viewOptions) {
		o.actions = a
	}
}

// WithGeneratorOptions forwards options to the message generator
func WithGeneratorOptions(opts ...conversation.Option) ViewOption {
	return func(o *viewOptions) {
		o.generatorOpts = append(o.generatorOpts, opts...)
	}
}

// WithLogger replaces the component logger
func WithLogger(l *logger.ComponentLogger) ViewOption {
	return func(o *viewOptions) {
		o.log = l
	}
}

// NewConversationView validates identity and builds the view
func NewConversationView(identity conversation.Identity, opts ...ViewOption) (*ConversationView, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	o := viewOptions{
		theme: DefaultTheme(),
		log:   logger.WithComponent("conversation_view"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	generator, err := conversation.NewGenerator(identity.LastMessage, o.generatorOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create message generator: %w", err)
	}

	v := &ConversationView{
		Box:       tview.NewBox(),
		identity:  identity,
		theme:     o.theme,
		actions:   o.actions,
		generator: generator,
		menu:      NewOverflowMenu(),
		visible:   map[int]conversation.DisplayedMessage{},
		failures:  map[int]error{},
		pageSize:  1,
		log:       o.log,
	}
	v.header = NewHeaderBar(identity.Name, o.theme, o.actions).SetMenuHandler(v.ToggleMenu)
	v.Box.SetBackgroundColor(Color(o.theme.Palette.Background))
	return v, nil
}

// Header returns the header bar
func (v *ConversationView) Header() *HeaderBar {
	return v.header
}

// Identity returns the inputs the view was built from
func (v *ConversationView) Identity() conversation.Identity {
	return v.identity
}

// Offset returns the first visible list position
func (v *ConversationView) Offset() int {
	return v.offset
}

// ScrollBy moves the first visible position by delta, never above zero
func (v *ConversationView) ScrollBy(delta int) {
	v.offset += delta
	if v.offset < 0 {
		v.offset = 0
	}
}

// ScrollToTop returns to the first position
func (v *ConversationView) ScrollToTop() {
	v.offset = 0
}

// VisibleMessages returns the messages currently held for the viewport,
// ordered by position
func (v *ConversationView) VisibleMessages() []conversation.DisplayedMessage {
	out := make([]conversation.DisplayedMessage, 0, len(v.visible))
	for _, msg := range v.visible {
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// MenuOpen reports whether the overflow menu is showing
func (v *ConversationView) MenuOpen() bool {
	return v.menuOpen
}

// ToggleMenu opens or closes the overflow menu
func (v *ConversationView) ToggleMenu() {
	v.menuOpen = !v.menuOpen
	if v.menuOpen {
		v.menu = NewOverflowMenu()
	}
	v.log.Debug("overflow menu toggled", "open", v.menuOpen)
}

// SelectMenuOption runs the action for a menu entry and closes the menu
func (v *ConversationView) SelectMenuOption(name string) {
	v.menuOpen = false
	switch name {
	case MenuSearch:
		v.log.Debug("search selected")
		v.actions.Search()
	}
}

// Draw renders the whole screen
func (v *ConversationView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()

	headerArea, listArea, footerArea := NewLayout(x, y, width, height, v.theme.BarHeight).CalculateAreas()

	v.header.SetRect(headerArea.X, headerArea.Y, headerArea.Width, headerArea.Height)
	v.header.Draw(screen)
	v.drawList(screen, listArea)
	v.drawFooter(screen, footerArea)

	v.menuArea = Rect{}
	if v.menuOpen {
		menuRegion := v.header.MenuRegion()
		anchor := headerArea.Right() - 1
		if !menuRegion.Empty() {
			anchor = menuRegion.Right()
		}
		v.menuArea = v.menu.Area(anchor, headerArea.Bottom())
		v.menu.Render(screen, v.menuArea, v.theme)
	}
}

func (v *ConversationView) drawList(screen tcell.Screen, area Rect) {
	fillRect(screen, area, v.theme.BackgroundStyle())
	if area.Empty() {
		return
	}

	seen := map[int]bool{}
	row := area.Y
	position := v.offset
	for row < area.Bottom() {
		seen[position] = true
		remaining := NewRect(area.X, row, area.Width, area.Bottom()-row)

		msg, err := v.itemAt(position)
		if err != nil {
			drawText(screen, area.X+1, row, area.Width-2, err.Error(), v.theme.ErrorStyle())
			row++
		} else {
			row += max(1, NewBubble(msg, v.theme).Render(screen, remaining))
		}
		position++
	}
	v.pageSize = max(1, len(seen)-1)

	// Positions that scrolled out of view are reclaimed
	for pos := range v.visible {
		if !seen[pos] {
			delete(v.visible, pos)
		}
	}
	for pos := range v.failures {
		if !seen[pos] {
			delete(v.failures, pos)
		}
	}
}

func (v *ConversationView) itemAt(position int) (conversation.DisplayedMessage, error) {
	if msg, ok := v.visible[position]; ok {
		return msg, nil
	}
	if err, ok := v.failures[position]; ok {
		return conversation.DisplayedMessage{}, err
	}

	msg, err := v.generator.Message(position)
	if err != nil {
		v.log.Error("failed to build message", "position", position, "error", err)
		v.failures[position] = err
		return conversation.DisplayedMessage{}, err
	}

	v.log.Debug("built message", "position", position, "sender", msg.Sender, "length", len(msg.Text))
	v.visible[position] = msg
	return msg, nil
}

func (v *ConversationView) drawFooter(screen tcell.Screen, area Rect) {
	if area.Empty() {
		return
	}
	style := v.theme.FooterStyle()
	fillRect(screen, area, style)
	drawFadedText(screen, area.X+1, area.Y, area.Width-2, v.theme.FooterLabel, style, Color(v.theme.Palette.Background))
}

// HandleKey processes a key event and reports whether it was consumed
func (v *ConversationView) HandleKey(event *tcell.EventKey) bool {
	if v.menuOpen {
		return v.handleMenuKey(event)
	}

	switch event.Key() {
	case tcell.KeyUp:
		v.ScrollBy(-1)
	case tcell.KeyDown:
		v.ScrollBy(1)
	case tcell.KeyPgUp:
		v.ScrollBy(-v.pageSize)
	case tcell.KeyPgDn:
		v.ScrollBy(v.pageSize)
	case tcell.KeyHome:
		v.ScrollToTop()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			v.ScrollBy(-1)
		case 'j':
			v.ScrollBy(1)
		case 'v':
			v.actions.VideoCall()
		case 'c':
			v.actions.Call()
		case 'm':
			v.ToggleMenu()
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (v *ConversationView) handleMenuKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape:
		v.menuOpen = false
	case tcell.KeyUp:
		v.menu = v.menu.SelectPrevious()
	case tcell.KeyDown:
		v.menu = v.menu.SelectNext()
	case tcell.KeyEnter:
		v.SelectMenuOption(v.menu.GetSelectedOption())
	case tcell.KeyRune:
		if event.Rune() != 'm' {
			return false
		}
		v.menuOpen = false
	default:
		return false
	}
	return true
}

// InputHandler returns the tview key handler
func (v *ConversationView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		v.HandleKey(event)
	})
}

// HandleMouse processes a mouse action at x,y
func (v *ConversationView) HandleMouse(action tview.MouseAction, x, y int) bool {
	switch action {
	case tview.MouseScrollUp:
		v.ScrollBy(-1)
		return true
	case tview.MouseScrollDown:
		v.ScrollBy(1)
		return true
	case tview.MouseLeftClick:
		if v.menuOpen {
			if name, ok := v.menu.OptionAt(v.menuArea, x, y); ok {
				v.SelectMenuOption(name)
				return true
			}
			if !v.header.MenuRegion().Contains(x, y) {
				v.menuOpen = false
				return true
			}
		}
		return v.header.Activate(x, y)
	}
	return false
}

// MouseHandler returns the tview mouse handler
func (v *ConversationView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if !v.InRect(x, y) {
			return false, nil
		}
		setFocus(v)
		return v.HandleMouse(action, x, y), nil
	})
}
