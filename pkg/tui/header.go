package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

type headerTarget int

const (
	targetNone headerTarget = iota
	targetVideoCall
	targetCall
	targetMenu
)

// Header affordance glyphs and labels
const (
	AccountIcon    = "☺"
	MenuGlyph      = "⋮"
	VideoCallLabel = "[Video Call]"
	CallLabel      = "[Call]"
)

const (
	badgeLeft  = '◖'
	badgeRight = '◗'
)

// headerLabels are tried in order until the bar fits
var headerLabels = []struct {
	video, call string
	icon        bool
}{
	{video: VideoCallLabel, call: CallLabel, icon: true},
	{video: VideoCallLabel, call: CallLabel, icon: false},
	{video: "[▶]", call: "[✆]", icon: false},
}

// HeaderBar renders the badge, title and action affordances for a
// conversation partner. It keeps no state besides the hit regions of the
// last draw.
type HeaderBar struct {
	*tview.Box
	name    string
	theme   Theme
	actions Actions
	onMenu  func()
	regions map[headerTarget]Rect
}

// NewHeaderBar creates a header for name
func NewHeaderBar(name string, t Theme, actions Actions) *HeaderBar {
	return &HeaderBar{
		Box:     tview.NewBox(),
		name:    name,
		theme:   t,
		actions: actions,
		regions: map[headerTarget]Rect{},
	}
}

// SetMenuHandler sets the function run when the overflow button is activated
func (h *HeaderBar) SetMenuHandler(fn func()) *HeaderBar {
	h.onMenu = fn
	return h
}

// Name returns the full title
func (h *HeaderBar) Name() string {
	return h.name
}

// BadgeText returns the text shown inside the circular badge
func (h *HeaderBar) BadgeText() string {
	return conversation.Initials(h.name)
}

// BadgeColor returns the badge background color
func (h *HeaderBar) BadgeColor() tcell.Color {
	return ColorForName(h.name)
}

// VideoCallRegion returns where the video call button was last drawn
func (h *HeaderBar) VideoCallRegion() Rect { return h.regions[targetVideoCall] }

// CallRegion returns where the call button was last drawn
func (h *HeaderBar) CallRegion() Rect { return h.regions[targetCall] }

// MenuRegion returns where the overflow button was last drawn
func (h *HeaderBar) MenuRegion() Rect { return h.regions[targetMenu] }

// Draw renders the bar into its rectangle
func (h *HeaderBar) Draw(screen tcell.Screen) {
	x, y, width, height := h.GetRect()
	area := NewRect(x, y, width, height)
	h.regions = map[headerTarget]Rect{}
	if area.Empty() {
		return
	}

	bar := h.theme.BarStyle()
	barColor := Color(h.theme.Palette.Bar)
	fillRect(screen, area, bar)
	row := y + (height-1)/2

	// Badge
	cursor := x + 1
	badge := h.BadgeText()
	badgeColor := h.BadgeColor()
	edge := bar.Foreground(badgeColor)
	inner := tcell.StyleDefault.Background(badgeColor).Foreground(Color(h.theme.Palette.Foreground)).Bold(true)
	screen.SetContent(cursor, row, badgeLeft, nil, edge)
	cursor++
	cursor += drawText(screen, cursor, row, area.Right()-cursor, badge, inner)
	if cursor < area.Right() {
		screen.SetContent(cursor, row, badgeRight, nil, edge)
		cursor++
	}
	cursor += 2

	// Right-hand affordances, laid out from the right edge
	labels := headerLabels[len(headerLabels)-1]
	titleWidth := 0
	for _, candidate := range headerLabels {
		titleWidth = area.Right() - 1 - h.rightWidth(candidate.video, candidate.call, candidate.icon) - 2 - cursor
		labels = candidate
		if titleWidth >= 3 {
			break
		}
	}

	right := area.Right() - 1
	right = h.drawAction(screen, right, row, area, MenuGlyph, targetMenu)
	right = h.drawAction(screen, right-1, row, area, labels.call, targetCall)
	right = h.drawAction(screen, right-1, row, area, labels.video, targetVideoCall)
	if labels.icon {
		right -= 2
		iconX := right - runewidth.StringWidth(AccountIcon)
		drawText(screen, iconX, row, runewidth.StringWidth(AccountIcon), AccountIcon, h.theme.ActionStyle())
	}

	if titleWidth > 0 {
		drawFadedText(screen, cursor, row, titleWidth, h.name, h.theme.TitleStyle(), barColor)
	}
}

func (h *HeaderBar) rightWidth(video, call string, icon bool) int {
	w := runewidth.StringWidth(MenuGlyph) + 1 + runewidth.StringWidth(call) + 1 + runewidth.StringWidth(video)
	if icon {
		w += 2 + runewidth.StringWidth(AccountIcon)
	}
	return w
}

// drawAction draws label ending at right and returns its left edge
func (h *HeaderBar) drawAction(screen tcell.Screen, right, row int, area Rect, label string, target headerTarget) int {
	w := runewidth.StringWidth(label)
	left := right - w
	if left < area.X {
		return left
	}
	drawText(screen, left, row, w, label, h.theme.ActionStyle())
	h.regions[target] = NewRect(left, area.Y, w, area.Height)
	return left
}

// Activate runs the affordance under x,y. It reports whether anything was hit.
func (h *HeaderBar) Activate(x, y int) bool {
	switch h.targetAt(x, y) {
	case targetVideoCall:
		h.actions.VideoCall()
	case targetCall:
		h.actions.Call()
	case targetMenu:
		if h.onMenu != nil {
			h.onMenu()
		}
	default:
		return false
	}
	return true
}

func (h *HeaderBar) targetAt(x, y int) headerTarget {
	for target, region := range h.regions {
		if region.Contains(x, y) {
			return target
		}
	}
	return targetNone
}

// MouseHandler activates affordances on left click
func (h *HeaderBar) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return h.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if action != tview.MouseLeftClick {
			return false, nil
		}
		x, y := event.Position()
		return h.Activate(x, y), nil
	})
}
