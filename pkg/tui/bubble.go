package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/mattn/go-runewidth"
)

// Alignment is the horizontal placement of a bubble within its row
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignTrailing
)

func (a Alignment) String() string {
	if a == AlignTrailing {
		return "trailing"
	}
	return "leading"
}

const (
	bubbleNearInset = 14
	bubbleFarInset  = 36
	bubblePadding   = 1
	// edges, padding and a few cells of text
	minBubbleWidth = 8
)

// Filled rounded-rectangle edges built from quadrant blocks
const (
	bubbleTopLeft     = '▗'
	bubbleTop         = '▄'
	bubbleTopRight    = '▖'
	bubbleBottomLeft  = '▝'
	bubbleBottom      = '▀'
	bubbleBottomRight = '▘'
)

// BubbleLayout is the placement of one message bubble. It depends only
// on the sender.
type BubbleLayout struct {
	LeftInset  int
	RightInset int
	Color      lipgloss.Color
	Alignment  Alignment
}

// LayoutFor returns the bubble layout for sender
func LayoutFor(sender conversation.Sender, t Theme) BubbleLayout {
	if sender == conversation.SenderSelf {
		return BubbleLayout{
			LeftInset:  bubbleFarInset,
			RightInset: bubbleNearInset,
			Color:      t.Palette.Accent,
			Alignment:  AlignTrailing,
		}
	}
	return BubbleLayout{
		LeftInset:  bubbleNearInset,
		RightInset: bubbleFarInset,
		Color:      t.Palette.Neutral,
		Alignment:  AlignLeading,
	}
}

// InsetsFor returns the insets to use in a row of the given width. Rows
// too narrow for the full insets shrink them proportionally.
func (l BubbleLayout) InsetsFor(width int) (left, right int) {
	total := l.LeftInset + l.RightInset
	spare := width - minBubbleWidth
	if spare >= total {
		return l.LeftInset, l.RightInset
	}
	if spare <= 0 || total == 0 {
		return 0, 0
	}
	left = l.LeftInset * spare / total
	right = l.RightInset * spare / total
	return left, right
}

// Bubble renders one displayed message
type Bubble struct {
	Message conversation.DisplayedMessage
	Layout  BubbleLayout
	theme   Theme
}

// NewBubble lays out msg with theme
func NewBubble(msg conversation.DisplayedMessage, t Theme) Bubble {
	return Bubble{
		Message: msg,
		Layout:  LayoutFor(msg.Sender, t),
		theme:   t,
	}
}

type bubbleFrame struct {
	x          int
	width      int
	lines      []string
	label      string
	labelWidth int
	inline     bool
}

func (f bubbleFrame) height() int {
	rows := len(f.lines)
	if !f.inline {
		rows++
	}
	return rows + 2
}

func (f bubbleFrame) contentX() int {
	return f.x + 1 + bubblePadding
}

func (f bubbleFrame) contentWidth() int {
	return f.width - 2 - 2*bubblePadding
}

func (b Bubble) frame(rowX, rowWidth int) bubbleFrame {
	left, right := b.Layout.InsetsFor(rowWidth)
	inner := rowWidth - left - right - 2 - 2*bubblePadding
	if inner < 1 {
		inner = 1
	}

	label := b.Message.FormatTime(b.theme.TimeFormat)
	labelWidth := runewidth.StringWidth(label)

	lines := WrapText(b.Message.Text, inner)
	if len(lines) == 0 {
		lines = []string{""}
	}

	contentWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > contentWidth {
			contentWidth = w
		}
	}

	lastWidth := runewidth.StringWidth(lines[len(lines)-1])
	inline := lastWidth+1+labelWidth <= inner
	if inline {
		contentWidth = max(contentWidth, lastWidth+1+labelWidth)
	} else {
		contentWidth = max(contentWidth, labelWidth)
	}
	contentWidth = min(contentWidth, inner)

	width := contentWidth + 2 + 2*bubblePadding
	x := rowX + left
	if b.Layout.Alignment == AlignTrailing {
		x = rowX + rowWidth - right - width
	}

	return bubbleFrame{
		x:          x,
		width:      width,
		lines:      lines,
		label:      label,
		labelWidth: labelWidth,
		inline:     inline,
	}
}

// Height returns the rows the bubble needs in a row of the given width
func (b Bubble) Height(rowWidth int) int {
	return b.frame(0, rowWidth).height()
}

// Bounds returns the rectangle the bubble occupies when drawn at the top of area
func (b Bubble) Bounds(area Rect) Rect {
	f := b.frame(area.X, area.Width)
	return NewRect(f.x, area.Y, f.width, f.height())
}

// Render draws the bubble at the top of area, clipping rows past its
// bottom. It returns the number of rows drawn.
func (b Bubble) Render(screen tcell.Screen, area Rect) int {
	if area.Empty() {
		return 0
	}

	f := b.frame(area.X, area.Width)
	bubbleColor := Color(b.Layout.Color)
	edge := b.theme.BackgroundStyle().Foreground(bubbleColor)
	fill := b.theme.MessageStyle(bubbleColor)
	textStyle := b.theme.MessageStyle(bubbleColor)
	timeStyle := b.theme.TimeStyle(bubbleColor)

	height := f.height()
	rows := min(height, area.Height)

	for row := 0; row < rows; row++ {
		y := area.Y + row
		switch row {
		case 0:
			b.drawEdge(screen, f, y, edge, bubbleTopLeft, bubbleTop, bubbleTopRight)
		case height - 1:
			b.drawEdge(screen, f, y, edge, bubbleBottomLeft, bubbleBottom, bubbleBottomRight)
		default:
			fillRect(screen, NewRect(f.x, y, f.width, 1), fill)
			b.drawContentRow(screen, f, row-1, y, textStyle, timeStyle)
		}
	}
	return rows
}

func (b Bubble) drawEdge(screen tcell.Screen, f bubbleFrame, y int, style tcell.Style, left, mid, right rune) {
	screen.SetContent(f.x, y, left, nil, style)
	for x := f.x + 1; x < f.x+f.width-1; x++ {
		screen.SetContent(x, y, mid, nil, style)
	}
	screen.SetContent(f.x+f.width-1, y, right, nil, style)
}

func (b Bubble) drawContentRow(screen tcell.Screen, f bubbleFrame, line, y int, textStyle, timeStyle tcell.Style) {
	cx, cw := f.contentX(), f.contentWidth()
	labelX := cx + cw - f.labelWidth
	if labelX < cx {
		labelX = cx
	}

	if line < len(f.lines) {
		drawText(screen, cx, y, cw, f.lines[line], textStyle)
		if f.inline && line == len(f.lines)-1 {
			drawText(screen, labelX, y, cw-(labelX-cx), f.label, timeStyle)
		}
		return
	}

	// Time label on its own row
	drawText(screen, labelX, y, cw-(labelX-cx), f.label, timeStyle)
}
