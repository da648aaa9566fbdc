package headless

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/tui"
	"github.com/killallgit/convo/pkg/tui/theme"
	"github.com/mattn/go-runewidth"
)

// Same order and spacing as the terminal header bar
var headerActions = tui.AccountIcon + "  " + tui.VideoCallLabel + " " + tui.CallLabel + " " + tui.MenuGlyph

// Output writes Lipgloss-styled preview blocks
type Output struct {
	w      io.Writer
	theme  tui.Theme
	styles *theme.Styles
	width  int
}

// NewOutput creates a new output handler
func NewOutput(w io.Writer, t tui.Theme, width int) *Output {
	return &Output{
		w:      w,
		theme:  t,
		styles: t.Styles(),
		width:  width,
	}
}

// Header writes the app bar for name
func (o *Output) Header(name string) error {
	badge := o.styles.Badge.
		Background(lipgloss.Color(tui.HexForName(name))).
		Render(conversation.Initials(name))
	actions := o.styles.Action.Render(headerActions)

	// Bar padding plus the gaps around the title
	inner := o.width - 2
	titleWidth := inner - lipgloss.Width(badge) - lipgloss.Width(actions) - 4
	title := o.styles.Title.Render(runewidth.Truncate(name, max(titleWidth, 0), "…"))

	left := badge + o.styles.Action.Render("  ") + title
	gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(actions))
	line := left + o.styles.Action.Render(strings.Repeat(" ", gap)) + actions

	_, err := fmt.Fprintln(o.w, o.styles.Bar.Width(o.width).Render(line))
	return err
}

// Message writes one bubble placed with the same insets as the terminal UI
func (o *Output) Message(msg conversation.DisplayedMessage) error {
	layout := tui.LayoutFor(msg.Sender, o.theme)
	left, right := layout.InsetsFor(o.width)

	style := o.styles.Incoming
	if msg.IsSelf() {
		style = o.styles.Outgoing
	}

	content := msg.Text + " " + o.styles.Timestamp.Render(msg.FormatTime(o.theme.TimeFormat))
	// Border takes one column on each side
	inner := o.width - left - right - 2
	if lipgloss.Width(content)+2 > inner {
		style = style.Width(inner)
	}
	block := style.Render(content)

	margin := left
	if layout.Alignment == tui.AlignTrailing {
		margin = o.width - right - lipgloss.Width(block)
	}

	_, err := fmt.Fprintln(o.w, lipgloss.NewStyle().MarginLeft(max(margin, 0)).Render(block))
	return err
}

// Footer writes the trailing label
func (o *Output) Footer() error {
	label := runewidth.Truncate(o.theme.FooterLabel, o.width, "…")
	_, err := fmt.Fprintln(o.w, o.styles.Footer.Render(label))
	return err
}

// Error reports a message that could not be built
func (o *Output) Error(msg string) {
	_, _ = fmt.Fprintln(o.w, lipgloss.NewStyle().Foreground(theme.ColorError).Render(msg))
}
