package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/killallgit/convo/pkg/config"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/tui/theme"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Font maps font metrics onto terminal attributes
type Font struct {
	LargeBold    bool
	SecondaryDim bool
}

// Theme is the visual configuration passed explicitly into every
// rendering function.
type Theme struct {
	Palette     theme.Palette
	Font        Font
	BarHeight   int
	TimeFormat  string
	FooterLabel string
}

// DefaultTheme returns the built-in theme
func DefaultTheme() Theme {
	return Theme{
		Palette:     theme.DefaultPalette(),
		Font:        Font{LargeBold: true, SecondaryDim: true},
		BarHeight:   3,
		TimeFormat:  conversation.DefaultTimeFormat,
		FooterLabel: "Messages are synthesized locally",
	}
}

// ThemeFromConfig converts validated settings into a Theme
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	t := DefaultTheme()
	p := tc.Palette
	t.Palette = theme.Palette{
		Background: orDefault(p.Background, t.Palette.Background),
		Foreground: orDefault(p.Foreground, t.Palette.Foreground),
		Bar:        orDefault(p.Bar, t.Palette.Bar),
		Title:      orDefault(p.Title, t.Palette.Title),
		Accent:     orDefault(p.Accent, t.Palette.Accent),
		Neutral:    orDefault(p.Neutral, t.Palette.Neutral),
		Secondary:  orDefault(p.Secondary, t.Palette.Secondary),
	}
	t.Font = Font{LargeBold: tc.Font.LargeBold, SecondaryDim: tc.Font.SecondaryDim}
	if tc.BarHeight > 0 {
		t.BarHeight = tc.BarHeight
	}
	if tc.TimeFormat != "" {
		t.TimeFormat = tc.TimeFormat
	}
	t.FooterLabel = tc.FooterLabel
	return t
}

func orDefault(hex string, fallback lipgloss.Color) lipgloss.Color {
	if hex == "" {
		return fallback
	}
	return lipgloss.Color(hex)
}

// Color converts a palette entry into a terminal color
func Color(c lipgloss.Color) tcell.Color {
	if parsed, err := colorful.Hex(string(c)); err == nil {
		return toTcell(parsed)
	}
	return tcell.GetColor(string(c))
}

// BackgroundStyle fills empty cells
func (t Theme) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(Color(t.Palette.Background)).Foreground(Color(t.Palette.Foreground))
}

// BarStyle is the header bar fill
func (t Theme) BarStyle() tcell.Style {
	return tcell.StyleDefault.Background(Color(t.Palette.Bar)).Foreground(Color(t.Palette.Title))
}

// TitleStyle renders the conversation partner's name
func (t Theme) TitleStyle() tcell.Style {
	return t.BarStyle().Bold(true)
}

// ActionStyle renders the header action affordances
func (t Theme) ActionStyle() tcell.Style {
	return tcell.StyleDefault.Background(Color(t.Palette.Bar)).Foreground(Color(t.Palette.Secondary))
}

// MessageStyle renders message text on a bubble of the given color
func (t Theme) MessageStyle(bubble tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(bubble).Foreground(Color(t.Palette.Foreground)).Bold(t.Font.LargeBold)
}

// TimeStyle renders the secondary time-of-day label inside a bubble
func (t Theme) TimeStyle(bubble tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(bubble).Foreground(Color(t.Palette.Secondary)).Dim(t.Font.SecondaryDim)
}

// FooterStyle renders the trailing label
func (t Theme) FooterStyle() tcell.Style {
	return t.BackgroundStyle().Foreground(Color(t.Palette.Secondary)).Italic(true)
}

// ErrorStyle renders item build failures
func (t Theme) ErrorStyle() tcell.Style {
	return t.BackgroundStyle().Foreground(Color(theme.ColorError)).Bold(true)
}

// Styles returns the Lipgloss rendition of this theme
func (t Theme) Styles() *theme.Styles {
	return theme.NewStyles(t.Palette, t.Font.LargeBold)
}
