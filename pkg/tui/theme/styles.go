package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Base16 color palette with warm earth tones
var (
	// Base colors (backgrounds and text)
	ColorBase00 = lipgloss.Color("#1a1816") // Dark background
	ColorBase01 = lipgloss.Color("#282420") // Lighter background
	ColorBase02 = lipgloss.Color("#36302a") // Selection background
	ColorBase03 = lipgloss.Color("#5c5044") // Comments, invisibles
	ColorBase04 = lipgloss.Color("#83715f") // Dark foreground
	ColorBase06 = lipgloss.Color("#d3b597") // Light foreground
	ColorBase07 = lipgloss.Color("#f5d7b9") // Lightest foreground

	// Accent colors
	ColorRed  = lipgloss.Color("#d95f5f")
	ColorRose = lipgloss.Color("#b5546b") // Outgoing bubbles

	// UI specific colors
	ColorBar       = ColorBase01
	ColorTitle     = ColorBase06
	ColorAccent    = ColorRose
	ColorNeutral   = ColorBase02
	ColorSecondary = ColorBase04
	ColorError     = ColorRed
	ColorMuted     = ColorBase03
)

// Styles defines the Lipgloss styles used when rendering outside the terminal UI
type Styles struct {
	Bar       lipgloss.Style
	Badge     lipgloss.Style
	Title     lipgloss.Style
	Action    lipgloss.Style
	Incoming  lipgloss.Style
	Outgoing  lipgloss.Style
	Timestamp lipgloss.Style
	Footer    lipgloss.Style
}

// Palette is the set of colors a Styles value is built from
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Bar        lipgloss.Color
	Title      lipgloss.Color
	Accent     lipgloss.Color
	Neutral    lipgloss.Color
	Secondary  lipgloss.Color
}

// DefaultPalette returns the built-in colors
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBase00,
		Foreground: ColorBase07,
		Bar:        ColorBar,
		Title:      ColorTitle,
		Accent:     ColorAccent,
		Neutral:    ColorNeutral,
		Secondary:  ColorSecondary,
	}
}

// NewStyles builds the Lipgloss styles for a palette
func NewStyles(p Palette, largeBold bool) *Styles {
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(p.Foreground).
		Bold(largeBold).
		Padding(0, 1)

	return &Styles{
		Bar: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Title).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Bold(true).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Title).
			Bold(true),

		Action: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Secondary),

		Incoming: bubble.
			BorderForeground(p.Neutral).
			Background(p.Neutral),

		Outgoing: bubble.
			BorderForeground(p.Accent).
			Background(p.Accent),

		Timestamp: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(false),

		Footer: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}
