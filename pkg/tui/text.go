package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// titleFadeCells is how many trailing cells of a truncated title fade out
const titleFadeCells = 4

// drawText writes text starting at x,y and stops before maxWidth cells.
// It returns the number of cells written.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	cells := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cells+w > maxWidth {
			break
		}
		screen.SetContent(x+cells, y, r, nil, style)
		cells += w
	}
	return cells
}

// fillRect paints every cell of area with a blank in style
func fillRect(screen tcell.Screen, area Rect, style tcell.Style) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FadeTruncate fits text into width cells. When the text overflows, the
// returned fade count says how many trailing runes should fade out.
func FadeTruncate(text string, width int) (visible string, fade int) {
	if width <= 0 {
		return "", 0
	}
	if runewidth.StringWidth(text) <= width {
		return text, 0
	}

	visible = runewidth.Truncate(text, width, "")
	fade = titleFadeCells
	if n := len([]rune(visible)); n < fade {
		fade = n
	}
	return visible, fade
}

// drawFadedText draws text truncated to maxWidth, blending the last
// runes from style's foreground into bg when the text does not fit.
func drawFadedText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style, bg tcell.Color) int {
	visible, fade := FadeTruncate(text, maxWidth)
	if fade == 0 {
		return drawText(screen, x, y, maxWidth, visible, style)
	}

	fg, _, _ := style.Decompose()
	colors := FadeColors(fg, bg, fade)
	runes := []rune(visible)
	solid := len(runes) - fade

	cells := drawText(screen, x, y, maxWidth, string(runes[:solid]), style)
	for i, r := range runes[solid:] {
		cells += drawText(screen, x+cells, y, maxWidth-cells, string(r), style.Foreground(colors[i]))
	}
	return cells
}
