package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout splits the screen into header bar, message list and trailing label
type Layout struct {
	X            int
	Y            int
	ScreenWidth  int
	ScreenHeight int
	BarHeight    int
}

func NewLayout(x, y, width, height, barHeight int) Layout {
	return Layout{
		X:            x,
		Y:            y,
		ScreenWidth:  width,
		ScreenHeight: height,
		BarHeight:    barHeight,
	}
}

func (l Layout) CalculateAreas() (headerArea, listArea, footerArea Rect) {
	footerHeight := 1
	barHeight := l.BarHeight
	if barHeight > l.ScreenHeight {
		barHeight = l.ScreenHeight
	}
	if barHeight < 0 {
		barHeight = 0
	}

	listHeight := l.ScreenHeight - barHeight - footerHeight
	if listHeight < 0 {
		footerHeight = 0
		listHeight = l.ScreenHeight - barHeight
	}
	if listHeight < 0 {
		listHeight = 0
	}

	headerArea = NewRect(l.X, l.Y, l.ScreenWidth, barHeight)
	listArea = NewRect(l.X, l.Y+barHeight, l.ScreenWidth, listHeight)
	footerArea = NewRect(l.X, l.Y+barHeight+listHeight, l.ScreenWidth, footerHeight)
	return headerArea, listArea, footerArea
}

// WrapText breaks text into lines no wider than width terminal cells,
// preferring to break at spaces.
func WrapText(text string, width int) []string {
	if width <= 0 || text == "" {
		return []string{}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(text string, width int) []string {
	if runewidth.StringWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	runes := []rune(text)

	for len(runes) > 0 {
		// Find how many runes fit in width cells
		fit, cells := 0, 0
		for fit < len(runes) {
			w := runewidth.RuneWidth(runes[fit])
			if cells+w > width {
				break
			}
			cells += w
			fit++
		}
		if fit == 0 {
			// A single rune wider than the line still has to go somewhere
			fit = 1
		}

		if fit == len(runes) {
			lines = append(lines, string(runes))
			break
		}

		breakPos := fit
		for i := fit - 1; i > 0; i-- {
			if runes[i] == ' ' {
				breakPos = i
				break
			}
		}

		lines = append(lines, string(runes[:breakPos]))

		runes = runes[breakPos:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}

	return lines
}
