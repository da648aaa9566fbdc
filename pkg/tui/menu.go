package tui

import "github.com/gdamore/tcell/v2"

// MenuSearch is the only entry of the header's overflow menu
const MenuSearch = "search"

type MenuOption struct {
	Name        string
	Description string
}

type MenuComponent struct {
	options  []MenuOption
	selected int
	width    int
	height   int
}

func NewMenuComponent() MenuComponent {
	return MenuComponent{
		options:  []MenuOption{},
		selected: 0,
		width:    16,
		height:   3,
	}
}

// NewOverflowMenu returns the header's overflow menu
func NewOverflowMenu() MenuComponent {
	return NewMenuComponent().WithOption(MenuSearch, "Search")
}

func (mc MenuComponent) WithOption(name, description string) MenuComponent {
	newOptions := make([]MenuOption, len(mc.options)+1)
	copy(newOptions, mc.options)
	newOptions[len(mc.options)] = MenuOption{
		Name:        name,
		Description: description,
	}

	return MenuComponent{
		options:  newOptions,
		selected: mc.selected,
		width:    mc.width,
		height:   len(newOptions) + 2,
	}
}

func (mc MenuComponent) SelectNext() MenuComponent {
	if len(mc.options) == 0 {
		return mc
	}
	mc.selected = (mc.selected + 1) % len(mc.options)
	return mc
}

func (mc MenuComponent) SelectPrevious() MenuComponent {
	if len(mc.options) == 0 {
		return mc
	}
	mc.selected--
	if mc.selected < 0 {
		mc.selected = len(mc.options) - 1
	}
	return mc
}

func (mc MenuComponent) GetSelectedOption() string {
	return mc.GetOptionByIndex(mc.selected)
}

func (mc MenuComponent) GetOptionByIndex(index int) string {
	if index >= 0 && index < len(mc.options) {
		return mc.options[index].Name
	}
	return ""
}

// Size returns the width and height the menu renders at
func (mc MenuComponent) Size() (int, int) {
	return mc.width, mc.height
}

// Area anchors the menu to the top-right corner below y
func (mc MenuComponent) Area(anchorRight, y int) Rect {
	return NewRect(anchorRight-mc.width, y, mc.width, mc.height)
}

// OptionAt returns the option under a screen position inside area
func (mc MenuComponent) OptionAt(area Rect, x, y int) (string, bool) {
	if !area.Contains(x, y) {
		return "", false
	}
	index := y - (area.Y + 1)
	name := mc.GetOptionByIndex(index)
	return name, name != ""
}

func (mc MenuComponent) Render(screen tcell.Screen, area Rect, t Theme) {
	if len(mc.options) == 0 || area.Width < 4 || area.Height < 3 {
		return
	}

	bar := Color(t.Palette.Bar)
	borderStyle := tcell.StyleDefault.Background(bar).Foreground(Color(t.Palette.Secondary))
	selectedStyle := tcell.StyleDefault.Foreground(Color(t.Palette.Background)).Background(Color(t.Palette.Accent))
	normalStyle := tcell.StyleDefault.Background(bar).Foreground(Color(t.Palette.Foreground))

	fillRect(screen, area, normalStyle)
	drawBorder(screen, area, borderStyle)

	startY := area.Y + 1
	for i, option := range mc.options {
		if startY+i >= area.Y+area.Height-1 {
			break
		}

		style := normalStyle
		if i == mc.selected {
			style = selectedStyle
		}

		// Fill the entire row with the background color for selected item
		fillRect(screen, NewRect(area.X+1, startY+i, area.Width-2, 1), style)
		drawFadedText(screen, area.X+2, startY+i, area.Width-4, option.Description, style, bar)
	}
}

func drawBorder(screen tcell.Screen, area Rect, style tcell.Style) {
	for x := area.X; x < area.X+area.Width; x++ {
		screen.SetContent(x, area.Y, '─', nil, style)
		screen.SetContent(x, area.Y+area.Height-1, '─', nil, style)
	}

	for y := area.Y; y < area.Y+area.Height; y++ {
		screen.SetContent(area.X, y, '│', nil, style)
		screen.SetContent(area.X+area.Width-1, y, '│', nil, style)
	}

	screen.SetContent(area.X, area.Y, '╭', nil, style)
	screen.SetContent(area.X+area.Width-1, area.Y, '╮', nil, style)
	screen.SetContent(area.X, area.Y+area.Height-1, '╰', nil, style)
	screen.SetContent(area.X+area.Width-1, area.Y+area.Height-1, '╯', nil, style)
}
