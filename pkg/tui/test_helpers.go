package tui

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// TestScreen wraps SimulationScreen with additional test utilities
type TestScreen struct {
	tcell.SimulationScreen
	mu            sync.Mutex
	screenHistory []string
}

// NewTestScreen creates a new test screen
func NewTestScreen() *TestScreen {
	return &TestScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		screenHistory:    make([]string, 0),
	}
}

// CaptureContent returns the current screen content as a string
func (ts *TestScreen) CaptureContent() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	width, height := ts.Size()
	result := ts.GetRegion(0, 0, width, height) + "\n"
	ts.screenHistory = append(ts.screenHistory, result)
	return result
}

// GetScreenHistory returns all captured screen states
func (ts *TestScreen) GetScreenHistory() []string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]string{}, ts.screenHistory...)
}

// FindInContent searches for text in the current screen content
func (ts *TestScreen) FindInContent(text string) bool {
	content := ts.CaptureContent()
	return strings.Contains(content, text)
}

// RowText returns a single screen row
func (ts *TestScreen) RowText(y int) string {
	width, _ := ts.Size()
	return ts.GetRegion(0, y, width, 1)
}

// Locate returns the position of the first occurrence of text on a single row
func (ts *TestScreen) Locate(text string) (x, y int, ok bool) {
	_, height := ts.Size()
	for row := 0; row < height; row++ {
		line := ts.RowText(row)
		if idx := strings.Index(line, text); idx >= 0 {
			return utf8.RuneCountInString(line[:idx]), row, true
		}
	}
	return 0, 0, false
}

// StyleAt returns the style of the cell at x,y
func (ts *TestScreen) StyleAt(x, y int) tcell.Style {
	_, _, style, _ := ts.GetContent(x, y)
	return style
}

// RuneAt returns the main rune of the cell at x,y
func (ts *TestScreen) RuneAt(x, y int) rune {
	ch, _, _, _ := ts.GetContent(x, y)
	return ch
}

// GetRegion extracts content from a specific screen region
func (ts *TestScreen) GetRegion(x, y, width, height int) string {
	var content strings.Builder

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			ch, _, _, _ := ts.GetContent(col, row)
			if ch != 0 {
				content.WriteRune(ch)
			} else {
				content.WriteRune(' ')
			}
		}
		if row < y+height-1 {
			content.WriteRune('\n')
		}
	}

	return content.String()
}

// ActionRecorder counts header affordance activations
type ActionRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewActionRecorder creates a new recorder
func NewActionRecorder() *ActionRecorder {
	return &ActionRecorder{counts: map[string]int{}}
}

// Actions returns handlers that record into r
func (r *ActionRecorder) Actions() Actions {
	return Actions{
		OnVideoCall: func() { r.record("video_call") },
		OnCall:      func() { r.record("call") },
		OnSearch:    func() { r.record("search") },
	}
}

func (r *ActionRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[name]++
}

// Count returns how many times the named action ran
func (r *ActionRecorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[name]
}
