package tui

import (
	"hash/fnv"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	nameColorSaturation = 0.55
	nameColorValue      = 0.62
)

// ColorForName maps a string to a display color. The same name always
// yields the same color.
func ColorForName(name string) tcell.Color {
	return toTcell(nameColor(name))
}

// HexForName is ColorForName as a #rrggbb string
func HexForName(name string) string {
	return nameColor(name).Hex()
}

func nameColor(name string) colorful.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	hue := float64(h.Sum32() % 360)
	return colorful.Hsv(hue, nameColorSaturation, nameColorValue)
}

// FadeColors returns steps colors blending from -> to, excluding from itself.
// The last entry is closest to the target color.
func FadeColors(from, to tcell.Color, steps int) []tcell.Color {
	if steps <= 0 {
		return nil
	}

	a, b := fromTcell(from), fromTcell(to)
	out := make([]tcell.Color, steps)
	for i := 0; i < steps; i++ {
		t := float64(i+1) / float64(steps+1)
		out[i] = toTcell(a.BlendLab(b, t).Clamped())
	}
	return out
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
