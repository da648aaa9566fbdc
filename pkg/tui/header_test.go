package tui_test

import (
	"strings"

	"github.com/killallgit/convo/pkg/tui"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HeaderBar", func() {
	var (
		screen   *tui.TestScreen
		recorder *tui.ActionRecorder
		theme    tui.Theme
	)

	draw := func(header *tui.HeaderBar, width int) {
		header.SetRect(0, 0, width, 3)
		header.Draw(screen)
		screen.Show()
	}

	BeforeEach(func() {
		screen = tui.NewTestScreen()
		err := screen.Init()
		Expect(err).ToNot(HaveOccurred())
		screen.SetSize(80, 3)
		screen.Clear()

		recorder = tui.NewActionRecorder()
		theme = tui.DefaultTheme()
	})

	AfterEach(func() {
		screen.Fini()
	})

	Describe("Badge", func() {
		It("should show the first two characters of the name", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			Expect(header.BadgeText()).To(Equal("Al"))

			draw(header, 80)
			Expect(screen.RowText(1)).To(ContainSubstring("◖Al◗"))
		})

		It("should fall back to the whole name when it is short", func() {
			header := tui.NewHeaderBar("Z", theme, recorder.Actions())
			Expect(header.BadgeText()).To(Equal("Z"))
		})

		It("should use the color assigned to the name", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			draw(header, 80)

			Expect(header.BadgeColor()).To(Equal(tui.ColorForName("Alice")))
			_, bg, _ := screen.StyleAt(2, 1).Decompose()
			Expect(bg).To(Equal(tui.ColorForName("Alice")))
		})
	})

	Describe("Layout", func() {
		It("should draw title and actions on the middle row", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			draw(header, 80)

			x, y, found := screen.Locate("Alice")
			Expect(found).To(BeTrue())
			Expect(x).To(Equal(7))
			Expect(y).To(Equal(1))

			x, _, found = screen.Locate("[Video Call]")
			Expect(found).To(BeTrue())
			Expect(x).To(Equal(58))

			x, _, found = screen.Locate("[Call]")
			Expect(found).To(BeTrue())
			Expect(x).To(Equal(71))

			Expect(screen.RuneAt(78, 1)).To(Equal('⋮'))
			Expect(screen.RuneAt(55, 1)).To(Equal('☺'))
		})

		It("should fill the whole bar", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			draw(header, 80)

			for _, y := range []int{0, 2} {
				_, bg, _ := screen.StyleAt(40, y).Decompose()
				Expect(bg).To(Equal(tui.Color(theme.Palette.Bar)))
			}
		})

		It("should record hit regions spanning the bar height", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			draw(header, 80)

			Expect(header.VideoCallRegion()).To(Equal(tui.NewRect(58, 0, 12, 3)))
			Expect(header.CallRegion()).To(Equal(tui.NewRect(71, 0, 6, 3)))
			Expect(header.MenuRegion()).To(Equal(tui.NewRect(78, 0, 1, 3)))
		})

		It("should fade a title that does not fit", func() {
			name := strings.Repeat("Bartholomew ", 6)
			header := tui.NewHeaderBar(name, theme, recorder.Actions())
			draw(header, 80)

			solid, _, _ := screen.StyleAt(7, 1).Decompose()
			faded, _, _ := screen.StyleAt(52, 1).Decompose()
			Expect(solid).To(Equal(tui.Color(theme.Palette.Title)))
			Expect(faded).ToNot(Equal(solid))
			Expect(screen.FindInContent(name)).To(BeFalse())
			Expect(screen.FindInContent("[Video Call]")).To(BeTrue())
		})

		It("should compact the actions on narrow bars", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			draw(header, 30)

			Expect(screen.FindInContent("[Video Call]")).To(BeFalse())
			Expect(header.VideoCallRegion().Width).To(BeNumerically(">", 0))
			Expect(header.CallRegion().Width).To(BeNumerically(">", 0))
			Expect(header.MenuRegion().Width).To(Equal(1))
		})
	})

	Describe("Activate", func() {
		It("should run the action under the pointer", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			draw(header, 80)

			Expect(header.Activate(60, 0)).To(BeTrue())
			Expect(header.Activate(72, 2)).To(BeTrue())

			Expect(recorder.Count("video_call")).To(Equal(1))
			Expect(recorder.Count("call")).To(Equal(1))
		})

		It("should open the menu from the overflow button", func() {
			opened := 0
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions()).SetMenuHandler(func() { opened++ })
			draw(header, 80)

			Expect(header.Activate(78, 1)).To(BeTrue())
			Expect(opened).To(Equal(1))
		})

		It("should ignore clicks outside the affordances", func() {
			header := tui.NewHeaderBar("Alice", theme, recorder.Actions())
			draw(header, 80)

			Expect(header.Activate(30, 1)).To(BeFalse())
			Expect(recorder.Count("video_call")).To(BeZero())
			Expect(recorder.Count("call")).To(BeZero())
		})

		It("should treat missing handlers as no-ops", func() {
			header := tui.NewHeaderBar("Alice", theme, tui.Actions{})
			draw(header, 80)

			Expect(func() {
				header.Activate(60, 1)
				header.Activate(72, 1)
				header.Activate(78, 1)
			}).ToNot(Panic())
		})
	})
})
